package anim

import "time"

// run is the per-instance state of one descriptor.
type run struct {
	desc    Descriptor
	firedAt time.Duration
	fired   bool
	played  bool
}

func (r *run) start() time.Duration {
	return r.firedAt + r.desc.Delay
}

func (r *run) progress(now time.Duration, fallback Curve) float64 {
	if !r.fired || now < r.start() {
		return 0
	}
	t := float64(now-r.start()) / float64(r.desc.duration())
	curve := r.desc.Easing
	if curve == nil {
		curve = fallback
	}
	return curve.At(t)
}

func (r *run) settled(now time.Duration) bool {
	return !r.fired || now >= r.start()+r.desc.duration()
}

// Element is one mounted instance of an animated element. A handle stays
// safe to use after Destroy; every call on a destroyed element is a no-op.
type Element struct {
	id    string
	seq   *Sequencer
	runs  []*run
	fires int

	inView  bool
	hovered bool
	pressed bool

	exiting   bool
	exitAt    time.Duration
	exitFrom  Visual
	destroyed bool
}

func newElement(seq *Sequencer, id string, descs []Descriptor) *Element {
	e := &Element{id: id, seq: seq}
	for _, d := range descs {
		e.runs = append(e.runs, &run{desc: d})
	}
	return e
}

// ID returns the element id.
func (e *Element) ID() string { return e.id }

// Destroyed reports whether the instance has been torn down.
func (e *Element) Destroyed() bool { return e.destroyed }

// Fires returns how many entrance transitions this instance has started.
func (e *Element) Fires() int { return e.fires }

func (e *Element) now() time.Duration { return e.seq.now }

func (e *Element) fire(trigger Trigger) {
	now := e.now()
	for _, r := range e.runs {
		if r.desc.Trigger != trigger {
			continue
		}
		if r.desc.Replay == Once && r.played {
			continue
		}
		r.fired = true
		r.played = true
		r.firedAt = now
		if trigger.entrance() {
			e.fires++
		}
	}
}

func (e *Element) mount() {
	e.fire(OnMount)
	e.fire(Looping)
}

// ViewportEnter fires OnViewportEnter descriptors. Repeated enters without
// an intervening leave are ignored.
func (e *Element) ViewportEnter() {
	if e.destroyed || e.exiting || e.inView {
		return
	}
	e.inView = true
	e.fire(OnViewportEnter)
}

// ViewportLeave marks the element as outside the viewport. EveryMount
// viewport descriptors return to their initial visual so the next enter
// replays them.
func (e *Element) ViewportLeave() {
	if e.destroyed || !e.inView {
		return
	}
	e.inView = false
	for _, r := range e.runs {
		if r.desc.Trigger == OnViewportEnter && r.desc.Replay != Once {
			r.fired = false
		}
	}
}

// InView reports whether the element is currently inside the viewport.
func (e *Element) InView() bool { return e.inView }

// Hover sets the hover condition.
func (e *Element) Hover(on bool) {
	if e.destroyed {
		return
	}
	e.hovered = on
}

// Press sets the press condition.
func (e *Element) Press(on bool) {
	if e.destroyed {
		return
	}
	e.pressed = on
}

// Hovered reports the hover condition.
func (e *Element) Hovered() bool { return e.hovered }

// Pressed reports the press condition.
func (e *Element) Pressed() bool { return e.pressed }

// StartedAt returns the latest start (trigger time plus delay) among the
// fired entrance transitions.
func (e *Element) StartedAt() (time.Duration, bool) {
	var (
		at    time.Duration
		found bool
	)
	for _, r := range e.runs {
		if !r.fired || !r.desc.Trigger.entrance() {
			continue
		}
		if !found || r.start() > at {
			at = r.start()
			found = true
		}
	}
	return at, found
}

// steady composes every entrance descriptor in declaration order. A
// descriptor that has not fired contributes its initial visual.
func (e *Element) steady() Visual {
	now := e.now()
	out := Visual{}
	for _, r := range e.runs {
		if !r.desc.Trigger.entrance() {
			continue
		}
		if !r.fired {
			out = out.Compose(r.desc.Initial)
			continue
		}
		out = out.Compose(Lerp(r.desc.Initial, r.desc.Target, r.progress(now, e.seq.curve)))
	}
	return out
}

func (e *Element) loop() Visual {
	now := e.now()
	out := Visual{}
	for _, r := range e.runs {
		if r.desc.Trigger != Looping || !r.fired || len(r.desc.Keyframes) == 0 {
			continue
		}
		out = out.Compose(loopFrame(r.desc, now-r.start()))
	}
	return out
}

// loopFrame plays keyframes forward over one duration, then backward.
func loopFrame(d Descriptor, elapsed time.Duration) Visual {
	frames := d.Keyframes
	if len(frames) == 1 || elapsed < 0 {
		return frames[0]
	}
	dur := d.duration()
	cycle := elapsed % (2 * dur)
	t := float64(cycle) / float64(dur)
	if t > 1 {
		t = 2 - t
	}
	pos := t * float64(len(frames)-1)
	i := int(pos)
	if i >= len(frames)-1 {
		return frames[len(frames)-1]
	}
	return Lerp(frames[i], frames[i+1], pos-float64(i))
}

func (e *Element) transient() Visual {
	out := Visual{}
	if e.hovered {
		for _, r := range e.runs {
			if r.desc.Trigger == OnHover {
				out = out.Compose(r.desc.Target)
			}
		}
	}
	if e.pressed {
		for _, r := range e.runs {
			if r.desc.Trigger == OnPress {
				out = out.Compose(r.desc.Target)
			}
		}
	}
	return out
}

func (e *Element) exitTarget() (Visual, time.Duration, bool) {
	var (
		out Visual
		dur time.Duration
		ok  bool
	)
	for _, r := range e.runs {
		if r.desc.Exit == nil {
			continue
		}
		out = out.Compose(*r.desc.Exit)
		dur = max(dur, r.desc.duration())
		ok = true
	}
	return out, dur, ok
}

// Visual returns the current visual: steady state, then loop, then the
// active interaction delta, each overriding the previous per attribute.
func (e *Element) Visual() Visual {
	if e.destroyed {
		return Visual{}
	}
	if e.exiting {
		target, dur, _ := e.exitTarget()
		t := float64(e.now()-e.exitAt) / float64(dur)
		return Lerp(e.exitFrom, target, e.seq.curve.At(t))
	}
	return e.steady().Compose(e.loop()).Compose(e.transient())
}

// Exiting reports whether the exit transition is playing.
func (e *Element) Exiting() bool { return e.exiting }

func (e *Element) exitDone() bool {
	if !e.exiting {
		return false
	}
	_, dur, _ := e.exitTarget()
	return e.now() >= e.exitAt+dur
}

// Animating reports whether a transition or loop is in progress.
func (e *Element) Animating() bool {
	if e.destroyed {
		return false
	}
	if e.exiting {
		return true
	}
	now := e.now()
	for _, r := range e.runs {
		if !r.fired {
			continue
		}
		if r.desc.Trigger == Looping {
			return true
		}
		if r.desc.Trigger.entrance() && !r.settled(now) {
			return true
		}
	}
	return false
}
