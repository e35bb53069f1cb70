package anim

import (
	"time"

	"github.com/renato0307/folio/internal/logging"
)

// Sequencer owns the frame clock and the live elements, keyed by id.
// It is not safe for concurrent use; all calls come from the UI loop.
type Sequencer struct {
	now      time.Duration
	elements map[string]*Element
	queued   map[string][]Descriptor
	curve    Curve
	log      *logging.Logger
}

// Option configures a Sequencer.
type Option func(*Sequencer)

// WithCurve replaces the default easing curve. A nil curve is linear.
func WithCurve(c Curve) Option {
	return func(s *Sequencer) { s.curve = c }
}

// NewSequencer creates a sequencer whose clock starts at zero.
func NewSequencer(opts ...Option) *Sequencer {
	s := &Sequencer{
		elements: make(map[string]*Element),
		queued:   make(map[string][]Descriptor),
		curve:    DefaultCurve,
		log:      logging.For("anim"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the sequencer clock.
func (s *Sequencer) Now() time.Duration { return s.now }

// Advance moves the clock to now and unmounts elements whose exit finished.
// The clock never moves backwards.
func (s *Sequencer) Advance(now time.Duration) {
	if now > s.now {
		s.now = now
	}
	for id, e := range s.elements {
		if e.exitDone() {
			s.log.Debug("exit finished", "element", id)
			s.destroy(id, e)
			if descs, ok := s.queued[id]; ok {
				s.Mount(id, descs...)
			}
		}
	}
}

// Mount creates a fresh instance for id with new played flags, replacing any
// live instance, and fires its OnMount and Looping descriptors.
func (s *Sequencer) Mount(id string, descs ...Descriptor) *Element {
	delete(s.queued, id)
	if old, ok := s.elements[id]; ok {
		s.destroy(id, old)
	}
	e := newElement(s, id, descs)
	s.elements[id] = e
	e.mount()
	return e
}

// Destroy tears down the instance for id. Unknown ids are ignored.
func (s *Sequencer) Destroy(id string) {
	delete(s.queued, id)
	if e, ok := s.elements[id]; ok {
		s.destroy(id, e)
	}
}

func (s *Sequencer) destroy(id string, e *Element) {
	e.destroyed = true
	e.exiting = false
	delete(s.elements, id)
}

// Exit starts the exit transition for id. Elements without an exit visual
// are destroyed at once. The element unmounts on the first Advance after
// the exit completes.
func (s *Sequencer) Exit(id string) {
	e, ok := s.elements[id]
	if !ok || e.exiting {
		return
	}
	if _, _, ok := e.exitTarget(); !ok {
		s.destroy(id, e)
		return
	}
	e.exitFrom = e.Visual()
	e.exiting = true
	e.exitAt = s.now
	e.hovered, e.pressed = false, false
}

// Replace plays the exit of the live instance for id and mounts descs once
// it has unmounted. Without a live instance, or when the instance has no exit
// visual, descs mount at once. Calls made while the exit plays only swap the
// queued descriptors.
func (s *Sequencer) Replace(id string, descs ...Descriptor) {
	s.Exit(id)
	if !s.Alive(id) {
		s.Mount(id, descs...)
		return
	}
	s.queued[id] = descs
}

// Exiting reports whether id is playing its exit transition.
func (s *Sequencer) Exiting(id string) bool {
	e, ok := s.elements[id]
	return ok && e.exiting
}

// Get returns the live instance for id.
func (s *Sequencer) Get(id string) (*Element, bool) {
	e, ok := s.elements[id]
	return e, ok
}

// Alive reports whether id has a live instance, including one that is
// still exiting.
func (s *Sequencer) Alive(id string) bool {
	_, ok := s.elements[id]
	return ok
}

// Len returns the number of live elements.
func (s *Sequencer) Len() int { return len(s.elements) }

// ViewportEnter fires OnViewportEnter descriptors of id.
func (s *Sequencer) ViewportEnter(id string) {
	if e, ok := s.elements[id]; ok {
		e.ViewportEnter()
	}
}

// ViewportLeave marks id as outside the viewport.
func (s *Sequencer) ViewportLeave(id string) {
	if e, ok := s.elements[id]; ok {
		e.ViewportLeave()
	}
}

// TriggerGroup fires OnViewportEnter for every id at the current time. With
// Stagger delays this produces the sibling cascade.
func (s *Sequencer) TriggerGroup(ids ...string) {
	for _, id := range ids {
		s.ViewportEnter(id)
	}
}

// Hover sets the hover condition on id.
func (s *Sequencer) Hover(id string, on bool) {
	if e, ok := s.elements[id]; ok {
		e.Hover(on)
	}
}

// Press sets the press condition on id.
func (s *Sequencer) Press(id string, on bool) {
	if e, ok := s.elements[id]; ok {
		e.Press(on)
	}
}

// ClearInteraction releases hover and press on every element.
func (s *Sequencer) ClearInteraction() {
	for _, e := range s.elements {
		e.hovered, e.pressed = false, false
	}
}

// Visual returns the current visual of id. Unknown ids resolve to the
// natural visual.
func (s *Sequencer) Visual(id string) Visual {
	if e, ok := s.elements[id]; ok {
		return e.Visual().Resolved()
	}
	return Visual{}.Resolved()
}

// StartedAt returns when id's latest entrance transition began.
func (s *Sequencer) StartedAt(id string) (time.Duration, bool) {
	if e, ok := s.elements[id]; ok {
		return e.StartedAt()
	}
	return 0, false
}

// Animating reports whether any element has a transition or loop running.
func (s *Sequencer) Animating() bool {
	for _, e := range s.elements {
		if e.Animating() {
			return true
		}
	}
	return false
}
