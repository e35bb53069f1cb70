package anim

import "time"

// Trigger selects which event starts a descriptor.
type Trigger int

const (
	OnMount Trigger = iota
	OnViewportEnter
	OnHover
	OnPress
	Looping
)

func (t Trigger) String() string {
	switch t {
	case OnMount:
		return "mount"
	case OnViewportEnter:
		return "viewport-enter"
	case OnHover:
		return "hover"
	case OnPress:
		return "press"
	case Looping:
		return "loop"
	}
	return "unknown"
}

// entrance reports whether the trigger produces a steady-state transition.
func (t Trigger) entrance() bool {
	return t == OnMount || t == OnViewportEnter
}

// Replay is the replay policy of a descriptor.
type Replay int

const (
	// Once fires at most once per element instance.
	Once Replay = iota
	// EveryMount fires on every mount and, for viewport triggers, on every
	// enter that follows a leave.
	EveryMount
	// Infinite never stops. Used by Looping descriptors.
	Infinite
)

func (r Replay) String() string {
	switch r {
	case Once:
		return "once"
	case EveryMount:
		return "every-mount"
	case Infinite:
		return "infinite"
	}
	return "unknown"
}

// DefaultDuration is used when a descriptor leaves Duration at zero.
const DefaultDuration = 500 * time.Millisecond

// Descriptor declares one animation of an element. Descriptors are values
// and never mutate after declaration.
//
// For OnHover and OnPress, Target is the transient visual applied while the
// condition holds and Initial is ignored. For Looping, Keyframes are played
// over Duration and then in reverse, forever.
type Descriptor struct {
	Initial   Visual
	Target    Visual
	Exit      *Visual
	Delay     time.Duration
	Duration  time.Duration
	Trigger   Trigger
	Replay    Replay
	Keyframes []Visual
	Easing    Curve
}

func (d Descriptor) duration() time.Duration {
	if d.Duration <= 0 {
		return DefaultDuration
	}
	return d.Duration
}

// Stagger returns one copy of d per sibling with delay d.Delay + i*step, so
// sibling i starts i*step after a shared trigger.
func Stagger(step time.Duration, n int, d Descriptor) []Descriptor {
	out := make([]Descriptor, n)
	for i := range out {
		out[i] = d
		out[i].Delay = d.Delay + time.Duration(i)*step
	}
	return out
}

// FadeUp is the common entrance: fade in while rising from y lines below.
func FadeUp(y float64, delay time.Duration, trigger Trigger) Descriptor {
	return Descriptor{
		Initial: Visual{}.WithOpacity(0).WithY(y),
		Target:  Visual{}.WithOpacity(1).WithY(0),
		Delay:   delay,
		Trigger: trigger,
		Replay:  Once,
	}
}

// HoverLift raises an element by dy lines while hovered.
func HoverLift(dy float64) Descriptor {
	return Descriptor{Target: Visual{}.WithY(dy), Trigger: OnHover}
}

// HoverScale scales an element while hovered.
func HoverScale(s float64) Descriptor {
	return Descriptor{Target: Visual{}.WithScale(s), Trigger: OnHover}
}

// PressScale scales an element while pressed.
func PressScale(s float64) Descriptor {
	return Descriptor{Target: Visual{}.WithScale(s), Trigger: OnPress}
}
