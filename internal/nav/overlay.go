// Package nav holds the state machine of the collapsible mobile navigation
// panel and drives the panel's presence animation.
package nav

import (
	"time"

	"github.com/renato0307/folio/internal/anim"
	"github.com/renato0307/folio/internal/logging"
)

// State of the overlay.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Event is a user action that may move the overlay.
type Event int

const (
	MenuButtonPressed Event = iota
	NavLinkActivated
	OutsideSelected
)

func (e Event) String() string {
	switch e {
	case MenuButtonPressed:
		return "menu-button"
	case NavLinkActivated:
		return "nav-link"
	case OutsideSelected:
		return "outside"
	}
	return "unknown"
}

// Next is the transition table. Every (state, event) pair has a result;
// pairs not listed keep the current state.
func Next(s State, e Event) State {
	switch {
	case s == Closed && e == MenuButtonPressed:
		return Open
	case s == Open && e == MenuButtonPressed:
		return Closed
	case s == Open && e == NavLinkActivated:
		return Closed
	case s == Open && e == OutsideSelected:
		return Closed
	}
	return s
}

// PanelDuration is the show/hide transition length.
const PanelDuration = 200 * time.Millisecond

// PanelDescriptor is the presence animation of the panel: it unfolds from
// zero height while fading in, and folds back on exit.
func PanelDescriptor() anim.Descriptor {
	hidden := anim.Visual{}.WithOpacity(0).WithHeight(0)
	return anim.Descriptor{
		Initial:  hidden,
		Target:   anim.Visual{}.WithOpacity(1).WithHeight(1),
		Exit:     &hidden,
		Duration: PanelDuration,
		Trigger:  anim.OnMount,
		Replay:   anim.EveryMount,
	}
}

// Controller owns the overlay state for one navbar instance.
type Controller struct {
	state   State
	seq     *anim.Sequencer
	panelID string
	log     *logging.Logger
}

// New creates a closed controller whose panel is animated by seq under
// panelID.
func New(seq *anim.Sequencer, panelID string) *Controller {
	return &Controller{
		state:   Closed,
		seq:     seq,
		panelID: panelID,
		log:     logging.For("nav"),
	}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// IsOpen reports whether the overlay is open.
func (c *Controller) IsOpen() bool { return c.state == Open }

// Fire applies e. Entering Open mounts the panel; leaving Open starts the
// panel's exit, after which the sequencer unmounts it.
func (c *Controller) Fire(e Event) State {
	next := Next(c.state, e)
	if next == c.state {
		return c.state
	}

	c.log.Debug("overlay transition", "from", c.state, "event", e, "to", next)
	c.state = next

	switch next {
	case Open:
		c.seq.Mount(c.panelID, PanelDescriptor())
	case Closed:
		c.seq.Exit(c.panelID)
	}
	return next
}

// PanelVisible reports whether the panel must be rendered: while open, and
// while its exit is still playing.
func (c *Controller) PanelVisible() bool {
	return c.state == Open || c.seq.Alive(c.panelID)
}

// PanelVisual is the panel's current visual.
func (c *Controller) PanelVisual() anim.Visual {
	return c.seq.Visual(c.panelID)
}

// Reset returns to Closed and drops the panel without an exit, as on
// remount.
func (c *Controller) Reset() {
	c.state = Closed
	c.seq.Destroy(c.panelID)
}
