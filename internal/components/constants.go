package components

import "time"

// UI component constants
const (
	// MaxPaletteItems is the maximum number of items shown in the jump
	// palette before scrolling is required.
	MaxPaletteItems = 8

	// StatusBarDisplayDuration is how long status messages (success, error,
	// info) are displayed before automatically clearing.
	StatusBarDisplayDuration = 5 * time.Second

	// NarrowWidth is the width below which the navbar collapses its links
	// into the menu button and overlay panel.
	NarrowWidth = 80

	// NavbarHeight is the fixed height of the navbar, including its bottom
	// border row.
	NavbarHeight = 3

	// MaxContentWidth caps section width on wide terminals.
	MaxContentWidth = 110

	// LineUnits is the scroll distance of one terminal line, in the units
	// the elevation threshold is expressed in.
	LineUnits = 16

	// PressDuration is how long a keyboard activation holds the press state.
	PressDuration = 100 * time.Millisecond
)
