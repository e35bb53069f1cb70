package types

import (
	"github.com/renato0307/folio/internal/theme"
)

// MessageType selects the status bar color and prefix.
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeSuccess:
		return "success"
	case MessageTypeError:
		return "error"
	}
	return "info"
}

// StatusMsg puts a message in the status bar.
type StatusMsg struct {
	Message string
	Type    MessageType
}

// Status builds a StatusMsg of kind.
func Status(kind MessageType, message string) StatusMsg {
	return StatusMsg{Message: message, Type: kind}
}

// ClearStatusMsg clears the status bar if MessageID is still the latest
// message shown.
type ClearStatusMsg struct {
	MessageID int
}

// ThemeChangedMsg is sent after the appearance mode changes.
type ThemeChangedMsg struct {
	Mode theme.Mode
}

// PaletteChangedMsg asks the UI to switch to another named palette.
type PaletteChangedMsg struct {
	Name string
}

// JumpMsg scrolls the page to an in-page anchor.
type JumpMsg struct {
	Anchor string
}
