package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/renato0307/folio/internal/types"
	"github.com/renato0307/folio/internal/ui"
)

// StatusBar displays status messages (success, errors, info)
type StatusBar struct {
	message     string
	messageType types.MessageType
	width       int
	theme       func() *ui.Theme
}

// NewStatusBar creates a new status bar. theme is read on every render so a
// palette reload applies immediately.
func NewStatusBar(theme func() *ui.Theme) *StatusBar {
	return &StatusBar{
		theme: theme,
	}
}

// SetMessage sets the status message with type
func (sb *StatusBar) SetMessage(msg string, msgType types.MessageType) {
	sb.message = msg
	sb.messageType = msgType
}

// ClearMessage clears the status message
func (sb *StatusBar) ClearMessage() {
	sb.message = ""
	sb.messageType = types.MessageTypeInfo
}

func (sb *StatusBar) Message() string { return sb.message }

// SetWidth sets the status bar width
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// View renders the status bar, always one line to reserve space
func (sb *StatusBar) View() string {
	t := sb.theme()
	baseStyle := lipgloss.NewStyle().
		Width(sb.width).
		Padding(0, 1)

	if sb.message == "" {
		return baseStyle.Render("")
	}

	var color lipgloss.AdaptiveColor
	var prefix string

	switch sb.messageType {
	case types.MessageTypeSuccess:
		color = t.Success
		prefix = "✓ "
	case types.MessageTypeError:
		color = t.Error
		prefix = "✗ "
	default:
		color = t.Info
		prefix = "ℹ "
	}

	text := prefix + sb.message
	if sb.width > 2 {
		text = ansi.Truncate(text, sb.width-2, "…")
	}
	return baseStyle.
		Foreground(t.Primary).
		Background(color).
		Bold(true).
		Render(text)
}
