package messages

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/folio/internal/types"
)

func status(kind types.MessageType, format string, args []any) tea.Cmd {
	msg := types.Status(kind, fmt.Sprintf(format, args...))
	return func() tea.Msg { return msg }
}

// ErrorCmd reports a failed user action.
//
// Example:
//
//	if err := clipboard.WriteAll(link.URL); err != nil {
//	    return messages.ErrorCmd("Copy failed: %v", err)
//	}
func ErrorCmd(format string, args ...any) tea.Cmd {
	return status(types.MessageTypeError, format, args)
}

// SuccessCmd reports a completed user action.
//
// Example:
//
//	return messages.SuccessCmd("Copied %s", link.URL)
func SuccessCmd(format string, args ...any) tea.Cmd {
	return status(types.MessageTypeSuccess, format, args)
}

// InfoCmd reports a state change the user may not have noticed.
//
// Example:
//
//	return messages.InfoCmd("Palette %s applied", name)
func InfoCmd(format string, args ...any) tea.Cmd {
	return status(types.MessageTypeInfo, format, args)
}

// ClearAfter emits a ClearStatusMsg for id once d has passed. A newer
// message gets a newer id, so only the latest message is ever cleared.
func ClearAfter(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return types.ClearStatusMsg{MessageID: id}
	})
}
