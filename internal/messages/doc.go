// Package messages defines message handling patterns and conventions for
// folio. Errors, success and info messages are handled the same way in every
// layer so failures stay visible without ever breaking the render.
//
// # Message Handling Patterns by Layer
//
// ## Infrastructure Layer (internal/storage, internal/content, internal/config)
//
// Return standard Go errors wrapped with context. These packages do not
// depend on UI concerns.
//
// Pattern:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return nil, fmt.Errorf("failed to read content file: %w", err)
//	}
//
// Sentinel errors (storage.ErrNotFound, storage.ErrUnavailable) stay
// matchable with errors.Is through every wrap.
//
// ## Controller Layer (internal/theme, internal/scroll, internal/nav, internal/anim)
//
// Never fail. Storage and listener errors are logged through
// internal/logging and the controller degrades to its safe default: light
// mode, a non-elevated navbar, a no-op on a destroyed element.
//
// Pattern:
//
//	if err := s.storage.Set(StorageKey, mode.Persisted()); err != nil {
//	    s.log.Debug("theme not persisted", "error", err)
//	}
//
// ## UI Layer (internal/app, internal/components)
//
// User actions that can fail return a tea.Cmd built with ErrorCmd,
// SuccessCmd or InfoCmd. The root model shows the resulting
// types.StatusMsg in the status bar:
//
//	case types.StatusMsg:
//	    m.messageID++
//	    m.statusBar.SetMessage(msg.Message, msg.Type)
//	    return m, messages.ClearAfter(m.messageID, components.StatusBarDisplayDuration)
//
// The status bar clears after StatusBarDisplayDuration (5s).
//
// # Error Message Guidelines
//
//  1. Be specific: "Copy failed: no clipboard utility" not "Operation failed"
//  2. Start with what failed
//  3. Keep UI messages short; the log file has the details
package messages
