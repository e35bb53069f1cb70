package types

import (
	"github.com/renato0307/folio/internal/content"
	"github.com/renato0307/folio/internal/theme"
	"github.com/renato0307/folio/internal/ui"
)

// AppContext holds app-wide configuration and dependencies
type AppContext struct {
	Theme   *ui.Theme
	Store   *theme.Store
	Content *content.Content
}

// NewAppContext creates a new application context
func NewAppContext(
	palette *ui.Theme,
	store *theme.Store,
	page *content.Content,
) *AppContext {
	return &AppContext{
		Theme:   palette,
		Store:   store,
		Content: page,
	}
}
