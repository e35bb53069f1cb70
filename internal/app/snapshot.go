package app

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/folio/internal/anim"
	"github.com/renato0307/folio/internal/components"
	"github.com/renato0307/folio/internal/logging"
	"github.com/renato0307/folio/internal/scroll"
	"github.com/renato0307/folio/internal/types"
)

// settle is far enough past mount for every entrance to finish.
const settle = time.Hour

// Snapshot renders the whole page once, with every section entered and
// every entrance finished, for non-interactive output.
func Snapshot(ctx *types.AppContext, width int) string {
	seq := anim.NewSequencer()
	navbar := components.NewNavbar(ctx, seq, scroll.NewViewportSource(), nil)
	defer navbar.Close()
	page := components.NewPage(ctx, seq, nil)

	navbar.SetWidth(width)
	pageWidth := min(width, components.MaxContentWidth)

	doc := page.Render(pageWidth)
	ids := make([]string, 0, len(doc.Regions()))
	for _, r := range doc.Regions() {
		ids = append(ids, r.ID)
	}
	seq.TriggerGroup(ids...)
	seq.Advance(settle)

	var out string
	logging.For("snapshot").Time("render snapshot", func() {
		out = lipgloss.JoinVertical(lipgloss.Left,
			navbar.View(),
			lipgloss.PlaceHorizontal(width, lipgloss.Center, page.Render(pageWidth).String()),
		)
	})
	return out
}
