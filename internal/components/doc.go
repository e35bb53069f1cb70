package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/renato0307/folio/internal/anim"
	"github.com/renato0307/folio/internal/scroll"
	"github.com/renato0307/folio/internal/types"
	"github.com/renato0307/folio/internal/ui"
)

// Doc accumulates the page top to bottom and records the lines each tracked
// element occupies, so the viewport can report intersections.
type Doc struct {
	parts   []string
	lines   int
	regions []scroll.Region
	anchors map[string]int
}

func NewDoc() *Doc {
	return &Doc{anchors: make(map[string]int)}
}

// Anchor records name at the current line.
func (d *Doc) Anchor(name string) {
	d.anchors[name] = d.lines
}

// Add appends block and tracks it under every id given.
func (d *Doc) Add(block string, ids ...string) {
	if block == "" {
		return
	}
	h := lipgloss.Height(block)
	for _, id := range ids {
		d.regions = append(d.regions, scroll.Region{ID: id, Top: d.lines, Bottom: d.lines + h})
	}
	d.parts = append(d.parts, block)
	d.lines += h
}

// Track records a region for id covering lines already added since top.
func (d *Doc) Track(id string, top int) {
	d.regions = append(d.regions, scroll.Region{ID: id, Top: top, Bottom: d.lines})
}

// Lines returns the number of lines added so far.
func (d *Doc) Lines() int { return d.lines }

func (d *Doc) Regions() []scroll.Region { return d.regions }

// AnchorLine returns the line an anchor was recorded at.
func (d *Doc) AnchorLine(name string) (int, bool) {
	line, ok := d.anchors[name]
	return line, ok
}

func (d *Doc) String() string {
	return strings.Join(d.parts, "\n")
}

// renderer carries what every view needs to draw an animated element.
type renderer struct {
	ctx   *types.AppContext
	seq   *anim.Sequencer
	zones *zone.Manager
	focus string
}

func (r renderer) theme() *ui.Theme { return r.ctx.Theme }

// visual returns the visual of the last id nested inside the others.
func (r renderer) visual(ids ...string) anim.Visual {
	v := anim.Visual{}.Resolved()
	for _, id := range ids {
		v = combine(v, r.seq.Visual(id))
	}
	return v
}

// style applies v and the focus marker to base.
func (r renderer) style(id string, base lipgloss.Style, v anim.Visual, fg lipgloss.AdaptiveColor) lipgloss.Style {
	st := ui.Apply(base.Foreground(fg), v, fg, r.theme().Primary)
	if id != "" && id == r.focus {
		st = st.Underline(true).Foreground(r.theme().Accent)
	}
	return st
}

// mark registers s as a mouse zone for id.
func (r renderer) mark(id, s string) string {
	if r.zones == nil {
		return s
	}
	return r.zones.Mark(id, s)
}
