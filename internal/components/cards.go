package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/renato0307/folio/internal/content"
	"github.com/renato0307/folio/internal/ui"
)

// columns is the card grid width for a page width.
func columns(width int) int {
	if width >= 90 {
		return 2
	}
	return 1
}

// intro renders a centered section heading and lead paragraph.
func (p *Page) intro(in content.Intro, width int, id string) string {
	t := p.theme()
	chain := []string{id}
	textW := min(width-4*ui.BandX, 70)

	heading := p.text(chain, t.Heading, t.Text, in.Title+" ") +
		p.text(chain, t.Heading, t.Accent, in.Highlight)
	lead := p.text(chain, t.Body.Width(textW).Align(lipgloss.Center), t.TextMuted, in.Text)

	block := lipgloss.JoinVertical(lipgloss.Center, heading, "", lead)
	return p.placed(lipgloss.PlaceHorizontal(width-4*ui.BandX, lipgloss.Center, block), chain...)
}

// grid appends cards in rows of columns(width), tracking each card by id.
func (p *Page) grid(d *Doc, width int, cards []string, ids []string) {
	cols := columns(width)
	for i := 0; i < len(cards); i += cols {
		end := min(i+cols, len(cards))
		d.Add(lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...), ids[i:end]...)
	}
}

// cardWidth is the outer width of one card, band included.
func cardWidth(width int) int {
	return width/columns(width) - 2*ui.BandX
}

// card frames body; the border takes the accent color while hovered.
func (p *Page) card(id string, body string, w int) string {
	t := p.theme()
	v := p.visual(id)
	st := t.CardBox.Width(max(w-2, 4))
	if el, ok := p.seq.Get(id); ok && el.Hovered() {
		st = st.BorderForeground(t.Accent)
	}
	return ui.Place(p.style("", st, v, t.Text).Render(body), v)
}

// chips lays out tags left to right, wrapping before width.
func (p *Page) chips(tags []string, width int, id string) string {
	t := p.theme()
	v := p.visual(id)
	var lines []string
	var line string
	for _, tag := range tags {
		chip := ui.Apply(t.Chip, v, t.ChipFg, t.ChipBg).Render(tag)
		switch {
		case line == "":
			line = chip
		case lipgloss.Width(line)+1+lipgloss.Width(chip) > width:
			lines = append(lines, line)
			line = chip
		default:
			line += " " + chip
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (p *Page) services(d *Doc, width int) {
	t := p.theme()
	c := p.ctx.Content

	d.Anchor(AnchorServices)
	d.Add(p.intro(c.ServicesIntro, width, IDServicesIntro), IDServicesIntro)

	w := cardWidth(width)
	inner := max(w-4, 4)
	cards := make([]string, 0, len(c.Services))
	ids := make([]string, 0, len(c.Services))
	for i, s := range c.Services {
		id := ServiceID(i)
		v := p.visual(id)
		title := ansi.Truncate(s.Icon+"  "+s.Title, inner, "…")
		body := lipgloss.JoinVertical(lipgloss.Left,
			ui.Apply(t.Heading, v, t.Text, t.Primary).Render(title),
			"",
			ui.Apply(t.Body.Width(inner), v, t.TextMuted, t.Primary).Render(s.Description),
			"",
			p.chips(s.Tools, inner, id),
		)
		cards = append(cards, p.card(id, body, w))
		ids = append(ids, id)
	}
	p.grid(d, width, cards, ids)
}

func (p *Page) projects(d *Doc, width int) {
	t := p.theme()
	c := p.ctx.Content

	d.Anchor(AnchorPortfolio)
	d.Add(p.intro(c.ProjectsIntro, width, IDProjectsIntro), IDProjectsIntro)

	w := cardWidth(width)
	inner := max(w-4, 4)
	cards := make([]string, 0, len(c.Projects))
	ids := make([]string, 0, len(c.Projects))
	for i, pr := range c.Projects {
		id := ProjectID(i)
		v := p.visual(id)

		image := lipgloss.NewStyle().
			Width(inner).
			Align(lipgloss.Center).
			Background(t.Secondary).
			Foreground(t.TextMuted).
			Render(ansi.Truncate("▣ "+pr.Image, inner, "…"))

		parts := []string{
			image,
			"",
			ui.Apply(t.Heading, v, t.Text, t.Primary).Render(ansi.Truncate(pr.Title, inner, "…")),
			ui.Apply(t.Body.Width(inner), v, t.TextMuted, t.Primary).Render(pr.Description),
			"",
			p.chips(pr.Tech, inner, id),
			"",
		}

		footer := ui.Apply(lipgloss.NewStyle().Foreground(t.TextMuted).Italic(true), v, t.TextMuted, t.Primary).Render(pr.Category)
		if pr.Link != "" {
			linkID := ProjectLinkID(i)
			lv := p.visual(id, linkID)
			label := strings.Repeat(" ", max(int(math.Round(lv.X)), 0)) +
				p.mark(linkID, p.style(linkID, lipgloss.NewStyle(), lv, t.Accent).Render("View Project →"))
			gap := max(inner-lipgloss.Width(footer)-lipgloss.Width(label), 1)
			footer += strings.Repeat(" ", gap) + label
		}
		parts = append(parts, footer)

		cards = append(cards, p.card(id, lipgloss.JoinVertical(lipgloss.Left, parts...), w))
		ids = append(ids, id)
	}
	p.grid(d, width, cards, ids)
}
