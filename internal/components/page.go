package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/renato0307/folio/internal/anim"
	"github.com/renato0307/folio/internal/content"
	"github.com/renato0307/folio/internal/types"
	"github.com/renato0307/folio/internal/ui"
)

// Section anchors, as used by nav items.
const (
	AnchorHome      = "home"
	AnchorAbout     = "about"
	AnchorServices  = "services"
	AnchorPortfolio = "portfolio"
)

// Page renders the scrolling document below the navbar.
type Page struct {
	renderer
}

// NewPage mounts every section element.
func NewPage(ctx *types.AppContext, seq *anim.Sequencer, zones *zone.Manager) *Page {
	MountPage(seq, ctx.Content)
	return &Page{renderer: renderer{ctx: ctx, seq: seq, zones: zones}}
}

func (p *Page) SetFocus(id string) { p.focus = id }

// Focusables lists the page's interactive element ids in reading order.
func (p *Page) Focusables() []string {
	c := p.ctx.Content
	ids := []string{IDHeroContact, IDHeroWork}
	for i := range c.Socials {
		ids = append(ids, SocialID(i))
	}
	for i, pr := range c.Projects {
		if pr.Link != "" {
			ids = append(ids, ProjectLinkID(i))
		}
	}
	return ids
}

// Link returns the outbound link behind an interactive element.
func (p *Page) Link(id string) (content.Link, bool) {
	c := p.ctx.Content
	switch id {
	case IDHeroContact:
		return c.Hero.Contact, true
	case IDHeroWork:
		return c.Hero.Portfolio, true
	}
	for i, s := range c.Socials {
		if id == SocialID(i) {
			return s, true
		}
	}
	for i, pr := range c.Projects {
		if id == ProjectLinkID(i) && pr.Link != "" {
			return content.Link{Label: pr.Title, URL: pr.Link}, true
		}
	}
	return content.Link{}, false
}

// Render lays out every section at width.
func (p *Page) Render(width int) *Doc {
	d := NewDoc()
	p.hero(d, width)
	p.about(d, width)
	p.services(d, width)
	p.projects(d, width)
	return d
}

// text renders s in base colored fg, faded and weighted by the visual of the
// id chain. The last id of the chain receives the focus marker.
func (p *Page) text(chain []string, base lipgloss.Style, fg lipgloss.AdaptiveColor, s string) string {
	v := p.visual(chain...)
	return p.style(chain[len(chain)-1], base, v, fg).Render(s)
}

// placed renders block inside the band of the id chain's visual.
func (p *Page) placed(block string, chain ...string) string {
	return ui.Place(block, p.visual(chain...))
}

func (p *Page) hero(d *Doc, width int) {
	t := p.theme()
	c := p.ctx.Content
	h := c.Hero

	narrow := width < NarrowWidth
	col := width
	if !narrow {
		col = width / 2
	}
	inner := max(col-4*ui.BandX, 10)
	chain := func(ids ...string) []string {
		return append([]string{IDHero, IDHeroText}, ids...)
	}

	badge := p.placed(p.text(chain(IDHeroBadge), t.Chip, t.ChipFg, h.Badge), chain(IDHeroBadge)...)

	nameV := p.visual(chain(IDHeroTitle)...)
	name := ui.Apply(lipgloss.NewStyle().Foreground(t.Accent).Bold(true), nameV, t.Accent, t.Primary).Render(h.Name)
	title := p.placed(p.text(chain(IDHeroTitle), t.Heading, t.Text, h.Greeting+" ")+name, chain(IDHeroTitle)...)

	tagline := p.placed(p.text(chain(IDHeroTagline), t.Body.Width(inner), t.TextMuted, h.Tagline), chain(IDHeroTagline)...)

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		p.mark(IDHeroContact, p.text(chain(IDHeroButtons, IDHeroContact),
			lipgloss.NewStyle().Background(t.Button).Padding(0, 2).Bold(true), lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#ffffff"}, h.Contact.Label)),
		"  ",
		p.mark(IDHeroWork, p.text(chain(IDHeroButtons, IDHeroWork),
			lipgloss.NewStyle().Background(t.Hover).Padding(0, 2), t.Accent, h.Portfolio.Label)),
	)
	buttons = p.placed(buttons, chain(IDHeroButtons)...)

	icons := make([]string, 0, len(c.Socials))
	for i, s := range c.Socials {
		id := SocialID(i)
		icons = append(icons, p.mark(id, p.text(chain(IDHeroSocials, id),
			lipgloss.NewStyle().Background(t.ToggleBg).Padding(0, 1), t.ToggleFg, s.Icon)))
	}
	socials := p.placed(strings.Join(icons, " "), chain(IDHeroSocials)...)

	text := p.placed(lipgloss.JoinVertical(lipgloss.Left, badge, title, tagline, buttons, socials), IDHero, IDHeroText)
	image := p.picture(h.Image, max(min(col-4*ui.BandX, 36), 12), 7, []string{IDHero, IDHeroImage}, IDHeroGlow)

	var block string
	if narrow {
		block = lipgloss.JoinVertical(lipgloss.Left, text, image)
	} else {
		block = lipgloss.JoinHorizontal(lipgloss.Center, lipgloss.NewStyle().Width(col).Render(text), image)
	}

	d.Anchor(AnchorHome)
	d.Add(block, IDHero)
}

// picture renders an image placeholder framed by the looping glow.
func (p *Page) picture(path string, w, h int, chain []string, glowID string) string {
	t := p.theme()
	v := p.visual(chain...)
	box := p.style("", lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(w).
		Height(h).
		Align(lipgloss.Center, lipgloss.Center), v, t.TextMuted)
	glow := ui.Glow(w+2, p.seq.Visual(glowID), t.GradientFrom, t.GradientTo)
	return ui.Place(lipgloss.JoinVertical(lipgloss.Center, glow, box.Render("◯\n"+path), glow), v)
}

func (p *Page) about(d *Doc, width int) {
	t := p.theme()
	a := p.ctx.Content.About

	narrow := width < NarrowWidth
	textW := width - 4*ui.BandX
	if !narrow {
		textW = width/2 - 4*ui.BandX
	}
	textW = max(textW, 10)

	chain := []string{IDAbout, IDAboutText}
	heading := p.text(chain, t.Heading, t.Text, a.Title+" ") +
		p.text(chain, t.Heading, t.Accent, a.Highlight)
	if a.Subtitle != "" {
		heading += "\n" + p.text(chain, t.Heading, t.Text, a.Subtitle)
	}

	parts := []string{heading}
	for _, para := range content.Markdown(a.Text) {
		parts = append(parts, "", p.paragraph(para, chain, textW))
	}
	text := p.placed(lipgloss.JoinVertical(lipgloss.Left, parts...), chain...)
	image := p.picture(a.Image, max(min(width/2-4*ui.BandX, 36), 12), 7, []string{IDAbout, IDAboutImage}, IDAboutGlow)

	d.Anchor(AnchorAbout)
	top := d.Lines()
	if narrow {
		d.Add(image, IDAboutImage)
		d.Add(text, IDAboutText)
	} else {
		d.Add(lipgloss.JoinHorizontal(lipgloss.Center, image, text), IDAboutImage, IDAboutText)
	}

	if a.ShowStats && len(a.Stats) > 0 {
		stats := make([]string, 0, len(a.Stats))
		sv := p.visual(IDAbout, IDAboutStats)
		for _, s := range a.Stats {
			value := ui.Apply(lipgloss.NewStyle().Foreground(t.Accent).Bold(true), sv, t.Accent, t.Primary).Render(s.Value)
			label := ui.Apply(lipgloss.NewStyle().Foreground(t.TextMuted), sv, t.TextMuted, t.Primary).Render(s.Label)
			stats = append(stats, lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(t.Border).
				Padding(0, 1).
				Render(lipgloss.JoinVertical(lipgloss.Center, value, label)))
		}
		d.Add(ui.Place(lipgloss.JoinHorizontal(lipgloss.Top, stats...), sv), IDAboutStats)
	}
	d.Track(IDAbout, top)
}

// paragraph renders markdown spans wrapped to width.
func (p *Page) paragraph(para content.Paragraph, chain []string, width int) string {
	t := p.theme()
	v := p.visual(chain...)
	var sb strings.Builder
	for _, s := range para {
		fg := t.TextMuted
		st := lipgloss.NewStyle()
		if s.Strong {
			st = st.Bold(true)
			fg = t.Text
		}
		if s.Emph {
			st = st.Italic(true)
		}
		if s.Link != "" {
			st = st.Underline(true)
			fg = t.Accent
		}
		sb.WriteString(ui.Apply(st.Foreground(fg), v, fg, t.Primary).Render(s.Text))
	}
	return lipgloss.NewStyle().Width(width).Render(sb.String())
}
