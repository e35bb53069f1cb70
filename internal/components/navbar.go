package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/renato0307/folio/internal/anim"
	"github.com/renato0307/folio/internal/content"
	"github.com/renato0307/folio/internal/nav"
	"github.com/renato0307/folio/internal/scroll"
	"github.com/renato0307/folio/internal/theme"
	"github.com/renato0307/folio/internal/types"
	"github.com/renato0307/folio/internal/ui"
)

// Navbar is the fixed top bar: logo, anchor links, the theme toggle and, on
// narrow terminals, the menu button that opens the navigation panel.
type Navbar struct {
	renderer
	observer    *scroll.Observer
	overlay     *nav.Controller
	links       []content.NavItem
	width       int
	elevated    bool
	outgoing    theme.Mode
	unsubscribe func()
}

// NewNavbar mounts the navbar elements and starts observing src.
func NewNavbar(ctx *types.AppContext, seq *anim.Sequencer, src scroll.Source, zones *zone.Manager) *Navbar {
	n := &Navbar{
		renderer: renderer{ctx: ctx, seq: seq, zones: zones},
		links:    ctx.Content.Links(),
	}
	MountNavbar(seq, len(n.links))
	n.overlay = nav.New(seq, IDNavPanel)

	n.observer = scroll.New(src)
	n.observer.OnChange(func(elevated bool) { n.elevated = elevated })

	// the old glyph leaves before the new one enters
	n.unsubscribe = ctx.Store.Subscribe(func(m theme.Mode) {
		if !seq.Exiting(IDThemeIcon) {
			n.outgoing = m.Opposite()
		}
		seq.Replace(IDThemeIcon, ThemeIconDescriptor())
	})
	return n
}

func (n *Navbar) SetWidth(width int) { n.width = width }
func (n *Navbar) SetFocus(id string) { n.focus = id }
func (n *Navbar) Narrow() bool       { return n.width < NarrowWidth }
func (n *Navbar) Elevated() bool     { return n.elevated }

func (n *Navbar) Overlay() *nav.Controller { return n.overlay }
func (n *Navbar) Links() []content.NavItem { return n.links }

// Focusables lists the navbar's interactive element ids in tab order.
func (n *Navbar) Focusables() []string {
	var ids []string
	if n.Narrow() {
		ids = append(ids, IDMenuButton, IDThemeToggle)
		if n.overlay.IsOpen() {
			for i := range n.links {
				ids = append(ids, PanelLinkID(i))
			}
		}
		return ids
	}
	for i := range n.links {
		ids = append(ids, NavLinkID(i))
	}
	return append(ids, IDThemeToggle)
}

// Close stops observing and unmounts the navbar elements.
func (n *Navbar) Close() {
	n.observer.Close()
	if n.unsubscribe != nil {
		n.unsubscribe()
		n.unsubscribe = nil
	}
	n.overlay.Reset()
	for _, id := range []string{IDNavbar, IDLogo, IDThemeToggle, IDThemeIcon, IDMenuButton} {
		n.seq.Destroy(id)
	}
	for i := range n.links {
		n.seq.Destroy(NavLinkID(i))
		n.seq.Destroy(PanelLinkID(i))
	}
}

// View renders the bar, always NavbarHeight lines.
func (n *Navbar) View() string {
	t := n.theme()
	bar := n.visual(IDNavbar)

	left := n.logo(bar)
	var right string
	if n.Narrow() {
		right = lipgloss.JoinHorizontal(lipgloss.Top, n.toggle(bar), " ", n.menuButton(bar))
	} else {
		parts := make([]string, 0, len(n.links)+1)
		for i, item := range n.links {
			id := NavLinkID(i)
			st := n.style(id, t.NavLink, n.visual(IDNavbar, id), t.TextMuted)
			parts = append(parts, n.mark(id, st.Render(item.Label)))
		}
		parts = append(parts, " ", n.toggle(bar))
		right = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}

	inner := max(n.width-4, 0)
	if lipgloss.Width(left)+lipgloss.Width(right) > inner {
		left = ansi.Truncate(left, max(inner-lipgloss.Width(right)-1, 0), "")
	}
	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 1)
	row := "  " + left + strings.Repeat(" ", gap) + right

	bottom := ""
	if n.elevated {
		bottom = lipgloss.NewStyle().Foreground(t.Border).Background(t.Navbar).Render(strings.Repeat("─", max(n.width, 0)))
	}

	block := ui.SlideDown(strings.Join([]string{"", row, bottom}, "\n"), bar.Y)
	return padTop(block, NavbarHeight)
}

func (n *Navbar) logo(parent anim.Visual) string {
	t := n.theme()
	c := n.ctx.Content
	v := combine(parent, n.seq.Visual(IDLogo))
	if v.Opacity < 1 {
		return lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(ui.Fade(t.GradientFrom, t.Primary, v.Opacity))).
			Render(c.Logo)
	}
	return lipgloss.NewStyle().Bold(true).Render(ui.Gradient(c.Logo, t.GradientFrom, t.GradientTo, 0))
}

func (n *Navbar) toggle(parent anim.Visual) string {
	t := n.theme()
	mode := n.ctx.Store.Mode()
	if n.seq.Exiting(IDThemeIcon) {
		mode = n.outgoing
	}
	glyph := "☾"
	if mode.IsDark() {
		glyph = "☀"
	}
	iv := combine(parent, n.seq.Visual(IDThemeIcon))
	icon := ui.Apply(lipgloss.NewStyle().Foreground(t.ToggleFg), iv, t.ToggleFg, t.ToggleBg).Render(glyph)

	st := n.style(IDThemeToggle, lipgloss.NewStyle().Background(t.ToggleBg).Padding(0, 1),
		combine(parent, n.seq.Visual(IDThemeToggle)), t.ToggleFg)
	return n.mark(IDThemeToggle, st.Render(icon))
}

func (n *Navbar) menuButton(parent anim.Visual) string {
	t := n.theme()
	glyph := "≡"
	if n.overlay.IsOpen() {
		glyph = "✕"
	}
	st := n.style(IDMenuButton, lipgloss.NewStyle().Padding(0, 1),
		combine(parent, n.seq.Visual(IDMenuButton)), t.Text)
	return n.mark(IDMenuButton, st.Render(glyph))
}

// PanelView renders the navigation panel while it is open or closing; it is
// empty on wide terminals.
func (n *Navbar) PanelView() string {
	if !n.Narrow() || !n.overlay.PanelVisible() {
		return ""
	}
	t := n.theme()
	pv := n.overlay.PanelVisual().Resolved()
	if pv.Height <= 0 {
		return ""
	}

	lines := make([]string, 0, len(n.links))
	for i, item := range n.links {
		id := PanelLinkID(i)
		lv := combine(pv, n.seq.Visual(id))
		indent := strings.Repeat(" ", 2+max(int(math.Round(lv.X)), 0))
		st := n.style(id, lipgloss.NewStyle(), lv, t.TextMuted)
		lines = append(lines, indent+n.mark(id, st.Render(item.Label)))
	}

	block := lipgloss.NewStyle().
		Width(n.width).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		Render(strings.Join(lines, "\n"))
	if pv.Height < 1 {
		block = ui.ClipHeight(block, pv.Height)
	}
	return block
}

// padTop prepends blank lines until block is h lines tall.
func padTop(block string, h int) string {
	if block == "" {
		return strings.Repeat("\n", max(h-1, 0))
	}
	missing := h - lipgloss.Height(block)
	if missing <= 0 {
		return block
	}
	return strings.Repeat("\n", missing) + block
}
