package components

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/folio/internal/anim"
	"github.com/renato0307/folio/internal/content"
	"github.com/renato0307/folio/internal/nav"
	"github.com/renato0307/folio/internal/scroll"
	"github.com/renato0307/folio/internal/storage"
	"github.com/renato0307/folio/internal/theme"
	"github.com/renato0307/folio/internal/types"
	"github.com/renato0307/folio/internal/ui"
)

func newContext(t *testing.T) *types.AppContext {
	t.Helper()
	c, err := content.Default()
	require.NoError(t, err)
	store := theme.New(storage.NewMemory(), theme.WithMarker(func(bool) {}))
	return types.NewAppContext(ui.GetTheme("default"), store, c)
}

func defaultTheme() *ui.Theme { return ui.GetTheme("default") }

func TestDoc(t *testing.T) {
	d := NewDoc()
	d.Anchor("top")
	d.Add("a\nb", "first", "second")
	d.Add("", "skipped")
	d.Anchor("bottom")
	d.Add("c")
	d.Track("all", 0)

	assert.Equal(t, 3, d.Lines())
	assert.Equal(t, "a\nb\nc", d.String())
	assert.Equal(t, []scroll.Region{
		{ID: "first", Top: 0, Bottom: 2},
		{ID: "second", Top: 0, Bottom: 2},
		{ID: "all", Top: 0, Bottom: 3},
	}, d.Regions())

	line, ok := d.AnchorLine("bottom")
	assert.True(t, ok)
	assert.Equal(t, 2, line)

	_, ok = d.AnchorLine("missing")
	assert.False(t, ok)
}

func TestOverlay(t *testing.T) {
	tests := []struct {
		name string
		base string
		top  string
		want string
	}{
		{name: "empty top", base: "1\n2\n3", top: "", want: "1\n2\n3"},
		{name: "replaces leading lines", base: "1\n2\n3", top: "x\ny", want: "x\ny\n3"},
		{name: "longer top extends", base: "1", top: "x\ny", want: "x\ny"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlay(tt.base, tt.top))
		})
	}
}

func TestLayoutBodyHeight(t *testing.T) {
	tests := []struct {
		name   string
		height int
		footer int
		want   int
	}{
		{name: "one help row", height: 30, footer: 1, want: 25},
		{name: "full help", height: 30, footer: 6, want: 20},
		{name: "tiny terminal", height: 5, footer: 1, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(80, tt.height)
			assert.Equal(t, tt.want, l.BodyHeight(tt.footer))
		})
	}
}

func TestLayoutRenderDrawsOverlays(t *testing.T) {
	l := NewLayout(20, 10)
	out := l.Render("nav", "body-1\nbody-2", "status", "", "panel")

	assert.Equal(t, "nav\npanel\nbody-2\nstatus", stripTrailing(out))
}

func TestStatusBar(t *testing.T) {
	tests := []struct {
		name    string
		msgType types.MessageType
		prefix  string
	}{
		{name: "success", msgType: types.MessageTypeSuccess, prefix: "✓"},
		{name: "error", msgType: types.MessageTypeError, prefix: "✗"},
		{name: "info", msgType: types.MessageTypeInfo, prefix: "ℹ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := NewStatusBar(defaultTheme)
			sb.SetWidth(40)
			sb.SetMessage("copied", tt.msgType)

			view := sb.View()
			assert.Contains(t, view, tt.prefix+" copied")
			assert.Equal(t, "copied", sb.Message())
		})
	}

	t.Run("empty keeps one line", func(t *testing.T) {
		sb := NewStatusBar(defaultTheme)
		sb.SetWidth(40)
		assert.Equal(t, 1, lipgloss.Height(sb.View()))
	})

	t.Run("long message truncated", func(t *testing.T) {
		sb := NewStatusBar(defaultTheme)
		sb.SetWidth(12)
		sb.SetMessage(strings.Repeat("x", 50), types.MessageTypeInfo)
		view := sb.View()
		assert.Equal(t, 12, lipgloss.Width(view))
		assert.Contains(t, view, "…")

		sb.ClearMessage()
		assert.Empty(t, sb.Message())
	})
}

func TestJumpEntries(t *testing.T) {
	c, err := content.Default()
	require.NoError(t, err)

	entries := JumpEntries(c)
	require.Len(t, entries, 4+len(c.Services)+len(c.Projects))

	assert.Equal(t, JumpEntry{Label: "Home", Detail: "section", Anchor: AnchorHome}, entries[0])
	assert.Equal(t, JumpEntry{Label: "Portfolio", Detail: "section", Anchor: AnchorPortfolio}, entries[3])
	assert.Equal(t, "Web Development", entries[4].Label)
	assert.Equal(t, AnchorServices, entries[4].Anchor)

	last := entries[len(entries)-1]
	assert.Equal(t, "project", last.Detail)
	assert.Equal(t, AnchorPortfolio, last.Anchor)
}

func TestJumpFilter(t *testing.T) {
	c, err := content.Default()
	require.NoError(t, err)
	entries := JumpEntries(c)

	tests := []struct {
		name  string
		query string
		first string
	}{
		{name: "empty lists everything", query: "", first: "Home"},
		{name: "service", query: "mobile", first: "Mobile Development"},
		{name: "project", query: "attendance", first: "Employee Attendance Visualization"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := NewJump(entries, defaultTheme)
			j.Filter(tt.query)
			require.NotEmpty(t, j.Items())
			assert.Equal(t, tt.first, j.Items()[0].Label)
		})
	}

	t.Run("no match", func(t *testing.T) {
		j := NewJump(entries, defaultTheme)
		j.Filter("qqqq")
		assert.Empty(t, j.Items())
		assert.Nil(t, j.Selected())
	})
}

func TestJumpNavigation(t *testing.T) {
	entries := make([]JumpEntry, 12)
	for i := range entries {
		entries[i] = JumpEntry{Label: string(rune('a' + i)), Anchor: AnchorHome}
	}
	j := NewJump(entries, defaultTheme)
	j.Open()

	j.NavigateUp()
	assert.Equal(t, "a", j.Selected().Label, "up at the top stays put")

	for range MaxPaletteItems {
		j.NavigateDown()
	}
	assert.Equal(t, "i", j.Selected().Label)
	assert.Equal(t, 1, j.scrollOffset)

	for range 20 {
		j.NavigateDown()
	}
	assert.Equal(t, "l", j.Selected().Label, "down at the bottom stays put")

	for range MaxPaletteItems {
		j.NavigateUp()
	}
	assert.Equal(t, "d", j.Selected().Label)
	assert.Equal(t, 3, j.scrollOffset)
}

func TestJumpUpdate(t *testing.T) {
	c, err := content.Default()
	require.NoError(t, err)

	t.Run("typing filters and enter jumps", func(t *testing.T) {
		j := NewJump(JumpEntries(c), defaultTheme)
		j.SetWidth(60)
		j.Open()
		require.True(t, j.Active())

		j.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("backend")})
		require.NotEmpty(t, j.Items())
		assert.Equal(t, "Backend Development", j.Items()[0].Label)
		assert.Contains(t, j.View(), "Backend Development")

		cmd := j.Update(tea.KeyMsg{Type: tea.KeyEnter})
		require.NotNil(t, cmd)
		assert.Equal(t, types.JumpMsg{Anchor: AnchorServices}, cmd())
		assert.False(t, j.Active())
		assert.Empty(t, j.View())
	})

	t.Run("escape closes", func(t *testing.T) {
		j := NewJump(JumpEntries(c), defaultTheme)
		j.Open()
		assert.Nil(t, j.Update(tea.KeyMsg{Type: tea.KeyEsc}))
		assert.False(t, j.Active())
	})

	t.Run("enter without match", func(t *testing.T) {
		j := NewJump(JumpEntries(c), defaultTheme)
		j.Open()
		j.Filter("qqqq")
		assert.Nil(t, j.Update(tea.KeyMsg{Type: tea.KeyEnter}))
		assert.False(t, j.Active())
	})
}

func newNavbar(t *testing.T, width int) (*Navbar, *anim.Sequencer, *scroll.ViewportSource, *types.AppContext) {
	t.Helper()
	ctx := newContext(t)
	seq := anim.NewSequencer()
	src := scroll.NewViewportSource()
	n := NewNavbar(ctx, seq, src, nil)
	n.SetWidth(width)
	return n, seq, src, ctx
}

func TestNavbarFocusables(t *testing.T) {
	t.Run("wide", func(t *testing.T) {
		n, _, _, _ := newNavbar(t, 100)
		defer n.Close()

		assert.False(t, n.Narrow())
		assert.Equal(t, []string{NavLinkID(0), NavLinkID(1), NavLinkID(2), IDThemeToggle}, n.Focusables())
	})

	t.Run("narrow", func(t *testing.T) {
		n, _, _, _ := newNavbar(t, 60)
		defer n.Close()

		assert.True(t, n.Narrow())
		assert.Equal(t, []string{IDMenuButton, IDThemeToggle}, n.Focusables())

		n.Overlay().Fire(nav.MenuButtonPressed)
		assert.Equal(t, []string{
			IDMenuButton, IDThemeToggle,
			PanelLinkID(0), PanelLinkID(1), PanelLinkID(2),
		}, n.Focusables())
	})
}

func TestNavbarElevation(t *testing.T) {
	n, _, src, _ := newNavbar(t, 100)
	defer n.Close()

	tests := []struct {
		lines int
		want  bool
	}{
		{lines: 0, want: false},
		{lines: 3, want: false},
		{lines: 4, want: true},
		{lines: 1, want: false},
	}
	for _, tt := range tests {
		src.Publish(float64(tt.lines * LineUnits))
		assert.Equal(t, tt.want, n.Elevated(), "lines=%d", tt.lines)
	}
}

func TestNavbarView(t *testing.T) {
	n, seq, src, _ := newNavbar(t, 100)
	defer n.Close()

	assert.Equal(t, NavbarHeight, lipgloss.Height(n.View()), "hidden navbar keeps its rows")

	seq.Advance(time.Hour)
	view := n.View()
	assert.Equal(t, NavbarHeight, lipgloss.Height(view))
	for _, label := range []string{"Portfolio", "Home", "About", "Services"} {
		assert.Contains(t, view, label)
	}
	assert.NotContains(t, view, "Contact", "disabled items are not shown")
	assert.NotContains(t, view, "───")

	src.Publish(float64(10 * LineUnits))
	assert.Contains(t, n.View(), "───")
}

func TestNavbarPanel(t *testing.T) {
	n, seq, _, _ := newNavbar(t, 60)
	defer n.Close()
	seq.Advance(time.Hour)

	assert.Empty(t, n.PanelView())

	n.Overlay().Fire(nav.MenuButtonPressed)
	seq.Advance(2 * time.Hour)
	panel := n.PanelView()
	assert.Contains(t, panel, "About")

	n.Overlay().Fire(nav.OutsideSelected)
	seq.Advance(3 * time.Hour)
	assert.False(t, n.Overlay().PanelVisible())
	assert.Empty(t, n.PanelView())
}

func TestNavbarClose(t *testing.T) {
	n, seq, src, ctx := newNavbar(t, 100)
	require.Equal(t, 1, src.Listeners())
	require.Equal(t, 1, ctx.Store.Subscribers())

	n.Close()

	assert.Zero(t, src.Listeners())
	assert.Zero(t, ctx.Store.Subscribers())
	assert.False(t, seq.Alive(IDNavbar))
	assert.False(t, seq.Alive(NavLinkID(0)))

	src.Publish(float64(10 * LineUnits))
	assert.False(t, n.Elevated(), "no updates after close")
}

func TestNavbarThemeChangeSwapsIcon(t *testing.T) {
	n, seq, _, ctx := newNavbar(t, 100)
	defer n.Close()

	seq.Advance(time.Second)
	before, ok := seq.StartedAt(IDThemeIcon)
	require.True(t, ok)
	assert.Contains(t, n.View(), "☾")

	ctx.Store.Toggle()
	require.True(t, seq.Exiting(IDThemeIcon), "old glyph plays its exit first")
	assert.Contains(t, n.View(), "☾")
	assert.NotContains(t, n.View(), "☀")

	// a second change during the exit only swaps what comes next
	ctx.Store.Toggle()
	ctx.Store.Toggle()
	assert.Contains(t, n.View(), "☾")

	seq.Advance(time.Second + 100*time.Millisecond)
	require.True(t, seq.Exiting(IDThemeIcon))

	seq.Advance(time.Second + 150*time.Millisecond)
	require.False(t, seq.Exiting(IDThemeIcon))
	after, ok := seq.StartedAt(IDThemeIcon)
	require.True(t, ok)
	assert.Greater(t, after, before)
	assert.GreaterOrEqual(t, after, time.Second+150*time.Millisecond)
	assert.Contains(t, n.View(), "☀")
}

func TestPage(t *testing.T) {
	ctx := newContext(t)
	seq := anim.NewSequencer()
	p := NewPage(ctx, seq, nil)

	t.Run("focusables", func(t *testing.T) {
		assert.Equal(t, []string{
			IDHeroContact, IDHeroWork,
			SocialID(0), SocialID(1), SocialID(2), SocialID(3),
			ProjectLinkID(0),
		}, p.Focusables())
	})

	t.Run("links", func(t *testing.T) {
		link, ok := p.Link(IDHeroContact)
		require.True(t, ok)
		assert.Equal(t, "https://wa.me/6289693967005", link.URL)

		link, ok = p.Link(ProjectLinkID(0))
		require.True(t, ok)
		assert.Equal(t, "https://rii92.github.io/bps-sanggau-kehadiran/", link.URL)

		_, ok = p.Link(IDNavbar)
		assert.False(t, ok)
	})

	for _, width := range []int{60, 110} {
		t.Run(fmt.Sprintf("anchors in page order at %d", width), func(t *testing.T) {
			d := p.Render(width)

			var lines []int
			for _, a := range []string{AnchorHome, AnchorAbout, AnchorServices, AnchorPortfolio} {
				line, ok := d.AnchorLine(a)
				require.True(t, ok, a)
				lines = append(lines, line)
			}
			assert.IsIncreasing(t, lines)
			assert.Equal(t, 0, lines[0])
			assert.Equal(t, lipgloss.Height(d.String()), d.Lines())

			ids := make(map[string]bool)
			for _, r := range d.Regions() {
				ids[r.ID] = true
				assert.LessOrEqual(t, r.Top, r.Bottom, r.ID)
			}
			for _, id := range []string{IDHero, IDAbout, ServiceID(0), ServiceID(3), ProjectID(0)} {
				assert.True(t, ids[id], "region %s", id)
			}
		})
	}
}

func TestColumns(t *testing.T) {
	assert.Equal(t, 1, columns(60))
	assert.Equal(t, 1, columns(89))
	assert.Equal(t, 2, columns(90))
	assert.Equal(t, 2, columns(110))
}

func stripTrailing(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
