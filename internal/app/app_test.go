package app

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/folio/internal/components"
	"github.com/renato0307/folio/internal/content"
	"github.com/renato0307/folio/internal/nav"
	"github.com/renato0307/folio/internal/storage"
	"github.com/renato0307/folio/internal/theme"
	"github.com/renato0307/folio/internal/types"
	"github.com/renato0307/folio/internal/ui"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeClipboard struct {
	copied []string
	err    error
}

func (f *fakeClipboard) WriteAll(s string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, s)
	return nil
}

type harness struct {
	model     Model
	store     *storage.Memory
	clock     *fakeClock
	clipboard *fakeClipboard
}

func newHarness(t *testing.T, width int) *harness {
	t.Helper()

	st := storage.NewMemory()
	store := theme.New(st, theme.WithMarker(func(bool) {}))
	c, err := content.Default()
	require.NoError(t, err)

	h := &harness{
		store:     st,
		clock:     &fakeClock{now: time.Unix(0, 0)},
		clipboard: &fakeClipboard{},
	}
	ctx := types.NewAppContext(ui.GetTheme("default"), store, c)
	m := NewModel(ctx, WithClock(h.clock.Now), WithClipboard(h.clipboard.WriteAll))
	t.Cleanup(m.Close)

	h.model = m
	h.send(tea.WindowSizeMsg{Width: width, Height: 30})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	updated, cmd := h.model.Update(msg)
	h.model = updated.(Model)
	return cmd
}

func (h *harness) keys(keys ...string) {
	for _, k := range keys {
		h.send(keyMsg(k))
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func (h *harness) anchor(t *testing.T, name string) int {
	t.Helper()
	line, ok := h.model.doc.AnchorLine(name)
	require.True(t, ok, "anchor %s", name)
	return line
}

func TestToggleTheme_Persists(t *testing.T) {
	h := newHarness(t, 100)
	assert.Equal(t, theme.Light, h.model.Mode())

	h.keys("t")
	assert.Equal(t, theme.Dark, h.model.Mode())
	v, err := h.store.Get(theme.StorageKey)
	require.NoError(t, err)
	assert.Equal(t, "true", v)

	h.keys("t")
	assert.Equal(t, theme.Light, h.model.Mode())
	v, err = h.store.Get(theme.StorageKey)
	require.NoError(t, err)
	assert.Equal(t, "false", v)
}

func TestScroll_Elevation(t *testing.T) {
	tests := []struct {
		name     string
		lines    int
		elevated bool
	}{
		{"at top", 0, false},
		{"three lines", 3, false},
		{"four lines", 4, true},
		{"far down", 12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, 100)
			for i := 0; i < tt.lines; i++ {
				h.keys("j")
			}
			assert.Equal(t, tt.lines, h.model.Offset())
			assert.Equal(t, tt.elevated, h.model.Elevated())
		})
	}

	t.Run("back to top", func(t *testing.T) {
		h := newHarness(t, 100)
		h.keys("j", "j", "j", "j", "j")
		require.True(t, h.model.Elevated())
		h.keys("g")
		assert.False(t, h.model.Elevated())
	})
}

func TestScroll_Wheel(t *testing.T) {
	h := newHarness(t, 100)

	h.send(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, 3, h.model.Offset())
	assert.False(t, h.model.Elevated())

	h.send(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.True(t, h.model.Elevated())
}

func TestOverlay(t *testing.T) {
	t.Run("menu then link closes and scrolls", func(t *testing.T) {
		h := newHarness(t, 60)

		h.keys("m")
		require.Equal(t, nav.Open, h.model.OverlayState())

		h.keys("2")
		assert.Equal(t, nav.Closed, h.model.OverlayState())
		assert.Equal(t, h.anchor(t, components.AnchorAbout), h.model.Offset())
	})

	t.Run("menu twice", func(t *testing.T) {
		h := newHarness(t, 60)
		h.keys("m", "m")
		assert.Equal(t, nav.Closed, h.model.OverlayState())
	})

	t.Run("escape closes", func(t *testing.T) {
		h := newHarness(t, 60)
		h.keys("m", "esc")
		assert.Equal(t, nav.Closed, h.model.OverlayState())
	})

	t.Run("click outside closes", func(t *testing.T) {
		h := newHarness(t, 60)
		h.keys("m")
		h.send(tea.MouseMsg{X: 5, Y: 25, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
		assert.Equal(t, nav.Closed, h.model.OverlayState())
	})

	t.Run("wide terminals have no menu", func(t *testing.T) {
		h := newHarness(t, 100)
		h.keys("m")
		assert.Equal(t, nav.Closed, h.model.OverlayState())
	})

	t.Run("panel link focus dropped on close", func(t *testing.T) {
		h := newHarness(t, 60)
		h.keys("m", "tab", "tab", "tab")
		require.Equal(t, components.PanelLinkID(0), h.model.focus)

		h.keys("m")
		assert.Empty(t, h.model.focus)
	})
}

func TestJumpPalette(t *testing.T) {
	h := newHarness(t, 100)

	h.keys("/")
	require.True(t, h.model.jump.Active())

	h.keys("s", "e", "r", "v")
	sel := h.model.jump.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, components.AnchorServices, sel.Anchor)

	cmd := h.send(keyMsg("enter"))
	assert.False(t, h.model.jump.Active())
	require.NotNil(t, cmd)

	msg := cmd()
	require.Equal(t, types.JumpMsg{Anchor: components.AnchorServices}, msg)

	h.send(msg)
	assert.Equal(t, h.anchor(t, components.AnchorServices), h.model.Offset())
	assert.True(t, h.model.Elevated())
}

func TestJumpPalette_EscapeKeepsOffset(t *testing.T) {
	h := newHarness(t, 100)
	h.keys("/", "a", "esc")
	assert.False(t, h.model.jump.Active())
	assert.Equal(t, 0, h.model.Offset())
}

func TestJump_UnknownAnchor(t *testing.T) {
	h := newHarness(t, 100)
	cmd := h.send(types.JumpMsg{Anchor: "contact"})
	require.NotNil(t, cmd)
	assert.Equal(t, 0, h.model.Offset())
}

func TestFocus_Order(t *testing.T) {
	h := newHarness(t, 100)

	h.keys("tab")
	assert.Equal(t, components.NavLinkID(0), h.model.focus)

	h.keys("shift+tab")
	assert.Equal(t, components.ProjectLinkID(0), h.model.focus, "wraps to the last element")

	h.keys("esc")
	assert.Empty(t, h.model.focus)
}

func TestActivate(t *testing.T) {
	t.Run("nav link scrolls", func(t *testing.T) {
		h := newHarness(t, 100)
		h.send(releaseMsg{ID: components.NavLinkID(2)})
		assert.Equal(t, h.anchor(t, components.AnchorServices), h.model.Offset())
	})

	t.Run("toggle switches mode", func(t *testing.T) {
		h := newHarness(t, 100)
		h.send(releaseMsg{ID: components.IDThemeToggle})
		assert.Equal(t, theme.Dark, h.model.Mode())
	})

	t.Run("outbound link copies", func(t *testing.T) {
		h := newHarness(t, 100)
		h.keys("tab", "tab", "tab", "tab", "tab")
		require.Equal(t, components.IDHeroContact, h.model.focus)

		cmd := h.send(keyMsg("enter"))
		require.NotNil(t, cmd)
		el, ok := h.model.seq.Get(components.IDHeroContact)
		require.True(t, ok)
		assert.True(t, el.Pressed())

		h.send(releaseMsg{ID: components.IDHeroContact})
		assert.False(t, el.Pressed())
		assert.Equal(t, []string{h.model.ctx.Content.Hero.Contact.URL}, h.clipboard.copied)
	})

	t.Run("copy key", func(t *testing.T) {
		h := newHarness(t, 100)
		h.keys("tab", "tab", "tab", "tab", "tab", "tab", "y")
		assert.Equal(t, []string{h.model.ctx.Content.Hero.Portfolio.URL}, h.clipboard.copied)
	})

	t.Run("copy failure", func(t *testing.T) {
		h := newHarness(t, 100)
		h.clipboard.err = errors.New("no clipboard")
		cmd := h.model.copyLink("https://example.com")
		require.NotNil(t, cmd)
		assert.Equal(t, types.MessageTypeError, cmd().(types.StatusMsg).Type)
	})
}

func TestFocus_Hovers(t *testing.T) {
	h := newHarness(t, 100)
	h.keys("tab")

	el, ok := h.model.seq.Get(components.NavLinkID(0))
	require.True(t, ok)
	assert.True(t, el.Hovered())

	h.keys("tab")
	assert.False(t, el.Hovered())
}

func TestStatus_ClearsOnlyCurrent(t *testing.T) {
	h := newHarness(t, 100)

	h.send(types.Status(types.MessageTypeInfo, "first"))
	h.send(types.Status(types.MessageTypeSuccess, "second"))
	assert.Equal(t, "second", h.model.statusBar.Message())

	h.send(types.ClearStatusMsg{MessageID: 1})
	assert.Equal(t, "second", h.model.statusBar.Message())

	h.send(types.ClearStatusMsg{MessageID: 2})
	assert.Empty(t, h.model.statusBar.Message())
}

func TestPaletteChanged(t *testing.T) {
	h := newHarness(t, 100)
	h.send(types.PaletteChangedMsg{Name: "nord"})
	assert.Equal(t, "nord", h.model.ctx.Theme.Name)
}

func TestFrame_AdvancesAnimations(t *testing.T) {
	h := newHarness(t, 100)
	assert.Equal(t, -float64(components.NavbarHeight), h.model.seq.Visual(components.IDNavbar).Y)

	h.clock.Advance(2 * time.Second)
	h.send(FrameMsg{})
	assert.Equal(t, 2*time.Second, h.model.seq.Now())
	assert.Equal(t, 0.0, h.model.seq.Visual(components.IDNavbar).Y)

	view := h.model.View()
	assert.Contains(t, view, "Portfolio")
	assert.Contains(t, view, "Services")
}

func TestFrame_SingleChain(t *testing.T) {
	h := newHarness(t, 100)
	require.True(t, h.model.seq.Animating())
	assert.True(t, h.model.ticking, "Init owns the first frame")

	assert.Nil(t, h.send(tea.WindowSizeMsg{Width: 120, Height: 30}))

	h.clock.Advance(10 * time.Millisecond)
	assert.NotNil(t, h.send(FrameMsg{}), "the chain continues while animating")
	assert.Nil(t, h.send(tea.WindowSizeMsg{Width: 100, Height: 30}))
}

func TestViewportEnter_FiresAboutOnce(t *testing.T) {
	h := newHarness(t, 100)
	about := h.anchor(t, components.AnchorAbout)

	h.send(types.JumpMsg{Anchor: components.AnchorAbout})
	el, ok := h.model.seq.Get(components.IDAboutText)
	require.True(t, ok)
	require.Equal(t, 1, el.Fires())

	h.keys("g")
	h.send(types.JumpMsg{Anchor: components.AnchorAbout})
	assert.Equal(t, 1, el.Fires())
	assert.Equal(t, about, h.model.Offset())
}

func TestSnapshot(t *testing.T) {
	store := theme.New(storage.NewMemory(), theme.WithMarker(func(bool) {}))
	c, err := content.Default()
	require.NoError(t, err)
	ctx := types.NewAppContext(ui.GetTheme("default"), store, c)

	out := Snapshot(ctx, 100)
	for _, want := range []string{"Portfolio", c.Hero.Name, "Services", c.Services[0].Title, c.Projects[0].Title} {
		assert.Contains(t, out, want)
	}
	assert.Zero(t, store.Subscribers())
}
