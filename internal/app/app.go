package app

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/renato0307/folio/internal/anim"
	"github.com/renato0307/folio/internal/components"
	"github.com/renato0307/folio/internal/keyboard"
	"github.com/renato0307/folio/internal/logging"
	"github.com/renato0307/folio/internal/messages"
	"github.com/renato0307/folio/internal/nav"
	"github.com/renato0307/folio/internal/scroll"
	"github.com/renato0307/folio/internal/theme"
	"github.com/renato0307/folio/internal/types"
	"github.com/renato0307/folio/internal/ui"
)

// FrameMsg advances the animation clock by one frame.
type FrameMsg struct{}

// releaseMsg ends a keyboard press on an element and activates it.
type releaseMsg struct {
	ID string
}

// Option configures a Model.
type Option func(*Model)

// WithClock replaces the wall clock driving animations.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithClipboard replaces the function used to copy outbound links.
func WithClipboard(copy func(string) error) Option {
	return func(m *Model) { m.copy = copy }
}

type Model struct {
	ctx       *types.AppContext
	seq       *anim.Sequencer
	source    *scroll.ViewportSource
	regions   *scroll.Intersections
	navbar    *components.Navbar
	page      *components.Page
	doc       *components.Doc
	viewport  viewport.Model
	jump      *components.Jump
	statusBar *components.StatusBar
	layout    *components.Layout
	help      help.Model
	keys      keyboard.KeyMap
	zones     *zone.Manager
	linkIndex map[string]int
	focus     string
	hovered   string
	pressed   string
	messageID int
	ticking   bool
	start     time.Time
	now       func() time.Time
	copy      func(string) error
	width     int
	height    int
	log       *logging.Logger
}

func NewModel(ctx *types.AppContext, opts ...Option) Model {
	seq := anim.NewSequencer()
	source := scroll.NewViewportSource()
	zones := zone.New()
	palette := func() *ui.Theme { return ctx.Theme }

	m := Model{
		ctx:       ctx,
		seq:       seq,
		source:    source,
		regions:   scroll.NewIntersections(),
		zones:     zones,
		statusBar: components.NewStatusBar(palette),
		jump:      components.NewJump(components.JumpEntries(ctx.Content), palette),
		layout:    components.NewLayout(80, 24),
		help:      help.New(),
		viewport:  viewport.New(80, 20),
		linkIndex: make(map[string]int),
		now:       time.Now,
		copy:      clipboard.WriteAll,
		log:       logging.For("app"),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.start = m.now()

	m.navbar = components.NewNavbar(ctx, seq, source, zones)
	m.page = components.NewPage(ctx, seq, zones)

	labels := make([]string, 0, len(m.navbar.Links()))
	for i, item := range m.navbar.Links() {
		labels = append(labels, item.Label)
		m.linkIndex[components.NavLinkID(i)] = i
		m.linkIndex[components.PanelLinkID(i)] = i
	}
	m.keys = keyboard.GetKeys().KeyMap(labels)

	m.resize(80, 24)
	// Init schedules the first frame
	m.ticking = true
	return m
}

func (m Model) Init() tea.Cmd {
	m.log.Info("folio started", "theme", m.ctx.Theme.Name, "mode", m.ctx.Store.Mode())
	return frame()
}

func frame() tea.Cmd {
	return tea.Tick(time.Second/anim.FPS, func(time.Time) tea.Msg { return FrameMsg{} })
}

// ensureTick schedules the next frame while something is animating.
func (m *Model) ensureTick() tea.Cmd {
	if m.ticking || !m.seq.Animating() {
		return nil
	}
	m.ticking = true
	return frame()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, m.ensureTick()

	case FrameMsg:
		m.ticking = false
		m.seq.Advance(m.now().Sub(m.start))
		m.render()
		return m, m.ensureTick()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case releaseMsg:
		m.seq.Press(msg.ID, false)
		cmd := m.activate(msg.ID)
		m.render()
		return m, tea.Batch(cmd, m.ensureTick())

	case types.JumpMsg:
		cmd := m.jumpTo(msg.Anchor)
		return m, tea.Batch(cmd, m.ensureTick())

	case types.ThemeChangedMsg:
		m.render()
		return m, messages.InfoCmd("Switched to %s mode", msg.Mode)

	case types.PaletteChangedMsg:
		if msg.Name != m.ctx.Theme.Name {
			m.ctx.Theme = ui.GetTheme(msg.Name)
			m.render()
			return m, messages.InfoCmd("Palette %s applied", m.ctx.Theme.Name)
		}
		return m, nil

	case types.StatusMsg:
		m.messageID++
		m.log.Debug("status", "type", msg.Type, "message", msg.Message)
		m.statusBar.SetMessage(msg.Message, msg.Type)
		return m, messages.ClearAfter(m.messageID, components.StatusBarDisplayDuration)

	case types.ClearStatusMsg:
		if msg.MessageID == m.messageID {
			m.statusBar.ClearMessage()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.jump.Active() {
		cmd := m.jump.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	overlay := m.navbar.Overlay()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.navbar.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)

	case key.Matches(msg, m.keys.Back):
		if overlay.IsOpen() {
			overlay.Fire(nav.OutsideSelected)
			m.clampFocus()
		} else {
			m.setFocus("")
		}

	case key.Matches(msg, m.keys.ToggleTheme):
		cmd = m.toggleTheme()

	case key.Matches(msg, m.keys.Menu):
		if m.navbar.Narrow() {
			overlay.Fire(nav.MenuButtonPressed)
			m.clampFocus()
		}

	case key.Matches(msg, m.keys.FocusNext):
		m.moveFocus(1)

	case key.Matches(msg, m.keys.FocusPrev):
		m.moveFocus(-1)

	case key.Matches(msg, m.keys.Activate):
		if m.focus != "" {
			cmd = m.press(m.focus)
		}

	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)

	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()

	case key.Matches(msg, m.keys.JumpTop):
		m.viewport.GotoTop()

	case key.Matches(msg, m.keys.JumpBottom):
		m.viewport.GotoBottom()

	case key.Matches(msg, m.keys.Jump):
		cmd = m.jump.Open()

	case key.Matches(msg, m.keys.CopyLink):
		cmd = m.copyFocused()

	default:
		if i := m.keys.NavLink(msg); i >= 0 {
			if overlay.IsOpen() {
				overlay.Fire(nav.NavLinkActivated)
				m.clampFocus()
			}
			cmd = m.followLink(i)
		}
	}

	m.syncScroll()
	m.render()
	return m, tea.Batch(cmd, m.ensureTick())
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if tea.MouseEvent(msg).IsWheel() {
		m.viewport, _ = m.viewport.Update(msg)
		m.syncScroll()
		m.render()
		return m, m.ensureTick()
	}

	hit := m.hitTest(msg)
	var cmd tea.Cmd

	switch msg.Action {
	case tea.MouseActionMotion:
		if hit != m.hovered {
			old := m.hovered
			m.hovered = hit
			m.syncHover(old, hit)
		}

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			break
		}
		if m.navbar.Overlay().IsOpen() && !m.insidePanel(msg.Y) && hit != components.IDMenuButton {
			m.navbar.Overlay().Fire(nav.OutsideSelected)
			m.clampFocus()
		}
		if hit != "" {
			m.seq.Press(hit, true)
			m.pressed = hit
		}

	case tea.MouseActionRelease:
		if m.pressed == "" {
			break
		}
		id := m.pressed
		m.pressed = ""
		m.seq.Press(id, false)
		if id == hit {
			cmd = m.activate(id)
		}
	}

	m.render()
	return m, tea.Batch(cmd, m.ensureTick())
}

// hitTest returns the interactive element under the pointer.
func (m *Model) hitTest(msg tea.MouseMsg) string {
	for _, id := range m.focusables() {
		if z := m.zones.Get(id); z != nil && z.InBounds(msg) {
			return id
		}
	}
	return ""
}

// insidePanel reports whether row y is covered by the navigation panel.
func (m *Model) insidePanel(y int) bool {
	panel := m.navbar.PanelView()
	if panel == "" {
		return false
	}
	return y >= components.NavbarHeight && y < components.NavbarHeight+lipgloss.Height(panel)
}

// activate performs the action of an interactive element.
func (m *Model) activate(id string) tea.Cmd {
	overlay := m.navbar.Overlay()

	switch {
	case id == components.IDThemeToggle:
		return m.toggleTheme()

	case id == components.IDMenuButton:
		overlay.Fire(nav.MenuButtonPressed)
		m.clampFocus()
		return nil

	case strings.HasPrefix(id, "panel-link-"):
		overlay.Fire(nav.NavLinkActivated)
		m.clampFocus()
		return m.followLink(m.linkIndex[id])

	case strings.HasPrefix(id, "nav-link-"):
		return m.followLink(m.linkIndex[id])
	}

	if link, ok := m.page.Link(id); ok {
		return m.copyLink(link.URL)
	}
	return nil
}

// press holds the press state on id for PressDuration, then activates it.
func (m *Model) press(id string) tea.Cmd {
	m.seq.Press(id, true)
	return tea.Tick(components.PressDuration, func(time.Time) tea.Msg {
		return releaseMsg{ID: id}
	})
}

func (m *Model) toggleTheme() tea.Cmd {
	mode := m.ctx.Store.Toggle()
	return func() tea.Msg { return types.ThemeChangedMsg{Mode: mode} }
}

func (m *Model) followLink(i int) tea.Cmd {
	links := m.navbar.Links()
	if i < 0 || i >= len(links) {
		return nil
	}
	return m.jumpTo(links[i].Anchor)
}

// jumpTo scrolls the anchor's section to the top of the viewport.
func (m *Model) jumpTo(anchor string) tea.Cmd {
	line, ok := m.doc.AnchorLine(anchor)
	if !ok {
		return messages.ErrorCmd("No section %q", anchor)
	}
	m.viewport.SetYOffset(line)
	m.syncScroll()
	m.render()
	return nil
}

func (m *Model) copyFocused() tea.Cmd {
	link, ok := m.page.Link(m.focus)
	if !ok {
		return messages.InfoCmd("Focus a link to copy it")
	}
	return m.copyLink(link.URL)
}

func (m *Model) copyLink(url string) tea.Cmd {
	if err := m.copy(url); err != nil {
		m.log.Warn("failed to copy link", "url", url, "error", err)
		return messages.ErrorCmd("Copy failed: %v", err)
	}
	return messages.SuccessCmd("Copied %s", url)
}

// focusables lists every interactive element in tab order.
func (m *Model) focusables() []string {
	return append(m.navbar.Focusables(), m.page.Focusables()...)
}

func (m *Model) moveFocus(delta int) {
	ids := m.focusables()
	if len(ids) == 0 {
		return
	}
	idx := -1
	for i, id := range ids {
		if id == m.focus {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = len(ids) - 1
	default:
		idx = (idx + delta + len(ids)) % len(ids)
	}
	m.setFocus(ids[idx])
	m.reveal(ids[idx])
}

// setFocus moves keyboard focus; focus counts as hover.
func (m *Model) setFocus(id string) {
	old := m.focus
	m.focus = id
	m.syncHover(old, id)
}

// clampFocus drops focus from elements that are no longer focusable.
func (m *Model) clampFocus() {
	if m.focus == "" {
		return
	}
	for _, id := range m.focusables() {
		if id == m.focus {
			return
		}
	}
	m.setFocus("")
}

func (m *Model) syncHover(ids ...string) {
	for _, id := range ids {
		if id != "" {
			m.seq.Hover(id, id == m.focus || id == m.hovered)
		}
	}
}

// reveal scrolls a focused page element into view.
func (m *Model) reveal(id string) {
	if _, ok := m.page.Link(id); !ok {
		return
	}
	region := components.IDHero
	for i := range m.ctx.Content.Projects {
		if id == components.ProjectLinkID(i) {
			region = components.ProjectID(i)
		}
	}
	r, ok := m.regions.Region(region)
	if !ok {
		return
	}
	if r.Top < m.viewport.YOffset || r.Bottom > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(r.Top)
		m.syncScroll()
	}
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	m.layout.SetSize(width, height)
	m.navbar.SetWidth(width)
	m.statusBar.SetWidth(width)
	m.jump.SetWidth(width)

	m.viewport.Width = width
	m.viewport.Height = m.layout.BodyHeight(lipgloss.Height(m.help.View(m.keys)))
	m.render()
	m.clampFocus()
	m.syncScroll()
}

// render rebuilds the document with the current visuals.
func (m *Model) render() {
	m.navbar.SetFocus(m.focus)
	m.page.SetFocus(m.focus)

	m.doc = m.page.Render(min(m.width, components.MaxContentWidth))
	m.regions.SetRegions(m.doc.Regions())
	m.viewport.SetContent(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.doc.String()))
}

// syncScroll publishes the offset and fires viewport enter and leave
// events for sections crossing the visible window.
func (m *Model) syncScroll() {
	m.source.Publish(float64(m.viewport.YOffset * components.LineUnits))

	entered, left := m.regions.Update(m.viewport.YOffset, m.viewport.Height)
	for _, id := range entered {
		m.seq.ViewportEnter(id)
	}
	for _, id := range left {
		m.seq.ViewportLeave(id)
	}
}

func (m Model) View() string {
	out := m.layout.Render(
		m.navbar.View(),
		m.viewport.View(),
		m.statusBar.View(),
		m.help.View(m.keys),
		m.navbar.PanelView(),
		m.jump.View(),
	)
	return m.zones.Scan(out)
}

// Close releases the model's subscriptions.
func (m Model) Close() {
	m.navbar.Close()
}

// Elevated reports the navbar elevation.
func (m Model) Elevated() bool { return m.navbar.Elevated() }

// OverlayState reports the navigation overlay state.
func (m Model) OverlayState() nav.State { return m.navbar.Overlay().State() }

// Offset is the current scroll offset in lines.
func (m Model) Offset() int { return m.viewport.YOffset }

// Mode is the current appearance mode.
func (m Model) Mode() theme.Mode { return m.ctx.Store.Mode() }
