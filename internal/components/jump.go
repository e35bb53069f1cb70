package components

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/renato0307/folio/internal/content"
	"github.com/renato0307/folio/internal/types"
	"github.com/renato0307/folio/internal/ui"
)

// JumpEntry is one palette destination.
type JumpEntry struct {
	Label  string
	Detail string
	Anchor string
}

// JumpEntries lists the sections, services and projects of c. Nav items
// whose anchor has no section are skipped.
func JumpEntries(c *content.Content) []JumpEntry {
	sections := []string{AnchorHome, AnchorAbout, AnchorServices, AnchorPortfolio}

	var entries []JumpEntry
	for _, item := range c.Nav {
		if slices.Contains(sections, item.Anchor) {
			entries = append(entries, JumpEntry{Label: item.Label, Detail: "section", Anchor: item.Anchor})
		}
	}
	for _, s := range c.Services {
		entries = append(entries, JumpEntry{Label: s.Title, Detail: "service", Anchor: AnchorServices})
	}
	for _, p := range c.Projects {
		entries = append(entries, JumpEntry{Label: p.Title, Detail: "project", Anchor: AnchorPortfolio})
	}
	return entries
}

// Jump is the fuzzy jump palette: a query input over the page destinations.
type Jump struct {
	input        textinput.Model
	entries      []JumpEntry
	items        []JumpEntry
	index        int
	scrollOffset int // First visible item index
	active       bool
	theme        func() *ui.Theme
	width        int
}

// NewJump creates a closed palette over entries.
func NewJump(entries []JumpEntry, theme func() *ui.Theme) *Jump {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "jump to..."
	input.CharLimit = 64

	return &Jump{
		input:   input,
		entries: entries,
		items:   entries,
		theme:   theme,
	}
}

// SetWidth updates the palette width.
func (j *Jump) SetWidth(width int) {
	j.width = width
	j.input.Width = max(width-6, 10)
}

func (j *Jump) Active() bool { return j.active }

// Open shows the palette with an empty query.
func (j *Jump) Open() tea.Cmd {
	j.active = true
	j.input.SetValue("")
	j.Filter("")
	return j.input.Focus()
}

// Close hides the palette.
func (j *Jump) Close() {
	j.active = false
	j.input.Blur()
}

// Filter ranks entries by query using fuzzy search. An empty query lists
// all entries in page order.
func (j *Jump) Filter(query string) {
	j.index = 0
	j.scrollOffset = 0
	if query == "" {
		j.items = j.entries
		return
	}

	labels := make([]string, len(j.entries))
	for i, e := range j.entries {
		labels[i] = e.Label
	}
	matches := fuzzy.Find(query, labels)

	j.items = make([]JumpEntry, len(matches))
	for i, match := range matches {
		j.items[i] = j.entries[match.Index]
	}
}

// NavigateUp moves selection up, scrolling when the cursor leaves the
// visible range.
func (j *Jump) NavigateUp() {
	if j.index > 0 {
		j.index--
		if j.index < j.scrollOffset {
			j.scrollOffset = j.index
		}
	}
}

// NavigateDown moves selection down, scrolling when the cursor leaves the
// visible range.
func (j *Jump) NavigateDown() {
	if j.index < len(j.items)-1 {
		j.index++
		maxVisibleIndex := j.scrollOffset + MaxPaletteItems - 1
		if j.index > maxVisibleIndex {
			j.scrollOffset = j.index - MaxPaletteItems + 1
		}
	}
}

// Selected returns the highlighted entry, or nil if nothing matches.
func (j *Jump) Selected() *JumpEntry {
	if j.index >= 0 && j.index < len(j.items) {
		return &j.items[j.index]
	}
	return nil
}

// Items returns the filtered entries.
func (j *Jump) Items() []JumpEntry { return j.items }

// Update handles a key while the palette is open. Enter emits a JumpMsg for
// the selection and esc closes without jumping.
func (j *Jump) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		j.Close()
		return nil
	case "enter":
		sel := j.Selected()
		j.Close()
		if sel == nil {
			return nil
		}
		anchor := sel.Anchor
		return func() tea.Msg { return types.JumpMsg{Anchor: anchor} }
	case "up", "ctrl+p":
		j.NavigateUp()
		return nil
	case "down", "ctrl+n":
		j.NavigateDown()
		return nil
	}

	before := j.input.Value()
	var cmd tea.Cmd
	j.input, cmd = j.input.Update(msg)
	if j.input.Value() != before {
		j.Filter(j.input.Value())
	}
	return cmd
}

// View renders the input and the visible items.
func (j *Jump) View() string {
	if !j.active {
		return ""
	}
	t := j.theme()

	boxStyle := lipgloss.NewStyle().
		Width(j.width).
		Padding(0, 1)

	sections := []string{boxStyle.Render(j.input.View())}

	if len(j.items) == 0 {
		sections = append(sections, boxStyle.Foreground(t.TextMuted).Render("  no matches"))
	}

	visibleEnd := min(j.scrollOffset+MaxPaletteItems, len(j.items))
	for i := j.scrollOffset; i < visibleEnd; i++ {
		item := j.items[i]
		detail := lipgloss.NewStyle().Foreground(t.TextMuted).Render(item.Detail)
		mainText := item.Label
		padding := max(j.width-4-lipgloss.Width(mainText)-lipgloss.Width(item.Detail)-2, 2)
		itemContent := mainText + strings.Repeat(" ", padding) + detail

		if i == j.index {
			line := boxStyle.
				Foreground(t.Accent).
				Bold(true).
				Render("▶ " + itemContent)
			sections = append(sections, line)
			continue
		}
		sections = append(sections, boxStyle.Foreground(t.Text).Render("  "+itemContent))
	}

	sections = append(sections, lipgloss.NewStyle().
		Foreground(t.Border).
		Render(strings.Repeat("─", max(j.width, 0))))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
