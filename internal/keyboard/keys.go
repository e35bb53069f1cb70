package keyboard

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
)

// Keys holds all keyboard shortcut configurations for folio
type Keys struct {
	// Appearance
	ToggleTheme string // Toggle light/dark mode

	// Navigation overlay and anchors
	Menu     string   // Open/close the navigation panel
	NavLinks []string // Activate nav link i

	// Focus
	FocusNext string // Focus next interactive element
	FocusPrev string // Focus previous interactive element
	Activate  string // Activate the focused element

	// Scrolling
	Up         string
	Down       string
	PageUp     string
	PageDown   string
	JumpTop    string
	JumpBottom string

	// Palette and links
	Jump     string // Open the jump palette
	CopyLink string // Copy the focused outbound link

	// Global
	Quit      string
	ForceQuit string
	Back      string
	Help      string
}

// Default returns the default keyboard configuration
func Default() *Keys {
	return &Keys{
		ToggleTheme: "t",

		Menu:     "m",
		NavLinks: []string{"1", "2", "3", "4", "5"},

		FocusNext: "tab",
		FocusPrev: "shift+tab",
		Activate:  "enter",

		Up:         "k",
		Down:       "j",
		PageUp:     "pgup",
		PageDown:   "pgdown",
		JumpTop:    "g",
		JumpBottom: "G",

		Jump:     "/",
		CopyLink: "y",

		Quit:      "q",
		ForceQuit: "ctrl+c",
		Back:      "esc",
		Help:      "?",
	}
}

// GetKeys returns the current keyboard configuration
func GetKeys() *Keys {
	return Default()
}

// KeyMap is the set of bindings matched in Update. It implements
// help.KeyMap.
type KeyMap struct {
	ToggleTheme key.Binding
	Menu        key.Binding
	NavLinks    []key.Binding
	FocusNext   key.Binding
	FocusPrev   key.Binding
	Activate    key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	JumpTop     key.Binding
	JumpBottom  key.Binding
	Jump        key.Binding
	CopyLink    key.Binding
	Quit        key.Binding
	Back        key.Binding
	Help        key.Binding
}

// KeyMap builds bindings for k. labels names the nav links; only that many
// nav link bindings are created.
func (k *Keys) KeyMap(labels []string) KeyMap {
	m := KeyMap{
		ToggleTheme: key.NewBinding(key.WithKeys(k.ToggleTheme), key.WithHelp(k.ToggleTheme, "theme")),
		Menu:        key.NewBinding(key.WithKeys(k.Menu), key.WithHelp(k.Menu, "menu")),
		FocusNext:   key.NewBinding(key.WithKeys(k.FocusNext), key.WithHelp(k.FocusNext, "next")),
		FocusPrev:   key.NewBinding(key.WithKeys(k.FocusPrev), key.WithHelp(k.FocusPrev, "prev")),
		Activate:    key.NewBinding(key.WithKeys(k.Activate), key.WithHelp(k.Activate, "open")),
		Up:          key.NewBinding(key.WithKeys(k.Up, "up"), key.WithHelp("↑/"+k.Up, "up")),
		Down:        key.NewBinding(key.WithKeys(k.Down, "down"), key.WithHelp("↓/"+k.Down, "down")),
		PageUp:      key.NewBinding(key.WithKeys(k.PageUp), key.WithHelp(k.PageUp, "page up")),
		PageDown:    key.NewBinding(key.WithKeys(k.PageDown, " "), key.WithHelp(k.PageDown, "page down")),
		JumpTop:     key.NewBinding(key.WithKeys(k.JumpTop, "home"), key.WithHelp(k.JumpTop, "top")),
		JumpBottom:  key.NewBinding(key.WithKeys(k.JumpBottom, "end"), key.WithHelp(k.JumpBottom, "bottom")),
		Jump:        key.NewBinding(key.WithKeys(k.Jump), key.WithHelp(k.Jump, "jump")),
		CopyLink:    key.NewBinding(key.WithKeys(k.CopyLink), key.WithHelp(k.CopyLink, "copy link")),
		Quit:        key.NewBinding(key.WithKeys(k.Quit, k.ForceQuit), key.WithHelp(k.Quit, "quit")),
		Back:        key.NewBinding(key.WithKeys(k.Back), key.WithHelp(k.Back, "close")),
		Help:        key.NewBinding(key.WithKeys(k.Help), key.WithHelp(k.Help, "help")),
	}

	for i, label := range labels {
		if i >= len(k.NavLinks) {
			break
		}
		m.NavLinks = append(m.NavLinks, key.NewBinding(
			key.WithKeys(k.NavLinks[i]),
			key.WithHelp(k.NavLinks[i], label),
		))
	}
	return m
}

// NavLink returns the index of the nav link binding matching msg, or -1.
func (m KeyMap) NavLink(msg interface{ String() string }) int {
	for i, b := range m.NavLinks {
		for _, k := range b.Keys() {
			if k == msg.String() {
				return i
			}
		}
	}
	return -1
}

// ShortHelp implements help.KeyMap
func (m KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{m.ToggleTheme, m.Menu, m.Jump, m.Help, m.Quit}
}

// FullHelp implements help.KeyMap
func (m KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		append([]key.Binding{m.ToggleTheme, m.Menu}, m.NavLinks...),
		{m.FocusNext, m.FocusPrev, m.Activate, m.CopyLink},
		{m.Up, m.Down, m.PageUp, m.PageDown, m.JumpTop, m.JumpBottom},
		{m.Jump, m.Back, m.Help, m.Quit},
	}
}

// LinkKey is the key label shown next to nav link i.
func (k *Keys) LinkKey(i int) string {
	if i < len(k.NavLinks) {
		return k.NavLinks[i]
	}
	return strconv.Itoa(i + 1)
}
