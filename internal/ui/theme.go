package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is a set of style tokens. Every color is adaptive: the Light half
// applies in light mode and the Dark half in dark mode. Which half renders is
// decided by lipgloss's dark-background flag, which the theme store sets.
type Theme struct {
	Name string

	// Surfaces
	Primary   lipgloss.AdaptiveColor // page background
	Secondary lipgloss.AdaptiveColor // alternate section background
	Navbar    lipgloss.AdaptiveColor // elevated navbar background
	Card      lipgloss.AdaptiveColor
	Hover     lipgloss.AdaptiveColor

	// Text
	Text      lipgloss.AdaptiveColor
	TextMuted lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	Border lipgloss.AdaptiveColor

	// Logo and glow gradient stops
	GradientFrom lipgloss.AdaptiveColor
	GradientTo   lipgloss.AdaptiveColor

	ToggleFg lipgloss.AdaptiveColor
	ToggleBg lipgloss.AdaptiveColor
	ChipFg   lipgloss.AdaptiveColor
	ChipBg   lipgloss.AdaptiveColor
	Button   lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	// Component styles
	Heading   lipgloss.Style
	Body      lipgloss.Style
	NavLink   lipgloss.Style
	Focused   lipgloss.Style
	Chip      lipgloss.Style
	CardBox   lipgloss.Style
	StatusBar lipgloss.Style
}

// ThemeDefault mirrors the portfolio page: gray surfaces with blue accents.
func ThemeDefault() *Theme {
	t := &Theme{Name: "default"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#111827"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#1f2937"}
	t.Navbar = lipgloss.AdaptiveColor{Light: "#f3f4f6", Dark: "#1f2937"}
	t.Card = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#1f2937"}
	t.Hover = lipgloss.AdaptiveColor{Light: "#f3f4f6", Dark: "#374151"}

	t.Text = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#ffffff"}
	t.TextMuted = lipgloss.AdaptiveColor{Light: "#4b5563", Dark: "#d1d5db"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}

	t.Border = lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#374151"}

	t.GradientFrom = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#3b82f6"}
	t.GradientTo = lipgloss.AdaptiveColor{Light: "#9333ea", Dark: "#a855f7"}

	t.ToggleFg = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#eab308"}
	t.ToggleBg = lipgloss.AdaptiveColor{Light: "#f3f4f6", Dark: "#1f2937"}
	t.ChipFg = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}
	t.ChipBg = lipgloss.AdaptiveColor{Light: "#dbeafe", Dark: "#1e3a8a"}
	t.Button = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#2563eb"}

	t.Success = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#22c55e"}
	t.Error = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#ef4444"}
	t.Info = t.Accent

	t.styles()
	return t
}

// ThemeDracula returns a Dracula-inspired theme
func ThemeDracula() *Theme {
	t := &Theme{Name: "dracula"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#f8f8f2", Dark: "#282a36"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#eeeee8", Dark: "#21222c"}
	t.Navbar = lipgloss.AdaptiveColor{Light: "#e6e6e0", Dark: "#44475a"}
	t.Card = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#343746"}
	t.Hover = lipgloss.AdaptiveColor{Light: "#e6e6e0", Dark: "#44475a"}

	t.Text = lipgloss.AdaptiveColor{Light: "#282a36", Dark: "#f8f8f2"}
	t.TextMuted = lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#bfbfbf"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#bd93f9"}

	t.Border = lipgloss.AdaptiveColor{Light: "#d6d6d0", Dark: "#6272a4"}

	t.GradientFrom = lipgloss.AdaptiveColor{Light: "#bd93f9", Dark: "#bd93f9"}
	t.GradientTo = lipgloss.AdaptiveColor{Light: "#ff79c6", Dark: "#ff79c6"}

	t.ToggleFg = lipgloss.AdaptiveColor{Light: "#282a36", Dark: "#f1fa8c"}
	t.ToggleBg = lipgloss.AdaptiveColor{Light: "#e6e6e0", Dark: "#44475a"}
	t.ChipFg = lipgloss.AdaptiveColor{Light: "#282a36", Dark: "#8be9fd"}
	t.ChipBg = lipgloss.AdaptiveColor{Light: "#8be9fd", Dark: "#44475a"}
	t.Button = lipgloss.AdaptiveColor{Light: "#bd93f9", Dark: "#bd93f9"}

	t.Success = lipgloss.AdaptiveColor{Light: "#50fa7b", Dark: "#50fa7b"}
	t.Error = lipgloss.AdaptiveColor{Light: "#ff5555", Dark: "#ff5555"}
	t.Info = lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#8be9fd"}

	t.styles()
	return t
}

// ThemeNord returns a Nord-inspired theme
func ThemeNord() *Theme {
	t := &Theme{Name: "nord"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#eceff4", Dark: "#2e3440"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#e5e9f0", Dark: "#3b4252"}
	t.Navbar = lipgloss.AdaptiveColor{Light: "#d8dee9", Dark: "#434c5e"}
	t.Card = lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#3b4252"}
	t.Hover = lipgloss.AdaptiveColor{Light: "#d8dee9", Dark: "#4c566a"}

	t.Text = lipgloss.AdaptiveColor{Light: "#2e3440", Dark: "#eceff4"}
	t.TextMuted = lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#d8dee9"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#88c0d0"}

	t.Border = lipgloss.AdaptiveColor{Light: "#d8dee9", Dark: "#4c566a"}

	t.GradientFrom = lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#81a1c1"}
	t.GradientTo = lipgloss.AdaptiveColor{Light: "#b48ead", Dark: "#b48ead"}

	t.ToggleFg = lipgloss.AdaptiveColor{Light: "#2e3440", Dark: "#ebcb8b"}
	t.ToggleBg = lipgloss.AdaptiveColor{Light: "#d8dee9", Dark: "#434c5e"}
	t.ChipFg = lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#88c0d0"}
	t.ChipBg = lipgloss.AdaptiveColor{Light: "#e5e9f0", Dark: "#434c5e"}
	t.Button = lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#5e81ac"}

	t.Success = lipgloss.AdaptiveColor{Light: "#a3be8c", Dark: "#a3be8c"}
	t.Error = lipgloss.AdaptiveColor{Light: "#bf616a", Dark: "#bf616a"}
	t.Info = lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#88c0d0"}

	t.styles()
	return t
}

// styles derives the component styles from the color tokens.
func (t *Theme) styles() {
	t.Heading = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Body = lipgloss.NewStyle().
		Foreground(t.TextMuted)

	t.NavLink = lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Padding(0, 1)

	t.Focused = lipgloss.NewStyle().
		Foreground(t.Accent).
		Underline(true)

	t.Chip = lipgloss.NewStyle().
		Foreground(t.ChipFg).
		Background(t.ChipBg).
		Padding(0, 1)

	t.CardBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.TextMuted)
}

// GetTheme returns a theme by name, defaulting to the portfolio palette
func GetTheme(name string) *Theme {
	switch name {
	case "dracula":
		return ThemeDracula()
	case "nord":
		return ThemeNord()
	default:
		return ThemeDefault()
	}
}

// AvailableThemes returns a list of available theme names
func AvailableThemes() []string {
	return []string{"default", "dracula", "nord"}
}

// Resolve picks the half of c that applies to the current mode.
func Resolve(c lipgloss.AdaptiveColor) string {
	if lipgloss.HasDarkBackground() {
		return c.Dark
	}
	return c.Light
}
