package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layout stacks the fixed navbar, the scrolling body and the footer rows.
type Layout struct {
	width  int
	height int
}

func NewLayout(width, height int) *Layout {
	return &Layout{
		width:  width,
		height: height,
	}
}

func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// BodyHeight returns the available height for the page viewport
func (l *Layout) BodyHeight(footer int) int {
	// Reserve space for: navbar (3) + status (1) + help rows
	bodyHeight := l.height - NavbarHeight - 1 - footer
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	return bodyHeight
}

// Render builds the full layout. Overlays are drawn over the first lines of
// the body, in order.
func (l *Layout) Render(navbar, body, status, help string, overlays ...string) string {
	for _, o := range overlays {
		body = Overlay(body, o)
	}

	sections := []string{navbar, body, status}
	if help != "" {
		sections = append(sections, help)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Overlay replaces the leading lines of base with the lines of top. Lines of
// top narrower than base keep the remainder of the base line blank.
func Overlay(base, top string) string {
	if top == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(top, "\n")
	for i, line := range topLines {
		if i >= len(baseLines) {
			baseLines = append(baseLines, line)
			continue
		}
		baseLines[i] = line
	}
	return strings.Join(baseLines, "\n")
}
