package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/renato0307/folio/internal/anim"
)

// Animated blocks reserve BandY lines above and below and BandX cells on each
// side, so offsets move content inside a fixed footprint.
const (
	BandY = 1
	BandX = 2
)

// Apply maps the non-spatial attributes of v onto style. Opacity fades the
// foreground toward bg. Scale above 1 renders bold, below 1 faint.
func Apply(style lipgloss.Style, v anim.Visual, fg, bg lipgloss.AdaptiveColor) lipgloss.Style {
	v = v.Resolved()
	if v.Opacity < 1 {
		style = style.Foreground(lipgloss.Color(Fade(fg, bg, v.Opacity)))
	}
	switch {
	case v.Scale > 1.01:
		style = style.Bold(true)
	case v.Scale < 0.99:
		style = style.Faint(true)
	}
	return style
}

// Place positions a rendered block inside its band according to v's X, Y and
// Height. A zero-height block renders as nothing.
func Place(block string, v anim.Visual) string {
	v = v.Resolved()
	if v.Height <= 0 {
		return ""
	}
	if v.Height < 1 {
		block = ClipHeight(block, v.Height)
	}

	top := clampInt(BandY+int(math.Round(v.Y)), 0, 2*BandY)
	left := clampInt(BandX+int(math.Round(v.X)), 0, 2*BandX)

	return lipgloss.NewStyle().
		Margin(top, 2*BandX-left, 2*BandY-top, left).
		Render(block)
}

// SlideDown drops the first -y lines of block, for elements sliding in from
// above the top edge.
func SlideDown(block string, y float64) string {
	hidden := int(math.Round(-y))
	if hidden <= 0 {
		return block
	}
	lines := strings.Split(block, "\n")
	if hidden >= len(lines) {
		return ""
	}
	return strings.Join(lines[hidden:], "\n")
}

// ClipHeight keeps the leading fraction of block's lines.
func ClipHeight(block string, frac float64) string {
	lines := strings.Split(block, "\n")
	n := int(math.Ceil(frac * float64(len(lines))))
	n = clampInt(n, 0, len(lines))
	return strings.Join(lines[:n], "\n")
}

// Fade blends fg toward bg; opacity 0 is bg and 1 is fg. Colors that are
// not hex fall back to fg.
func Fade(fg, bg lipgloss.AdaptiveColor, opacity float64) string {
	f, err := colorful.Hex(Resolve(fg))
	if err != nil {
		return Resolve(fg)
	}
	b, err := colorful.Hex(Resolve(bg))
	if err != nil {
		return Resolve(fg)
	}
	switch {
	case opacity <= 0:
		return b.Hex()
	case opacity >= 1:
		return f.Hex()
	}
	return b.BlendLab(f, opacity).Clamped().Hex()
}

// Gradient colors each rune of text along from→to, shifted by phase in
// [0,1) so the gradient can rotate.
func Gradient(text string, from, to lipgloss.AdaptiveColor, phase float64) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	a, errA := colorful.Hex(Resolve(from))
	b, errB := colorful.Hex(Resolve(to))
	if errA != nil || errB != nil {
		return lipgloss.NewStyle().Foreground(from).Render(text)
	}

	var sb strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		t = math.Mod(t+phase, 2)
		if t > 1 {
			t = 2 - t
		}
		c := a.BlendHcl(b, t).Clamped()
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return sb.String()
}

// Glow renders the decorative looping glow: a gradient bar whose width follows
// Scale and whose colors rotate with Rotate.
func Glow(width int, v anim.Visual, from, to lipgloss.AdaptiveColor) string {
	v = v.Resolved()
	w := clampInt(int(math.Round(float64(width)*v.Scale)), 1, width+width/5)
	bar := Gradient(strings.Repeat("━", w), from, to, math.Mod(math.Abs(v.Rotate)/180, 2))
	return lipgloss.PlaceHorizontal(width+width/5, lipgloss.Center, bar)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
