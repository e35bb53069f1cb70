package content

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Span is a run of inline text with its emphasis.
type Span struct {
	Text   string
	Strong bool
	Emph   bool
	Link   string
}

// Paragraph is a sequence of spans.
type Paragraph []Span

var md = goldmark.New()

// Markdown parses the inline subset used by the about text. Block structure
// other than paragraphs is flattened into paragraphs.
func Markdown(src string) []Paragraph {
	source := []byte(src)
	doc := md.Parser().Parse(text.NewReader(source))

	var (
		out     []Paragraph
		current Paragraph
		strong  int
		emph    int
		link    []string
	)

	flush := func() {
		if len(current) > 0 {
			out = append(out, current)
			current = nil
		}
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Paragraph, *ast.TextBlock, *ast.Heading:
			if !entering {
				flush()
			}
		case *ast.Emphasis:
			level := &emph
			if node.Level >= 2 {
				level = &strong
			}
			if entering {
				*level++
			} else {
				*level--
			}
		case *ast.Link:
			if entering {
				link = append(link, string(node.Destination))
			} else {
				link = link[:len(link)-1]
			}
		case *ast.Text:
			if !entering {
				return ast.WalkContinue, nil
			}
			s := string(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				s += " "
			}
			span := Span{Text: s, Strong: strong > 0, Emph: emph > 0}
			if len(link) > 0 {
				span.Link = link[len(link)-1]
			}
			current = appendSpan(current, span)
		}
		return ast.WalkContinue, nil
	})
	flush()

	return out
}

// appendSpan merges s into the previous span when their styles match.
func appendSpan(p Paragraph, s Span) Paragraph {
	if n := len(p); n > 0 {
		last := &p[n-1]
		if last.Strong == s.Strong && last.Emph == s.Emph && last.Link == s.Link {
			last.Text += s.Text
			return p
		}
	}
	return append(p, s)
}

// Plain returns the paragraph text without styling.
func (p Paragraph) Plain() string {
	var b strings.Builder
	for _, s := range p {
		b.WriteString(s.Text)
	}
	return strings.TrimSpace(b.String())
}
