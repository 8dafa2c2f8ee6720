// Package markup converts inline Markdown into console segments and style
// descriptors, so a line like "**done** in `2s`" can be printed with
// console.Log without hand-writing CSS.
package markup

import (
	"strings"

	"github.com/harrison/consolefmt/internal/format"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Theme holds the CSS declarations applied to each Markdown construct.
// Nested constructs combine their declarations.
type Theme struct {
	Text     string `yaml:"text"`
	Strong   string `yaml:"strong"`
	Emphasis string `yaml:"emphasis"`
	Code     string `yaml:"code"`
	Link     string `yaml:"link"`
	Strike   string `yaml:"strike"`
	Heading  string `yaml:"heading"`
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Strong:   "font-weight: bold",
		Emphasis: "font-style: italic",
		Code:     "color: #e06c75; background-color: #282c34",
		Link:     "color: #61afef; text-decoration: underline",
		Strike:   "text-decoration: line-through",
		Heading:  "font-weight: bold; text-decoration: underline",
	}
}

// Merge returns t with every empty field taken from fallback.
func (t Theme) Merge(fallback Theme) Theme {
	pick := func(v, d string) string {
		if v == "" {
			return d
		}
		return v
	}
	return Theme{
		Text:     pick(t.Text, fallback.Text),
		Strong:   pick(t.Strong, fallback.Strong),
		Emphasis: pick(t.Emphasis, fallback.Emphasis),
		Code:     pick(t.Code, fallback.Code),
		Link:     pick(t.Link, fallback.Link),
		Strike:   pick(t.Strike, fallback.Strike),
		Heading:  pick(t.Heading, fallback.Heading),
	}
}

// Parser turns Markdown into segments and styles.
type Parser struct {
	markdown goldmark.Markdown
	theme    Theme
}

// NewParser creates a Parser using theme.
func NewParser(theme Theme) *Parser {
	return &Parser{
		markdown: goldmark.New(goldmark.WithExtensions(extension.Strikethrough)),
		theme:    theme,
	}
}

// Parse is shorthand for NewParser(theme).Parse(src).
func Parse(src string, theme Theme) (segments, styles []string) {
	return NewParser(theme).Parse(src)
}

// Parse returns one segment per run of identically styled text and the
// matching style for each. Blocks are joined with a single space; line
// breaks inside a paragraph become spaces.
func (p *Parser) Parse(src string) (segments, styles []string) {
	source := []byte(src)
	doc := p.markdown.Parser().Parse(text.NewReader(source))

	b := &builder{base: p.theme.Text}

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && len(b.segments) > 0 {
			switch n.Kind() {
			case ast.KindParagraph, ast.KindTextBlock, ast.KindHeading:
				b.add(" ")
			}
		}

		switch node := n.(type) {
		case *ast.Heading:
			b.toggle(entering, p.theme.Heading)
		case *ast.Emphasis:
			if node.Level >= 2 {
				b.toggle(entering, p.theme.Strong)
			} else {
				b.toggle(entering, p.theme.Emphasis)
			}
		case *ast.CodeSpan:
			b.toggle(entering, p.theme.Code)
		case *ast.Link, *ast.AutoLink:
			b.toggle(entering, p.theme.Link)
			if auto, ok := node.(*ast.AutoLink); ok && entering {
				b.add(string(auto.Label(source)))
			}
		case *extast.Strikethrough:
			b.toggle(entering, p.theme.Strike)
		case *ast.Text:
			if entering {
				b.add(string(node.Segment.Value(source)))
				if node.SoftLineBreak() || node.HardLineBreak() {
					b.add(" ")
				}
			}
		case *ast.String:
			if entering {
				b.add(string(node.Value))
			}
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return b.segments, b.styles
}

// builder accumulates styled runs, merging neighbours with equal style.
type builder struct {
	base     string
	stack    []string
	segments []string
	styles   []string
}

func (b *builder) toggle(entering bool, style string) {
	if entering {
		b.stack = append(b.stack, style)
		return
	}
	if len(b.stack) > 0 {
		b.stack = b.stack[:len(b.stack)-1]
	}
}

func (b *builder) style() string {
	parts := make([]string, 0, len(b.stack)+1)
	for _, s := range append([]string{b.base}, b.stack...) {
		s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), ";"))
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "; ")
}

// add appends text to the current run. '%' is escaped since segments are
// format text.
func (b *builder) add(s string) {
	if s == "" {
		return
	}
	s = format.Escape(s)
	style := b.style()
	if n := len(b.segments); n > 0 && b.styles[n-1] == style {
		b.segments[n-1] += s
		return
	}
	b.segments = append(b.segments, s)
	b.styles = append(b.styles, style)
}
