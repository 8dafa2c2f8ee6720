// Package terminal renders console format strings for a text terminal.
//
// Style descriptors are CSS declaration lists as a browser console would
// accept them after a %c flag. Only the properties that have a terminal
// equivalent are honoured: color, background-color (or background),
// font-weight, font-style, text-decoration and the horizontal part of
// padding. Everything else, including border and border-radius, is ignored.
package terminal

import (
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Style is the terminal subset of a CSS declaration list.
type Style struct {
	Foreground    *RGB
	Background    *RGB
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	// PadLeft and PadRight are in columns.
	PadLeft  int
	PadRight int
}

// ParseStyle parses a CSS declaration list such as
// "color: red; background-color: #3d0000; font-weight: bold". Unknown
// properties and invalid values are skipped; it never fails.
func ParseStyle(rule string) Style {
	var s Style
	for _, decl := range strings.Split(rule, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "!important"))
		if value == "" {
			continue
		}

		switch prop {
		case "color":
			if c, ok := ParseColor(value); ok {
				s.Foreground = &c
			}
		case "background-color":
			if c, ok := ParseColor(value); ok {
				s.Background = &c
			}
		case "background":
			if c, ok := backgroundColor(value); ok {
				s.Background = &c
			}
		case "font-weight":
			s.Bold = isBold(value)
		case "font-style":
			v := strings.ToLower(value)
			s.Italic = strings.HasPrefix(v, "italic") || strings.HasPrefix(v, "oblique")
		case "text-decoration", "text-decoration-line":
			v := strings.ToLower(value)
			s.Underline = strings.Contains(v, "underline")
			s.Strikethrough = strings.Contains(v, "line-through")
		case "padding":
			s.PadLeft, s.PadRight = horizontalPadding(value)
		case "padding-left", "padding-inline-start":
			s.PadLeft = columns(value)
		case "padding-right", "padding-inline-end":
			s.PadRight = columns(value)
		case "padding-inline":
			fields := strings.Fields(value)
			if len(fields) > 0 {
				s.PadLeft = columns(fields[0])
				s.PadRight = columns(fields[len(fields)-1])
			}
		}
	}
	return s
}

// IsZero reports whether the style changes nothing.
func (s Style) IsZero() bool {
	return s == Style{}
}

func (s Style) hasAttributes() bool {
	return s.Foreground != nil || s.Background != nil || s.Bold || s.Italic || s.Underline || s.Strikethrough
}

// Color builds the fatih/color value for the style.
func (s Style) Color() *color.Color {
	c := color.New()
	if s.Bold {
		c.Add(color.Bold)
	}
	if s.Italic {
		c.Add(color.Italic)
	}
	if s.Underline {
		c.Add(color.Underline)
	}
	if s.Strikethrough {
		c.Add(color.CrossedOut)
	}
	if s.Foreground != nil {
		c.AddRGB(int(s.Foreground.R), int(s.Foreground.G), int(s.Foreground.B))
	}
	if s.Background != nil {
		c.AddBgRGB(int(s.Background.R), int(s.Background.G), int(s.Background.B))
	}
	return c
}

// Render pads text and, when colors are enabled, wraps it in the style's
// escape sequence.
func (s Style) Render(text string, colorEnabled bool) string {
	if s.PadLeft > 0 || s.PadRight > 0 {
		text = strings.Repeat(" ", s.PadLeft) + text + strings.Repeat(" ", s.PadRight)
	}
	if !colorEnabled || !s.hasAttributes() || text == "" {
		return text
	}
	c := s.Color()
	c.EnableColor()
	return c.Sprint(text)
}

func backgroundColor(value string) (RGB, bool) {
	if c, ok := ParseColor(value); ok {
		return c, true
	}
	for _, field := range strings.Fields(value) {
		if c, ok := ParseColor(field); ok {
			return c, true
		}
	}
	return RGB{}, false
}

func isBold(value string) bool {
	v := strings.ToLower(value)
	if v == "bold" || v == "bolder" {
		return true
	}
	n, err := strconv.Atoi(v)
	return err == nil && n >= 600
}

// horizontalPadding follows the CSS shorthand: one value applies to all
// sides, two or three values put the horizontal padding second, four values
// list top, right, bottom, left.
func horizontalPadding(value string) (left, right int) {
	fields := strings.Fields(value)
	switch len(fields) {
	case 0:
		return 0, 0
	case 1:
		n := columns(fields[0])
		return n, n
	case 2, 3:
		n := columns(fields[1])
		return n, n
	default:
		return columns(fields[3]), columns(fields[1])
	}
}

// columns converts a CSS length to terminal columns. rem, em and ch round up
// to whole columns; px assumes an 8px cell.
func columns(length string) int {
	l := strings.ToLower(strings.TrimSpace(length))
	unit := strings.TrimLeft(l, "0123456789.+-")
	number := strings.TrimSuffix(l, unit)
	n, err := strconv.ParseFloat(number, 64)
	if err != nil || n <= 0 {
		return 0
	}

	switch unit {
	case "px":
		n = n / 8
	case "rem", "em", "ch", "":
	default:
		return 0
	}
	return int(math.Ceil(n))
}
