package terminal

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// ParseColor converts a CSS color value to RGB. It accepts named colors,
// #rgb and #rrggbb hex notation, and rgb()/rgba() functions with integer
// channels. Keywords without a concrete color (transparent, inherit,
// currentcolor) and anything unrecognised return false.
func ParseColor(value string) (RGB, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return RGB{}, false
	}

	if strings.HasPrefix(v, "#") {
		c, err := colorful.Hex(v)
		if err != nil {
			return RGB{}, false
		}
		r, g, b := c.RGB255()
		return RGB{R: r, G: g, B: b}, true
	}

	if strings.HasPrefix(v, "rgb(") || strings.HasPrefix(v, "rgba(") {
		return parseRGBFunc(v)
	}

	if named, ok := colornames.Map[v]; ok {
		return RGB{R: named.R, G: named.G, B: named.B}, true
	}

	return RGB{}, false
}

// parseRGBFunc parses "rgb(r, g, b)", "rgb(r g b)" and the rgba variants.
// Alpha is ignored.
func parseRGBFunc(v string) (RGB, bool) {
	open := strings.IndexByte(v, '(')
	closing := strings.LastIndexByte(v, ')')
	if open < 0 || closing < open {
		return RGB{}, false
	}

	fields := strings.FieldsFunc(v[open+1:closing], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(fields) < 3 {
		return RGB{}, false
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		f := fields[i]
		var n float64
		var err error
		if strings.HasSuffix(f, "%") {
			n, err = strconv.ParseFloat(strings.TrimSuffix(f, "%"), 64)
			n = n * 255 / 100
		} else {
			n, err = strconv.ParseFloat(f, 64)
		}
		if err != nil {
			return RGB{}, false
		}
		channels[i] = clampChannel(n)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, true
}

func clampChannel(n float64) uint8 {
	switch {
	case n <= 0:
		return 0
	case n >= 255:
		return 255
	default:
		return uint8(n + 0.5)
	}
}
