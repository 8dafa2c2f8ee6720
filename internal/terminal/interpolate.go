package terminal

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Interpolate expands a console format string the way a browser console
// does and returns the text for one line.
//
//   - %c ends the current styled run and parses its argument as CSS for the next one
//   - %s prints the argument
//   - %d and %i print the argument's leading integer, or NaN
//   - %f prints the argument's leading float, Infinity or NaN
//   - %o and %O print the argument's value
//
// "%%" prints a single '%' and consumes no argument. Flags with no argument
// left are printed literally. Arguments left over
// after the template are appended, separated by spaces.
func Interpolate(format string, args []any, colorEnabled bool) string {
	var out, run strings.Builder
	var style Style

	flush := func() {
		out.WriteString(style.Render(run.String(), colorEnabled))
		run.Reset()
	}

	next := 0
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' || i+1 >= len(format) {
			run.WriteByte(ch)
			continue
		}

		verb := format[i+1]
		if verb == '%' {
			run.WriteByte('%')
			i++
			continue
		}
		if !isVerb(verb) || next >= len(args) {
			run.WriteByte(ch)
			continue
		}

		arg := args[next]
		next++
		i++

		switch verb {
		case 'c':
			flush()
			style = ParseStyle(fmt.Sprint(arg))
		case 's':
			run.WriteString(fmt.Sprint(arg))
		case 'd', 'i':
			run.WriteString(formatInt(arg))
		case 'f':
			run.WriteString(formatFloat(arg))
		case 'o':
			run.WriteString(fmt.Sprintf("%v", arg))
		case 'O':
			run.WriteString(fmt.Sprintf("%+v", arg))
		}
	}
	flush()

	for _, arg := range args[next:] {
		out.WriteByte(' ')
		out.WriteString(fmt.Sprint(arg))
	}

	return out.String()
}

func isVerb(b byte) bool {
	switch b {
	case 'c', 's', 'd', 'i', 'f', 'o', 'O':
		return true
	}
	return false
}

func formatInt(arg any) string {
	f, ok := toNumber(arg, true)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return "NaN"
	}
	return strconv.FormatFloat(math.Trunc(f), 'f', 0, 64)
}

func formatFloat(arg any) string {
	f, ok := toNumber(arg, false)
	switch {
	case !ok || math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func toNumber(arg any, integer bool) (float64, bool) {
	switch v := arg.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		return parseNumberPrefix(v, integer)
	case fmt.Stringer:
		return parseNumberPrefix(v.String(), integer)
	default:
		return 0, false
	}
}

// parseNumberPrefix reads the longest leading number in s, ignoring leading
// whitespace and whatever follows, so "10px" is 10. Integers stop at the
// first non-digit; floats accept a fraction, an exponent and "Infinity".
func parseNumberPrefix(s string, integer bool) (float64, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if !integer && strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if !integer {
		if i < len(s) && s[i] == '.' {
			i++
			for i < len(s) && isDigit(s[i]) {
				i++
				digits++
			}
		}
		if digits > 0 && i < len(s) && (s[i] == 'e' || s[i] == 'E') {
			j := i + 1
			if j < len(s) && (s[j] == '+' || s[j] == '-') {
				j++
			}
			if j < len(s) && isDigit(s[j]) {
				for j < len(s) && isDigit(s[j]) {
					j++
				}
				i = j
			}
		}
	}
	if digits == 0 {
		return 0, false
	}

	f, err := strconv.ParseFloat(strings.TrimSuffix(s[:i], "."), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
