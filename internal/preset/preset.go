// Package preset holds the named CSS styles used for badges.
package preset

import (
	"sort"
	"strings"
)

// BadgeSuffix is appended to every badge preset to give it a pill shape.
const BadgeSuffix = " border-radius: 0.5rem 1rem; font-weight: bold; padding: 0 0.5rem"

// Default is the preset used when a badge is requested without a color.
const Default = "default"

// Blank is the empty preset; its badge style is the suffix alone.
const Blank = "blank"

// Table maps preset names to CSS declarations.
type Table map[string]string

// Contextual badges describe why a message is shown.
var contextual = Table{
	// errors
	"error": "color: red; background-color: #3d0000; border-inline: 2px solid red;",
	"blame": "color: orange; background-color: #3d2600; border-inline: 2px solid orange;",
	"alert": "color: yellow; background-color: #262316; border-inline: 2px solid yellow;",

	// warnings
	"userError": "color: orange; background-color: #3d2600; border-inline: 2px solid orange;",
	"warn":      "color: yellow; background-color: #262316; border-inline: 2px solid yellow;",

	// troubleshooting
	"undefined":    "color: white; background-color: black; border-inline: 2px solid black;",
	"debug":        "color: white; background-color: black; border-inline: 2px solid white;",
	"empty":        "color: #bbb; background-color: #444; border-inline: 2px solid #bbb; border-radius:",
	"default":      "color: black; background-color: white; border-inline: 2px solid white;",
	"fail":         "color: red; background-color: #3d0000; border-inline: 2px solid red;",
	"mistake":      "color: orange; background-color: #3d2600; border-inline: 2px solid orange;",
	"inconclusive": "color: yellow; background-color: #262316; border-inline: 2px solid yellow;",
	"success":      "color: lime; background-color: #003d00; border-inline: 2px solid lime;",
	"info":         "color: darkturquoise; background-color: #003d3d; border-inline: 2px solid darkturquoise;",
	"note":         "color: deepskyblue; background-color: #00003d; border-inline: 2px solid deepskyblue;",
	"suggestion":   "color: violet; background-color: indigo; border-inline: 2px solid violet;",
	"todo":         "color: fuchsia; background-color: #3d003d; border-inline: 2px solid fuchsia;",
}

// Colored badges only set foreground and background.
var colored = Table{
	"blank":   "",
	"black":   "color: white; background-color: black;",
	"gray":    "color: white; background-color: #444;",
	"white":   "color: black; background-color: white;",
	"red":     "color: white; background-color: red;",
	"orange":  "color: black; background-color: orange;",
	"yellow":  "color: black; background-color: yellow;",
	"lime":    "color: black; background-color: lime;",
	"green":   "color: white; background-color: green;",
	"cyan":    "color: black; background-color: cyan;",
	"sky":     "color: white; background-color: deepskyblue;",
	"blue":    "color: white; background-color: blue;",
	"navy":    "color: white; background-color: navy;",
	"dusk":    "color: white; background-color: mediumslateblue;",
	"indigo":  "color: white; background-color: indigo;",
	"violet":  "color: white; background-color: violet;",
	"purple":  "color: white; background-color: purple;",
	"fuchsia": "color: white; background-color: fuchsia;",
	"pink":    "color: white; background-color: deeppink;",
}

// Defaults returns a fresh copy of the built-in presets.
func Defaults() Table {
	t := make(Table, len(contextual)+len(colored))
	for name, css := range contextual {
		t[name] = css
	}
	for name, css := range colored {
		t[name] = css
	}
	return t
}

// IsContextual reports whether name is one of the built-in contextual badges.
func IsContextual(name string) bool {
	_, ok := contextual[name]
	return ok
}

// Presets resolves preset names to badge styles.
type Presets struct {
	table  Table
	suffix string
}

// New creates Presets from the defaults with overrides applied on top.
// An empty suffix selects BadgeSuffix.
func New(overrides Table, suffix string) *Presets {
	table := Defaults()
	for name, css := range overrides {
		table[name] = css
	}
	if suffix == "" {
		suffix = BadgeSuffix
	}
	return &Presets{table: table, suffix: suffix}
}

// Style returns the raw CSS of a preset.
func (p *Presets) Style(name string) (string, bool) {
	css, ok := p.table[name]
	return css, ok
}

// Has reports whether a preset with the given name exists.
func (p *Presets) Has(name string) bool {
	_, ok := p.table[name]
	return ok
}

// BadgeStyle returns the preset CSS followed by the badge suffix.
// Unknown names resolve to the suffix alone.
func (p *Presets) BadgeStyle(name string) string {
	return p.table[name] + p.suffix
}

// Names returns all preset names in sorted order.
func (p *Presets) Names() []string {
	names := make([]string, 0, len(p.table))
	for name := range p.table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Suggest returns up to limit preset names sharing a prefix with name,
// falling back to the first names in sorted order.
func (p *Presets) Suggest(name string, limit int) []string {
	var out []string
	lower := strings.ToLower(name)
	for _, candidate := range p.Names() {
		if len(out) == limit {
			break
		}
		c := strings.ToLower(candidate)
		if lower != "" && (strings.HasPrefix(c, lower[:1]) || strings.Contains(c, lower)) {
			out = append(out, candidate)
		}
	}
	if len(out) == 0 {
		names := p.Names()
		if len(names) > limit {
			names = names[:limit]
		}
		out = names
	}
	return out
}
