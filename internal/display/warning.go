package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Items      []string // Related names or paths (optional)
	ItemsLabel string   // Heading for Items (default "Related")
	Suggestion string   // Action to take (optional)
}

// String returns the warning without color.
func (w Warning) String() string {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Items) > 0 {
		label := w.ItemsLabel
		if label == "" {
			label = "Related"
		}
		fmt.Fprintf(&b, "    %s:\n", label)
		for i, item := range w.Items {
			fmt.Fprintf(&b, "      %d. %s\n", i+1, item)
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	return b.String()
}

// Display writes the warning, in yellow when colorEnabled is set.
func (w Warning) Display(out io.Writer, colorEnabled bool) {
	text := w.String()
	if !colorEnabled {
		fmt.Fprint(out, text)
		return
	}

	c := color.New(color.FgYellow)
	c.EnableColor()
	fmt.Fprint(out, c.Sprint(text))
}

// UnknownPreset builds the warning shown when a badge names a preset that
// does not exist.
func UnknownPreset(name, fallback string, suggestions []string) Warning {
	return Warning{
		Title:      fmt.Sprintf("Unknown preset %q", name),
		Message:    fmt.Sprintf("The %q preset was used instead.", fallback),
		Items:      suggestions,
		ItemsLabel: "Did you mean",
		Suggestion: "Run 'consolefmt presets' to list every preset.",
	}
}
