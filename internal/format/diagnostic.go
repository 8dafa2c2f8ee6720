package format

import (
	"fmt"
	"io"
	"strings"
)

// DiagnosticKind identifies which reconciliation produced a Diagnostic.
type DiagnosticKind int

const (
	// ArrayLengthMismatch is reported when segments and descriptors differ in
	// length outside substitution mode.
	ArrayLengthMismatch DiagnosticKind = iota
	// ArgumentsLengthMismatch is reported when the permissible flag count
	// differs from the descriptor count in substitution mode.
	ArgumentsLengthMismatch
)

// String returns the kind name.
func (k DiagnosticKind) String() string {
	switch k {
	case ArrayLengthMismatch:
		return "ArrayLengthMismatch"
	case ArgumentsLengthMismatch:
		return "ArgumentsLengthMismatch"
	default:
		return "Unknown"
	}
}

// Diagnostic describes one healing action taken by Render.
// Counts are the values observed before healing.
type Diagnostic struct {
	Kind        DiagnosticKind
	Segments    int
	Descriptors int
	Flags       int
	// Padded is the number of entries appended to the short side.
	Padded int
	// FlagsAppended is set when surplus descriptors were absorbed by
	// appending %s flags to the first segment.
	FlagsAppended bool
	// SegmentAdded is set when an empty segment had to be created to carry flags.
	SegmentAdded bool
}

// Title returns the one-line summary of the mismatch.
func (d Diagnostic) Title() string {
	if d.Kind == ArgumentsLengthMismatch {
		return "Arguments length mismatch"
	}
	return "Array length mismatch"
}

// Details returns the explanatory lines that follow the title.
func (d Diagnostic) Details() []string {
	if d.Kind == ArrayLengthMismatch {
		return []string{
			fmt.Sprintf("Used %d segments and %d styles to build a console output string.", d.Segments, d.Descriptors),
			"Array lengths have been adjusted.",
			"Output may not be styled as intended.",
		}
	}

	lines := []string{
		fmt.Sprintf("Used %d flags with %d descriptors to build a console output string with styling and/or substitution.", d.Flags, d.Descriptors),
	}
	if d.SegmentAdded {
		lines = append(lines, "An empty segment has been added to carry substitution flags.")
	}
	switch {
	case d.FlagsAppended:
		lines = append(lines, "Extra string type substitution flags have been padded to output.")
	case d.Padded > 0:
		lines = append(lines, "Descriptor list has been padded with empty strings.")
	}
	return append(lines, "Output is unlikely to be styled as intended.")
}

// String renders the diagnostic as a multi-line warning message.
func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteString("Warning: ")
	b.WriteString(d.Title())
	b.WriteString(".")
	for _, line := range d.Details() {
		b.WriteString("\n- ")
		b.WriteString(line)
	}
	return b.String()
}

// Display writes the diagnostic followed by a newline.
func (d Diagnostic) Display(out io.Writer) {
	fmt.Fprintln(out, d.String())
}
