package format

import (
	"strings"
)

// healLengths pads the shorter of segs and descs with empty strings so both
// have the same length. Padding is always appended.
func healLengths(segs, descs []string) ([]string, []string, Diagnostic) {
	d := Diagnostic{
		Kind:        ArrayLengthMismatch,
		Segments:    len(segs),
		Descriptors: len(descs),
	}

	switch {
	case len(segs) < len(descs):
		d.Padded = len(descs) - len(segs)
		segs = padEmpty(segs, len(descs))
	case len(descs) < len(segs):
		d.Padded = len(segs) - len(descs)
		descs = padEmpty(descs, len(segs))
	}

	return segs, descs, d
}

// healFlags reconciles the number of permissible flags found in the template
// with the number of descriptors. Missing descriptors become empty strings;
// surplus descriptors get a %s flag appended to the first segment each.
func healFlags(flags int, segs, descs []string) ([]string, []string, Diagnostic) {
	d := Diagnostic{
		Kind:        ArgumentsLengthMismatch,
		Segments:    len(segs),
		Descriptors: len(descs),
		Flags:       flags,
	}

	// A flag can only be appended to an existing segment. Creating one adds
	// its marker to the flag count.
	if len(segs) == 0 && len(descs) > flags {
		segs = []string{""}
		flags++
		d.SegmentAdded = true
	}

	if flags > len(descs) {
		d.Padded = flags - len(descs)
		descs = padEmpty(descs, flags)
		return segs, descs, d
	}

	if excess := len(descs) - flags; excess > 0 {
		d.Padded = excess
		d.FlagsAppended = true
		segs[0] += strings.Repeat(StringFlag, excess)
	}

	return segs, descs, d
}

func padEmpty(list []string, n int) []string {
	for len(list) < n {
		list = append(list, "")
	}
	return list
}
