// Package format builds the templated string and argument list handed to a
// console sink for one styled log call.
//
// A call is described by a list of text segments and a parallel list of
// descriptors. Every segment is prefixed with the %c marker, so in the plain
// case descriptor i styles segment i. With substitutions enabled, segments may
// also carry %s, %d, %i, %f, %o and %O flags, and descriptors are consumed by
// flags in the order they appear in the template.
//
// Render never fails. When the number of flags and descriptors disagree it
// pads whichever side is short and returns a Diagnostic describing what it
// did; callers forward diagnostics to their sink's warning channel.
package format

import (
	"strings"
)

// Options controls how segments are joined into a template.
type Options struct {
	// PreText is prepended to the template, before the first marker.
	PreText string
	// Separator is written between segments, before the next marker.
	Separator string
	// Terminator is appended after the last segment.
	Terminator string
	// PostText is passed to the sink as a trailing argument after all descriptors.
	PostText string
	// Substitutions enables flag counting instead of segment/descriptor pairing.
	Substitutions bool
}

// Option configures Options.
type Option func(*Options)

// WithSeparator sets the string written between segments.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.Separator = sep }
}

// WithTerminator sets the string written after the last segment.
func WithTerminator(term string) Option {
	return func(o *Options) { o.Terminator = term }
}

// WithPreText sets text prepended to the template.
func WithPreText(text string) Option {
	return func(o *Options) { o.PreText = text }
}

// WithPostText sets a trailing argument passed after all descriptors.
func WithPostText(text string) Option {
	return func(o *Options) { o.PostText = text }
}

// WithSubstitutions marks segments as carrying substitution flags.
func WithSubstitutions() Option {
	return func(o *Options) { o.Substitutions = true }
}

// NewOptions applies opts over the zero Options.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Output is the argument list for one sink call.
type Output struct {
	Template    string
	Descriptors []string
	PostText    string
}

// Args flattens the descriptors and post text into variadic sink arguments.
// The template itself is not included.
func (o Output) Args() []any {
	args := make([]any, 0, len(o.Descriptors)+1)
	for _, d := range o.Descriptors {
		args = append(args, d)
	}
	if o.PostText != "" {
		args = append(args, o.PostText)
	}
	return args
}

// Strings returns the template followed by all arguments, the shape a
// browser console call would be spread from.
func (o Output) Strings() []string {
	out := make([]string, 0, len(o.Descriptors)+2)
	out = append(out, o.Template)
	out = append(out, o.Descriptors...)
	if o.PostText != "" {
		out = append(out, o.PostText)
	}
	return out
}

// MarkupString prefixes every segment with the %c marker, joins them with
// separator and appends terminator. An empty segment list yields only the
// terminator.
func MarkupString(segments []string, separator, terminator string) string {
	if len(segments) == 0 {
		return terminator
	}
	var b strings.Builder
	for i, s := range segments {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(Marker)
		b.WriteString(s)
	}
	b.WriteString(terminator)
	return b.String()
}

// Render builds the template for segments and reconciles it with descriptors.
// The input slices are never modified.
func Render(segments, descriptors []string, opts ...Option) (Output, []Diagnostic) {
	return RenderOptions(segments, descriptors, NewOptions(opts...))
}

// RenderOptions is Render with a prepared Options value.
func RenderOptions(segments, descriptors []string, o Options) (Output, []Diagnostic) {
	segs := append([]string(nil), segments...)
	descs := append([]string(nil), descriptors...)

	var diags []Diagnostic

	if !o.Substitutions && len(segs) != len(descs) {
		var d Diagnostic
		segs, descs, d = healLengths(segs, descs)
		diags = append(diags, d)
	}

	template := o.PreText + MarkupString(segs, o.Separator, o.Terminator)

	if o.Substitutions {
		if flags := CountFlags(template); flags != len(descs) {
			var d Diagnostic
			segs, descs, d = healFlags(flags, segs, descs)
			diags = append(diags, d)
			template = o.PreText + MarkupString(segs, o.Separator, o.Terminator)
		}
	}

	return Output{
		Template:    template,
		Descriptors: descs,
		PostText:    o.PostText,
	}, diags
}
