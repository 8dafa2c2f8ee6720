// Package console turns segment/style lists into calls on a Sink.
//
// Console is the caller-facing layer: it renders segments with the format
// package, reports any healing diagnostics on the sink's warning channel and
// then emits the reconciled template and arguments on the requested channel.
// Badge helpers pick a named preset and route to the channel matching the
// badge's meaning.
package console

import (
	"github.com/harrison/consolefmt/internal/format"
	"github.com/harrison/consolefmt/internal/preset"
)

// Console writes styled lines to a Sink. It holds no per-call state.
type Console struct {
	sink    Sink
	presets *preset.Presets
}

// Option configures a Console.
type Option func(*Console)

// WithPresets replaces the built-in badge presets.
func WithPresets(p *preset.Presets) Option {
	return func(c *Console) {
		if p != nil {
			c.presets = p
		}
	}
}

// New creates a Console writing to sink. A nil sink discards output.
func New(sink Sink, opts ...Option) *Console {
	if sink == nil {
		sink = Discard
	}
	c := &Console{
		sink:    sink,
		presets: preset.New(nil, ""),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Presets returns the presets used for badges.
func (c *Console) Presets() *preset.Presets {
	return c.presets
}

// Styled renders segments and styles into a sink call without emitting it.
// Healing diagnostics are written to the warning channel.
func (c *Console) Styled(segments, styles []string, opts ...format.Option) format.Output {
	out, diags := format.Render(segments, styles, opts...)
	for _, d := range diags {
		c.sink.Emit(LevelWarn, d.String())
	}
	return out
}

// Print renders and emits segments on the given channel.
func (c *Console) Print(level Level, segments, styles []string, opts ...format.Option) {
	c.Emit(level, c.Styled(segments, styles, opts...))
}

// Emit forwards a rendered output to the sink unchanged.
func (c *Console) Emit(level Level, out format.Output) {
	c.sink.Emit(level, out.Template, out.Args()...)
}

// Log prints on the plain channel.
func (c *Console) Log(segments, styles []string, opts ...format.Option) {
	c.Print(LevelLog, segments, styles, opts...)
}

// Debug prints on the debug channel.
func (c *Console) Debug(segments, styles []string, opts ...format.Option) {
	c.Print(LevelDebug, segments, styles, opts...)
}

// Info prints on the info channel.
func (c *Console) Info(segments, styles []string, opts ...format.Option) {
	c.Print(LevelInfo, segments, styles, opts...)
}

// Warn prints on the warning channel.
func (c *Console) Warn(segments, styles []string, opts ...format.Option) {
	c.Print(LevelWarn, segments, styles, opts...)
}

// Error prints on the error channel.
func (c *Console) Error(segments, styles []string, opts ...format.Option) {
	c.Print(LevelError, segments, styles, opts...)
}
