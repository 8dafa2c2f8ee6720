package logger

import (
	"github.com/harrison/consolefmt/internal/console"
)

// Multi forwards every call to each of its sinks in order.
type Multi []console.Sink

// NewMulti creates a Multi, skipping nil sinks.
func NewMulti(sinks ...console.Sink) Multi {
	m := make(Multi, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			m = append(m, s)
		}
	}
	return m
}

// Emit forwards the call.
func (m Multi) Emit(level console.Level, format string, args ...any) {
	for _, s := range m {
		s.Emit(level, format, args...)
	}
}
