package console

// Sink receives rendered console calls. format is a template containing
// %c, %s, %d, %i, %f, %o and %O flags, each consuming one of args in order;
// args left over after the template is exhausted are printed after it.
// Implementations must be safe for concurrent use.
type Sink interface {
	Emit(level Level, format string, args ...any)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(level Level, format string, args ...any)

// Emit calls f.
func (f SinkFunc) Emit(level Level, format string, args ...any) {
	f(level, format, args...)
}

// Discard is a Sink that drops everything.
var Discard Sink = SinkFunc(func(Level, string, ...any) {})
