package history

import (
	"context"
	"fmt"

	"github.com/harrison/consolefmt/internal/console"
	"github.com/harrison/consolefmt/internal/terminal"
)

// Sink records every call into a Store.
type Sink struct {
	store   *Store
	onError func(error)
}

// NewSink creates a Sink. onError receives insert failures and may be nil.
func NewSink(store *Store, onError func(error)) *Sink {
	return &Sink{store: store, onError: onError}
}

// Emit records the call along with its uncolored rendering.
func (s *Sink) Emit(level console.Level, format string, args ...any) {
	strs := make([]string, len(args))
	for i, a := range args {
		strs[i] = fmt.Sprint(a)
	}

	err := s.store.Record(context.Background(), &Entry{
		Level:  level,
		Format: format,
		Args:   strs,
		Text:   terminal.Interpolate(format, args, false),
	})
	if err != nil && s.onError != nil {
		s.onError(err)
	}
}
