package logger

import (
	"sync"

	"github.com/harrison/consolefmt/internal/console"
	"github.com/harrison/consolefmt/internal/terminal"
)

// Entry is one recorded sink call.
type Entry struct {
	Level  console.Level `json:"level"`
	Format string        `json:"format"`
	Args   []any         `json:"args"`
}

// Text returns the entry rendered without color.
func (e Entry) Text() string {
	return terminal.Interpolate(e.Format, e.Args, false)
}

// MemorySink records calls in memory.
type MemorySink struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Emit records the call.
func (m *MemorySink) Emit(level console.Level, format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, Entry{
		Level:  level,
		Format: format,
		Args:   append([]any(nil), args...),
	})
}

// Entries returns a copy of the recorded calls.
func (m *MemorySink) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Texts returns the recorded calls rendered without color.
func (m *MemorySink) Texts() []string {
	entries := m.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Text()
	}
	return out
}

// Reset drops all recorded calls.
func (m *MemorySink) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
}
