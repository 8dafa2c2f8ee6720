package console

import (
	"fmt"
	"strings"
)

// Level selects the sink channel a line is written to.
type Level int

// Channels in increasing severity. LevelLog is the plain, unlabelled channel
// and ranks with LevelInfo for filtering.
const (
	LevelDebug Level = iota
	LevelLog
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the upper-case channel name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelLog:
		return "LOG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Severity returns the rank used for level filtering.
func (l Level) Severity() int {
	switch l {
	case LevelDebug:
		return 0
	case LevelLog, LevelInfo:
		return 1
	case LevelWarn:
		return 2
	case LevelError:
		return 3
	default:
		return 1
	}
}

// Enabled reports whether a line at l passes a minimum level.
func (l Level) Enabled(threshold Level) bool {
	return l.Severity() >= threshold.Severity()
}

// ParseLevel converts a case-insensitive channel name to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "log":
		return LevelLog, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown level %q, must be one of: debug, log, info, warn, error", s)
	}
}
