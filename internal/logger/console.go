// Package logger provides the sinks that print rendered console calls.
//
// ConsoleLogger writes to a terminal and turns %c style descriptors into
// ANSI colors. FileLogger appends uncolored lines to a shared log file.
// MemorySink keeps calls in memory and Multi fans a call out to several
// sinks. All sinks are safe for concurrent use.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/consolefmt/internal/console"
	"github.com/harrison/consolefmt/internal/terminal"
	"github.com/mattn/go-isatty"
)

// Color modes accepted by ConsoleConfig.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ConsoleConfig holds configuration for ConsoleLogger.
type ConsoleConfig struct {
	// Writer receives debug, log and info lines (default: os.Stdout).
	Writer io.Writer
	// ErrWriter receives warn and error lines (default: Writer).
	ErrWriter io.Writer
	// Level is the minimum channel written (debug, log, info, warn, error).
	Level string
	// Color is auto, always or never. Auto enables color on terminals.
	Color string
	// Timestamps prefixes each line with [HH:MM:SS].
	Timestamps bool
	// ShowLevel prefixes each line with its channel name.
	ShowLevel bool
}

// ConsoleLogger prints console calls to a terminal.
type ConsoleLogger struct {
	writer      io.Writer
	errWriter   io.Writer
	minLevel    console.Level
	timestamps  bool
	showLevel   bool
	colorOutput bool
	mutex       sync.Mutex
}

// NewConsoleLogger creates a ConsoleLogger that writes every channel to writer.
// If writer is nil, lines are silently discarded. An empty or invalid logLevel
// defaults to info.
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	cl := NewConsoleLoggerWithConfig(ConsoleConfig{Writer: writer, Level: logLevel})
	cl.writer = writer
	cl.errWriter = writer
	return cl
}

// NewConsoleLoggerWithConfig creates a ConsoleLogger from cfg.
func NewConsoleLoggerWithConfig(cfg ConsoleConfig) *ConsoleLogger {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.ErrWriter == nil {
		cfg.ErrWriter = cfg.Writer
	}

	level, err := console.ParseLevel(cfg.Level)
	if err != nil {
		level = console.LevelInfo
	}

	return &ConsoleLogger{
		writer:      cfg.Writer,
		errWriter:   cfg.ErrWriter,
		minLevel:    level,
		timestamps:  cfg.Timestamps,
		showLevel:   cfg.ShowLevel,
		colorOutput: useColor(cfg.Color, cfg.Writer),
	}
}

// useColor resolves a color mode against the writer.
func useColor(mode string, w io.Writer) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal(w)
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
// NO_COLOR disables color through fatih/color's detection.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ColorEnabled reports whether escape sequences are written.
func (cl *ConsoleLogger) ColorEnabled() bool {
	return cl.colorOutput
}

// Emit renders the call and writes it as one line.
func (cl *ConsoleLogger) Emit(level console.Level, format string, args ...any) {
	if !level.Enabled(cl.minLevel) {
		return
	}

	w := cl.writer
	if level == console.LevelWarn || level == console.LevelError {
		w = cl.errWriter
	}
	if w == nil {
		return
	}

	line := cl.prefix(level) + terminal.Interpolate(format, args, cl.colorOutput) + "\n"

	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	io.WriteString(w, line)
}

func (cl *ConsoleLogger) prefix(level console.Level) string {
	var b strings.Builder
	if cl.timestamps {
		fmt.Fprintf(&b, "[%s] ", timestamp())
	}
	if cl.showLevel {
		b.WriteString("[")
		b.WriteString(cl.levelLabel(level))
		b.WriteString("] ")
	}
	return b.String()
}

// levelLabel returns the channel name, colored when color output is on.
func (cl *ConsoleLogger) levelLabel(level console.Level) string {
	label := level.String()
	if !cl.colorOutput {
		return label
	}

	var c *color.Color
	switch level {
	case console.LevelDebug:
		c = color.New(color.FgCyan)
	case console.LevelInfo:
		c = color.New(color.FgBlue)
	case console.LevelWarn:
		c = color.New(color.FgYellow)
	case console.LevelError:
		c = color.New(color.FgRed)
	default:
		c = color.New(color.FgHiBlack)
	}
	c.EnableColor()
	return c.Sprint(label)
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}
