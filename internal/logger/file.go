package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/harrison/consolefmt/internal/console"
	"github.com/harrison/consolefmt/internal/filelock"
	"github.com/harrison/consolefmt/internal/terminal"
)

// FileLogger appends uncolored console calls to a log file.
// Writes take an exclusive lock on "<path>.lock" so several processes can
// share the same file without interleaving lines.
type FileLogger struct {
	path     string
	file     *os.File
	lock     *filelock.FileLock
	minLevel console.Level
	onError  func(error)
	mu       sync.Mutex
}

// NewFileLogger opens (or creates) path for appending. The parent directory
// is created if missing. An empty or invalid logLevel defaults to info.
func NewFileLogger(path string, logLevel string) (*FileLogger, error) {
	if path == "" {
		return nil, fmt.Errorf("log file path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	level, err := console.ParseLevel(logLevel)
	if err != nil {
		level = console.LevelInfo
	}

	return &FileLogger{
		path:     path,
		file:     file,
		lock:     filelock.For(path),
		minLevel: level,
	}, nil
}

// Path returns the log file path.
func (fl *FileLogger) Path() string {
	return fl.path
}

// OnError sets a callback for write failures. Without one, failures are dropped.
func (fl *FileLogger) OnError(fn func(error)) {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	fl.onError = fn
}

// Emit writes "RFC3339 [LEVEL] text" to the file.
func (fl *FileLogger) Emit(level console.Level, format string, args ...any) {
	if !level.Enabled(fl.minLevel) {
		return
	}

	line := fmt.Sprintf("%s [%s] %s\n",
		time.Now().Format(time.RFC3339), level, terminal.Interpolate(format, args, false))

	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.file == nil {
		fl.fail(fmt.Errorf("write to closed log file %s", fl.path))
		return
	}

	err := fl.lock.WithLock(func() error {
		if _, err := fl.file.WriteString(line); err != nil {
			return fmt.Errorf("failed to write log file: %w", err)
		}
		return nil
	})
	if err != nil {
		fl.fail(err)
	}
}

func (fl *FileLogger) fail(err error) {
	if fl.onError != nil {
		fl.onError(err)
	}
}

// Close closes the log file. Further writes are reported through OnError.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.file == nil {
		return nil
	}
	err := fl.file.Close()
	fl.file = nil
	if err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}
