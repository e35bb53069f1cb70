// Package logging is a thin wrapper around log/slog that writes to a rotated
// file. The terminal belongs to the UI, so logging is off unless a file path
// is configured.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger with the helpers folio packages use.
type Logger struct {
	logger  *slog.Logger
	enabled bool
}

// LogFormat represents the output format for logs
type LogFormat string

const (
	// FormatText outputs human-readable key=value logs
	FormatText LogFormat = "text"
	// FormatJSON outputs one JSON object per line
	FormatJSON LogFormat = "json"
)

// Config holds configuration for logger initialization
type Config struct {
	// FilePath is the path to the log file (empty = no logging)
	FilePath string
	// Level is the minimum log level
	Level slog.Level
	// Format is the output format (text or json)
	Format LogFormat
	// MaxSizeMB is the size in MB at which the file is rotated
	MaxSizeMB int
	// MaxBackups is the number of rotated files to keep
	MaxBackups int
}

var (
	mu     sync.RWMutex
	global *Logger
	writer *lumberjack.Logger

	noop = &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
)

// Init configures the global logger. An empty FilePath installs the noop
// logger. Calling Init again replaces (and closes) the previous file.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	closeWriterLocked()

	if cfg.FilePath == "" {
		global = noop
		return nil
	}

	writer = &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}
	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	global = &Logger{logger: slog.New(handler), enabled: true}
	return nil
}

// Shutdown flushes and closes the log file, reverting to the noop logger.
func Shutdown() error {
	mu.Lock()
	defer mu.Unlock()

	err := closeWriterLocked()
	global = noop
	return err
}

func closeWriterLocked() error {
	if writer == nil {
		return nil
	}
	err := writer.Close()
	writer = nil
	return err
}

// Get returns the global logger, or the noop logger before Init.
func Get() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	if global == nil {
		return noop
	}
	return global
}

// For returns the global logger tagged with a component name.
func For(component string) *Logger {
	return Get().With("component", component)
}

func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// With returns a new Logger with the given key-value pairs attached
func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...), enabled: l.enabled}
}

// IsEnabled reports whether records go anywhere.
func (l *Logger) IsEnabled() bool {
	return l.enabled
}

// Time runs fn and logs its duration at debug level.
//
// Example:
//
//	log.Time("render page", func() {
//	    content = page.Render(width)
//	})
func (l *Logger) Time(name string, fn func()) {
	if !l.enabled {
		fn()
		return
	}
	start := time.Now()
	fn()
	d := time.Since(start)
	l.Debug(name, "duration", d.String(), "ms", d.Milliseconds())
}

// Package-level convenience functions

func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// IsEnabled returns true if logging is enabled globally
func IsEnabled() bool {
	return Get().IsEnabled()
}

// ParseLevel converts a level name to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseFormat converts a string to LogFormat, defaulting to text.
func ParseFormat(format string) LogFormat {
	if strings.ToLower(format) == "json" {
		return FormatJSON
	}
	return FormatText
}
