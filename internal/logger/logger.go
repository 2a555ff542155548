package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Logger is the logging interface handed to services and the hub.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	SetLevel(level slog.Level)
	Level() slog.Level
	EnableHTTPLogging()
	DisableHTTPLogging()
	IsHTTPLoggingEnabled() bool
}

// SlogLogger implements Logger on top of log/slog with a runtime-adjustable
// level and a toggle for per-request HTTP logging.
type SlogLogger struct {
	slog        *slog.Logger
	level       *slog.LevelVar
	httpLogging atomic.Bool
}

// New creates a SlogLogger writing text logs to stdout at the given level.
func New(level slog.Level) *SlogLogger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter creates a SlogLogger writing to w. Tests use this to capture
// output.
func NewWithWriter(w io.Writer, level slog.Level) *SlogLogger {
	lv := &slog.LevelVar{}
	lv.Set(level)
	return &SlogLogger{
		slog:  slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv})),
		level: lv,
	}
}

// ParseLevel maps a level name (debug, info, warn, error; case-insensitive)
// to a slog.Level, defaulting to info for anything unrecognized.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
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

func (l *SlogLogger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }
func (l *SlogLogger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *SlogLogger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *SlogLogger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

// SetLevel changes the logging level at runtime.
func (l *SlogLogger) SetLevel(level slog.Level) { l.level.Set(level) }

// Level returns the current logging level.
func (l *SlogLogger) Level() slog.Level { return l.level.Level() }

// EnableHTTPLogging turns on HTTP request logging.
func (l *SlogLogger) EnableHTTPLogging() { l.httpLogging.Store(true) }

// DisableHTTPLogging turns off HTTP request logging.
func (l *SlogLogger) DisableHTTPLogging() { l.httpLogging.Store(false) }

// IsHTTPLoggingEnabled reports whether HTTP request logging is on.
func (l *SlogLogger) IsHTTPLoggingEnabled() bool { return l.httpLogging.Load() }
