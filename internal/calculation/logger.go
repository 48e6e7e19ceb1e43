package calculation

import (
	"log"
	"strings"
)

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps "debug", "info", "warn" and "error" to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// StdLogger writes through a *log.Logger, dropping messages below MinLevel.
type StdLogger struct {
	Out      *log.Logger
	MinLevel Level
}

// NewStdLogger wraps out; a nil out uses the standard logger.
func NewStdLogger(out *log.Logger, min Level) *StdLogger {
	if out == nil {
		out = log.Default()
	}
	return &StdLogger{Out: out, MinLevel: min}
}

func (l *StdLogger) logf(level Level, tag, format string, args ...any) {
	if level < l.MinLevel {
		return
	}
	l.Out.Printf(tag+" "+format, args...)
}

func (l *StdLogger) Debugf(format string, args ...any) { l.logf(LevelDebug, "DEBUG", format, args...) }
func (l *StdLogger) Infof(format string, args ...any)  { l.logf(LevelInfo, "INFO", format, args...) }
func (l *StdLogger) Warnf(format string, args ...any)  { l.logf(LevelWarn, "WARN", format, args...) }
func (l *StdLogger) Errorf(format string, args ...any) { l.logf(LevelError, "ERROR", format, args...) }
