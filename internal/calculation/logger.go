package calculation

import (
	"fmt"
	"io"
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

// LogLevel orders log severities.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLogLevel maps "debug", "info", "warn" and "error" to a level; anything else is info.
func ParseLogLevel(s string) LogLevel {
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

// StdLogger writes leveled lines through the standard library logger.
type StdLogger struct {
	out   *log.Logger
	level LogLevel
}

// NewStdLogger returns a Logger that drops messages below level.
func NewStdLogger(w io.Writer, level LogLevel) *StdLogger {
	return &StdLogger{out: log.New(w, "", log.LstdFlags), level: level}
}

func (l *StdLogger) logf(level LogLevel, tag, format string, args ...any) {
	if level < l.level {
		return
	}
	l.out.Printf("%s %s", tag, fmt.Sprintf(format, args...))
}

func (l *StdLogger) Debugf(format string, args ...any) { l.logf(LevelDebug, "DEBUG", format, args...) }
func (l *StdLogger) Infof(format string, args ...any)  { l.logf(LevelInfo, "INFO", format, args...) }
func (l *StdLogger) Warnf(format string, args ...any)  { l.logf(LevelWarn, "WARN", format, args...) }
func (l *StdLogger) Errorf(format string, args ...any) { l.logf(LevelError, "ERROR", format, args...) }
