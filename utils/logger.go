package utils

import (
	"io"
	"log"
	"strings"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a case-insensitive level name, defaulting to info
func ParseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LogLevelDebug
	case "info":
		return LogLevelInfo
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger provides leveled logging
type Logger struct {
	level LogLevel
	out   *log.Logger
}

// NewLogger creates a logger writing to w at the given level
func NewLogger(w io.Writer, level string) *Logger {
	return &Logger{
		level: ParseLogLevel(level),
		out:   log.New(w, "", log.LstdFlags),
	}
}

// NewNoOpLogger creates a logger that discards everything
func NewNoOpLogger() *Logger {
	return NewLogger(io.Discard, "error")
}

// Level returns the configured level
func (l *Logger) Level() LogLevel {
	return l.level
}

func (l *Logger) logf(level LogLevel, tag, format string, v ...any) {
	if level >= l.level {
		l.out.Printf(tag+format, v...)
	}
}

// Debugf logs a debug message
func (l *Logger) Debugf(format string, v ...any) { l.logf(LogLevelDebug, "[DEBUG] ", format, v...) }

// Infof logs an info message
func (l *Logger) Infof(format string, v ...any) { l.logf(LogLevelInfo, "[INFO] ", format, v...) }

// Warnf logs a warning message
func (l *Logger) Warnf(format string, v ...any) { l.logf(LogLevelWarn, "[WARN] ", format, v...) }

// Errorf logs an error message
func (l *Logger) Errorf(format string, v ...any) { l.logf(LogLevelError, "[ERROR] ", format, v...) }
