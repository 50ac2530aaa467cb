package obs

import (
	"log"
	"strings"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel accepts level names case-insensitively. Unknown names fall back to Info.
func ParseLevel(name string) Level {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return Debug
	case "WARN", "WARNING":
		return Warn
	case "ERROR":
		return Error
	default:
		return Info
	}
}

// Logger is a minimal leveled logging interface.
type Logger interface {
	Logf(level Level, format string, args ...any)
}

// NopLogger discards all logs.
type NopLogger struct{}

func (NopLogger) Logf(Level, string, ...any) {}

// StdLogger adapts the standard library logger.
type StdLogger struct {
	L   *log.Logger
	Min Level
	// Pref is an optional prefix per log line
	Pref string
}

func (s StdLogger) Logf(level Level, format string, args ...any) {
	if s.L == nil || level < s.Min {
		return
	}

	if s.Pref != "" {
		s.L.Printf("%s[%s] "+format, append([]any{s.Pref, level}, args...)...)
	} else {
		s.L.Printf("[%s] "+format, append([]any{level}, args...)...)
	}
}

// With returns a logger prefixing every line, e.g. by a connection ID. Loggers other than
// StdLogger are returned as is.
func With(logger Logger, prefix string) Logger {
	if std, ok := logger.(StdLogger); ok {
		std.Pref += prefix + " "
		return std
	}

	return logger
}
