package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level is a log severity. Lower values are more severe, so a record at
// level r passes a logger configured at min when r <= min.
type Level uint8

const (
	// ErrorLevel is for failures the user must see.
	ErrorLevel Level = iota + 1
	// WarnLevel is for recoverable problems.
	WarnLevel
	// InfoLevel is for progress messages.
	InfoLevel
	// DebugLevel is for diagnostics.
	DebugLevel
	// TraceLevel is for very verbose diagnostics.
	TraceLevel
)

// SlogLevelTrace is the log/slog level that maps to TraceLevel.
const SlogLevelTrace = slog.Level(-8)

// AllLevels returns all supported levels, most severe first.
func AllLevels() []Level {
	return []Level{
		ErrorLevel,
		WarnLevel,
		InfoLevel,
		DebugLevel,
		TraceLevel,
	}
}

func (l Level) valid() bool {
	return l >= ErrorLevel && l <= TraceLevel
}

func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "error"
	case WarnLevel:
		return "warn"
	case InfoLevel:
		return "info"
	case DebugLevel:
		return "debug"
	case TraceLevel:
		return "trace"
	default:
		return fmt.Sprintf("Level(%d)", uint8(l))
	}
}

// ParseLevel parses a level name. Matching is case-insensitive and
// "warning" is accepted as an alias for "warn".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return ErrorLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	case "trace":
		return TraceLevel, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseLevel.
func (l *Level) UnmarshalText(text []byte) error {
	lvl, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}

// SlogLevel returns the log/slog level corresponding to l.
func (l Level) SlogLevel() slog.Level {
	switch l {
	case ErrorLevel:
		return slog.LevelError
	case WarnLevel:
		return slog.LevelWarn
	case InfoLevel:
		return slog.LevelInfo
	case DebugLevel:
		return slog.LevelDebug
	default:
		return SlogLevelTrace
	}
}

// FromSlogLevel maps a log/slog level onto the nearest Level at or below it.
// Anything above slog.LevelError is ErrorLevel and anything below
// slog.LevelDebug is TraceLevel.
func FromSlogLevel(lvl slog.Level) Level {
	switch {
	case lvl >= slog.LevelError:
		return ErrorLevel
	case lvl >= slog.LevelWarn:
		return WarnLevel
	case lvl >= slog.LevelInfo:
		return InfoLevel
	case lvl >= slog.LevelDebug:
		return DebugLevel
	default:
		return TraceLevel
	}
}
