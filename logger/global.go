package logger

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

type slot struct {
	sink Sink
}

// registered holds the process-wide sink. It is written once.
var registered atomic.Pointer[slot]

// SetLogger installs s as the process-wide sink used by the package-level
// logging functions. Only the first call succeeds; later calls return
// ErrAlreadyRegistered and leave the installed sink in place.
func SetLogger(s Sink) error {
	if s == nil {
		return ErrNilSink
	}
	if !registered.CompareAndSwap(nil, &slot{sink: s}) {
		return ErrAlreadyRegistered
	}
	return nil
}

// Current returns the registered sink, or nil if none has been installed.
func Current() Sink {
	if p := registered.Load(); p != nil {
		return p.sink
	}
	return nil
}

// Init registers a Logger that only writes errors.
// See InitWithLevel.
func Init() {
	InitWithLevel(ErrorLevel)
}

// InitWithLevel registers a Logger writing level and more severe records as
// the process-wide sink, and makes it the backend of the default log/slog
// logger so slog and standard library log calls end up there too.
//
// It must be called at most once per process. A second call, or a call
// after SetLogger, panics with an error wrapping ErrAlreadyRegistered.
func InitWithLevel(level Level) {
	l := New(level)
	if err := SetLogger(l); err != nil {
		panic(fmt.Errorf("failed to set up logger: %w", err))
	}
	slog.SetDefault(slog.New(NewHandler(l)))
}

// Enabled reports whether the registered sink would write records at level.
// It is false when no sink is registered.
func Enabled(level Level) bool {
	s := Current()
	return s != nil && s.Enabled(level)
}

// Log sends msg at level to the registered sink.
func Log(level Level, msg string) {
	s := Current()
	if s == nil || !s.Enabled(level) {
		return
	}
	s.Log(Record{Level: level, Message: msg})
}

// Flush flushes the registered sink.
func Flush() {
	if s := Current(); s != nil {
		s.Flush()
	}
}

// logf renders the message only when the level is enabled.
func logf(level Level, format string, v []any) {
	s := Current()
	if s == nil || !s.Enabled(level) {
		return
	}
	s.Log(Record{Level: level, Message: fmt.Sprintf(format, v...)})
}

func logln(level Level, v []any) {
	s := Current()
	if s == nil || !s.Enabled(level) {
		return
	}
	s.Log(Record{Level: level, Message: fmt.Sprint(v...)})
}

// --- Formatted logging methods (fmt.Sprintf style) ---

// Errorf logs an error message formatted with fmt.Sprintf.
func Errorf(format string, v ...any) { logf(ErrorLevel, format, v) }

// Warnf logs a warning message formatted with fmt.Sprintf.
func Warnf(format string, v ...any) { logf(WarnLevel, format, v) }

// Infof logs an informational message formatted with fmt.Sprintf.
func Infof(format string, v ...any) { logf(InfoLevel, format, v) }

// Debugf logs a debug message formatted with fmt.Sprintf.
func Debugf(format string, v ...any) { logf(DebugLevel, format, v) }

// Tracef logs a trace message formatted with fmt.Sprintf.
func Tracef(format string, v ...any) { logf(TraceLevel, format, v) }

// --- Plain logging methods (fmt.Sprint style) ---

// Errorln logs an error message by joining arguments with fmt.Sprint.
func Errorln(v ...any) { logln(ErrorLevel, v) }

// Warnln logs a warning message by joining arguments with fmt.Sprint.
func Warnln(v ...any) { logln(WarnLevel, v) }

// Infoln logs an informational message by joining arguments with fmt.Sprint.
func Infoln(v ...any) { logln(InfoLevel, v) }

// Debugln logs a debug message by joining arguments with fmt.Sprint.
func Debugln(v ...any) { logln(DebugLevel, v) }

// Traceln logs a trace message by joining arguments with fmt.Sprint.
func Traceln(v ...any) { logln(TraceLevel, v) }
