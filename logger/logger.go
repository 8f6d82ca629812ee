package logger

import (
	"io"
	"os"
	"sync"
)

// Record is a single log event. Message is already rendered.
type Record struct {
	Level   Level
	Message string
}

// Sink receives records from the package-level logging functions and the
// log/slog bridge.
type Sink interface {
	// Enabled reports whether records at level would be written. Callers use
	// it to skip formatting work for disabled levels.
	Enabled(level Level) bool
	// Log writes r if its level is enabled.
	Log(r Record)
	// Flush writes any buffered output.
	Flush()
}

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// Logger is a Sink that writes clap-style lines such as
//
//	error: could not open file
//	warn:  falling back to defaults
//
// to the console. Error records go to stderr, all others to stdout.
// A Logger is immutable once created and safe for concurrent use.
type Logger struct {
	level  Level
	stdout io.Writer
	stderr io.Writer

	// prefixes holds the rendered prefix for each level, colored or not
	// depending on the stream that level is written to.
	prefixes [TraceLevel + 1]string

	// Serializes writes so concurrent lines never interleave.
	mu sync.Mutex
}

var _ Sink = (*Logger)(nil)

// New returns a Logger that writes records at level or more severe to the
// process stdout and stderr. It is not registered; see InitWithLevel.
func New(level Level) *Logger {
	return newLogger(level, outStdout, outStderr)
}

func newLogger(level Level, stdout, stderr io.Writer) *Logger {
	l := &Logger{level: level}
	var stdoutColor, stderrColor bool
	l.stdout, stdoutColor = consoleWriter(stdout)
	l.stderr, stderrColor = consoleWriter(stderr)
	for _, lvl := range AllLevels() {
		colored := stdoutColor
		if lvl == ErrorLevel {
			colored = stderrColor
		}
		l.prefixes[lvl] = renderPrefix(lvl, colored)
	}
	return l
}

// Level returns the minimum level the logger writes.
func (l *Logger) Level() Level {
	return l.level
}

// Enabled reports whether level is at least as severe as the configured
// minimum.
func (l *Logger) Enabled(level Level) bool {
	return level.valid() && level <= l.level
}

// Log writes r as "<prefix> <message>\n" using a single Write call.
// Records less severe than the configured minimum are dropped.
func (l *Logger) Log(r Record) {
	if !l.Enabled(r.Level) {
		return
	}

	prefix := l.prefixes[r.Level]
	buf := make([]byte, 0, len(prefix)+len(r.Message)+2)
	buf = append(buf, prefix...)
	buf = append(buf, ' ')
	buf = append(buf, r.Message...)
	buf = append(buf, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	// Console write errors are not reported.
	_, _ = l.writerFor(r.Level).Write(buf)
}

// Flush is a no-op; every line is written straight to its stream.
func (l *Logger) Flush() {}

func (l *Logger) writerFor(level Level) io.Writer {
	if level == ErrorLevel {
		return l.stderr
	}
	return l.stdout
}
