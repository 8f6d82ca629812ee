package logger

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
)

// TestConcurrency_MultipleLevels verifies that the mutex prevents garbled output
// when multiple goroutines log simultaneously at different levels.
func TestConcurrency_MultipleLevels(t *testing.T) {
	var stdout, stderr bytes.Buffer
	l := newLogger(TraceLevel, &stdout, &stderr)

	const numGoroutines = 200
	const messagesPerGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			for j := range messagesPerGoroutine {
				for _, level := range AllLevels() {
					if l.Enabled(level) {
						l.Log(Record{Level: level, Message: fmt.Sprintf("goroutine-%d-%s-%d", id, level, j)})
					}
				}
			}
		}(i)
	}
	wg.Wait()

	errLines := strings.Split(strings.TrimSuffix(stderr.String(), "\n"), "\n")
	outLines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")

	if want := numGoroutines * messagesPerGoroutine; len(errLines) != want {
		t.Fatalf("expected %d stderr lines, got %d", want, len(errLines))
	}
	if want := numGoroutines * messagesPerGoroutine * 4; len(outLines) != want {
		t.Fatalf("expected %d stdout lines, got %d", want, len(outLines))
	}

	// Each line must be a whole record: its prefix matches the level named in
	// the message.
	for i, line := range append(errLines, outLines...) {
		prefix, msg, ok := strings.Cut(line, " ")
		if !ok {
			t.Fatalf("line %d appears garbled: %q", i, line)
		}
		msg = strings.TrimLeft(msg, " ")
		parts := strings.Split(msg, "-")
		if len(parts) != 4 || parts[0] != "goroutine" {
			t.Fatalf("line %d appears garbled (bad message): %q", i, line)
		}
		level, err := ParseLevel(parts[2])
		if err != nil {
			t.Fatalf("line %d appears garbled (bad level): %q", i, line)
		}
		if prefix != prefixText(level) {
			t.Fatalf("line %d has prefix %q for a %s record", i, prefix, level)
		}
	}
}

// TestConcurrency_Facade verifies that the package-level functions are safe
// to call from many goroutines once a logger is registered.
func TestConcurrency_Facade(t *testing.T) {
	resetRegistry(t)
	stdout, stderr := captureOutput(t)
	InitWithLevel(InfoLevel)

	const numGoroutines = 100
	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			Infof("concurrent-log %d", id)
			Debugf("filtered %d", id)
			Errorln("concurrent-error")
		}(i)
	}
	wg.Wait()

	outLines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(outLines) != numGoroutines {
		t.Fatalf("expected %d stdout lines, got %d", numGoroutines, len(outLines))
	}
	for i, line := range outLines {
		if !strings.HasPrefix(line, "info:  concurrent-log ") {
			t.Fatalf("stdout line %d appears garbled: %q", i, line)
		}
	}

	errLines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	if len(errLines) != numGoroutines {
		t.Fatalf("expected %d stderr lines, got %d", numGoroutines, len(errLines))
	}
	for i, line := range errLines {
		if line != "error: concurrent-error" {
			t.Fatalf("stderr line %d appears garbled: %q", i, line)
		}
	}
}
