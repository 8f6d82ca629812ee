package logger_test

import (
	"log/slog"

	"github.com/mordilloSan/go-clap-logger/logger"
)

// This example registers the logger with every level enabled.
func ExampleInitWithLevel() {
	logger.InitWithLevel(logger.TraceLevel)

	logger.Errorf("A error message")
	logger.Warnf("Danger!")
	logger.Infof("This program is currently running")
	logger.Debugf("Super important debug message")
	logger.Tracef("Adding 1 + 1")
}

// This example shows the errors-only default.
func ExampleInit() {
	logger.Init()
	logger.Errorf("could not open %s", "config.toml")
	logger.Warnln("not shown")
}

// This example uses a Logger directly, without registering it globally.
func ExampleNew() {
	l := logger.New(logger.InfoLevel)
	if l.Enabled(logger.InfoLevel) {
		l.Log(logger.Record{Level: logger.InfoLevel, Message: "ready"})
	}
}

// This example sends log/slog output from a library through the logger.
func ExampleNewHandler() {
	log := slog.New(logger.NewHandler(logger.New(logger.DebugLevel)))
	log.Debug("cache lookup", "key", "user:123", "hit", true)
}
