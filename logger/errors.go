package logger

import "errors"

var (
	// ErrAlreadyRegistered is returned when a sink is registered after
	// another one already has been.
	ErrAlreadyRegistered = errors.New("another logger is already registered")

	// ErrNilSink is returned when registering a nil sink.
	ErrNilSink = errors.New("sink is nil")

	// ErrUnknownLevel is returned by ParseLevel for unrecognized names.
	ErrUnknownLevel = errors.New("unknown log level")
)
