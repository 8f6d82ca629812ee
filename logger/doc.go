// Package logger provides a minimal console logger whose output matches the
// error reporting format of clap-style command line tools, so log lines and
// usage errors look the same to the user.
//
// # Output
//
// Each record is written as a bold colored prefix padded to six columns, a
// space and the message:
//
//	error: A error message
//	warn:  Danger!
//	info:  This program is currently running
//	debug: Super important debug message
//	trace: Adding 1 + 1
//
// Error records go to stderr and everything else to stdout. Colors are only
// written when the stream is a terminal and neither NO_COLOR nor TERM=dumb
// is set.
//
// # Usage
//
// Register the logger once at startup:
//
//	logger.Init()                          // errors only
//	logger.InitWithLevel(logger.InfoLevel) // errors, warnings and info
//
// Registering twice panics. Then log from anywhere:
//
//	logger.Infof("listening on %s", addr)
//	logger.Errorln("failed to connect:", err)
//
// InitWithLevel also installs the logger behind the default log/slog logger,
// so slog.Info and standard library log.Printf calls made by dependencies
// are formatted the same way.
package logger
