package logger

import (
	"sync"

	"github.com/loglayer-go/loglayer/core"
	"github.com/loglayer-go/loglayer/sink"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize the process-wide handle: async console sink, identity
	// resolved from the executable. Built once, never reconstructed.
	s := sink.NewConsole(sink.ConsoleConfig{
		Async:      true,
		BufferSize: 1000,
	})

	defaultLogger = NewBuilder().
		WithSink(s).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger.
// These call emit directly so the recorded call site is the caller's,
// not this file.

// Emit dispatches a line at the given severity using the default logger
func Emit(level core.Level, msg string, args ...core.Value) {
	d := Default()
	d.emit(level, msg, args, d.callerSkip)
}

// Debug emits a debug line using the default logger
func Debug(msg string, args ...core.Value) {
	d := Default()
	d.emit(core.DebugLevel, msg, args, d.callerSkip)
}

// Info emits an info line using the default logger
func Info(msg string, args ...core.Value) {
	d := Default()
	d.emit(core.InfoLevel, msg, args, d.callerSkip)
}

// Error emits an error line using the default logger
func Error(msg string, args ...core.Value) {
	d := Default()
	d.emit(core.ErrorLevel, msg, args, d.callerSkip)
}

// Fault emits a fault line using the default logger
func Fault(msg string, args ...core.Value) {
	d := Default()
	d.emit(core.FaultLevel, msg, args, d.callerSkip)
}

// Mark emits a call-site marker using the default logger
func Mark() {
	d := Default()
	d.emit(core.InfoLevel, "", nil, d.callerSkip)
}
