package logger

import (
	"time"

	"github.com/loglayer-go/loglayer/core"
	"github.com/loglayer-go/loglayer/format"
	"github.com/loglayer-go/loglayer/sink"
)

// Logger dispatches formatted lines to a sink (immutable)
type Logger struct {
	sink       sink.Sink
	identity   sink.Identity
	callerSkip int
	now        func() time.Time
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	sink       sink.Sink
	identity   sink.Identity
	callerSkip int
	now        func() time.Time
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		identity:   sink.ResolveIdentity(),
		callerSkip: 3, // Default skip for core.Caller
		now:        time.Now,
	}
}

// WithSink sets the destination sink
func (b *Builder) WithSink(s sink.Sink) *Builder {
	b.sink = s
	return b
}

// WithIdentity overrides the resolved subsystem/category identity
func (b *Builder) WithIdentity(id sink.Identity) *Builder {
	b.identity = id
	return b
}

// WithCallerSkip adjusts how many frames above the logging call the
// recorded call site sits. Wrappers that forward to this logger add
// one frame each.
func (b *Builder) WithCallerSkip(skip int) *Builder {
	b.callerSkip = skip
	return b
}

// WithCoarseClock makes the logger timestamp lines from the cached
// coarse clock (500µs resolution) instead of calling time.Now per line
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	if enabled {
		core.StartCoarseClock()
		b.now = core.CoarseNow
	} else {
		b.now = time.Now
	}
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		sink:       b.sink,
		identity:   b.identity,
		callerSkip: b.callerSkip,
		now:        b.now,
	}
}

// Identity returns the subsystem/category the logger was built with
func (l *Logger) Identity() sink.Identity {
	return l.identity
}

// Emit formats one line and forwards it to the sink at the given
// severity. Exactly one sink write per call; nothing is returned and
// nothing panics on a malformed template.
func (l *Logger) Emit(level core.Level, msg string, args ...core.Value) {
	l.emit(level, msg, args, l.callerSkip)
}

// emit is the single implementation every public variant funnels into
func (l *Logger) emit(level core.Level, msg string, args []core.Value, skip int) {
	if l.sink == nil {
		return
	}

	rec := core.Record{
		Time:     l.now(),
		Level:    level,
		Message:  msg,
		Args:     args,
		Site:     core.Caller(skip),
		ThreadID: core.ThreadID(),
	}

	l.sink.Write(level, format.Render(&rec))
}

// EmitAny accepts a non-string message, rendering it through its
// default string form before the usual formatting
func (l *Logger) EmitAny(level core.Level, msg core.Value, args ...core.Value) {
	l.emit(level, msg.StringValue(), args, l.callerSkip)
}

// Debug emits a line at debug severity
func (l *Logger) Debug(msg string, args ...core.Value) {
	l.emit(core.DebugLevel, msg, args, l.callerSkip)
}

// Info emits a line at the default (info) severity
func (l *Logger) Info(msg string, args ...core.Value) {
	l.emit(core.InfoLevel, msg, args, l.callerSkip)
}

// Error emits a line at error severity
func (l *Logger) Error(msg string, args ...core.Value) {
	l.emit(core.ErrorLevel, msg, args, l.callerSkip)
}

// Fault emits a line at fault severity
func (l *Logger) Fault(msg string, args ...core.Value) {
	l.emit(core.FaultLevel, msg, args, l.callerSkip)
}

// Mark emits an empty info line that records nothing but the call
// site, timestamp, and thread
func (l *Logger) Mark() {
	l.emit(core.InfoLevel, "", nil, l.callerSkip)
}

// Close closes the logger's sink
func (l *Logger) Close() error {
	if l.sink != nil {
		return l.sink.Close()
	}
	return nil
}
