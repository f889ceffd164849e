// Package logger is the public API of loglayer. Most users only need
// to import this package.
//
// A Logger is immutable after construction — the sink, identity, and
// caller skip are set once via the Builder and never modified. Every
// call formats exactly one line and hands it to the sink; there is no
// level filtering, no return value, and nothing on the path can panic.
// This makes Logger inherently safe for concurrent use without any
// locking on the emit path.
//
// The package initializes a default Logger (async console sink,
// identity resolved from the executable) in init(), so simple programs
// can log without any setup:
//
//	logger.Info("connected to %@", logger.String("db-primary"))
//	logger.Error("retry %d of %d", logger.Int(n), logger.Int(max))
//	logger.Mark() // call-site marker only
//
// Arguments beyond the template's placeholders are never dropped; they
// show up in a bracketed "Extra Args" suffix on the line. Empty list
// arguments are dropped entirely.
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithSink(sink.NewZap(zl, sink.ResolveIdentity())).
//	    WithCallerSkip(4). // when wrapped one level deep
//	    Build()
package logger
