// Package sink provides the Sink interface and its built-in
// implementations for delivering finished log lines.
//
// A sink receives (level, line) pairs and nothing else: the line is an
// opaque, fully-formatted string and the level is dispatch metadata.
// Delivery is fire-and-forget; Write reports nothing back and only
// Close can fail.
//
// The Console sink supports both synchronous and asynchronous
// operation. In async mode, lines are sent to a bounded channel and
// written by a background goroutine. When the queue is full, a
// per-level OverflowPolicy decides what happens: DropNewest (default
// for Debug/Info), DropOldest, or Block with a timeout (default for
// Error/Fault), so low-priority lines never stall the application
// while errors are never silently dropped. Dropped, blocked, and
// processed counts are tracked atomically in Stats.
//
// Slog, Zap, and Logrus adapt existing logging backends as sinks; each
// attaches the stream Identity (subsystem and category, resolved once
// at startup) to every forwarded entry. Multi fans a line out to
// several sinks at once.
package sink
