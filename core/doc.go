// Package core defines the shared types used across loglayer.
//
// It provides the Level type for dispatch severity, the Value type for
// the dynamically-typed arguments a logging call may carry, and the
// Record type that represents a single call on its way to the sink.
//
// Value encodes payloads into fixed-size fields (Int64, Float64)
// wherever possible so that common types like int and bool never
// escape to the heap. The AnyVal field exists as a fallback for
// arbitrary types but will cause an allocation. An empty ListKind
// value is the one degenerate form: the formatter drops it entirely.
//
// Records are not pooled. Unlike a queued entry they are consumed
// synchronously inside the call that built them, so pooling would buy
// nothing.
package core
