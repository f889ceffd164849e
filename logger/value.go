package logger

import "github.com/loglayer-go/loglayer/core"

// Value constructor re-exports for convenience

// String creates a string argument
func String(v string) core.Value { return core.String(v) }

// Int creates an int argument
func Int(v int) core.Value { return core.Int(v) }

// Int64 creates an int64 argument
func Int64(v int64) core.Value { return core.Int64(v) }

// Float64 creates a float64 argument
func Float64(v float64) core.Value { return core.Float64(v) }

// Bool creates a bool argument
func Bool(v bool) core.Value { return core.Bool(v) }

// List creates an ordered-collection argument
func List(elems ...core.Value) core.Value { return core.List(elems...) }

// Any creates an argument holding an arbitrary type
func Any(v interface{}) core.Value { return core.Any(v) }
