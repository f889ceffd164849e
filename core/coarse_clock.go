package core

import (
	"sync"
	"sync/atomic"
	"time"
)

var (
	coarseClockOnce sync.Once
	coarseNanos     atomic.Int64
)

// StartCoarseClock starts a background goroutine that caches the
// current time every 500µs, for loggers that would rather not pay for
// time.Now on every line. The envelope timestamp carries millisecond
// precision, so the cached value is always fresh enough. Safe to call
// multiple times; the goroutine is started exactly once and runs for
// the lifetime of the process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		coarseNanos.Store(time.Now().UnixNano())
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				coarseNanos.Store(time.Now().UnixNano())
			}
		}()
	})
}

// CoarseNow returns the most recently cached time. StartCoarseClock
// must have been called first.
func CoarseNow() time.Time {
	return time.Unix(0, coarseNanos.Load())
}
