package sink

import (
	"sync/atomic"

	"github.com/loglayer-go/loglayer/core"
)

// OverflowPolicy defines how an async sink handles a full queue
type OverflowPolicy int

const (
	// DropNewest drops the incoming line when the queue is full
	DropNewest OverflowPolicy = iota
	// DropOldest evicts the oldest queued line to make room
	DropOldest
	// Block waits for space, with a timeout
	Block
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}

// DefaultLevelPolicy returns the default level-based overflow policies
func DefaultLevelPolicy() map[core.Level]OverflowPolicy {
	return map[core.Level]OverflowPolicy{
		core.DebugLevel: DropNewest,
		core.InfoLevel:  DropNewest,
		core.ErrorLevel: Block,
		core.FaultLevel: Block,
	}
}

// Stats tracks sink delivery counters
type Stats struct {
	DroppedDebug uint64
	DroppedInfo  uint64
	DroppedError uint64
	DroppedFault uint64
	// BlockedTotal counts times a writer blocked on a full queue
	BlockedTotal uint64
	// ProcessedTotal counts lines written through to the output
	ProcessedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped atomically increments the dropped counter for a level
func (s *Stats) IncrementDropped(level core.Level) {
	switch level {
	case core.DebugLevel:
		atomic.AddUint64(&s.DroppedDebug, 1)
	case core.InfoLevel:
		atomic.AddUint64(&s.DroppedInfo, 1)
	case core.ErrorLevel:
		atomic.AddUint64(&s.DroppedError, 1)
	default:
		atomic.AddUint64(&s.DroppedFault, 1)
	}
}

// IncrementBlocked atomically increments the blocked counter
func (s *Stats) IncrementBlocked() {
	atomic.AddUint64(&s.BlockedTotal, 1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// GetDropped returns the dropped count for a level
func (s *Stats) GetDropped(level core.Level) uint64 {
	switch level {
	case core.DebugLevel:
		return atomic.LoadUint64(&s.DroppedDebug)
	case core.InfoLevel:
		return atomic.LoadUint64(&s.DroppedInfo)
	case core.ErrorLevel:
		return atomic.LoadUint64(&s.DroppedError)
	case core.FaultLevel:
		return atomic.LoadUint64(&s.DroppedFault)
	default:
		return 0
	}
}

// GetTotalDropped returns the total dropped across all levels
func (s *Stats) GetTotalDropped() uint64 {
	return atomic.LoadUint64(&s.DroppedDebug) +
		atomic.LoadUint64(&s.DroppedInfo) +
		atomic.LoadUint64(&s.DroppedError) +
		atomic.LoadUint64(&s.DroppedFault)
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	DroppedTotal   map[core.Level]uint64
	BlockedTotal   uint64
	ProcessedTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		DroppedTotal: map[core.Level]uint64{
			core.DebugLevel: s.GetDropped(core.DebugLevel),
			core.InfoLevel:  s.GetDropped(core.InfoLevel),
			core.ErrorLevel: s.GetDropped(core.ErrorLevel),
			core.FaultLevel: s.GetDropped(core.FaultLevel),
		},
		BlockedTotal:   atomic.LoadUint64(&s.BlockedTotal),
		ProcessedTotal: atomic.LoadUint64(&s.ProcessedTotal),
	}
}
