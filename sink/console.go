package sink

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/loglayer-go/loglayer/core"
)

// lineEntry is what travels through the async queue: the finished line
// plus the severity it was dispatched at. Two words, passed by value.
type lineEntry struct {
	level core.Level
	line  string
}

// Console writes finished lines to an io.Writer, synchronously or
// through a bounded queue drained by a background goroutine.
type Console struct {
	writer         io.Writer
	async          bool
	queue          chan lineEntry
	wg             sync.WaitGroup
	closed         chan struct{}
	closeOnce      sync.Once
	mu             sync.Mutex
	overflowPolicy map[core.Level]OverflowPolicy
	blockTimeout   time.Duration
	drainTimeout   time.Duration
	stats          *Stats
}

// ConsoleConfig holds configuration for the console sink
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Async enables asynchronous delivery
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// OverflowPolicy defines per-level overflow behavior (default: DefaultLevelPolicy)
	OverflowPolicy map[core.Level]OverflowPolicy
	// BlockTimeout is the timeout for the Block overflow policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining the queue on Close (default: 5s)
	DrainTimeout time.Duration
}

// NewConsole creates a new console sink
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = DefaultLevelPolicy()
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}

	s := &Console{
		writer:         cfg.Writer,
		async:          cfg.Async,
		closed:         make(chan struct{}),
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		drainTimeout:   cfg.DrainTimeout,
		stats:          NewStats(),
	}

	if s.async {
		s.queue = make(chan lineEntry, cfg.BufferSize)
		s.wg.Add(1)
		go s.process()
	}

	return s
}

// Write forwards one line, applying the overflow policy in async mode
func (s *Console) Write(level core.Level, line string) {
	if !s.async {
		s.write(lineEntry{level, line})
		return
	}

	entry := lineEntry{level, line}
	policy, ok := s.overflowPolicy[level]
	if !ok {
		policy = DropNewest
	}

	switch policy {
	case Block:
		select {
		case s.queue <- entry:
		default:
			timer := time.NewTimer(s.blockTimeout)
			select {
			case s.queue <- entry:
				timer.Stop()
			case <-timer.C:
				// Timeout - fall back to a synchronous write
				s.stats.IncrementBlocked()
				s.write(entry)
			case <-s.closed:
				timer.Stop()
				s.write(entry)
			}
		}

	case DropOldest:
		select {
		case s.queue <- entry:
		default:
			// Queue full - evict the oldest and retry once
			select {
			case old := <-s.queue:
				s.stats.IncrementDropped(old.level)
			default:
			}
			select {
			case s.queue <- entry:
			default:
				s.stats.IncrementDropped(level)
			}
		}

	case DropNewest:
		fallthrough
	default:
		select {
		case s.queue <- entry:
		default:
			s.stats.IncrementDropped(level)
		}
	}
}

// write serializes access to the underlying writer
func (s *Console) write(entry lineEntry) {
	s.mu.Lock()
	_, err := io.WriteString(s.writer, entry.line+"\n")
	s.mu.Unlock()

	if err == nil {
		s.stats.IncrementProcessed()
	}
}

// process drains the async queue
func (s *Console) process() {
	defer s.wg.Done()

	for {
		select {
		case entry := <-s.queue:
			s.write(entry)
		case <-s.closed:
			// Drain remaining lines with a timeout
			deadline := time.After(s.drainTimeout)
			for {
				select {
				case entry := <-s.queue:
					s.write(entry)
				case <-deadline:
					return
				default:
					return
				}
			}
		}
	}
}

// Stats returns a snapshot of the delivery counters
func (s *Console) Stats() Snapshot {
	return s.stats.GetSnapshot()
}

// Close stops the background goroutine after draining the queue
func (s *Console) Close() error {
	s.closeOnce.Do(func() {
		close(s.closed)
		if s.async {
			s.wg.Wait()
		}
	})
	return nil
}
