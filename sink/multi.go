package sink

import "github.com/loglayer-go/loglayer/core"

// Multi fans one line out to multiple sinks
type Multi struct {
	sinks []Sink
}

// NewMulti creates a fan-out sink over the given children
func NewMulti(sinks ...Sink) *Multi {
	return &Multi{sinks: sinks}
}

// Write forwards the line to every child sink
func (m *Multi) Write(level core.Level, line string) {
	for _, s := range m.sinks {
		s.Write(level, line)
	}
}

// Close closes all child sinks, returning the last error seen
func (m *Multi) Close() error {
	var lastErr error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
