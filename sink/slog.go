package sink

import (
	"context"
	"log/slog"

	"github.com/loglayer-go/loglayer/core"
)

// Slog forwards finished lines to a *slog.Logger, carrying the stream
// identity as attributes on every record.
type Slog struct {
	logger *slog.Logger
}

// NewSlog creates a sink backed by the given slog logger
func NewSlog(l *slog.Logger, id Identity) *Slog {
	return &Slog{
		logger: l.With(
			slog.String("subsystem", id.Subsystem),
			slog.String("category", id.Category),
		),
	}
}

// Write forwards the line at the mapped slog level
func (s *Slog) Write(level core.Level, line string) {
	s.logger.Log(context.Background(), coreLevelToSlog(level), line)
}

// Close is a no-op; the slog backend owns its resources
func (s *Slog) Close() error {
	return nil
}

// coreLevelToSlog maps dispatch levels onto slog levels. Fault has no
// slog equivalent and lands one notch above Error.
func coreLevelToSlog(level core.Level) slog.Level {
	switch level {
	case core.DebugLevel:
		return slog.LevelDebug
	case core.InfoLevel:
		return slog.LevelInfo
	case core.ErrorLevel:
		return slog.LevelError
	case core.FaultLevel:
		return slog.LevelError + 4
	default:
		return slog.LevelInfo
	}
}
