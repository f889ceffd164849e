package sink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/loglayer-go/loglayer/core"
)

// Zap forwards finished lines to a *zap.Logger, carrying the stream
// identity as fields on every entry.
type Zap struct {
	logger *zap.Logger
}

// NewZap creates a sink backed by the given zap logger
func NewZap(l *zap.Logger, id Identity) *Zap {
	return &Zap{
		logger: l.With(
			zap.String("subsystem", id.Subsystem),
			zap.String("category", id.Category),
		),
	}
}

// Write forwards the line at the mapped zap level
func (s *Zap) Write(level core.Level, line string) {
	if ce := s.logger.Check(coreLevelToZap(level), line); ce != nil {
		ce.Write()
	}
}

// Close flushes zap's buffers
func (s *Zap) Close() error {
	return s.logger.Sync()
}

// coreLevelToZap maps dispatch levels onto zap levels. Fault maps to
// Error: zap's Fatal calls os.Exit, which a pass-through sink must
// never trigger.
func coreLevelToZap(level core.Level) zapcore.Level {
	switch level {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.ErrorLevel, core.FaultLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
