package sink

import (
	"github.com/sirupsen/logrus"

	"github.com/loglayer-go/loglayer/core"
)

// Logrus forwards finished lines to a *logrus.Logger, carrying the
// stream identity as fields on every entry.
type Logrus struct {
	entry *logrus.Entry
}

// NewLogrus creates a sink backed by the given logrus logger
func NewLogrus(l *logrus.Logger, id Identity) *Logrus {
	return &Logrus{
		entry: l.WithFields(logrus.Fields{
			"subsystem": id.Subsystem,
			"category":  id.Category,
		}),
	}
}

// Write forwards the line at the mapped logrus level. Entry.Log (as
// opposed to Entry.Fatal) does not exit the process at FatalLevel.
func (s *Logrus) Write(level core.Level, line string) {
	s.entry.Log(coreLevelToLogrus(level), line)
}

// Close is a no-op; the logrus backend owns its resources
func (s *Logrus) Close() error {
	return nil
}

func coreLevelToLogrus(level core.Level) logrus.Level {
	switch level {
	case core.DebugLevel:
		return logrus.DebugLevel
	case core.InfoLevel:
		return logrus.InfoLevel
	case core.ErrorLevel:
		return logrus.ErrorLevel
	case core.FaultLevel:
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}
