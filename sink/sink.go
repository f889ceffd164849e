package sink

import (
	"os"
	"path/filepath"

	"github.com/loglayer-go/loglayer/core"
)

// Sink is the opaque destination for finished lines. Write is
// fire-and-forget: delivery failures are the sink's own problem and
// are never reported back to the dispatch layer.
type Sink interface {
	// Write forwards one finished line at the given severity
	Write(level core.Level, line string)

	// Close releases the sink's resources
	Close() error
}

// FallbackSubsystem is used when the process executable cannot be resolved.
const FallbackSubsystem = "loglayer.unknown-process"

// DefaultCategory is the fixed category sinks are created under unless
// the caller overrides it.
const DefaultCategory = "application"

// Identity names the stream a sink writes into. Backends that support
// it (slog, zap, logrus) attach both names to every forwarded line.
type Identity struct {
	Subsystem string
	Category  string
}

// ResolveIdentity builds the process identity: subsystem from the
// executable's base name, falling back to a fixed placeholder, with the
// default category.
func ResolveIdentity() Identity {
	return Identity{
		Subsystem: processSubsystem(),
		Category:  DefaultCategory,
	}
}

func processSubsystem() string {
	exe, err := os.Executable()
	if err != nil || exe == "" {
		return FallbackSubsystem
	}
	return filepath.Base(exe)
}
