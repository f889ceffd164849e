package logger

import (
	"strings"

	"github.com/loglayer-go/loglayer/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	ErrorLevel = core.ErrorLevel
	FaultLevel = core.FaultLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "ERROR":
		return ErrorLevel
	case "FAULT", "CRITICAL":
		return FaultLevel
	default:
		return InfoLevel
	}
}
