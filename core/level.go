package core

// Level represents the severity attached to a dispatched line
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages (default)
	InfoLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FaultLevel for faults that indicate a bug in the program
	FaultLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case ErrorLevel:
		return "ERROR"
	case FaultLevel:
		return "FAULT"
	default:
		return "UNKNOWN"
	}
}
