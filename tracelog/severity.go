package tracelog

import (
	"fmt"
	"strings"
)

// Severity ranks log records. Lower values are more severe: FatalLevel is
// the most severe, DebugLevel the least.
type Severity int

const (
	// FatalLevel marks unrecoverable failures.
	FatalLevel Severity = iota
	// ErrorLevel marks failures the program can survive.
	ErrorLevel
	// WarnLevel marks suspicious but non-failing conditions.
	WarnLevel
	// InfoLevel marks normal operational messages. This is the default threshold.
	InfoLevel
	// DebugLevel marks diagnostic chatter.
	DebugLevel
)

// AtLeast reports whether s is at least as severe as t.
func (s Severity) AtLeast(t Severity) bool {
	return s <= t
}

// String returns the display name of the severity.
func (s Severity) String() string {
	switch s {
	case FatalLevel:
		return "FATAL"
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity converts a level name to a Severity. Matching is
// case-insensitive and ignores surrounding whitespace; "WARNING" is
// accepted as an alias for WARN.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "FATAL":
		return FatalLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	}
	return InfoLevel, fmt.Errorf("unknown severity %q", name)
}
