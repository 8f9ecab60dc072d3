package types

import (
	"errors"
	"fmt"
)

// ErrUnknownSeverity is returned when a severity name is not recognised
var ErrUnknownSeverity = errors.New("unknown severity")

// Severity classifies a log entry
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// ParseSeverity converts a name to a Severity
func ParseSeverity(s string) (Severity, error) {
	switch sev := Severity(s); sev {
	case SeverityInfo, SeveritySuccess, SeverityWarning, SeverityError:
		return sev, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
}

// LogEntry is one line of the log panel. Entries are never mutated after
// creation.
type LogEntry struct {
	Time     string   `json:"time"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}
