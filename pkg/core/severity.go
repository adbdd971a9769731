package core

import (
	"encoding/json"
	"strings"
)

// Severity indicates the importance of a governance violation.
type Severity int

// Severity levels for violations. The governance catalog itself emits only
// errors and warnings; info and hint exist for advisory rules and per-run
// severity overrides.
const (
	// SeverityError indicates a policy breach that must be fixed.
	SeverityError Severity = iota
	// SeverityWarning indicates a potential issue or a policy gap.
	SeverityWarning
	// SeverityInfo indicates advisory feedback.
	SeverityInfo
	// SeverityHint indicates a suggestion for improvement.
	SeverityHint
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a string to a Severity value.
// Returns the severity and true if valid, or SeverityWarning and false if invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, true
	case "warning":
		return SeverityWarning, true
	case "info":
		return SeverityInfo, true
	case "hint":
		return SeverityHint, true
	default:
		return SeverityWarning, false
	}
}

// MarshalJSON renders the severity as its name so serialized reports stay
// meaningful outside this codebase.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts the severity name, preserving report round-trips.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, _ := ParseSeverity(raw)
	*s = parsed
	return nil
}
