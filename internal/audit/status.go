package audit

import "strings"

// Status classifies the outcome of one audited control.
type Status string

const (
	StatusCompliant    Status = "compliant"
	StatusNonCompliant Status = "noncompliant"
	StatusError        Status = "error"
	StatusUnknown      Status = "unknown"
)

// ResolveStatus derives a row status from the raw record fields. A present
// status word wins and is lowercased; otherwise a present error implies
// StatusError, and a record carrying neither resolves to StatusUnknown.
func ResolveStatus(statusWord, errorText string) Status {
	if s := strings.ToLower(strings.TrimSpace(statusWord)); s != "" {
		return Status(s)
	}
	if strings.TrimSpace(errorText) != "" {
		return StatusError
	}
	return StatusUnknown
}

func (s Status) String() string {
	return string(s)
}
