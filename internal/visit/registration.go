package visit

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError reports malformed local input. It is raised before any
// network call is attempted.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Registration is the outcome a seller records against a pending visit.
// It is built transiently per submission and never persisted client-side.
type Registration struct {
	Detail       string
	Contact      string
	Start        string // HH:MM time of day
	End          string // HH:MM time of day
	Target       State  // StateCompleted or StateCancelled
	EvidencePath string // local file to attach; empty means no evidence part
}

// NewCompletion builds a COMPLETADA registration. Start and end are HH:MM
// time-of-day strings; both are required and start must not be after end.
// Violations return a ValidationError without touching the network.
func NewCompletion(detail, contact, start, end, evidencePath string) (Registration, error) {
	startT, err := parseTimeOfDay(start)
	if err != nil {
		return Registration{}, &ValidationError{Msg: fmt.Sprintf("invalid start time %q, expected HH:MM", start)}
	}
	endT, err := parseTimeOfDay(end)
	if err != nil {
		return Registration{}, &ValidationError{Msg: fmt.Sprintf("invalid end time %q, expected HH:MM", end)}
	}
	if endT.Before(startT) {
		return Registration{}, &ValidationError{Msg: "end time is before start time"}
	}

	return Registration{
		Detail:       detail,
		Contact:      contact,
		Start:        start,
		End:          end,
		Target:       StateCompleted,
		EvidencePath: evidencePath,
	}, nil
}

// NewCancellation builds a CANCELADA registration. The reason is required;
// contact and times are sent empty since the backend ignores them for a
// cancellation, and no evidence is ever attached.
func NewCancellation(reason string) (Registration, error) {
	if strings.TrimSpace(reason) == "" {
		return Registration{}, &ValidationError{Msg: "a cancellation reason is required"}
	}
	return Registration{
		Detail: reason,
		Target: StateCancelled,
	}, nil
}

// parseTimeOfDay parses an HH:MM wall-clock string.
func parseTimeOfDay(s string) (time.Time, error) {
	return time.Parse("15:04", s)
}
