package wizard

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a wizard session is missing or has
// expired out of the cache.
var ErrSessionNotFound = errors.New("wizard session not found or expired")

// ErrDoctorUnavailable rejects draft operations on a session whose doctor
// lookup failed. The only recovery is starting a fresh wizard.
var ErrDoctorUnavailable = errors.New("doctor details unavailable; start a new booking")

// StateError rejects an operation that is not legal in the session's
// current state.
type StateError struct {
	State  string
	Action string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s while wizard is in %q state", e.Action, e.State)
}

// ValidationError is a local form validation failure. It never reaches the
// network and keeps the wizard on the details step.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
