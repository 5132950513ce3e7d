package ephemeris

import "fmt"

// ValidationError reports a malformed birth-input field. It is
// caller-correctable and never retried internally.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func validationErr(field string, value any, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

// Error reports an upstream provider failure or a structurally defective
// snapshot. Positions cannot be guessed, so it is always terminal for the
// request.
type Error struct {
	Op     string // "snapshot", "sun_times", "normalize", ...
	Reason string
	Err    error
}

func (e *Error) Error() string {
	msg := "ephemeris " + e.Op + ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }
