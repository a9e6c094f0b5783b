package booking

import "errors"

var (
	// ErrNotPending is returned when a transition is attempted on a request
	// that is no longer in the PENDING state.
	ErrNotPending = errors.New("booking: request is not pending")
	// ErrUnknownRequest is returned when the request id is not part of the
	// currently loaded list.
	ErrUnknownRequest = errors.New("booking: unknown request")
	// ErrConfirmationRequired is returned when a rejection is attempted
	// without the operator having confirmed it. No network call is made.
	ErrConfirmationRequired = errors.New("booking: rejection requires confirmation")
	// ErrStaleFetch is returned when a completed fetch lost the race against
	// a more recently initiated one and its result was discarded.
	ErrStaleFetch = errors.New("booking: superseded by a newer fetch")
)

// ValidationError captures field level validation issues that callers can
// surface next to the corresponding form inputs.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil {
		return ""
	}
	return "validation failed"
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// add records a field level validation error.
func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}

// ErrorKind maps sentinel and validation errors to a stable logging label.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrNotPending):
		return "not_pending"
	case errors.Is(err, ErrUnknownRequest):
		return "unknown_request"
	case errors.Is(err, ErrConfirmationRequired):
		return "confirmation_required"
	case errors.Is(err, ErrStaleFetch):
		return "stale_fetch"
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return "validation"
	}

	return "unexpected"
}
