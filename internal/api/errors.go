package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthenticated marks 401/403 responses. Callers resolve it by clearing
// the stored session and redirecting to the login entry point.
var ErrUnauthenticated = errors.New("api: authentication required")

// TransportError is a network level failure: no response was received at all.
// It is reported generically to users, distinct from a server rejection.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("api: no response from server: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerError is a non-2xx response. Message carries the response body text
// verbatim so views can surface exactly what the server said.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: server returned status %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps authorization failures onto ErrUnauthenticated so callers can
// match them with errors.Is without inspecting status codes.
func (e *ServerError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return ErrUnauthenticated
	}
	return nil
}

// ShapeError is a 2xx response whose body did not have the expected shape,
// e.g. a non-array where a list was promised. Views render it as an error
// state instead of crashing on the payload.
type ShapeError struct {
	Method string
	Path   string
	Err    error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("api: unexpected response shape from %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}
