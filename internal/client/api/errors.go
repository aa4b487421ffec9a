package api

import (
	"errors"
	"net/http"
)

var (
	// ErrUnavailable wraps transport-level failures: the request never
	// produced an HTTP status.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized matches 401 responses via errors.Is.
	ErrUnauthorized = errors.New("unauthorized")
)

// StatusError is a non-success HTTP response normalized to a single
// human-readable message. Error() returns exactly the surfaced message, so
// callers can show it to the user verbatim.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string { return e.Message }

func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}
