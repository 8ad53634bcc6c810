package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the server rejects the bearer token.
	// By the time a caller sees it the token has already been cleared and the
	// session-teardown callback has fired; callers must not assume recovery.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable is returned when the request failed before a response
	// arrived (connection refused, DNS failure, canceled context).
	ErrUnavailable = errors.New("server unavailable")
)

// Error is a non-401 failure response from the server, carrying the status
// code and the message from the response body.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (status %d)", e.Status)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}
