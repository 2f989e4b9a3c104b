package backend

import (
	"errors"
	"fmt"
)

// Error is a typed non-2xx response from the backend.
//
// Message carries the server-provided text when the error envelope decoded,
// empty otherwise.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded %d", e.StatusCode)
	}
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
}

// ErrUnreachable marks transport failures where no response arrived.
var ErrUnreachable = errors.New("backend unreachable")

// StatusOf returns the HTTP status behind a backend error, zero otherwise.
func StatusOf(err error) int {
	var backendErr *Error
	if errors.As(err, &backendErr) {
		return backendErr.StatusCode
	}
	return 0
}

// MessageOf returns the server-provided message behind a backend error.
func MessageOf(err error) string {
	var backendErr *Error
	if errors.As(err, &backendErr) {
		return backendErr.Message
	}
	return ""
}
