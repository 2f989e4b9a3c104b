// Package errors defines web typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/louisbranch/reclaim.space/internal/backend"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindUnauthorized Kind = "unauthorized"
	KindUnavailable  Kind = "unavailable"
	KindNotFound     Kind = "not_found"
)

// Error is a typed web application failure.
type Error struct {
	Kind    Kind
	Message string
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// KindOf returns the kind behind an error, KindUnknown when untyped.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return KindUnknown
	}
	return appErr.Kind
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// FromBackend translates a backend call failure into a typed web error.
//
// Transport failures become unavailable with a generic message; non-2xx
// responses keep the server-provided message when one decoded, so the user
// sees the upstream text verbatim per the error-surfacing policy.
func FromBackend(err error, fallback string) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, backend.ErrUnreachable) {
		return E(KindUnavailable, fallback)
	}
	message := backend.MessageOf(err)
	if message == "" {
		message = fallback
	}
	switch status := backend.StatusOf(err); {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return E(KindUnauthorized, message)
	case status == http.StatusNotFound:
		return E(KindNotFound, message)
	case status >= http.StatusBadRequest && status < http.StatusInternalServerError:
		return E(KindInvalidInput, message)
	case status >= http.StatusInternalServerError:
		return E(KindUnavailable, message)
	default:
		return E(KindUnknown, message)
	}
}
