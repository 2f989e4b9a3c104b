package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/louisbranch/reclaim.space/internal/backend"
)

func TestHTTPStatusMapsKinds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind Kind
		want int
	}{
		{KindInvalidInput, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindUnavailable, http.StatusServiceUnavailable},
		{KindNotFound, http.StatusNotFound},
		{KindUnknown, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(E(tc.kind, "boom")); got != tc.want {
			t.Fatalf("HTTPStatus(%s) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestHTTPStatusUntypedErrorIsInternal(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("HTTPStatus() = %d, want %d", got, http.StatusInternalServerError)
	}
}

func TestFromBackendKeepsServerMessage(t *testing.T) {
	t.Parallel()

	err := FromBackend(&backend.Error{StatusCode: http.StatusUnauthorized, Message: "Invalid identifier or password"}, "sign-in failed")
	if got := KindOf(err); got != KindUnauthorized {
		t.Fatalf("KindOf() = %s, want %s", got, KindUnauthorized)
	}
	if err.Error() != "Invalid identifier or password" {
		t.Fatalf("message = %q, want server text verbatim", err.Error())
	}
}

func TestFromBackendUsesFallbackWhenEnvelopeIsSilent(t *testing.T) {
	t.Parallel()

	err := FromBackend(&backend.Error{StatusCode: http.StatusBadGateway}, "could not submit the item")
	if got := KindOf(err); got != KindUnavailable {
		t.Fatalf("KindOf() = %s, want %s", got, KindUnavailable)
	}
	if err.Error() != "could not submit the item" {
		t.Fatalf("message = %q, want fallback text", err.Error())
	}
}

func TestFromBackendTransportFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: connection refused", backend.ErrUnreachable)
	err := FromBackend(wrapped, "relay failed")
	if got := KindOf(err); got != KindUnavailable {
		t.Fatalf("KindOf() = %s, want %s", got, KindUnavailable)
	}
	if err.Error() != "relay failed" {
		t.Fatalf("message = %q, want generic fallback on transport failure", err.Error())
	}
}

func TestFromBackendNotFound(t *testing.T) {
	t.Parallel()

	err := FromBackend(&backend.Error{StatusCode: http.StatusNotFound}, "item not found")
	if got := HTTPStatus(err); got != http.StatusNotFound {
		t.Fatalf("HTTPStatus() = %d, want %d", got, http.StatusNotFound)
	}
}
