// Package session holds the device-scoped authentication state of the web
// service: one opaque backend credential and its resolved subject, keyed by
// a generated session id that is the only value the browser ever holds.
package session

import (
	"context"
	"time"

	"github.com/louisbranch/reclaim.space/internal/backend"
)

// Lifetime is how long a saved session stays readable. It mirrors the
// 24-hour credential lifetime enforced server-side.
const Lifetime = 24 * time.Hour

// Session is a stored credential/subject pair.
//
// Credential presence implies the subject was resolvable at save time; the
// two are written and cleared together, so a reader never observes one
// without the other.
type Session struct {
	ID         string
	Credential string
	Subject    backend.Subject
	CreatedAt  time.Time
}

// Store is the session persistence contract.
//
// Save returns the generated session id. Read reports ok=false for unknown,
// cleared, or expired ids. Clear removes credential and subject atomically
// from the caller's perspective and is a no-op for unknown ids.
type Store interface {
	Save(ctx context.Context, credential string, subject backend.Subject) (string, error)
	Read(ctx context.Context, id string) (Session, bool, error)
	Clear(ctx context.Context, id string) error
	Close() error
}
