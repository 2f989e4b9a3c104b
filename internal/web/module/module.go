// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/louisbranch/reclaim.space/internal/backend"
	"github.com/louisbranch/reclaim.space/internal/session"
)

// Viewer contains user-facing chrome data for authenticated app pages.
type Viewer struct {
	DisplayName string
	Email       string
	SignedIn    bool
}

// ResolveSession resolves the full stored session for a request.
//
// ok is false whenever the cookie is absent, unreadable, or does not match a
// stored session; callers on protected surfaces must treat that as a
// redirect, never a partial render.
type ResolveSession func(*http.Request) (session.Session, bool)

// ResolveViewer resolves app chrome viewer state for a request.
type ResolveViewer func(*http.Request) Viewer

// Dependencies carries the shared collaborators injected into every module.
type Dependencies struct {
	Auth           backend.AuthClient
	Items          backend.ItemClient
	Messages       backend.MessageClient
	Sessions       session.Store
	ResolveSession ResolveSession
	ResolveViewer  ResolveViewer
	// PublicBaseURL is the externally reachable base of this web service,
	// used to build shareable item links.
	PublicBaseURL string
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
