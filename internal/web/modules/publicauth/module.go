// Package publicauth serves the public entry, registration, and session
// lifecycle routes.
package publicauth

import (
	"net/http"

	"github.com/louisbranch/reclaim.space/internal/web/module"
	"github.com/louisbranch/reclaim.space/internal/web/routepath"
)

// Module provides login, logout, and registration routes at the site root.
type Module struct{}

// New returns the public auth module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "publicauth" }

// Mount wires the public entry route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(deps.Auth, deps.Sessions)
	h := newHandlers(svc, deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
