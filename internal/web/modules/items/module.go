// Package items serves the protected item registration flow.
package items

import (
	"net/http"

	"github.com/louisbranch/reclaim.space/internal/web/module"
	"github.com/louisbranch/reclaim.space/internal/web/routepath"
)

// Module provides the item registration routes.
type Module struct{}

// New returns the items module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "items" }

// Mount wires the item registration route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(deps.Items, deps.PublicBaseURL)
	h := newHandlers(svc, deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.ItemsPrefix, Handler: mux}, nil
}
