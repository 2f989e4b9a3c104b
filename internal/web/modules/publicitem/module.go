// Package publicitem serves the public, credential-free item page.
package publicitem

import (
	"net/http"

	"github.com/louisbranch/reclaim.space/internal/web/module"
	"github.com/louisbranch/reclaim.space/internal/web/routepath"
)

// Module provides the shareable item lookup route.
type Module struct{}

// New returns the public item module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "publicitem" }

// Mount wires the public item route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(deps.Items)
	h := newHandlers(svc, deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.ItemPrefix, Handler: mux}, nil
}
