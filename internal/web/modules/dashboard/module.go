// Package dashboard serves the signed-in owner's item list.
package dashboard

import (
	"net/http"

	"github.com/louisbranch/reclaim.space/internal/web/module"
	"github.com/louisbranch/reclaim.space/internal/web/routepath"
)

// Module provides the protected dashboard routes.
type Module struct{}

// New returns the dashboard module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Mount wires the dashboard route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(deps.Items)
	h := newHandlers(svc, deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.DashboardPrefix, Handler: mux}, nil
}
