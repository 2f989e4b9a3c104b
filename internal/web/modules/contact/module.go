// Package contact serves the anonymous contact-the-owner flow.
//
// The flow is reachable without a session on purpose: the finder of an item
// is anonymous, and nothing on this path ever attaches a credential or
// learns the record's internal identity.
package contact

import (
	"net/http"

	"github.com/louisbranch/reclaim.space/internal/web/module"
	"github.com/louisbranch/reclaim.space/internal/web/routepath"
)

// Module provides the contact form and relay routes.
type Module struct{}

// New returns the contact module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "contact" }

// Mount wires the contact route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(deps.Messages)
	h := newHandlers(svc, deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.FoundPrefix, Handler: mux}, nil
}
