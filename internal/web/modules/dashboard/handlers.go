package dashboard

import (
	"net/http"

	"github.com/louisbranch/reclaim.space/internal/backend"
	"github.com/louisbranch/reclaim.space/internal/session"
	"github.com/louisbranch/reclaim.space/internal/web/module"
	"github.com/louisbranch/reclaim.space/internal/web/platform/pagerender"
	"github.com/louisbranch/reclaim.space/internal/web/platform/weberror"
	"github.com/louisbranch/reclaim.space/internal/web/routepath"
	"github.com/louisbranch/reclaim.space/internal/web/templates"
)

type handlers struct {
	service service
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.resolveSession(r)
	if !ok {
		// The boundary guard only sees cookie presence; an unresolvable
		// session here still redirects, never a partial render.
		http.Redirect(w, r, routepath.Root, http.StatusFound)
		return
	}
	owned, err := h.service.listOwned(r.Context(), sess)
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	renderErr := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:    "Your Items",
		Fragment: templates.DashboardPage(itemRows(owned)),
	})
	if renderErr != nil {
		weberror.WriteModuleError(w, r, renderErr, h.deps)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

func (h handlers) resolveSession(r *http.Request) (session.Session, bool) {
	if h.deps.ResolveSession == nil {
		return session.Session{}, false
	}
	return h.deps.ResolveSession(r)
}

func itemRows(owned []backend.Item) []templates.ItemRow {
	rows := make([]templates.ItemRow, 0, len(owned))
	for _, item := range owned {
		rows = append(rows, templates.ItemRow{
			Locator:     item.Locator,
			Name:        item.Name,
			Disposition: dispositionLabel(item.Disposition),
		})
	}
	return rows
}

func dispositionLabel(d backend.Disposition) string {
	switch d {
	case backend.DispositionFound:
		return "Found"
	case backend.DispositionMissing:
		return "Missing"
	default:
		return string(d)
	}
}
