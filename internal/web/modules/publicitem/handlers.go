package publicitem

import (
	"net/http"

	"github.com/louisbranch/reclaim.space/internal/backend"
	"github.com/louisbranch/reclaim.space/internal/web/module"
	"github.com/louisbranch/reclaim.space/internal/web/platform/pagerender"
	"github.com/louisbranch/reclaim.space/internal/web/platform/weberror"
	"github.com/louisbranch/reclaim.space/internal/web/templates"
)

type handlers struct {
	service service
	deps    module.Dependencies
}

func newHandlers(s service, deps module.Dependencies) handlers {
	return handlers{service: s, deps: deps}
}

func (h handlers) handleItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.lookup(r.Context(), r.PathValue("locator"))
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	view := itemDetailView(item)
	renderErr := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:    view.Name,
		Fragment: templates.ItemDetailPage(view),
	})
	if renderErr != nil {
		weberror.WriteModuleError(w, r, renderErr, h.deps)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

func itemDetailView(item backend.Item) templates.ItemDetail {
	return templates.ItemDetail{
		Locator:     item.Locator,
		Name:        item.Name,
		Description: item.Description,
		Disposition: dispositionLabel(item.Disposition),
		Missing:     item.Disposition == backend.DispositionMissing,
		Location:    item.Location,
		OwnerName:   item.OwnerName,
		OwnerPhone:  item.OwnerPhone,
	}
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
