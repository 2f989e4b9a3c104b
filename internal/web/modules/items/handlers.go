package items

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/louisbranch/reclaim.space/internal/session"
	"github.com/louisbranch/reclaim.space/internal/web/module"
	apperrors "github.com/louisbranch/reclaim.space/internal/web/platform/errors"
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

func (h handlers) handleNew(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.resolveSession(r); !ok {
		http.Redirect(w, r, routepath.Root, http.StatusFound)
		return
	}
	h.writePage(w, r, http.StatusOK, templates.ItemFormPage(templates.ItemForm{}))
}

func (h handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.resolveSession(r)
	if !ok {
		http.Redirect(w, r, routepath.Root, http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindInvalidInput, "Could not read the form."), h.deps)
		return
	}
	draft := itemDraft{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Disposition: r.PostFormValue("disposition"),
		Location:    r.PostFormValue("location"),
		Date:        r.PostFormValue("date"),
		OwnerName:   r.PostFormValue("owner_name"),
		OwnerPhone:  r.PostFormValue("owner_phone"),
		OwnerEmail:  r.PostFormValue("owner_email"),
	}
	created, err := h.service.register(r.Context(), sess, draft)
	if err != nil {
		h.writePage(w, r, formStatus(err), templates.ItemFormPage(templates.ItemForm{
			Name:        draft.Name,
			Description: draft.Description,
			Disposition: draft.Disposition,
			Location:    draft.Location,
			Date:        draft.Date,
			OwnerName:   draft.OwnerName,
			OwnerPhone:  draft.OwnerPhone,
			OwnerEmail:  draft.OwnerEmail,
			Error:       weberror.PublicMessage(err),
		}))
		return
	}
	h.writePage(w, r, http.StatusOK, templates.ItemCreatedPage(templates.ItemCreated{
		ShareLink: created.ShareLink,
		QRPayload: created.ShareLink,
	}))
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

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, statusCode int, body templ.Component) {
	err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:      "Add New Item",
		StatusCode: statusCode,
		Fragment:   body,
	})
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

func formStatus(err error) int {
	if apperrors.KindOf(err) == apperrors.KindInvalidInput {
		return http.StatusUnprocessableEntity
	}
	return apperrors.HTTPStatus(err)
}
