package contact

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/reclaim.space/internal/web/module"
	apperrors "github.com/louisbranch/reclaim.space/internal/web/platform/errors"
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

func (h handlers) handleForm(w http.ResponseWriter, r *http.Request) {
	locator := strings.TrimSpace(r.PathValue("locator"))
	if locator == "" {
		h.handleNotFound(w, r)
		return
	}
	h.writePage(w, r, http.StatusOK, templates.ContactFormPage(templates.ContactForm{Locator: locator}))
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	locator := strings.TrimSpace(r.PathValue("locator"))
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindInvalidInput, "Could not read the form."), h.deps)
		return
	}
	draft := messageDraft{
		Body:        r.PostFormValue("body"),
		SenderName:  r.PostFormValue("sender_name"),
		SenderEmail: r.PostFormValue("sender_email"),
		SenderPhone: r.PostFormValue("sender_phone"),
		Honeypot:    r.PostFormValue("website"),
	}
	if err := h.service.relay(r.Context(), locator, draft); err != nil {
		// Editable retry: prior values preserved, message shown.
		h.writePage(w, r, submitStatus(err), templates.ContactFormPage(templates.ContactForm{
			Locator:     locator,
			Body:        draft.Body,
			SenderName:  draft.SenderName,
			SenderEmail: draft.SenderEmail,
			SenderPhone: draft.SenderPhone,
			Error:       weberror.PublicMessage(err),
		}))
		return
	}
	h.writePage(w, r, http.StatusOK, templates.ContactSentPage())
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, statusCode int, body templ.Component) {
	err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:      "Contact the Owner",
		StatusCode: statusCode,
		Fragment:   body,
	})
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

func submitStatus(err error) int {
	if apperrors.KindOf(err) == apperrors.KindInvalidInput {
		return http.StatusUnprocessableEntity
	}
	return apperrors.HTTPStatus(err)
}
