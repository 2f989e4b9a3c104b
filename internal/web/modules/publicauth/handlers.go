package publicauth

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/louisbranch/reclaim.space/internal/web/module"
	apperrors "github.com/louisbranch/reclaim.space/internal/web/platform/errors"
	"github.com/louisbranch/reclaim.space/internal/web/platform/pagerender"
	"github.com/louisbranch/reclaim.space/internal/web/platform/sessioncookie"
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
	if h.signedIn(r) {
		http.Redirect(w, r, routepath.Dashboard, http.StatusFound)
		return
	}
	h.writePage(w, r, "Sign in", http.StatusOK, templates.LoginPage(templates.LoginForm{}))
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, apperrors.E(apperrors.KindInvalidInput, "Could not read the form."))
		return
	}
	identifier := r.PostFormValue("identifier")
	sessionID, err := h.service.login(r.Context(), identifier, r.PostFormValue("password"))
	if err != nil {
		h.writePage(w, r, "Sign in", formStatus(err), templates.LoginPage(templates.LoginForm{
			Identifier: identifier,
			Error:      weberror.PublicMessage(err),
		}))
		return
	}
	sessioncookie.Write(w, r, sessionID)
	http.Redirect(w, r, routepath.Dashboard, http.StatusSeeOther)
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if sessionID, ok := sessioncookie.Read(r); ok {
		h.service.logout(r.Context(), sessionID)
	}
	sessioncookie.Clear(w, r)
	http.Redirect(w, r, routepath.Root, http.StatusSeeOther)
}

func (h handlers) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	if h.signedIn(r) {
		http.Redirect(w, r, routepath.Dashboard, http.StatusFound)
		return
	}
	h.writePage(w, r, "Register", http.StatusOK, templates.RegisterPage(templates.RegisterForm{}))
}

func (h handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, apperrors.E(apperrors.KindInvalidInput, "Could not read the form."))
		return
	}
	username := r.PostFormValue("username")
	email := r.PostFormValue("email")
	sessionID, err := h.service.register(r.Context(), username, email, r.PostFormValue("password"))
	if err != nil {
		h.writePage(w, r, "Register", formStatus(err), templates.RegisterPage(templates.RegisterForm{
			Username: username,
			Email:    email,
			Error:    weberror.PublicMessage(err),
		}))
		return
	}
	sessioncookie.Write(w, r, sessionID)
	http.Redirect(w, r, routepath.Dashboard, http.StatusSeeOther)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

func (h handlers) signedIn(r *http.Request) bool {
	if h.deps.ResolveSession == nil {
		return false
	}
	_, ok := h.deps.ResolveSession(r)
	return ok
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, body templ.Component) {
	err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   body,
	})
	if err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, h.deps)
}

// formStatus maps a submission error to the status of the re-rendered form.
func formStatus(err error) int {
	if apperrors.KindOf(err) == apperrors.KindInvalidInput {
		return http.StatusUnprocessableEntity
	}
	return apperrors.HTTPStatus(err)
}
