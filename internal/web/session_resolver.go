package web

import (
	"net/http"

	"github.com/louisbranch/reclaim.space/internal/session"
	"github.com/louisbranch/reclaim.space/internal/web/module"
	"github.com/louisbranch/reclaim.space/internal/web/platform/authctx"
	"github.com/louisbranch/reclaim.space/internal/web/platform/sessioncookie"
)

// sessionResolver resolves session cookies against the device session store.
type sessionResolver struct {
	store session.Store
}

func newSessionResolver(store session.Store) sessionResolver {
	return sessionResolver{store: store}
}

// resolveSession loads the stored session behind the request cookie.
//
// Any failure reads as absent: unknown id, expired row, store error. The
// caller must not distinguish these cases, so a protected view always fails
// closed.
func (r sessionResolver) resolveSession(req *http.Request) (session.Session, bool) {
	if req == nil || r.store == nil {
		return session.Session{}, false
	}
	sessionID, ok := sessioncookie.Read(req)
	if !ok {
		return session.Session{}, false
	}
	stored, ok, err := r.store.Read(req.Context(), sessionID)
	if err != nil || !ok {
		return session.Session{}, false
	}
	return stored, true
}

func (r sessionResolver) resolveViewer(req *http.Request) module.Viewer {
	stored, ok := r.resolveSession(req)
	if !ok {
		return module.Viewer{}
	}
	return module.Viewer{
		DisplayName: stored.Subject.DisplayName,
		Email:       stored.Subject.Email,
		SignedIn:    true,
	}
}

// authRequired is the boundary guard predicate: cookie presence only. The
// stored session is validated later by the view via resolveSession, which
// repeats the fail-closed decision with full state.
func (r sessionResolver) authRequired() func(*http.Request) bool {
	presence := authctx.CookiePresenceAuth()
	return func(req *http.Request) bool {
		return presence(req)
	}
}
