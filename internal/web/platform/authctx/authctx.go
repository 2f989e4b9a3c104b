// Package authctx provides the authentication seams used by route gating.
package authctx

import (
	"net/http"

	"github.com/louisbranch/reclaim.space/internal/web/platform/sessioncookie"
)

// IsAuthenticated reports whether the current request should access protected routes.
type IsAuthenticated func(*http.Request) bool

// CookiePresenceAuth gates on session cookie presence only.
//
// The boundary guard never decodes the credential; presence is the whole
// check, and a nil or cookieless request reads as unauthenticated.
func CookiePresenceAuth() IsAuthenticated {
	return func(r *http.Request) bool {
		if r == nil {
			return false
		}
		_, ok := sessioncookie.Read(r)
		return ok
	}
}
