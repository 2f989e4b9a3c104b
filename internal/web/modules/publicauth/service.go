package publicauth

import (
	"context"
	"strings"

	"github.com/louisbranch/reclaim.space/internal/backend"
	"github.com/louisbranch/reclaim.space/internal/session"
	apperrors "github.com/louisbranch/reclaim.space/internal/web/platform/errors"
	"github.com/louisbranch/reclaim.space/internal/web/platform/formfield"
)

type service struct {
	auth     backend.AuthClient
	sessions session.Store
}

func newService(auth backend.AuthClient, sessions session.Store) service {
	return service{auth: auth, sessions: sessions}
}

// login exchanges identifier/password for a backend credential and saves the
// resulting session. It returns the generated session id for the cookie.
func (s service) login(ctx context.Context, identifier, password string) (string, error) {
	identifier = formfield.Normalize(identifier)
	if identifier == "" || password == "" {
		return "", apperrors.E(apperrors.KindInvalidInput, "Email and password are required.")
	}
	if s.auth == nil || s.sessions == nil {
		return "", apperrors.E(apperrors.KindUnavailable, "Sign in is unavailable right now.")
	}
	authenticated, err := s.auth.Login(ctx, identifier, password)
	if err != nil {
		return "", apperrors.FromBackend(err, "Invalid email or password.")
	}
	return s.saveSession(ctx, authenticated)
}

// register creates an account and signs the new subject in.
func (s service) register(ctx context.Context, username, email, password string) (string, error) {
	username = formfield.Normalize(username)
	email = formfield.Normalize(email)
	if username == "" || email == "" || password == "" {
		return "", apperrors.E(apperrors.KindInvalidInput, "Username, email, and password are required.")
	}
	if !formfield.ValidEmail(email) {
		return "", apperrors.E(apperrors.KindInvalidInput, "Enter a valid email address.")
	}
	if s.auth == nil || s.sessions == nil {
		return "", apperrors.E(apperrors.KindUnavailable, "Registration is unavailable right now.")
	}
	authenticated, err := s.auth.Register(ctx, username, email, password)
	if err != nil {
		return "", apperrors.FromBackend(err, "Could not create the account.")
	}
	return s.saveSession(ctx, authenticated)
}

// logout clears the stored session. Unknown ids are a no-op so logout never
// fails from the user's perspective.
func (s service) logout(ctx context.Context, sessionID string) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" || s.sessions == nil {
		return
	}
	_ = s.sessions.Clear(ctx, sessionID)
}

func (s service) saveSession(ctx context.Context, authenticated backend.Session) (string, error) {
	sessionID, err := s.sessions.Save(ctx, authenticated.Credential, authenticated.Subject)
	if err != nil {
		return "", apperrors.E(apperrors.KindUnavailable, "Could not start the session.")
	}
	return sessionID, nil
}
