package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/reclaim.space/internal/backend"
	"github.com/louisbranch/reclaim.space/internal/session"
	"github.com/louisbranch/reclaim.space/internal/web/module"
	apperrors "github.com/louisbranch/reclaim.space/internal/web/platform/errors"
	"github.com/louisbranch/reclaim.space/internal/web/routepath"
)

func mountedHandler(t *testing.T, items *fakeItemClient, sess session.Session, resolved bool) http.Handler {
	t.Helper()
	mount, err := New().Mount(module.Dependencies{
		Items: items,
		ResolveSession: func(*http.Request) (session.Session, bool) {
			return sess, resolved
		},
	})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler
}

func ownedSession() session.Session {
	return session.Session{
		ID:         "sid-1",
		Credential: "cred-1",
		Subject:    backend.Subject{ID: 42, DisplayName: "Ada"},
	}
}

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(newService(nil), module.Dependencies{}))
}

func TestDashboardListsOwnedItems(t *testing.T) {
	t.Parallel()

	items := &fakeItemClient{owned: []backend.Item{
		{Locator: "abc123", Name: "Blue Backpack", Disposition: backend.DispositionMissing},
		{Locator: "def456", Name: "Keys", Disposition: backend.DispositionFound},
	}}
	handler := mountedHandler(t, items, ownedSession(), true)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.DashboardPrefix, nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if items.lastCredential != "cred-1" || items.lastOwnerID != 42 {
		t.Fatalf("list call = (%q, %d), want session credential and subject id", items.lastCredential, items.lastOwnerID)
	}
	body := rr.Body.String()
	for _, want := range []string{"Blue Backpack", "Keys", "/item/abc123", routepath.ItemsNew} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestDashboardUnresolvableSessionRedirects(t *testing.T) {
	t.Parallel()

	items := &fakeItemClient{}
	handler := mountedHandler(t, items, session.Session{}, false)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.DashboardPrefix, nil))

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != routepath.Root {
		t.Fatalf("Location = %q, want %q", got, routepath.Root)
	}
	if items.listCalls != 0 {
		t.Fatalf("backend calls = %d, want 0", items.listCalls)
	}
}

func TestDashboardEmptyListRenders(t *testing.T) {
	t.Parallel()

	handler := mountedHandler(t, &fakeItemClient{}, ownedSession(), true)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.DashboardPrefix, nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "No items yet") {
		t.Fatal("empty state missing from body")
	}
}

func TestServiceListOwnedRejectsMissingCredentialWithoutBackendCall(t *testing.T) {
	t.Parallel()

	items := &fakeItemClient{}
	svc := newService(items)

	_, err := svc.listOwned(context.Background(), session.Session{})
	if apperrors.KindOf(err) != apperrors.KindUnauthorized {
		t.Fatalf("kind = %q, want %q", apperrors.KindOf(err), apperrors.KindUnauthorized)
	}
	if items.listCalls != 0 {
		t.Fatalf("backend calls = %d, want 0", items.listCalls)
	}
}
