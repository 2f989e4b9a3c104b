package items

import (
	"context"
	"testing"

	"github.com/louisbranch/reclaim.space/internal/backend"
	"github.com/louisbranch/reclaim.space/internal/session"
	apperrors "github.com/louisbranch/reclaim.space/internal/web/platform/errors"
)

func signedInSession() session.Session {
	return session.Session{
		ID:         "sid-1",
		Credential: "cred-1",
		Subject:    backend.Subject{ID: 42, DisplayName: "Ada"},
	}
}

func completeDraft() itemDraft {
	return itemDraft{
		Name:        "Blue Backpack",
		Description: "Navy, one broken zipper",
		Disposition: "missing",
		OwnerName:   "Ada",
		OwnerPhone:  "+1 555 0100",
	}
}

func TestServiceRegisterCreatesOnceAndReturnsLocator(t *testing.T) {
	t.Parallel()

	items := &fakeItemClient{created: backend.Item{Locator: "abc123"}}
	svc := newService(items, "https://reclaim.example/")

	created, err := svc.register(context.Background(), signedInSession(), completeDraft())
	if err != nil {
		t.Fatalf("register() error = %v", err)
	}
	if items.createCalls != 1 {
		t.Fatalf("gateway calls = %d, want 1", items.createCalls)
	}
	if items.lastCredential != "cred-1" || items.lastOwnerID != 42 {
		t.Fatalf("create call = (%q, %d), want session credential and subject id", items.lastCredential, items.lastOwnerID)
	}
	if created.Locator != "abc123" {
		t.Fatalf("locator = %q, want gateway-supplied %q", created.Locator, "abc123")
	}
	if created.ShareLink != "https://reclaim.example/item/abc123" {
		t.Fatalf("share link = %q", created.ShareLink)
	}
}

func TestServiceRegisterNoSessionMakesZeroCalls(t *testing.T) {
	t.Parallel()

	items := &fakeItemClient{created: backend.Item{Locator: "abc123"}}
	svc := newService(items, "https://reclaim.example")

	_, err := svc.register(context.Background(), session.Session{}, completeDraft())
	if apperrors.KindOf(err) != apperrors.KindUnauthorized {
		t.Fatalf("kind = %q, want %q", apperrors.KindOf(err), apperrors.KindUnauthorized)
	}
	if items.createCalls != 0 {
		t.Fatalf("gateway calls = %d, want 0", items.createCalls)
	}
}

func TestServiceRegisterValidatesDraftLocally(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*itemDraft)
	}{
		{name: "blank name", mutate: func(d *itemDraft) { d.Name = " " }},
		{name: "blank description", mutate: func(d *itemDraft) { d.Description = "" }},
		{name: "unknown disposition", mutate: func(d *itemDraft) { d.Disposition = "stolen" }},
		{name: "blank owner name", mutate: func(d *itemDraft) { d.OwnerName = "" }},
		{name: "blank owner phone", mutate: func(d *itemDraft) { d.OwnerPhone = "" }},
		{name: "malformed owner phone", mutate: func(d *itemDraft) { d.OwnerPhone = "abc" }},
		{name: "malformed owner email", mutate: func(d *itemDraft) { d.OwnerEmail = "not-an-email" }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			items := &fakeItemClient{created: backend.Item{Locator: "abc123"}}
			svc := newService(items, "https://reclaim.example")
			draft := completeDraft()
			tc.mutate(&draft)

			_, err := svc.register(context.Background(), signedInSession(), draft)
			if apperrors.KindOf(err) != apperrors.KindInvalidInput {
				t.Fatalf("kind = %q, want %q", apperrors.KindOf(err), apperrors.KindInvalidInput)
			}
			if items.createCalls != 0 {
				t.Fatalf("gateway calls = %d, want 0", items.createCalls)
			}
		})
	}
}

func TestServiceRegisterNormalizesOptionalFieldsToAbsent(t *testing.T) {
	t.Parallel()

	items := &fakeItemClient{created: backend.Item{Locator: "abc123"}}
	svc := newService(items, "https://reclaim.example")
	draft := completeDraft()
	draft.Location = "   "
	draft.Date = ""
	draft.OwnerEmail = " ada@example.com "

	if _, err := svc.register(context.Background(), signedInSession(), draft); err != nil {
		t.Fatalf("register() error = %v", err)
	}
	sent := items.lastDraft
	if sent.Location != "" || sent.Date != "" {
		t.Fatalf("blank optional fields not collapsed: %+v", sent)
	}
	if sent.OwnerEmail != "ada@example.com" {
		t.Fatalf("owner email = %q, want trimmed", sent.OwnerEmail)
	}
}

func TestServiceRegisterSurfacesGatewayMessageWithoutRetry(t *testing.T) {
	t.Parallel()

	items := &fakeItemClient{err: &backend.Error{StatusCode: 500, Message: "storage offline"}}
	svc := newService(items, "https://reclaim.example")

	_, err := svc.register(context.Background(), signedInSession(), completeDraft())
	if err == nil {
		t.Fatal("register() error = nil")
	}
	if err.Error() != "storage offline" {
		t.Fatalf("message = %q, want gateway message", err.Error())
	}
	if items.createCalls != 1 {
		t.Fatalf("gateway calls = %d, want exactly 1 (no retry)", items.createCalls)
	}
}

func TestServiceRegisterRejectsResponseWithoutLocator(t *testing.T) {
	t.Parallel()

	items := &fakeItemClient{created: backend.Item{Locator: " "}}
	svc := newService(items, "https://reclaim.example")

	_, err := svc.register(context.Background(), signedInSession(), completeDraft())
	if apperrors.KindOf(err) != apperrors.KindUnavailable {
		t.Fatalf("kind = %q, want %q", apperrors.KindOf(err), apperrors.KindUnavailable)
	}
}
