package items

import (
	"context"
	"strings"

	"github.com/louisbranch/reclaim.space/internal/backend"
	"github.com/louisbranch/reclaim.space/internal/session"
	apperrors "github.com/louisbranch/reclaim.space/internal/web/platform/errors"
	"github.com/louisbranch/reclaim.space/internal/web/platform/formfield"
	"github.com/louisbranch/reclaim.space/internal/web/routepath"
)

// itemDraft is the raw registration submission before validation.
type itemDraft struct {
	Name        string
	Description string
	Disposition string
	Location    string
	Date        string
	OwnerName   string
	OwnerPhone  string
	OwnerEmail  string
}

// registered is the outcome of a successful registration.
type registered struct {
	Locator string
	// ShareLink is the absolute public page URL embedding the locator.
	ShareLink string
}

type service struct {
	items         backend.ItemClient
	publicBaseURL string
}

func newService(items backend.ItemClient, publicBaseURL string) service {
	return service{items: items, publicBaseURL: strings.TrimRight(strings.TrimSpace(publicBaseURL), "/")}
}

// register submits one record for the signed-in subject and returns its
// public locator wrapped in a shareable link.
//
// A missing credential rejects before any network call. There is no retry
// and no dedup: resubmitting creates a second independent record.
func (s service) register(ctx context.Context, sess session.Session, draft itemDraft) (registered, error) {
	if strings.TrimSpace(sess.Credential) == "" {
		return registered{}, apperrors.E(apperrors.KindUnauthorized, "Sign in to add an item.")
	}
	normalized, err := validateDraft(draft)
	if err != nil {
		return registered{}, err
	}
	if s.items == nil {
		return registered{}, apperrors.E(apperrors.KindUnavailable, "Could not add the item. Please try again.")
	}
	record, err := s.items.Create(ctx, sess.Credential, sess.Subject.ID, normalized)
	if err != nil {
		return registered{}, apperrors.FromBackend(err, "Could not add the item. Please try again.")
	}
	locator := strings.TrimSpace(record.Locator)
	if locator == "" {
		return registered{}, apperrors.E(apperrors.KindUnavailable, "Could not add the item. Please try again.")
	}
	return registered{Locator: locator, ShareLink: s.shareLink(locator)}, nil
}

func validateDraft(draft itemDraft) (backend.ItemDraft, error) {
	name := formfield.Normalize(draft.Name)
	description := formfield.Normalize(draft.Description)
	ownerName := formfield.Normalize(draft.OwnerName)
	ownerPhone := formfield.Normalize(draft.OwnerPhone)
	if name == "" || description == "" || ownerName == "" || ownerPhone == "" {
		return backend.ItemDraft{}, apperrors.E(apperrors.KindInvalidInput, "Name, description, owner name, and owner phone are required.")
	}
	disposition := backend.Disposition(formfield.Normalize(draft.Disposition))
	if !disposition.Valid() {
		return backend.ItemDraft{}, apperrors.E(apperrors.KindInvalidInput, "Status must be found or missing.")
	}
	if !formfield.ValidPhone(ownerPhone) {
		return backend.ItemDraft{}, apperrors.E(apperrors.KindInvalidInput, "Enter a valid phone number.")
	}
	ownerEmail := formfield.Normalize(draft.OwnerEmail)
	if ownerEmail != "" && !formfield.ValidEmail(ownerEmail) {
		return backend.ItemDraft{}, apperrors.E(apperrors.KindInvalidInput, "Enter a valid email address.")
	}
	return backend.ItemDraft{
		Name:        name,
		Description: description,
		Disposition: disposition,
		Location:    formfield.Normalize(draft.Location),
		Date:        formfield.Normalize(draft.Date),
		OwnerName:   ownerName,
		OwnerPhone:  ownerPhone,
		OwnerEmail:  ownerEmail,
	}, nil
}

func (s service) shareLink(locator string) string {
	return s.publicBaseURL + routepath.Item(locator)
}
