package dashboard

import (
	"context"
	"strings"

	"github.com/louisbranch/reclaim.space/internal/backend"
	"github.com/louisbranch/reclaim.space/internal/session"
	apperrors "github.com/louisbranch/reclaim.space/internal/web/platform/errors"
)

type service struct {
	items backend.ItemClient
}

func newService(items backend.ItemClient) service {
	return service{items: items}
}

// listOwned returns the signed-in subject's records, newest first per the
// backend's ordering.
func (s service) listOwned(ctx context.Context, sess session.Session) ([]backend.Item, error) {
	if strings.TrimSpace(sess.Credential) == "" {
		return nil, apperrors.E(apperrors.KindUnauthorized, "Sign in to view your items.")
	}
	if s.items == nil {
		return nil, apperrors.E(apperrors.KindUnavailable, "Your items are unavailable right now.")
	}
	owned, err := s.items.ListOwned(ctx, sess.Credential, sess.Subject.ID)
	if err != nil {
		return nil, apperrors.FromBackend(err, "Could not load your items.")
	}
	return owned, nil
}
