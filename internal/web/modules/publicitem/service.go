package publicitem

import (
	"context"
	"strings"

	"github.com/louisbranch/reclaim.space/internal/backend"
	apperrors "github.com/louisbranch/reclaim.space/internal/web/platform/errors"
)

type service struct {
	items backend.ItemClient
}

func newService(items backend.ItemClient) service {
	return service{items: items}
}

// lookup resolves a public locator to its record view. No credential is
// attached; what the backend discloses is what the page shows.
func (s service) lookup(ctx context.Context, locator string) (backend.Item, error) {
	locator = strings.TrimSpace(locator)
	if locator == "" {
		return backend.Item{}, apperrors.E(apperrors.KindNotFound, "Item not found.")
	}
	if s.items == nil {
		return backend.Item{}, apperrors.E(apperrors.KindUnavailable, "Item lookup is unavailable right now.")
	}
	item, err := s.items.GetByLocator(ctx, locator)
	if err != nil {
		return backend.Item{}, apperrors.FromBackend(err, "Could not load the item.")
	}
	return item, nil
}
