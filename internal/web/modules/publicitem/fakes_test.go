package publicitem

import (
	"context"

	"github.com/louisbranch/reclaim.space/internal/backend"
)

// fakeItemClient implements backend.ItemClient for tests with configurable
// return values and call tracking.
type fakeItemClient struct {
	item        backend.Item
	err         error
	lookupCalls int
	lastLocator string
}

func (f *fakeItemClient) ListOwned(context.Context, string, int64) ([]backend.Item, error) {
	return nil, f.err
}

func (f *fakeItemClient) Create(context.Context, string, int64, backend.ItemDraft) (backend.Item, error) {
	return f.item, f.err
}

func (f *fakeItemClient) GetByLocator(_ context.Context, locator string) (backend.Item, error) {
	f.lookupCalls++
	f.lastLocator = locator
	if f.err != nil {
		return backend.Item{}, f.err
	}
	return f.item, nil
}
