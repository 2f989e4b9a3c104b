package dashboard

import (
	"context"

	"github.com/louisbranch/reclaim.space/internal/backend"
)

// fakeItemClient implements backend.ItemClient for tests with configurable
// return values and call tracking.
type fakeItemClient struct {
	owned          []backend.Item
	err            error
	listCalls      int
	lastCredential string
	lastOwnerID    int64
}

func (f *fakeItemClient) ListOwned(_ context.Context, credential string, ownerID int64) ([]backend.Item, error) {
	f.listCalls++
	f.lastCredential = credential
	f.lastOwnerID = ownerID
	if f.err != nil {
		return nil, f.err
	}
	return f.owned, nil
}

func (f *fakeItemClient) Create(context.Context, string, int64, backend.ItemDraft) (backend.Item, error) {
	return backend.Item{}, f.err
}

func (f *fakeItemClient) GetByLocator(context.Context, string) (backend.Item, error) {
	return backend.Item{}, f.err
}
