package items

import (
	"context"

	"github.com/louisbranch/reclaim.space/internal/backend"
)

// fakeItemClient implements backend.ItemClient for tests with configurable
// return values and call tracking.
type fakeItemClient struct {
	created        backend.Item
	err            error
	createCalls    int
	lastCredential string
	lastOwnerID    int64
	lastDraft      backend.ItemDraft
}

func (f *fakeItemClient) ListOwned(context.Context, string, int64) ([]backend.Item, error) {
	return nil, f.err
}

func (f *fakeItemClient) Create(_ context.Context, credential string, ownerID int64, draft backend.ItemDraft) (backend.Item, error) {
	f.createCalls++
	f.lastCredential = credential
	f.lastOwnerID = ownerID
	f.lastDraft = draft
	if f.err != nil {
		return backend.Item{}, f.err
	}
	return f.created, nil
}

func (f *fakeItemClient) GetByLocator(context.Context, string) (backend.Item, error) {
	return f.created, f.err
}
