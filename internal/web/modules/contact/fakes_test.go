package contact

import (
	"context"

	"github.com/louisbranch/reclaim.space/internal/backend"
)

// fakeMessageClient implements backend.MessageClient for tests with
// configurable return values and call tracking.
type fakeMessageClient struct {
	err      error
	calls    int
	received []backend.Message
}

func (f *fakeMessageClient) Relay(_ context.Context, msg backend.Message) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.received = append(f.received, msg)
	return nil
}
