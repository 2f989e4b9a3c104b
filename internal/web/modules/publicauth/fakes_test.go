package publicauth

import (
	"context"

	"github.com/louisbranch/reclaim.space/internal/backend"
	"github.com/louisbranch/reclaim.space/internal/session"
)

// fakeAuthClient implements backend.AuthClient for tests with configurable
// return values and call tracking.
type fakeAuthClient struct {
	session        backend.Session
	err            error
	loginCalls     int
	registerCalls  int
	lastIdentifier string
}

func (f *fakeAuthClient) Login(_ context.Context, identifier, _ string) (backend.Session, error) {
	f.loginCalls++
	f.lastIdentifier = identifier
	if f.err != nil {
		return backend.Session{}, f.err
	}
	return f.session, nil
}

func (f *fakeAuthClient) Register(_ context.Context, _, _, _ string) (backend.Session, error) {
	f.registerCalls++
	if f.err != nil {
		return backend.Session{}, f.err
	}
	return f.session, nil
}

func (f *fakeAuthClient) Profile(context.Context, string) (backend.Subject, error) {
	return f.session.Subject, f.err
}

// fakeSessionStore implements session.Store in memory with call tracking.
type fakeSessionStore struct {
	saved      map[string]session.Session
	saveErr    error
	nextID     string
	saveCalls  int
	clearCalls int
	lastClear  string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{saved: make(map[string]session.Session), nextID: "sid-1"}
}

func (f *fakeSessionStore) Save(_ context.Context, credential string, subject backend.Subject) (string, error) {
	f.saveCalls++
	if f.saveErr != nil {
		return "", f.saveErr
	}
	id := f.nextID
	f.saved[id] = session.Session{ID: id, Credential: credential, Subject: subject}
	return id, nil
}

func (f *fakeSessionStore) Read(_ context.Context, id string) (session.Session, bool, error) {
	stored, ok := f.saved[id]
	return stored, ok, nil
}

func (f *fakeSessionStore) Clear(_ context.Context, id string) error {
	f.clearCalls++
	f.lastClear = id
	delete(f.saved, id)
	return nil
}

func (f *fakeSessionStore) Close() error { return nil }

func storeSession(id, credential string) session.Session {
	return session.Session{ID: id, Credential: credential}
}
