package client

import (
	"context"
	"sync"

	"github.com/recruiteryu/platform/internal/auth"
)

// SessionStore owns the current authenticated identity for a visit. It
// starts in the loading state so the access gate answers Wait instead of
// bouncing a fresh page load to login before the restore resolves.
type SessionStore struct {
	mu      sync.RWMutex
	loading bool
	session *auth.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{loading: true}
}

// Restore resolves the stored token into a session (or into the anonymous
// state). A restore that fails outright leaves the store anonymous; the
// caller surfaces a retry, not a crash.
func (s *SessionStore) Restore(ctx context.Context, api *Client) error {
	session, err := api.FetchSession(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.session = nil
		return err
	}
	s.session = session
	return nil
}

// SetSession installs the identity returned by login.
func (s *SessionStore) SetSession(session *auth.Session) {
	s.mu.Lock()
	s.loading = false
	s.session = session
	s.mu.Unlock()
}

// Clear tears the session down on logout.
func (s *SessionStore) Clear() {
	s.mu.Lock()
	s.loading = false
	s.session = nil
	s.mu.Unlock()
}

// Snapshot returns the current session (nil when anonymous) and whether the
// store is still resolving.
func (s *SessionStore) Snapshot() (*auth.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, s.loading
}

// Authorize runs the access gate against the current store state.
func (s *SessionStore) Authorize(requiredRole auth.Role) auth.Decision {
	session, loading := s.Snapshot()
	return auth.Authorize(session, loading, requiredRole)
}
