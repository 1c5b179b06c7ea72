// Package token persists the single opaque auth token issued by the backend.
//
// A Store holds at most one token. Absence of a token means the client is
// unauthenticated. Get never fails: any storage-layer error surfaces as
// "absent", so callers only ever branch on presence.
package token

import "sync"

// Store is the contract for token persistence. Set and Clear are idempotent;
// clearing an empty store is a no-op, not an error.
type Store interface {
	// Get returns the stored token, or ok=false if none is stored.
	Get() (token string, ok bool)

	// Set persists the token, overwriting any prior value.
	Set(token string) error

	// Clear removes the persisted token.
	Clear() error
}

// MemStore is an in-memory Store, used by tests and as a fallback when no
// writable storage location exists.
type MemStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.set
}

func (s *MemStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
	return nil
}
