// Package revocation holds the in-process revocation set used when no shared
// backend is configured. Its contents live only as long as the process.
package revocation

import (
	"context"
	"sync"
)

// MemoryStore is a concurrent set of revoked token strings.
type MemoryStore struct {
	tokens sync.Map
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Add is idempotent and never fails.
func (s *MemoryStore) Add(_ context.Context, token string) error {
	s.tokens.Store(token, struct{}{})
	return nil
}

func (s *MemoryStore) Contains(_ context.Context, token string) (bool, error) {
	_, ok := s.tokens.Load(token)
	return ok, nil
}

// Len reports the number of revoked tokens.
func (s *MemoryStore) Len() int {
	n := 0
	s.tokens.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
