package authsvc

import (
	"context"
	"sync"
	"time"
)

type tokenEntry struct {
	username  string
	expiresAt time.Time
}

// MemoryTokenStore keeps tokens in process memory. Contents are lost on restart.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]tokenEntry
	now    func() time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: map[string]tokenEntry{}, now: time.Now}
}

func (s *MemoryTokenStore) Put(_ context.Context, token, username string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = tokenEntry{username: username, expiresAt: expiresAt}
	return nil
}

func (s *MemoryTokenStore) Lookup(_ context.Context, token string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.tokens[token]
	if !ok {
		return "", false, nil
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.tokens, token)
		return "", false, nil
	}
	return e.username, true, nil
}

func (s *MemoryTokenStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}

func (s *MemoryTokenStore) PurgeExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for tok, e := range s.tokens {
		if !e.expiresAt.IsZero() && !now.Before(e.expiresAt) {
			delete(s.tokens, tok)
			n++
		}
	}
	return n, nil
}
