package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/electromart/storefront/internal/domain"
)

// MemorySessionStore implements domain.SessionStore in process memory,
// for tests and single-node setups without Redis. Expired sessions are
// dropped lazily on lookup.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
	ttl      time.Duration
}

type memorySession struct {
	user      domain.User
	expiresAt time.Time
}

// NewMemorySessionStore creates an in-memory session store
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]memorySession),
		ttl:      ttl,
	}
}

// Create opens a session for the user and returns its token
func (s *MemorySessionStore) Create(_ context.Context, user domain.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := uuid.NewString()
	s.sessions[token] = memorySession{
		user:      user.Public(),
		expiresAt: time.Now().Add(s.ttl),
	}
	return token, nil
}

// Get resolves a token to its user
func (s *MemorySessionStore) Get(_ context.Context, token string) (*domain.User, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrNotFound
	}

	if time.Now().After(sess.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, domain.ErrNotFound
	}

	user := sess.user
	return &user, nil
}

// Delete closes a session
func (s *MemorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}
