package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/electromart/storefront/internal/domain"
)

// SessionStore implements domain.SessionStore on Redis. Sessions map an
// opaque token to the password-stripped user and expire after the
// configured TTL.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a Redis-backed session store
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) key(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// Create opens a session for the user and returns its token
func (s *SessionStore) Create(ctx context.Context, user domain.User) (string, error) {
	data, err := json.Marshal(user.Public())
	if err != nil {
		return "", err
	}

	token := uuid.NewString()
	if err := s.client.Set(ctx, s.key(token), data, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Get resolves a token to its user
func (s *SessionStore) Get(ctx context.Context, token string) (*domain.User, error) {
	val, err := s.client.Get(ctx, s.key(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete closes a session. Unknown tokens are not an error.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}
