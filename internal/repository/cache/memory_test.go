package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/electromart/storefront/internal/domain"
)

func TestMemorySessionStore_CreateThenGet(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)

	token, err := store.Create(context.Background(), domain.User{
		ID: "u1", Name: "Asha", Email: "asha@example.com", PasswordHash: "hash",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	user, err := store.Get(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestMemorySessionStore_UnknownToken(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)

	_, err := store.Get(context.Background(), "bogus")
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestMemorySessionStore_Delete(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)

	token, err := store.Create(context.Background(), domain.User{ID: "u1"})
	assert.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), token))
	assert.NoError(t, store.Delete(context.Background(), token))

	_, err = store.Get(context.Background(), token)
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestMemorySessionStore_Expiry(t *testing.T) {
	store := NewMemorySessionStore(time.Millisecond)

	token, err := store.Create(context.Background(), domain.User{ID: "u1"})
	assert.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = store.Get(context.Background(), token)
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestMemorySessionStore_TokensAreUnique(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)

	first, err := store.Create(context.Background(), domain.User{ID: "u1"})
	assert.NoError(t, err)
	second, err := store.Create(context.Background(), domain.User{ID: "u1"})
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
