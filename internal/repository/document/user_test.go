package document

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/electromart/storefront/internal/domain"
	"github.com/electromart/storefront/internal/pkg/logger"
	"github.com/electromart/storefront/internal/store"
)

func newUserRepo() *UserRepository {
	return NewUserRepository(store.NewMemory(), logger.New("test"))
}

func TestUserRepository_Create_AssignsID(t *testing.T) {
	repo := newUserRepo()

	u := &domain.User{Name: "Asha", Email: "asha@example.com", PasswordHash: "hash"}
	assert.NoError(t, repo.Create(context.Background(), u))
	assert.NotEmpty(t, u.ID)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo := newUserRepo()

	first := &domain.User{Name: "Asha", Email: "asha@example.com", PasswordHash: "hash"}
	assert.NoError(t, repo.Create(context.Background(), first))

	dup := &domain.User{Name: "Impostor", Email: "asha@example.com", PasswordHash: "other"}
	err := repo.Create(context.Background(), dup)
	assert.Equal(t, domain.ErrAlreadyExists, err)

	users, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepository_FindByEmail_CaseSensitive(t *testing.T) {
	repo := newUserRepo()

	u := &domain.User{Name: "Asha", Email: "asha@example.com", PasswordHash: "hash"}
	assert.NoError(t, repo.Create(context.Background(), u))

	found, err := repo.FindByEmail(context.Background(), "asha@example.com")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)

	_, err = repo.FindByEmail(context.Background(), "Asha@Example.com")
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestUserRepository_List_StripsPasswordHashes(t *testing.T) {
	repo := newUserRepo()

	assert.NoError(t, repo.Create(context.Background(), &domain.User{
		Name: "Asha", Email: "asha@example.com", PasswordHash: "hash",
	}))

	users, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Empty(t, users[0].PasswordHash)
}
