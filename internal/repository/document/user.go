package document

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/electromart/storefront/internal/domain"
	"github.com/electromart/storefront/internal/pkg/logger"
	"github.com/electromart/storefront/internal/store"
)

// UserRepository implements domain.UserRepository over the users
// document
type UserRepository struct {
	store  store.Store
	logger *logger.Logger
	mu     sync.Mutex
}

// NewUserRepository creates a document-backed user repository
func NewUserRepository(st store.Store, log *logger.Logger) *UserRepository {
	return &UserRepository{store: st, logger: log}
}

func (r *UserRepository) load(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := readDoc(ctx, r.store, r.logger, store.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// List retrieves all users with password hashes stripped
func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]domain.User, len(users))
	for i, u := range users {
		public[i] = u.Public()
	}
	return public, nil
}

// FindByEmail retrieves a user by email. Comparison is case-sensitive
// equality, matching the observed behavior.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create persists a new user. A duplicate email fails with
// ErrAlreadyExists before anything is written.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load(ctx)
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Email == user.Email {
			return domain.ErrAlreadyExists
		}
	}

	user.ID = uuid.NewString()
	users = append(users, *user)
	return writeDoc(ctx, r.store, store.KeyUsers, users)
}
