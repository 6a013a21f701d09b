package document

import (
	"context"

	"github.com/electromart/storefront/internal/domain"
	"github.com/electromart/storefront/internal/pkg/logger"
	"github.com/electromart/storefront/internal/store"
)

// CartRepository implements domain.CartRepository over per-user cart
// documents. The cart service serializes its own mutations, so the
// repository carries no lock of its own.
type CartRepository struct {
	store  store.Store
	logger *logger.Logger
}

// NewCartRepository creates a document-backed cart repository
func NewCartRepository(st store.Store, log *logger.Logger) *CartRepository {
	return &CartRepository{store: st, logger: log}
}

// Get loads a user's cart, returning an empty cart when no document
// exists yet
func (r *CartRepository) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	cart := &domain.Cart{Items: []domain.CartItem{}}
	if err := readDoc(ctx, r.store, r.logger, store.CartKey(userID), cart); err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	return cart, nil
}

// Save writes back a user's cart in full
func (r *CartRepository) Save(ctx context.Context, userID string, cart *domain.Cart) error {
	return writeDoc(ctx, r.store, store.CartKey(userID), cart)
}
