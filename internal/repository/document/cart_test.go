package document

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/electromart/storefront/internal/domain"
	"github.com/electromart/storefront/internal/pkg/logger"
	"github.com/electromart/storefront/internal/store"
)

func TestCartRepository_Get_AbsentCartIsEmpty(t *testing.T) {
	repo := NewCartRepository(store.NewMemory(), logger.New("test"))

	cart, err := repo.Get(context.Background(), "u1")
	assert.NoError(t, err)
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalPrice)
}

func TestCartRepository_SaveThenGet(t *testing.T) {
	repo := NewCartRepository(store.NewMemory(), logger.New("test"))

	cart := &domain.Cart{
		Items: []domain.CartItem{
			{Product: domain.Product{ID: "p1", Name: "Bulb", Price: 1299}, Quantity: 2},
		},
	}
	cart.Recalculate()

	assert.NoError(t, repo.Save(context.Background(), "u1", cart))

	got, err := repo.Get(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Len(t, got.Items, 1)
	assert.Equal(t, int64(2598), got.TotalPrice)
}

func TestCartRepository_CartsAreIsolatedPerUser(t *testing.T) {
	repo := NewCartRepository(store.NewMemory(), logger.New("test"))

	cart := &domain.Cart{
		Items: []domain.CartItem{
			{Product: domain.Product{ID: "p1", Price: 100}, Quantity: 1},
		},
		TotalPrice: 100,
	}
	assert.NoError(t, repo.Save(context.Background(), "u1", cart))

	other, err := repo.Get(context.Background(), "u2")
	assert.NoError(t, err)
	assert.Empty(t, other.Items)
}
