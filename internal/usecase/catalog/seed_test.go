package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/electromart/storefront/internal/pkg/logger"
	"github.com/electromart/storefront/internal/repository/document"
	"github.com/electromart/storefront/internal/store"
)

func TestService_Seed_PopulatesEmptyCatalog(t *testing.T) {
	repo := document.NewProductRepository(store.NewMemory(), logger.New("test"))
	service := NewService(repo, nil, logger.New("test"))

	assert.NoError(t, service.Seed(context.Background()))

	products, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, products, 6)
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.True(t, p.InStock)
		assert.Positive(t, p.Price)
	}
}

func TestService_Seed_Idempotent(t *testing.T) {
	repo := document.NewProductRepository(store.NewMemory(), logger.New("test"))
	service := NewService(repo, nil, logger.New("test"))

	assert.NoError(t, service.Seed(context.Background()))
	assert.NoError(t, service.Seed(context.Background()))

	products, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, products, 6)
}
