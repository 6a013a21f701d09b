package document

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/electromart/storefront/internal/domain"
	"github.com/electromart/storefront/internal/pkg/logger"
	"github.com/electromart/storefront/internal/store"
)

func newOrderRepo() *OrderRepository {
	return NewOrderRepository(store.NewMemory(), logger.New("test"))
}

func createOrder(t *testing.T, repo *OrderRepository, userID string, total int64) *domain.Order {
	t.Helper()
	o := &domain.Order{
		UserID:     userID,
		Items:      []domain.CartItem{{Product: domain.Product{ID: "p1", Price: total}, Quantity: 1}},
		TotalPrice: total,
	}
	assert.NoError(t, repo.Create(context.Background(), o))
	return o
}

func TestOrderRepository_Create_AssignsIdentity(t *testing.T) {
	repo := newOrderRepo()

	o := createOrder(t, repo, "u1", 2598)

	assert.True(t, strings.HasPrefix(o.ID, "order_"))
	assert.Equal(t, domain.StatusPending, o.Status)
	assert.False(t, o.CreatedAt.IsZero())
	assert.Equal(t, o.CreatedAt, o.UpdatedAt)
}

func TestOrderRepository_Create_UniqueIDs(t *testing.T) {
	repo := newOrderRepo()

	first := createOrder(t, repo, "u1", 100)
	second := createOrder(t, repo, "u1", 200)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestOrderRepository_Get_NotFound(t *testing.T) {
	repo := newOrderRepo()

	_, err := repo.Get(context.Background(), "order_missing")
	assert.Equal(t, domain.ErrNotFound, err)
}

func TestOrderRepository_ListByUser_FiltersOwnership(t *testing.T) {
	repo := newOrderRepo()

	mine := createOrder(t, repo, "u1", 100)
	createOrder(t, repo, "u2", 200)

	orders, err := repo.ListByUser(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, mine.ID, orders[0].ID)

	orders, err = repo.ListByUser(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepository_UpdateStatus_ForwardTransition(t *testing.T) {
	repo := newOrderRepo()
	o := createOrder(t, repo, "u1", 100)

	updated, err := repo.UpdateStatus(context.Background(), o.ID, domain.StatusProcessing)
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, updated.Status)
	assert.True(t, updated.UpdatedAt.After(o.UpdatedAt) || updated.UpdatedAt.Equal(o.UpdatedAt))

	updated, err = repo.UpdateStatus(context.Background(), o.ID, domain.StatusShipped)
	assert.NoError(t, err)
	updated, err = repo.UpdateStatus(context.Background(), o.ID, domain.StatusDelivered)
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, updated.Status)
}

func TestOrderRepository_UpdateStatus_RejectsBackwardTransition(t *testing.T) {
	repo := newOrderRepo()
	o := createOrder(t, repo, "u1", 100)

	_, err := repo.UpdateStatus(context.Background(), o.ID, domain.StatusProcessing)
	assert.NoError(t, err)

	_, err = repo.UpdateStatus(context.Background(), o.ID, domain.StatusPending)
	assert.Equal(t, domain.ErrConflict, err)

	got, err := repo.Get(context.Background(), o.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, got.Status)
}

func TestOrderRepository_UpdateStatus_DeliveredIsTerminal(t *testing.T) {
	repo := newOrderRepo()
	o := createOrder(t, repo, "u1", 100)

	for _, next := range []domain.OrderStatus{domain.StatusProcessing, domain.StatusShipped, domain.StatusDelivered} {
		_, err := repo.UpdateStatus(context.Background(), o.ID, next)
		assert.NoError(t, err)
	}

	_, err := repo.UpdateStatus(context.Background(), o.ID, domain.StatusCancelled)
	assert.Equal(t, domain.ErrConflict, err)
}

func TestOrderRepository_UpdateStatus_CancelFromPending(t *testing.T) {
	repo := newOrderRepo()
	o := createOrder(t, repo, "u1", 100)

	updated, err := repo.UpdateStatus(context.Background(), o.ID, domain.StatusCancelled)
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, updated.Status)
}

func TestOrderRepository_UpdateStatus_UnknownValue(t *testing.T) {
	repo := newOrderRepo()
	o := createOrder(t, repo, "u1", 100)

	_, err := repo.UpdateStatus(context.Background(), o.ID, domain.OrderStatus("misplaced"))
	assert.Equal(t, domain.ErrInvalidInput, err)
}

func TestOrderRepository_UpdateStatus_NotFound(t *testing.T) {
	repo := newOrderRepo()

	_, err := repo.UpdateStatus(context.Background(), "order_missing", domain.StatusProcessing)
	assert.Equal(t, domain.ErrNotFound, err)
}
