package document

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/electromart/storefront/internal/domain"
	"github.com/electromart/storefront/internal/pkg/logger"
	"github.com/electromart/storefront/internal/store"
)

// OrderRepository implements domain.OrderRepository over the orders
// document
type OrderRepository struct {
	store  store.Store
	logger *logger.Logger
	mu     sync.Mutex
}

// NewOrderRepository creates a document-backed order repository
func NewOrderRepository(st store.Store, log *logger.Logger) *OrderRepository {
	return &OrderRepository{store: st, logger: log}
}

func (r *OrderRepository) load(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := readDoc(ctx, r.store, r.logger, store.KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// List retrieves all orders in insertion order
func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	return r.load(ctx)
}

// Get retrieves an order by ID
func (r *OrderRepository) Get(ctx context.Context, id string) (*domain.Order, error) {
	orders, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListByUser retrieves the orders owned by a user
func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.UserID == userID {
			owned = append(owned, o)
		}
	}
	return owned, nil
}

// Create persists a new order with a generated id and pending status.
// Ids are UUIDs rather than creation timestamps, so same-millisecond
// checkouts cannot collide.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.load(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	order.ID = "order_" + uuid.NewString()
	order.Status = domain.StatusPending
	order.CreatedAt = now
	order.UpdatedAt = now

	orders = append(orders, *order)
	return writeDoc(ctx, r.store, store.KeyOrders, orders)
}

// UpdateStatus transitions an order's status and bumps UpdatedAt.
// Transitions must follow the forward-only state machine; anything else
// returns ErrConflict.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}

	orders, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID != id {
			continue
		}

		if !orders[i].Status.CanTransitionTo(status) {
			return nil, domain.ErrConflict
		}

		orders[i].Status = status
		orders[i].UpdatedAt = time.Now()

		if err := writeDoc(ctx, r.store, store.KeyOrders, orders); err != nil {
			return nil, err
		}
		return &orders[i], nil
	}
	return nil, domain.ErrNotFound
}
