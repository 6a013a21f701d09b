package order

import (
	"context"

	"github.com/electromart/storefront/internal/domain"
	"github.com/electromart/storefront/internal/pkg/logger"
)

// Service handles order lookup, status transitions and the admin
// dashboard aggregates. Ownership and role checks live here so they
// cannot be bypassed by calling the repositories directly.
type Service struct {
	orders   domain.OrderRepository
	users    domain.UserRepository
	products domain.ProductRepository
	logger   *logger.Logger
}

// NewService creates a new order service
func NewService(
	orders domain.OrderRepository,
	users domain.UserRepository,
	products domain.ProductRepository,
	log *logger.Logger,
) *Service {
	return &Service{
		orders:   orders,
		users:    users,
		products: products,
		logger:   log,
	}
}

// ListMine retrieves the caller's own orders
func (s *Service) ListMine(ctx context.Context, caller *domain.User) ([]domain.Order, error) {
	if caller == nil {
		return nil, domain.ErrUnauthorized
	}
	return s.orders.ListByUser(ctx, caller.ID)
}

// Get retrieves an order the caller is allowed to see: owners read
// their own orders, admins read any
func (s *Service) Get(ctx context.Context, caller *domain.User, id string) (*domain.Order, error) {
	if caller == nil {
		return nil, domain.ErrUnauthorized
	}

	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.UserID != caller.ID && !caller.IsAdmin {
		s.logger.WithFields(map[string]interface{}{
			"order_id":  id,
			"caller_id": caller.ID,
		}).Warn("Denied cross-user order access")
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// ListAll retrieves every order. Admin only.
func (s *Service) ListAll(ctx context.Context, caller *domain.User) ([]domain.Order, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return s.orders.List(ctx)
}

// UpdateStatus transitions an order. Admin only; the repository
// enforces the forward-only state machine.
func (s *Service) UpdateStatus(ctx context.Context, caller *domain.User, id string, status domain.OrderStatus) (*domain.Order, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	order, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		if err == domain.ErrNotFound {
			s.logger.Debugf("Order not found: %s", id)
		} else if err == domain.ErrConflict {
			s.logger.Warnf("Rejected status transition for order %s to %s", id, status)
		} else {
			s.logger.Error("Failed to update order status", err)
		}
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"order_id": id,
		"status":   string(status),
	}).Info("Order status updated")

	return order, nil
}

// Stats holds the admin dashboard aggregates
type Stats struct {
	TotalUsers    int   `json:"totalUsers"`
	TotalOrders   int   `json:"totalOrders"`
	TotalProducts int   `json:"totalProducts"`
	TotalSales    int64 `json:"totalSales"`
	PendingOrders int   `json:"pendingOrders"`
	OutOfStock    int   `json:"outOfStock"`
}

// GetStats computes the dashboard aggregates. Admin only.
func (s *Service) GetStats(ctx context.Context, caller *domain.User) (*Stats, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalUsers:    len(users),
		TotalOrders:   len(orders),
		TotalProducts: len(products),
	}
	for _, o := range orders {
		stats.TotalSales += o.TotalPrice
		if o.Status == domain.StatusPending {
			stats.PendingOrders++
		}
	}
	for _, p := range products {
		if !p.InStock {
			stats.OutOfStock++
		}
	}
	return stats, nil
}

func requireAdmin(caller *domain.User) error {
	if caller == nil {
		return domain.ErrUnauthorized
	}
	if !caller.IsAdmin {
		return domain.ErrForbidden
	}
	return nil
}
