package cart

import (
	"context"
	"sync"

	"github.com/electromart/storefront/internal/domain"
	"github.com/electromart/storefront/internal/pkg/logger"
	appvalidator "github.com/electromart/storefront/internal/pkg/validator"
)

// Service handles the per-user cart: line mutations, the total price
// invariant and checkout. Checkout is the one place where the cart
// composes with the order repository.
type Service struct {
	carts    domain.CartRepository
	products domain.ProductRepository
	orders   domain.OrderRepository
	logger   *logger.Logger
	mu       sync.Mutex
}

// NewService creates a new cart service
func NewService(
	carts domain.CartRepository,
	products domain.ProductRepository,
	orders domain.OrderRepository,
	log *logger.Logger,
) *Service {
	return &Service{
		carts:    carts,
		products: products,
		orders:   orders,
		logger:   log,
	}
}

// Get loads the caller's cart. An absent identity yields an empty
// cart rather than an error, so a logged-out view never shows another
// user's lines.
func (s *Service) Get(ctx context.Context, caller *domain.User) (*domain.Cart, error) {
	if caller == nil {
		return &domain.Cart{Items: []domain.CartItem{}}, nil
	}
	return s.carts.Get(ctx, caller.ID)
}

// Add puts quantity units of a product into the caller's cart. If the
// product is already present its line quantity grows; a product never
// occupies two lines. The product is snapshotted in full onto the line.
func (s *Service) Add(ctx context.Context, caller *domain.User, productID string, quantity int) (*domain.Cart, error) {
	if caller == nil {
		return nil, domain.ErrUnauthorized
	}
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.Get(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].Product.ID == productID {
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, domain.CartItem{Product: *product, Quantity: quantity})
	}

	cart.Recalculate()
	if err := s.carts.Save(ctx, caller.ID, cart); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":    caller.ID,
		"product_id": productID,
		"quantity":   quantity,
	}).Info("Added product to cart")

	return cart, nil
}

// Remove drops a product's line from the cart entirely
func (s *Service) Remove(ctx context.Context, caller *domain.User, productID string) (*domain.Cart, error) {
	if caller == nil {
		return nil, domain.ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.carts.Get(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	for i := range cart.Items {
		if cart.Items[i].Product.ID == productID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			break
		}
	}

	cart.Recalculate()
	if err := s.carts.Save(ctx, caller.ID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity sets a line's quantity. Quantities below one are a
// no-op: the line keeps its prior value and only Remove eliminates it.
func (s *Service) UpdateQuantity(ctx context.Context, caller *domain.User, productID string, quantity int) (*domain.Cart, error) {
	if caller == nil {
		return nil, domain.ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.carts.Get(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	if quantity < 1 {
		return cart, nil
	}

	for i := range cart.Items {
		if cart.Items[i].Product.ID == productID {
			cart.Items[i].Quantity = quantity
			break
		}
	}

	cart.Recalculate()
	if err := s.carts.Save(ctx, caller.ID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the caller's cart
func (s *Service) Clear(ctx context.Context, caller *domain.User) error {
	if caller == nil {
		return domain.ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := &domain.Cart{Items: []domain.CartItem{}}
	return s.carts.Save(ctx, caller.ID, cart)
}

// Checkout snapshots the cart into a new order, decrements stock and
// clears the cart, returning the new order id. Nothing is written when
// the caller is absent, the cart is empty, the address is invalid or a
// line exceeds remaining stock.
func (s *Service) Checkout(ctx context.Context, caller *domain.User, address domain.Address, method domain.PaymentMethod) (string, error) {
	if caller == nil {
		return "", domain.ErrUnauthorized
	}

	if err := appvalidator.Get().Struct(address); err != nil {
		s.logger.Error("Address validation failed", err)
		return "", domain.ErrInvalidInput
	}
	if !method.Valid() {
		return "", domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.carts.Get(ctx, caller.ID)
	if err != nil {
		return "", err
	}
	if len(cart.Items) == 0 {
		return "", domain.ErrEmptyCart
	}

	// Pre-check stock against the current catalog before any write
	quantities := make(map[string]int, len(cart.Items))
	for _, it := range cart.Items {
		product, err := s.products.Get(ctx, it.Product.ID)
		if err != nil {
			if err == domain.ErrNotFound {
				s.logger.Warnf("Cart references deleted product %s, skipping stock check", it.Product.ID)
				continue
			}
			return "", err
		}
		if product.Stock < it.Quantity {
			s.logger.WithFields(map[string]interface{}{
				"product_id": it.Product.ID,
				"requested":  it.Quantity,
				"remaining":  product.Stock,
			}).Warn("Checkout rejected, insufficient stock")
			return "", domain.ErrOutOfStock
		}
		quantities[it.Product.ID] = it.Quantity
	}

	// Frozen snapshot: the order keeps its own copy of the lines
	items := make([]domain.CartItem, len(cart.Items))
	copy(items, cart.Items)

	order := &domain.Order{
		UserID:        caller.ID,
		UserName:      caller.Name,
		UserEmail:     caller.Email,
		Items:         items,
		TotalPrice:    cart.TotalPrice,
		Address:       &address,
		PaymentMethod: method,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error("Failed to create order", err)
		return "", err
	}

	if err := s.products.AdjustStock(ctx, quantities); err != nil {
		s.logger.Errorf(err, "Failed to adjust stock for order %s", order.ID)
	}

	empty := &domain.Cart{Items: []domain.CartItem{}}
	if err := s.carts.Save(ctx, caller.ID, empty); err != nil {
		s.logger.Errorf(err, "Failed to clear cart after checkout %s", order.ID)
	}

	s.logger.WithFields(map[string]interface{}{
		"order_id":    order.ID,
		"user_id":     caller.ID,
		"total_price": order.TotalPrice,
		"payment":     string(method),
	}).Info("Checkout completed")

	return order.ID, nil
}
