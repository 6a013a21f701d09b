package domain

import (
	"context"
	"time"
)

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is a known status value
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo enforces the forward-only order state machine:
// pending -> processing -> shipped -> delivered, with cancelled reachable
// only from pending or processing.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing || next == StatusCancelled
	case StatusProcessing:
		return next == StatusShipped || next == StatusCancelled
	case StatusShipped:
		return next == StatusDelivered
	default:
		return false
	}
}

// PaymentMethod selects how an order is settled. Online payment is
// simulated and never reaches a gateway.
type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "cod"
	PaymentOnline PaymentMethod = "online"
)

// Valid reports whether m is a known payment method
func (m PaymentMethod) Valid() bool {
	return m == PaymentCOD || m == PaymentOnline
}

// Address is a shipping address value object, validated at submission
// time only.
type Address struct {
	FullName string `json:"fullName" validate:"required,min=1,max=100"`
	Phone    string `json:"phone" validate:"required,phone"`
	Street   string `json:"street" validate:"required,max=255"`
	City     string `json:"city" validate:"required,max=100"`
	State    string `json:"state" validate:"required,max=100"`
	Pincode  string `json:"pincode" validate:"required,pincode"`
}

// CartItem is one cart line: a full product snapshot plus quantity.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is a per-user aggregate of cart items. TotalPrice must always
// equal the sum of price*quantity over Items.
type Cart struct {
	Items      []CartItem `json:"items"`
	TotalPrice int64      `json:"totalPrice"`
}

// Recalculate restores the total price invariant after a mutation
func (c *Cart) Recalculate() {
	var total int64
	for _, it := range c.Items {
		total += it.Product.Price * int64(it.Quantity)
	}
	c.TotalPrice = total
}

// Order is a frozen checkout snapshot. Items and TotalPrice are copied
// from the cart at checkout time and never reference live cart state.
// UserName and UserEmail are denormalized for admin listings.
type Order struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	UserName      string        `json:"userName,omitempty"`
	UserEmail     string        `json:"userEmail,omitempty"`
	Items         []CartItem    `json:"items"`
	TotalPrice    int64         `json:"totalPrice"`
	Status        OrderStatus   `json:"status"`
	Address       *Address      `json:"address,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	// List retrieves all orders in insertion order
	List(ctx context.Context) ([]Order, error)

	// Get retrieves an order by ID
	Get(ctx context.Context, id string) (*Order, error)

	// ListByUser retrieves the orders owned by a user
	ListByUser(ctx context.Context, userID string) ([]Order, error)

	// Create persists a new order, assigning ID and timestamps
	Create(ctx context.Context, order *Order) error

	// UpdateStatus transitions an order's status and bumps UpdatedAt.
	// Disallowed transitions return ErrConflict.
	UpdateStatus(ctx context.Context, id string, status OrderStatus) (*Order, error)
}

// CartRepository persists per-user carts as whole documents
type CartRepository interface {
	// Get loads a user's cart, returning an empty cart when absent
	Get(ctx context.Context, userID string) (*Cart, error)

	// Save writes back a user's cart in full
	Save(ctx context.Context, userID string, cart *Cart) error
}
