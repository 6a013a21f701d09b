package domain

import (
	"context"
	"time"
)

// Product represents a catalog product. Price is in minor currency units.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required,min=1,max=255"`
	Description string    `json:"description" validate:"required"`
	Price       int64     `json:"price" validate:"gte=0"`
	Category    string    `json:"category" validate:"required,max=100"`
	ImageURL    string    `json:"imageUrl"`
	Stock       int       `json:"stock" validate:"gte=0"`
	InStock     bool      `json:"inStock"`
	Featured    bool      `json:"featured"`
	AvgRating   float64   `json:"avgRating"`
	Reviews     []Review  `json:"reviews"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Review is a customer review attached to a product. UserName is a
// denormalized snapshot of the author's display name at submission time
// and is not updated if the user later renames.
type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// RecalculateRating recomputes AvgRating as the plain mean of all review
// ratings, or 0 when the product has no reviews. Must run before a review
// mutation is persisted.
func (p *Product) RecalculateRating() {
	if len(p.Reviews) == 0 {
		p.AvgRating = 0
		return
	}

	sum := 0
	for _, r := range p.Reviews {
		sum += r.Rating
	}
	p.AvgRating = float64(sum) / float64(len(p.Reviews))
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	// List retrieves all products in insertion order
	List(ctx context.Context) ([]Product, error)

	// Get retrieves a product by ID
	Get(ctx context.Context, id string) (*Product, error)

	// Create persists a new product, assigning ID and CreatedAt
	Create(ctx context.Context, product *Product) error

	// Update replaces an existing product by ID (whole-object semantics)
	Update(ctx context.Context, product *Product) error

	// Delete removes a product outright
	Delete(ctx context.Context, id string) error

	// AddReview appends a review, recomputing the average rating before
	// the write
	AddReview(ctx context.Context, productID string, review *Review) (*Product, error)

	// LikeReview increments a review's like counter by exactly one
	LikeReview(ctx context.Context, productID, reviewID string) error

	// AdjustStock decrements stock per product id, flipping InStock when
	// stock reaches zero
	AdjustStock(ctx context.Context, quantities map[string]int) error
}
