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

// ProductRepository implements domain.ProductRepository over the
// products document
type ProductRepository struct {
	store  store.Store
	logger *logger.Logger
	mu     sync.Mutex
}

// NewProductRepository creates a document-backed product repository
func NewProductRepository(st store.Store, log *logger.Logger) *ProductRepository {
	return &ProductRepository{store: st, logger: log}
}

func (r *ProductRepository) load(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := readDoc(ctx, r.store, r.logger, store.KeyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) save(ctx context.Context, products []domain.Product) error {
	return writeDoc(ctx, r.store, store.KeyProducts, products)
}

// List retrieves all products in insertion order
func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	return r.load(ctx)
}

// Get retrieves a product by ID
func (r *ProductRepository) Get(ctx context.Context, id string) (*domain.Product, error) {
	products, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create persists a new product, assigning ID, CreatedAt and the empty
// review state
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load(ctx)
	if err != nil {
		return err
	}

	product.ID = uuid.NewString()
	product.CreatedAt = time.Now()
	product.Reviews = []domain.Review{}
	product.AvgRating = 0

	products = append(products, *product)
	return r.save(ctx, products)
}

// Update replaces an existing product by ID. The caller supplies the
// complete object; there is no partial-field patch.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range products {
		if products[i].ID == product.ID {
			// CreatedAt is immutable; reviews are mutated only through
			// AddReview and LikeReview
			product.CreatedAt = products[i].CreatedAt
			product.Reviews = products[i].Reviews
			product.AvgRating = products[i].AvgRating
			products[i] = *product
			return r.save(ctx, products)
		}
	}
	return domain.ErrNotFound
}

// Delete removes a product outright
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range products {
		if products[i].ID == id {
			products = append(products[:i], products[i+1:]...)
			return r.save(ctx, products)
		}
	}
	return domain.ErrNotFound
}

// AddReview appends a review to a product and synchronously recomputes
// the average rating before the write
func (r *ProductRepository) AddReview(ctx context.Context, productID string, review *domain.Review) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID != productID {
			continue
		}

		review.ID = uuid.NewString()
		review.Likes = 0
		review.CreatedAt = time.Now()

		products[i].Reviews = append(products[i].Reviews, *review)
		products[i].RecalculateRating()

		if err := r.save(ctx, products); err != nil {
			return nil, err
		}
		return &products[i], nil
	}
	return nil, domain.ErrNotFound
}

// LikeReview increments a review's like counter by exactly one.
// There is no per-user dedup: repeated likes keep incrementing, which
// matches the observed behavior of the original counter.
func (r *ProductRepository) LikeReview(ctx context.Context, productID, reviewID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range products {
		if products[i].ID != productID {
			continue
		}
		for j := range products[i].Reviews {
			if products[i].Reviews[j].ID == reviewID {
				products[i].Reviews[j].Likes++
				return r.save(ctx, products)
			}
		}
		return domain.ErrNotFound
	}
	return domain.ErrNotFound
}

// AdjustStock decrements stock for each listed product and flips
// InStock when stock reaches zero. Products missing from the document
// are skipped; stock never goes negative.
func (r *ProductRepository) AdjustStock(ctx context.Context, quantities map[string]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.load(ctx)
	if err != nil {
		return err
	}

	changed := false
	for i := range products {
		qty, ok := quantities[products[i].ID]
		if !ok || qty <= 0 {
			continue
		}

		products[i].Stock -= qty
		if products[i].Stock <= 0 {
			products[i].Stock = 0
			products[i].InStock = false
		}
		changed = true
	}

	if !changed {
		return nil
	}
	return r.save(ctx, products)
}
