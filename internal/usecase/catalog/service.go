package catalog

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/electromart/storefront/internal/domain"
	"github.com/electromart/storefront/internal/pkg/logger"
)

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// ProductsEvent is broadcast after every successful product mutation.
// Consumers receive the full new list and must tolerate duplicate
// deliveries; no ordering is guaranteed relative to the writer's own
// next read.
type ProductsEvent struct {
	EventType string           `json:"event_type"`
	Timestamp time.Time        `json:"timestamp"`
	Products  []domain.Product `json:"products"`
}

// Subscriber is an in-process callback registered for product changes
type Subscriber func(products []domain.Product)

// Service handles catalog business logic: product CRUD, review
// aggregation and the change broadcast
type Service struct {
	repo      domain.ProductRepository
	publisher EventPublisher
	validate  *validator.Validate
	logger    *logger.Logger

	subMu       sync.RWMutex
	subscribers []Subscriber
}

// NewService creates a new catalog service
func NewService(repo domain.ProductRepository, publisher EventPublisher, log *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		validate:  validator.New(),
		logger:    log,
	}
}

// Subscribe registers an in-process callback invoked with the full new
// product list after every mutation
func (s *Service) Subscribe(fn Subscriber) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// List retrieves all products
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", err)
		return nil, err
	}
	return products, nil
}

// Get retrieves a product by ID
func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.Get(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			s.logger.Debugf("Product not found: %s", id)
		} else {
			s.logger.Error("Failed to get product", err)
		}
		return nil, err
	}
	return product, nil
}

// Create creates a new product. Admin only.
func (s *Service) Create(ctx context.Context, caller *domain.User, product *domain.Product) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	if err := s.validate.Struct(product); err != nil {
		s.logger.Error("Product validation failed", err)
		return domain.ErrInvalidInput
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	}).Info("Product created successfully")

	s.broadcast(ctx, "products.created")
	return nil
}

// Update replaces an existing product. Admin only.
func (s *Service) Update(ctx context.Context, caller *domain.User, product *domain.Product) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	if err := s.validate.Struct(product); err != nil {
		s.logger.Error("Product validation failed", err)
		return domain.ErrInvalidInput
	}

	if err := s.repo.Update(ctx, product); err != nil {
		s.logger.Error("Failed to update product", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	}).Info("Product updated successfully")

	s.broadcast(ctx, "products.updated")
	return nil
}

// Delete removes a product. Admin only.
func (s *Service) Delete(ctx context.Context, caller *domain.User, id string) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete product", err)
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"product_id": id,
	}).Info("Product deleted successfully")

	s.broadcast(ctx, "products.deleted")
	return nil
}

// AddReview appends a review authored by the caller. The caller's
// display name is snapshotted onto the review; the average rating is
// recomputed before the write.
func (s *Service) AddReview(ctx context.Context, caller *domain.User, productID string, rating int, comment string) (*domain.Review, error) {
	if caller == nil {
		return nil, domain.ErrUnauthorized
	}

	review := &domain.Review{
		UserID:   caller.ID,
		UserName: caller.Name,
		Rating:   rating,
		Comment:  comment,
	}

	if err := s.validate.Struct(review); err != nil {
		s.logger.Error("Review validation failed", err)
		return nil, domain.ErrInvalidInput
	}

	product, err := s.repo.AddReview(ctx, productID, review)
	if err != nil {
		s.logger.Error("Failed to add review", err)
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"review_id":  review.ID,
		"product_id": productID,
		"rating":     rating,
		"avg_rating": product.AvgRating,
	}).Info("Review added successfully")

	s.broadcast(ctx, "products.reviewed")
	return review, nil
}

// LikeReview increments a review's like counter. Likes are a plain
// popularity counter with no per-user dedup, matching the original
// behavior.
func (s *Service) LikeReview(ctx context.Context, productID, reviewID string) error {
	if err := s.repo.LikeReview(ctx, productID, reviewID); err != nil {
		if err == domain.ErrNotFound {
			s.logger.Debugf("Review not found: product=%s review=%s", productID, reviewID)
		} else {
			s.logger.Error("Failed to like review", err)
		}
		return err
	}

	s.broadcast(ctx, "products.review_liked")
	return nil
}

// broadcast fans the full new product list out to in-process
// subscribers and publishes it for other processes. Publishing is
// fire-and-forget so mutations never block on the broker.
func (s *Service) broadcast(ctx context.Context, eventType string) {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to load products for broadcast", err)
		return
	}

	s.subMu.RLock()
	subs := make([]Subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.RUnlock()

	for _, fn := range subs {
		fn(products)
	}

	if s.publisher == nil {
		return
	}

	event := ProductsEvent{
		EventType: eventType,
		Timestamp: time.Now(),
		Products:  products,
	}

	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Errorf(err, "Failed to marshal %s event", eventType)
		return
	}

	go func() {
		if err := s.publisher.Publish(context.Background(), "catalog.events", data); err != nil {
			s.logger.Errorf(err, "Failed to publish %s event", eventType)
		}
	}()
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
