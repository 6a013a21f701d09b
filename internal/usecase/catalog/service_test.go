package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/electromart/storefront/internal/domain"
	"github.com/electromart/storefront/internal/pkg/logger"
)

// MockProductRepository is a mock implementation of domain.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) Get(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) AddReview(ctx context.Context, productID string, review *domain.Review) (*domain.Product, error) {
	args := m.Called(ctx, productID, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) LikeReview(ctx context.Context, productID, reviewID string) error {
	args := m.Called(ctx, productID, reviewID)
	return args.Error(0)
}

func (m *MockProductRepository) AdjustStock(ctx context.Context, quantities map[string]int) error {
	args := m.Called(ctx, quantities)
	return args.Error(0)
}

var (
	admin    = &domain.User{ID: "a1", Name: "Admin", Email: "admin@example.com", IsAdmin: true}
	customer = &domain.User{ID: "u1", Name: "Asha Rao", Email: "asha@example.com"}
)

func validProduct() *domain.Product {
	return &domain.Product{
		Name:        "LED Bulb",
		Description: "9W warm white",
		Price:       7999,
		Category:    "Lighting",
		Stock:       10,
		InStock:     true,
	}
}

func TestService_Create_Success(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, nil, logger.New("test"))

	product := validProduct()
	mockRepo.On("Create", mock.Anything, product).Return(nil)
	mockRepo.On("List", mock.Anything).Return([]domain.Product{*product}, nil)

	err := service.Create(context.Background(), admin, product)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_Create_AnonymousCaller(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, nil, logger.New("test"))

	err := service.Create(context.Background(), nil, validProduct())

	assert.Equal(t, domain.ErrUnauthorized, err)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Create_NonAdminCaller(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, nil, logger.New("test"))

	err := service.Create(context.Background(), customer, validProduct())

	assert.Equal(t, domain.ErrForbidden, err)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Create_InvalidInput(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, nil, logger.New("test"))

	product := validProduct()
	product.Name = ""

	err := service.Create(context.Background(), admin, product)

	assert.Equal(t, domain.ErrInvalidInput, err)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Create_NegativePrice(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, nil, logger.New("test"))

	product := validProduct()
	product.Price = -1

	err := service.Create(context.Background(), admin, product)

	assert.Equal(t, domain.ErrInvalidInput, err)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Create_NotifiesSubscribers(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, nil, logger.New("test"))

	product := validProduct()
	mockRepo.On("Create", mock.Anything, product).Return(nil)
	mockRepo.On("List", mock.Anything).Return([]domain.Product{*product}, nil)

	var received []domain.Product
	service.Subscribe(func(products []domain.Product) {
		received = products
	})

	err := service.Create(context.Background(), admin, product)

	assert.NoError(t, err)
	assert.Len(t, received, 1)
	assert.Equal(t, "LED Bulb", received[0].Name)
}

// fakePublisher records publishes on a channel so the fire-and-forget
// goroutine can be awaited
type fakePublisher struct {
	published chan string
}

func (f *fakePublisher) Publish(ctx context.Context, subject string, data []byte) error {
	f.published <- subject
	return nil
}

func TestService_Create_PublishesEvent(t *testing.T) {
	mockRepo := new(MockProductRepository)
	pub := &fakePublisher{published: make(chan string, 1)}
	service := NewService(mockRepo, pub, logger.New("test"))

	product := validProduct()
	mockRepo.On("Create", mock.Anything, product).Return(nil)
	mockRepo.On("List", mock.Anything).Return([]domain.Product{*product}, nil)

	err := service.Create(context.Background(), admin, product)
	assert.NoError(t, err)

	select {
	case subject := <-pub.published:
		assert.Equal(t, "catalog.events", subject)
	case <-time.After(time.Second):
		t.Fatal("expected a published event")
	}
}

func TestService_Update_Success(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, nil, logger.New("test"))

	product := validProduct()
	product.ID = "p1"
	mockRepo.On("Update", mock.Anything, product).Return(nil)
	mockRepo.On("List", mock.Anything).Return([]domain.Product{*product}, nil)

	err := service.Update(context.Background(), admin, product)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, nil, logger.New("test"))

	product := validProduct()
	product.ID = "missing"
	mockRepo.On("Update", mock.Anything, product).Return(domain.ErrNotFound)

	err := service.Update(context.Background(), admin, product)

	assert.Equal(t, domain.ErrNotFound, err)
}

func TestService_Delete_NonAdminCaller(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, nil, logger.New("test"))

	err := service.Delete(context.Background(), customer, "p1")

	assert.Equal(t, domain.ErrForbidden, err)
	mockRepo.AssertNotCalled(t, "Delete")
}

func TestService_AddReview_Success(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, nil, logger.New("test"))

	product := validProduct()
	product.ID = "p1"
	product.AvgRating = 4.0

	mockRepo.On("AddReview", mock.Anything, "p1", mock.MatchedBy(func(r *domain.Review) bool {
		return r.UserID == customer.ID && r.UserName == customer.Name && r.Rating == 4
	})).Return(product, nil)
	mockRepo.On("List", mock.Anything).Return([]domain.Product{*product}, nil)

	review, err := service.AddReview(context.Background(), customer, "p1", 4, "Solid build")

	assert.NoError(t, err)
	assert.Equal(t, customer.Name, review.UserName)
	mockRepo.AssertExpectations(t)
}

func TestService_AddReview_NotifiesSubscribers(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, nil, logger.New("test"))

	product := validProduct()
	product.ID = "p1"
	product.AvgRating = 5.0

	mockRepo.On("AddReview", mock.Anything, "p1", mock.Anything).Return(product, nil)
	mockRepo.On("List", mock.Anything).Return([]domain.Product{*product}, nil)

	notified := 0
	var received []domain.Product
	service.Subscribe(func(products []domain.Product) {
		notified++
		received = products
	})

	_, err := service.AddReview(context.Background(), customer, "p1", 5, "Excellent")

	assert.NoError(t, err)
	assert.Equal(t, 1, notified)
	assert.Len(t, received, 1)
	assert.Equal(t, 5.0, received[0].AvgRating)
}

func TestService_AddReview_AnonymousCaller(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, nil, logger.New("test"))

	_, err := service.AddReview(context.Background(), nil, "p1", 4, "nope")

	assert.Equal(t, domain.ErrUnauthorized, err)
	mockRepo.AssertNotCalled(t, "AddReview")
}

func TestService_AddReview_RatingOutOfRange(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, nil, logger.New("test"))

	_, err := service.AddReview(context.Background(), customer, "p1", 6, "too good")
	assert.Equal(t, domain.ErrInvalidInput, err)

	_, err = service.AddReview(context.Background(), customer, "p1", 0, "unset")
	assert.Equal(t, domain.ErrInvalidInput, err)

	mockRepo.AssertNotCalled(t, "AddReview")
}

func TestService_LikeReview_NotifiesSubscribers(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, nil, logger.New("test"))

	mockRepo.On("LikeReview", mock.Anything, "p1", "r1").Return(nil)
	mockRepo.On("List", mock.Anything).Return([]domain.Product{*validProduct()}, nil)

	notified := 0
	service.Subscribe(func(products []domain.Product) {
		notified++
	})

	err := service.LikeReview(context.Background(), "p1", "r1")

	assert.NoError(t, err)
	assert.Equal(t, 1, notified)
	mockRepo.AssertExpectations(t)
}

func TestService_LikeReview_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := NewService(mockRepo, nil, logger.New("test"))

	mockRepo.On("LikeReview", mock.Anything, "p1", "r1").Return(domain.ErrNotFound)

	err := service.LikeReview(context.Background(), "p1", "r1")

	assert.Equal(t, domain.ErrNotFound, err)
}
