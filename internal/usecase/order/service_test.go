package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/electromart/storefront/internal/domain"
	"github.com/electromart/storefront/internal/pkg/logger"
)

// MockOrderRepository is a mock implementation of domain.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

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
	admin    = &domain.User{ID: "a1", IsAdmin: true}
	customer = &domain.User{ID: "u1"}
)

func newTestService(orders *MockOrderRepository, users *MockUserRepository, products *MockProductRepository) *Service {
	return NewService(orders, users, products, logger.New("test"))
}

func TestService_ListMine_ReturnsOwnOrders(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	service := newTestService(mockOrders, new(MockUserRepository), new(MockProductRepository))

	expected := []domain.Order{{ID: "order_1", UserID: "u1"}}
	mockOrders.On("ListByUser", mock.Anything, "u1").Return(expected, nil)

	orders, err := service.ListMine(context.Background(), customer)

	assert.NoError(t, err)
	assert.Equal(t, expected, orders)
}

func TestService_ListMine_Anonymous(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	service := newTestService(mockOrders, new(MockUserRepository), new(MockProductRepository))

	_, err := service.ListMine(context.Background(), nil)

	assert.Equal(t, domain.ErrUnauthorized, err)
	mockOrders.AssertNotCalled(t, "ListByUser")
}

func TestService_Get_OwnerReadsOwnOrder(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	service := newTestService(mockOrders, new(MockUserRepository), new(MockProductRepository))

	mockOrders.On("Get", mock.Anything, "order_1").Return(&domain.Order{ID: "order_1", UserID: "u1"}, nil)

	order, err := service.Get(context.Background(), customer, "order_1")

	assert.NoError(t, err)
	assert.Equal(t, "order_1", order.ID)
}

func TestService_Get_CrossUserDenied(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	service := newTestService(mockOrders, new(MockUserRepository), new(MockProductRepository))

	mockOrders.On("Get", mock.Anything, "order_1").Return(&domain.Order{ID: "order_1", UserID: "u2"}, nil)

	_, err := service.Get(context.Background(), customer, "order_1")

	assert.Equal(t, domain.ErrForbidden, err)
}

func TestService_Get_AdminReadsAnyOrder(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	service := newTestService(mockOrders, new(MockUserRepository), new(MockProductRepository))

	mockOrders.On("Get", mock.Anything, "order_1").Return(&domain.Order{ID: "order_1", UserID: "u2"}, nil)

	order, err := service.Get(context.Background(), admin, "order_1")

	assert.NoError(t, err)
	assert.Equal(t, "order_1", order.ID)
}

func TestService_ListAll_AdminOnly(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	service := newTestService(mockOrders, new(MockUserRepository), new(MockProductRepository))

	_, err := service.ListAll(context.Background(), customer)
	assert.Equal(t, domain.ErrForbidden, err)

	mockOrders.On("List", mock.Anything).Return([]domain.Order{{ID: "order_1"}}, nil)

	orders, err := service.ListAll(context.Background(), admin)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestService_UpdateStatus_AdminOnly(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	service := newTestService(mockOrders, new(MockUserRepository), new(MockProductRepository))

	_, err := service.UpdateStatus(context.Background(), customer, "order_1", domain.StatusShipped)
	assert.Equal(t, domain.ErrForbidden, err)

	_, err = service.UpdateStatus(context.Background(), nil, "order_1", domain.StatusShipped)
	assert.Equal(t, domain.ErrUnauthorized, err)

	mockOrders.AssertNotCalled(t, "UpdateStatus")
}

func TestService_UpdateStatus_PropagatesConflict(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	service := newTestService(mockOrders, new(MockUserRepository), new(MockProductRepository))

	mockOrders.On("UpdateStatus", mock.Anything, "order_1", domain.StatusPending).Return(nil, domain.ErrConflict)

	_, err := service.UpdateStatus(context.Background(), admin, "order_1", domain.StatusPending)

	assert.Equal(t, domain.ErrConflict, err)
}

func TestService_GetStats_Aggregates(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockUsers := new(MockUserRepository)
	mockProducts := new(MockProductRepository)
	service := newTestService(mockOrders, mockUsers, mockProducts)

	mockUsers.On("List", mock.Anything).Return([]domain.User{{ID: "u1"}, {ID: "u2"}}, nil)
	mockOrders.On("List", mock.Anything).Return([]domain.Order{
		{ID: "order_1", TotalPrice: 2598, Status: domain.StatusPending},
		{ID: "order_2", TotalPrice: 7999, Status: domain.StatusDelivered},
	}, nil)
	mockProducts.On("List", mock.Anything).Return([]domain.Product{
		{ID: "p1", InStock: true},
		{ID: "p2", InStock: false},
		{ID: "p3", InStock: true},
	}, nil)

	stats, err := service.GetStats(context.Background(), admin)

	assert.NoError(t, err)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, int64(10597), stats.TotalSales)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, 1, stats.OutOfStock)
}

func TestService_GetStats_NonAdmin(t *testing.T) {
	service := newTestService(new(MockOrderRepository), new(MockUserRepository), new(MockProductRepository))

	_, err := service.GetStats(context.Background(), customer)

	assert.Equal(t, domain.ErrForbidden, err)
}
