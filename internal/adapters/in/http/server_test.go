package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	adapter "orders/internal/adapters/in/http"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type fakeUoW struct {
	repo ports.OrderRepository
}

func (f *fakeUoW) Begin(_ context.Context) error          { return nil }
func (f *fakeUoW) Commit(_ context.Context) error         { return nil }
func (f *fakeUoW) Rollback(_ context.Context) error       { return nil }
func (f *fakeUoW) OrderRepository() ports.OrderRepository { return f.repo }

type fakeUoWFactory struct {
	repo ports.OrderRepository
}

func (f *fakeUoWFactory) Create() commands.OrderUoW {
	return &fakeUoW{repo: f.repo}
}

type MockProductClient struct{ mock.Mock }

func (m *MockProductClient) GetByID(ctx context.Context, productID kernel.UUID) (*ports.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Product), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, topic string, payload any) error {
	args := m.Called(ctx, topic, payload)
	return args.Error(0)
}

type serverFixture struct {
	repo      *MockOrderRepository
	products  *MockProductClient
	publisher *MockEventPublisher
	echo      *echo.Echo
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	repo := new(MockOrderRepository)
	products := new(MockProductClient)
	publisher := new(MockEventPublisher)
	factory := &fakeUoWFactory{repo: repo}

	server := adapter.NewServer(
		commands.NewCreateOrderCommandHandler(factory, products, publisher),
		commands.NewCancelOrderCommandHandler(factory, publisher),
		queries.GetOrderByIDQueryHandler{},
		queries.GetOrdersQueryHandler{},
	)

	e := echo.New()
	server.RegisterRoutes(e)

	return &serverFixture{
		repo:      repo,
		products:  products,
		publisher: publisher,
		echo:      e,
	}
}

func (f *serverFixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func availableProduct(t *testing.T, name string, price float64) *ports.Product {
	t.Helper()
	money, err := kernel.MoneyFromFloat(price)
	require.NoError(t, err)
	return &ports.Product{
		ID:          kernel.NewUUID(),
		Name:        name,
		Price:       money,
		IsAvailable: true,
	}
}

func orderInStatus(t *testing.T, target order.Status) *order.Order {
	t.Helper()

	aggregate, err := order.NewOrder(kernel.NewUUID(), nil, "")
	require.NoError(t, err)
	price, err := kernel.MoneyFromFloat(9.90)
	require.NoError(t, err)
	require.NoError(t, aggregate.AddItem(kernel.NewUUID(), "Pizza", 1, price))

	steps := []struct {
		status order.Status
		apply  func() error
	}{
		{order.PaymentApproved, aggregate.ApprovePayment},
		{order.InProduction, aggregate.StartProduction},
		{order.Ready, aggregate.MarkReady},
		{order.Completed, aggregate.Complete},
	}
	for _, step := range steps {
		if aggregate.Status() == target {
			break
		}
		require.NoError(t, step.apply())
		if step.status == target {
			break
		}
	}

	require.Equal(t, target, aggregate.Status())
	return aggregate
}

func TestServer_Health(t *testing.T) {
	fixture := newServerFixture(t)

	rec := fixture.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestServer_CreateOrder_Success(t *testing.T) {
	fixture := newServerFixture(t)
	product := availableProduct(t, "Burger", 10.50)

	fixture.products.On("GetByID", mock.Anything, product.ID).Return(product, nil).Once()
	fixture.repo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	fixture.publisher.On("Publish", mock.Anything, order.TopicOrderCreated, mock.Anything).
		Return(nil).Once()

	body := fmt.Sprintf(
		`{"customerName":"Alice","items":[{"productId":"%s","quantity":2}]}`,
		product.ID,
	)
	rec := fixture.do(http.MethodPost, "/api/v1/orders", body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var response adapter.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.NotEmpty(t, response.ID)
	assert.Equal(t, "Alice", response.CustomerName)
	assert.Equal(t, "Pending", response.Status)
	assert.Equal(t, "21", response.TotalAmount.String())
	require.Len(t, response.Items, 1)
	assert.Equal(t, "Burger", response.Items[0].ProductName)
	assert.Equal(t, 2, response.Items[0].Quantity)

	fixture.repo.AssertExpectations(t)
	fixture.publisher.AssertExpectations(t)
}

func TestServer_CreateOrder_InvalidBody(t *testing.T) {
	fixture := newServerFixture(t)

	rec := fixture.do(http.MethodPost, "/api/v1/orders", `{"customerName": 42`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fixture.repo.AssertNotCalled(t, "Add")
}

func TestServer_CreateOrder_InvalidProductID(t *testing.T) {
	fixture := newServerFixture(t)

	body := `{"customerName":"Alice","items":[{"productId":"not-a-uuid","quantity":1}]}`
	rec := fixture.do(http.MethodPost, "/api/v1/orders", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fixture.products.AssertNotCalled(t, "GetByID")
}

func TestServer_CreateOrder_ProductUnavailable(t *testing.T) {
	fixture := newServerFixture(t)
	product := availableProduct(t, "Burger", 10.50)
	product.IsAvailable = false

	fixture.products.On("GetByID", mock.Anything, product.ID).Return(product, nil).Once()

	body := fmt.Sprintf(
		`{"customerName":"Alice","items":[{"productId":"%s","quantity":1}]}`,
		product.ID,
	)
	rec := fixture.do(http.MethodPost, "/api/v1/orders", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fixture.repo.AssertNotCalled(t, "Add")
	fixture.publisher.AssertNotCalled(t, "Publish")
}

func TestServer_CreateOrder_EmptyItems(t *testing.T) {
	fixture := newServerFixture(t)

	rec := fixture.do(http.MethodPost, "/api/v1/orders", `{"customerName":"Alice","items":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fixture.repo.AssertNotCalled(t, "Add")
}

func TestServer_CancelOrder_Success(t *testing.T) {
	fixture := newServerFixture(t)
	aggregate := orderInStatus(t, order.Pending)

	fixture.repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	fixture.repo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	fixture.publisher.On("Publish", mock.Anything, order.TopicOrderCancelled, mock.Anything).
		Return(nil).Once()

	target := fmt.Sprintf("/api/v1/orders/%s/cancel", aggregate.ID())
	rec := fixture.do(http.MethodPost, target, `{"reason":"customer changed their mind"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, order.Cancelled, aggregate.Status())
	fixture.repo.AssertExpectations(t)
}

func TestServer_CancelOrder_NotFound(t *testing.T) {
	fixture := newServerFixture(t)
	orderID := kernel.NewUUID()

	fixture.repo.On("Get", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once()

	target := fmt.Sprintf("/api/v1/orders/%s/cancel", orderID)
	rec := fixture.do(http.MethodPost, target, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_CancelOrder_CompletedConflicts(t *testing.T) {
	fixture := newServerFixture(t)
	aggregate := orderInStatus(t, order.Completed)

	fixture.repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

	target := fmt.Sprintf("/api/v1/orders/%s/cancel", aggregate.ID())
	rec := fixture.do(http.MethodPost, target, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	fixture.repo.AssertNotCalled(t, "Update")
	fixture.publisher.AssertNotCalled(t, "Publish")
}

func TestServer_CancelOrder_InvalidID(t *testing.T) {
	fixture := newServerFixture(t)

	rec := fixture.do(http.MethodPost, "/api/v1/orders/not-a-uuid/cancel", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fixture.repo.AssertNotCalled(t, "Get")
}

func TestServer_GetOrderByID_InvalidID(t *testing.T) {
	fixture := newServerFixture(t)

	rec := fixture.do(http.MethodGet, "/api/v1/orders/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_GetOrders_InvalidStatusFilter(t *testing.T) {
	fixture := newServerFixture(t)

	rec := fixture.do(http.MethodGet, "/api/v1/orders?status=Teleported", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
