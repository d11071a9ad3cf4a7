package queue_test

import (
	"context"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockQueueClient struct{ mock.Mock }

func (m *MockQueueClient) Receive(
	ctx context.Context,
	maxMessages int,
	waitSeconds int,
) ([]ports.QueueMessage, error) {
	args := m.Called(ctx, maxMessages, waitSeconds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.QueueMessage), args.Error(1)
}

func (m *MockQueueClient) Delete(ctx context.Context, receiptHandle string) error {
	args := m.Called(ctx, receiptHandle)
	return args.Error(0)
}

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

// fakeUoW is a pass-through unit of work over a mocked repository;
// router tests care about use-case outcomes, not transaction mechanics.
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

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, topic string, payload any) error {
	args := m.Called(ctx, topic, payload)
	return args.Error(0)
}
