package commands_test

import (
	"context"
	"io"
	"log/slog"

	"ordersystem/internal/core/domain/model/kernel"
	"ordersystem/internal/core/domain/model/notification"
	"ordersystem/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Cancel(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockProductValidator struct{ mock.Mock }

func (m *MockProductValidator) Validate(ctx context.Context, productID string) (bool, error) {
	args := m.Called(ctx, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductValidator) AvailableProducts(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockNotificationPublisher records envelopes on a channel so tests can wait
// for the detached publish goroutine.
type MockNotificationPublisher struct {
	mock.Mock
	Published chan notification.Envelope
}

func NewMockNotificationPublisher() *MockNotificationPublisher {
	return &MockNotificationPublisher{Published: make(chan notification.Envelope, 8)}
}

func (m *MockNotificationPublisher) Publish(ctx context.Context, envelope notification.Envelope) error {
	args := m.Called(ctx, envelope)
	m.Published <- envelope
	return args.Error(0)
}
