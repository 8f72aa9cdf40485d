package commands_test

import (
	"context"
	"testing"
	"time"

	"agritrade/internal/core/application/usecases/commands"
	"agritrade/internal/core/domain/model/actor"
	"agritrade/internal/core/domain/model/dispute"
	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/core/domain/model/order"
	"agritrade/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextNumber(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

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

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) GetWithExpiredCounterOffers(ctx context.Context, now time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) AddMessage(ctx context.Context, msg *order.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockOrderRepository) GetMessage(ctx context.Context, id kernel.UUID) (*order.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Message), args.Error(1)
}

func (m *MockOrderRepository) UpdateMessage(ctx context.Context, msg *order.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockOrderRepository) GetMessages(ctx context.Context, orderID kernel.UUID) ([]*order.Message, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Message), args.Error(1)
}

type MockDisputeRepository struct{ mock.Mock }

func (m *MockDisputeRepository) Add(ctx context.Context, d *dispute.Dispute) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDisputeRepository) Update(ctx context.Context, d *dispute.Dispute) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDisputeRepository) Get(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispute.Dispute), args.Error(1)
}

func (m *MockDisputeRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*dispute.Dispute, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dispute.Dispute), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDisputeUoW struct{ mock.Mock }

func (m *MockDisputeUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDisputeUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDisputeUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDisputeUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockDisputeUoW) DisputeRepository() ports.DisputeRepository {
	args := m.Called()
	return args.Get(0).(ports.DisputeRepository)
}

type MockDisputeUoWFactory struct{ mock.Mock }

func (m *MockDisputeUoWFactory) Create() commands.DisputeUoW {
	args := m.Called()
	return args.Get(0).(commands.DisputeUoW)
}

// Test fixtures shared across the handler tests.

func buildActor(t *testing.T, userID, orgID kernel.UUID) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(userID, orgID, false)
	require.NoError(t, err)
	return a
}

func buildPendingOrder(t *testing.T, buyerOrg, creator kernel.UUID) *order.Order {
	t.Helper()

	price, err := kernel.NewMoney(850)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), nil, 500, price)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), 1001, order.TypeBuy, "Winter wheat",
		buyerOrg, creator,
		time.Now().Add(72*time.Hour), "12 Mill Road", "net 30", "",
		[]*order.Item{item},
	)
	require.NoError(t, err)
	return o
}

func buildConfirmedOrder(t *testing.T, buyerOrg, creator kernel.UUID) *order.Order {
	t.Helper()
	o := buildPendingOrder(t, buyerOrg, creator)
	require.NoError(t, o.Publish(creator, time.Now()))
	return o
}
