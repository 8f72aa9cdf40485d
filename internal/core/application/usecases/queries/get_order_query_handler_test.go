package queries_test

import (
	"context"
	"testing"
	"time"

	"agritrade/internal/core/application/usecases/queries"
	"agritrade/internal/core/domain/model/actor"
	"agritrade/internal/core/domain/model/dispute"
	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/core/domain/model/order"
	"agritrade/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) NextNumber(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderReader) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderReader) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderReader) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderReader) GetWithExpiredCounterOffers(ctx context.Context, now time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderReader) AddMessage(ctx context.Context, msg *order.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockOrderReader) GetMessage(ctx context.Context, id kernel.UUID) (*order.Message, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*order.Message), args.Error(1)
}

func (m *MockOrderReader) UpdateMessage(ctx context.Context, msg *order.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockOrderReader) GetMessages(ctx context.Context, orderID kernel.UUID) ([]*order.Message, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Message), args.Error(1)
}

type MockDisputeReader struct{ mock.Mock }

func (m *MockDisputeReader) Add(ctx context.Context, d *dispute.Dispute) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDisputeReader) Update(ctx context.Context, d *dispute.Dispute) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDisputeReader) Get(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*dispute.Dispute), args.Error(1)
}

func (m *MockDisputeReader) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*dispute.Dispute, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dispute.Dispute), args.Error(1)
}

func buildOrderDocument(t *testing.T, buyerOrg kernel.UUID) *order.Order {
	t.Helper()

	price, err := kernel.NewMoney(850)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), nil, 500, price)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), 1001, order.TypeBuy, "Winter wheat",
		buyerOrg, kernel.NewUUID(),
		time.Now().Add(72*time.Hour), "12 Mill Road", "net 30", "",
		[]*order.Item{item},
	)
	require.NoError(t, err)
	return o
}

func TestGetOrderQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	buyerOrg := kernel.NewUUID()
	o := buildOrderDocument(t, buyerOrg)

	msg, err := order.NewMessage(kernel.NewUUID(), o.ID(), kernel.NewUUID(), "hello", nil, false, time.Now())
	require.NoError(t, err)

	a, err := actor.NewActor(kernel.NewUUID(), buyerOrg, false)
	require.NoError(t, err)
	query, err := queries.NewGetOrderQuery(o.ID(), a)
	require.NoError(t, err)

	orders := new(MockOrderReader)
	disputes := new(MockDisputeReader)
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orders.On("GetMessages", ctx, o.ID()).Return([]*order.Message{msg}, nil).Once()
	disputes.On("GetByOrder", ctx, o.ID()).Return([]*dispute.Dispute{}, nil).Once()

	h := queries.NewGetOrderQueryHandler(orders, disputes)
	resp, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.True(t, resp.Order.IsEqual(o))
	require.Len(t, resp.Messages, 1)
	require.Empty(t, resp.Disputes)
	orders.AssertExpectations(t)
	disputes.AssertExpectations(t)
}

func TestGetOrderQueryHandler_Handle_StrangerForbidden(t *testing.T) {
	ctx := t.Context()
	o := buildOrderDocument(t, kernel.NewUUID())

	a, err := actor.NewActor(kernel.NewUUID(), kernel.NewUUID(), false)
	require.NoError(t, err)
	query, err := queries.NewGetOrderQuery(o.ID(), a)
	require.NoError(t, err)

	orders := new(MockOrderReader)
	disputes := new(MockDisputeReader)
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

	h := queries.NewGetOrderQueryHandler(orders, disputes)
	_, err = h.Handle(ctx, query)
	require.ErrorIs(t, err, errs.ErrAccessDenied)
	orders.AssertNotCalled(t, "GetMessages", mock.Anything, mock.Anything)
}
