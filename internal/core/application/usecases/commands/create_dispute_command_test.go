package commands_test

import (
	"testing"
	"time"

	"agritrade/internal/core/application/usecases/commands"
	"agritrade/internal/core/domain/model/dispute"
	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/core/domain/model/order"
	"agritrade/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func buildInTransitOrder(t *testing.T, buyerOrg, supplierOrg kernel.UUID) *order.Order {
	t.Helper()
	o := buildConfirmedOrder(t, buyerOrg, kernel.NewUUID())
	require.NoError(t, o.Accept(supplierOrg, false, "", kernel.NewUUID(), time.Now()))
	require.NoError(t, o.StartFulfillment("TRK-100", nil, kernel.NewUUID(), time.Now()))
	return o
}

func TestCreateDisputeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	buyerOrg := kernel.NewUUID()
	supplierOrg := kernel.NewUUID()
	o := buildInTransitOrder(t, buyerOrg, supplierOrg)

	raiser := kernel.NewUUID()
	cmd, err := commands.NewCreateDisputeCommand(
		o.ID(), buildActor(t, raiser, buyerOrg),
		"quality", "moisture above threshold", []string{"lab-report.pdf"},
		"partial refund", dispute.SeverityHigh,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	disputeRepo := new(MockDisputeRepository)
	uow := new(MockDisputeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("DisputeRepository").Return(disputeRepo).Once(),
		disputeRepo.On("Add", mock.Anything, mock.AnythingOfType("*dispute.Dispute")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDisputeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDisputeCommandHandler(factory)
	raised, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, dispute.StatusOpen, raised.Status())
	require.True(t, raised.OrderID().IsEqual(o.ID()))
	require.True(t, raised.RaisedByID().IsEqual(raiser))
	orderRepo.AssertExpectations(t)
	disputeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateDisputeCommandHandler_Handle_OrderNotInFulfillment(t *testing.T) {
	ctx := t.Context()
	buyerOrg := kernel.NewUUID()
	creator := kernel.NewUUID()
	o := buildConfirmedOrder(t, buyerOrg, creator)

	cmd, err := commands.NewCreateDisputeCommand(
		o.ID(), buildActor(t, creator, buyerOrg),
		"quality", "too early to dispute", nil, "", dispute.SeverityLow,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockDisputeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDisputeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDisputeCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateDisputeCommandHandler_Handle_StrangerForbidden(t *testing.T) {
	ctx := t.Context()
	o := buildInTransitOrder(t, kernel.NewUUID(), kernel.NewUUID())

	cmd, err := commands.NewCreateDisputeCommand(
		o.ID(), buildActor(t, kernel.NewUUID(), kernel.NewUUID()),
		"quality", "outsider complaint", nil, "", dispute.SeverityLow,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockDisputeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDisputeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateDisputeCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAccessDenied)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
