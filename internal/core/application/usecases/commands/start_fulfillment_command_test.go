package commands_test

import (
	"testing"
	"time"

	"agritrade/internal/core/application/usecases/commands"
	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/core/domain/model/order"
	"agritrade/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartFulfillmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	supplierOrg := kernel.NewUUID()
	o := buildConfirmedOrder(t, kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, o.Accept(supplierOrg, false, "", kernel.NewUUID(), time.Now()))

	eta := time.Now().Add(48 * time.Hour)
	cmd, err := commands.NewStartFulfillmentCommand(o.ID(), buildActor(t, kernel.NewUUID(), supplierOrg), "TRK-100", &eta)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartFulfillmentCommandHandler(factory)
	started, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.InTransit, started.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestStartFulfillmentCommandHandler_Handle_BuyerForbidden(t *testing.T) {
	ctx := t.Context()
	buyerOrg := kernel.NewUUID()
	supplierOrg := kernel.NewUUID()
	o := buildConfirmedOrder(t, buyerOrg, kernel.NewUUID())
	require.NoError(t, o.Accept(supplierOrg, false, "", kernel.NewUUID(), time.Now()))

	cmd, err := commands.NewStartFulfillmentCommand(o.ID(), buildActor(t, kernel.NewUUID(), buyerOrg), "TRK-100", nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewStartFulfillmentCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAccessDenied)
	require.Equal(t, order.Confirmed, o.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
