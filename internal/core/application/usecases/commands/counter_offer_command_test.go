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

func TestNewCounterOfferCommand_RequiresChanges(t *testing.T) {
	a := buildActor(t, kernel.NewUUID(), kernel.NewUUID())

	_, err := commands.NewCounterOfferCommand(
		kernel.NewUUID(), a, "no changes attached",
		order.ProposedChanges{}, time.Now().Add(48*time.Hour),
	)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCounterOfferCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	buyerOrg := kernel.NewUUID()
	supplierOrg := kernel.NewUUID()
	o := buildConfirmedOrder(t, buyerOrg, kernel.NewUUID())
	require.NoError(t, o.Accept(supplierOrg, false, "", kernel.NewUUID(), time.Now()))

	terms := "net 45"
	cmd, err := commands.NewCounterOfferCommand(
		o.ID(), buildActor(t, kernel.NewUUID(), supplierOrg), "need longer payment terms",
		order.ProposedChanges{PaymentTerms: &terms}, time.Now().Add(48*time.Hour),
	)
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

	h := commands.NewCounterOfferCommandHandler(factory)
	countered, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Pending, countered.Status())
	require.NotNil(t, countered.CounterOffer())
	require.True(t, countered.CounterOffer().ProposedByOrgID().IsEqual(supplierOrg))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCounterOfferCommandHandler_Handle_StrangerForbidden(t *testing.T) {
	ctx := t.Context()
	o := buildConfirmedOrder(t, kernel.NewUUID(), kernel.NewUUID())

	terms := "net 45"
	cmd, err := commands.NewCounterOfferCommand(
		o.ID(), buildActor(t, kernel.NewUUID(), kernel.NewUUID()), "drive-by proposal",
		order.ProposedChanges{PaymentTerms: &terms}, time.Now().Add(48*time.Hour),
	)
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

	h := commands.NewCounterOfferCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAccessDenied)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
