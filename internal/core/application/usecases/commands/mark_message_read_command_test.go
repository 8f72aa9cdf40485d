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

func TestMarkMessageReadCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	buyerOrg := kernel.NewUUID()
	supplierOrg := kernel.NewUUID()
	o := buildConfirmedOrder(t, buyerOrg, kernel.NewUUID())
	require.NoError(t, o.Accept(supplierOrg, false, "", kernel.NewUUID(), time.Now()))

	msg, err := order.NewMessage(
		kernel.NewUUID(), o.ID(), kernel.NewUUID(),
		"gate code is 4711", nil, false, time.Now(),
	)
	require.NoError(t, err)

	cmd, err := commands.NewMarkMessageReadCommand(msg.ID(), buildActor(t, kernel.NewUUID(), supplierOrg))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetMessage", ctx, msg.ID()).Return(msg, nil).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("UpdateMessage", mock.Anything, msg).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkMessageReadCommandHandler(factory)
	read, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, read.ReadAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkMessageReadCommandHandler_Handle_StrangerForbidden(t *testing.T) {
	ctx := t.Context()
	o := buildConfirmedOrder(t, kernel.NewUUID(), kernel.NewUUID())

	msg, err := order.NewMessage(
		kernel.NewUUID(), o.ID(), kernel.NewUUID(),
		"hello", nil, false, time.Now(),
	)
	require.NoError(t, err)

	cmd, err := commands.NewMarkMessageReadCommand(msg.ID(), buildActor(t, kernel.NewUUID(), kernel.NewUUID()))
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetMessage", ctx, msg.ID()).Return(msg, nil).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkMessageReadCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrAccessDenied)
	require.Nil(t, msg.ReadAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
