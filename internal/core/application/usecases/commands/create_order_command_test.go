package commands_test

import (
	"errors"
	"testing"
	"time"

	"agritrade/internal/core/application/usecases/commands"
	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()

	price, err := kernel.NewMoney(850)
	require.NoError(t, err)

	a := buildActor(t, kernel.NewUUID(), kernel.NewUUID())
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), a, order.TypeBuy, "Winter wheat",
		time.Now().Add(72*time.Hour), "12 Mill Road", "net 30", "",
		[]commands.CreateOrderItemParams{
			{CommodityID: kernel.NewUUID(), Quantity: 500, UnitPrice: price},
		},
	)
	require.NoError(t, err)
	return cmd
}

func TestNewCreateOrderCommand_Validation(t *testing.T) {
	price, err := kernel.NewMoney(850)
	require.NoError(t, err)
	a := buildActor(t, kernel.NewUUID(), kernel.NewUUID())
	items := []commands.CreateOrderItemParams{
		{CommodityID: kernel.NewUUID(), Quantity: 500, UnitPrice: price},
	}

	_, err = commands.NewCreateOrderCommand(
		kernel.UUID{}, a, order.TypeBuy, "Winter wheat",
		time.Now(), "12 Mill Road", "", "", items,
	)
	require.Error(t, err, "empty order id")

	_, err = commands.NewCreateOrderCommand(
		kernel.NewUUID(), a, order.TypeBuy, "",
		time.Now(), "12 Mill Road", "", "", items,
	)
	require.Error(t, err, "empty title")

	_, err = commands.NewCreateOrderCommand(
		kernel.NewUUID(), a, order.TypeBuy, "Winter wheat",
		time.Now(), "12 Mill Road", "", "", nil,
	)
	require.Error(t, err, "no items")
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("NextNumber", ctx).Return(int64(1042), nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, int64(1042), created.Number())
	require.Equal(t, order.Pending, created.Status())
	require.True(t, created.BuyerOrgID().IsEqual(cmd.Actor().OrganizationID()))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("NextNumber", ctx).Return(int64(1042), nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("NextNumber", ctx).Return(int64(1042), nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
