package commands

import (
	"context"
	"errors"

	"agritrade/internal/core/application/access"
	"agritrade/internal/core/domain/model/actor"
	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/core/domain/model/order"
	"agritrade/internal/pkg/guard"
)

var ErrRemoveOrderItemCommandIsNotConstructed = errors.New(
	"RemoveOrderItemCommand must be created via NewRemoveOrderItemCommand constructor",
)

// RemoveOrderItemCommand removes a line from a Pending draft order.
type RemoveOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	actor   actor.Actor

	guard guard.ConstructorGuard
}

// NewRemoveOrderItemCommand creates a command to remove an order line.
func NewRemoveOrderItemCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	a actor.Actor,
) (RemoveOrderItemCommand, error) {
	cmd := RemoveOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return RemoveOrderItemCommand{}, err
	}
	cmd.orderID = orderID

	if err := itemID.Validate(); err != nil {
		return RemoveOrderItemCommand{}, err
	}
	cmd.itemID = itemID

	if err := a.Validate(); err != nil {
		return RemoveOrderItemCommand{}, err
	}
	cmd.actor = a

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderItemCommandIsNotConstructed)
}

// OrderID returns the draft order holding the line.
func (c RemoveOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the line to remove.
func (c RemoveOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Actor returns the acting identity.
func (c RemoveOrderItemCommand) Actor() actor.Actor {
	return c.actor
}

// RemoveOrderItemCommandHandler removes lines from draft orders.
type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderItemCommandHandler creates a handler for order line removal.
func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the order under the ownership policy and removes the line.
func (h *RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := access.ResolveOrder(ctx, orderRepo, cmd.OrderID(), cmd.Actor(), access.Ownership)
	if err != nil {
		return nil, err
	}

	if err = aggregate.RemoveItem(cmd.ItemID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
