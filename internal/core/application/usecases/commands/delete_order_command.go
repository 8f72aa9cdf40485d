package commands

import (
	"context"
	"errors"

	"agritrade/internal/core/application/access"
	"agritrade/internal/core/domain/model/actor"
	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes a draft order. Deletion is permitted only
// while the order is Pending and only to its creator; once published the
// order survives forever as audit history.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   actor.Actor

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete a draft order.
func NewDeleteOrderCommand(orderID kernel.UUID, a actor.Actor) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}
	cmd.orderID = orderID

	if err := a.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}
	cmd.actor = a

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the order to delete.
func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting identity.
func (c DeleteOrderCommand) Actor() actor.Actor {
	return c.actor
}

// DeleteOrderCommandHandler removes Pending draft orders.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for draft order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the order under the ownership policy, verifies it is
// still deletable and removes it.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := access.ResolveOrder(ctx, orderRepo, cmd.OrderID(), cmd.Actor(), access.Ownership)
	if err != nil {
		return err
	}

	if err = aggregate.EnsureDeletable(); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
