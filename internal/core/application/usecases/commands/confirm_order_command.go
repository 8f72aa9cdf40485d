package commands

import (
	"context"
	"errors"
	"time"

	"agritrade/internal/core/application/access"
	"agritrade/internal/core/domain/model/actor"
	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/core/domain/model/order"
	"agritrade/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand stamps the finalize marker on a Confirmed order.
// Repeating the confirmation is a documented no-op.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   actor.Actor

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to finalize a confirmed order.
func NewConfirmOrderCommand(orderID kernel.UUID, a actor.Actor) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ConfirmOrderCommand{}, err
	}
	cmd.orderID = orderID

	if err := a.Validate(); err != nil {
		return ConfirmOrderCommand{}, err
	}
	cmd.actor = a

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the order to finalize.
func (c ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting identity.
func (c ConfirmOrderCommand) Actor() actor.Actor {
	return c.actor
}

// ConfirmOrderCommandHandler finalizes confirmed orders.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for order finalization.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the order under the ownership policy and stamps the
// confirmation timestamp.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Confirm(cmd.Actor().UserID(), time.Now()); err != nil {
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
