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

var ErrPublishOrderCommandIsNotConstructed = errors.New(
	"PublishOrderCommand must be created via NewPublishOrderCommand constructor",
)

// PublishOrderCommand moves a draft order to Confirmed, making it visible
// to counterparty organizations. Only the creator may publish, and the
// order must carry at least one item.
type PublishOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   actor.Actor

	guard guard.ConstructorGuard
}

// NewPublishOrderCommand creates a command to publish a draft order.
func NewPublishOrderCommand(orderID kernel.UUID, a actor.Actor) (PublishOrderCommand, error) {
	cmd := PublishOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return PublishOrderCommand{}, err
	}
	cmd.orderID = orderID

	if err := a.Validate(); err != nil {
		return PublishOrderCommand{}, err
	}
	cmd.actor = a

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PublishOrderCommand) Validate() error {
	return c.guard.Validate(ErrPublishOrderCommandIsNotConstructed)
}

// OrderID returns the order to publish.
func (c PublishOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting identity.
func (c PublishOrderCommand) Actor() actor.Actor {
	return c.actor
}

// PublishOrderCommandHandler publishes draft orders to the marketplace.
type PublishOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPublishOrderCommandHandler creates a handler for order publication.
func NewPublishOrderCommandHandler(uowFactory OrderUoWFactory) PublishOrderCommandHandler {
	return PublishOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the order under the ownership policy and walks the
// Pending to Confirmed transition.
func (h *PublishOrderCommandHandler) Handle(ctx context.Context, cmd PublishOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Publish(cmd.Actor().UserID(), time.Now()); err != nil {
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
