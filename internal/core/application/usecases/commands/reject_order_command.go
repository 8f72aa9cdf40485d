package commands

import (
	"context"
	"errors"
	"time"

	"agritrade/internal/core/application/access"
	"agritrade/internal/core/domain/model/actor"
	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/core/domain/model/order"
	"agritrade/internal/pkg/errs"
	"agritrade/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand cancels an order from any non-terminal status,
// recording the reason. Either party may reject; the order is never
// deleted, so the message and event trail survives.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   actor.Actor
	reason  string
	message string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command to reject an order. The reason
// is mandatory; the message is an optional longer note.
func NewRejectOrderCommand(
	orderID kernel.UUID,
	a actor.Actor,
	reason string,
	message string,
) (RejectOrderCommand, error) {
	cmd := RejectOrderCommand{
		message: message,
		guard:   guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return RejectOrderCommand{}, err
	}
	cmd.orderID = orderID

	if err := a.Validate(); err != nil {
		return RejectOrderCommand{}, err
	}
	cmd.actor = a

	if reason == "" {
		return RejectOrderCommand{}, errs.NewValueIsRequiredError("reason")
	}
	cmd.reason = reason

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderID returns the order to reject.
func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting identity.
func (c RejectOrderCommand) Actor() actor.Actor {
	return c.actor
}

// Reason returns the mandatory rejection reason.
func (c RejectOrderCommand) Reason() string {
	return c.reason
}

// Message returns the optional longer note.
func (c RejectOrderCommand) Message() string {
	return c.message
}

// RejectOrderCommandHandler cancels orders on behalf of either party.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectOrderCommandHandler creates a handler for order rejection.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the order under the participation policy and cancels it.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) (*order.Order, error) {
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
	aggregate, err := access.ResolveOrder(ctx, orderRepo, cmd.OrderID(), cmd.Actor(), access.Participation)
	if err != nil {
		return nil, err
	}

	if err = aggregate.Reject(cmd.Reason(), cmd.Message(), cmd.Actor().UserID(), time.Now()); err != nil {
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
