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

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand lets a counterparty organization take the supplier
// side of a Confirmed order. With the negotiation flag the order returns
// to Pending for another bargaining round instead of staying Confirmed.
//
// The counterparty policy only proves the actor is not the buyer; the
// aggregate itself refuses self-supply and supplier displacement at write
// time, inside the same transaction.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	actor               actor.Actor
	requiresNegotiation bool
	message             string

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept a published order.
func NewAcceptOrderCommand(
	orderID kernel.UUID,
	a actor.Actor,
	requiresNegotiation bool,
	message string,
) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		requiresNegotiation: requiresNegotiation,
		message:             message,
		guard:               guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return AcceptOrderCommand{}, err
	}
	cmd.orderID = orderID

	if err := a.Validate(); err != nil {
		return AcceptOrderCommand{}, err
	}
	cmd.actor = a

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the order to accept.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting identity.
func (c AcceptOrderCommand) Actor() actor.Actor {
	return c.actor
}

// RequiresNegotiation reports whether the acceptor wants another
// bargaining round before fulfillment.
func (c AcceptOrderCommand) RequiresNegotiation() bool {
	return c.requiresNegotiation
}

// Message returns the optional note attached to the acceptance.
func (c AcceptOrderCommand) Message() string {
	return c.message
}

// AcceptOrderCommandHandler assigns the supplier side of published orders.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the order under the counterparty policy and assigns the
// actor's organization as the supplier.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
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
	aggregate, err := access.ResolveOrder(ctx, orderRepo, cmd.OrderID(), cmd.Actor(), access.Counterparty)
	if err != nil {
		return nil, err
	}

	if err = aggregate.Accept(
		cmd.Actor().OrganizationID(), cmd.RequiresNegotiation(), cmd.Message(),
		cmd.Actor().UserID(), time.Now(),
	); err != nil {
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
