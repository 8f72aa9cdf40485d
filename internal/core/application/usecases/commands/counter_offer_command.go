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

var ErrCounterOfferCommandIsNotConstructed = errors.New(
	"CounterOfferCommand must be created via NewCounterOfferCommand constructor",
)

// CounterOfferCommand records a negotiation proposal against an order and
// returns it to Pending. The proposal carries the suggested field changes
// and an advisory expiry; it never changes the parties.
type CounterOfferCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actor     actor.Actor
	message   string
	changes   order.ProposedChanges
	expiresAt time.Time

	guard guard.ConstructorGuard
}

// NewCounterOfferCommand creates a command to propose changed terms.
// The proposal must change at least one field and carry a future expiry.
func NewCounterOfferCommand(
	orderID kernel.UUID,
	a actor.Actor,
	message string,
	changes order.ProposedChanges,
	expiresAt time.Time,
) (CounterOfferCommand, error) {
	cmd := CounterOfferCommand{
		message: message,
		guard:   guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return CounterOfferCommand{}, err
	}
	cmd.orderID = orderID

	if err := a.Validate(); err != nil {
		return CounterOfferCommand{}, err
	}
	cmd.actor = a

	if changes.IsEmpty() {
		return CounterOfferCommand{}, errs.NewValueIsRequiredError("proposed changes")
	}
	cmd.changes = changes

	if expiresAt.IsZero() {
		return CounterOfferCommand{}, errs.NewValueIsRequiredError("expiresAt")
	}
	cmd.expiresAt = expiresAt

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CounterOfferCommand) Validate() error {
	return c.guard.Validate(ErrCounterOfferCommandIsNotConstructed)
}

// OrderID returns the order under negotiation.
func (c CounterOfferCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting identity.
func (c CounterOfferCommand) Actor() actor.Actor {
	return c.actor
}

// Message returns the note accompanying the proposal.
func (c CounterOfferCommand) Message() string {
	return c.message
}

// Changes returns the proposed field changes.
func (c CounterOfferCommand) Changes() order.ProposedChanges {
	return c.changes
}

// ExpiresAt returns the advisory proposal deadline.
func (c CounterOfferCommand) ExpiresAt() time.Time {
	return c.expiresAt
}

// CounterOfferCommandHandler records negotiation proposals.
type CounterOfferCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCounterOfferCommandHandler creates a handler for counter-offers.
func NewCounterOfferCommandHandler(uowFactory OrderUoWFactory) CounterOfferCommandHandler {
	return CounterOfferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the order under the participation policy and records the
// proposal, returning the order to Pending.
func (h *CounterOfferCommandHandler) Handle(ctx context.Context, cmd CounterOfferCommand) (*order.Order, error) {
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

	if err = aggregate.Counter(
		cmd.Actor().OrganizationID(), cmd.Message(), cmd.Changes(), cmd.ExpiresAt(),
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
