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

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand moves an InTransit order to Delivered, recording
// the delivery confirmation and an optional quality assessment. Either
// party may complete.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	actor                actor.Actor
	deliveryConfirmation string
	qualityAssessment    string

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to record delivery.
func NewCompleteOrderCommand(
	orderID kernel.UUID,
	a actor.Actor,
	deliveryConfirmation string,
	qualityAssessment string,
) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		deliveryConfirmation: deliveryConfirmation,
		qualityAssessment:    qualityAssessment,
		guard:                guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return CompleteOrderCommand{}, err
	}
	cmd.orderID = orderID

	if err := a.Validate(); err != nil {
		return CompleteOrderCommand{}, err
	}
	cmd.actor = a

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the order being delivered.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting identity.
func (c CompleteOrderCommand) Actor() actor.Actor {
	return c.actor
}

// DeliveryConfirmation returns the delivery confirmation reference.
func (c CompleteOrderCommand) DeliveryConfirmation() string {
	return c.deliveryConfirmation
}

// QualityAssessment returns the optional quality notes.
func (c CompleteOrderCommand) QualityAssessment() string {
	return c.qualityAssessment
}

// CompleteOrderCommandHandler records order delivery.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the order under the participation policy and walks the
// InTransit to Delivered transition.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
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

	if err = aggregate.CompleteDelivery(
		cmd.DeliveryConfirmation(), cmd.QualityAssessment(),
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
