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

var ErrStartFulfillmentCommandIsNotConstructed = errors.New(
	"StartFulfillmentCommand must be created via NewStartFulfillmentCommand constructor",
)

// StartFulfillmentCommand moves a Confirmed order to InTransit. Only the
// assigned supplier organization may start fulfillment.
type StartFulfillmentCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	actor               actor.Actor
	trackingInfo        string
	estimatedCompletion *time.Time

	guard guard.ConstructorGuard
}

// NewStartFulfillmentCommand creates a command to start order fulfillment.
// Tracking info is mandatory; the estimated completion is optional.
func NewStartFulfillmentCommand(
	orderID kernel.UUID,
	a actor.Actor,
	trackingInfo string,
	estimatedCompletion *time.Time,
) (StartFulfillmentCommand, error) {
	cmd := StartFulfillmentCommand{
		estimatedCompletion: estimatedCompletion,
		guard:               guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return StartFulfillmentCommand{}, err
	}
	cmd.orderID = orderID

	if err := a.Validate(); err != nil {
		return StartFulfillmentCommand{}, err
	}
	cmd.actor = a

	if trackingInfo == "" {
		return StartFulfillmentCommand{}, errs.NewValueIsRequiredError("trackingInfo")
	}
	cmd.trackingInfo = trackingInfo

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrStartFulfillmentCommandIsNotConstructed)
}

// OrderID returns the order entering fulfillment.
func (c StartFulfillmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting identity.
func (c StartFulfillmentCommand) Actor() actor.Actor {
	return c.actor
}

// TrackingInfo returns the shipment tracking reference.
func (c StartFulfillmentCommand) TrackingInfo() string {
	return c.trackingInfo
}

// EstimatedCompletion returns the expected delivery instant, or nil.
func (c StartFulfillmentCommand) EstimatedCompletion() *time.Time {
	return c.estimatedCompletion
}

// StartFulfillmentCommandHandler moves orders into transit.
type StartFulfillmentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartFulfillmentCommandHandler creates a handler for fulfillment start.
func NewStartFulfillmentCommandHandler(uowFactory OrderUoWFactory) StartFulfillmentCommandHandler {
	return StartFulfillmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the order under the supplier-only policy and walks the
// Confirmed to InTransit transition.
func (h *StartFulfillmentCommandHandler) Handle(ctx context.Context, cmd StartFulfillmentCommand) (*order.Order, error) {
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
	aggregate, err := access.ResolveOrder(ctx, orderRepo, cmd.OrderID(), cmd.Actor(), access.SupplierOnly)
	if err != nil {
		return nil, err
	}

	if err = aggregate.StartFulfillment(
		cmd.TrackingInfo(), cmd.EstimatedCompletion(),
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
