package commands

import (
	"context"
	"errors"

	"agritrade/internal/core/application/access"
	"agritrade/internal/core/domain/model/actor"
	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/core/domain/model/order"
	"agritrade/internal/pkg/errs"
	"agritrade/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand patches the editable fields of a Pending draft:
// title, delivery details and free-form terms. Only the creator may edit.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   actor.Actor
	changes order.ProposedChanges

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to patch a draft order.
// At least one field change must be present.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	a actor.Actor,
	changes order.ProposedChanges,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(a),
		cmd.setChanges(changes),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order to patch.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting identity.
func (c UpdateOrderCommand) Actor() actor.Actor {
	return c.actor
}

// Changes returns the requested field patch.
func (c UpdateOrderCommand) Changes() order.ProposedChanges {
	return c.changes
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *UpdateOrderCommand) setChanges(changes order.ProposedChanges) error {
	if changes.IsEmpty() {
		return errs.NewValueIsRequiredError("changes")
	}

	c.changes = changes
	return nil
}

// UpdateOrderCommandHandler applies a field patch to a Pending draft order.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for draft order edits.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the order under the ownership policy, applies the patch
// and persists with a version-conditional write.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	if err = aggregate.UpdateDetails(cmd.Changes()); err != nil {
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
