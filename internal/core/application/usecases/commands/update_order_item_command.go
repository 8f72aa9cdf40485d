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

var ErrUpdateOrderItemCommandIsNotConstructed = errors.New(
	"UpdateOrderItemCommand must be created via NewUpdateOrderItemCommand constructor",
)

// UpdateOrderItemCommand changes the quantity, unit price or lot reference
// of a line on a Pending draft order.
type UpdateOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	itemID         kernel.UUID
	actor          actor.Actor
	quantity       int64
	unitPrice      kernel.Money
	inventoryLotID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateOrderItemCommand creates a command to edit an order line.
func NewUpdateOrderItemCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	a actor.Actor,
	quantity int64,
	unitPrice kernel.Money,
	inventoryLotID *kernel.UUID,
) (UpdateOrderItemCommand, error) {
	cmd := UpdateOrderItemCommand{
		quantity:       quantity,
		unitPrice:      unitPrice,
		inventoryLotID: inventoryLotID,
		guard:          guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return UpdateOrderItemCommand{}, err
	}
	cmd.orderID = orderID

	if err := itemID.Validate(); err != nil {
		return UpdateOrderItemCommand{}, err
	}
	cmd.itemID = itemID

	if err := a.Validate(); err != nil {
		return UpdateOrderItemCommand{}, err
	}
	cmd.actor = a

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemCommandIsNotConstructed)
}

// OrderID returns the draft order holding the line.
func (c UpdateOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the line to edit.
func (c UpdateOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Actor returns the acting identity.
func (c UpdateOrderItemCommand) Actor() actor.Actor {
	return c.actor
}

// Quantity returns the new quantity.
func (c UpdateOrderItemCommand) Quantity() int64 {
	return c.quantity
}

// UnitPrice returns the new price per unit.
func (c UpdateOrderItemCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

// InventoryLotID returns the new lot reference, or nil to clear it.
func (c UpdateOrderItemCommand) InventoryLotID() *kernel.UUID {
	return c.inventoryLotID
}

// UpdateOrderItemCommandHandler edits lines on draft orders.
type UpdateOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderItemCommandHandler creates a handler for order line edits.
func NewUpdateOrderItemCommandHandler(uowFactory OrderUoWFactory) UpdateOrderItemCommandHandler {
	return UpdateOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the order under the ownership policy and edits the line.
func (h *UpdateOrderItemCommandHandler) Handle(ctx context.Context, cmd UpdateOrderItemCommand) (*order.Order, error) {
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

	if err = aggregate.UpdateItem(cmd.ItemID(), cmd.Quantity(), cmd.UnitPrice(), cmd.InventoryLotID()); err != nil {
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
