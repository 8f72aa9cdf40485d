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

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand appends a line to a Pending draft order.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	actor          actor.Actor
	commodityID    kernel.UUID
	inventoryLotID *kernel.UUID
	quantity       int64
	unitPrice      kernel.Money

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add an order line. Quantity
// and unit price are validated by the item constructor at handling time;
// the command only checks identity-level inputs.
func NewAddOrderItemCommand(
	orderID kernel.UUID,
	a actor.Actor,
	commodityID kernel.UUID,
	inventoryLotID *kernel.UUID,
	quantity int64,
	unitPrice kernel.Money,
) (AddOrderItemCommand, error) {
	cmd := AddOrderItemCommand{
		inventoryLotID: inventoryLotID,
		quantity:       quantity,
		unitPrice:      unitPrice,
		guard:          guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return AddOrderItemCommand{}, err
	}
	cmd.orderID = orderID

	if err := a.Validate(); err != nil {
		return AddOrderItemCommand{}, err
	}
	cmd.actor = a

	if err := commodityID.Validate(); err != nil {
		return AddOrderItemCommand{}, err
	}
	cmd.commodityID = commodityID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the draft order to extend.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting identity.
func (c AddOrderItemCommand) Actor() actor.Actor {
	return c.actor
}

// CommodityID returns the commodity reference of the new line.
func (c AddOrderItemCommand) CommodityID() kernel.UUID {
	return c.commodityID
}

// InventoryLotID returns the optional inventory lot reference.
func (c AddOrderItemCommand) InventoryLotID() *kernel.UUID {
	return c.inventoryLotID
}

// Quantity returns the ordered quantity.
func (c AddOrderItemCommand) Quantity() int64 {
	return c.quantity
}

// UnitPrice returns the price per unit.
func (c AddOrderItemCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

// AddOrderItemCommandHandler appends lines to draft orders.
type AddOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for adding order lines.
func NewAddOrderItemCommandHandler(uowFactory OrderUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the order under the ownership policy and appends the line.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) (*order.Order, error) {
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

	item, err := order.NewItem(
		kernel.NewUUID(), cmd.CommodityID(), cmd.InventoryLotID(),
		cmd.Quantity(), cmd.UnitPrice(),
	)
	if err != nil {
		return nil, err
	}

	if err = aggregate.AddItem(item); err != nil {
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
