package commands

import (
	"context"
	"errors"
	"time"

	"agritrade/internal/core/domain/model/actor"
	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/core/domain/model/order"
	"agritrade/internal/pkg/errs"
	"agritrade/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderItemParams describes one line of a new draft order. The item
// identity is assigned by the handler.
type CreateOrderItemParams struct {
	CommodityID    kernel.UUID
	InventoryLotID *kernel.UUID
	Quantity       int64
	UnitPrice      kernel.Money
}

// CreateOrderCommand represents a request to open a new draft order on
// behalf of the acting user's organization. The actor's organization becomes
// the buyer organization and the acting user becomes the immutable creator.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), actingUser, order.TypeBuy, "Winter wheat",
//	    deliveryDate, "12 Mill Road", "net 30", "", items,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	actor               actor.Actor
	orderType           order.Type
	title               string
	deliveryDate        time.Time
	deliveryAddress     string
	paymentTerms        string
	specialInstructions string
	items               []CreateOrderItemParams

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new draft order.
// Validates identity, actor, type, title, delivery details and that at
// least one item is present.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	a actor.Actor,
	orderType order.Type,
	title string,
	deliveryDate time.Time,
	deliveryAddress string,
	paymentTerms string,
	specialInstructions string,
	items []CreateOrderItemParams,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		paymentTerms:        paymentTerms,
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(a),
		cmd.setType(orderType),
		cmd.setTitle(title),
		cmd.setDelivery(deliveryDate, deliveryAddress),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identity assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting identity.
func (c CreateOrderCommand) Actor() actor.Actor {
	return c.actor
}

// Type returns the order classification.
func (c CreateOrderCommand) Type() order.Type {
	return c.orderType
}

// Title returns the human-readable order title.
func (c CreateOrderCommand) Title() string {
	return c.title
}

// DeliveryDate returns the requested delivery date.
func (c CreateOrderCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

// DeliveryAddress returns the delivery destination.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// PaymentTerms returns the free-form payment terms.
func (c CreateOrderCommand) PaymentTerms() string {
	return c.paymentTerms
}

// SpecialInstructions returns the free-form handling instructions.
func (c CreateOrderCommand) SpecialInstructions() string {
	return c.specialInstructions
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []CreateOrderItemParams {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActor(a actor.Actor) error {
	if err := a.Validate(); err != nil {
		return err
	}

	c.actor = a
	return nil
}

func (c *CreateOrderCommand) setType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *CreateOrderCommand) setDelivery(date time.Time, address string) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	c.deliveryDate = date
	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItemParams) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = items
	return nil
}

// CreateOrderCommandHandler handles the business logic for opening draft
// orders. Reserves the next order number and persists the new aggregate in
// Pending status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the new aggregate.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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
	number, err := orderRepo.NextNumber(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, params := range cmd.Items() {
		item, itemErr := order.NewItem(
			kernel.NewUUID(), params.CommodityID, params.InventoryLotID,
			params.Quantity, params.UnitPrice,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), number, cmd.Type(), cmd.Title(),
		cmd.Actor().OrganizationID(), cmd.Actor().UserID(),
		cmd.DeliveryDate(), cmd.DeliveryAddress(),
		cmd.PaymentTerms(), cmd.SpecialInstructions(),
		items,
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
