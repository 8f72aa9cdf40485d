package order

import (
	"fmt"
	"math"

	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/pkg/errs"
)

// Item is a commercial line of an order: a commodity reference, an optional
// inventory lot, a quantity and a unit price. Items belong to exactly one
// order and are mutable only while the parent order is Pending; the parent
// aggregate enforces that window.
type Item struct {
	id             kernel.UUID
	commodityID    kernel.UUID
	inventoryLotID *kernel.UUID
	quantity       int64
	unitPrice      kernel.Money

	isConstructed bool
}

// NewItem creates an order line with validation.
// Quantity must be positive; the unit price may be zero but not negative
// (enforced by the Money constructor upstream).
func NewItem(
	id kernel.UUID,
	commodityID kernel.UUID,
	inventoryLotID *kernel.UUID,
	quantity int64,
	unitPrice kernel.Money,
) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	item.id = id

	if err := commodityID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("commodityId", err)
	}
	item.commodityID = commodityID

	if inventoryLotID != nil {
		if err := inventoryLotID.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("inventoryLotId", err)
		}
	}
	item.inventoryLotID = inventoryLotID

	if err := item.setQuantity(quantity); err != nil {
		return nil, err
	}
	if _, err := unitPrice.MulQuantity(quantity); err != nil {
		return nil, err
	}
	item.unitPrice = unitPrice

	return item, nil
}

// RestoreItem reconstructs an order line from persistence without re-minting
// its identity.
func RestoreItem(
	id kernel.UUID,
	commodityID kernel.UUID,
	inventoryLotID *kernel.UUID,
	quantity int64,
	unitPrice kernel.Money,
) (*Item, error) {
	return NewItem(id, commodityID, inventoryLotID, quantity, unitPrice)
}

// Validate ensures the item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return errs.NewValueIsRequiredError("Item must be created via NewItem constructor")
	}
	return nil
}

// ID returns the line's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// CommodityID returns the referenced commodity.
func (i *Item) CommodityID() kernel.UUID {
	return i.commodityID
}

// InventoryLotID returns the optional inventory lot backing this line.
func (i *Item) InventoryLotID() *kernel.UUID {
	return i.inventoryLotID
}

// Quantity returns the ordered quantity of units.
func (i *Item) Quantity() int64 {
	return i.quantity
}

// UnitPrice returns the agreed price per unit.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Total returns quantity × unit price for this line. The constructors
// reject combinations whose product overflows, so a constructed item's
// total is always computable.
func (i *Item) Total() (kernel.Money, error) {
	return i.unitPrice.MulQuantity(i.quantity)
}

// change applies a quantity/price/lot revision. Called by the parent
// aggregate, which owns the Pending-only mutation window.
func (i *Item) change(quantity int64, unitPrice kernel.Money, inventoryLotID *kernel.UUID) error {
	if _, err := unitPrice.MulQuantity(quantity); err != nil {
		return err
	}
	if err := i.setQuantity(quantity); err != nil {
		return err
	}
	if inventoryLotID != nil {
		if err := inventoryLotID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("inventoryLotId", err)
		}
	}
	i.unitPrice = unitPrice
	i.inventoryLotID = inventoryLotID
	return nil
}

func (i *Item) setQuantity(quantity int64) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"quantity", quantity, 1, int64(math.MaxInt64),
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}
