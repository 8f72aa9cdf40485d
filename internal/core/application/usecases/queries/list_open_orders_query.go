package queries

import (
	"errors"
	"time"

	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/core/domain/model/order"
	"agritrade/internal/pkg/guard"
)

var ErrListOpenOrdersQueryIsNotConstructed = errors.New(
	"ListOpenOrdersQuery must be created via NewListOpenOrdersQuery constructor",
)

// ListOpenOrdersQuery retrieves the public marketplace listing: Confirmed
// orders that no supplier has taken yet. The listing is readable without a
// participation check; it is how counterparties discover orders to accept.
type ListOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOpenOrdersQuery creates a query for the open order listing.
// This is a parameterless query.
func NewListOpenOrdersQuery() ListOpenOrdersQuery {
	return ListOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOpenOrdersQueryIsNotConstructed)
}

// ListOpenOrdersQueryResponse is one row of the public listing. It carries
// the commercial headline of an order, not the full document.
type ListOpenOrdersQueryResponse struct {
	ID              kernel.UUID
	Number          int64
	Type            order.Type
	Title           string
	BuyerOrgID      kernel.UUID
	DeliveryDate    time.Time
	DeliveryAddress string
	TotalPrice      kernel.Money
}
