// Package queries contains read-side operations in the CQRS architecture.
// The guarded order document query goes through the repository ports so the
// access policies apply identically to reads and writes; public listings
// bypass the aggregate and read projections with raw SQL.
package queries

import (
	"errors"

	"agritrade/internal/core/domain/model/actor"
	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full order document: the aggregate with its
// items, open counter-offer and event history, plus the message thread and
// any disputes. Only participants (or platform administrators) may read it.
type GetOrderQuery struct {
	orderID kernel.UUID
	actor   actor.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order document.
func NewGetOrderQuery(orderID kernel.UUID, a actor.Actor) (GetOrderQuery, error) {
	q := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	q.orderID = orderID

	if err := a.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	q.actor = a

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the acting identity.
func (q GetOrderQuery) Actor() actor.Actor {
	return q.actor
}
