// Package access centralizes the order access policies. Every order-scoped
// operation resolves its order through ResolveOrder with a named policy, so
// the fetch, the platform-admin bypass and the denial error all behave the
// same way across commands and queries.
package access

import (
	"context"

	"agritrade/internal/core/domain/model/actor"
	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/core/domain/model/order"
	"agritrade/internal/pkg/errs"
)

// OrderGetter fetches an order by id. Repositories and units of work
// satisfy it.
type OrderGetter interface {
	Get(ctx context.Context, orderID kernel.UUID) (*order.Order, error)
}

// Policy is a named predicate over an actor and an order. Policies are pure:
// they never fetch, never mutate, and the name is what a denied caller sees.
type Policy struct {
	name   string
	allows func(a actor.Actor, o *order.Order) bool
}

// Name returns the policy name used in denial errors.
func (p Policy) Name() string {
	return p.name
}

// Allows reports whether the actor satisfies the policy for the order.
// The platform-admin bypass lives in ResolveOrder, not here.
func (p Policy) Allows(a actor.Actor, o *order.Order) bool {
	return p.allows(a, o)
}

// Ownership admits only the user who created the order. Used for
// operations that shape the order itself: editing, publishing, items,
// deletion, confirmation.
var Ownership = Policy{
	name: "order ownership",
	allows: func(a actor.Actor, o *order.Order) bool {
		return a.UserID().IsEqual(o.CreatedByID())
	},
}

// Participation admits members of either side of the order: the buyer
// organization or the assigned supplier organization. Used for messaging,
// counter-offers, rejection and disputes.
var Participation = Policy{
	name: "order participation",
	allows: func(a actor.Actor, o *order.Order) bool {
		return o.IsParticipant(a.OrganizationID())
	},
}

// SupplierOnly admits only members of the assigned supplier organization.
// Used for fulfillment operations.
var SupplierOnly = Policy{
	name: "supplier role",
	allows: func(a actor.Actor, o *order.Order) bool {
		supplier := o.SupplierOrgID()
		return supplier != nil && a.OrganizationID().IsEqual(*supplier)
	},
}

// Counterparty admits any organization other than the buyer. It guards
// acceptance, where the supplier may not yet be assigned to the order;
// the aggregate rejects a mismatched supplier at write time.
var Counterparty = Policy{
	name: "counterparty role",
	allows: func(a actor.Actor, o *order.Order) bool {
		return !a.OrganizationID().IsEqual(o.BuyerOrgID())
	},
}

// ResolveOrder fetches the order and checks the policy in one step. The
// order id must be set, the actor must be constructed, and a platform
// administrator passes any policy. A policy failure yields an access
// denied error carrying the policy name.
func ResolveOrder(
	ctx context.Context,
	getter OrderGetter,
	orderID kernel.UUID,
	a actor.Actor,
	policy Policy,
) (*order.Order, error) {
	if err := orderID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredError("orderID")
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	o, err := getter.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if a.IsPlatformAdmin() {
		return o, nil
	}
	if !policy.Allows(a, o) {
		return nil, errs.NewAccessDeniedError(policy.Name())
	}
	return o, nil
}
