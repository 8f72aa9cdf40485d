package order

import (
	"time"

	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/pkg/errs"
)

// ProposedChanges enumerates the order fields a negotiation round may
// revise. Nil fields are left untouched; the proposal never changes the
// parties or the items themselves.
type ProposedChanges struct {
	Title               *string    `json:"title,omitempty"`
	DeliveryDate        *time.Time `json:"deliveryDate,omitempty"`
	DeliveryAddress     *string    `json:"deliveryAddress,omitempty"`
	PaymentTerms        *string    `json:"paymentTerms,omitempty"`
	SpecialInstructions *string    `json:"specialInstructions,omitempty"`
}

// IsEmpty reports whether the proposal revises nothing.
func (c ProposedChanges) IsEmpty() bool {
	return c.Title == nil && c.DeliveryDate == nil && c.DeliveryAddress == nil &&
		c.PaymentTerms == nil && c.SpecialInstructions == nil
}

// CounterOffer is the open negotiation proposal attached to an order:
// a message, the proposed field changes and an advisory expiry deadline.
// A counter-offer is conceptually a message that also requests a status
// transition back to Pending, so it lives on the order rather than as a
// separate aggregate. The engine never auto-expires it; the expiry sweep
// job enforces the deadline.
type CounterOffer struct {
	proposedByOrgID kernel.UUID
	message         string
	changes         ProposedChanges
	expiresAt       time.Time
	proposedAt      time.Time
}

// NewCounterOffer creates an open negotiation proposal.
// The proposal must revise at least one field and carry a future expiry
// relative to the proposal time.
func NewCounterOffer(
	proposedByOrgID kernel.UUID,
	message string,
	changes ProposedChanges,
	expiresAt time.Time,
	proposedAt time.Time,
) (*CounterOffer, error) {
	if err := proposedByOrgID.Validate(); err != nil {
		return nil, err
	}
	if changes.IsEmpty() {
		return nil, errs.NewValueIsRequiredError("proposed changes")
	}
	if expiresAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("expiresAt")
	}
	if !expiresAt.After(proposedAt) {
		return nil, errs.NewValueIsInvalidError("expiresAt must be after the proposal time")
	}

	return &CounterOffer{
		proposedByOrgID: proposedByOrgID,
		message:         message,
		changes:         changes,
		expiresAt:       expiresAt,
		proposedAt:      proposedAt,
	}, nil
}

// RestoreCounterOffer reconstructs a proposal from persistence.
func RestoreCounterOffer(
	proposedByOrgID kernel.UUID,
	message string,
	changes ProposedChanges,
	expiresAt time.Time,
	proposedAt time.Time,
) *CounterOffer {
	return &CounterOffer{
		proposedByOrgID: proposedByOrgID,
		message:         message,
		changes:         changes,
		expiresAt:       expiresAt,
		proposedAt:      proposedAt,
	}
}

// ProposedByOrgID returns the organization that made the proposal.
func (c *CounterOffer) ProposedByOrgID() kernel.UUID {
	return c.proposedByOrgID
}

// Message returns the negotiation message accompanying the proposal.
func (c *CounterOffer) Message() string {
	return c.message
}

// Changes returns the proposed field revisions.
func (c *CounterOffer) Changes() ProposedChanges {
	return c.changes
}

// ExpiresAt returns the advisory deadline for responding.
func (c *CounterOffer) ExpiresAt() time.Time {
	return c.expiresAt
}

// ProposedAt returns when the proposal was made.
func (c *CounterOffer) ProposedAt() time.Time {
	return c.proposedAt
}

// IsExpired reports whether the advisory deadline has passed. The
// deadline instant itself counts as expired, matching the sweep query's
// selection predicate.
func (c *CounterOffer) IsExpired(now time.Time) bool {
	return !now.Before(c.expiresAt)
}
