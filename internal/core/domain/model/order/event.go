package order

import (
	"time"

	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/pkg/errs"
)

// EventKind discriminates the entries of an order's transition history.
// The history is append-only and typed: every lifecycle operation records
// exactly one event, so the full negotiation and fulfillment trail can be
// replayed without consulting an untyped metadata bag.
type EventKind string

const (
	// EventPublished records the creator listing the order.
	EventPublished EventKind = "published"

	// EventAccepted records a counterparty accepting the order and becoming
	// its supplier, possibly with a negotiation request.
	EventAccepted EventKind = "accepted"

	// EventCounterOffered records a party proposing changed terms.
	EventCounterOffered EventKind = "counter_offered"

	// EventCounterExpired records the expiry sweep closing a counter-offer
	// whose deadline passed without a response.
	EventCounterExpired EventKind = "counter_expired"

	// EventConfirmed records the creator stamping the finalize marker.
	EventConfirmed EventKind = "confirmed"

	// EventFulfillmentStarted records the supplier dispatching the goods.
	EventFulfillmentStarted EventKind = "fulfillment_started"

	// EventCompleted records delivery confirmation.
	EventCompleted EventKind = "completed"

	// EventRejected records either party cancelling the order.
	EventRejected EventKind = "rejected"
)

// Validate checks that the kind is one of the known event kinds.
func (k EventKind) Validate() error {
	switch k {
	case EventPublished, EventAccepted, EventCounterOffered, EventCounterExpired,
		EventConfirmed, EventFulfillmentStarted, EventCompleted, EventRejected:
		return nil
	}
	return errs.NewValueIsInvalidError("event kind")
}

// EventPayload carries the kind-specific details of a history entry.
// Only the fields relevant to the event's kind are set.
type EventPayload struct {
	Message              string           `json:"message,omitempty"`
	Reason               string           `json:"reason,omitempty"`
	SupplierOrgID        string           `json:"supplierOrgId,omitempty"`
	RequiresNegotiation  bool             `json:"requiresNegotiation,omitempty"`
	Changes              *ProposedChanges `json:"changes,omitempty"`
	ExpiresAt            *time.Time       `json:"expiresAt,omitempty"`
	TrackingInfo         string           `json:"trackingInfo,omitempty"`
	EstimatedCompletion  *time.Time       `json:"estimatedCompletion,omitempty"`
	DeliveryConfirmation string           `json:"deliveryConfirmation,omitempty"`
	QualityAssessment    string           `json:"qualityAssessment,omitempty"`
}

// Event is one entry of an order's transition history: what happened, who
// did it, when, and the kind-specific payload. The actor is the zero UUID
// for system-originated events such as counter-offer expiry.
type Event struct {
	kind    EventKind
	actorID kernel.UUID
	at      time.Time
	payload EventPayload
}

// NewEvent creates a history entry. The actor may be the zero UUID for
// system events; the timestamp must be set.
func NewEvent(kind EventKind, actorID kernel.UUID, at time.Time, payload EventPayload) (Event, error) {
	if err := kind.Validate(); err != nil {
		return Event{}, err
	}
	if at.IsZero() {
		return Event{}, errs.NewValueIsRequiredError("event timestamp")
	}
	return Event{kind: kind, actorID: actorID, at: at, payload: payload}, nil
}

// Kind returns the event's kind.
func (e Event) Kind() EventKind {
	return e.kind
}

// ActorID returns the acting user, or the zero UUID for system events.
func (e Event) ActorID() kernel.UUID {
	return e.actorID
}

// At returns when the event occurred.
func (e Event) At() time.Time {
	return e.at
}

// Payload returns the kind-specific details.
func (e Event) Payload() EventPayload {
	return e.payload
}
