package order

import (
	"agritrade/internal/pkg/errs"
)

// Status represents the lifecycle state of a trade order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> InTransit ──> Delivered
//	   ▲            │
//	   └────────────┘
//	  (negotiation back-edge: accept with negotiation, counter-offer)
//
//	Cancelled is reachable from any non-terminal state via reject.
//
// The back-edge from Confirmed to Pending is deliberate: it lets either
// party return a published order to the negotiation table without
// destroying it, so the order keeps its identity, number and audit trail
// across bargaining rounds.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status. The order is a draft owned by its
	// creator: items and terms are editable, and the order may be deleted.
	// Orders also return to Pending during negotiation.
	Pending

	// Confirmed indicates the order is published and binding as listed.
	// A counterparty may accept it, and the supplier may start fulfillment.
	Confirmed

	// InTransit indicates the supplier has started fulfillment.
	InTransit

	// Delivered indicates the order has been fulfilled and confirmed.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was rejected by one of the parties.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Publish transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Returns (0, error) if the order is not in Pending status.
func (s Status) Publish() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStatusTransitionError("publish order", s.String())
	}
	return Confirmed, nil
}

// Accept transitions the status on counterparty acceptance.
//
// Valid transitions:
//   - Confirmed -> Confirmed (acceptance as listed)
//   - Confirmed -> Pending   (acceptance with a negotiation request)
//
// Returns (0, error) if the order is not in Confirmed status.
func (s Status) Accept(requiresNegotiation bool) (Status, error) {
	if s != Confirmed {
		return 0, errs.NewInvalidStatusTransitionError("accept order", s.String())
	}
	if requiresNegotiation {
		return Pending, nil
	}
	return Confirmed, nil
}

// Counter transitions the status to Pending for a counter-offer.
//
// Valid transitions:
//   - Pending -> Pending     (another bargaining round on a draft)
//   - Confirmed -> Pending   (the negotiation back-edge)
//
// Fulfillment and terminal states cannot be reopened; a counter-offer on
// those fails rather than breaking the monotonic lifecycle walk.
func (s Status) Counter() (Status, error) {
	if s != Pending && s != Confirmed {
		return 0, errs.NewInvalidStatusTransitionError("counter-offer order", s.String())
	}
	return Pending, nil
}

// ValidateConfirm checks that the finalize marker may be stamped.
// Confirmation does not change the status; it requires Confirmed.
func (s Status) ValidateConfirm() error {
	if s != Confirmed {
		return errs.NewInvalidStatusTransitionError("confirm order", s.String())
	}
	return nil
}

// StartFulfillment transitions the status to InTransit.
//
// Valid transitions:
//   - Confirmed -> InTransit
func (s Status) StartFulfillment() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewInvalidStatusTransitionError("start fulfillment", s.String())
	}
	return InTransit, nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered
func (s Status) Complete() (Status, error) {
	if s != InTransit {
		return 0, errs.NewInvalidStatusTransitionError("complete order", s.String())
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from any non-terminal status; Delivered and Cancelled orders
// cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewInvalidStatusTransitionError("cancel order", s.String())
	}
	return Cancelled, nil
}
