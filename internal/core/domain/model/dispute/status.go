package dispute

import (
	"agritrade/internal/pkg/errs"
)

// Status represents the lifecycle state of a dispute.
//
// State transitions:
//
//	Open ──> InReview ──> Resolved
//
// Disputes never move backwards and Resolved is final.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusOpen is the initial status when a dispute is raised.
	StatusOpen

	// StatusInReview indicates the counterparty has responded.
	StatusInReview

	// StatusResolved indicates a final resolution was recorded.
	// This is a final state with no further transitions allowed.
	StatusResolved
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusOpen:     "open",
		StatusInReview: "in_review",
		StatusResolved: "resolved",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	switch s {
	case StatusOpen, StatusInReview, StatusResolved:
		return nil
	default:
		return errs.NewValueIsInvalidError("dispute status")
	}
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Respond transitions the status to InReview.
//
// Valid transitions:
//   - Open -> InReview
func (s Status) Respond() (Status, error) {
	if s != StatusOpen {
		return 0, errs.NewInvalidStatusTransitionError("respond to dispute", s.String())
	}
	return StatusInReview, nil
}

// Resolve transitions the status to Resolved.
//
// Valid transitions:
//   - Open -> Resolved     (resolved without a formal response)
//   - InReview -> Resolved
func (s Status) Resolve() (Status, error) {
	if s != StatusOpen && s != StatusInReview {
		return 0, errs.NewInvalidStatusTransitionError("resolve dispute", s.String())
	}
	return StatusResolved, nil
}
