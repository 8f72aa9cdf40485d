// Package dispute implements the dispute sub-lifecycle attached to an
// order. A dispute is an audit and negotiation channel layered on top of
// an order in fulfillment or delivered; it never changes the parent
// order's status.
package dispute

import (
	"errors"
	"time"

	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/pkg/errs"
)

// ErrDisputeIsNotConstructed is returned when a Dispute was not created
// through the NewDispute factory method.
var ErrDisputeIsNotConstructed = errors.New("Dispute must be created via NewDispute constructor")

// Severity grades how serious the raising party considers the issue.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Validate checks that the severity is one of the known grades.
func (s Severity) Validate() error {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return nil
	default:
		return errs.NewValueIsInvalidError("dispute severity")
	}
}

// Response is the counterparty's reply that moves a dispute into review.
type Response struct {
	ResponderID kernel.UUID `json:"responderId"`
	Message     string      `json:"message"`
	Evidence    []string    `json:"evidence,omitempty"`
	At          time.Time   `json:"at"`
}

// Resolution is the final outcome recorded when a dispute is closed.
type Resolution struct {
	ResolvedByID      kernel.UUID `json:"resolvedById"`
	Outcome           string      `json:"outcome"`
	CompensationTerms string      `json:"compensationTerms,omitempty"`
	At                time.Time   `json:"at"`
}

// Dispute is an aggregate with its own open -> in_review -> resolved
// lifecycle, attached to exactly one order.
type Dispute struct {
	id                  kernel.UUID
	orderID             kernel.UUID
	raisedByID          kernel.UUID
	disputeType         string
	description         string
	evidence            []string
	requestedResolution string
	severity            Severity
	status              Status
	raisedAt            time.Time
	response            *Response
	resolution          *Resolution

	version int64

	isConstructed bool
}

// NewDispute raises a dispute against an order.
func NewDispute(
	id kernel.UUID,
	orderID kernel.UUID,
	raisedByID kernel.UUID,
	disputeType string,
	description string,
	evidence []string,
	requestedResolution string,
	severity Severity,
	raisedAt time.Time,
) (*Dispute, error) {
	d := &Dispute{
		status:        StatusOpen,
		version:       1,
		isConstructed: true,
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	d.id = id

	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	d.orderID = orderID

	if err := raisedByID.Validate(); err != nil {
		return nil, err
	}
	d.raisedByID = raisedByID

	if disputeType == "" {
		return nil, errs.NewValueIsRequiredError("dispute type")
	}
	d.disputeType = disputeType

	if description == "" {
		return nil, errs.NewValueIsRequiredError("dispute description")
	}
	d.description = description

	if err := severity.Validate(); err != nil {
		return nil, err
	}
	d.severity = severity

	if raisedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("raisedAt")
	}
	d.raisedAt = raisedAt

	d.evidence = evidence
	d.requestedResolution = requestedResolution

	return d, nil
}

// RestoreDisputeParams carries the persisted state of a dispute.
type RestoreDisputeParams struct {
	ID                  kernel.UUID
	OrderID             kernel.UUID
	RaisedByID          kernel.UUID
	Type                string
	Description         string
	Evidence            []string
	RequestedResolution string
	Severity            Severity
	Status              Status
	RaisedAt            time.Time
	Response            *Response
	Resolution          *Resolution
	Version             int64
}

// RestoreDispute reconstructs a dispute from persistence.
func RestoreDispute(p RestoreDisputeParams) (*Dispute, error) {
	d, err := NewDispute(
		p.ID, p.OrderID, p.RaisedByID, p.Type, p.Description,
		p.Evidence, p.RequestedResolution, p.Severity, p.RaisedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = p.Status.Validate(); err != nil {
		return nil, err
	}
	d.status = p.Status

	if p.Version <= 0 {
		return nil, errs.NewVersionIsInvalidError("dispute version")
	}
	d.version = p.Version

	d.response = p.Response
	d.resolution = p.Resolution

	return d, nil
}

// Validate ensures the dispute was created through the constructor.
func (d *Dispute) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDisputeIsNotConstructed
	}
	return nil
}

// ID returns the dispute identifier.
func (d *Dispute) ID() kernel.UUID {
	return d.id
}

// OrderID returns the order the dispute is attached to.
func (d *Dispute) OrderID() kernel.UUID {
	return d.orderID
}

// RaisedByID returns the user who raised the dispute.
func (d *Dispute) RaisedByID() kernel.UUID {
	return d.raisedByID
}

// Type returns the dispute type.
func (d *Dispute) Type() string {
	return d.disputeType
}

// Description returns the free-text description of the issue.
func (d *Dispute) Description() string {
	return d.description
}

// Evidence returns references to supporting evidence.
func (d *Dispute) Evidence() []string {
	return d.evidence
}

// RequestedResolution returns the outcome the raising party asked for.
func (d *Dispute) RequestedResolution() string {
	return d.requestedResolution
}

// Severity returns the graded severity.
func (d *Dispute) Severity() Severity {
	return d.severity
}

// Status returns the current lifecycle status.
func (d *Dispute) Status() Status {
	return d.status
}

// RaisedAt returns when the dispute was opened.
func (d *Dispute) RaisedAt() time.Time {
	return d.raisedAt
}

// Response returns the counterparty's reply, or nil.
func (d *Dispute) Response() *Response {
	return d.response
}

// Resolution returns the final outcome, or nil while unresolved.
func (d *Dispute) Resolution() *Resolution {
	return d.resolution
}

// Version returns the optimistic-concurrency token as loaded from the store.
func (d *Dispute) Version() int64 {
	return d.version
}

// Respond records the counterparty's reply: open -> in_review.
func (d *Dispute) Respond(responderID kernel.UUID, message string, evidence []string, now time.Time) error {
	if err := responderID.Validate(); err != nil {
		return err
	}
	if message == "" {
		return errs.NewValueIsRequiredError("response message")
	}

	newStatus, err := d.status.Respond()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.response = &Response{
		ResponderID: responderID,
		Message:     message,
		Evidence:    evidence,
		At:          now,
	}
	return nil
}

// Resolve records the final outcome: open/in_review -> resolved.
func (d *Dispute) Resolve(resolvedByID kernel.UUID, outcome, compensationTerms string, now time.Time) error {
	if err := resolvedByID.Validate(); err != nil {
		return err
	}
	if outcome == "" {
		return errs.NewValueIsRequiredError("resolution outcome")
	}

	newStatus, err := d.status.Resolve()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.resolution = &Resolution{
		ResolvedByID:      resolvedByID,
		Outcome:           outcome,
		CompensationTerms: compensationTerms,
		At:                now,
	}
	return nil
}
