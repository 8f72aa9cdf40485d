package commands

import (
	"context"
	"errors"
	"time"

	"agritrade/internal/core/application/access"
	"agritrade/internal/core/domain/model/actor"
	"agritrade/internal/core/domain/model/dispute"
	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/core/domain/model/order"
	"agritrade/internal/pkg/errs"
	"agritrade/internal/pkg/guard"
)

var ErrCreateDisputeCommandIsNotConstructed = errors.New(
	"CreateDisputeCommand must be created via NewCreateDisputeCommand constructor",
)

// CreateDisputeCommand raises a dispute against an order in fulfillment or
// already delivered. The dispute runs its own lifecycle and never changes
// the parent order's status.
type CreateDisputeCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	actor               actor.Actor
	disputeType         string
	description         string
	evidence            []string
	requestedResolution string
	severity            dispute.Severity

	guard guard.ConstructorGuard
}

// NewCreateDisputeCommand creates a command to raise a dispute.
func NewCreateDisputeCommand(
	orderID kernel.UUID,
	a actor.Actor,
	disputeType string,
	description string,
	evidence []string,
	requestedResolution string,
	severity dispute.Severity,
) (CreateDisputeCommand, error) {
	cmd := CreateDisputeCommand{
		evidence:            evidence,
		requestedResolution: requestedResolution,
		guard:               guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return CreateDisputeCommand{}, err
	}
	cmd.orderID = orderID

	if err := a.Validate(); err != nil {
		return CreateDisputeCommand{}, err
	}
	cmd.actor = a

	if disputeType == "" {
		return CreateDisputeCommand{}, errs.NewValueIsRequiredError("dispute type")
	}
	cmd.disputeType = disputeType

	if description == "" {
		return CreateDisputeCommand{}, errs.NewValueIsRequiredError("description")
	}
	cmd.description = description

	if err := severity.Validate(); err != nil {
		return CreateDisputeCommand{}, err
	}
	cmd.severity = severity

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDisputeCommand) Validate() error {
	return c.guard.Validate(ErrCreateDisputeCommandIsNotConstructed)
}

// OrderID returns the disputed order.
func (c CreateDisputeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting identity.
func (c CreateDisputeCommand) Actor() actor.Actor {
	return c.actor
}

// Type returns the dispute type.
func (c CreateDisputeCommand) Type() string {
	return c.disputeType
}

// Description returns the description of the issue.
func (c CreateDisputeCommand) Description() string {
	return c.description
}

// Evidence returns references to supporting evidence.
func (c CreateDisputeCommand) Evidence() []string {
	return c.evidence
}

// RequestedResolution returns the outcome the raising party asks for.
func (c CreateDisputeCommand) RequestedResolution() string {
	return c.requestedResolution
}

// Severity returns the graded severity.
func (c CreateDisputeCommand) Severity() dispute.Severity {
	return c.severity
}

// CreateDisputeCommandHandler raises disputes against orders.
type CreateDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
}

// NewCreateDisputeCommandHandler creates a handler for raising disputes.
func NewCreateDisputeCommandHandler(uowFactory DisputeUoWFactory) CreateDisputeCommandHandler {
	return CreateDisputeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the order under the participation policy, verifies it is
// in fulfillment or delivered, and persists the new dispute.
func (h *CreateDisputeCommandHandler) Handle(ctx context.Context, cmd CreateDisputeCommand) (*dispute.Dispute, error) {
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

	aggregate, err := access.ResolveOrder(ctx, uow.OrderRepository(), cmd.OrderID(), cmd.Actor(), access.Participation)
	if err != nil {
		return nil, err
	}

	if aggregate.Status() != order.InTransit && aggregate.Status() != order.Delivered {
		return nil, errs.NewInvalidStatusTransitionError("raise a dispute", aggregate.Status().String())
	}

	raised, err := dispute.NewDispute(
		kernel.NewUUID(), aggregate.ID(), cmd.Actor().UserID(),
		cmd.Type(), cmd.Description(), cmd.Evidence(),
		cmd.RequestedResolution(), cmd.Severity(), time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.DisputeRepository().Add(ctx, raised); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return raised, nil
}
