package commands

import (
	"context"
	"errors"
	"time"

	"agritrade/internal/core/application/access"
	"agritrade/internal/core/domain/model/actor"
	"agritrade/internal/core/domain/model/dispute"
	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/pkg/errs"
	"agritrade/internal/pkg/guard"
)

var ErrResolveDisputeCommandIsNotConstructed = errors.New(
	"ResolveDisputeCommand must be created via NewResolveDisputeCommand constructor",
)

// ResolveDisputeCommand closes a dispute with a final outcome and optional
// compensation terms. Resolved is final.
type ResolveDisputeCommand struct { //nolint:recvcheck //using for validation
	disputeID         kernel.UUID
	actor             actor.Actor
	outcome           string
	compensationTerms string

	guard guard.ConstructorGuard
}

// NewResolveDisputeCommand creates a command to close a dispute.
func NewResolveDisputeCommand(
	disputeID kernel.UUID,
	a actor.Actor,
	outcome string,
	compensationTerms string,
) (ResolveDisputeCommand, error) {
	cmd := ResolveDisputeCommand{
		compensationTerms: compensationTerms,
		guard:             guard.NewConstructorGuard(),
	}

	if err := disputeID.Validate(); err != nil {
		return ResolveDisputeCommand{}, err
	}
	cmd.disputeID = disputeID

	if err := a.Validate(); err != nil {
		return ResolveDisputeCommand{}, err
	}
	cmd.actor = a

	if outcome == "" {
		return ResolveDisputeCommand{}, errs.NewValueIsRequiredError("outcome")
	}
	cmd.outcome = outcome

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveDisputeCommand) Validate() error {
	return c.guard.Validate(ErrResolveDisputeCommandIsNotConstructed)
}

// DisputeID returns the dispute to close.
func (c ResolveDisputeCommand) DisputeID() kernel.UUID {
	return c.disputeID
}

// Actor returns the acting identity.
func (c ResolveDisputeCommand) Actor() actor.Actor {
	return c.actor
}

// Outcome returns the final outcome text.
func (c ResolveDisputeCommand) Outcome() string {
	return c.outcome
}

// CompensationTerms returns the agreed compensation, if any.
func (c ResolveDisputeCommand) CompensationTerms() string {
	return c.compensationTerms
}

// ResolveDisputeCommandHandler closes disputes with a final outcome.
type ResolveDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
}

// NewResolveDisputeCommandHandler creates a handler for dispute resolution.
func NewResolveDisputeCommandHandler(uowFactory DisputeUoWFactory) ResolveDisputeCommandHandler {
	return ResolveDisputeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the dispute, resolves its parent order under the
// participation policy and records the final resolution.
func (h *ResolveDisputeCommandHandler) Handle(ctx context.Context, cmd ResolveDisputeCommand) (*dispute.Dispute, error) {
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

	disputeRepo := uow.DisputeRepository()
	raised, err := disputeRepo.Get(ctx, cmd.DisputeID())
	if err != nil {
		return nil, err
	}

	if _, err = access.ResolveOrder(ctx, uow.OrderRepository(), raised.OrderID(), cmd.Actor(), access.Participation); err != nil {
		return nil, err
	}

	if err = raised.Resolve(cmd.Actor().UserID(), cmd.Outcome(), cmd.CompensationTerms(), time.Now()); err != nil {
		return nil, err
	}

	if err = disputeRepo.Update(ctx, raised); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return raised, nil
}
