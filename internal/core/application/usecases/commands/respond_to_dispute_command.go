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

var ErrRespondToDisputeCommandIsNotConstructed = errors.New(
	"RespondToDisputeCommand must be created via NewRespondToDisputeCommand constructor",
)

// RespondToDisputeCommand records the counterparty's reply on an open
// dispute, moving it into review.
type RespondToDisputeCommand struct { //nolint:recvcheck //using for validation
	disputeID kernel.UUID
	actor     actor.Actor
	message   string
	evidence  []string

	guard guard.ConstructorGuard
}

// NewRespondToDisputeCommand creates a command to reply to a dispute.
func NewRespondToDisputeCommand(
	disputeID kernel.UUID,
	a actor.Actor,
	message string,
	evidence []string,
) (RespondToDisputeCommand, error) {
	cmd := RespondToDisputeCommand{
		evidence: evidence,
		guard:    guard.NewConstructorGuard(),
	}

	if err := disputeID.Validate(); err != nil {
		return RespondToDisputeCommand{}, err
	}
	cmd.disputeID = disputeID

	if err := a.Validate(); err != nil {
		return RespondToDisputeCommand{}, err
	}
	cmd.actor = a

	if message == "" {
		return RespondToDisputeCommand{}, errs.NewValueIsRequiredError("message")
	}
	cmd.message = message

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RespondToDisputeCommand) Validate() error {
	return c.guard.Validate(ErrRespondToDisputeCommandIsNotConstructed)
}

// DisputeID returns the dispute to reply to.
func (c RespondToDisputeCommand) DisputeID() kernel.UUID {
	return c.disputeID
}

// Actor returns the acting identity.
func (c RespondToDisputeCommand) Actor() actor.Actor {
	return c.actor
}

// Message returns the reply text.
func (c RespondToDisputeCommand) Message() string {
	return c.message
}

// Evidence returns references to supporting evidence.
func (c RespondToDisputeCommand) Evidence() []string {
	return c.evidence
}

// RespondToDisputeCommandHandler records replies on open disputes.
type RespondToDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
}

// NewRespondToDisputeCommandHandler creates a handler for dispute replies.
func NewRespondToDisputeCommandHandler(uowFactory DisputeUoWFactory) RespondToDisputeCommandHandler {
	return RespondToDisputeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the dispute, resolves its parent order under the
// participation policy and records the reply.
func (h *RespondToDisputeCommandHandler) Handle(ctx context.Context, cmd RespondToDisputeCommand) (*dispute.Dispute, error) {
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

	if err = raised.Respond(cmd.Actor().UserID(), cmd.Message(), cmd.Evidence(), time.Now()); err != nil {
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
