package commands

import (
	"context"
	"errors"
	"time"

	"agritrade/internal/core/application/access"
	"agritrade/internal/core/domain/model/actor"
	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/core/domain/model/order"
	"agritrade/internal/pkg/guard"
)

var ErrMarkMessageReadCommandIsNotConstructed = errors.New(
	"MarkMessageReadCommand must be created via NewMarkMessageReadCommand constructor",
)

// MarkMessageReadCommand stamps the read timestamp on a message. The stamp
// is set exactly once; marking an already-read message is a no-op.
type MarkMessageReadCommand struct { //nolint:recvcheck //using for validation
	messageID kernel.UUID
	actor     actor.Actor

	guard guard.ConstructorGuard
}

// NewMarkMessageReadCommand creates a command to mark a message as read.
func NewMarkMessageReadCommand(messageID kernel.UUID, a actor.Actor) (MarkMessageReadCommand, error) {
	cmd := MarkMessageReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := messageID.Validate(); err != nil {
		return MarkMessageReadCommand{}, err
	}
	cmd.messageID = messageID

	if err := a.Validate(); err != nil {
		return MarkMessageReadCommand{}, err
	}
	cmd.actor = a

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkMessageReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkMessageReadCommandIsNotConstructed)
}

// MessageID returns the message to stamp.
func (c MarkMessageReadCommand) MessageID() kernel.UUID {
	return c.messageID
}

// Actor returns the acting identity.
func (c MarkMessageReadCommand) Actor() actor.Actor {
	return c.actor
}

// MarkMessageReadCommandHandler stamps read timestamps on messages.
type MarkMessageReadCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkMessageReadCommandHandler creates a handler for read receipts.
func NewMarkMessageReadCommandHandler(uowFactory OrderUoWFactory) MarkMessageReadCommandHandler {
	return MarkMessageReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the message, resolves its order under the participation
// policy and stamps the read timestamp.
func (h *MarkMessageReadCommandHandler) Handle(ctx context.Context, cmd MarkMessageReadCommand) (*order.Message, error) {
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

	orderRepo := uow.OrderRepository()
	message, err := orderRepo.GetMessage(ctx, cmd.MessageID())
	if err != nil {
		return nil, err
	}

	if _, err = access.ResolveOrder(ctx, orderRepo, message.OrderID(), cmd.Actor(), access.Participation); err != nil {
		return nil, err
	}

	message.MarkRead(time.Now())

	if err = orderRepo.UpdateMessage(ctx, message); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return message, nil
}
