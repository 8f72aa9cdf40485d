package commands

import (
	"context"
	"errors"
	"time"

	"agritrade/internal/core/application/access"
	"agritrade/internal/core/domain/model/actor"
	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/core/domain/model/order"
	"agritrade/internal/pkg/errs"
	"agritrade/internal/pkg/guard"
)

var ErrSendOrderMessageCommandIsNotConstructed = errors.New(
	"SendOrderMessageCommand must be created via NewSendOrderMessageCommand constructor",
)

// SendOrderMessageCommand appends a message to an order's thread. Messages
// are append-only; either party may write at any point of the lifecycle.
type SendOrderMessageCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	actor       actor.Actor
	body        string
	attachments []string
	urgent      bool

	guard guard.ConstructorGuard
}

// NewSendOrderMessageCommand creates a command to post a message.
func NewSendOrderMessageCommand(
	orderID kernel.UUID,
	a actor.Actor,
	body string,
	attachments []string,
	urgent bool,
) (SendOrderMessageCommand, error) {
	cmd := SendOrderMessageCommand{
		attachments: attachments,
		urgent:      urgent,
		guard:       guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return SendOrderMessageCommand{}, err
	}
	cmd.orderID = orderID

	if err := a.Validate(); err != nil {
		return SendOrderMessageCommand{}, err
	}
	cmd.actor = a

	if body == "" {
		return SendOrderMessageCommand{}, errs.NewValueIsRequiredError("body")
	}
	cmd.body = body

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendOrderMessageCommand) Validate() error {
	return c.guard.Validate(ErrSendOrderMessageCommandIsNotConstructed)
}

// OrderID returns the order whose thread receives the message.
func (c SendOrderMessageCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting identity.
func (c SendOrderMessageCommand) Actor() actor.Actor {
	return c.actor
}

// Body returns the message text.
func (c SendOrderMessageCommand) Body() string {
	return c.body
}

// Attachments returns the attachment references.
func (c SendOrderMessageCommand) Attachments() []string {
	return c.attachments
}

// Urgent reports whether the message is flagged urgent.
func (c SendOrderMessageCommand) Urgent() bool {
	return c.urgent
}

// SendOrderMessageCommandHandler posts messages on order threads.
type SendOrderMessageCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSendOrderMessageCommandHandler creates a handler for posting messages.
func NewSendOrderMessageCommandHandler(uowFactory OrderUoWFactory) SendOrderMessageCommandHandler {
	return SendOrderMessageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the order under the participation policy and appends the
// message to its thread.
func (h *SendOrderMessageCommandHandler) Handle(ctx context.Context, cmd SendOrderMessageCommand) (*order.Message, error) {
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
	aggregate, err := access.ResolveOrder(ctx, orderRepo, cmd.OrderID(), cmd.Actor(), access.Participation)
	if err != nil {
		return nil, err
	}

	message, err := order.NewMessage(
		kernel.NewUUID(), aggregate.ID(), cmd.Actor().UserID(),
		cmd.Body(), cmd.Attachments(), cmd.Urgent(), time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.AddMessage(ctx, message); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return message, nil
}
