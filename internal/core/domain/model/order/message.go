package order

import (
	"time"

	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/pkg/errs"
)

// Message is one entry of an order's communication thread. Messages are
// append-only: once sent they are never edited or removed, and the read
// timestamp is set exactly once.
type Message struct {
	id          kernel.UUID
	orderID     kernel.UUID
	authorID    kernel.UUID
	body        string
	attachments []string
	urgent      bool
	sentAt      time.Time
	readAt      *time.Time

	isConstructed bool
}

// NewMessage creates a message on an order's thread.
func NewMessage(
	id kernel.UUID,
	orderID kernel.UUID,
	authorID kernel.UUID,
	body string,
	attachments []string,
	urgent bool,
	sentAt time.Time,
) (*Message, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := authorID.Validate(); err != nil {
		return nil, err
	}
	if body == "" {
		return nil, errs.NewValueIsRequiredError("message body")
	}
	if sentAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("sentAt")
	}

	return &Message{
		id:            id,
		orderID:       orderID,
		authorID:      authorID,
		body:          body,
		attachments:   attachments,
		urgent:        urgent,
		sentAt:        sentAt,
		isConstructed: true,
	}, nil
}

// RestoreMessage reconstructs a message from persistence, including its
// read state.
func RestoreMessage(
	id kernel.UUID,
	orderID kernel.UUID,
	authorID kernel.UUID,
	body string,
	attachments []string,
	urgent bool,
	sentAt time.Time,
	readAt *time.Time,
) (*Message, error) {
	msg, err := NewMessage(id, orderID, authorID, body, attachments, urgent, sentAt)
	if err != nil {
		return nil, err
	}
	msg.readAt = readAt
	return msg, nil
}

// Validate ensures the message was created through a constructor.
func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return errs.NewValueIsRequiredError("Message must be created via NewMessage constructor")
	}
	return nil
}

// ID returns the message identifier.
func (m *Message) ID() kernel.UUID {
	return m.id
}

// OrderID returns the order this message belongs to.
func (m *Message) OrderID() kernel.UUID {
	return m.orderID
}

// AuthorID returns the sending user.
func (m *Message) AuthorID() kernel.UUID {
	return m.authorID
}

// Body returns the message text.
func (m *Message) Body() string {
	return m.body
}

// Attachments returns references to attached files, if any.
func (m *Message) Attachments() []string {
	return m.attachments
}

// IsUrgent reports whether the sender flagged the message as urgent.
func (m *Message) IsUrgent() bool {
	return m.urgent
}

// SentAt returns when the message was sent.
func (m *Message) SentAt() time.Time {
	return m.sentAt
}

// ReadAt returns when the message was first read, or nil if unread.
func (m *Message) ReadAt() *time.Time {
	return m.readAt
}

// MarkRead stamps the read timestamp. The first call sets it; subsequent
// calls are no-ops so the original read time is preserved.
func (m *Message) MarkRead(now time.Time) {
	if m.readAt != nil {
		return
	}
	readAt := now
	m.readAt = &readAt
}
