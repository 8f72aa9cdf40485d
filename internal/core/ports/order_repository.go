package ports

import (
	"context"
	"time"

	"agritrade/internal/core/domain/model/kernel"
	"agritrade/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// the message threads attached to them.
type OrderRepository interface {
	// NextNumber reserves the next value of the monotonic order number
	// sequence. Numbers are never reused, even for deleted drafts.
	NextNumber(ctx context.Context) (int64, error)

	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using a
	// conditional write on the aggregate version. Returns a concurrency
	// conflict error when the stored version moved under the caller.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, with its
	// items, counter-offer and event history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes a draft order. Only Pending orders are ever deleted;
	// the caller enforces that through the aggregate.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetWithExpiredCounterOffers retrieves orders holding an open
	// counter-offer whose deadline is at or before the given instant.
	GetWithExpiredCounterOffers(ctx context.Context, now time.Time) ([]*order.Order, error)

	// AddMessage persists a new message on an order's thread.
	AddMessage(ctx context.Context, message *order.Message) error

	// GetMessage retrieves a single message by its identifier.
	GetMessage(ctx context.Context, id kernel.UUID) (*order.Message, error)

	// UpdateMessage persists changes to an existing message.
	UpdateMessage(ctx context.Context, message *order.Message) error

	// GetMessages retrieves an order's messages in the order they were sent.
	GetMessages(ctx context.Context, orderID kernel.UUID) ([]*order.Message, error)
}
