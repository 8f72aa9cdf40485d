package ports

import (
	"context"

	"agritrade/internal/core/domain/model/dispute"
	"agritrade/internal/core/domain/model/kernel"
)

// DisputeRepository defines the persistence contract for dispute aggregates.
type DisputeRepository interface {
	// Add persists a newly raised dispute.
	Add(ctx context.Context, aggregate *dispute.Dispute) error

	// Update persists changes to an existing dispute using a conditional
	// write on the aggregate version.
	Update(ctx context.Context, aggregate *dispute.Dispute) error

	// Get retrieves a dispute by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error)

	// GetByOrder retrieves all disputes raised against an order, most
	// recent first.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*dispute.Dispute, error)
}
