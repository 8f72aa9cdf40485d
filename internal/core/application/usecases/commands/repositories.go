// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, access resolution,
// transaction management, and persistence.
package commands

import (
	"context"

	"agritrade/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DisputeRepoFactory provides access to the dispute repository within a transaction.
	DisputeRepoFactory interface {
		DisputeRepository() ports.DisputeRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only touch order aggregates and their messages.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DisputeUoW manages transactions for dispute operations. Dispute
	// commands also read the parent order for access checks, so the order
	// repository rides along in the same transaction.
	DisputeUoW interface {
		TxManager
		OrderRepoFactory
		DisputeRepoFactory
	}

	// DisputeUoWFactory creates new dispute unit of work instances.
	DisputeUoWFactory interface {
		Create() DisputeUoW
	}
)
