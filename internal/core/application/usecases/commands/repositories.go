// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"trading/internal/core/domain/model/order"
	"trading/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderLineRepoFactory provides access to the line repository of an order
	// kind within a transaction.
	OrderLineRepoFactory interface {
		OrderLineRepository(kind order.Kind) ports.OrderLineRepository
	}

	// OrderUoW manages transactions for order submissions.
	OrderUoW interface {
		TxManager
		OrderLineRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
