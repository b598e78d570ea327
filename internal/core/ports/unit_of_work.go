package ports

import (
	"context"

	"trading/internal/core/domain/model/order"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one order submission.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderLineRepository returns the line repository of kind, bound to the
	// transaction started by Begin.
	OrderLineRepository(kind order.Kind) OrderLineRepository
}
