// Package postgres provides the GORM-based Unit of Work of the trading
// service. A unit of work wraps one database transaction and hands out order
// line repositories bound to it, so that all lines of one submission are
// written atomically.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderLineRepository(order.Purchase).Add(ctx, lines); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a no-op returning
// gorm.ErrInvalidTransaction, which makes the deferred form above safe.
//
// Each UnitOfWork instance holds its own transaction; goroutines must not
// share one.
package postgres

import (
	"context"

	"trading/internal/adapters/out/postgres/orderrepo"
	"trading/internal/core/domain/model/order"
	"trading/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        string
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// It also serves read-only repositories outside of any transaction.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// OrderLineRepository returns a repository of kind that runs every statement
// on its own, for queries.
func (f *GormUnitOfWorkFactory) OrderLineRepository(kind order.Kind) ports.OrderLineRepository {
	return orderrepo.NewGormOrderLineRepository(f.db, kind, discardTracker{})
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin twice does not nest transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx

	return nil
}

// Commit finalizes the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction and the aggregates tracked in it.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderLineRepository provides the line repository of kind. Statements run
// within the current transaction if one is active, otherwise directly on the
// main connection.
func (uow *GormUnitOfWork) OrderLineRepository(kind order.Kind) ports.OrderLineRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderLineRepository(db, kind, uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Called by repositories after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedIDs returns the ids of the aggregates tracked so far, in write order.
func (uow *GormUnitOfWork) TrackedIDs() []string {
	ids := make([]string, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		ids = append(ids, t.ID)
	}
	return ids
}

type discardTracker struct{}

func (discardTracker) TrackAggregate(string, any) {}
