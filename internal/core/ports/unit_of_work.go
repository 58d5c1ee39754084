package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Batch transitions (consolidate, assign, dispatch) read, validate, and
// write several order rows; wrapping that sequence in one unit of work
// guarantees a concurrent conflicting update cannot leave the batch
// half-advanced. Client code must explicitly manage the transaction
// lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository instance bound to the current
	// transaction. Repository will use the transaction started by Begin().
	OrderRepository() OrderRepository

	// GetTrackedAggregates returns the orders written through this unit of
	// work's repositories, in the order they were touched. Command handlers
	// publish this set after a successful commit.
	GetTrackedAggregates() []*order.Order
}
