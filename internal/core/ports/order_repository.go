// Package ports defines the contracts between the core workflow and the
// infrastructure adapters: order persistence, transaction management,
// collaborator lookups, and event publishing. These interfaces enable
// dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations must translate storage-level failures into the errs
// taxonomy: missing rows as ObjectNotFoundError, uniqueness violations of
// the active-order constraint as ConflictError, and connectivity problems
// as TransientError.
type OrderRepository interface {
	// Add persists a new order aggregate with all its lines.
	// The store's partial unique index over active orders per shopkeeper
	// backs the one-active-order invariant against concurrent creations.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate: its status,
	// supplier assignment, and per-line received flags.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its lines by id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetMany retrieves the orders whose ids resolve, preserving no
	// particular ordering. Unknown ids are simply absent from the result,
	// letting batch operations detect the count mismatch.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)

	// GetActiveByShopkeeper retrieves the shopkeeper's active order, i.e.
	// the one whose status is anything but Received. Returns
	// ObjectNotFoundError when the shopkeeper has none.
	GetActiveByShopkeeper(ctx context.Context, shopkeeperID kernel.UUID) (*order.Order, error)

	// GetPendingPastDeadline retrieves pending orders whose consolidation
	// deadline lies before the given instant. Used by the overdue watch job.
	GetPendingPastDeadline(ctx context.Context, now time.Time) ([]*order.Order, error)
}
