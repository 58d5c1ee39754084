package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE for unique constraint violations.
const pgUniqueViolation = "23505"

// SQLSTATE class for connection exceptions.
const pgConnectionExceptionClass = "08"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate *order.Order)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its lines to the database. A violation of
// the active-order unique index surfaces as ConflictError so the caller
// can report which shopkeeper lost the race.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return errs.NewConflictError("shopkeeperId", aggregate.ShopkeeperID().String(),
				"shopkeeper already has an active order")
		}
		return storeError("add order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database: the header columns that
// change over the lifecycle plus the per-line received flags.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"supplier_id": dto.SupplierID,
			"status":      dto.Status,
		})
	if result.Error != nil {
		return storeError("update order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	for _, line := range dto.Lines {
		err := r.db.WithContext(ctx).Model(&LineDTO{}).
			Where("order_id = ? AND product_id = ?", line.OrderID, line.ProductID).
			Update("received", line.Received).Error
		if err != nil {
			return storeError("update order lines", err)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, storeError("get order", err)
	}

	return toDomain(dto)
}

// GetMany retrieves the orders whose ids resolve. Unknown ids are simply
// absent from the result.
func (r *GormOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").Find(&dtos, "id IN ?", rawIDs).Error
	if err != nil {
		return nil, storeError("get orders", err)
	}

	return toDomainAll(dtos)
}

// GetActiveByShopkeeper retrieves the shopkeeper's order whose status is
// anything but Received. The partial unique index guarantees at most one
// such row exists.
func (r *GormOrderRepository) GetActiveByShopkeeper(
	ctx context.Context, shopkeeperID kernel.UUID,
) (*order.Order, error) {
	if err := shopkeeperID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").
		First(&dto, "shopkeeper_id = ? AND status <> ?", shopkeeperID.Bytes(), order.Received).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("shopkeeperId", shopkeeperID.String(),
				fmt.Errorf("shopkeeper has no active order"))
		}
		return nil, storeError("get active order", err)
	}

	return toDomain(dto)
}

// GetPendingPastDeadline retrieves pending orders whose consolidation
// deadline lies before the given instant.
func (r *GormOrderRepository) GetPendingPastDeadline(
	ctx context.Context, now time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).Preload("Lines").
		Find(&dtos, "status = ? AND deadline < ?", order.Pending, now).Error
	if err != nil {
		return nil, storeError("get pending orders", err)
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}

// storeError classifies low-level database failures. Timeouts, canceled
// contexts, and lost connections become TransientError so callers know a
// retry may succeed; everything else passes through unchanged.
func storeError(operation string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.NewTransientError(operation, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, pgConnectionExceptionClass) {
		return errs.NewTransientError(operation, err)
	}

	return err
}
