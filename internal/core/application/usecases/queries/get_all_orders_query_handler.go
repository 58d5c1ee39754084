package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves the platform-wide order overview
// from the database, applying the optional zone and status filters in SQL
// and computing the tallies while scanning.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the platform
// overview query. Requires a GORM database connection.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the overview query. Totals are aggregated from the
// line rows in SQL; results come back oldest first so the consolidation
// screen surfaces the longest-waiting orders on top.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) (GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllOrdersQueryResponse{}, err
	}

	sql := `
		SELECT
			o.id,
			o.shopkeeper_id,
			o.zone_id,
			o.supplier_id,
			o.status,
			COALESCE(SUM(l.quantity * l.unit_price), 0) AS total
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE 1 = 1
	`
	args := make([]any, 0, 2)

	if query.ZoneID() != nil {
		sql += " AND o.zone_id = ?"
		args = append(args, query.ZoneID().Bytes())
	}
	if query.Status() != nil {
		sql += " AND o.status = ?"
		args = append(args, *query.Status())
	}

	sql += `
		GROUP BY o.id, o.shopkeeper_id, o.zone_id, o.supplier_id, o.status, o.created_at
		ORDER BY o.created_at, o.id
	`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return GetAllOrdersQueryResponse{}, err
	}
	defer rows.Close()

	response := GetAllOrdersQueryResponse{
		Orders:      make([]OrderSummary, 0),
		StatusTally: make(map[string]int),
		ZoneTally:   make(map[kernel.UUID]int),
	}

	for rows.Next() {
		var (
			id           uuid.UUID
			shopkeeperID uuid.UUID
			zoneID       uuid.UUID
			supplierID   uuid.NullUUID
			status       int
			total        int64
		)

		err = rows.Scan(&id, &shopkeeperID, &zoneID, &supplierID, &status, &total)
		if err != nil {
			return GetAllOrdersQueryResponse{}, err
		}

		summary, sumErr := newOrderSummary(id, shopkeeperID, zoneID, supplierID, status, total)
		if sumErr != nil {
			return GetAllOrdersQueryResponse{}, sumErr
		}

		response.Orders = append(response.Orders, summary)
		response.StatusTally[summary.Status.String()]++
		response.ZoneTally[summary.ZoneID]++
	}

	if err = rows.Err(); err != nil {
		return GetAllOrdersQueryResponse{}, err
	}

	return response, nil
}

func newOrderSummary(
	id uuid.UUID, shopkeeperID uuid.UUID, zoneID uuid.UUID,
	supplierID uuid.NullUUID, status int, total int64,
) (OrderSummary, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummary{}, err
	}
	shopkeeper, err := kernel.UUIDFromBytes(shopkeeperID[:])
	if err != nil {
		return OrderSummary{}, err
	}
	zone, err := kernel.UUIDFromBytes(zoneID[:])
	if err != nil {
		return OrderSummary{}, err
	}

	orderStatus := order.Status(status)
	if err = orderStatus.Validate(); err != nil {
		return OrderSummary{}, err
	}

	totalMoney, err := kernel.NewMoney(total)
	if err != nil {
		return OrderSummary{}, err
	}

	summary := OrderSummary{
		ID:           orderID,
		ShopkeeperID: shopkeeper,
		ZoneID:       zone,
		Status:       orderStatus,
		Total:        totalMoney,
	}

	if supplierID.Valid {
		supplier, supErr := kernel.UUIDFromBytes(supplierID.UUID[:])
		if supErr != nil {
			return OrderSummary{}, supErr
		}
		summary.SupplierID = &supplier
	}

	return summary, nil
}
