package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSupplierOrdersQueryResponse represents one order in a supplier's
// worklist with the line detail needed to pick and pack it.
type GetSupplierOrdersQueryResponse struct {
	ID           kernel.UUID
	ShopkeeperID kernel.UUID
	ZoneID       kernel.UUID
	Status       order.Status
	Total        kernel.Money
	Lines        []OrderLineResponse
}

// GetSupplierOrdersQueryHandler retrieves a supplier's assigned orders
// from the database, oldest assignment first, applying the optional zone
// and status filters in SQL.
type GetSupplierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetSupplierOrdersQueryHandler creates a handler for supplier
// worklist queries. Requires a GORM database connection.
func NewGetSupplierOrdersQueryHandler(db *gorm.DB) GetSupplierOrdersQueryHandler {
	return GetSupplierOrdersQueryHandler{db: db}
}

// Handle executes the supplier query.
func (h GetSupplierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetSupplierOrdersQuery,
) ([]GetSupplierOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetSupplierOrdersQueryResponse, 0)

	sql := `
		SELECT
			o.id,
			o.shopkeeper_id,
			o.zone_id,
			o.status,
			l.product_id,
			l.quantity,
			l.unit_price,
			l.received
		FROM orders o
		JOIN order_lines l ON l.order_id = o.id
		WHERE o.supplier_id = ?
	`
	args := []any{query.SupplierID().Bytes()}

	if query.ZoneID() != nil {
		sql += " AND o.zone_id = ?"
		args = append(args, query.ZoneID().Bytes())
	}
	if query.Status() != nil {
		sql += " AND o.status = ?"
		args = append(args, *query.Status())
	}

	sql += " ORDER BY o.created_at, o.id, l.product_id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id           uuid.UUID
			shopkeeperID uuid.UUID
			zoneID       uuid.UUID
			status       int
			productID    uuid.UUID
			quantity     int
			unitPrice    int64
			received     bool
		)

		err = rows.Scan(&id, &shopkeeperID, &zoneID, &status, &productID, &quantity, &unitPrice, &received)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		if len(orders) == 0 || !orders[len(orders)-1].ID.IsEqual(orderID) {
			resp, respErr := newSupplierOrderResponse(orderID, shopkeeperID, zoneID, status)
			if respErr != nil {
				return nil, respErr
			}
			orders = append(orders, resp)
		}

		current := &orders[len(orders)-1]

		line, lineErr := newLineResponse(productID, quantity, unitPrice, received)
		if lineErr != nil {
			return nil, lineErr
		}
		current.Lines = append(current.Lines, line)
		current.Total = current.Total.Add(line.UnitPrice.MulQuantity(line.Quantity))
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func newSupplierOrderResponse(
	orderID kernel.UUID, shopkeeperID uuid.UUID, zoneID uuid.UUID, status int,
) (GetSupplierOrdersQueryResponse, error) {
	shopkeeper, err := kernel.UUIDFromBytes(shopkeeperID[:])
	if err != nil {
		return GetSupplierOrdersQueryResponse{}, err
	}

	zone, err := kernel.UUIDFromBytes(zoneID[:])
	if err != nil {
		return GetSupplierOrdersQueryResponse{}, err
	}

	orderStatus := order.Status(status)
	if err = orderStatus.Validate(); err != nil {
		return GetSupplierOrdersQueryResponse{}, err
	}

	return GetSupplierOrdersQueryResponse{
		ID:           orderID,
		ShopkeeperID: shopkeeper,
		ZoneID:       zone,
		Status:       orderStatus,
	}, nil
}
