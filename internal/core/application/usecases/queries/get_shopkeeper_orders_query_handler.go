package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShopkeeperOrdersQueryHandler retrieves a shopkeeper's orders from
// the database, newest first, with full line detail.
type GetShopkeeperOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetShopkeeperOrdersQueryHandler creates a handler for shopkeeper
// order history queries. Requires a GORM database connection.
func NewGetShopkeeperOrdersQueryHandler(db *gorm.DB) GetShopkeeperOrdersQueryHandler {
	return GetShopkeeperOrdersQueryHandler{db: db}
}

// Handle executes the history query. Orders come back newest first; the
// per-order line rows arrive adjacent thanks to the two-level ordering,
// so grouping is a single pass.
func (h GetShopkeeperOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetShopkeeperOrdersQuery,
) ([]GetShopkeeperOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetShopkeeperOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.zone_id,
			o.supplier_id,
			o.status,
			l.product_id,
			l.quantity,
			l.unit_price,
			l.received
		FROM orders o
		JOIN order_lines l ON l.order_id = o.id
		WHERE o.shopkeeper_id = ?
		ORDER BY o.created_at DESC, o.id, l.product_id
	`, query.ShopkeeperID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			zoneID     uuid.UUID
			supplierID uuid.NullUUID
			status     int
			productID  uuid.UUID
			quantity   int
			unitPrice  int64
			received   bool
		)

		err = rows.Scan(&id, &zoneID, &supplierID, &status, &productID, &quantity, &unitPrice, &received)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		if len(orders) == 0 || !orders[len(orders)-1].ID.IsEqual(orderID) {
			resp, respErr := newOrderResponse(orderID, zoneID, supplierID, status)
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

func newOrderResponse(
	orderID kernel.UUID, zoneID uuid.UUID, supplierID uuid.NullUUID, status int,
) (GetShopkeeperOrdersQueryResponse, error) {
	zone, err := kernel.UUIDFromBytes(zoneID[:])
	if err != nil {
		return GetShopkeeperOrdersQueryResponse{}, err
	}

	orderStatus := order.Status(status)
	if err = orderStatus.Validate(); err != nil {
		return GetShopkeeperOrdersQueryResponse{}, err
	}

	resp := GetShopkeeperOrdersQueryResponse{
		ID:     orderID,
		Status: orderStatus,
		ZoneID: zone,
	}

	if supplierID.Valid {
		supplier, supErr := kernel.UUIDFromBytes(supplierID.UUID[:])
		if supErr != nil {
			return GetShopkeeperOrdersQueryResponse{}, supErr
		}
		resp.SupplierID = &supplier
	}

	return resp, nil
}

func newLineResponse(
	productID uuid.UUID, quantity int, unitPrice int64, received bool,
) (OrderLineResponse, error) {
	product, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return OrderLineResponse{}, err
	}

	price, err := kernel.NewMoney(unitPrice)
	if err != nil {
		return OrderLineResponse{}, err
	}

	return OrderLineResponse{
		ProductID: product,
		Quantity:  quantity,
		UnitPrice: price,
		Received:  received,
	}, nil
}
