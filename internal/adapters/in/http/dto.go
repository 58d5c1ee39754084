package http

import (
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// Error is the JSON error body returned by every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderLine is one requested product position in an order creation request.
type NewOrderLine struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

// NewOrder is the request body for creating an order.
type NewOrder struct {
	Lines []NewOrderLine `json:"lines"`
}

// OrderLine is one product position in an order response.
type OrderLine struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	UnitPrice string    `json:"unitPrice"`
	Received  bool      `json:"received"`
}

// Order is the detailed order representation returned to shopkeepers and
// suppliers.
type Order struct {
	ID           uuid.UUID   `json:"id"`
	ShopkeeperID uuid.UUID   `json:"shopkeeperId,omitempty"`
	ZoneID       uuid.UUID   `json:"zoneId"`
	SupplierID   *uuid.UUID  `json:"supplierId,omitempty"`
	Status       string      `json:"status"`
	Total        string      `json:"total"`
	Deadline     string      `json:"deadline,omitempty"`
	Lines        []OrderLine `json:"lines,omitempty"`
}

// OrdersOverview is the platform view: filtered orders plus tallies.
type OrdersOverview struct {
	Orders      []Order        `json:"orders"`
	StatusTally map[string]int `json:"statusTally"`
	ZoneTally   map[string]int `json:"zoneTally"`
}

// ConsolidateRequest is the request body for batching pending orders.
type ConsolidateRequest struct {
	OrderIDs []uuid.UUID `json:"orderIds"`
}

// AssignRequest is the request body for binding a supplier to a batch.
type AssignRequest struct {
	OrderIDs   []uuid.UUID `json:"orderIds"`
	SupplierID uuid.UUID   `json:"supplierId"`
}

// DispatchRequest is the request body for releasing assigned orders.
type DispatchRequest struct {
	OrderIDs []uuid.UUID `json:"orderIds"`
}

// DispatchResponse reports how a dispatch batch went.
type DispatchResponse struct {
	DispatchedCount int         `json:"dispatchedCount"`
	SkippedIDs      []uuid.UUID `json:"skippedIds"`
}

// UpdateStatusRequest is the request body for supplier status updates.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ReceiveLineResponse reports a receipt confirmation outcome. A completed
// order frees the shopkeeper to place a new one.
type ReceiveLineResponse struct {
	Completed         bool `json:"completed"`
	CanCreateNewOrder bool `json:"canCreateNewOrder"`
}

func orderFromAggregate(o *order.Order) Order {
	lines := make([]OrderLine, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, OrderLine{
			ProductID: line.ProductID().Bytes(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().String(),
			Received:  line.Received(),
		})
	}

	return Order{
		ID:           o.ID().Bytes(),
		ShopkeeperID: o.ShopkeeperID().Bytes(),
		ZoneID:       o.ZoneID().Bytes(),
		SupplierID:   optionalUUID(o.Supplier()),
		Status:       o.Status().String(),
		Total:        o.Total().String(),
		Deadline:     o.Deadline().Format(time.RFC3339),
		Lines:        lines,
	}
}

func orderFromSummary(summary queries.OrderSummary) Order {
	return Order{
		ID:           summary.ID.Bytes(),
		ShopkeeperID: summary.ShopkeeperID.Bytes(),
		ZoneID:       summary.ZoneID.Bytes(),
		SupplierID:   optionalUUID(summary.SupplierID),
		Status:       summary.Status.String(),
		Total:        summary.Total.String(),
	}
}

func orderFromShopkeeperResponse(resp queries.GetShopkeeperOrdersQueryResponse) Order {
	return Order{
		ID:         resp.ID.Bytes(),
		ZoneID:     resp.ZoneID.Bytes(),
		SupplierID: optionalUUID(resp.SupplierID),
		Status:     resp.Status.String(),
		Total:      resp.Total.String(),
		Lines:      linesFromResponses(resp.Lines),
	}
}

func orderFromSupplierResponse(resp queries.GetSupplierOrdersQueryResponse) Order {
	return Order{
		ID:           resp.ID.Bytes(),
		ShopkeeperID: resp.ShopkeeperID.Bytes(),
		ZoneID:       resp.ZoneID.Bytes(),
		Status:       resp.Status.String(),
		Total:        resp.Total.String(),
		Lines:        linesFromResponses(resp.Lines),
	}
}

func linesFromResponses(responses []queries.OrderLineResponse) []OrderLine {
	lines := make([]OrderLine, 0, len(responses))
	for _, line := range responses {
		lines = append(lines, OrderLine{
			ProductID: line.ProductID.Bytes(),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.String(),
			Received:  line.Received,
		})
	}
	return lines
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}
