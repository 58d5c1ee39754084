package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves the platform-wide order overview,
// optionally narrowed to one zone and/or one status. The response also
// carries per-status and per-zone tallies over the filtered set, which
// is what the consolidation screen works from.
//
// Example:
//
//	query, err := NewGetAllOrdersQuery(&zoneID, nil)
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	overview, err := handler.Handle(ctx, query)
//	pending := overview.StatusTally[order.Pending.String()]
type GetAllOrdersQuery struct {
	zoneID *kernel.UUID
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates an overview query. Both filters are
// optional; nil means no filtering on that dimension.
func NewGetAllOrdersQuery(zoneID *kernel.UUID, status *order.Status) (GetAllOrdersQuery, error) {
	if zoneID != nil {
		if err := zoneID.Validate(); err != nil {
			return GetAllOrdersQuery{}, err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetAllOrdersQuery{}, err
		}
	}

	return GetAllOrdersQuery{
		zoneID: zoneID,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// ZoneID returns the optional zone filter.
func (q GetAllOrdersQuery) ZoneID() *kernel.UUID {
	return q.zoneID
}

// Status returns the optional status filter.
func (q GetAllOrdersQuery) Status() *order.Status {
	return q.status
}

// OrderSummary is one order in the platform overview: header fields and
// the computed total, without line detail.
type OrderSummary struct {
	ID           kernel.UUID
	ShopkeeperID kernel.UUID
	ZoneID       kernel.UUID
	SupplierID   *kernel.UUID
	Status       order.Status
	Total        kernel.Money
}

// GetAllOrdersQueryResponse is the platform overview: the filtered
// orders plus counts per status name and per zone id.
type GetAllOrdersQueryResponse struct {
	Orders      []OrderSummary
	StatusTally map[string]int
	ZoneTally   map[kernel.UUID]int
}
