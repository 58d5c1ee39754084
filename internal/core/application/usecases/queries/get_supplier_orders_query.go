package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetSupplierOrdersQueryIsNotConstructed = errors.New(
		"GetSupplierOrdersQuery must be created via NewGetSupplierOrdersQuery constructor",
	)
)

// GetSupplierOrdersQuery retrieves the orders assigned to a supplier,
// optionally narrowed to one zone and/or one status.
type GetSupplierOrdersQuery struct {
	supplierID kernel.UUID
	zoneID     *kernel.UUID
	status     *order.Status

	guard guard.ConstructorGuard
}

// NewGetSupplierOrdersQuery creates a query for the given supplier's
// assigned orders. Both filters are optional; nil means no filtering on
// that dimension.
func NewGetSupplierOrdersQuery(
	supplierID kernel.UUID, zoneID *kernel.UUID, status *order.Status,
) (GetSupplierOrdersQuery, error) {
	if err := supplierID.Validate(); err != nil {
		return GetSupplierOrdersQuery{}, err
	}
	if zoneID != nil {
		if err := zoneID.Validate(); err != nil {
			return GetSupplierOrdersQuery{}, err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetSupplierOrdersQuery{}, err
		}
	}

	return GetSupplierOrdersQuery{
		supplierID: supplierID,
		zoneID:     zoneID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSupplierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSupplierOrdersQueryIsNotConstructed)
}

// SupplierID returns the id of the supplier whose orders are requested.
func (q GetSupplierOrdersQuery) SupplierID() kernel.UUID {
	return q.supplierID
}

// ZoneID returns the optional zone filter.
func (q GetSupplierOrdersQuery) ZoneID() *kernel.UUID {
	return q.zoneID
}

// Status returns the optional status filter.
func (q GetSupplierOrdersQuery) Status() *order.Status {
	return q.status
}
