// Package catalog holds the read models for the product catalog and the
// geographic zones. Product and zone administration is outside this
// service; the workflow resolves products for price snapshots and zones
// for consolidation scoping.
package catalog

import (
	"ordering/internal/core/domain/model/kernel"
)

// Product is a catalog entry. BasePrice is the current list price that
// gets snapshotted into order lines at creation time; Active products
// are the only ones orderable.
type Product struct {
	ID        kernel.UUID
	Name      string
	Unit      string
	BasePrice kernel.Money
	Active    bool
}

// Zone is a geographic grouping binding shopkeepers to a consolidation
// scope.
type Zone struct {
	ID   kernel.UUID
	Name string
}
