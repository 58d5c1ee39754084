// Package queries contains read operations that bypass the domain model.
// Implements the Query side of the CQRS architecture: handlers read
// directly from the database and return plain response structs shaped
// for the callers, never aggregates.
package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetShopkeeperOrdersQueryIsNotConstructed = errors.New(
		"GetShopkeeperOrdersQuery must be created via NewGetShopkeeperOrdersQuery constructor",
	)
)

// GetShopkeeperOrdersQuery retrieves a shopkeeper's order history, newest
// first, each order with its full line detail.
//
// Example:
//
//	query, err := NewGetShopkeeperOrdersQuery(shopkeeperID)
//	handler := NewGetShopkeeperOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	for _, o := range orders {
//	    fmt.Printf("order %s is %s\n", o.ID, o.Status)
//	}
type GetShopkeeperOrdersQuery struct {
	shopkeeperID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShopkeeperOrdersQuery creates a query for the given shopkeeper's
// orders.
func NewGetShopkeeperOrdersQuery(shopkeeperID kernel.UUID) (GetShopkeeperOrdersQuery, error) {
	if err := shopkeeperID.Validate(); err != nil {
		return GetShopkeeperOrdersQuery{}, err
	}

	return GetShopkeeperOrdersQuery{
		shopkeeperID: shopkeeperID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShopkeeperOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetShopkeeperOrdersQueryIsNotConstructed)
}

// ShopkeeperID returns the id of the shopkeeper whose orders are requested.
func (q GetShopkeeperOrdersQuery) ShopkeeperID() kernel.UUID {
	return q.shopkeeperID
}

// OrderLineResponse is one product position of an order as the read side
// reports it: the snapshotted unit price and the receipt confirmation flag.
type OrderLineResponse struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice kernel.Money
	Received  bool
}

// GetShopkeeperOrdersQueryResponse represents one order in a shopkeeper's
// history with its lines and computed total.
type GetShopkeeperOrdersQueryResponse struct {
	ID         kernel.UUID
	Status     order.Status
	ZoneID     kernel.UUID
	SupplierID *kernel.UUID
	Total      kernel.Money
	Lines      []OrderLineResponse
}
