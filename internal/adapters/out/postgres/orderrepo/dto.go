// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The partial unique index over shopkeeper_id covers only rows whose
// status is not Received, so the database itself rejects a second active
// order per shopkeeper even under concurrent inserts.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShopkeeperID uuid.UUID  `gorm:"type:uuid;index:idx_orders_active_shopkeeper,unique,where:status <> 7"`
	ZoneID       uuid.UUID  `gorm:"type:uuid;index"`
	SupplierID   *uuid.UUID `gorm:"type:uuid;index"`
	Status       int
	CreatedAt    time.Time
	Deadline     time.Time
	Lines        []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one product position of an order. The composite
// primary key keeps each product to a single line per order.
type LineDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int
	UnitPrice int64
	Received  bool
}

// TableName specifies the database table name for order lines.
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional supplier assignment and
// the per-line receipt flags.
func fromDomain(aggregate *order.Order) OrderDTO {
	var supplierID *uuid.UUID
	if id := aggregate.Supplier(); id != nil {
		raw := id.Bytes()
		supplierID = &raw
	}

	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: line.ProductID().Bytes(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().Cents(),
			Received:  line.Received(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		ShopkeeperID: aggregate.ShopkeeperID().Bytes(),
		ZoneID:       aggregate.ZoneID().Bytes(),
		SupplierID:   supplierID,
		Status:       int(aggregate.Status()),
		CreatedAt:    aggregate.CreatedAt(),
		Deadline:     aggregate.Deadline(),
		Lines:        lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lines and supplier
// assignment using RestoreOrder, which re-validates the invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shopkeeperID, err := kernel.UUIDFromBytes(dto.ShopkeeperID[:])
	if err != nil {
		return nil, err
	}

	zoneID, err := kernel.UUIDFromBytes(dto.ZoneID[:])
	if err != nil {
		return nil, err
	}

	var supplierID *kernel.UUID
	if dto.SupplierID != nil {
		sID, supplierErr := kernel.UUIDFromBytes((*dto.SupplierID)[:])
		if supplierErr != nil {
			return nil, supplierErr
		}

		supplierID = &sID
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		productID, lineErr := kernel.UUIDFromBytes(lineDTO.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		unitPrice, lineErr := kernel.NewMoney(lineDTO.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.RestoreLine(productID, lineDTO.Quantity, unitPrice, lineDTO.Received)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id, shopkeeperID, zoneID, supplierID,
		order.Status(dto.Status), dto.CreatedAt, dto.Deadline, lines,
	)
}
