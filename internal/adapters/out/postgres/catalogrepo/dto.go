// Package catalogrepo provides read-only GORM access to the reference
// data the ordering workflow depends on: users with their roles and
// zones, the product catalog, and the zones themselves. The workflow
// never writes these tables; they are administered elsewhere.
package catalogrepo

import (
	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for workflow participants.
type UserDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Role   string     `gorm:"index"`
	ZoneID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

// ProductDTO represents the database structure for catalog products.
// BasePrice is stored in cents.
type ProductDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Unit      string
	BasePrice int64
	Active    bool `gorm:"index"`
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// ZoneDTO represents the database structure for consolidation zones.
type ZoneDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName specifies the database table name for zones.
func (ZoneDTO) TableName() string {
	return "zones"
}

func userToDomain(dto UserDTO) (account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return account.User{}, err
	}

	role := account.Role(dto.Role)
	if err = role.Validate(); err != nil {
		return account.User{}, err
	}

	user := account.User{
		ID:   id,
		Name: dto.Name,
		Role: role,
	}

	if dto.ZoneID != nil {
		zoneID, zoneErr := kernel.UUIDFromBytes((*dto.ZoneID)[:])
		if zoneErr != nil {
			return account.User{}, zoneErr
		}
		user.ZoneID = &zoneID
	}

	return user, nil
}

func productToDomain(dto ProductDTO) (catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Product{}, err
	}

	price, err := kernel.NewMoney(dto.BasePrice)
	if err != nil {
		return catalog.Product{}, err
	}

	return catalog.Product{
		ID:        id,
		Name:      dto.Name,
		Unit:      dto.Unit,
		BasePrice: price,
		Active:    dto.Active,
	}, nil
}

func zoneToDomain(dto ZoneDTO) (catalog.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Zone{}, err
	}

	return catalog.Zone{
		ID:   id,
		Name: dto.Name,
	}, nil
}
