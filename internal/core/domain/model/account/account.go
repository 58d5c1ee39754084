// Package account holds the read models for users of the ordering
// platform. Registration, credentials, and token issuance live outside
// this service; the workflow only resolves users to check roles, zones,
// and ownership.
package account

import (
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// Role identifies what a user may do in the ordering workflow.
type Role string

const (
	// RoleShopkeeper creates orders and confirms receipt of goods.
	RoleShopkeeper Role = "shopkeeper"

	// RolePlatform consolidates pending orders and assigns suppliers.
	RolePlatform Role = "platform"

	// RoleSupplier fulfills assigned orders and advances their shipping status.
	RoleSupplier Role = "supplier"
)

// Validate checks the role is one of the three known roles.
func (r Role) Validate() error {
	switch r {
	case RoleShopkeeper, RolePlatform, RoleSupplier:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
}

// User is the resolved identity of a workflow participant.
// ZoneID is only set for shopkeepers; a shopkeeper without a zone
// cannot place orders.
type User struct {
	ID     kernel.UUID
	Name   string
	Role   Role
	ZoneID *kernel.UUID
}
