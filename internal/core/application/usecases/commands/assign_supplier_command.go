package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrAssignSupplierCommandIsNotConstructed = errors.New(
		"AssignSupplierCommand must be created via NewAssignSupplierCommand constructor",
	)
)

// AssignSupplierCommand represents the platform's request to bind a
// supplier to a batch of consolidated orders.
type AssignSupplierCommand struct { //nolint:recvcheck //using for validation
	orderIDs   []kernel.UUID
	supplierID kernel.UUID
	callerID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignSupplierCommand creates a command to assign the given supplier
// to the given orders.
func NewAssignSupplierCommand(
	orderIDs []kernel.UUID, supplierID kernel.UUID, callerID kernel.UUID,
) (AssignSupplierCommand, error) {
	cmd := AssignSupplierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setSupplierID(supplierID),
		cmd.setCallerID(callerID),
	); err != nil {
		return AssignSupplierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignSupplierCommand) Validate() error {
	return c.guard.Validate(ErrAssignSupplierCommandIsNotConstructed)
}

// OrderIDs returns the ids of the orders to assign.
func (c AssignSupplierCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// SupplierID returns the id of the supplier receiving the batch.
func (c AssignSupplierCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// CallerID returns the id of the platform operator issuing the request.
func (c AssignSupplierCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *AssignSupplierCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("orderIds")
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	c.orderIDs = orderIDs
	return nil
}

func (c *AssignSupplierCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	c.supplierID = supplierID
	return nil
}

func (c *AssignSupplierCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}
	c.callerID = callerID
	return nil
}
