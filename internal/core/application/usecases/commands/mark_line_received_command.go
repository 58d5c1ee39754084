package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrMarkLineReceivedCommandIsNotConstructed = errors.New(
		"MarkLineReceivedCommand must be created via NewMarkLineReceivedCommand constructor",
	)
)

// MarkLineReceivedCommand represents a shopkeeper's confirmation that one
// product line of a delivered order arrived.
type MarkLineReceivedCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID kernel.UUID
	callerID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkLineReceivedCommand creates a command confirming receipt of the
// given product line.
func NewMarkLineReceivedCommand(
	orderID kernel.UUID, productID kernel.UUID, callerID kernel.UUID,
) (MarkLineReceivedCommand, error) {
	cmd := MarkLineReceivedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setCallerID(callerID),
	); err != nil {
		return MarkLineReceivedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkLineReceivedCommand) Validate() error {
	return c.guard.Validate(ErrMarkLineReceivedCommandIsNotConstructed)
}

// OrderID returns the id of the delivered order.
func (c MarkLineReceivedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the id of the confirmed product line.
func (c MarkLineReceivedCommand) ProductID() kernel.UUID {
	return c.productID
}

// CallerID returns the id of the shopkeeper issuing the confirmation.
func (c MarkLineReceivedCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *MarkLineReceivedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *MarkLineReceivedCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *MarkLineReceivedCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}
	c.callerID = callerID
	return nil
}
