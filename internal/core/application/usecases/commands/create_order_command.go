package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// LineRequest is one requested product position: which product and how
// many units. The unit price is not part of the request; it is
// snapshotted from the catalog when the order is created.
type LineRequest struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a shopkeeper's request to create a new
// order from a list of product positions.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(shopkeeperID, []LineRequest{
//	    {ProductID: riceID, Quantity: 3},
//	    {ProductID: oilID, Quantity: 1},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	shopkeeperID kernel.UUID
	lines        []LineRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the shopkeeper id is set, the line list is not empty,
// and every line has a valid product id and a positive quantity.
func NewCreateOrderCommand(shopkeeperID kernel.UUID, lines []LineRequest) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShopkeeperID(shopkeeperID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ShopkeeperID returns the id of the shopkeeper placing the order.
func (c CreateOrderCommand) ShopkeeperID() kernel.UUID {
	return c.shopkeeperID
}

// Lines returns the requested product positions.
func (c CreateOrderCommand) Lines() []LineRequest {
	return c.lines
}

func (c *CreateOrderCommand) setShopkeeperID(shopkeeperID kernel.UUID) error {
	if err := shopkeeperID.Validate(); err != nil {
		return err
	}
	c.shopkeeperID = shopkeeperID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []LineRequest) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	seen := make(map[kernel.UUID]struct{}, len(lines))
	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", line.Quantity))
		}
		if _, dup := seen[line.ProductID]; dup {
			return errs.NewValueIsInvalidErrorWithCause("lines",
				fmt.Errorf("product %s appears more than once", line.ProductID.String()))
		}
		seen[line.ProductID] = struct{}{}
	}
	c.lines = lines
	return nil
}
