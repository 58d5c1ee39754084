package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrConsolidateOrdersCommandIsNotConstructed = errors.New(
		"ConsolidateOrdersCommand must be created via NewConsolidateOrdersCommand constructor",
	)
)

// ConsolidateOrdersCommand represents the platform's request to batch a
// set of same-zone pending orders into a consolidation set.
type ConsolidateOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConsolidateOrdersCommand creates a command to consolidate the given
// orders. Validates that at least one order id is provided and that all
// ids, including the caller's, are set.
func NewConsolidateOrdersCommand(orderIDs []kernel.UUID, callerID kernel.UUID) (ConsolidateOrdersCommand, error) {
	cmd := ConsolidateOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setCallerID(callerID),
	); err != nil {
		return ConsolidateOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConsolidateOrdersCommand) Validate() error {
	return c.guard.Validate(ErrConsolidateOrdersCommandIsNotConstructed)
}

// OrderIDs returns the ids of the orders to consolidate.
func (c ConsolidateOrdersCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// CallerID returns the id of the platform operator issuing the request.
func (c ConsolidateOrdersCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *ConsolidateOrdersCommand) setOrderIDs(orderIDs []kernel.UUID) error {
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

func (c *ConsolidateOrdersCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}
	c.callerID = callerID
	return nil
}
