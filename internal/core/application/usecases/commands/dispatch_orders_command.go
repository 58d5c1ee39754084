package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrDispatchOrdersCommandIsNotConstructed = errors.New(
		"DispatchOrdersCommand must be created via NewDispatchOrdersCommand constructor",
	)
)

// DispatchOrdersCommand represents the platform's request to release a
// batch of assigned orders to their suppliers.
type DispatchOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDispatchOrdersCommand creates a command to dispatch the given orders.
func NewDispatchOrdersCommand(orderIDs []kernel.UUID, callerID kernel.UUID) (DispatchOrdersCommand, error) {
	cmd := DispatchOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderIDs(orderIDs),
		cmd.setCallerID(callerID),
	); err != nil {
		return DispatchOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrdersCommandIsNotConstructed)
}

// OrderIDs returns the ids of the orders to dispatch.
func (c DispatchOrdersCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// CallerID returns the id of the platform operator issuing the request.
func (c DispatchOrdersCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *DispatchOrdersCommand) setOrderIDs(orderIDs []kernel.UUID) error {
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

func (c *DispatchOrdersCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}
	c.callerID = callerID
	return nil
}
