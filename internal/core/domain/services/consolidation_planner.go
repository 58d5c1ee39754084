package services

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// ConsolidationPlanner is the domain service that batches same-zone
// pending orders into a consolidation set.
//
// Business rules:
//   - every requested order id must resolve
//   - all orders in the batch must share one zone
//   - all orders in the batch must be Pending
//   - the batch transitions as a whole or not at all
//
// The planner validates the whole set before touching any order, so a
// failed precondition leaves every aggregate unchanged. The surrounding
// unit of work makes the persisted transition equally atomic.
type ConsolidationPlanner struct{}

// NewConsolidationPlanner creates a new ConsolidationPlanner instance.
func NewConsolidationPlanner() ConsolidationPlanner {
	return ConsolidationPlanner{}
}

// Consolidate moves every order in the batch from Pending to
// Consolidating. requestedCount is the number of ids the caller asked
// for; a shorter orders slice means some ids did not resolve.
func (ConsolidationPlanner) Consolidate(orders []*order.Order, requestedCount int) error {
	if len(orders) == 0 {
		return errs.NewValueIsRequiredError("orderIds")
	}
	if len(orders) != requestedCount {
		return errs.NewObjectNotFoundErrorWithCause("orderIds", requestedCount,
			fmt.Errorf("only %d of %d orders resolved", len(orders), requestedCount))
	}

	requiredZone := orders[0].ZoneID()
	for _, o := range orders {
		if !o.ZoneID().IsEqual(requiredZone) {
			return errs.NewConflictError("zoneId", requiredZone.String(),
				"all orders in a consolidation batch must share one zone")
		}
	}

	for _, o := range orders {
		if o.Status() != order.Pending {
			return errs.NewInvalidStateErrorWithCause("order", o.Status().String(),
				fmt.Errorf("order %s is not Pending", o.ID().String()))
		}
	}

	for _, o := range orders {
		if err := o.Consolidate(); err != nil {
			// Unreachable after the status sweep above; surfaced anyway so a
			// broken invariant aborts the batch instead of half-applying it.
			return errors.Join(errs.ErrInvalidState, err)
		}
	}

	return nil
}
