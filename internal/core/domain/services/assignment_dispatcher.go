package services

import (
	"fmt"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// AssignmentDispatcher is the domain service that binds a supplier to a
// consolidated batch and later releases assigned batches for dispatch.
//
// Business rules:
//   - assignment requires a resolved user with the supplier role
//   - assignment requires every order in the batch to be Consolidating
//   - assignment is all-or-nothing across the batch
//   - dispatch filters the batch to Assigned orders and advances exactly
//     those, reporting the ids it skipped
type AssignmentDispatcher struct{}

// NewAssignmentDispatcher creates a new AssignmentDispatcher instance.
func NewAssignmentDispatcher() AssignmentDispatcher {
	return AssignmentDispatcher{}
}

// Assign binds the supplier to every order in the batch and moves each
// from Consolidating to Assigned. The whole set is validated before any
// order is touched.
func (AssignmentDispatcher) Assign(orders []*order.Order, requestedCount int, supplier account.User) error {
	if len(orders) == 0 {
		return errs.NewValueIsRequiredError("orderIds")
	}
	if len(orders) != requestedCount {
		return errs.NewObjectNotFoundErrorWithCause("orderIds", requestedCount,
			fmt.Errorf("only %d of %d orders resolved", len(orders), requestedCount))
	}

	if supplier.Role != account.RoleSupplier {
		return errs.NewValueIsInvalidErrorWithCause("supplierId",
			fmt.Errorf("user %s has role %q, not %q", supplier.ID.String(), supplier.Role, account.RoleSupplier))
	}

	for _, o := range orders {
		if o.Status() != order.Consolidating {
			return errs.NewInvalidStateErrorWithCause("order", o.Status().String(),
				fmt.Errorf("order %s is not Consolidating", o.ID().String()))
		}
	}

	for _, o := range orders {
		if err := o.AssignSupplier(supplier.ID); err != nil {
			return err
		}
	}

	return nil
}

// Dispatch advances every Assigned order in the batch to Dispatched.
// Orders in any other status are skipped rather than failing the batch;
// their ids are returned so the caller can report them. An empty batch
// is a valid no-op: callers report ids that resolved to nothing as
// skipped themselves.
func (AssignmentDispatcher) Dispatch(orders []*order.Order) (updated []*order.Order, skipped []kernel.UUID, err error) {
	for _, o := range orders {
		if o.Status() == order.Assigned {
			updated = append(updated, o)
		} else {
			skipped = append(skipped, o.ID())
		}
	}

	for _, o := range updated {
		if dispatchErr := o.Dispatch(); dispatchErr != nil {
			return nil, nil, dispatchErr
		}
	}

	return updated, skipped, nil
}
