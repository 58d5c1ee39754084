package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions (directed, no cycles):
//
//	Pending → Consolidating → Assigned → Dispatched → Shipped → Delivered → Received
//
// The first three transitions are batch operations driven by the platform,
// the next three are single-order steps driven by the assigned supplier,
// and the last is derived for the shopkeeper once every line is received.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a shopkeeper creates an order.
	// Pending orders wait to be consolidated with other orders of the zone.
	Pending

	// Consolidating indicates the order has been batched with other
	// same-zone orders and awaits supplier assignment.
	Consolidating

	// Assigned indicates a supplier has been bound to the order.
	Assigned

	// Dispatched indicates the supplier batch has left for fulfillment.
	Dispatched

	// Shipped indicates the supplier has the goods in transit.
	Shipped

	// Delivered indicates the goods arrived at the shopkeeper.
	// The shopkeeper now confirms receipt line by line.
	Delivered

	// Received is the terminal status: every line was confirmed received.
	// Only Received orders are inactive; a shopkeeper with an order in any
	// other status cannot create a new one.
	Received
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Pending:       "Pending",
		Consolidating: "Consolidating",
		Assigned:      "Assigned",
		Dispatched:    "Dispatched",
		Shipped:       "Shipped",
		Delivered:     "Delivered",
		Received:      "Received",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:       "Pending",
		Consolidating: "Consolidating",
		Assigned:      "Assigned",
		Dispatched:    "Dispatched",
		Shipped:       "Shipped",
		Delivered:     "Delivered",
		Received:      "Received",
	}
}

// StatusFromString parses the string representation produced by String.
// The comparison is exact; unknown names return a validation error.
// Used when API clients filter order listings by status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status name", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value,
// including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether an order in this status blocks its shopkeeper
// from creating a new order. Every valid status except Received is active.
func (s Status) IsActive() bool {
	return s.Validate() == nil && s != Received
}

// Next returns the direct successor in the lifecycle.
// Received has no successor and returns an error.
func (s Status) Next() (Status, error) {
	//nolint:exhaustive // Received and Unknown fall through to the error
	switch s {
	case Pending:
		return Consolidating, nil
	case Consolidating:
		return Assigned, nil
	case Assigned:
		return Dispatched, nil
	case Dispatched:
		return Shipped, nil
	case Shipped:
		return Delivered, nil
	case Delivered:
		return Received, nil
	}
	return Unknown, errs.NewInvalidStateErrorWithCause("status", s.String(),
		fmt.Errorf("%s has no successor", s.String()))
}

// transitionTo validates that target is the direct successor of s.
// All lifecycle transitions funnel through this check, so the state
// machine has exactly one definition of its edges.
func (s Status) transitionTo(target Status) (Status, error) {
	next, err := s.Next()
	if err != nil {
		return Unknown, err
	}
	if next != target {
		return Unknown, errs.NewInvalidStateErrorWithCause("status", s.String(),
			fmt.Errorf("%s is not reachable from %s", target.String(), s.String()))
	}
	return target, nil
}

// Consolidate transitions the status to Consolidating.
// Valid only from Pending.
func (s Status) Consolidate() (Status, error) {
	return s.transitionTo(Consolidating)
}

// Assign transitions the status to Assigned.
// Valid only from Consolidating.
func (s Status) Assign() (Status, error) {
	return s.transitionTo(Assigned)
}

// Dispatch transitions the status to Dispatched.
// Valid only from Assigned.
func (s Status) Dispatch() (Status, error) {
	return s.transitionTo(Dispatched)
}

// Ship transitions the status to Shipped.
// Valid only from Dispatched.
func (s Status) Ship() (Status, error) {
	return s.transitionTo(Shipped)
}

// Deliver transitions the status to Delivered.
// Valid only from Shipped.
func (s Status) Deliver() (Status, error) {
	return s.transitionTo(Delivered)
}

// Receive transitions the status to Received.
// Valid only from Delivered; the order aggregate additionally requires
// every line to be confirmed before performing this transition.
func (s Status) Receive() (Status, error) {
	return s.transitionTo(Received)
}

// ValidateCanHaveSupplier validates the consistency between order status
// and supplier assignment: orders before Assigned must not carry a
// supplier, orders from Assigned onward must.
func (s Status) ValidateCanHaveSupplier(supplier bool) error {
	if err := s.Validate(); err != nil {
		return err
	}

	if supplier && s < Assigned {
		return errs.NewInvalidStateErrorWithCause("status", s.String(),
			fmt.Errorf("%s is not a valid status to have a supplier", s.String()))
	}

	if !supplier && s >= Assigned {
		return errs.NewInvalidStateErrorWithCause("status", s.String(),
			fmt.Errorf("%s is not a valid status to have no supplier", s.String()))
	}

	return nil
}
