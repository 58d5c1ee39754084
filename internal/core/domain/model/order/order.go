package order

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ConsolidationWindow is the time a shopkeeper is promised before the
// platform consolidates the zone: the order deadline is creation time
// plus this window.
const ConsolidationWindow = 72 * time.Hour

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoLines is returned when an order is created or restored
	// without a single line.
	ErrOrderHasNoLines = errs.NewValueIsRequiredError("order must contain at least one line")
)

// Order is the aggregate root of the ordering workflow. It owns its lines
// and every status transition, so the lifecycle rules cannot be bypassed
// from outside the aggregate.
//
// Order maintains these invariants:
//   - identifier, shopkeeper and zone are set and immutable
//   - at least one line; unit prices are frozen at creation
//   - supplier is only present from Assigned onward
//   - status only moves along the lifecycle edges defined by Status
//   - Received is only reachable once every line is confirmed received
//
// Supplier-driven steps additionally verify that the caller is the
// assigned supplier; receipt confirmation verifies the caller is the
// owning shopkeeper. Orders are permanent audit records and are never
// deleted.
type Order struct {
	id           kernel.UUID
	shopkeeperID kernel.UUID
	zoneID       kernel.UUID

	// supplierID is the assigned supplier's ID (nil until assignment)
	supplierID *kernel.UUID

	status    Status
	createdAt time.Time
	deadline  time.Time
	lines     []Line

	isConstructed bool
}

// NewOrder creates a Pending order for a shopkeeper in their zone.
// The deadline is fixed at now plus the 72-hour consolidation window.
// Lines must already carry their unit-price snapshots (see NewLine);
// an empty line set is rejected.
func NewOrder(
	id kernel.UUID,
	shopkeeperID kernel.UUID,
	zoneID kernel.UUID,
	lines []Line,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now,
		deadline:      now.Add(ConsolidationWindow),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setShopkeeperID(shopkeeperID),
		o.setZoneID(zoneID),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. It re-validates
// the same invariants as NewOrder plus the status/supplier consistency,
// so corrupted rows surface as errors instead of invalid aggregates.
func RestoreOrder(
	id kernel.UUID,
	shopkeeperID kernel.UUID,
	zoneID kernel.UUID,
	supplierID *kernel.UUID,
	status Status,
	createdAt time.Time,
	deadline time.Time,
	lines []Line,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		deadline:      deadline,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setShopkeeperID(shopkeeperID),
		o.setZoneID(zoneID),
		o.setLines(lines),
		status.Validate(),
		status.ValidateCanHaveSupplier(supplierID != nil),
	); err != nil {
		return nil, err
	}

	if supplierID != nil {
		if err := supplierID.Validate(); err != nil {
			return nil, err
		}
		sID := *supplierID
		o.supplierID = &sID
	}

	o.status = status
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Called when reconstructing orders from persistence and before writes.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ShopkeeperID returns the owning shopkeeper's identifier.
func (o *Order) ShopkeeperID() kernel.UUID {
	return o.shopkeeperID
}

// ZoneID returns the zone the order was created in, inherited from the
// shopkeeper at creation time.
func (o *Order) ZoneID() kernel.UUID {
	return o.zoneID
}

// Supplier returns the assigned supplier's ID, or nil before assignment.
func (o *Order) Supplier() *kernel.UUID {
	return o.supplierID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Deadline returns the end of the consolidation window.
func (o *Order) Deadline() time.Time {
	return o.deadline
}

// Lines returns a copy of the order lines. Mutation goes through
// MarkLineReceived only.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Total returns the sum of all line subtotals.
func (o *Order) Total() kernel.Money {
	var total kernel.Money
	for _, line := range o.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// IsActive reports whether this order blocks the shopkeeper from creating
// a new one. Only Received orders are inactive.
func (o *Order) IsActive() bool {
	return o.status.IsActive()
}

// AllLinesReceived reports whether every line has been confirmed.
func (o *Order) AllLinesReceived() bool {
	for _, line := range o.lines {
		if !line.Received() {
			return false
		}
	}
	return true
}

// Consolidate moves the order from Pending to Consolidating.
// Zone homogeneity across the batch is the consolidation planner's
// responsibility; the aggregate only guards its own status edge.
func (o *Order) Consolidate() error {
	newStatus, err := o.status.Consolidate()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignSupplier binds a supplier to the order and moves it from
// Consolidating to Assigned. The supplier's role is validated by the
// assignment dispatcher before any order in the batch is touched.
func (o *Order) AssignSupplier(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.supplierID = &supplierID
	return nil
}

// Dispatch moves the order from Assigned to Dispatched.
func (o *Order) Dispatch() error {
	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// UpdateStatusBySupplier applies one supplier-driven forward step:
// Dispatched, Shipped or Delivered. The caller must be the assigned
// supplier, and the target must be the direct successor of the current
// status; skipping steps is rejected as an invalid state.
func (o *Order) UpdateStatusBySupplier(target Status, caller kernel.UUID) error {
	if target != Dispatched && target != Shipped && target != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a supplier-updatable status", target.String()))
	}

	if err := o.validateSupplierCaller(caller); err != nil {
		return err
	}

	newStatus, err := o.status.transitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkLineReceived confirms receipt of one line. The caller must be the
// owning shopkeeper and the order must be Delivered. When the last
// outstanding line is confirmed, the order advances to Received in the
// same operation; the return value reports whether that happened.
func (o *Order) MarkLineReceived(productID kernel.UUID, caller kernel.UUID) (bool, error) {
	if !o.shopkeeperID.IsEqual(caller) {
		return false, errs.NewForbiddenError(caller.String(), "order belongs to another shopkeeper")
	}

	if o.status != Delivered {
		return false, errs.NewInvalidStateErrorWithCause("order", o.status.String(),
			errors.New("lines can only be received on a Delivered order"))
	}

	idx := -1
	for i := range o.lines {
		if o.lines[i].ProductID().IsEqual(productID) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, errs.NewObjectNotFoundError("productId", productID.String())
	}

	o.lines[idx].markReceived()

	if !o.AllLinesReceived() {
		return false, nil
	}

	newStatus, err := o.status.Receive()
	if err != nil {
		return false, err
	}
	o.status = newStatus
	return true, nil
}

func (o *Order) validateSupplierCaller(caller kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	if o.supplierID == nil || !o.supplierID.IsEqual(caller) {
		return errs.NewForbiddenError(caller.String(), "order is not assigned to this supplier")
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setShopkeeperID(shopkeeperID kernel.UUID) error {
	if err := shopkeeperID.Validate(); err != nil {
		return err
	}
	o.shopkeeperID = shopkeeperID
	return nil
}

func (o *Order) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}
	o.zoneID = zoneID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}
