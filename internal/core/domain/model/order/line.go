package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory method.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is a child entity of exactly one Order: one product position with
// the quantity requested and the unit price snapshotted at order-creation
// time. Later catalog price changes never affect an existing line.
//
// The received flag tracks partial receipt: the shopkeeper confirms each
// line individually once the order is delivered.
type Line struct {
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money
	received  bool

	isConstructed bool
}

// NewLine creates an order line with a positive quantity and the current
// catalog price of the product. The line starts unreceived.
func NewLine(productID kernel.UUID, quantity int, unitPrice kernel.Money) (Line, error) {
	line := Line{isConstructed: true}

	if err := errors.Join(
		line.setProductID(productID),
		line.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	line.unitPrice = unitPrice
	return line, nil
}

// RestoreLine reconstructs a line from persistence, including its
// received flag.
func RestoreLine(productID kernel.UUID, quantity int, unitPrice kernel.Money, received bool) (Line, error) {
	line, err := NewLine(productID, quantity, unitPrice)
	if err != nil {
		return Line{}, err
	}
	line.received = received
	return line, nil
}

// Validate ensures the Line instance was created through NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ProductID returns the product this line refers to.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price snapshot taken at order creation.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Received reports whether the shopkeeper confirmed receipt of this line.
func (l Line) Received() bool {
	return l.received
}

// Subtotal returns quantity times unit price.
func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.MulQuantity(l.quantity)
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

// markReceived flips the received flag. Only the owning Order calls this,
// after checking its own status.
func (l *Line) markReceived() {
	l.received = true
}
