package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line was not created via NewLine or RestoreLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is an order line. It references an inventory item by id and carries the unit
// price supplied by the pricing collaborator. Lines cannot change after the order
// is submitted, except for the allocated flag which is set when stock for the line
// has been deducted.
type Line struct {
	id        kernel.UUID
	itemID    kernel.UUID
	quantity  int
	unitPrice kernel.Money
	allocated bool
	guard     guard.ConstructorGuard
}

// NewLine creates an unallocated line. Quantity must be positive.
func NewLine(id, itemID kernel.UUID, quantity int, unitPrice kernel.Money) (*Line, error) {
	return RestoreLine(id, itemID, quantity, unitPrice, false)
}

// RestoreLine reconstructs a line from storage.
func RestoreLine(id, itemID kernel.UUID, quantity int, unitPrice kernel.Money, allocated bool) (*Line, error) {
	line := &Line{
		allocated: allocated,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setItemID(itemID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// Validate ensures the line was built by a constructor.
func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ID returns the line identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// ItemID returns the inventory item (SKU) the line asks for.
func (l *Line) ItemID() kernel.UUID {
	return l.itemID
}

// Quantity returns the ordered quantity.
func (l *Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price per unit.
func (l *Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Total returns quantity × unit price.
func (l *Line) Total() kernel.Money {
	return l.unitPrice.Multiply(l.quantity)
}

// IsAllocated reports whether stock for the line has been deducted.
func (l *Line) IsAllocated() bool {
	return l.allocated
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("itemID", err)
	}
	l.itemID = itemID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(price kernel.Money) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid", fmt.Errorf("%s is negative", price))
	}
	l.unitPrice = price
	return nil
}
