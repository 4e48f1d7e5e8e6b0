package inventory

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created via NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a stock unit of the single warehouse: one SKU, its on-hand quantity and
// its optional bin location.
//
// Business rules:
//   - On-hand never drops below zero; an allocation that would do so fails with
//     *errs.InsufficientInventoryError and changes nothing
//   - The pick rank always matches the location: it is recomputed on every
//     reassignment, and un-located stock carries kernel.UnlocatedPickRank
//   - Malformed location codes are rejected, never stored
//
// Concurrent allocations against the same item are serialized by the repository
// (row lock), so Allocate itself only has to be correct for one caller.
type Item struct {
	kernel.EventRecorder

	id        kernel.UUID
	sku       string
	name      string
	onHand    int
	unitPrice kernel.Money
	location  *kernel.WarehouseLocation
	movements []Movement
	guard     guard.ConstructorGuard
}

// NewItem creates a stock unit. A nil or blank locationCode leaves it un-located.
//
// Example:
//
//	code := "C-05-10"
//	item, err := inventory.NewItem(kernel.NewUUID(), "CAB-750-2019", "Cabernet 2019", 100, 2499, &code)
//	item.PickRank() // 20510
func NewItem(
	id kernel.UUID,
	sku, name string,
	onHand int,
	unitPrice kernel.Money,
	locationCode *string,
) (*Item, error) {
	return RestoreItem(id, sku, name, onHand, unitPrice, locationCode)
}

// RestoreItem reconstructs an item from storage. The rank is derived from the
// stored location code, never read back.
func RestoreItem(
	id kernel.UUID,
	sku, name string,
	onHand int,
	unitPrice kernel.Money,
	locationCode *string,
) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setSKU(sku),
		item.setName(name),
		item.setOnHand(onHand),
		item.setUnitPrice(unitPrice),
		item.setLocation(locationCode),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the item was built by a constructor.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item identifier. Order lines reference items by it.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// SKU returns the stock keeping unit code.
func (i *Item) SKU() string {
	return i.sku
}

// Name returns the product name printed on pick sheets.
func (i *Item) Name() string {
	return i.name
}

// OnHand returns the quantity physically available.
func (i *Item) OnHand() int {
	return i.onHand
}

// UnitPrice returns the list price in cents.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Location returns the bin location, or nil for un-located stock.
func (i *Item) Location() *kernel.WarehouseLocation {
	return i.location
}

// LocationCode returns the canonical code or nil.
func (i *Item) LocationCode() *string {
	if i.location == nil {
		return nil
	}
	code := i.location.Code()
	return &code
}

// PickRank returns the rank of the current location.
func (i *Item) PickRank() kernel.PickRank {
	if i.location == nil {
		return kernel.UnlocatedPickRank
	}
	return i.location.PickRank()
}

// IsLocated reports whether the item has a bin location.
func (i *Item) IsLocated() bool {
	return i.location != nil
}

// CheckAvailable reports whether quantity can be allocated right now. The answer
// is advisory; the authoritative check happens inside Allocate.
func (i *Item) CheckAvailable(quantity int) bool {
	return quantity > 0 && i.onHand >= quantity
}

// Allocate deducts quantity from on-hand.
func (i *Item) Allocate(quantity int, reference kernel.UUID, at time.Time) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	if i.onHand < quantity {
		return errs.NewInsufficientInventoryError(i.id.String(), quantity, i.onHand)
	}

	i.onHand -= quantity
	i.recordMovement(newMovement(AllocatedEventName, i, -quantity, reference, at))
	return nil
}

// Release returns quantity to on-hand, e.g. after a return or a cancelled pick.
func (i *Item) Release(quantity int, reference kernel.UUID, at time.Time) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	i.onHand += quantity
	i.recordMovement(newMovement(ReleasedEventName, i, quantity, reference, at))
	return nil
}

// Adjust sets on-hand to the counted quantity after a cycle count.
func (i *Item) Adjust(counted int, at time.Time) error {
	before := i.onHand
	if err := i.setOnHand(counted); err != nil {
		return err
	}

	var none kernel.UUID
	i.recordMovement(newMovement(AdjustedEventName, i, counted-before, none, at))
	return nil
}

// ReassignLocation moves the item to another bin (or clears its location when
// code is nil or blank) and recomputes the pick rank.
func (i *Item) ReassignLocation(code *string, at time.Time) error {
	previous := i.LocationCode()
	if err := i.setLocation(code); err != nil {
		return err
	}

	i.Record(LocationReassigned{
		ItemID:           i.id,
		SKU:              i.sku,
		PreviousLocation: previous,
		Location:         i.LocationCode(),
		PickRank:         i.PickRank(),
		At:               at,
	})
	return nil
}

// PendingMovements returns the stock movements recorded since the last save.
func (i *Item) PendingMovements() []Movement {
	return i.movements
}

// ClearPendingMovements is called by the repository after the audit rows are written.
func (i *Item) ClearPendingMovements() {
	i.movements = nil
}

func (i *Item) recordMovement(m Movement) {
	i.movements = append(i.movements, m)
	i.Record(m)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	i.sku = sku
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setOnHand(onHand int) error {
	if onHand < 0 {
		return errs.NewValueIsInvalidErrorWithCause("on hand is invalid", fmt.Errorf("%d is negative", onHand))
	}
	i.onHand = onHand
	return nil
}

func (i *Item) setUnitPrice(price kernel.Money) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid", fmt.Errorf("%s is negative", price))
	}
	i.unitPrice = price
	return nil
}

func (i *Item) setLocation(code *string) error {
	if code == nil || strings.TrimSpace(*code) == "" {
		i.location = nil
		return nil
	}

	location, err := kernel.ParseWarehouseLocation(*code)
	if err != nil {
		return err
	}
	i.location = &location
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}
