package picksheet

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
var ErrItemIsNotConstructed = errors.New("pick sheet Item must be created via NewItem constructor")

// Item is one line of work on a pick sheet. Location and rank are copied from the
// inventory item when the sheet is generated, so later reassignments never reorder
// a sheet that is already on the floor.
type Item struct {
	id              kernel.UUID
	orderID         kernel.UUID
	orderLineID     kernel.UUID
	inventoryItemID *kernel.UUID
	sku             string
	productName     string
	quantity        int
	location        *string
	pickRank        kernel.PickRank
	pickedAt        *time.Time
	abandoned       bool
	guard           guard.ConstructorGuard
}

// ItemSpec carries the values copied onto a new pick sheet item.
type ItemSpec struct {
	OrderID         kernel.UUID
	OrderLineID     kernel.UUID
	InventoryItemID *kernel.UUID
	SKU             string
	ProductName     string
	Quantity        int
	Location        *string
	PickRank        kernel.PickRank
}

// NewItem creates an unpicked item.
func NewItem(id kernel.UUID, spec ItemSpec) (*Item, error) {
	return RestoreItem(id, spec, nil, false)
}

// RestoreItem reconstructs an item from storage.
func RestoreItem(id kernel.UUID, spec ItemSpec, pickedAt *time.Time, abandoned bool) (*Item, error) {
	item := &Item{
		inventoryItemID: spec.InventoryItemID,
		sku:             spec.SKU,
		productName:     spec.ProductName,
		location:        normalizeLocation(spec.Location),
		pickRank:        spec.PickRank,
		pickedAt:        pickedAt,
		abandoned:       abandoned,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validID(id, "id"),
		validID(spec.OrderID, "orderID"),
		validID(spec.OrderLineID, "orderLineID"),
		item.setQuantity(spec.Quantity),
	); err != nil {
		return nil, err
	}
	item.id = id
	item.orderID = spec.OrderID
	item.orderLineID = spec.OrderLineID

	return item, nil
}

// Validate ensures the item was built by a constructor.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID               { return i.id }
func (i *Item) OrderID() kernel.UUID          { return i.orderID }
func (i *Item) OrderLineID() kernel.UUID      { return i.orderLineID }
func (i *Item) InventoryItemID() *kernel.UUID { return i.inventoryItemID }
func (i *Item) SKU() string                   { return i.sku }
func (i *Item) ProductName() string           { return i.productName }
func (i *Item) Quantity() int                 { return i.quantity }
func (i *Item) Location() *string             { return i.location }
func (i *Item) PickRank() kernel.PickRank     { return i.pickRank }
func (i *Item) PickedAt() *time.Time          { return i.pickedAt }
func (i *Item) IsPicked() bool                { return i.pickedAt != nil }
func (i *Item) IsAbandoned() bool             { return i.abandoned }

// less orders items by rank, then by location code. Un-located items share the
// sentinel rank and keep their generation order.
func (i *Item) less(other *Item) int {
	if i.pickRank != other.pickRank {
		if i.pickRank < other.pickRank {
			return -1
		}
		return 1
	}
	return compareLocation(i.location, other.location)
}

func compareLocation(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func normalizeLocation(location *string) *string {
	if location == nil || strings.TrimSpace(*location) == "" {
		return nil
	}
	return location
}

func validID(id kernel.UUID, name string) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}
