package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// PickRank is the walking-order key of a warehouse location. Lower ranks are
// visited first by a picker.
type PickRank int

const (
	// AisleMin and AisleMax bound the aisle letter of a location code.
	AisleMin = 'A'
	AisleMax = 'Z'

	// RackMin and RackMax bound the rack component. Two decimal digits keep the
	// rank formula collision free.
	RackMin = 0
	RackMax = 99

	// ShelfMin and ShelfMax bound the shelf component.
	ShelfMin = 0
	ShelfMax = 99

	// UnlocatedPickRank is assigned to stock without a location. It is larger than
	// the rank of Z-99-99 (259999), so un-located stock is always picked last.
	UnlocatedPickRank PickRank = 999999

	aisleWeight = 10000
	rackWeight  = 100

	locationSeparator = "-"
)

// ErrWarehouseLocationIsNotConstructed is returned when a zero WarehouseLocation is used.
var ErrWarehouseLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"warehouse location must be created via ParseWarehouseLocation or NewWarehouseLocation")

// WarehouseLocation is a parsed <Aisle>-<Rack>-<Shelf> code such as C-05-10.
//
// WarehouseLocation is an immutable value object. The aisle is normalized to upper
// case and the code is rendered with two-digit rack and shelf, so "c-5-10" and
// "C-05-10" are the same location.
//
// Example:
//
//	loc, err := kernel.ParseWarehouseLocation("C-05-10")
//	if err != nil {
//	    // errs.ErrInvalidLocationCode
//	}
//	fmt.Println(loc.PickRank()) // 20510
type WarehouseLocation struct { //nolint:recvcheck //using for validation
	aisle rune
	rack  int
	shelf int
	guard guard.ConstructorGuard
}

// NewWarehouseLocation builds a location from its components.
func NewWarehouseLocation(aisle rune, rack, shelf int) (WarehouseLocation, error) {
	loc := WarehouseLocation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loc.setAisle(aisle),
		loc.setRack(rack),
		loc.setShelf(shelf),
	); err != nil {
		return WarehouseLocation{}, err
	}

	return loc, nil
}

// ParseWarehouseLocation parses a location code. Any code that does not have
// exactly three dash separated parts, a single letter aisle and numeric rack and
// shelf within range fails with an *errs.InvalidLocationCodeError.
func ParseWarehouseLocation(code string) (WarehouseLocation, error) {
	parts := strings.Split(strings.TrimSpace(code), locationSeparator)
	if len(parts) != 3 {
		return WarehouseLocation{}, errs.NewInvalidLocationCodeErrorWithCause(code,
			fmt.Errorf("expected 3 parts separated by %q, got %d", locationSeparator, len(parts)))
	}

	aisle := []rune(strings.ToUpper(parts[0]))
	if len(aisle) != 1 {
		return WarehouseLocation{}, errs.NewInvalidLocationCodeErrorWithCause(code,
			errors.New("aisle must be a single letter"))
	}

	rack, err := parseComponent(parts[1])
	if err != nil {
		return WarehouseLocation{}, errs.NewInvalidLocationCodeErrorWithCause(code, fmt.Errorf("rack: %w", err))
	}

	shelf, err := parseComponent(parts[2])
	if err != nil {
		return WarehouseLocation{}, errs.NewInvalidLocationCodeErrorWithCause(code, fmt.Errorf("shelf: %w", err))
	}

	loc, err := NewWarehouseLocation(aisle[0], rack, shelf)
	if err != nil {
		return WarehouseLocation{}, errs.NewInvalidLocationCodeErrorWithCause(code, err)
	}

	return loc, nil
}

// CalculatePickRank returns the rank for an optional location code. A nil or
// blank code yields UnlocatedPickRank. A malformed code is an error and is never
// silently mapped to the sentinel.
func CalculatePickRank(code *string) (PickRank, error) {
	if code == nil || strings.TrimSpace(*code) == "" {
		return UnlocatedPickRank, nil
	}

	loc, err := ParseWarehouseLocation(*code)
	if err != nil {
		return 0, err
	}

	return loc.PickRank(), nil
}

// Validate reports whether the location was built by a constructor.
func (l WarehouseLocation) Validate() error {
	return l.guard.Validate(ErrWarehouseLocationIsNotConstructed)
}

// Aisle returns the upper case aisle letter.
func (l WarehouseLocation) Aisle() rune {
	return l.aisle
}

// Rack returns the rack number.
func (l WarehouseLocation) Rack() int {
	return l.rack
}

// Shelf returns the shelf number.
func (l WarehouseLocation) Shelf() int {
	return l.shelf
}

// PickRank computes (aisle - 'A') * 10000 + rack * 100 + shelf.
//
// Because rack and shelf are bounded to 0..99 the mapping is injective and
// preserves lexicographic order of (aisle, rack, shelf).
func (l WarehouseLocation) PickRank() PickRank {
	return PickRank(int(l.aisle-AisleMin)*aisleWeight + l.rack*rackWeight + l.shelf)
}

// Code renders the canonical code, e.g. "C-05-10".
func (l WarehouseLocation) Code() string {
	return fmt.Sprintf("%c-%02d-%02d", l.aisle, l.rack, l.shelf)
}

// String implements fmt.Stringer.
func (l WarehouseLocation) String() string {
	return l.Code()
}

// IsEqual compares two locations. Both must be constructed.
func (l WarehouseLocation) IsEqual(other WarehouseLocation) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

func (l *WarehouseLocation) setAisle(aisle rune) error {
	if aisle < AisleMin || aisle > AisleMax {
		return errs.NewValueIsOutOfRangeError("aisle", string(aisle), string(AisleMin), string(AisleMax))
	}

	l.aisle = aisle
	return nil
}

func (l *WarehouseLocation) setRack(rack int) error {
	if rack < RackMin || rack > RackMax {
		return errs.NewValueIsOutOfRangeError("rack", rack, RackMin, RackMax)
	}

	l.rack = rack
	return nil
}

func (l *WarehouseLocation) setShelf(shelf int) error {
	if shelf < ShelfMin || shelf > ShelfMax {
		return errs.NewValueIsOutOfRangeError("shelf", shelf, ShelfMin, ShelfMax)
	}

	l.shelf = shelf
	return nil
}

func parseComponent(s string) (int, error) {
	if s == "" {
		return 0, errors.New("is empty")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%q is not numeric", s)
		}
	}

	return strconv.Atoi(s)
}
