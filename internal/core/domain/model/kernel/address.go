package kernel

import (
	"errors"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when a zero Address is used.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Address is the delivery snapshot taken when an order is created. It is what the
// routing hand-off exports for each stop. Phone is optional.
type Address struct { //nolint:recvcheck //using for validation
	customerName string
	street       string
	city         string
	state        string
	zip          string
	phone        string
	guard        guard.ConstructorGuard
}

// NewAddress validates and builds an address. Leading and trailing spaces are trimmed.
func NewAddress(customerName, street, city, state, zip, phone string) (Address, error) {
	a := Address{
		phone: strings.TrimSpace(phone),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requiredField(&a.customerName, "customerName", customerName),
		requiredField(&a.street, "street", street),
		requiredField(&a.city, "city", city),
		requiredField(&a.state, "state", state),
		requiredField(&a.zip, "zip", zip),
	); err != nil {
		return Address{}, err
	}

	return a, nil
}

// Validate reports whether the address was built by NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) CustomerName() string { return a.customerName }
func (a Address) Street() string       { return a.street }
func (a Address) City() string         { return a.city }
func (a Address) State() string        { return a.state }
func (a Address) Zip() string          { return a.zip }
func (a Address) Phone() string        { return a.phone }

func requiredField(dst *string, name, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}

	*dst = value
	return nil
}
