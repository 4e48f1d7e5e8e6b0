package queries

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCheckAvailabilityQueryIsNotConstructed = errors.New(
		"CheckAvailabilityQuery must be created via NewCheckAvailabilityQuery constructor",
	)
)

// CheckAvailabilityQuery asks whether a SKU has at least quantity units on hand.
// The answer is advisory: stock is only reserved by an allocation.
//
// Example:
//
//	query, err := NewCheckAvailabilityQuery("WINE-001", 6)
//	if err != nil {
//	    return err
//	}
//
//	availability, err := handler.Handle(ctx, query)
//	if err == nil && !availability.Available {
//	    fmt.Printf("only %d on hand\n", availability.OnHand)
//	}
type CheckAvailabilityQuery struct {
	sku      string
	quantity int
	guard    guard.ConstructorGuard
}

func NewCheckAvailabilityQuery(sku string, quantity int) (CheckAvailabilityQuery, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return CheckAvailabilityQuery{}, errs.NewValueIsRequiredError("sku")
	}
	if quantity <= 0 {
		return CheckAvailabilityQuery{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return CheckAvailabilityQuery{
		sku:      sku,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q CheckAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrCheckAvailabilityQueryIsNotConstructed)
}

func (q CheckAvailabilityQuery) SKU() string   { return q.sku }
func (q CheckAvailabilityQuery) Quantity() int { return q.quantity }

type CheckAvailabilityQueryResponse struct {
	SKU       string
	OnHand    int
	Requested int
	Available bool
}
