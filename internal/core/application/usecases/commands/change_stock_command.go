package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrChangeStockCommandIsNotConstructed = errors.New(
	"ChangeStockCommand must be created via NewAllocateStockCommand, NewReleaseStockCommand or NewAdjustStockCommand",
)

// StockChange names the ledger operation a ChangeStockCommand performs.
type StockChange int

const (
	StockChangeUnknown StockChange = iota
	StockChangeAllocate
	StockChangeRelease
	StockChangeAdjust
)

// ChangeStockCommand allocates, releases or adjusts the on-hand quantity of one
// stock unit. For Adjust the quantity is the counted on-hand, otherwise the delta.
type ChangeStockCommand struct { //nolint:recvcheck //using for validation
	change    StockChange
	itemID    kernel.UUID
	quantity  int
	reference kernel.UUID

	guard guard.ConstructorGuard
}

// NewAllocateStockCommand deducts quantity. reference is usually the order id.
func NewAllocateStockCommand(itemID kernel.UUID, quantity int, reference kernel.UUID) (ChangeStockCommand, error) {
	return newChangeStockCommand(StockChangeAllocate, itemID, quantity, reference)
}

// NewReleaseStockCommand returns quantity to on-hand.
func NewReleaseStockCommand(itemID kernel.UUID, quantity int, reference kernel.UUID) (ChangeStockCommand, error) {
	return newChangeStockCommand(StockChangeRelease, itemID, quantity, reference)
}

// NewAdjustStockCommand replaces on-hand with a counted quantity.
func NewAdjustStockCommand(itemID kernel.UUID, counted int) (ChangeStockCommand, error) {
	return newChangeStockCommand(StockChangeAdjust, itemID, counted, kernel.UUID{})
}

func newChangeStockCommand(change StockChange, itemID kernel.UUID, quantity int, reference kernel.UUID) (ChangeStockCommand, error) {
	var errList []error
	errList = append(errList, itemID.Validate())

	switch {
	case change == StockChangeAdjust && quantity < 0:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity)))
	case change != StockChangeAdjust && quantity <= 0:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity)))
	}

	if err := errors.Join(errList...); err != nil {
		return ChangeStockCommand{}, err
	}

	return ChangeStockCommand{
		change:    change,
		itemID:    itemID,
		quantity:  quantity,
		reference: reference,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeStockCommand) Validate() error {
	return c.guard.Validate(ErrChangeStockCommandIsNotConstructed)
}

func (c ChangeStockCommand) Change() StockChange    { return c.change }
func (c ChangeStockCommand) ItemID() kernel.UUID    { return c.itemID }
func (c ChangeStockCommand) Quantity() int          { return c.quantity }
func (c ChangeStockCommand) Reference() kernel.UUID { return c.reference }
