package commands

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateInventoryItemCommandIsNotConstructed = errors.New(
	"CreateInventoryItemCommand must be created via NewCreateInventoryItemCommand constructor",
)

// CreateInventoryItemCommand registers a stock unit. The location code is
// optional; it is parsed by the inventory item itself.
type CreateInventoryItemCommand struct { //nolint:recvcheck //using for validation
	itemID       kernel.UUID
	sku          string
	name         string
	onHand       int
	unitPrice    kernel.Money
	locationCode *string

	guard guard.ConstructorGuard
}

func NewCreateInventoryItemCommand(
	itemID kernel.UUID,
	sku, name string,
	onHand int,
	unitPrice kernel.Money,
	locationCode *string,
) (CreateInventoryItemCommand, error) {
	command := CreateInventoryItemCommand{
		itemID:       itemID,
		sku:          strings.TrimSpace(sku),
		name:         strings.TrimSpace(name),
		onHand:       onHand,
		unitPrice:    unitPrice,
		locationCode: locationCode,
		guard:        guard.NewConstructorGuard(),
	}

	var errList []error
	errList = append(errList, itemID.Validate())
	if command.sku == "" {
		errList = append(errList, errs.NewValueIsRequiredError("sku"))
	}
	if command.name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if onHand < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("onHand", fmt.Errorf("%d is negative", onHand)))
	}
	if unitPrice < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", unitPrice)))
	}

	if err := errors.Join(errList...); err != nil {
		return CreateInventoryItemCommand{}, err
	}
	return command, nil
}

func (c CreateInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateInventoryItemCommandIsNotConstructed)
}

func (c CreateInventoryItemCommand) ItemID() kernel.UUID     { return c.itemID }
func (c CreateInventoryItemCommand) SKU() string             { return c.sku }
func (c CreateInventoryItemCommand) Name() string            { return c.name }
func (c CreateInventoryItemCommand) OnHand() int             { return c.onHand }
func (c CreateInventoryItemCommand) UnitPrice() kernel.Money { return c.unitPrice }
func (c CreateInventoryItemCommand) LocationCode() *string   { return c.locationCode }
