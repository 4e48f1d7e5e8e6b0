package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGeneratePickSheetCommandIsNotConstructed = errors.New(
	"GeneratePickSheetCommand must be created via NewGeneratePickSheetCommand constructor",
)

// PickSelectionInput selects an order and optionally a subset of its lines.
// A nil LineIDs picks every line that is not already on a sheet.
type PickSelectionInput struct {
	OrderID kernel.UUID
	LineIDs []kernel.UUID
}

// GeneratePickSheetCommand builds a pick sheet for one or more orders.
//
// Example:
//
//	cmd, err := NewGeneratePickSheetCommand(kernel.NewUUID(), []PickSelectionInput{
//	    {OrderID: firstOrderID},
//	    {OrderID: secondOrderID, LineIDs: []kernel.UUID{lineID}},
//	})
type GeneratePickSheetCommand struct { //nolint:recvcheck //using for validation
	sheetID    kernel.UUID
	selections []PickSelectionInput

	guard guard.ConstructorGuard
}

func NewGeneratePickSheetCommand(sheetID kernel.UUID, selections []PickSelectionInput) (GeneratePickSheetCommand, error) {
	if err := sheetID.Validate(); err != nil {
		return GeneratePickSheetCommand{}, err
	}
	if len(selections) == 0 {
		return GeneratePickSheetCommand{}, errs.NewValueIsRequiredError("orders")
	}

	seen := make(map[kernel.UUID]bool, len(selections))
	for i, s := range selections {
		if err := s.OrderID.Validate(); err != nil {
			return GeneratePickSheetCommand{}, errs.NewValueIsRequiredErrorWithCause(
				fmt.Sprintf("orders[%d].orderID", i), err)
		}
		if seen[s.OrderID] {
			return GeneratePickSheetCommand{}, errs.NewValueIsInvalidErrorWithCause("orders",
				fmt.Errorf("order %s is selected twice", s.OrderID))
		}
		seen[s.OrderID] = true
		if s.LineIDs != nil && len(s.LineIDs) == 0 {
			return GeneratePickSheetCommand{}, errs.NewValueIsRequiredError(fmt.Sprintf("orders[%d].lineIDs", i))
		}
	}

	return GeneratePickSheetCommand{
		sheetID:    sheetID,
		selections: append([]PickSelectionInput(nil), selections...),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c GeneratePickSheetCommand) Validate() error {
	return c.guard.Validate(ErrGeneratePickSheetCommandIsNotConstructed)
}

func (c GeneratePickSheetCommand) SheetID() kernel.UUID { return c.sheetID }

func (c GeneratePickSheetCommand) Selections() []PickSelectionInput {
	return append([]PickSelectionInput(nil), c.selections...)
}

func (c GeneratePickSheetCommand) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(c.selections))
	for _, s := range c.selections {
		ids = append(ids, s.OrderID)
	}
	return ids
}
