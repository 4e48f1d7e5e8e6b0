package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAssignPickerCommandIsNotConstructed = errors.New(
		"AssignPickerCommand must be created via NewAssignPickerCommand constructor",
	)
	ErrMarkItemPickedCommandIsNotConstructed = errors.New(
		"MarkItemPickedCommand must be created via NewMarkItemPickedCommand constructor",
	)
	ErrCompletePickSheetCommandIsNotConstructed = errors.New(
		"CompletePickSheetCommand must be created via NewCompletePickSheetCommand constructor",
	)
	ErrDeletePickSheetCommandIsNotConstructed = errors.New(
		"DeletePickSheetCommand must be created via NewDeletePickSheetCommand constructor",
	)
	ErrCancelPickSheetCommandIsNotConstructed = errors.New(
		"CancelPickSheetCommand must be created via NewCancelPickSheetCommand constructor",
	)
)

// AssignPickerCommand records who picks a sheet and when picking started.
type AssignPickerCommand struct { //nolint:recvcheck //using for validation
	sheetID kernel.UUID
	picker  string
	guard   guard.ConstructorGuard
}

func NewAssignPickerCommand(sheetID kernel.UUID, picker string) (AssignPickerCommand, error) {
	picker = strings.TrimSpace(picker)
	var errList []error
	errList = append(errList, sheetID.Validate())
	if picker == "" {
		errList = append(errList, errs.NewValueIsRequiredError("picker"))
	}
	if err := errors.Join(errList...); err != nil {
		return AssignPickerCommand{}, err
	}
	return AssignPickerCommand{sheetID: sheetID, picker: picker, guard: guard.NewConstructorGuard()}, nil
}

func (c AssignPickerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPickerCommandIsNotConstructed)
}

func (c AssignPickerCommand) SheetID() kernel.UUID { return c.sheetID }
func (c AssignPickerCommand) Picker() string       { return c.picker }

// MarkItemPickedCommand flags one sheet item as picked.
type MarkItemPickedCommand struct { //nolint:recvcheck //using for validation
	sheetID kernel.UUID
	itemID  kernel.UUID
	guard   guard.ConstructorGuard
}

func NewMarkItemPickedCommand(sheetID, itemID kernel.UUID) (MarkItemPickedCommand, error) {
	if err := errors.Join(sheetID.Validate(), itemID.Validate()); err != nil {
		return MarkItemPickedCommand{}, err
	}
	return MarkItemPickedCommand{sheetID: sheetID, itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkItemPickedCommand) Validate() error {
	return c.guard.Validate(ErrMarkItemPickedCommandIsNotConstructed)
}

func (c MarkItemPickedCommand) SheetID() kernel.UUID { return c.sheetID }
func (c MarkItemPickedCommand) ItemID() kernel.UUID  { return c.itemID }

// CompletePickSheetCommand completes a sheet and allocates its stock.
type CompletePickSheetCommand struct { //nolint:recvcheck //using for validation
	sheetID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewCompletePickSheetCommand(sheetID kernel.UUID) (CompletePickSheetCommand, error) {
	if err := sheetID.Validate(); err != nil {
		return CompletePickSheetCommand{}, err
	}
	return CompletePickSheetCommand{sheetID: sheetID, guard: guard.NewConstructorGuard()}, nil
}

func (c CompletePickSheetCommand) Validate() error {
	return c.guard.Validate(ErrCompletePickSheetCommandIsNotConstructed)
}

func (c CompletePickSheetCommand) SheetID() kernel.UUID { return c.sheetID }

// DeletePickSheetCommand removes a sheet together with its items.
type DeletePickSheetCommand struct { //nolint:recvcheck //using for validation
	sheetID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewDeletePickSheetCommand(sheetID kernel.UUID) (DeletePickSheetCommand, error) {
	if err := sheetID.Validate(); err != nil {
		return DeletePickSheetCommand{}, err
	}
	return DeletePickSheetCommand{sheetID: sheetID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeletePickSheetCommand) Validate() error {
	return c.guard.Validate(ErrDeletePickSheetCommandIsNotConstructed)
}

func (c DeletePickSheetCommand) SheetID() kernel.UUID { return c.sheetID }

// CancelPickSheetCommand abandons a pending sheet so its lines can be generated again.
type CancelPickSheetCommand struct { //nolint:recvcheck //using for validation
	sheetID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewCancelPickSheetCommand(sheetID kernel.UUID) (CancelPickSheetCommand, error) {
	if err := sheetID.Validate(); err != nil {
		return CancelPickSheetCommand{}, err
	}
	return CancelPickSheetCommand{sheetID: sheetID, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelPickSheetCommand) Validate() error {
	return c.guard.Validate(ErrCancelPickSheetCommandIsNotConstructed)
}

func (c CancelPickSheetCommand) SheetID() kernel.UUID { return c.sheetID }
