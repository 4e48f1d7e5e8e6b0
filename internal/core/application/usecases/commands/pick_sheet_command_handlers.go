package commands

import (
	"context"
	"time"
)

// AssignPickerCommandHandler assigns a picker to a Pending sheet.
type AssignPickerCommandHandler struct {
	uowFactory PickSheetUoWFactory
}

func NewAssignPickerCommandHandler(uowFactory PickSheetUoWFactory) AssignPickerCommandHandler {
	return AssignPickerCommandHandler{uowFactory: uowFactory}
}

func (h AssignPickerCommandHandler) Handle(ctx context.Context, cmd AssignPickerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PickSheetRepository()
	sheet, err := repo.GetForUpdate(ctx, cmd.SheetID())
	if err != nil {
		return err
	}

	if err = sheet.AssignPicker(cmd.Picker(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, sheet); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// MarkItemPickedCommandHandler flags an item as picked on a Pending sheet.
type MarkItemPickedCommandHandler struct {
	uowFactory PickSheetUoWFactory
}

func NewMarkItemPickedCommandHandler(uowFactory PickSheetUoWFactory) MarkItemPickedCommandHandler {
	return MarkItemPickedCommandHandler{uowFactory: uowFactory}
}

func (h MarkItemPickedCommandHandler) Handle(ctx context.Context, cmd MarkItemPickedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PickSheetRepository()
	sheet, err := repo.GetForUpdate(ctx, cmd.SheetID())
	if err != nil {
		return err
	}

	if err = sheet.MarkItemPicked(cmd.ItemID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, sheet); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeletePickSheetCommandHandler deletes a sheet and its items in one transaction.
// The sheet row is locked before its items are touched, in the same order as
// every other sheet handler.
type DeletePickSheetCommandHandler struct {
	uowFactory PickSheetUoWFactory
}

func NewDeletePickSheetCommandHandler(uowFactory PickSheetUoWFactory) DeletePickSheetCommandHandler {
	return DeletePickSheetCommandHandler{uowFactory: uowFactory}
}

func (h DeletePickSheetCommandHandler) Handle(ctx context.Context, cmd DeletePickSheetCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PickSheetRepository()
	if _, err := repo.GetForUpdate(ctx, cmd.SheetID()); err != nil {
		return err
	}

	if err := repo.Delete(ctx, cmd.SheetID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// CancelPickSheetCommandHandler abandons a Pending sheet. Its order lines no
// longer count as on a sheet, so a new sheet may pick them up.
type CancelPickSheetCommandHandler struct {
	uowFactory PickSheetUoWFactory
}

func NewCancelPickSheetCommandHandler(uowFactory PickSheetUoWFactory) CancelPickSheetCommandHandler {
	return CancelPickSheetCommandHandler{uowFactory: uowFactory}
}

func (h CancelPickSheetCommandHandler) Handle(ctx context.Context, cmd CancelPickSheetCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PickSheetRepository()
	sheet, err := repo.GetForUpdate(ctx, cmd.SheetID())
	if err != nil {
		return err
	}

	if err = sheet.Cancel(time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, sheet); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
