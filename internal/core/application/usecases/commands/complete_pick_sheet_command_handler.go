package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
)

// CompletePickSheetCommandHandler completes a sheet. Stock deduction, line
// allocation and the order status changes commit together or not at all.
//
// Rows are locked orders first, then the sheet, then stock, the same order the
// cancel path uses, so the two never deadlock.
type CompletePickSheetCommandHandler struct {
	uowFactory UoWFactory
	generator  services.PickSheetGenerator
}

func NewCompletePickSheetCommandHandler(uowFactory UoWFactory) CompletePickSheetCommandHandler {
	return CompletePickSheetCommandHandler{
		uowFactory: uowFactory,
		generator:  services.NewPickSheetGenerator(),
	}
}

func (h CompletePickSheetCommandHandler) Handle(ctx context.Context, cmd CompletePickSheetCommand) error {
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

	orderRepo := uow.OrderRepository()
	sheetRepo := uow.PickSheetRepository()
	stockRepo := uow.InventoryRepository()

	unlocked, err := sheetRepo.Get(ctx, cmd.SheetID())
	if err != nil {
		return err
	}

	orders, err := orderRepo.GetManyForUpdate(ctx, unlocked.OrderIDs())
	if err != nil {
		return err
	}

	sheet, err := sheetRepo.GetForUpdate(ctx, cmd.SheetID())
	if err != nil {
		return err
	}

	var itemIDs []kernel.UUID
	for _, item := range sheet.ActiveItems() {
		if item.InventoryItemID() != nil {
			itemIDs = append(itemIDs, *item.InventoryItemID())
		}
	}
	stock, err := stockRepo.GetManyForUpdate(ctx, itemIDs)
	if err != nil {
		return err
	}

	if err = h.generator.Complete(sheet, orders, stock, time.Now().UTC()); err != nil {
		return err
	}

	if err = sheetRepo.Update(ctx, sheet); err != nil {
		return err
	}
	for _, item := range stock {
		if err = stockRepo.Update(ctx, item); err != nil {
			return err
		}
	}
	for _, o := range orders {
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
