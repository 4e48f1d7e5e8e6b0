package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// GeneratePickSheetCommandHandler locks the selected orders, skips lines that are
// already being picked and stores a new Pending sheet with the next sheet number.
// services.ErrNothingToPick is returned when no line is left.
type GeneratePickSheetCommandHandler struct {
	uowFactory UoWFactory
	generator  services.PickSheetGenerator
}

func NewGeneratePickSheetCommandHandler(uowFactory UoWFactory) GeneratePickSheetCommandHandler {
	return GeneratePickSheetCommandHandler{
		uowFactory: uowFactory,
		generator:  services.NewPickSheetGenerator(),
	}
}

func (h GeneratePickSheetCommandHandler) Handle(ctx context.Context, cmd GeneratePickSheetCommand) error {
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

	sheetRepo := uow.PickSheetRepository()

	orders, err := uow.OrderRepository().GetManyForUpdate(ctx, cmd.OrderIDs())
	if err != nil {
		return err
	}
	byID := make(map[kernel.UUID]*order.Order, len(orders))
	var lineIDs, itemIDs []kernel.UUID
	for _, o := range orders {
		byID[o.ID()] = o
		for _, line := range o.Lines() {
			lineIDs = append(lineIDs, line.ID())
			itemIDs = append(itemIDs, line.ItemID())
		}
	}

	selections := make([]services.PickSelection, 0, len(orders))
	for _, input := range cmd.Selections() {
		selections = append(selections, services.PickSelection{Order: byID[input.OrderID], LineIDs: input.LineIDs})
	}

	onSheets, err := sheetRepo.LinesOnSheets(ctx, lineIDs)
	if err != nil {
		return err
	}

	stock, err := uow.InventoryRepository().GetMany(ctx, itemIDs)
	if err != nil {
		return err
	}

	number, err := sheetRepo.NextNumber(ctx)
	if err != nil {
		return err
	}

	sheet, err := h.generator.Generate(cmd.SheetID(), number, time.Now().UTC(), selections, stock, onSheets)
	if err != nil {
		return err
	}

	if err = sheetRepo.Add(ctx, sheet); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
