package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
)

// ChangeStockCommandHandler applies a ledger operation under a row lock, so two
// allocations of the same unit are serialized and the first to commit wins.
//
// Example:
//
//	handler := NewChangeStockCommandHandler(uowFactory)
//	cmd, _ := NewAllocateStockCommand(itemID, 80, orderID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInsufficientInventory) {
//	    // nothing was deducted
//	}
type ChangeStockCommandHandler struct {
	uowFactory InventoryUoWFactory
}

func NewChangeStockCommandHandler(uowFactory InventoryUoWFactory) ChangeStockCommandHandler {
	return ChangeStockCommandHandler{uowFactory: uowFactory}
}

func (h ChangeStockCommandHandler) Handle(ctx context.Context, cmd ChangeStockCommand) error {
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

	repo := uow.InventoryRepository()
	item, err := repo.GetForUpdate(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	switch cmd.Change() {
	case StockChangeAllocate:
		err = item.Allocate(cmd.Quantity(), cmd.Reference(), now)
	case StockChangeRelease:
		err = item.Release(cmd.Quantity(), cmd.Reference(), now)
	case StockChangeAdjust:
		err = item.Adjust(cmd.Quantity(), now)
	default:
		err = errs.NewValueIsInvalidErrorWithCause("change", fmt.Errorf("unknown stock change %d", cmd.Change()))
	}
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
