package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/services"
)

// CancelOrderCommandHandler cancels an order and abandons its items on pending
// pick sheets in one transaction. An order with a completed pick sheet cannot be
// cancelled.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	guard      services.IntegrityGuard
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		guard:      services.NewIntegrityGuard(),
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	sheets, err := sheetRepo.GetByOrderForUpdate(ctx, o.ID())
	if err != nil {
		return err
	}

	modified, err := h.guard.CancelOrder(o, sheets, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}
	for _, sheet := range modified {
		if err = sheetRepo.Update(ctx, sheet); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
