package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
)

// DeleteOrderCommandHandler deletes an order with its lines and audit rows.
// Pick sheet items or route stops that still reference the order make it fail
// with *errs.ReferencedEntityExistsError.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
	guard      services.IntegrityGuard
}

func NewDeleteOrderCommandHandler(uowFactory UoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		guard:      services.NewIntegrityGuard(),
	}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	// Locking the order keeps new references from appearing between the count and the delete.
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	var refs services.OrderReferences
	if refs.PickSheetItems, err = uow.PickSheetRepository().CountItemsByOrder(ctx, o.ID()); err != nil {
		return err
	}
	if refs.RouteStops, err = uow.RouteRepository().CountStopsByOrder(ctx, o.ID()); err != nil {
		return err
	}

	if err = h.guard.CheckOrderDeletable(o.ID(), refs); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
