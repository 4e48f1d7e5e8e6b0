package commands

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/pkg/errs"
)

// CreateInventoryItemCommandHandler adds a stock unit. SKU codes are unique.
type CreateInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

func NewCreateInventoryItemCommandHandler(uowFactory InventoryUoWFactory) CreateInventoryItemCommandHandler {
	return CreateInventoryItemCommandHandler{uowFactory: uowFactory}
}

func (h CreateInventoryItemCommandHandler) Handle(ctx context.Context, cmd CreateInventoryItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := inventory.NewItem(cmd.ItemID(), cmd.SKU(), cmd.Name(), cmd.OnHand(), cmd.UnitPrice(), cmd.LocationCode())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.InventoryRepository()
	_, err = repo.GetBySKU(ctx, cmd.SKU())
	switch {
	case err == nil:
		return errs.NewValueIsInvalidErrorWithCause("sku", fmt.Errorf("%s already exists", cmd.SKU()))
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = repo.Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
