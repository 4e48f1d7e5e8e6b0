package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ReassignLocationsCommandHandler applies a bulk location change. The first
// malformed code aborts the batch with *errs.InvalidLocationCodeError.
type ReassignLocationsCommandHandler struct {
	uowFactory InventoryUoWFactory
}

func NewReassignLocationsCommandHandler(uowFactory InventoryUoWFactory) ReassignLocationsCommandHandler {
	return ReassignLocationsCommandHandler{uowFactory: uowFactory}
}

func (h ReassignLocationsCommandHandler) Handle(ctx context.Context, cmd ReassignLocationsCommand) error {
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
	items, err := repo.GetManyForUpdate(ctx, cmd.ItemIDs())
	if err != nil {
		return err
	}
	byID := make(map[kernel.UUID]*inventory.Item, len(items))
	for _, item := range items {
		byID[item.ID()] = item
	}

	now := time.Now().UTC()
	for _, a := range cmd.Assignments() {
		item, ok := byID[a.ItemID]
		if !ok {
			return errs.NewObjectNotFoundError("inventoryItem", a.ItemID.String())
		}
		if err = item.ReassignLocation(a.Code, now); err != nil {
			return fmt.Errorf("item %s: %w", a.ItemID, err)
		}
	}

	for _, item := range items {
		if err = repo.Update(ctx, item); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
