package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// CreateOrderCommandHandler places a Pending order. Each line is priced from its
// inventory item; an unknown item fails the whole order.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	items, err := uow.InventoryRepository().GetMany(ctx, cmd.ItemIDs())
	if err != nil {
		return err
	}
	byID := make(map[kernel.UUID]*inventory.Item, len(items))
	for _, item := range items {
		byID[item.ID()] = item
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.Address(), time.Now().UTC())
	if err != nil {
		return err
	}

	for _, input := range cmd.Lines() {
		item, ok := byID[input.ItemID]
		if !ok {
			return errs.NewObjectNotFoundError("inventoryItem", input.ItemID.String())
		}

		line, lineErr := order.NewLine(kernel.NewUUID(), item.ID(), input.Quantity, item.UnitPrice())
		if lineErr != nil {
			return lineErr
		}
		if err = o.AddLine(line); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
