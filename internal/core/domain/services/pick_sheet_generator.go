package services

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picksheet"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrNothingToPick is returned when every selected line is already on a sheet.
	ErrNothingToPick = errors.New("no order lines left to pick")

	// ErrOrderNotPickable is returned for orders that are not Submitted or PartiallyFulfilled.
	ErrOrderNotPickable = errors.New("order is not eligible for picking")
)

// PickSelection names an order to pick and, optionally, the subset of its lines.
// A nil LineIDs selects every line.
type PickSelection struct {
	Order   *order.Order
	LineIDs []kernel.UUID
}

// PickSheetGenerator builds and completes pick sheets.
//
// Business rules:
//   - Only Submitted and PartiallyFulfilled orders can be picked
//   - Allocated lines and lines already on a pending or completed sheet are skipped
//   - Each item copies the quantity of its line and the current location and rank
//     of its stock unit
//   - Items are sorted by (pick rank, location), un-located stock last
//
// Example usage:
//
//	generator := services.NewPickSheetGenerator()
//	sheet, err := generator.Generate(kernel.NewUUID(), "PS-000001", time.Now(),
//	    []services.PickSelection{{Order: o}}, stock, alreadyOnSheets)
//	if errors.Is(err, services.ErrNothingToPick) {
//	    // every line is already being picked
//	}
type PickSheetGenerator struct{}

func NewPickSheetGenerator() PickSheetGenerator {
	return PickSheetGenerator{}
}

// Generate creates a pending sheet. stock must contain the inventory item of every
// selected line; onSheets lists order lines that already have a live sheet item.
func (g PickSheetGenerator) Generate(
	id kernel.UUID,
	number string,
	createdAt time.Time,
	selections []PickSelection,
	stock []*inventory.Item,
	onSheets []kernel.UUID,
) (*picksheet.PickSheet, error) {
	stockByID := make(map[kernel.UUID]*inventory.Item, len(stock))
	for _, item := range stock {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		stockByID[item.ID()] = item
	}

	skip := make(map[kernel.UUID]bool, len(onSheets))
	for _, lineID := range onSheets {
		skip[lineID] = true
	}

	var items []*picksheet.Item
	for _, selection := range selections {
		lines, err := g.selectLines(selection)
		if err != nil {
			return nil, err
		}

		for _, line := range lines {
			if line.IsAllocated() || skip[line.ID()] {
				continue
			}

			item, err := g.newItem(selection.Order.ID(), line, stockByID)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			skip[line.ID()] = true
		}
	}

	if len(items) == 0 {
		return nil, ErrNothingToPick
	}

	return picksheet.NewPickSheet(id, number, createdAt, items)
}

// Complete completes the sheet, deducts stock for every active item and moves
// each referenced order to PartiallyFulfilled or Fulfilled. orders and stock must
// hold every order and stock unit the sheet references, locked for update.
// Any failure leaves the caller to roll back the unit of work.
func (g PickSheetGenerator) Complete(
	sheet *picksheet.PickSheet,
	orders []*order.Order,
	stock []*inventory.Item,
	at time.Time,
) error {
	if err := sheet.Validate(); err != nil {
		return err
	}
	if err := sheet.Complete(at); err != nil {
		return err
	}

	ordersByID := make(map[kernel.UUID]*order.Order, len(orders))
	for _, o := range orders {
		ordersByID[o.ID()] = o
	}
	stockByID := make(map[kernel.UUID]*inventory.Item, len(stock))
	for _, item := range stock {
		stockByID[item.ID()] = item
	}

	for _, item := range sheet.ActiveItems() {
		o, ok := ordersByID[item.OrderID()]
		if !ok {
			return errs.NewObjectNotFoundError("order", item.OrderID().String())
		}
		if item.InventoryItemID() == nil {
			return errs.NewValueIsRequiredErrorWithCause("inventoryItemID",
				fmt.Errorf("pick sheet item %s has no stock unit", item.ID()))
		}
		stockItem, ok := stockByID[*item.InventoryItemID()]
		if !ok {
			return errs.NewObjectNotFoundError("inventoryItem", item.InventoryItemID().String())
		}

		if err := stockItem.Allocate(item.Quantity(), o.ID(), at); err != nil {
			return err
		}
		if err := o.AllocateLine(item.OrderLineID()); err != nil {
			return err
		}
	}

	for _, orderID := range sheet.OrderIDs() {
		o, ok := ordersByID[orderID]
		if !ok {
			continue
		}
		if err := o.AdvanceFulfillment(at); err != nil {
			return err
		}
	}

	return nil
}

func (g PickSheetGenerator) selectLines(selection PickSelection) ([]*order.Line, error) {
	o := selection.Order
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Status() != order.Submitted && o.Status() != order.PartiallyFulfilled {
		return nil, errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("%w: order %s is %s", ErrOrderNotPickable, o.ID(), o.Status()))
	}

	if selection.LineIDs == nil {
		return o.Lines(), nil
	}

	lines := make([]*order.Line, 0, len(selection.LineIDs))
	for _, lineID := range selection.LineIDs {
		line, err := o.Line(lineID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (g PickSheetGenerator) newItem(
	orderID kernel.UUID,
	line *order.Line,
	stockByID map[kernel.UUID]*inventory.Item,
) (*picksheet.Item, error) {
	stockItem, ok := stockByID[line.ItemID()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("inventoryItem", line.ItemID().String())
	}

	inventoryItemID := stockItem.ID()
	return picksheet.NewItem(kernel.NewUUID(), picksheet.ItemSpec{
		OrderID:         orderID,
		OrderLineID:     line.ID(),
		InventoryItemID: &inventoryItemID,
		SKU:             stockItem.SKU(),
		ProductName:     stockItem.Name(),
		Quantity:        line.Quantity(),
		Location:        stockItem.LocationCode(),
		PickRank:        stockItem.PickRank(),
	})
}
