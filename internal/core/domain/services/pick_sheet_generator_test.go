package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picksheet"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemSKUs(sheet *picksheet.PickSheet) []string {
	out := make([]string, 0)
	for _, item := range sheet.Items() {
		out = append(out, item.SKU())
	}
	return out
}

func TestPickSheetGenerator_Generate(t *testing.T) {
	generator := services.NewPickSheetGenerator()

	t.Run("should sort items across orders by pick rank", func(t *testing.T) {
		b := newStock(t, "B", 10, strPtr("B-01-01"))
		c := newStock(t, "C", 10, strPtr("C-05-10"))
		a := newStock(t, "A", 10, strPtr("A-02-03"))
		none := newStock(t, "NONE", 10, nil)
		first := newSubmittedOrder(t, map[*inventory.Item]int{b: 1, none: 2})
		second := newSubmittedOrder(t, map[*inventory.Item]int{c: 3, a: 4})

		sheet, err := generator.Generate(kernel.NewUUID(), "PS-000001", now,
			[]services.PickSelection{{Order: first}, {Order: second}},
			[]*inventory.Item{a, b, c, none}, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C", "NONE"}, itemSKUs(sheet))
		items := sheet.Items()
		assert.Equal(t, kernel.PickRank(203), items[0].PickRank())
		assert.Equal(t, 4, items[0].Quantity())
		assert.Equal(t, kernel.PickRank(10101), items[1].PickRank())
		assert.Equal(t, kernel.PickRank(20510), items[2].PickRank())
		assert.Equal(t, kernel.UnlocatedPickRank, items[3].PickRank())
		assert.Nil(t, items[3].Location())
	})

	t.Run("should restrict to the selected lines and skip lines already on sheets", func(t *testing.T) {
		a := newStock(t, "A", 10, strPtr("A-01-01"))
		b := newStock(t, "B", 10, strPtr("B-01-01"))
		c := newStock(t, "C", 10, strPtr("C-01-01"))
		o := newSubmittedOrder(t, map[*inventory.Item]int{a: 1, b: 1, c: 1})
		lineFor := func(item *inventory.Item) *order.Line {
			for _, line := range o.Lines() {
				if line.ItemID().IsEqual(item.ID()) {
					return line
				}
			}
			t.Fatalf("no line for %s", item.SKU())
			return nil
		}

		sheet, err := generator.Generate(kernel.NewUUID(), "PS-000002", now,
			[]services.PickSelection{{Order: o, LineIDs: []kernel.UUID{lineFor(a).ID(), lineFor(b).ID()}}},
			[]*inventory.Item{a, b, c}, []kernel.UUID{lineFor(b).ID()})

		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, itemSKUs(sheet))
		assert.Equal(t, lineFor(a).ID(), sheet.Items()[0].OrderLineID())
	})

	t.Run("should fail when nothing is left to pick", func(t *testing.T) {
		a := newStock(t, "A", 10, nil)
		o := newSubmittedOrder(t, map[*inventory.Item]int{a: 1})

		_, err := generator.Generate(kernel.NewUUID(), "PS-000003", now,
			[]services.PickSelection{{Order: o}}, []*inventory.Item{a}, []kernel.UUID{o.Lines()[0].ID()})

		require.ErrorIs(t, err, services.ErrNothingToPick)
	})

	t.Run("should reject orders that are not submitted", func(t *testing.T) {
		_, err := generator.Generate(kernel.NewUUID(), "PS-000004", now,
			[]services.PickSelection{{Order: newPendingOrder(t)}}, nil, nil)

		require.ErrorIs(t, err, services.ErrOrderNotPickable)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail for an unknown stock unit", func(t *testing.T) {
		a := newStock(t, "A", 10, nil)
		o := newSubmittedOrder(t, map[*inventory.Item]int{a: 1})

		_, err := generator.Generate(kernel.NewUUID(), "PS-000005", now,
			[]services.PickSelection{{Order: o}}, nil, nil)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestPickSheetGenerator_Complete(t *testing.T) {
	generator := services.NewPickSheetGenerator()

	pickAll := func(t *testing.T, sheet *picksheet.PickSheet) {
		for _, item := range sheet.Items() {
			require.NoError(t, sheet.MarkItemPicked(item.ID(), now))
		}
	}

	t.Run("should allocate stock and fulfil the order", func(t *testing.T) {
		wine := newStock(t, "WINE", 100, strPtr("C-05-10"))
		o := newSubmittedOrder(t, map[*inventory.Item]int{wine: 30})
		sheet, err := generator.Generate(kernel.NewUUID(), "PS-000010", now,
			[]services.PickSelection{{Order: o}}, []*inventory.Item{wine}, nil)
		require.NoError(t, err)
		pickAll(t, sheet)

		err = generator.Complete(sheet, []*order.Order{o}, []*inventory.Item{wine}, now)

		require.NoError(t, err)
		assert.Equal(t, picksheet.Completed, sheet.Status())
		assert.Equal(t, 70, wine.OnHand())
		assert.Equal(t, order.Fulfilled, o.Status())
		assert.True(t, o.Lines()[0].IsAllocated())
	})

	t.Run("should partially fulfil an order picked line by line", func(t *testing.T) {
		a := newStock(t, "A", 10, nil)
		b := newStock(t, "B", 10, nil)
		o := newSubmittedOrder(t, map[*inventory.Item]int{a: 1, b: 1})
		sheet, err := generator.Generate(kernel.NewUUID(), "PS-000011", now,
			[]services.PickSelection{{Order: o, LineIDs: []kernel.UUID{o.Lines()[0].ID()}}},
			[]*inventory.Item{a, b}, nil)
		require.NoError(t, err)
		pickAll(t, sheet)

		require.NoError(t, generator.Complete(sheet, []*order.Order{o}, []*inventory.Item{a, b}, now))

		assert.Equal(t, order.PartiallyFulfilled, o.Status())
	})

	t.Run("should fail on insufficient stock", func(t *testing.T) {
		wine := newStock(t, "WINE", 100, nil)
		o := newSubmittedOrder(t, map[*inventory.Item]int{wine: 80})
		sheet, err := generator.Generate(kernel.NewUUID(), "PS-000012", now,
			[]services.PickSelection{{Order: o}}, []*inventory.Item{wine}, nil)
		require.NoError(t, err)
		pickAll(t, sheet)
		require.NoError(t, wine.Allocate(30, kernel.NewUUID(), now))

		err = generator.Complete(sheet, []*order.Order{o}, []*inventory.Item{wine}, now)

		require.ErrorIs(t, err, errs.ErrInsufficientInventory)
		assert.Equal(t, 70, wine.OnHand())
	})

	t.Run("should reject a second completion without allocating twice", func(t *testing.T) {
		wine := newStock(t, "WINE", 100, nil)
		o := newSubmittedOrder(t, map[*inventory.Item]int{wine: 10})
		sheet, err := generator.Generate(kernel.NewUUID(), "PS-000013", now,
			[]services.PickSelection{{Order: o}}, []*inventory.Item{wine}, nil)
		require.NoError(t, err)
		pickAll(t, sheet)
		require.NoError(t, generator.Complete(sheet, []*order.Order{o}, []*inventory.Item{wine}, now))

		err = generator.Complete(sheet, []*order.Order{o}, []*inventory.Item{wine}, now)

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, 90, wine.OnHand())
	})
}

func TestPickSheetGenerator_LocationChangesDoNotReorderGeneratedSheets(t *testing.T) {
	generator := services.NewPickSheetGenerator()
	a := newStock(t, "A", 10, strPtr("A-02-03"))
	b := newStock(t, "B", 10, strPtr("B-01-01"))
	o := newSubmittedOrder(t, map[*inventory.Item]int{a: 1, b: 1})

	sheet, err := generator.Generate(kernel.NewUUID(), "PS-000010", now,
		[]services.PickSelection{{Order: o}}, []*inventory.Item{a, b}, nil)
	require.NoError(t, err)

	require.NoError(t, a.ReassignLocation(strPtr("Z-99-99"), now))
	require.NoError(t, b.ReassignLocation(nil, now))

	assert.Equal(t, []string{"A", "B"}, itemSKUs(sheet))
	items := sheet.Items()
	require.NotNil(t, items[0].Location())
	assert.Equal(t, "A-02-03", *items[0].Location())
	assert.Equal(t, kernel.PickRank(203), items[0].PickRank())
	require.NotNil(t, items[1].Location())
	assert.Equal(t, "B-01-01", *items[1].Location())
	assert.Equal(t, kernel.PickRank(10101), items[1].PickRank())
}
