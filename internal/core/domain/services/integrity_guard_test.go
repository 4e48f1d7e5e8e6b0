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

func TestIntegrityGuard_CheckOrderDeletable(t *testing.T) {
	guard := services.NewIntegrityGuard()
	orderID := kernel.NewUUID()

	require.NoError(t, guard.CheckOrderDeletable(orderID, services.OrderReferences{}))

	err := guard.CheckOrderDeletable(orderID, services.OrderReferences{PickSheetItems: 2, RouteStops: 1})

	require.ErrorIs(t, err, errs.ErrReferencedEntityExists)
	assert.Contains(t, err.Error(), "referenced by 2 pick sheet items")
	assert.Contains(t, err.Error(), "referenced by 1 route stops")
}

func TestIntegrityGuard_CancelOrder(t *testing.T) {
	guard := services.NewIntegrityGuard()
	generator := services.NewPickSheetGenerator()

	t.Run("should abandon items on pending sheets", func(t *testing.T) {
		a := newStock(t, "A", 10, nil)
		cancelled := newSubmittedOrder(t, map[*inventory.Item]int{a: 1})
		kept := newSubmittedOrder(t, map[*inventory.Item]int{a: 1})
		shared, err := generator.Generate(kernel.NewUUID(), "PS-000020", now,
			[]services.PickSelection{{Order: cancelled}, {Order: kept}}, []*inventory.Item{a}, nil)
		require.NoError(t, err)
		alone, err := generator.Generate(kernel.NewUUID(), "PS-000021", now,
			[]services.PickSelection{{Order: cancelled}}, []*inventory.Item{a}, nil)
		require.NoError(t, err)

		modified, err := guard.CancelOrder(cancelled, []*picksheet.PickSheet{shared, alone}, now)

		require.NoError(t, err)
		assert.Len(t, modified, 2)
		assert.Equal(t, order.Cancelled, cancelled.Status())
		assert.Equal(t, picksheet.Pending, shared.Status())
		assert.Len(t, shared.ActiveItems(), 1)
		assert.Equal(t, picksheet.Abandoned, alone.Status())
	})

	t.Run("should refuse when a completed sheet references the order", func(t *testing.T) {
		a := newStock(t, "A", 10, nil)
		o := newSubmittedOrder(t, map[*inventory.Item]int{a: 1})
		sheet, err := generator.Generate(kernel.NewUUID(), "PS-000022", now,
			[]services.PickSelection{{Order: o}}, []*inventory.Item{a}, nil)
		require.NoError(t, err)
		require.NoError(t, sheet.MarkItemPicked(sheet.Items()[0].ID(), now))
		require.NoError(t, sheet.Complete(now))

		_, err = guard.CancelOrder(o, []*picksheet.PickSheet{sheet}, now)

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Equal(t, order.Submitted, o.Status())
	})

	t.Run("should refuse a fulfilled order", func(t *testing.T) {
		_, err := guard.CancelOrder(newFulfilledOrder(t), nil, now)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}
