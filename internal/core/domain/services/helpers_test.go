package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func newStock(t *testing.T, sku string, onHand int, location *string) *inventory.Item {
	t.Helper()
	item, err := inventory.NewItem(kernel.NewUUID(), sku, "Product "+sku, onHand, 1250, location)
	require.NoError(t, err)
	return item
}

func newSubmittedOrder(t *testing.T, quantities map[*inventory.Item]int) *order.Order {
	t.Helper()
	o := newPendingOrder(t)
	for item, quantity := range quantities {
		line, err := order.NewLine(kernel.NewUUID(), item.ID(), quantity, item.UnitPrice())
		require.NoError(t, err)
		require.NoError(t, o.AddLine(line))
	}
	require.NoError(t, o.Submit(now))
	return o
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	address, err := kernel.NewAddress("Cellar 52", "52 Vine St", "Napa", "CA", "94559", "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), address, now)
	require.NoError(t, err)
	return o
}

func newFulfilledOrder(t *testing.T) *order.Order {
	t.Helper()
	item := newStock(t, "F", 10, nil)
	o := newSubmittedOrder(t, map[*inventory.Item]int{item: 1})
	require.NoError(t, o.AllocateLine(o.Lines()[0].ID()))
	require.NoError(t, o.AdvanceFulfillment(now))
	require.Equal(t, order.Fulfilled, o.Status())
	return o
}
