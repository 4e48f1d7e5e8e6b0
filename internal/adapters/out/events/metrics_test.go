package events_test

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/events"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picksheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsPublisher_Publish(t *testing.T) {
	m := events.NewMetricsPublisher()
	now := time.Now()

	err := m.Publish(context.Background(),
		order.StatusChanged{Transition: order.Transition{
			OrderID: kernel.NewUUID(), FromName: "SUBMITTED", ToName: "FULFILLED", OccurredAt: now,
		}},
		inventory.Movement{Name: inventory.AllocatedEventName, ItemID: kernel.NewUUID(), Delta: -6, At: now},
		inventory.Movement{Name: inventory.AllocatedEventName, ItemID: kernel.NewUUID(), Delta: -4, At: now},
		picksheet.SheetCompleted{PickSheetID: kernel.NewUUID(), Items: 3, At: now},
	)
	require.NoError(t, err)
	m.ObservePublishFailure("kafka", 2)

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	eventSeries := 0
	for _, family := range families {
		if family.GetName() == "fulfillment_domain_events_total" {
			eventSeries = len(family.GetMetric())
		}
	}
	assert.Equal(t, 3, eventSeries)

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(recorder.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `fulfillment_order_transitions_total{from="SUBMITTED",to="FULFILLED"} 1`)
	assert.Contains(t, string(body), `fulfillment_inventory_units_moved_total{kind="inventory.allocated"} 10`)
	assert.Contains(t, string(body), `fulfillment_pick_sheet_items_completed_total 3`)
	assert.Contains(t, string(body), `fulfillment_event_publish_failures_total{sink="kafka"} 2`)
}
