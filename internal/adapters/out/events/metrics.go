package events

import (
	"context"
	"net/http"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picksheet"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fulfillment"

// MetricsPublisher keeps Prometheus counters in step with committed events.
type MetricsPublisher struct {
	registry *prometheus.Registry

	eventsTotal      *prometheus.CounterVec
	orderTransitions *prometheus.CounterVec
	stockUnitsMoved  *prometheus.CounterVec
	pickedItemsTotal prometheus.Counter
	publishFailures  *prometheus.CounterVec
}

// NewMetricsPublisher creates the counters on a private registry that also
// carries the Go and process collectors.
func NewMetricsPublisher() *MetricsPublisher {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &MetricsPublisher{
		registry: registry,
		eventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "domain_events_total",
				Help:      "Committed domain events by name",
			},
			[]string{"event"},
		),
		orderTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_transitions_total",
				Help:      "Order status transitions",
			},
			[]string{"from", "to"},
		),
		stockUnitsMoved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "inventory_units_moved_total",
				Help:      "Absolute on-hand change by movement kind",
			},
			[]string{"kind"},
		),
		pickedItemsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pick_sheet_items_completed_total",
				Help:      "Items on completed pick sheets",
			},
		),
		publishFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "event_publish_failures_total",
				Help:      "Events a sink failed to publish",
			},
			[]string{"sink"},
		),
	}

	registry.MustRegister(
		m.eventsTotal,
		m.orderTransitions,
		m.stockUnitsMoved,
		m.pickedItemsTotal,
		m.publishFailures,
	)
	return m
}

func (m *MetricsPublisher) Publish(_ context.Context, events ...kernel.DomainEvent) error {
	for _, event := range events {
		m.eventsTotal.WithLabelValues(event.EventName()).Inc()

		switch e := event.(type) {
		case order.StatusChanged:
			m.orderTransitions.WithLabelValues(e.Transition.FromName, e.Transition.ToName).Inc()
		case inventory.Movement:
			delta := e.Delta
			if delta < 0 {
				delta = -delta
			}
			m.stockUnitsMoved.WithLabelValues(e.Name).Add(float64(delta))
		case picksheet.SheetCompleted:
			m.pickedItemsTotal.Add(float64(e.Items))
		}
	}
	return nil
}

// ObservePublishFailure counts events a sink failed to deliver.
func (m *MetricsPublisher) ObservePublishFailure(sink string, events int) {
	m.publishFailures.WithLabelValues(sink).Add(float64(events))
}

// Registry exposes the registry for tests and extra collectors.
func (m *MetricsPublisher) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *MetricsPublisher) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
