package events

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picksheet"
	"fulfillment/internal/core/domain/model/route"
)

// AuditLogPublisher writes committed events to a slog logger.
type AuditLogPublisher struct {
	logger *slog.Logger
}

func NewAuditLogPublisher(logger *slog.Logger) *AuditLogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogPublisher{logger: logger.With("component", "audit")}
}

func (p *AuditLogPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	for _, event := range events {
		attrs := []any{
			"event", event.EventName(),
			"aggregateId", event.AggregateID().String(),
			"occurredAt", event.OccurredAt(),
		}

		switch e := event.(type) {
		case order.StatusChanged:
			attrs = append(attrs,
				"from", e.Transition.FromName,
				"to", e.Transition.ToName,
				"customerId", e.CustomerID.String(),
			)
		case inventory.Movement:
			attrs = append(attrs,
				"sku", e.SKU,
				"delta", e.Delta,
				"onHandAfter", e.OnHandAfter,
			)
			if e.Reference != nil {
				attrs = append(attrs, "reference", *e.Reference)
			}
		case inventory.LocationReassigned:
			attrs = append(attrs,
				"sku", e.SKU,
				"previousLocation", derefOr(e.PreviousLocation, "-"),
				"location", derefOr(e.Location, "-"),
			)
		case picksheet.SheetCompleted:
			attrs = append(attrs, "number", e.Number, "items", e.Items)
		case picksheet.SheetCancelled:
			attrs = append(attrs, "number", e.Number, "orders", len(e.OrderIDs))
		case route.StopDelivered:
			attrs = append(attrs, "stopId", e.StopID.String(), "stopOrder", e.StopOrder)
		case route.RouteCompleted:
			attrs = append(attrs, "name", e.Name, "stops", e.Stops)
		}

		p.logger.InfoContext(ctx, "Domain event committed", attrs...)
	}
	return nil
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
