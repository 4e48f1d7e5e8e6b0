package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for delivery routes and stops.
type RouteRepository interface {
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists route status and upserts its stops. A stop order already
	// taken by another stop fails with *errs.DuplicateStopOrderError.
	Update(ctx context.Context, aggregate *route.Route) error

	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetForUpdate locks the route row; stop insertion is serialized on it.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// CountStopsByOrder counts the route stops that reference an order.
	CountStopsByOrder(ctx context.Context, orderID kernel.UUID) (int64, error)

	// Delete removes a route and its stops.
	Delete(ctx context.Context, id kernel.UUID) error
}
