package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/route"
)

// RoutingService is the external route optimizer. It receives the flat stop list
// and answers with the same references in driving order, each with an estimated
// arrival. Every failure, timeout included, is reported as
// *errs.RoutingUnavailableError.
type RoutingService interface {
	Optimize(ctx context.Context, waypoints []route.Waypoint) ([]route.Arrival, error)
}
