package services

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderNotRoutable is returned for orders that are not Fulfilled or are already delivered.
	ErrOrderNotRoutable = errors.New("order is not eligible for routing")

	// ErrOrderAlreadyRouted is returned for orders that already have a stop on a route.
	ErrOrderAlreadyRouted = errors.New("order already has a route stop")
)

// RouteBuilder turns fulfilled orders into delivery routes.
//
// Business rules:
//   - Every order referenced by a stop must be Fulfilled and not yet delivered
//   - An order appears at most once on a route and on at most one route
//   - With the routing service, the optimized sequence must contain every exported
//     waypoint exactly once and nothing else
type RouteBuilder struct{}

func NewRouteBuilder() RouteBuilder {
	return RouteBuilder{}
}

// CreateRoute builds a Planned route from explicit stops. orders must contain
// every order a stop references.
func (b RouteBuilder) CreateRoute(
	id kernel.UUID,
	name string,
	routeDate time.Time,
	stops []route.StopSpec,
	orders []*order.Order,
) (*route.Route, error) {
	byID := make(map[kernel.UUID]*order.Order, len(orders))
	for _, o := range orders {
		byID[o.ID()] = o
	}

	seen := make(map[kernel.UUID]bool, len(stops))
	for _, stop := range stops {
		if stop.OrderID == nil {
			continue
		}
		o, ok := byID[*stop.OrderID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("order", stop.OrderID.String())
		}
		if err := checkRoutable(o); err != nil {
			return nil, err
		}
		if seen[o.ID()] {
			return nil, errs.NewValueIsInvalidErrorWithCause("stops", fmt.Errorf("order %s appears twice", o.ID()))
		}
		seen[o.ID()] = true
	}

	return route.NewRoute(id, name, routeDate, stops)
}

// Waypoints exports the flat stop list for the routing service. The order id is
// the reference.
func (b RouteBuilder) Waypoints(orders []*order.Order) ([]route.Waypoint, error) {
	if len(orders) == 0 {
		return nil, errs.NewValueIsRequiredError("orders")
	}

	waypoints := make([]route.Waypoint, 0, len(orders))
	seen := make(map[kernel.UUID]bool, len(orders))
	for _, o := range orders {
		if err := checkRoutable(o); err != nil {
			return nil, err
		}
		if seen[o.ID()] {
			return nil, errs.NewValueIsInvalidErrorWithCause("orders", fmt.Errorf("order %s appears twice", o.ID()))
		}
		seen[o.ID()] = true
		waypoints = append(waypoints, route.Waypoint{Reference: o.ID().String(), Address: o.Address()})
	}
	return waypoints, nil
}

// PlanRoute builds a Planned route whose stops follow the optimized sequence.
func (b RouteBuilder) PlanRoute(
	id kernel.UUID,
	name string,
	routeDate time.Time,
	orders []*order.Order,
	arrivals []route.Arrival,
) (*route.Route, error) {
	if _, err := b.Waypoints(orders); err != nil {
		return nil, err
	}

	byReference := make(map[string]*order.Order, len(orders))
	for _, o := range orders {
		byReference[o.ID().String()] = o
	}
	if len(arrivals) != len(orders) {
		return nil, errs.NewValueIsInvalidErrorWithCause("arrivals",
			fmt.Errorf("routing returned %d stops for %d orders", len(arrivals), len(orders)))
	}

	stops := make([]route.StopSpec, 0, len(arrivals))
	for _, arrival := range arrivals {
		o, ok := byReference[arrival.Reference]
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("arrivals",
				fmt.Errorf("unknown or repeated reference %q", arrival.Reference))
		}
		delete(byReference, arrival.Reference)

		orderID := o.ID()
		stops = append(stops, route.StopSpec{
			OrderID:          &orderID,
			Address:          o.Address(),
			EstimatedArrival: arrival.EstimatedArrival,
		})
	}

	return route.NewRoute(id, name, routeDate, stops)
}

// AddStop appends a stop to a planned route. When the stop references an order,
// o must be that order and it must be routable and not yet on the route.
func (b RouteBuilder) AddStop(
	r *route.Route,
	id kernel.UUID,
	stopOrder int,
	spec route.StopSpec,
	o *order.Order,
) (*route.Stop, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if spec.OrderID != nil {
		if o == nil || !o.ID().IsEqual(*spec.OrderID) {
			return nil, errs.NewObjectNotFoundError("order", spec.OrderID.String())
		}
		if err := checkRoutable(o); err != nil {
			return nil, err
		}
		for _, stop := range r.Stops() {
			if stop.OrderID() != nil && stop.OrderID().IsEqual(o.ID()) {
				return nil, errs.NewValueIsInvalidErrorWithCause("stops", fmt.Errorf("order %s appears twice", o.ID()))
			}
		}
	}

	return r.AddStop(id, stopOrder, spec)
}

// CheckUnrouted rejects an order that already has stops on any route, this one
// included. existingStops is the stop count read under the order row lock.
func (b RouteBuilder) CheckUnrouted(orderID kernel.UUID, existingStops int64) error {
	if existingStops > 0 {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("%w: order %s has %d stop(s)", ErrOrderAlreadyRouted, orderID, existingStops))
	}
	return nil
}

func checkRoutable(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Status() != order.Fulfilled || o.DeliveredAt() != nil {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("%w: order %s is %s", ErrOrderNotRoutable, o.ID(), o.Status()))
	}
	return nil
}
