package route

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrRouteIsNotConstructed is returned when a Route was not created via a constructor.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")

	// ErrStopNotFound is returned when a stop id does not belong to the route.
	ErrStopNotFound = errors.New("route stop not found")
)

// Route is a delivery run for one date.
//
// Business rules:
//   - Stops are numbered 1..N in the order they are driven
//   - Stops can be added only while the route is Planned, and only at position N+1
//   - A stop moves Pending -> Delivered once; the route becomes Completed when the
//     last stop is delivered
type Route struct {
	kernel.EventRecorder

	id        kernel.UUID
	name      string
	routeDate time.Time
	status    Status
	stops     []*Stop

	isConstructed bool
}

// NewRoute creates a Planned route. Each stop takes its position + 1 as stop order.
//
// Example:
//
//	r, err := route.NewRoute(kernel.NewUUID(), "North Valley", date, []route.StopSpec{
//	    {OrderID: &orderID, Address: address, EstimatedArrival: "09:30"},
//	})
func NewRoute(id kernel.UUID, name string, routeDate time.Time, specs []StopSpec) (*Route, error) {
	if len(specs) == 0 {
		return nil, errs.NewValueIsRequiredError("stops")
	}

	stops := make([]*Stop, 0, len(specs))
	var errList []error
	for i, spec := range specs {
		stop, err := NewStop(kernel.NewUUID(), i+1, spec)
		if err != nil {
			errList = append(errList, fmt.Errorf("stop %d: %w", i+1, err))
			continue
		}
		stops = append(stops, stop)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return RestoreRoute(id, name, routeDate, Planned, stops)
}

// RestoreRoute reconstructs a route from storage. Stops may arrive in any order
// but must number 1..N.
func RestoreRoute(id kernel.UUID, name string, routeDate time.Time, status Status, stops []*Stop) (*Route, error) {
	route := &Route{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		route.setID(id),
		route.setName(name),
		route.setRouteDate(routeDate),
		status.Validate(),
		route.setStops(stops),
	); err != nil {
		return nil, err
	}

	return route, nil
}

func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

func (r *Route) ID() kernel.UUID      { return r.id }
func (r *Route) Name() string         { return r.name }
func (r *Route) RouteDate() time.Time { return r.routeDate }
func (r *Route) Status() Status       { return r.status }

// Stops returns the stops ordered by stop order.
func (r *Route) Stops() []*Stop {
	return append([]*Stop(nil), r.stops...)
}

// Stop returns the stop with the given id.
func (r *Route) Stop(stopID kernel.UUID) (*Stop, error) {
	for _, stop := range r.stops {
		if stop.id.IsEqual(stopID) {
			return stop, nil
		}
	}
	return nil, errs.NewObjectNotFoundErrorWithCause("routeStop", stopID.String(), ErrStopNotFound)
}

// NextStopOrder returns the only position a new stop may take.
func (r *Route) NextStopOrder() int {
	return len(r.stops) + 1
}

// AddStop inserts a stop at stopOrder.
func (r *Route) AddStop(id kernel.UUID, stopOrder int, spec StopSpec) (*Stop, error) {
	if r.status != Planned {
		return nil, errs.NewInvalidStateTransitionError("route", r.status.String(), Planned.String())
	}
	if slices.ContainsFunc(r.stops, func(s *Stop) bool { return s.stopOrder == stopOrder }) {
		return nil, errs.NewDuplicateStopOrderError(r.id.String(), stopOrder)
	}
	if next := r.NextStopOrder(); stopOrder != next {
		return nil, errs.NewValueIsOutOfRangeError("stopOrder", stopOrder, next, next)
	}

	stop, err := NewStop(id, stopOrder, spec)
	if err != nil {
		return nil, err
	}

	r.stops = append(r.stops, stop)
	return stop, nil
}

// MarkStopDelivered moves a Pending stop to Delivered and completes the route
// when it was the last one.
func (r *Route) MarkStopDelivered(stopID kernel.UUID, at time.Time) (*Stop, error) {
	stop, err := r.Stop(stopID)
	if err != nil {
		return nil, err
	}
	if stop.status != StopStatusPending {
		return nil, errs.NewInvalidStateTransitionError("route stop", stop.status.String(), StopStatusDelivered.String())
	}

	arrival := at
	stop.status = StopStatusDelivered
	stop.actualArrival = &arrival
	r.Record(StopDelivered{
		RouteID:   r.id,
		StopID:    stop.id,
		OrderID:   stop.orderID,
		StopOrder: stop.stopOrder,
		At:        at,
	})

	if r.allDelivered() {
		r.status = Completed
		r.Record(RouteCompleted{RouteID: r.id, Name: r.name, Stops: len(r.stops), At: at})
	}

	return stop, nil
}

func (r *Route) allDelivered() bool {
	for _, stop := range r.stops {
		if !stop.IsDelivered() {
			return false
		}
	}
	return true
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Route) setRouteDate(routeDate time.Time) error {
	if routeDate.IsZero() {
		return errs.NewValueIsRequiredError("routeDate")
	}
	r.routeDate = routeDate
	return nil
}

func (r *Route) setStops(stops []*Stop) error {
	for _, stop := range stops {
		if err := stop.Validate(); err != nil {
			return err
		}
	}

	sorted := append([]*Stop(nil), stops...)
	slices.SortFunc(sorted, func(a, b *Stop) int { return a.stopOrder - b.stopOrder })
	for i, stop := range sorted {
		if stop.stopOrder != i+1 {
			return errs.NewValueIsInvalidErrorWithCause("stops",
				fmt.Errorf("stop orders must run 1..%d, found %d at position %d", len(sorted), stop.stopOrder, i+1))
		}
	}

	r.stops = sorted
	return nil
}
