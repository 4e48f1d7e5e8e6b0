package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetRouteQueryIsNotConstructed = errors.New(
		"GetRouteQuery must be created via NewGetRouteQuery constructor",
	)
)

// GetRouteQuery retrieves a delivery route with its stops in stop order.
type GetRouteQuery struct {
	routeID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetRouteQuery(routeID kernel.UUID) (GetRouteQuery, error) {
	if err := routeID.Validate(); err != nil {
		return GetRouteQuery{}, errs.NewValueIsRequiredErrorWithCause("routeID", err)
	}

	return GetRouteQuery{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteQueryIsNotConstructed)
}

func (q GetRouteQuery) RouteID() kernel.UUID {
	return q.routeID
}

// GetRouteQueryResponse is the driver's manifest.
type GetRouteQueryResponse struct {
	ID        kernel.UUID
	Name      string
	RouteDate time.Time
	Status    string
	Stops     []RouteStopView
}

// RouteStopView is one stop of the manifest. OrderID is nil for ad-hoc stops.
type RouteStopView struct {
	ID               kernel.UUID
	StopOrder        int
	OrderID          *kernel.UUID
	CustomerName     string
	Street           string
	City             string
	State            string
	Zip              string
	Phone            string
	EstimatedArrival string
	ActualArrival    *time.Time
	Status           string
}
