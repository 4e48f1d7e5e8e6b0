package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateRouteCommandIsNotConstructed = errors.New(
		"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
	)
	ErrPlanRouteCommandIsNotConstructed = errors.New(
		"PlanRouteCommand must be created via NewPlanRouteCommand constructor",
	)
	ErrAddStopCommandIsNotConstructed = errors.New(
		"AddStopCommand must be created via NewAddStopCommand constructor",
	)
	ErrMarkStopDeliveredCommandIsNotConstructed = errors.New(
		"MarkStopDeliveredCommand must be created via NewMarkStopDeliveredCommand constructor",
	)
	ErrDeleteRouteCommandIsNotConstructed = errors.New(
		"DeleteRouteCommand must be created via NewDeleteRouteCommand constructor",
	)
)

// CreateRouteCommand builds a route from stops given in delivery order.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID   kernel.UUID
	name      string
	routeDate time.Time
	stops     []route.StopSpec

	guard guard.ConstructorGuard
}

func NewCreateRouteCommand(
	routeID kernel.UUID,
	name string,
	routeDate time.Time,
	stops []route.StopSpec,
) (CreateRouteCommand, error) {
	name = strings.TrimSpace(name)
	if err := errors.Join(
		routeID.Validate(),
		validateRouteHeader(name, routeDate),
		validateStops(stops),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	return CreateRouteCommand{
		routeID:   routeID,
		name:      name,
		routeDate: routeDate,
		stops:     append([]route.StopSpec(nil), stops...),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

func (c CreateRouteCommand) RouteID() kernel.UUID { return c.routeID }
func (c CreateRouteCommand) Name() string         { return c.name }
func (c CreateRouteCommand) RouteDate() time.Time { return c.routeDate }
func (c CreateRouteCommand) Stops() []route.StopSpec {
	return append([]route.StopSpec(nil), c.stops...)
}

// OrderIDs returns the orders referenced by the stops.
func (c CreateRouteCommand) OrderIDs() []kernel.UUID {
	var ids []kernel.UUID
	for _, stop := range c.stops {
		if stop.OrderID != nil {
			ids = append(ids, *stop.OrderID)
		}
	}
	return ids
}

// PlanRouteCommand asks the routing service to sequence a set of fulfilled orders.
type PlanRouteCommand struct { //nolint:recvcheck //using for validation
	routeID   kernel.UUID
	name      string
	routeDate time.Time
	orderIDs  []kernel.UUID

	guard guard.ConstructorGuard
}

func NewPlanRouteCommand(
	routeID kernel.UUID,
	name string,
	routeDate time.Time,
	orderIDs []kernel.UUID,
) (PlanRouteCommand, error) {
	name = strings.TrimSpace(name)
	var orderErr error
	if len(orderIDs) == 0 {
		orderErr = errs.NewValueIsRequiredError("orderIDs")
	}
	for i, id := range orderIDs {
		if err := id.Validate(); err != nil {
			orderErr = errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("orderIDs[%d]", i), err)
			break
		}
	}

	if err := errors.Join(routeID.Validate(), validateRouteHeader(name, routeDate), orderErr); err != nil {
		return PlanRouteCommand{}, err
	}

	return PlanRouteCommand{
		routeID:   routeID,
		name:      name,
		routeDate: routeDate,
		orderIDs:  append([]kernel.UUID(nil), orderIDs...),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PlanRouteCommand) Validate() error {
	return c.guard.Validate(ErrPlanRouteCommandIsNotConstructed)
}

func (c PlanRouteCommand) RouteID() kernel.UUID    { return c.routeID }
func (c PlanRouteCommand) Name() string            { return c.name }
func (c PlanRouteCommand) RouteDate() time.Time    { return c.routeDate }
func (c PlanRouteCommand) OrderIDs() []kernel.UUID { return append([]kernel.UUID(nil), c.orderIDs...) }

// AddStopCommand inserts a stop at an explicit position.
type AddStopCommand struct { //nolint:recvcheck //using for validation
	routeID   kernel.UUID
	stopID    kernel.UUID
	stopOrder int
	spec      route.StopSpec

	guard guard.ConstructorGuard
}

func NewAddStopCommand(routeID, stopID kernel.UUID, stopOrder int, spec route.StopSpec) (AddStopCommand, error) {
	var orderErr error
	if stopOrder < 1 {
		orderErr = errs.NewValueIsOutOfRangeError("stopOrder", stopOrder, 1, "n+1")
	}
	if err := errors.Join(routeID.Validate(), stopID.Validate(), orderErr, validateStops([]route.StopSpec{spec})); err != nil {
		return AddStopCommand{}, err
	}

	return AddStopCommand{
		routeID:   routeID,
		stopID:    stopID,
		stopOrder: stopOrder,
		spec:      spec,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AddStopCommand) Validate() error {
	return c.guard.Validate(ErrAddStopCommandIsNotConstructed)
}

func (c AddStopCommand) RouteID() kernel.UUID { return c.routeID }
func (c AddStopCommand) StopID() kernel.UUID  { return c.stopID }
func (c AddStopCommand) StopOrder() int       { return c.stopOrder }
func (c AddStopCommand) Spec() route.StopSpec { return c.spec }

// MarkStopDeliveredCommand confirms delivery at a stop.
type MarkStopDeliveredCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	stopID  kernel.UUID
	guard   guard.ConstructorGuard
}

func NewMarkStopDeliveredCommand(routeID, stopID kernel.UUID) (MarkStopDeliveredCommand, error) {
	if err := errors.Join(routeID.Validate(), stopID.Validate()); err != nil {
		return MarkStopDeliveredCommand{}, err
	}
	return MarkStopDeliveredCommand{routeID: routeID, stopID: stopID, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkStopDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkStopDeliveredCommandIsNotConstructed)
}

func (c MarkStopDeliveredCommand) RouteID() kernel.UUID { return c.routeID }
func (c MarkStopDeliveredCommand) StopID() kernel.UUID  { return c.stopID }

// DeleteRouteCommand removes a route together with its stops.
type DeleteRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewDeleteRouteCommand(routeID kernel.UUID) (DeleteRouteCommand, error) {
	if err := routeID.Validate(); err != nil {
		return DeleteRouteCommand{}, err
	}
	return DeleteRouteCommand{routeID: routeID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteRouteCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRouteCommandIsNotConstructed)
}

func (c DeleteRouteCommand) RouteID() kernel.UUID { return c.routeID }

func validateRouteHeader(name string, routeDate time.Time) error {
	var errList []error
	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if routeDate.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("routeDate"))
	}
	return errors.Join(errList...)
}

func validateStops(stops []route.StopSpec) error {
	if len(stops) == 0 {
		return errs.NewValueIsRequiredError("stops")
	}
	for i, stop := range stops {
		if err := stop.Address.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("stops[%d].address", i), err)
		}
		if stop.OrderID != nil {
			if err := stop.OrderID.Validate(); err != nil {
				return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("stops[%d].orderID", i), err)
			}
		}
	}
	return nil
}
