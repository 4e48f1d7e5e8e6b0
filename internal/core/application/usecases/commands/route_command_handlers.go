package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

const routingServiceName = "routing"

// CreateRouteCommandHandler stores a route built from explicit stops. Every
// referenced order is locked and must be Fulfilled, undelivered and on no other route.
type CreateRouteCommandHandler struct {
	uowFactory UoWFactory
	builder    services.RouteBuilder
}

func NewCreateRouteCommandHandler(uowFactory UoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
		builder:    services.NewRouteBuilder(),
	}
}

func (h CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetManyForUpdate(ctx, cmd.OrderIDs())
	if err != nil {
		return err
	}

	r, err := h.builder.CreateRoute(cmd.RouteID(), cmd.Name(), cmd.RouteDate(), cmd.Stops(), orders)
	if err != nil {
		return err
	}

	if err = ensureUnrouted(ctx, uow.RouteRepository(), h.builder, cmd.OrderIDs()); err != nil {
		return err
	}

	if err = uow.RouteRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// PlanRouteCommandHandler exports the selected orders to the routing service and
// stores the route in the returned sequence. When the hand-off fails, times out
// or returns an unusable sequence, *errs.RoutingUnavailableError is returned and
// nothing is stored.
//
// The orders stay locked during the call. The routing client bounds it with a
// timeout.
type PlanRouteCommandHandler struct {
	uowFactory UoWFactory
	routing    ports.RoutingService
	builder    services.RouteBuilder
}

func NewPlanRouteCommandHandler(uowFactory UoWFactory, routing ports.RoutingService) PlanRouteCommandHandler {
	return PlanRouteCommandHandler{
		uowFactory: uowFactory,
		routing:    routing,
		builder:    services.NewRouteBuilder(),
	}
}

func (h PlanRouteCommandHandler) Handle(ctx context.Context, cmd PlanRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	locked, err := uow.OrderRepository().GetManyForUpdate(ctx, cmd.OrderIDs())
	if err != nil {
		return err
	}
	orders := inRequestedOrder(locked, cmd)

	waypoints, err := h.builder.Waypoints(orders)
	if err != nil {
		return err
	}

	orderIDs := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID())
	}
	if err = ensureUnrouted(ctx, uow.RouteRepository(), h.builder, orderIDs); err != nil {
		return err
	}

	arrivals, err := h.routing.Optimize(ctx, waypoints)
	if err != nil {
		if errors.Is(err, errs.ErrRoutingUnavailable) {
			return err
		}
		return errs.NewRoutingUnavailableError(routingServiceName, err)
	}

	r, err := h.builder.PlanRoute(cmd.RouteID(), cmd.Name(), cmd.RouteDate(), orders, arrivals)
	if err != nil {
		return errs.NewRoutingUnavailableError(routingServiceName, err)
	}

	if err = uow.RouteRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// inRequestedOrder restores the caller's order; the repository returns rows by id.
func inRequestedOrder(orders []*order.Order, cmd PlanRouteCommand) []*order.Order {
	byID := make(map[string]*order.Order, len(orders))
	for _, o := range orders {
		byID[o.ID().String()] = o
	}
	sorted := make([]*order.Order, 0, len(orders))
	for _, id := range cmd.OrderIDs() {
		if o, ok := byID[id.String()]; ok {
			sorted = append(sorted, o)
			delete(byID, id.String())
		}
	}
	return sorted
}

// AddStopCommandHandler inserts a stop at an explicit position. The route row is
// locked first; a concurrent insert at the same position that slips past it is
// still caught by the unique index and reported as *errs.DuplicateStopOrderError.
type AddStopCommandHandler struct {
	uowFactory UoWFactory
	builder    services.RouteBuilder
}

func NewAddStopCommandHandler(uowFactory UoWFactory) AddStopCommandHandler {
	return AddStopCommandHandler{
		uowFactory: uowFactory,
		builder:    services.NewRouteBuilder(),
	}
}

func (h AddStopCommandHandler) Handle(ctx context.Context, cmd AddStopCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()
	r, err := routeRepo.GetForUpdate(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	var o *order.Order
	if spec := cmd.Spec(); spec.OrderID != nil {
		if o, err = uow.OrderRepository().GetForUpdate(ctx, *spec.OrderID); err != nil {
			return err
		}
	}

	if _, err = h.builder.AddStop(r, cmd.StopID(), cmd.StopOrder(), cmd.Spec(), o); err != nil {
		return err
	}

	if o != nil {
		if err = ensureUnrouted(ctx, routeRepo, h.builder, []kernel.UUID{o.ID()}); err != nil {
			return err
		}
	}

	if err = routeRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// ensureUnrouted must run while the orders are locked, so two routes cannot
// claim the same order.
func ensureUnrouted(
	ctx context.Context,
	routes ports.RouteRepository,
	builder services.RouteBuilder,
	orderIDs []kernel.UUID,
) error {
	for _, id := range orderIDs {
		count, err := routes.CountStopsByOrder(ctx, id)
		if err != nil {
			return err
		}
		if err = builder.CheckUnrouted(id, count); err != nil {
			return err
		}
	}
	return nil
}

// MarkStopDeliveredCommandHandler confirms a delivery. The stop, the route status
// and the delivered-at of the referenced order change in one transaction.
type MarkStopDeliveredCommandHandler struct {
	uowFactory UoWFactory
}

func NewMarkStopDeliveredCommandHandler(uowFactory UoWFactory) MarkStopDeliveredCommandHandler {
	return MarkStopDeliveredCommandHandler{uowFactory: uowFactory}
}

func (h MarkStopDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkStopDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()
	r, err := routeRepo.GetForUpdate(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	stop, err := r.MarkStopDelivered(cmd.StopID(), now)
	if err != nil {
		return err
	}

	if stop.OrderID() != nil {
		orderRepo := uow.OrderRepository()
		o, getErr := orderRepo.GetForUpdate(ctx, *stop.OrderID())
		if getErr != nil {
			return getErr
		}
		if err = o.MarkDelivered(now); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = routeRepo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// DeleteRouteCommandHandler deletes a route and its stops in one transaction.
type DeleteRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

func NewDeleteRouteCommandHandler(uowFactory RouteUoWFactory) DeleteRouteCommandHandler {
	return DeleteRouteCommandHandler{uowFactory: uowFactory}
}

func (h DeleteRouteCommandHandler) Handle(ctx context.Context, cmd DeleteRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RouteRepository().Delete(ctx, cmd.RouteID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
