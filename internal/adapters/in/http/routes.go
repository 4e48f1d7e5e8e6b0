package http

import (
	"fmt"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateRoute handles POST /api/v1/routes. Stops are numbered in request order.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var body servers.NewRoute
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	specs, err := toStopSpecs(body.Stops)
	if err != nil {
		return s.fail(ctx, err)
	}

	routeID := kernel.NewUUID()
	cmd, err := commands.NewCreateRouteCommand(routeID, body.Name, body.RouteDate.Time, specs)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: toAPIID(routeID)})
}

// PlanRoute handles POST /api/v1/routes/plan. The routing service decides the
// stop sequence; 503 means nothing was stored.
func (s *Server) PlanRoute(ctx echo.Context) error {
	var body servers.RoutePlanRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderIDs := make([]kernel.UUID, 0, len(body.OrderIds))
	for i, orderID := range body.OrderIds {
		id, err := toKernelID(fmt.Sprintf("orderIds[%d]", i), orderID)
		if err != nil {
			return s.fail(ctx, err)
		}
		orderIDs = append(orderIDs, id)
	}

	routeID := kernel.NewUUID()
	cmd, err := commands.NewPlanRouteCommand(routeID, body.Name, body.RouteDate.Time, orderIDs)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.PlanRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: toAPIID(routeID)})
}

// GetRoute handles GET /api/v1/routes/{routeId}.
func (s *Server) GetRoute(ctx echo.Context, routeId servers.RouteId) error { //nolint:revive // generated signature
	id, err := toKernelID("routeId", routeId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetRouteQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	r, err := s.handlers.GetRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRoute(r))
}

// DeleteRoute handles DELETE /api/v1/routes/{routeId}.
func (s *Server) DeleteRoute(ctx echo.Context, routeId servers.RouteId) error { //nolint:revive // generated signature
	id, err := toKernelID("routeId", routeId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteRouteCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteRoute.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddStop handles POST /api/v1/routes/{routeId}/stops.
func (s *Server) AddStop(ctx echo.Context, routeId servers.RouteId) error { //nolint:revive // generated signature
	var body servers.NewStop
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelID("routeId", routeId)
	if err != nil {
		return s.fail(ctx, err)
	}

	spec, err := toStopSpec("stop", body.Stop)
	if err != nil {
		return s.fail(ctx, err)
	}

	stopID := kernel.NewUUID()
	cmd, err := commands.NewAddStopCommand(id, stopID, body.StopOrder, spec)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.AddStop.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: toAPIID(stopID)})
}

// MarkStopDelivered handles POST /api/v1/routes/{routeId}/stops/{stopId}/deliver.
func (s *Server) MarkStopDelivered(ctx echo.Context, routeId servers.RouteId, stopId openapi_types.UUID) error { //nolint:revive // generated signature
	id, err := toKernelID("routeId", routeId)
	if err != nil {
		return s.fail(ctx, err)
	}
	stop, err := toKernelID("stopId", stopId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewMarkStopDeliveredCommand(id, stop)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.MarkStopDelivered.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
