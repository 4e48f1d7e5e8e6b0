package http

import (
	"fmt"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateInventoryItem handles POST /api/v1/inventory.
func (s *Server) CreateInventoryItem(ctx echo.Context) error {
	var body servers.NewInventoryItem
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoney(body.UnitPriceCents)
	if err != nil {
		return s.fail(ctx, err)
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateInventoryItemCommand(itemID, body.Sku, body.Name, body.OnHand, price, body.LocationCode)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateInventoryItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: toAPIID(itemID)})
}

// CheckAvailability handles GET /api/v1/inventory/availability.
func (s *Server) CheckAvailability(ctx echo.Context, params servers.CheckAvailabilityParams) error {
	query, err := queries.NewCheckAvailabilityQuery(params.Sku, params.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	availability, err := s.handlers.CheckAvailability.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Availability{
		Sku:       availability.SKU,
		OnHand:    availability.OnHand,
		Requested: availability.Requested,
		Available: availability.Available,
	})
}

// ReassignLocations handles PUT /api/v1/inventory/locations. One bad code
// rejects the whole batch.
func (s *Server) ReassignLocations(ctx echo.Context) error {
	var body servers.LocationAssignments
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	assignments := make([]commands.LocationAssignment, 0, len(body.Assignments))
	for i, a := range body.Assignments {
		itemID, err := toKernelID(fmt.Sprintf("assignments[%d].itemId", i), a.ItemId)
		if err != nil {
			return s.fail(ctx, err)
		}
		assignments = append(assignments, commands.LocationAssignment{ItemID: itemID, Code: a.LocationCode})
	}

	cmd, err := commands.NewReassignLocationsCommand(assignments)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.ReassignLocations.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleaseStock handles POST /api/v1/inventory/{itemId}/release.
func (s *Server) ReleaseStock(ctx echo.Context, itemId servers.ItemId) error { //nolint:revive // generated signature
	var body servers.StockRelease
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelID("itemId", itemId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var reference kernel.UUID
	if body.OrderId != nil {
		if reference, err = toKernelID("orderId", *body.OrderId); err != nil {
			return s.fail(ctx, err)
		}
	}

	cmd, err := commands.NewReleaseStockCommand(id, body.Quantity, reference)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.ChangeStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdjustStock handles POST /api/v1/inventory/{itemId}/adjust after a physical count.
func (s *Server) AdjustStock(ctx echo.Context, itemId servers.ItemId) error { //nolint:revive // generated signature
	var body servers.StockAdjustment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelID("itemId", itemId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAdjustStockCommand(id, body.CountedOnHand)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.ChangeStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
