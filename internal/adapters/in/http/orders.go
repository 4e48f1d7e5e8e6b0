package http

import (
	"fmt"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders - places a Pending order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := toKernelID("customerId", body.CustomerId)
	if err != nil {
		return s.fail(ctx, err)
	}

	address, err := toAddress(body.Address)
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("address", err))
	}

	lines := make([]commands.OrderLineInput, 0, len(body.Lines))
	for i, line := range body.Lines {
		itemID, err := toKernelID(fmt.Sprintf("lines[%d].itemId", i), line.ItemId)
		if err != nil {
			return s.fail(ctx, err)
		}
		lines = append(lines, commands.OrderLineInput{ItemID: itemID, Quantity: line.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, address, lines)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: toAPIID(orderID)})
}

// SubmitOrder handles POST /api/v1/orders/{orderId}/submit.
func (s *Server) SubmitOrder(ctx echo.Context, orderId servers.OrderId) error { //nolint:revive // generated signature
	id, err := toKernelID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSubmitOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.SubmitOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel. Pick sheet items of
// the order are released in the same transaction.
func (s *Server) CancelOrder(ctx echo.Context, orderId servers.OrderId) error { //nolint:revive // generated signature
	id, err := toKernelID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderId servers.OrderId) error { //nolint:revive // generated signature
	id, err := toKernelID("orderId", orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
