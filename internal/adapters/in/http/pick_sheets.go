package http

import (
	"fmt"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picksheet"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GeneratePickSheet handles POST /api/v1/pick-sheets.
func (s *Server) GeneratePickSheet(ctx echo.Context) error {
	var body servers.NewPickSheet
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	selections := make([]commands.PickSelectionInput, 0, len(body.Selections))
	for i, sel := range body.Selections {
		orderID, err := toKernelID(fmt.Sprintf("selections[%d].orderId", i), sel.OrderId)
		if err != nil {
			return s.fail(ctx, err)
		}

		input := commands.PickSelectionInput{OrderID: orderID}
		if sel.LineIds != nil {
			input.LineIDs = make([]kernel.UUID, 0, len(*sel.LineIds))
			for j, lineID := range *sel.LineIds {
				id, err := toKernelID(fmt.Sprintf("selections[%d].lineIds[%d]", i, j), lineID)
				if err != nil {
					return s.fail(ctx, err)
				}
				input.LineIDs = append(input.LineIDs, id)
			}
		}
		selections = append(selections, input)
	}

	sheetID := kernel.NewUUID()
	cmd, err := commands.NewGeneratePickSheetCommand(sheetID, selections)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.GeneratePickSheet.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: toAPIID(sheetID)})
}

// GetPickSheet handles GET /api/v1/pick-sheets/{pickSheetId}. Items come back
// in walking order.
func (s *Server) GetPickSheet(ctx echo.Context, pickSheetId servers.PickSheetId) error { //nolint:revive // generated signature
	id, err := toKernelID("pickSheetId", pickSheetId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetPickSheetQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	sheet, err := s.handlers.GetPickSheet.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPickSheet(sheet))
}

// DeletePickSheet handles DELETE /api/v1/pick-sheets/{pickSheetId}.
func (s *Server) DeletePickSheet(ctx echo.Context, pickSheetId servers.PickSheetId) error { //nolint:revive // generated signature
	id, err := toKernelID("pickSheetId", pickSheetId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeletePickSheetCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.DeletePickSheet.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignPicker handles PUT /api/v1/pick-sheets/{pickSheetId}/picker.
func (s *Server) AssignPicker(ctx echo.Context, pickSheetId servers.PickSheetId) error { //nolint:revive // generated signature
	var body servers.PickerAssignment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelID("pickSheetId", pickSheetId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignPickerCommand(id, body.PickerName)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.AssignPicker.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkItemPicked handles POST /api/v1/pick-sheets/{pickSheetId}/items/{itemId}/pick.
func (s *Server) MarkItemPicked(ctx echo.Context, pickSheetId servers.PickSheetId, itemId servers.ItemId) error { //nolint:revive // generated signature
	sheetID, err := toKernelID("pickSheetId", pickSheetId)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := toKernelID("itemId", itemId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewMarkItemPickedCommand(sheetID, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.MarkItemPicked.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompletePickSheet handles POST /api/v1/pick-sheets/{pickSheetId}/complete.
// Stock is deducted and order statuses advance in one transaction.
func (s *Server) CompletePickSheet(ctx echo.Context, pickSheetId servers.PickSheetId) error { //nolint:revive // generated signature
	id, err := toKernelID("pickSheetId", pickSheetId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCompletePickSheetCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CompletePickSheet.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListPickSheets handles GET /api/v1/pick-sheets.
func (s *Server) ListPickSheets(ctx echo.Context, params servers.ListPickSheetsParams) error {
	var status *picksheet.Status
	if params.Status != nil {
		parsed, err := picksheet.ParseStatus(string(*params.Status))
		if err != nil {
			return s.fail(ctx, err)
		}
		status = &parsed
	}

	var limit, offset int
	if params.Limit != nil {
		limit = *params.Limit
	}
	if params.Offset != nil {
		offset = *params.Offset
	}

	query, err := queries.NewListPickSheetsQuery(status, limit, offset)
	if err != nil {
		return s.fail(ctx, err)
	}

	sheets, err := s.handlers.ListPickSheets.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPickSheetSummaries(sheets))
}

// CancelPickSheet handles POST /api/v1/pick-sheets/{pickSheetId}/cancel.
func (s *Server) CancelPickSheet(ctx echo.Context, pickSheetId servers.PickSheetId) error { //nolint:revive // generated signature
	id, err := toKernelID("pickSheetId", pickSheetId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelPickSheetCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CancelPickSheet.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
