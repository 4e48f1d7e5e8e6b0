package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCommandHandler[C any] struct{ mock.Mock }

func (m *MockCommandHandler[C]) Handle(ctx context.Context, cmd C) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockQueryHandler[Q, R any] struct{ mock.Mock }

func (m *MockQueryHandler[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	args := m.Called(ctx, query)
	var zero R
	if args.Get(0) == nil {
		return zero, args.Error(1)
	}
	return args.Get(0).(R), args.Error(1)
}

type apiFixture struct {
	e *echo.Echo

	createOrder       *MockCommandHandler[commands.CreateOrderCommand]
	submitOrder       *MockCommandHandler[commands.SubmitOrderCommand]
	cancelOrder       *MockCommandHandler[commands.CancelOrderCommand]
	deleteOrder       *MockCommandHandler[commands.DeleteOrderCommand]
	createItem        *MockCommandHandler[commands.CreateInventoryItemCommand]
	changeStock       *MockCommandHandler[commands.ChangeStockCommand]
	reassign          *MockCommandHandler[commands.ReassignLocationsCommand]
	availability      *MockQueryHandler[queries.CheckAvailabilityQuery, *queries.CheckAvailabilityQueryResponse]
	generateSheet     *MockCommandHandler[commands.GeneratePickSheetCommand]
	assignPicker      *MockCommandHandler[commands.AssignPickerCommand]
	markPicked        *MockCommandHandler[commands.MarkItemPickedCommand]
	completeSheet     *MockCommandHandler[commands.CompletePickSheetCommand]
	deleteSheet       *MockCommandHandler[commands.DeletePickSheetCommand]
	cancelSheet       *MockCommandHandler[commands.CancelPickSheetCommand]
	getSheet          *MockQueryHandler[queries.GetPickSheetQuery, *queries.GetPickSheetQueryResponse]
	listSheets        *MockQueryHandler[queries.ListPickSheetsQuery, []queries.ListPickSheetsQueryResponse]
	createRoute       *MockCommandHandler[commands.CreateRouteCommand]
	planRoute         *MockCommandHandler[commands.PlanRouteCommand]
	addStop           *MockCommandHandler[commands.AddStopCommand]
	markStopDelivered *MockCommandHandler[commands.MarkStopDeliveredCommand]
	deleteRoute       *MockCommandHandler[commands.DeleteRouteCommand]
	getRoute          *MockQueryHandler[queries.GetRouteQuery, *queries.GetRouteQueryResponse]
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	f := &apiFixture{
		createOrder:       &MockCommandHandler[commands.CreateOrderCommand]{},
		submitOrder:       &MockCommandHandler[commands.SubmitOrderCommand]{},
		cancelOrder:       &MockCommandHandler[commands.CancelOrderCommand]{},
		deleteOrder:       &MockCommandHandler[commands.DeleteOrderCommand]{},
		createItem:        &MockCommandHandler[commands.CreateInventoryItemCommand]{},
		changeStock:       &MockCommandHandler[commands.ChangeStockCommand]{},
		reassign:          &MockCommandHandler[commands.ReassignLocationsCommand]{},
		availability:      &MockQueryHandler[queries.CheckAvailabilityQuery, *queries.CheckAvailabilityQueryResponse]{},
		generateSheet:     &MockCommandHandler[commands.GeneratePickSheetCommand]{},
		assignPicker:      &MockCommandHandler[commands.AssignPickerCommand]{},
		markPicked:        &MockCommandHandler[commands.MarkItemPickedCommand]{},
		completeSheet:     &MockCommandHandler[commands.CompletePickSheetCommand]{},
		deleteSheet:       &MockCommandHandler[commands.DeletePickSheetCommand]{},
		cancelSheet:       &MockCommandHandler[commands.CancelPickSheetCommand]{},
		getSheet:          &MockQueryHandler[queries.GetPickSheetQuery, *queries.GetPickSheetQueryResponse]{},
		listSheets:        &MockQueryHandler[queries.ListPickSheetsQuery, []queries.ListPickSheetsQueryResponse]{},
		createRoute:       &MockCommandHandler[commands.CreateRouteCommand]{},
		planRoute:         &MockCommandHandler[commands.PlanRouteCommand]{},
		addStop:           &MockCommandHandler[commands.AddStopCommand]{},
		markStopDelivered: &MockCommandHandler[commands.MarkStopDeliveredCommand]{},
		deleteRoute:       &MockCommandHandler[commands.DeleteRouteCommand]{},
		getRoute:          &MockQueryHandler[queries.GetRouteQuery, *queries.GetRouteQueryResponse]{},
	}

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:         f.createOrder,
		SubmitOrder:         f.submitOrder,
		CancelOrder:         f.cancelOrder,
		DeleteOrder:         f.deleteOrder,
		CreateInventoryItem: f.createItem,
		ChangeStock:         f.changeStock,
		ReassignLocations:   f.reassign,
		CheckAvailability:   f.availability,
		GeneratePickSheet:   f.generateSheet,
		AssignPicker:        f.assignPicker,
		MarkItemPicked:      f.markPicked,
		CompletePickSheet:   f.completeSheet,
		DeletePickSheet:     f.deleteSheet,
		CancelPickSheet:     f.cancelSheet,
		GetPickSheet:        f.getSheet,
		ListPickSheets:      f.listSheets,
		CreateRoute:         f.createRoute,
		PlanRoute:           f.planRoute,
		AddStop:             f.addStop,
		MarkStopDelivered:   f.markStopDelivered,
		DeleteRoute:         f.deleteRoute,
		GetRoute:            f.getRoute,
	}, nil)

	e, err := httpadapter.NewEcho(server)
	require.NoError(t, err)
	f.e = e

	return f
}

func (f *apiFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const validOrder = `{
	"customerId": "6f1c2a8e-2a57-4d3b-9f0e-3f7a7c2b1d10",
	"address": {"customerName": "Cellar 52", "street": "52 Vine St", "city": "Napa", "state": "CA", "zip": "94559"},
	"lines": [{"itemId": "0b3e5c1a-7d2f-4a8e-9c6b-1e2d3f4a5b6c", "quantity": 6}]
}`

func TestCreateOrder(t *testing.T) {
	t.Run("should return 201 with the new order id", func(t *testing.T) {
		f := newAPIFixture(t)
		f.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
			return cmd.CustomerID().String() == "6f1c2a8e-2a57-4d3b-9f0e-3f7a7c2b1d10" &&
				len(cmd.Lines()) == 1 && cmd.Lines()[0].Quantity == 6 &&
				cmd.Address().City() == "Napa"
		})).Return(nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders", validOrder)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var created servers.Created
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.NotEqual(t, [16]byte{}, [16]byte(created.Id))
		f.createOrder.AssertExpectations(t)
	})

	t.Run("should reject a body that does not match the document", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/orders", `{"customerId": "6f1c2a8e-2a57-4d3b-9f0e-3f7a7c2b1d10", "lines": []}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
		f.createOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should return 404 when an ordered item is unknown", func(t *testing.T) {
		f := newAPIFixture(t)
		f.createOrder.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewObjectNotFoundError("inventoryItem", "0b3e5c1a")).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders", validOrder)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "inventoryItem")
	})
}

func TestOrderLifecycleEndpoints(t *testing.T) {
	orderID := "3d6f0a2b-5c4e-4b1a-8f7d-9e0c1b2a3d4e"

	t.Run("should return 204 on submit", func(t *testing.T) {
		f := newAPIFixture(t)
		f.submitOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.SubmitOrderCommand) bool {
			return cmd.OrderID().String() == orderID
		})).Return(nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+orderID+"/submit", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		f.submitOrder.AssertExpectations(t)
	})

	t.Run("should return 409 when cancelling a fulfilled order", func(t *testing.T) {
		f := newAPIFixture(t)
		f.cancelOrder.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewInvalidStateTransitionError("order", "FULFILLED", "CANCELLED")).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+orderID+"/cancel", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "FULFILLED")
	})

	t.Run("should return 409 when deleting a referenced order", func(t *testing.T) {
		f := newAPIFixture(t)
		f.deleteOrder.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewReferencedEntityExistsError("order", orderID, "pick sheet items", 2)).Once()

		rec := f.do(http.MethodDelete, "/api/v1/orders/"+orderID, "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should reject a malformed path id", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/orders/not-a-uuid/submit", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.submitOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should hide unclassified errors behind 500", func(t *testing.T) {
		f := newAPIFixture(t)
		f.submitOrder.On("Handle", mock.Anything, mock.Anything).
			Return(assert.AnError).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+orderID+"/submit", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})
}

func TestInventoryEndpoints(t *testing.T) {
	itemID := "0b3e5c1a-7d2f-4a8e-9c6b-1e2d3f4a5b6c"

	t.Run("should answer availability from query parameters", func(t *testing.T) {
		f := newAPIFixture(t)
		f.availability.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.CheckAvailabilityQuery) bool {
			return q.SKU() == "CAB-750" && q.Quantity() == 12
		})).Return(&queries.CheckAvailabilityQueryResponse{
			SKU: "CAB-750", OnHand: 10, Requested: 12, Available: false,
		}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/inventory/availability?sku=CAB-750&quantity=12", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var body servers.Availability
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, servers.Availability{Sku: "CAB-750", OnHand: 10, Requested: 12, Available: false}, body)
	})

	t.Run("should return 422 for a bad location code and apply nothing", func(t *testing.T) {
		f := newAPIFixture(t)
		f.reassign.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ReassignLocationsCommand) bool {
			return len(cmd.Assignments()) == 2
		})).Return(errs.NewInvalidLocationCodeError("Q-100-01")).Once()

		rec := f.do(http.MethodPut, "/api/v1/inventory/locations", `{"assignments": [
			{"itemId": "`+itemID+`", "locationCode": "A-01-02"},
			{"itemId": "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d", "locationCode": "Q-100-01"}
		]}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		f.reassign.AssertExpectations(t)
	})

	t.Run("should release stock against an order", func(t *testing.T) {
		f := newAPIFixture(t)
		f.changeStock.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ChangeStockCommand) bool {
			return cmd.Change() == commands.StockChangeRelease && cmd.Quantity() == 3 &&
				cmd.Reference().String() == "3d6f0a2b-5c4e-4b1a-8f7d-9e0c1b2a3d4e"
		})).Return(nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/inventory/"+itemID+"/release",
			`{"quantity": 3, "orderId": "3d6f0a2b-5c4e-4b1a-8f7d-9e0c1b2a3d4e"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		f.changeStock.AssertExpectations(t)
	})

	t.Run("should adjust stock to the counted quantity", func(t *testing.T) {
		f := newAPIFixture(t)
		f.changeStock.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ChangeStockCommand) bool {
			return cmd.Change() == commands.StockChangeAdjust && cmd.Quantity() == 0
		})).Return(nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/inventory/"+itemID+"/adjust", `{"countedOnHand": 0}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestGetPickSheet(t *testing.T) {
	sheetID := kernel.NewUUID()
	location := "A-02-03"
	created := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	t.Run("should keep walking order and leave un-located items without a location", func(t *testing.T) {
		f := newAPIFixture(t)
		f.getSheet.On("Handle", mock.Anything, mock.Anything).Return(&queries.GetPickSheetQueryResponse{
			ID:        sheetID,
			Number:    "PS-000007",
			Status:    "PENDING",
			CreatedAt: created,
			Items: []queries.PickSheetItemView{
				{ID: kernel.NewUUID(), OrderID: kernel.NewUUID(), OrderLineID: kernel.NewUUID(), SKU: "NEAR", Quantity: 2, Location: &location, PickRank: 10203},
				{ID: kernel.NewUUID(), OrderID: kernel.NewUUID(), OrderLineID: kernel.NewUUID(), SKU: "LOOSE", Quantity: 1, PickRank: int(kernel.UnlocatedPickRank)},
			},
		}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/pick-sheets/"+sheetID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var body servers.PickSheet
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "PS-000007", body.Number)
		assert.Equal(t, servers.PickSheetStatusPENDING, body.Status)
		require.Len(t, body.Items, 2)
		assert.Equal(t, "NEAR", body.Items[0].Sku)
		assert.Equal(t, &location, body.Items[0].Location)
		assert.Equal(t, "LOOSE", body.Items[1].Sku)
		assert.Nil(t, body.Items[1].Location)
	})

	t.Run("should return 404 for an unknown sheet", func(t *testing.T) {
		f := newAPIFixture(t)
		f.getSheet.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("pickSheet", sheetID.String())).Once()

		rec := f.do(http.MethodGet, "/api/v1/pick-sheets/"+sheetID.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListPickSheets(t *testing.T) {
	t.Run("should pass the status filter and page through", func(t *testing.T) {
		f := newAPIFixture(t)
		completedAt := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
		f.listSheets.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListPickSheetsQuery) bool {
			return q.Status() != nil && q.Status().String() == "COMPLETED" && q.Limit() == 10 && q.Offset() == 20
		})).Return([]queries.ListPickSheetsQueryResponse{
			{ID: kernel.NewUUID(), Number: "PS-000031", Status: "COMPLETED", CreatedAt: completedAt.Add(-time.Hour),
				CompletedAt: &completedAt, ItemCount: 4},
		}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/pick-sheets?status=COMPLETED&limit=10&offset=20", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var body []servers.PickSheetSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "PS-000031", body[0].Number)
		assert.Equal(t, servers.PickSheetSummaryStatusCOMPLETED, body[0].Status)
		assert.Equal(t, 4, body[0].ItemCount)
		f.listSheets.AssertExpectations(t)
	})

	t.Run("should default the page when no parameters are given", func(t *testing.T) {
		f := newAPIFixture(t)
		f.listSheets.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListPickSheetsQuery) bool {
			return q.Status() == nil && q.Limit() == queries.DefaultPickSheetPageSize && q.Offset() == 0
		})).Return([]queries.ListPickSheetsQueryResponse{}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/pick-sheets", "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("should reject an unknown status before the handler runs", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/pick-sheets?status=SHIPPED", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.listSheets.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestPickSheetCommands(t *testing.T) {
	sheetID := kernel.NewUUID().String()
	itemID := kernel.NewUUID().String()

	t.Run("should generate a sheet for selected lines", func(t *testing.T) {
		f := newAPIFixture(t)
		f.generateSheet.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.GeneratePickSheetCommand) bool {
			sel := cmd.Selections()
			return len(sel) == 2 && sel[0].LineIDs == nil && len(sel[1].LineIDs) == 1
		})).Return(nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/pick-sheets", `{"selections": [
			{"orderId": "3d6f0a2b-5c4e-4b1a-8f7d-9e0c1b2a3d4e"},
			{"orderId": "6f1c2a8e-2a57-4d3b-9f0e-3f7a7c2b1d10", "lineIds": ["0b3e5c1a-7d2f-4a8e-9c6b-1e2d3f4a5b6c"]}
		]}`)

		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		f.generateSheet.AssertExpectations(t)
	})

	t.Run("should pick, assign and complete", func(t *testing.T) {
		f := newAPIFixture(t)
		f.assignPicker.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AssignPickerCommand) bool {
			return cmd.Picker() == "Dana"
		})).Return(nil).Once()
		f.markPicked.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.MarkItemPickedCommand) bool {
			return cmd.ItemID().String() == itemID
		})).Return(nil).Once()
		f.completeSheet.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

		assert.Equal(t, http.StatusNoContent,
			f.do(http.MethodPut, "/api/v1/pick-sheets/"+sheetID+"/picker", `{"pickerName": "Dana"}`).Code)
		assert.Equal(t, http.StatusNoContent,
			f.do(http.MethodPost, "/api/v1/pick-sheets/"+sheetID+"/items/"+itemID+"/pick", "").Code)
		assert.Equal(t, http.StatusNoContent,
			f.do(http.MethodPost, "/api/v1/pick-sheets/"+sheetID+"/complete", "").Code)

		f.assignPicker.AssertExpectations(t)
		f.markPicked.AssertExpectations(t)
		f.completeSheet.AssertExpectations(t)
	})

	t.Run("should cancel a pending sheet", func(t *testing.T) {
		f := newAPIFixture(t)
		f.cancelSheet.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CancelPickSheetCommand) bool {
			return cmd.SheetID().String() == sheetID
		})).Return(nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/pick-sheets/"+sheetID+"/cancel", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		f.cancelSheet.AssertExpectations(t)
	})

	t.Run("should return 409 when cancelling a completed sheet", func(t *testing.T) {
		f := newAPIFixture(t)
		f.cancelSheet.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewInvalidStateTransitionError("pick sheet", "COMPLETED", "ABANDONED")).Once()

		rec := f.do(http.MethodPost, "/api/v1/pick-sheets/"+sheetID+"/cancel", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should return 409 when stock ran out on completion", func(t *testing.T) {
		f := newAPIFixture(t)
		f.completeSheet.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewInsufficientInventoryError("item", 6, 2)).Once()

		rec := f.do(http.MethodPost, "/api/v1/pick-sheets/"+sheetID+"/complete", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestRouteEndpoints(t *testing.T) {
	routeID := kernel.NewUUID()
	stopAddress := `{"customerName": "Cellar 52", "street": "52 Vine St", "city": "Napa", "state": "CA", "zip": "94559"}`

	t.Run("should create a route from stops in request order", func(t *testing.T) {
		f := newAPIFixture(t)
		f.createRoute.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateRouteCommand) bool {
			stops := cmd.Stops()
			return cmd.Name() == "North Valley" &&
				cmd.RouteDate().Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) &&
				len(stops) == 2 && stops[0].OrderID != nil && stops[1].OrderID == nil &&
				stops[0].EstimatedArrival == "09:30"
		})).Return(nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/routes", `{"name": "North Valley", "routeDate": "2026-03-02", "stops": [
			{"orderId": "3d6f0a2b-5c4e-4b1a-8f7d-9e0c1b2a3d4e", "address": `+stopAddress+`, "estimatedArrival": "09:30"},
			{"address": `+stopAddress+`}
		]}`)

		assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		f.createRoute.AssertExpectations(t)
	})

	t.Run("should return 503 when the routing service is down", func(t *testing.T) {
		f := newAPIFixture(t)
		f.planRoute.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewRoutingUnavailableError("routing", context.DeadlineExceeded)).Once()

		rec := f.do(http.MethodPost, "/api/v1/routes/plan",
			`{"name": "North Valley", "routeDate": "2026-03-02", "orderIds": ["3d6f0a2b-5c4e-4b1a-8f7d-9e0c1b2a3d4e"]}`)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("should return 409 for a used stop order", func(t *testing.T) {
		f := newAPIFixture(t)
		f.addStop.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AddStopCommand) bool {
			return cmd.StopOrder() == 2 && cmd.RouteID().IsEqual(routeID)
		})).Return(errs.NewDuplicateStopOrderError(routeID.String(), 2)).Once()

		rec := f.do(http.MethodPost, "/api/v1/routes/"+routeID.String()+"/stops",
			`{"stopOrder": 2, "stop": {"address": `+stopAddress+`}}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		f.addStop.AssertExpectations(t)
	})

	t.Run("should render the manifest", func(t *testing.T) {
		f := newAPIFixture(t)
		orderID := kernel.NewUUID()
		f.getRoute.On("Handle", mock.Anything, mock.Anything).Return(&queries.GetRouteQueryResponse{
			ID:        routeID,
			Name:      "North Valley",
			RouteDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			Status:    "PLANNED",
			Stops: []queries.RouteStopView{
				{ID: kernel.NewUUID(), StopOrder: 1, OrderID: &orderID, CustomerName: "Cellar 52", Street: "52 Vine St",
					City: "Napa", State: "CA", Zip: "94559", EstimatedArrival: "09:30", Status: "PENDING"},
			},
		}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/routes/"+routeID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var body servers.Route
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, servers.RouteStatusPLANNED, body.Status)
		assert.Equal(t, "2026-03-02", body.RouteDate.Format("2006-01-02"))
		require.Len(t, body.Stops, 1)
		assert.Equal(t, 1, body.Stops[0].StopOrder)
		assert.Nil(t, body.Stops[0].Address.Phone)
		require.NotNil(t, body.Stops[0].EstimatedArrival)
		assert.Equal(t, "09:30", *body.Stops[0].EstimatedArrival)
	})

	t.Run("should deliver a stop and delete a route", func(t *testing.T) {
		f := newAPIFixture(t)
		stopID := kernel.NewUUID()
		f.markStopDelivered.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.MarkStopDeliveredCommand) bool {
			return cmd.StopID().IsEqual(stopID)
		})).Return(nil).Once()
		f.deleteRoute.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewObjectNotFoundError("route", routeID.String())).Once()

		assert.Equal(t, http.StatusNoContent,
			f.do(http.MethodPost, "/api/v1/routes/"+routeID.String()+"/stops/"+stopID.String()+"/deliver", "").Code)
		assert.Equal(t, http.StatusNotFound,
			f.do(http.MethodDelete, "/api/v1/routes/"+routeID.String(), "").Code)
	})
}

func TestAmbientEndpoints(t *testing.T) {
	f := newAPIFixture(t)

	health := f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, health.Code)

	doc := f.do(http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, doc.Code)
	assert.Contains(t, doc.Body.String(), "GeneratePickSheet")
}
