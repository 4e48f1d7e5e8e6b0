package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picksheet"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.Open(dsn)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, nil, nil)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE
		route_stops, routes, pick_sheet_items, pick_sheets,
		order_status_transitions, order_lines, orders,
		inventory_movements, inventory_items`).Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) TestGetPickSheet_ItemsInWalkingOrder() {
	ctx := context.Background()
	far := suite.addItem("WINE-FAR", 5, strPtr("D-01-01"))
	near := suite.addItem("WINE-NEAR", 5, strPtr("A-02-03"))
	loose := suite.addItem("WINE-LOOSE", 5, nil)
	o := suite.addSubmittedOrder(far, near, loose)

	sheet := suite.addSheet("PS-000001", time.Now(), o, far, near, loose)

	query, err := queries.NewGetPickSheetQuery(sheet.ID())
	suite.Require().NoError(err)
	result, err := queries.NewGetPickSheetQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("PS-000001", result.Number)
	suite.Equal("PENDING", result.Status)
	suite.Nil(result.PickerName)
	suite.Require().Len(result.Items, 3)
	suite.Equal([]string{"WINE-NEAR", "WINE-FAR", "WINE-LOOSE"},
		[]string{result.Items[0].SKU, result.Items[1].SKU, result.Items[2].SKU})
	suite.Equal("A-02-03", result.Items[0].LocationOrBlank())
	suite.Nil(result.Items[2].Location)
	suite.Equal(int(kernel.UnlocatedPickRank), result.Items[2].PickRank)
	suite.Equal(o.ID(), result.Items[0].OrderID)
	suite.Require().NotNil(result.Items[0].InventoryItemID)
	suite.Equal(near.ID(), *result.Items[0].InventoryItemID)
}

func (suite *QueryHandlersTestSuite) TestGetPickSheet_NotFound() {
	query, err := queries.NewGetPickSheetQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := queries.NewGetPickSheetQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(result)
}

func (suite *QueryHandlersTestSuite) TestGetRoute_StopsInStopOrder() {
	ctx := context.Background()
	r := suite.addRoute(3)

	query, err := queries.NewGetRouteQuery(r.ID())
	suite.Require().NoError(err)
	result, err := queries.NewGetRouteQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("North Valley", result.Name)
	suite.Equal("PLANNED", result.Status)
	suite.Require().Len(result.Stops, 3)
	for i, stop := range result.Stops {
		suite.Equal(i+1, stop.StopOrder)
		suite.Equal("PENDING", stop.Status)
		suite.Equal("Sonoma", stop.City)
		suite.Nil(stop.OrderID)
		suite.Nil(stop.ActualArrival)
	}
}

func (suite *QueryHandlersTestSuite) TestGetRoute_NotFound() {
	query, err := queries.NewGetRouteQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetRouteQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetUnlocatedInventory_OnlyItemsWithoutLocation() {
	suite.addItem("ZIN-002", 4, nil)
	suite.addItem("MERLOT-001", 9, strPtr("B-10-01"))
	suite.addItem("CAB-001", 12, nil)

	result, err := queries.NewGetUnlocatedInventoryQueryHandler(suite.db).
		Handle(context.Background(), queries.NewGetUnlocatedInventoryQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("CAB-001", result[0].SKU)
	suite.Equal(12, result[0].OnHand)
	suite.Equal("ZIN-002", result[1].SKU)
}

func (suite *QueryHandlersTestSuite) TestGetUnlocatedInventory_InvalidQuery() {
	result, err := queries.NewGetUnlocatedInventoryQueryHandler(suite.db).
		Handle(context.Background(), queries.GetUnlocatedInventoryQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetUnlocatedInventoryQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *QueryHandlersTestSuite) TestGetStalePickSheets_PendingAndOlderThanCutoff() {
	ctx := context.Background()
	item := suite.addItem("WINE-001", 50, strPtr("A-01-01"))
	now := time.Now().UTC()

	stale := suite.addSheet("PS-000001", now.Add(-3*time.Hour), suite.addSubmittedOrder(item), item)
	suite.addSheet("PS-000002", now.Add(-10*time.Minute), suite.addSubmittedOrder(item), item)
	done := suite.addSheet("PS-000003", now.Add(-5*time.Hour), suite.addSubmittedOrder(item), item)
	suite.completeSheet(done.ID())

	query, err := queries.NewGetStalePickSheetsQuery(now.Add(-time.Hour))
	suite.Require().NoError(err)
	result, err := queries.NewGetStalePickSheetsQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(stale.ID(), result[0].ID)
	suite.Equal("PS-000001", result[0].Number)
	suite.Equal(1, result[0].OpenItems)
}

func (suite *QueryHandlersTestSuite) TestGetPickSheet_LocationChangesAfterGenerationKeepTheWalk() {
	ctx := context.Background()
	near := suite.addItem("WINE-NEAR", 5, strPtr("A-02-03"))
	far := suite.addItem("WINE-FAR", 5, strPtr("D-01-01"))
	sheet := suite.addSheet("PS-000001", time.Now(), suite.addSubmittedOrder(near, far), near, far)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	stock, err := uow.InventoryRepository().GetForUpdate(ctx, near.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(stock.ReassignLocation(strPtr("Z-99-99"), time.Now()))
	suite.Require().NoError(uow.InventoryRepository().Update(ctx, stock))
	suite.Require().NoError(uow.Commit(ctx))

	query, err := queries.NewGetPickSheetQuery(sheet.ID())
	suite.Require().NoError(err)
	result, err := queries.NewGetPickSheetQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 2)
	suite.Equal("WINE-NEAR", result.Items[0].SKU)
	suite.Equal("A-02-03", result.Items[0].LocationOrBlank())
	suite.Equal(203, result.Items[0].PickRank)
	suite.Equal("WINE-FAR", result.Items[1].SKU)
}

func (suite *QueryHandlersTestSuite) TestListPickSheets_NewestFirstWithStatusFilter() {
	ctx := context.Background()
	item := suite.addItem("WINE-001", 50, strPtr("A-01-01"))
	now := time.Now().UTC()

	oldest := suite.addSheet("PS-000001", now.Add(-3*time.Hour), suite.addSubmittedOrder(item), item)
	middle := suite.addSheet("PS-000002", now.Add(-2*time.Hour), suite.addSubmittedOrder(item), item)
	newest := suite.addSheet("PS-000003", now.Add(-time.Hour), suite.addSubmittedOrder(item), item)
	suite.completeSheet(middle.ID())
	handler := queries.NewListPickSheetsQueryHandler(suite.db)

	all, err := queries.NewListPickSheetsQuery(nil, 0, 0)
	suite.Require().NoError(err)
	result, err := handler.Handle(ctx, all)
	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal([]kernel.UUID{newest.ID(), middle.ID(), oldest.ID()},
		[]kernel.UUID{result[0].ID, result[1].ID, result[2].ID})
	suite.Equal("COMPLETED", result[1].Status)
	suite.NotNil(result[1].CompletedAt)
	suite.Equal(1, result[0].ItemCount)

	pending := picksheet.Pending
	filtered, err := queries.NewListPickSheetsQuery(&pending, 1, 1)
	suite.Require().NoError(err)
	result, err = handler.Handle(ctx, filtered)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(oldest.ID(), result[0].ID)
	suite.Equal("PENDING", result[0].Status)
}

func (suite *QueryHandlersTestSuite) TestCheckAvailability() {
	ctx := context.Background()
	suite.addItem("WINE-001", 6, nil)
	handler := queries.NewCheckAvailabilityQueryHandler(suite.db)

	enough, err := queries.NewCheckAvailabilityQuery("WINE-001", 6)
	suite.Require().NoError(err)
	result, err := handler.Handle(ctx, enough)
	suite.Require().NoError(err)
	suite.True(result.Available)
	suite.Equal(6, result.OnHand)

	tooMany, err := queries.NewCheckAvailabilityQuery("WINE-001", 7)
	suite.Require().NoError(err)
	result, err = handler.Handle(ctx, tooMany)
	suite.Require().NoError(err)
	suite.False(result.Available)

	unknown, err := queries.NewCheckAvailabilityQuery("NOPE", 1)
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, unknown)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) addItem(sku string, onHand int, location *string) *inventory.Item {
	ctx := context.Background()
	item, err := inventory.NewItem(kernel.NewUUID(), sku, "Wine "+sku, onHand, 1999, location)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.InventoryRepository().Add(ctx, item))
	suite.Require().NoError(uow.Commit(ctx))
	return item
}

func (suite *QueryHandlersTestSuite) addSubmittedOrder(items ...*inventory.Item) *order.Order {
	ctx := context.Background()
	address, err := kernel.NewAddress("Cellar 52", "52 Vine St", "Napa", "CA", "94559", "")
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), address, time.Now())
	suite.Require().NoError(err)
	for _, item := range items {
		line, lineErr := order.NewLine(kernel.NewUUID(), item.ID(), 1, item.UnitPrice())
		suite.Require().NoError(lineErr)
		suite.Require().NoError(o.AddLine(line))
	}
	suite.Require().NoError(o.Submit(time.Now()))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))
	return o
}

// addSheet stores a sheet with one item per order line, matched to items by position.
func (suite *QueryHandlersTestSuite) addSheet(
	number string,
	createdAt time.Time,
	o *order.Order,
	items ...*inventory.Item,
) *picksheet.PickSheet {
	ctx := context.Background()
	sheetItems := make([]*picksheet.Item, 0, len(items))
	for i, line := range o.Lines() {
		itemID := items[i].ID()
		sheetItem, err := picksheet.NewItem(kernel.NewUUID(), picksheet.ItemSpec{
			OrderID:         o.ID(),
			OrderLineID:     line.ID(),
			InventoryItemID: &itemID,
			SKU:             items[i].SKU(),
			ProductName:     items[i].Name(),
			Quantity:        line.Quantity(),
			Location:        items[i].LocationCode(),
			PickRank:        items[i].PickRank(),
		})
		suite.Require().NoError(err)
		sheetItems = append(sheetItems, sheetItem)
	}

	sheet, err := picksheet.NewPickSheet(kernel.NewUUID(), number, createdAt, sheetItems)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PickSheetRepository().Add(ctx, sheet))
	suite.Require().NoError(uow.Commit(ctx))
	return sheet
}

func (suite *QueryHandlersTestSuite) completeSheet(id kernel.UUID) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	sheet, err := uow.PickSheetRepository().GetForUpdate(ctx, id)
	suite.Require().NoError(err)
	for _, item := range sheet.ActiveItems() {
		suite.Require().NoError(sheet.MarkItemPicked(item.ID(), time.Now()))
	}
	suite.Require().NoError(sheet.Complete(time.Now()))
	suite.Require().NoError(uow.PickSheetRepository().Update(ctx, sheet))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *QueryHandlersTestSuite) addRoute(stops int) *route.Route {
	ctx := context.Background()
	address, err := kernel.NewAddress("Wine Bar", "9 Oak Ave", "Sonoma", "CA", "95476", "")
	suite.Require().NoError(err)
	specs := make([]route.StopSpec, 0, stops)
	for range stops {
		specs = append(specs, route.StopSpec{Address: address, EstimatedArrival: "10:15"})
	}
	r, err := route.NewRoute(kernel.NewUUID(), "North Valley", time.Now().UTC().Truncate(24*time.Hour), specs)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RouteRepository().Add(ctx, r))
	suite.Require().NoError(uow.Commit(ctx))
	return r
}

func strPtr(s string) *string { return &s }

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
