package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/picksheet"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Transitions(ctx context.Context, id kernel.UUID) ([]order.Transition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Transition), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Add(ctx context.Context, item *inventory.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockInventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Item), args.Error(1)
}

func (m *MockInventoryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*inventory.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Item), args.Error(1)
}

func (m *MockInventoryRepository) GetBySKU(ctx context.Context, sku string) (*inventory.Item, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Item), args.Error(1)
}

func (m *MockInventoryRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*inventory.Item, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Item), args.Error(1)
}

func (m *MockInventoryRepository) GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*inventory.Item, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Item), args.Error(1)
}

type MockPickSheetRepository struct{ mock.Mock }

func (m *MockPickSheetRepository) Add(ctx context.Context, sheet *picksheet.PickSheet) error {
	return m.Called(ctx, sheet).Error(0)
}

func (m *MockPickSheetRepository) Update(ctx context.Context, sheet *picksheet.PickSheet) error {
	return m.Called(ctx, sheet).Error(0)
}

func (m *MockPickSheetRepository) Get(ctx context.Context, id kernel.UUID) (*picksheet.PickSheet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*picksheet.PickSheet), args.Error(1)
}

func (m *MockPickSheetRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*picksheet.PickSheet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*picksheet.PickSheet), args.Error(1)
}

func (m *MockPickSheetRepository) GetByOrderForUpdate(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*picksheet.PickSheet, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*picksheet.PickSheet), args.Error(1)
}

func (m *MockPickSheetRepository) NextNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockPickSheetRepository) LinesOnSheets(ctx context.Context, lineIDs []kernel.UUID) ([]kernel.UUID, error) {
	args := m.Called(ctx, lineIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

func (m *MockPickSheetRepository) CountItemsByOrder(ctx context.Context, orderID kernel.UUID) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPickSheetRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, r *route.Route) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

func (m *MockRouteRepository) CountStopsByOrder(ctx context.Context, orderID kernel.UUID) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRouteRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	return m.Called().Get(0).(ports.InventoryRepository)
}

func (m *MockUoW) PickSheetRepository() ports.PickSheetRepository {
	return m.Called().Get(0).(ports.PickSheetRepository)
}

func (m *MockUoW) RouteRepository() ports.RouteRepository {
	return m.Called().Get(0).(ports.RouteRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	return m.Called().Get(0).(commands.InventoryUoW)
}

type MockPickSheetUoWFactory struct{ mock.Mock }

func (m *MockPickSheetUoWFactory) Create() commands.PickSheetUoW {
	return m.Called().Get(0).(commands.PickSheetUoW)
}

type MockRouteUoWFactory struct{ mock.Mock }

func (m *MockRouteUoWFactory) Create() commands.RouteUoW {
	return m.Called().Get(0).(commands.RouteUoW)
}

type MockRoutingService struct{ mock.Mock }

func (m *MockRoutingService) Optimize(ctx context.Context, waypoints []route.Waypoint) ([]route.Arrival, error) {
	args := m.Called(ctx, waypoints)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]route.Arrival), args.Error(1)
}

// fixture wires one MockUoW with all four repositories. Repository getters may be
// called any number of times.
type fixture struct {
	uow     *MockUoW
	orders  *MockOrderRepository
	stock   *MockInventoryRepository
	sheets  *MockPickSheetRepository
	routes  *MockRouteRepository
	factory *MockUoWFactory
	routing *MockRoutingService
}

func newFixture() *fixture {
	f := &fixture{
		uow:     new(MockUoW),
		orders:  new(MockOrderRepository),
		stock:   new(MockInventoryRepository),
		sheets:  new(MockPickSheetRepository),
		routes:  new(MockRouteRepository),
		factory: new(MockUoWFactory),
		routing: new(MockRoutingService),
	}
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("InventoryRepository").Return(f.stock).Maybe()
	f.uow.On("PickSheetRepository").Return(f.sheets).Maybe()
	f.uow.On("RouteRepository").Return(f.routes).Maybe()
	f.factory.On("Create").Return(f.uow).Once()
	return f
}

// expectCommit expects Begin, Commit and the deferred Rollback.
func (f *fixture) expectCommit(ctx context.Context) {
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
}

// expectRollback expects Begin and the deferred Rollback, never Commit.
func (f *fixture) expectRollback(ctx context.Context) {
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
}

func (f *fixture) assert(t *testing.T) {
	t.Helper()
	f.uow.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.stock.AssertExpectations(t)
	f.sheets.AssertExpectations(t)
	f.routes.AssertExpectations(t)
	f.factory.AssertExpectations(t)
	f.routing.AssertExpectations(t)
}

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("Cellar 52", "52 Vine St", "Napa", "CA", "94559", "")
	require.NoError(t, err)
	return address
}

func newStockItem(t *testing.T, onHand int, location string) *inventory.Item {
	t.Helper()
	var code *string
	if location != "" {
		code = &location
	}
	item, err := inventory.NewItem(kernel.NewUUID(), "SKU-"+kernel.NewUUID().String()[:8], "Cabernet", onHand, 2499, code)
	require.NoError(t, err)
	return item
}

func newOrderWith(t *testing.T, items ...*inventory.Item) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testAddress(t), time.Now())
	require.NoError(t, err)
	for _, item := range items {
		line, lineErr := order.NewLine(kernel.NewUUID(), item.ID(), 2, item.UnitPrice())
		require.NoError(t, lineErr)
		require.NoError(t, o.AddLine(line))
	}
	return o
}

func newSubmittedOrderWith(t *testing.T, items ...*inventory.Item) *order.Order {
	t.Helper()
	o := newOrderWith(t, items...)
	require.NoError(t, o.Submit(time.Now()))
	return o
}

func newFulfilledOrder(t *testing.T) *order.Order {
	t.Helper()
	item := newStockItem(t, 10, "A-01-01")
	o := newSubmittedOrderWith(t, item)
	for _, line := range o.Lines() {
		require.NoError(t, o.AllocateLine(line.ID()))
	}
	require.NoError(t, o.AdvanceFulfillment(time.Now()))
	return o
}

func newSheetFor(t *testing.T, o *order.Order, stock ...*inventory.Item) *picksheet.PickSheet {
	t.Helper()
	items := make([]*picksheet.Item, 0, len(o.Lines()))
	for i, line := range o.Lines() {
		stockID := stock[i].ID()
		item, err := picksheet.NewItem(kernel.NewUUID(), picksheet.ItemSpec{
			OrderID:         o.ID(),
			OrderLineID:     line.ID(),
			InventoryItemID: &stockID,
			SKU:             stock[i].SKU(),
			Quantity:        line.Quantity(),
			Location:        stock[i].LocationCode(),
			PickRank:        stock[i].PickRank(),
		})
		require.NoError(t, err)
		items = append(items, item)
	}
	sheet, err := picksheet.NewPickSheet(kernel.NewUUID(), "PS-000001", time.Now(), items)
	require.NoError(t, err)
	return sheet
}
