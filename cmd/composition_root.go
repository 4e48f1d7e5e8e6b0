package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/events"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/routing"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const defaultEventsTopic = "fulfillment.events"

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *events.MetricsPublisher
	kafka      *events.KafkaPublisher
	routing    *routing.Client
}

// NewCompositionRoot wires the event sinks, the routing client and the unit of
// work factory. Events go to the audit log and Prometheus, and to Kafka when a
// broker is configured.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	routingClient, err := routing.NewClient(routing.Config{
		BaseURL: config.RoutingServiceURL,
		Timeout: config.RoutingTimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("routing client: %w", err)
	}

	metrics := events.NewMetricsPublisher()
	sinks := []events.NamedPublisher{
		{Name: "audit", Publisher: events.NewAuditLogPublisher(logger)},
		{Name: "metrics", Publisher: metrics},
	}

	var kafka *events.KafkaPublisher
	if brokers := splitBrokers(config.KafkaHost); len(brokers) > 0 {
		topic := config.KafkaEventsTopic
		if topic == "" {
			topic = defaultEventsTopic
		}
		kafka = events.NewKafkaPublisher(events.KafkaConfig{Brokers: brokers, Topic: topic})
		sinks = append(sinks, events.NamedPublisher{Name: "kafka", Publisher: kafka})
	}

	fanout := events.NewFanout(sinks...).OnFailure(metrics.ObservePublishFailure)

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, fanout, logger),
		metrics:    metrics,
		kafka:      kafka,
		routing:    routingClient,
	}, nil
}

func splitBrokers(hosts string) []string {
	var brokers []string
	for _, host := range strings.Split(hosts, ",") {
		if host = strings.TrimSpace(host); host != "" {
			brokers = append(brokers, host)
		}
	}
	return brokers
}

// Close flushes the Kafka writer.
func (c *CompositionRoot) Close() error {
	if c.kafka == nil {
		return nil
	}
	return c.kafka.Close()
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) inventoryUoW() commands.InventoryUoWFactory {
	return FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) pickSheetUoW() commands.PickSheetUoWFactory {
	return FuncPickSheetUoWFactory(func() commands.PickSheetUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) routeUoW() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.orderUoW())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateCreateInventoryItemCommandHandler() commands.CreateInventoryItemCommandHandler {
	return commands.NewCreateInventoryItemCommandHandler(c.inventoryUoW())
}

func (c *CompositionRoot) CreateChangeStockCommandHandler() commands.ChangeStockCommandHandler {
	return commands.NewChangeStockCommandHandler(c.inventoryUoW())
}

func (c *CompositionRoot) CreateReassignLocationsCommandHandler() commands.ReassignLocationsCommandHandler {
	return commands.NewReassignLocationsCommandHandler(c.inventoryUoW())
}

func (c *CompositionRoot) CreateGeneratePickSheetCommandHandler() commands.GeneratePickSheetCommandHandler {
	return commands.NewGeneratePickSheetCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateAssignPickerCommandHandler() commands.AssignPickerCommandHandler {
	return commands.NewAssignPickerCommandHandler(c.pickSheetUoW())
}

func (c *CompositionRoot) CreateMarkItemPickedCommandHandler() commands.MarkItemPickedCommandHandler {
	return commands.NewMarkItemPickedCommandHandler(c.pickSheetUoW())
}

func (c *CompositionRoot) CreateCompletePickSheetCommandHandler() commands.CompletePickSheetCommandHandler {
	return commands.NewCompletePickSheetCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateCancelPickSheetCommandHandler() commands.CancelPickSheetCommandHandler {
	return commands.NewCancelPickSheetCommandHandler(c.pickSheetUoW())
}

func (c *CompositionRoot) CreateDeletePickSheetCommandHandler() commands.DeletePickSheetCommandHandler {
	return commands.NewDeletePickSheetCommandHandler(c.pickSheetUoW())
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	return commands.NewCreateRouteCommandHandler(c.uow())
}

func (c *CompositionRoot) CreatePlanRouteCommandHandler() commands.PlanRouteCommandHandler {
	return commands.NewPlanRouteCommandHandler(c.uow(), c.routing)
}

func (c *CompositionRoot) CreateAddStopCommandHandler() commands.AddStopCommandHandler {
	return commands.NewAddStopCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateMarkStopDeliveredCommandHandler() commands.MarkStopDeliveredCommandHandler {
	return commands.NewMarkStopDeliveredCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateDeleteRouteCommandHandler() commands.DeleteRouteCommandHandler {
	return commands.NewDeleteRouteCommandHandler(c.routeUoW())
}

func (c *CompositionRoot) CreateGetPickSheetQueryHandler() queries.GetPickSheetQueryHandler {
	return queries.NewGetPickSheetQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPickSheetsQueryHandler() queries.ListPickSheetsQueryHandler {
	return queries.NewListPickSheetsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRouteQueryHandler() queries.GetRouteQueryHandler {
	return queries.NewGetRouteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCheckAvailabilityQueryHandler() queries.CheckAvailabilityQueryHandler {
	return queries.NewCheckAvailabilityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnlocatedInventoryQueryHandler() queries.GetUnlocatedInventoryQueryHandler {
	return queries.NewGetUnlocatedInventoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStalePickSheetsQueryHandler() queries.GetStalePickSheetsQueryHandler {
	return queries.NewGetStalePickSheetsQueryHandler(c.gormDB)
}

// CreateHTTPHandlers collects every use case exposed by the HTTP adapter.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		SubmitOrder:         c.CreateSubmitOrderCommandHandler(),
		CancelOrder:         c.CreateCancelOrderCommandHandler(),
		DeleteOrder:         c.CreateDeleteOrderCommandHandler(),
		CreateInventoryItem: c.CreateCreateInventoryItemCommandHandler(),
		ChangeStock:         c.CreateChangeStockCommandHandler(),
		ReassignLocations:   c.CreateReassignLocationsCommandHandler(),
		CheckAvailability:   c.CreateCheckAvailabilityQueryHandler(),
		GeneratePickSheet:   c.CreateGeneratePickSheetCommandHandler(),
		AssignPicker:        c.CreateAssignPickerCommandHandler(),
		MarkItemPicked:      c.CreateMarkItemPickedCommandHandler(),
		CompletePickSheet:   c.CreateCompletePickSheetCommandHandler(),
		CancelPickSheet:     c.CreateCancelPickSheetCommandHandler(),
		DeletePickSheet:     c.CreateDeletePickSheetCommandHandler(),
		GetPickSheet:        c.CreateGetPickSheetQueryHandler(),
		ListPickSheets:      c.CreateListPickSheetsQueryHandler(),
		CreateRoute:         c.CreateCreateRouteCommandHandler(),
		PlanRoute:           c.CreatePlanRouteCommandHandler(),
		AddStop:             c.CreateAddStopCommandHandler(),
		MarkStopDelivered:   c.CreateMarkStopDeliveredCommandHandler(),
		DeleteRoute:         c.CreateDeleteRouteCommandHandler(),
		GetRoute:            c.CreateGetRouteQueryHandler(),
	}
}

// CreateEcho builds the HTTP server with the API, swagger UI, health and
// Prometheus endpoints.
func (c *CompositionRoot) CreateEcho() (*echo.Echo, error) {
	e, err := httpadapter.NewEcho(httpadapter.NewServer(c.CreateHTTPHandlers(), c.logger))
	if err != nil {
		return nil, err
	}

	e.GET("/metrics", echo.WrapHandler(c.metrics.Handler()))
	return e, nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(jobs.Config{
		UnlocatedStockSchedule: c.config.UnlocatedStockSchedule,
		StalePickSheetSchedule: c.config.StalePickSheetSchedule,
		StalePickSheetAfter:    c.config.StalePickSheetAfter,
	},
		c.CreateGetUnlocatedInventoryQueryHandler(),
		c.CreateGetStalePickSheetsQueryHandler(),
		c.logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncPickSheetUoWFactory func() commands.PickSheetUoW

func (f FuncPickSheetUoWFactory) Create() commands.PickSheetUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}
