package http

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/generated/servers"
)

var _ servers.ServerInterface = (*Server)(nil)

// CommandHandler executes one command inside its own unit of work.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler answers one read-side query.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers lists the use cases exposed over HTTP. Every field is required.
type Handlers struct {
	// Orders
	CreateOrder CommandHandler[commands.CreateOrderCommand]
	SubmitOrder CommandHandler[commands.SubmitOrderCommand]
	CancelOrder CommandHandler[commands.CancelOrderCommand]
	DeleteOrder CommandHandler[commands.DeleteOrderCommand]

	// Inventory
	CreateInventoryItem CommandHandler[commands.CreateInventoryItemCommand]
	ChangeStock         CommandHandler[commands.ChangeStockCommand]
	ReassignLocations   CommandHandler[commands.ReassignLocationsCommand]
	CheckAvailability   QueryHandler[queries.CheckAvailabilityQuery, *queries.CheckAvailabilityQueryResponse]

	// Pick sheets
	GeneratePickSheet CommandHandler[commands.GeneratePickSheetCommand]
	AssignPicker      CommandHandler[commands.AssignPickerCommand]
	MarkItemPicked    CommandHandler[commands.MarkItemPickedCommand]
	CompletePickSheet CommandHandler[commands.CompletePickSheetCommand]
	CancelPickSheet   CommandHandler[commands.CancelPickSheetCommand]
	DeletePickSheet   CommandHandler[commands.DeletePickSheetCommand]
	GetPickSheet      QueryHandler[queries.GetPickSheetQuery, *queries.GetPickSheetQueryResponse]
	ListPickSheets    QueryHandler[queries.ListPickSheetsQuery, []queries.ListPickSheetsQueryResponse]

	// Routes
	CreateRoute       CommandHandler[commands.CreateRouteCommand]
	PlanRoute         CommandHandler[commands.PlanRouteCommand]
	AddStop           CommandHandler[commands.AddStopCommand]
	MarkStopDelivered CommandHandler[commands.MarkStopDeliveredCommand]
	DeleteRoute       CommandHandler[commands.DeleteRouteCommand]
	GetRoute          QueryHandler[queries.GetRouteQuery, *queries.GetRouteQueryResponse]
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}
