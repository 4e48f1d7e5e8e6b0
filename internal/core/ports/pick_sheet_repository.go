package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picksheet"
)

// PickSheetRepository defines the persistence contract for pick sheets and their items.
type PickSheetRepository interface {
	Add(ctx context.Context, sheet *picksheet.PickSheet) error

	// Update persists sheet status, picker, timestamps and the picked and
	// abandoned flags of its items.
	Update(ctx context.Context, sheet *picksheet.PickSheet) error

	Get(ctx context.Context, id kernel.UUID) (*picksheet.PickSheet, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*picksheet.PickSheet, error)

	// GetByOrderForUpdate locks and returns every sheet with an item of the order.
	GetByOrderForUpdate(ctx context.Context, orderID kernel.UUID) ([]*picksheet.PickSheet, error)

	// NextNumber draws the next sheet number, e.g. "PS-000042".
	NextNumber(ctx context.Context) (string, error)

	// LinesOnSheets returns which of lineIDs already have a non-abandoned item on a
	// pending or completed sheet.
	LinesOnSheets(ctx context.Context, lineIDs []kernel.UUID) ([]kernel.UUID, error)

	// CountItemsByOrder counts the sheet items that reference an order.
	CountItemsByOrder(ctx context.Context, orderID kernel.UUID) (int64, error)

	// Delete removes a sheet and its items.
	Delete(ctx context.Context, id kernel.UUID) error
}
