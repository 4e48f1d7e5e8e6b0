package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for stock units. Stock
// movements recorded on an item are written to the movement audit table by Update.
type InventoryRepository interface {
	Add(ctx context.Context, item *inventory.Item) error
	Update(ctx context.Context, item *inventory.Item) error
	Get(ctx context.Context, id kernel.UUID) (*inventory.Item, error)

	// GetForUpdate retrieves an item and locks its row (SELECT ... FOR UPDATE).
	// Concurrent allocations of the same item wait here.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*inventory.Item, error)

	// GetBySKU retrieves an item by its SKU code.
	GetBySKU(ctx context.Context, sku string) (*inventory.Item, error)

	// GetMany retrieves several items without locking. Unknown ids are skipped.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*inventory.Item, error)

	// GetManyForUpdate locks several items in id order so that concurrent callers
	// never deadlock. A missing id fails with *errs.ObjectNotFoundError.
	GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*inventory.Item, error)
}
