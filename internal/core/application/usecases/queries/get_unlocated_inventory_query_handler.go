package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnlocatedInventoryQueryHandler reads stock units without a location code,
// sorted by SKU.
type GetUnlocatedInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetUnlocatedInventoryQueryHandler creates a handler for the un-located stock report.
func NewGetUnlocatedInventoryQueryHandler(db *gorm.DB) GetUnlocatedInventoryQueryHandler {
	return GetUnlocatedInventoryQueryHandler{db: db}
}

func (h GetUnlocatedInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetUnlocatedInventoryQuery,
) ([]GetUnlocatedInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetUnlocatedInventoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sku,
			name,
			on_hand
		FROM inventory_items
		WHERE location_code IS NULL
		ORDER BY sku
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetUnlocatedInventoryQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&item.SKU,
			&item.Name,
			&item.OnHand,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
