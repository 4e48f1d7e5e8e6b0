package queries

import (
	"context"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

type CheckAvailabilityQueryHandler struct {
	db *gorm.DB
}

func NewCheckAvailabilityQueryHandler(db *gorm.DB) CheckAvailabilityQueryHandler {
	return CheckAvailabilityQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError for an unknown SKU.
func (h CheckAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query CheckAvailabilityQuery,
) (*CheckAvailabilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var onHand []int
	err := h.db.WithContext(ctx).Raw(`
		SELECT on_hand
		FROM inventory_items
		WHERE sku = ?
	`, query.SKU()).Scan(&onHand).Error
	if err != nil {
		return nil, err
	}
	if len(onHand) == 0 {
		return nil, errs.NewObjectNotFoundError("inventoryItem", query.SKU())
	}

	return &CheckAvailabilityQueryResponse{
		SKU:       query.SKU(),
		OnHand:    onHand[0],
		Requested: query.Quantity(),
		Available: onHand[0] >= query.Quantity(),
	}, nil
}
