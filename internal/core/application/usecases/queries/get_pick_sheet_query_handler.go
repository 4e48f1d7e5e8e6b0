package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picksheet"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPickSheetQueryHandler reads a pick sheet and its items. Items come back in the
// position they were generated in, which is the non-decreasing pick rank order.
type GetPickSheetQueryHandler struct {
	db *gorm.DB
}

// NewGetPickSheetQueryHandler creates a handler for pick sheet reads.
func NewGetPickSheetQueryHandler(db *gorm.DB) GetPickSheetQueryHandler {
	return GetPickSheetQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError when the sheet does not exist.
func (h GetPickSheetQueryHandler) Handle(
	ctx context.Context,
	query GetPickSheetQuery,
) (*GetPickSheetQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var header struct {
		ID          uuid.UUID
		Number      string
		Status      int
		CreatedAt   time.Time
		PickerName  *string
		StartedAt   *time.Time
		CompletedAt *time.Time
	}
	result := db.Raw(`
		SELECT
			id,
			number,
			status,
			created_at,
			picker_name,
			started_at,
			completed_at
		FROM pick_sheets
		WHERE id = ?
	`, query.PickSheetID().Bytes()).Scan(&header)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("pickSheet", query.PickSheetID().String())
	}

	response := &GetPickSheetQueryResponse{
		ID:          query.PickSheetID(),
		Number:      header.Number,
		Status:      picksheet.Status(header.Status).String(),
		CreatedAt:   header.CreatedAt,
		PickerName:  header.PickerName,
		StartedAt:   header.StartedAt,
		CompletedAt: header.CompletedAt,
		Items:       make([]PickSheetItemView, 0),
	}

	rows, err := db.Raw(`
		SELECT
			id,
			order_id,
			order_line_id,
			inventory_item_id,
			sku,
			product_name,
			quantity,
			location_code,
			pick_rank,
			picked_at,
			abandoned
		FROM pick_sheet_items
		WHERE pick_sheet_id = ?
		ORDER BY position
	`, query.PickSheetID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item PickSheetItemView
		var id, orderID, orderLineID uuid.UUID
		var inventoryItemID *uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&orderLineID,
			&inventoryItemID,
			&item.SKU,
			&item.ProductName,
			&item.Quantity,
			&item.Location,
			&item.PickRank,
			&item.PickedAt,
			&item.Abandoned,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		if item.OrderID, err = toKernelUUID(orderID); err != nil {
			return nil, err
		}
		if item.OrderLineID, err = toKernelUUID(orderLineID); err != nil {
			return nil, err
		}
		if item.InventoryItemID, err = toOptionalKernelUUID(inventoryItemID); err != nil {
			return nil, err
		}

		response.Items = append(response.Items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return response, nil
}

func toKernelUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalKernelUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
