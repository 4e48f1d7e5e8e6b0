// Package picksheetrepo persists pick sheets and their items.
package picksheetrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picksheet"

	"github.com/google/uuid"
)

// NumberSequence is the database sequence that backs sheet numbers.
const NumberSequence = "pick_sheet_number_seq"

// PickSheetDTO represents the pick_sheets table.
type PickSheetDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number      string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	Status      int       `gorm:"index;not null"`
	CreatedAt   time.Time `gorm:"not null"`
	PickerName  *string
	StartedAt   *time.Time
	CompletedAt *time.Time
	Items       []ItemDTO `gorm:"foreignKey:PickSheetID"`
}

func (PickSheetDTO) TableName() string {
	return "pick_sheets"
}

// ItemDTO represents one pick sheet item. Position is the index in picking order.
type ItemDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PickSheetID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	OrderID         uuid.UUID  `gorm:"type:uuid;index;not null"`
	OrderLineID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	InventoryItemID *uuid.UUID `gorm:"type:uuid"`
	SKU             string     `gorm:"type:varchar(64);not null"`
	ProductName     string
	Quantity        int     `gorm:"not null"`
	LocationCode    *string `gorm:"type:varchar(16)"`
	PickRank        int     `gorm:"not null"`
	Position        int     `gorm:"not null"`
	PickedAt        *time.Time
	Abandoned       bool `gorm:"not null;default:false"`
}

func (ItemDTO) TableName() string {
	return "pick_sheet_items"
}

func fromDomain(sheet *picksheet.PickSheet) PickSheetDTO {
	items := sheet.Items()
	dto := PickSheetDTO{
		ID:          sheet.ID().Bytes(),
		Number:      sheet.Number(),
		Status:      int(sheet.Status()),
		CreatedAt:   sheet.CreatedAt(),
		PickerName:  sheet.PickerName(),
		StartedAt:   sheet.StartedAt(),
		CompletedAt: sheet.CompletedAt(),
		Items:       make([]ItemDTO, 0, len(items)),
	}

	for i, item := range items {
		var inventoryItemID *uuid.UUID
		if id := item.InventoryItemID(); id != nil {
			raw := id.Bytes()
			inventoryItemID = &raw
		}

		dto.Items = append(dto.Items, ItemDTO{
			ID:              item.ID().Bytes(),
			PickSheetID:     dto.ID,
			OrderID:         item.OrderID().Bytes(),
			OrderLineID:     item.OrderLineID().Bytes(),
			InventoryItemID: inventoryItemID,
			SKU:             item.SKU(),
			ProductName:     item.ProductName(),
			Quantity:        item.Quantity(),
			LocationCode:    item.Location(),
			PickRank:        int(item.PickRank()),
			Position:        i,
			PickedAt:        item.PickedAt(),
			Abandoned:       item.IsAbandoned(),
		})
	}

	return dto
}

func toDomain(dto PickSheetDTO) (*picksheet.PickSheet, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*picksheet.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return picksheet.RestorePickSheet(
		id,
		dto.Number,
		picksheet.Status(dto.Status),
		dto.CreatedAt,
		dto.PickerName,
		dto.StartedAt,
		dto.CompletedAt,
		items,
	)
}

func itemToDomain(dto ItemDTO) (*picksheet.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	orderLineID, err := kernel.UUIDFromBytes(dto.OrderLineID[:])
	if err != nil {
		return nil, err
	}

	var inventoryItemID *kernel.UUID
	if dto.InventoryItemID != nil {
		iid, iidErr := kernel.UUIDFromBytes((*dto.InventoryItemID)[:])
		if iidErr != nil {
			return nil, iidErr
		}
		inventoryItemID = &iid
	}

	return picksheet.RestoreItem(id, picksheet.ItemSpec{
		OrderID:         orderID,
		OrderLineID:     orderLineID,
		InventoryItemID: inventoryItemID,
		SKU:             dto.SKU,
		ProductName:     dto.ProductName,
		Quantity:        dto.Quantity,
		Location:        dto.LocationCode,
		PickRank:        kernel.PickRank(dto.PickRank),
	}, dto.PickedAt, dto.Abandoned)
}
