// Package inventoryrepo persists stock units and their movement audit trail.
package inventoryrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents one stock unit. PickRank is stored so that queries can sort
// without parsing location codes.
type ItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	SKU            string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Name           string    `gorm:"not null"`
	OnHand         int       `gorm:"not null;check:on_hand >= 0"`
	UnitPriceCents int64     `gorm:"not null"`
	LocationCode   *string   `gorm:"type:varchar(16)"`
	PickRank       int       `gorm:"index;not null"`
}

func (ItemDTO) TableName() string {
	return "inventory_items"
}

// MovementDTO is one row of the stock movement audit trail.
type MovementDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	ItemID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Kind        string    `gorm:"type:varchar(64);not null"`
	Delta       int       `gorm:"not null"`
	OnHandAfter int       `gorm:"not null"`
	Reference   *string   `gorm:"type:varchar(64)"`
	OccurredAt  time.Time `gorm:"not null"`
}

func (MovementDTO) TableName() string {
	return "inventory_movements"
}

func fromDomain(item *inventory.Item) ItemDTO {
	return ItemDTO{
		ID:             item.ID().Bytes(),
		SKU:            item.SKU(),
		Name:           item.Name(),
		OnHand:         item.OnHand(),
		UnitPriceCents: item.UnitPrice().Cents(),
		LocationCode:   item.LocationCode(),
		PickRank:       int(item.PickRank()),
	}
}

func movementsFromDomain(movements []inventory.Movement) []MovementDTO {
	dtos := make([]MovementDTO, 0, len(movements))
	for _, m := range movements {
		dtos = append(dtos, MovementDTO{
			ItemID:      m.ItemID.Bytes(),
			Kind:        m.Name,
			Delta:       m.Delta,
			OnHandAfter: m.OnHandAfter,
			Reference:   m.Reference,
			OccurredAt:  m.At,
		})
	}
	return dtos
}

func toDomain(dto ItemDTO) (*inventory.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.UnitPriceCents)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreItem(id, dto.SKU, dto.Name, dto.OnHand, price, dto.LocationCode)
}
