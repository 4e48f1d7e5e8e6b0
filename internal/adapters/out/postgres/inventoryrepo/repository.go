package inventoryrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new stock unit.
func (r *GormInventoryRepository) Add(ctx context.Context, item *inventory.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := r.saveMovements(ctx, item); err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update saves on-hand, price and location of a stock unit and appends its
// pending movements to the audit trail.
func (r *GormInventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":             dto.Name,
		"on_hand":          dto.OnHand,
		"unit_price_cents": dto.UnitPriceCents,
		"location_code":    dto.LocationCode,
		"pick_rank":        dto.PickRank,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.saveMovements(ctx, item); err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

func (r *GormInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Item, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the item row until the surrounding transaction ends.
func (r *GormInventoryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*inventory.Item, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormInventoryRepository) GetBySKU(ctx context.Context, sku string) (*inventory.Item, error) {
	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventoryItem", sku)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany returns the known items among ids.
func (r *GormInventoryRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*inventory.Item, error) {
	return r.getMany(r.db.WithContext(ctx), ids, false)
}

// GetManyForUpdate locks the items in id order.
func (r *GormInventoryRepository) GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*inventory.Item, error) {
	return r.getMany(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), ids, true)
}

func (r *GormInventoryRepository) get(db *gorm.DB, id kernel.UUID) (*inventory.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventoryItem", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormInventoryRepository) getMany(db *gorm.DB, ids []kernel.UUID, strict bool) ([]*inventory.Item, error) {
	if len(ids) == 0 {
		return []*inventory.Item{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ItemDTO
	if err := db.Where("id IN ?", raw).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]bool, len(dtos))
	items := make([]*inventory.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		found[dto.ID] = true
		items = append(items, item)
	}

	if strict {
		for _, id := range ids {
			if !found[id.Bytes()] {
				return nil, errs.NewObjectNotFoundError("inventoryItem", id.String())
			}
		}
	}

	return items, nil
}

func (r *GormInventoryRepository) saveMovements(ctx context.Context, item *inventory.Item) error {
	movements := movementsFromDomain(item.PendingMovements())
	if len(movements) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Create(&movements).Error; err != nil {
		return err
	}

	item.ClearPendingMovements()
	return nil
}
