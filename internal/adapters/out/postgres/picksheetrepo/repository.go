package picksheetrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picksheet"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPickSheetRepository implements PickSheetRepository using GORM.
type GormPickSheetRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPickSheetRepository(db *gorm.DB, tracker aggregateTracker) *GormPickSheetRepository {
	return &GormPickSheetRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new sheet with its items.
func (r *GormPickSheetRepository) Add(ctx context.Context, sheet *picksheet.PickSheet) error {
	if err := sheet.Validate(); err != nil {
		return err
	}

	dto := fromDomain(sheet)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(sheet.ID(), sheet)
	return nil
}

// Update saves the sheet row and the picked and abandoned state of every item.
func (r *GormPickSheetRepository) Update(ctx context.Context, sheet *picksheet.PickSheet) error {
	if err := sheet.Validate(); err != nil {
		return err
	}

	dto := fromDomain(sheet)
	result := r.db.WithContext(ctx).Model(&PickSheetDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":       dto.Status,
		"picker_name":  dto.PickerName,
		"started_at":   dto.StartedAt,
		"completed_at": dto.CompletedAt,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	for _, item := range dto.Items {
		err := r.db.WithContext(ctx).Model(&ItemDTO{}).Where("id = ?", item.ID).Updates(map[string]any{
			"picked_at": item.PickedAt,
			"abandoned": item.Abandoned,
		}).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(sheet.ID(), sheet)
	return nil
}

func (r *GormPickSheetRepository) Get(ctx context.Context, id kernel.UUID) (*picksheet.PickSheet, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the sheet row; concurrent completions of the same sheet
// wait here and then see the Completed status.
func (r *GormPickSheetRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*picksheet.PickSheet, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormPickSheetRepository) GetByOrderForUpdate(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*picksheet.PickSheet, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	sheetIDs := db.Model(&ItemDTO{}).Select("pick_sheet_id").Where("order_id = ?", orderID.Bytes())

	var dtos []PickSheetDTO
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items", orderedItems).
		Where("id IN (?)", sheetIDs).
		Order("number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	sheets := make([]*picksheet.PickSheet, 0, len(dtos))
	for _, dto := range dtos {
		sheet, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}

	return sheets, nil
}

// NextNumber draws from the sheet number sequence.
func (r *GormPickSheetRepository) NextNumber(ctx context.Context) (string, error) {
	var seq int64
	if err := r.db.WithContext(ctx).Raw(fmt.Sprintf("SELECT nextval('%s')", NumberSequence)).Scan(&seq).Error; err != nil {
		return "", err
	}

	return picksheet.FormatNumber(seq)
}

func (r *GormPickSheetRepository) LinesOnSheets(ctx context.Context, lineIDs []kernel.UUID) ([]kernel.UUID, error) {
	if len(lineIDs) == 0 {
		return []kernel.UUID{}, nil
	}

	raw := make([]uuid.UUID, 0, len(lineIDs))
	for _, id := range lineIDs {
		raw = append(raw, id.Bytes())
	}

	var taken []uuid.UUID
	err := r.db.WithContext(ctx).
		Table("pick_sheet_items AS i").
		Joins("JOIN pick_sheets AS s ON s.id = i.pick_sheet_id").
		Where("i.order_line_id IN ?", raw).
		Where("NOT i.abandoned").
		Where("s.status IN ?", []int{int(picksheet.Pending), int(picksheet.Completed)}).
		Distinct().
		Pluck("i.order_line_id", &taken).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(taken))
	for _, id := range taken {
		lineID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, lineID)
	}

	return ids, nil
}

func (r *GormPickSheetRepository) CountItemsByOrder(ctx context.Context, orderID kernel.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ItemDTO{}).Where("order_id = ?", orderID.Bytes()).Count(&count).Error
	return count, err
}

// Delete removes the sheet and its items.
func (r *GormPickSheetRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("pick_sheet_id = ?", id.Bytes()).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", id.Bytes()).Delete(&PickSheetDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pickSheet", id.String())
	}

	return nil
}

func (r *GormPickSheetRepository) get(db *gorm.DB, id kernel.UUID) (*picksheet.PickSheet, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PickSheetDTO
	if err := db.Preload("Items", orderedItems).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickSheet", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
