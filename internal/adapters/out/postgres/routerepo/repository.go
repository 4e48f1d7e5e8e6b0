package routerepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// GormRouteRepository implements RouteRepository using GORM.
type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new route with its stops.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Stops").Create(&dto).Error; err != nil {
		return err
	}

	for _, stop := range dto.Stops {
		if err := r.db.WithContext(ctx).Create(&stop).Error; err != nil {
			return mapStopError(dto, stop, err)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the route status and upserts every stop by id.
func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RouteDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":   dto.Name,
		"status": dto.Status,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	for _, stop := range dto.Stops {
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"estimated_arrival", "actual_arrival", "status"}),
		}).Create(&stop).Error
		if err != nil {
			return mapStopError(dto, stop, err)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the route row. Stop insertion and delivery confirmation for
// one route are serialized on this lock.
func (r *GormRouteRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormRouteRepository) CountStopsByOrder(ctx context.Context, orderID kernel.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&StopDTO{}).Where("order_id = ?", orderID.Bytes()).Count(&count).Error
	return count, err
}

// Delete removes the route and its stops.
func (r *GormRouteRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("route_id = ?", id.Bytes()).Delete(&StopDTO{}).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", id.Bytes()).Delete(&RouteDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("route", id.String())
	}

	return nil
}

func (r *GormRouteRepository) get(db *gorm.DB, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	err := db.Preload("Stops", func(db *gorm.DB) *gorm.DB {
		return db.Order("stop_order")
	}).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// mapStopError turns a unique violation on (route_id, stop_order) into
// *errs.DuplicateStopOrderError.
func mapStopError(route RouteDTO, stop StopDTO, err error) error {
	var pqErr *pq.Error
	if (errors.As(err, &pqErr) && pqErr.Code == uniqueViolation) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewDuplicateStopOrderErrorWithCause(route.ID.String(), stop.StopOrder, err)
	}
	return err
}
