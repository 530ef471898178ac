package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Pratul75/report360/internal/domain/fleet"
	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/Pratul75/report360/internal/infrastructure/persistence/models"
)

// GormKMLogRepository implements KMLogRepository using GORM
type GormKMLogRepository struct {
	db *gorm.DB
}

// NewGormKMLogRepository creates a new GormKMLogRepository
func NewGormKMLogRepository(db *gorm.DB) *GormKMLogRepository {
	return &GormKMLogRepository{db: db}
}

// FindByID finds a KM log by its ID
func (r *GormKMLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.DailyKMLog, error) {
	var model models.DailyKMLogModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByDriverAndDate finds the single KM log for a driver on a date.
// Dates are compared at day granularity.
func (r *GormKMLogRepository) FindByDriverAndDate(ctx context.Context, driverID uuid.UUID, date time.Time) (*fleet.DailyKMLog, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var model models.DailyKMLogModel
	if err := r.db.WithContext(ctx).
		Where("driver_id = ? AND log_date >= ? AND log_date < ?", driverID, dayStart, dayEnd).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all KM logs matching the filter
func (r *GormKMLogRepository) FindAll(ctx context.Context, filter shared.Filter) ([]fleet.DailyKMLog, error) {
	var logModels []models.DailyKMLogModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.DailyKMLogModel{}), filter, "remarks")

	if err := query.Find(&logModels).Error; err != nil {
		return nil, err
	}

	logs := make([]fleet.DailyKMLog, len(logModels))
	for i, model := range logModels {
		logs[i] = *model.ToDomain()
	}
	return logs, nil
}

// FindByDriver finds KM logs recorded by a driver
func (r *GormKMLogRepository) FindByDriver(ctx context.Context, driverID uuid.UUID, filter shared.Filter) ([]fleet.DailyKMLog, error) {
	var logModels []models.DailyKMLogModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.DailyKMLogModel{}).Where("driver_id = ?", driverID),
		filter, "remarks",
	)

	if err := query.Find(&logModels).Error; err != nil {
		return nil, err
	}

	logs := make([]fleet.DailyKMLog, len(logModels))
	for i, model := range logModels {
		logs[i] = *model.ToDomain()
	}
	return logs, nil
}

// Save creates or updates a KM log
func (r *GormKMLogRepository) Save(ctx context.Context, log *fleet.DailyKMLog) error {
	model := models.DailyKMLogModelFromDomain(log)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft-deletes a KM log
func (r *GormKMLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return softDelete(r.db.WithContext(ctx), &models.DailyKMLogModel{}, id)
}

// Count counts KM logs matching the filter
func (r *GormKMLogRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.DailyKMLogModel{}), filter, "remarks")

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormKMLogRepository implements KMLogRepository
var _ fleet.KMLogRepository = (*GormKMLogRepository)(nil)

// GormActivityLogRepository implements ActivityLogRepository using GORM
type GormActivityLogRepository struct {
	db *gorm.DB
}

// NewGormActivityLogRepository creates a new GormActivityLogRepository
func NewGormActivityLogRepository(db *gorm.DB) *GormActivityLogRepository {
	return &GormActivityLogRepository{db: db}
}

// FindByID finds an activity log by its ID
func (r *GormActivityLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.DailyActivityLog, error) {
	var model models.DailyActivityLogModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all activity logs matching the filter
func (r *GormActivityLogRepository) FindAll(ctx context.Context, filter shared.Filter) ([]fleet.DailyActivityLog, error) {
	var logModels []models.DailyActivityLogModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.DailyActivityLogModel{}), filter, "details")

	if err := query.Find(&logModels).Error; err != nil {
		return nil, err
	}

	logs := make([]fleet.DailyActivityLog, len(logModels))
	for i, model := range logModels {
		logs[i] = *model.ToDomain()
	}
	return logs, nil
}

// FindByAssignment finds activity logs filed under an assignment
func (r *GormActivityLogRepository) FindByAssignment(ctx context.Context, assignmentID uuid.UUID, filter shared.Filter) ([]fleet.DailyActivityLog, error) {
	var logModels []models.DailyActivityLogModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.DailyActivityLogModel{}).Where("assignment_id = ?", assignmentID),
		filter, "details",
	)

	if err := query.Find(&logModels).Error; err != nil {
		return nil, err
	}

	logs := make([]fleet.DailyActivityLog, len(logModels))
	for i, model := range logModels {
		logs[i] = *model.ToDomain()
	}
	return logs, nil
}

// Save creates or updates an activity log
func (r *GormActivityLogRepository) Save(ctx context.Context, log *fleet.DailyActivityLog) error {
	model := models.DailyActivityLogModelFromDomain(log)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft-deletes an activity log
func (r *GormActivityLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return softDelete(r.db.WithContext(ctx), &models.DailyActivityLogModel{}, id)
}

// Count counts activity logs matching the filter
func (r *GormActivityLogRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.DailyActivityLogModel{}), filter, "details")

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormActivityLogRepository implements ActivityLogRepository
var _ fleet.ActivityLogRepository = (*GormActivityLogRepository)(nil)
