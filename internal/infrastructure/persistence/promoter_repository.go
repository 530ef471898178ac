package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Pratul75/report360/internal/domain/crm"
	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/Pratul75/report360/internal/infrastructure/persistence/models"
)

// GormPromoterRepository implements PromoterRepository using GORM
type GormPromoterRepository struct {
	db *gorm.DB
}

// NewGormPromoterRepository creates a new GormPromoterRepository
func NewGormPromoterRepository(db *gorm.DB) *GormPromoterRepository {
	return &GormPromoterRepository{db: db}
}

// FindByID finds a promoter by its ID
func (r *GormPromoterRepository) FindByID(ctx context.Context, id uuid.UUID) (*crm.Promoter, error) {
	var model models.PromoterModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all promoters matching the filter
func (r *GormPromoterRepository) FindAll(ctx context.Context, filter shared.Filter) ([]crm.Promoter, error) {
	var promoterModels []models.PromoterModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.PromoterModel{}), filter,
		"name", "phone", "specialty", "language")

	if err := query.Find(&promoterModels).Error; err != nil {
		return nil, err
	}

	promoters := make([]crm.Promoter, len(promoterModels))
	for i, model := range promoterModels {
		promoters[i] = *model.ToDomain()
	}
	return promoters, nil
}

// Save creates or updates a promoter
func (r *GormPromoterRepository) Save(ctx context.Context, promoter *crm.Promoter) error {
	model := models.PromoterModelFromDomain(promoter)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft-deletes a promoter
func (r *GormPromoterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return softDelete(r.db.WithContext(ctx), &models.PromoterModel{}, id)
}

// Count counts promoters matching the filter
func (r *GormPromoterRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.PromoterModel{}), filter,
		"name", "phone", "specialty", "language")

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormPromoterRepository implements PromoterRepository
var _ crm.PromoterRepository = (*GormPromoterRepository)(nil)

// GormPromoterActivityRepository implements PromoterActivityRepository using GORM
type GormPromoterActivityRepository struct {
	db *gorm.DB
}

// NewGormPromoterActivityRepository creates a new GormPromoterActivityRepository
func NewGormPromoterActivityRepository(db *gorm.DB) *GormPromoterActivityRepository {
	return &GormPromoterActivityRepository{db: db}
}

// FindByID finds an activity entry by its ID
func (r *GormPromoterActivityRepository) FindByID(ctx context.Context, id uuid.UUID) (*crm.PromoterActivity, error) {
	var model models.PromoterActivityModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all activity entries matching the filter
func (r *GormPromoterActivityRepository) FindAll(ctx context.Context, filter shared.Filter) ([]crm.PromoterActivity, error) {
	var activityModels []models.PromoterActivityModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.PromoterActivityModel{}), filter,
		"promoter_name", "village", "remarks")

	if err := query.Find(&activityModels).Error; err != nil {
		return nil, err
	}

	activities := make([]crm.PromoterActivity, len(activityModels))
	for i, model := range activityModels {
		activities[i] = *model.ToDomain()
	}
	return activities, nil
}

// FindByCampaign finds activity entries for a campaign
func (r *GormPromoterActivityRepository) FindByCampaign(ctx context.Context, campaignID uuid.UUID, filter shared.Filter) ([]crm.PromoterActivity, error) {
	var activityModels []models.PromoterActivityModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.PromoterActivityModel{}).Where("campaign_id = ?", campaignID),
		filter, "promoter_name", "village", "remarks",
	)

	if err := query.Find(&activityModels).Error; err != nil {
		return nil, err
	}

	activities := make([]crm.PromoterActivity, len(activityModels))
	for i, model := range activityModels {
		activities[i] = *model.ToDomain()
	}
	return activities, nil
}

// FindByPromoter finds activity entries logged by a promoter
func (r *GormPromoterActivityRepository) FindByPromoter(ctx context.Context, promoterID uuid.UUID, filter shared.Filter) ([]crm.PromoterActivity, error) {
	var activityModels []models.PromoterActivityModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.PromoterActivityModel{}).Where("promoter_id = ?", promoterID),
		filter, "promoter_name", "village", "remarks",
	)

	if err := query.Find(&activityModels).Error; err != nil {
		return nil, err
	}

	activities := make([]crm.PromoterActivity, len(activityModels))
	for i, model := range activityModels {
		activities[i] = *model.ToDomain()
	}
	return activities, nil
}

// Save creates or updates an activity entry
func (r *GormPromoterActivityRepository) Save(ctx context.Context, activity *crm.PromoterActivity) error {
	model := models.PromoterActivityModelFromDomain(activity)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft-deletes an activity entry
func (r *GormPromoterActivityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return softDelete(r.db.WithContext(ctx), &models.PromoterActivityModel{}, id)
}

// Count counts activity entries matching the filter
func (r *GormPromoterActivityRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.PromoterActivityModel{}), filter,
		"promoter_name", "village", "remarks")

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormPromoterActivityRepository implements PromoterActivityRepository
var _ crm.PromoterActivityRepository = (*GormPromoterActivityRepository)(nil)
