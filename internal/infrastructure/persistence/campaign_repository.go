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

// GormCampaignRepository implements CampaignRepository using GORM
type GormCampaignRepository struct {
	db *gorm.DB
}

// NewGormCampaignRepository creates a new GormCampaignRepository
func NewGormCampaignRepository(db *gorm.DB) *GormCampaignRepository {
	return &GormCampaignRepository{db: db}
}

// FindByID finds a campaign by its ID
func (r *GormCampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*crm.Campaign, error) {
	var model models.CampaignModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all campaigns matching the filter
func (r *GormCampaignRepository) FindAll(ctx context.Context, filter shared.Filter) ([]crm.Campaign, error) {
	var campaignModels []models.CampaignModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.CampaignModel{}), filter, "name", "locations")

	if err := query.Find(&campaignModels).Error; err != nil {
		return nil, err
	}

	campaigns := make([]crm.Campaign, len(campaignModels))
	for i, model := range campaignModels {
		campaigns[i] = *model.ToDomain()
	}
	return campaigns, nil
}

// FindByProject finds all campaigns under a project
func (r *GormCampaignRepository) FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.Filter) ([]crm.Campaign, error) {
	var campaignModels []models.CampaignModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.CampaignModel{}).Where("project_id = ?", projectID),
		filter, "name", "locations",
	)

	if err := query.Find(&campaignModels).Error; err != nil {
		return nil, err
	}

	campaigns := make([]crm.Campaign, len(campaignModels))
	for i, model := range campaignModels {
		campaigns[i] = *model.ToDomain()
	}
	return campaigns, nil
}

// FindByStatus finds campaigns in the given lifecycle status
func (r *GormCampaignRepository) FindByStatus(ctx context.Context, status crm.CampaignStatus, filter shared.Filter) ([]crm.Campaign, error) {
	var campaignModels []models.CampaignModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.CampaignModel{}).Where("status = ?", status),
		filter, "name", "locations",
	)

	if err := query.Find(&campaignModels).Error; err != nil {
		return nil, err
	}

	campaigns := make([]crm.Campaign, len(campaignModels))
	for i, model := range campaignModels {
		campaigns[i] = *model.ToDomain()
	}
	return campaigns, nil
}

// Save creates or updates a campaign
func (r *GormCampaignRepository) Save(ctx context.Context, campaign *crm.Campaign) error {
	model := models.CampaignModelFromDomain(campaign)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft-deletes a campaign
func (r *GormCampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return softDelete(r.db.WithContext(ctx), &models.CampaignModel{}, id)
}

// Count counts campaigns matching the filter
func (r *GormCampaignRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.CampaignModel{}), filter, "name", "locations")

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormCampaignRepository implements CampaignRepository
var _ crm.CampaignRepository = (*GormCampaignRepository)(nil)
