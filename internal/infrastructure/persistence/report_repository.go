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

// GormReportRepository implements ReportRepository using GORM
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// FindByID finds a report by its ID
func (r *GormReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*crm.Report, error) {
	var model models.ReportModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all reports matching the filter
func (r *GormReportRepository) FindAll(ctx context.Context, filter shared.Filter) ([]crm.Report, error) {
	var reportModels []models.ReportModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.ReportModel{}), filter,
		"locations_covered", "notes")

	if err := query.Find(&reportModels).Error; err != nil {
		return nil, err
	}

	reports := make([]crm.Report, len(reportModels))
	for i, model := range reportModels {
		reports[i] = *model.ToDomain()
	}
	return reports, nil
}

// FindByCampaign finds all reports filed against a campaign
func (r *GormReportRepository) FindByCampaign(ctx context.Context, campaignID uuid.UUID, filter shared.Filter) ([]crm.Report, error) {
	var reportModels []models.ReportModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.ReportModel{}).Where("campaign_id = ?", campaignID),
		filter, "locations_covered", "notes",
	)

	if err := query.Find(&reportModels).Error; err != nil {
		return nil, err
	}

	reports := make([]crm.Report, len(reportModels))
	for i, model := range reportModels {
		reports[i] = *model.ToDomain()
	}
	return reports, nil
}

// Save creates or updates a report
func (r *GormReportRepository) Save(ctx context.Context, report *crm.Report) error {
	model := models.ReportModelFromDomain(report)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft-deletes a report
func (r *GormReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return softDelete(r.db.WithContext(ctx), &models.ReportModel{}, id)
}

// Count counts reports matching the filter
func (r *GormReportRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.ReportModel{}), filter, "locations_covered", "notes")

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormReportRepository implements ReportRepository
var _ crm.ReportRepository = (*GormReportRepository)(nil)
