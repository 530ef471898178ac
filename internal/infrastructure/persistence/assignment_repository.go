package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Pratul75/report360/internal/domain/fleet"
	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/Pratul75/report360/internal/infrastructure/persistence/models"
)

// GormAssignmentRepository implements AssignmentRepository using GORM
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new GormAssignmentRepository
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// FindByID finds an assignment by its ID
func (r *GormAssignmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.DriverAssignment, error) {
	var model models.DriverAssignmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all assignments matching the filter
func (r *GormAssignmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]fleet.DriverAssignment, error) {
	var assignmentModels []models.DriverAssignmentModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.DriverAssignmentModel{}), filter,
		"work_title", "village", "address")

	if err := query.Find(&assignmentModels).Error; err != nil {
		return nil, err
	}

	assignments := make([]fleet.DriverAssignment, len(assignmentModels))
	for i, model := range assignmentModels {
		assignments[i] = *model.ToDomain()
	}
	return assignments, nil
}

// FindByDriver finds assignments booked for a driver
func (r *GormAssignmentRepository) FindByDriver(ctx context.Context, driverID uuid.UUID, filter shared.Filter) ([]fleet.DriverAssignment, error) {
	var assignmentModels []models.DriverAssignmentModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.DriverAssignmentModel{}).Where("driver_id = ?", driverID),
		filter, "work_title", "village",
	)

	if err := query.Find(&assignmentModels).Error; err != nil {
		return nil, err
	}

	assignments := make([]fleet.DriverAssignment, len(assignmentModels))
	for i, model := range assignmentModels {
		assignments[i] = *model.ToDomain()
	}
	return assignments, nil
}

// FindByCampaign finds assignments booked on a campaign
func (r *GormAssignmentRepository) FindByCampaign(ctx context.Context, campaignID uuid.UUID, filter shared.Filter) ([]fleet.DriverAssignment, error) {
	var assignmentModels []models.DriverAssignmentModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.DriverAssignmentModel{}).Where("campaign_id = ?", campaignID),
		filter, "work_title", "village",
	)

	if err := query.Find(&assignmentModels).Error; err != nil {
		return nil, err
	}

	assignments := make([]fleet.DriverAssignment, len(assignmentModels))
	for i, model := range assignmentModels {
		assignments[i] = *model.ToDomain()
	}
	return assignments, nil
}

// CountByStatus counts active assignments in the given work status
func (r *GormAssignmentRepository) CountByStatus(ctx context.Context, status fleet.AssignmentStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.DriverAssignmentModel{}).
		Where("status = ? AND is_active = ?", status, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an assignment
func (r *GormAssignmentRepository) Save(ctx context.Context, assignment *fleet.DriverAssignment) error {
	model := models.DriverAssignmentModelFromDomain(assignment)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft-deletes an assignment
func (r *GormAssignmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return softDelete(r.db.WithContext(ctx), &models.DriverAssignmentModel{}, id)
}

// Count counts assignments matching the filter
func (r *GormAssignmentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.DriverAssignmentModel{}), filter,
		"work_title", "village", "address")

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormAssignmentRepository implements AssignmentRepository
var _ fleet.AssignmentRepository = (*GormAssignmentRepository)(nil)
