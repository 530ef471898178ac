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

// GormProjectRepository implements ProjectRepository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// FindByID finds a project by its ID
func (r *GormProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*crm.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all projects matching the filter
func (r *GormProjectRepository) FindAll(ctx context.Context, filter shared.Filter) ([]crm.Project, error) {
	var projectModels []models.ProjectModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.ProjectModel{}), filter, "name", "description")

	if err := query.Find(&projectModels).Error; err != nil {
		return nil, err
	}

	projects := make([]crm.Project, len(projectModels))
	for i, model := range projectModels {
		projects[i] = *model.ToDomain()
	}
	return projects, nil
}

// FindByClient finds all projects under a client
func (r *GormProjectRepository) FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]crm.Project, error) {
	var projectModels []models.ProjectModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.ProjectModel{}).Where("client_id = ?", clientID),
		filter, "name", "description",
	)

	if err := query.Find(&projectModels).Error; err != nil {
		return nil, err
	}

	projects := make([]crm.Project, len(projectModels))
	for i, model := range projectModels {
		projects[i] = *model.ToDomain()
	}
	return projects, nil
}

// Save creates or updates a project
func (r *GormProjectRepository) Save(ctx context.Context, project *crm.Project) error {
	model := models.ProjectModelFromDomain(project)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft-deletes a project
func (r *GormProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return softDelete(r.db.WithContext(ctx), &models.ProjectModel{}, id)
}

// Count counts projects matching the filter
func (r *GormProjectRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.ProjectModel{}), filter, "name", "description")

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormProjectRepository implements ProjectRepository
var _ crm.ProjectRepository = (*GormProjectRepository)(nil)
