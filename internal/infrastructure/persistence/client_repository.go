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

// GormClientRepository implements ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client by its ID
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*crm.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all clients matching the filter
func (r *GormClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]crm.Client, error) {
	var clientModels []models.ClientModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.ClientModel{}), filter,
		"name", "company", "email", "phone")

	if err := query.Find(&clientModels).Error; err != nil {
		return nil, err
	}

	clients := make([]crm.Client, len(clientModels))
	for i, model := range clientModels {
		clients[i] = *model.ToDomain()
	}
	return clients, nil
}

// Save creates or updates a client
func (r *GormClientRepository) Save(ctx context.Context, client *crm.Client) error {
	model := models.ClientModelFromDomain(client)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft-deletes a client without touching its dependents.
// Use CascadeDeactivate for the full chain.
func (r *GormClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return softDelete(r.db.WithContext(ctx), &models.ClientModel{}, id)
}

// Count counts clients matching the filter
func (r *GormClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.ClientModel{}), filter,
		"name", "company", "email", "phone")

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeletionPreview counts the active dependent rows a cascade would
// deactivate, without mutating anything.
func (r *GormClientRepository) DeletionPreview(ctx context.Context, clientID uuid.UUID) (*crm.CascadeCounts, error) {
	var counts *crm.CascadeCounts
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		counts, txErr = r.countDependents(tx, clientID)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// CascadeDeactivate soft-deletes the client and every active dependent
// underneath it in one transaction, returning what was touched.
func (r *GormClientRepository) CascadeDeactivate(ctx context.Context, clientID uuid.UUID) (*crm.CascadeCounts, error) {
	var counts *crm.CascadeCounts
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ClientModel{}).
			Where("id = ? AND is_active = ?", clientID, true).
			Update("is_active", false)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}

		var txErr error
		counts, txErr = r.countDependents(tx, clientID)
		if txErr != nil {
			return txErr
		}

		campaignIDs := r.campaignIDs(tx, clientID)

		deactivations := []struct {
			model interface{}
			where string
			arg   interface{}
		}{
			{&models.ProjectModel{}, "client_id = ?", clientID},
			{&models.CampaignModel{}, "project_id IN (?)", r.projectIDs(tx, clientID)},
			{&models.ExpenseModel{}, "campaign_id IN (?)", campaignIDs},
			{&models.ReportModel{}, "campaign_id IN (?)", campaignIDs},
			{&models.InvoiceModel{}, "campaign_id IN (?)", campaignIDs},
			{&models.PromoterActivityModel{}, "campaign_id IN (?)", campaignIDs},
			{&models.DriverAssignmentModel{}, "campaign_id IN (?)", campaignIDs},
		}

		// The campaign subqueries must run before the project rows are
		// flipped inactive, so campaigns resolve against the pre-update
		// state. GORM builds them lazily; keep projects last.
		for i := len(deactivations) - 1; i >= 0; i-- {
			d := deactivations[i]
			if err := tx.Model(d.model).
				Where(d.where, d.arg).
				Where("is_active = ?", true).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// projectIDs builds a subquery selecting the client's active project IDs
func (r *GormClientRepository) projectIDs(tx *gorm.DB, clientID uuid.UUID) *gorm.DB {
	return tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.ProjectModel{}).
		Select("id").
		Where("client_id = ? AND is_active = ?", clientID, true)
}

// campaignIDs builds a subquery selecting the active campaign IDs under
// the client's active projects
func (r *GormClientRepository) campaignIDs(tx *gorm.DB, clientID uuid.UUID) *gorm.DB {
	return tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.CampaignModel{}).
		Select("id").
		Where("project_id IN (?) AND is_active = ?", r.projectIDs(tx, clientID), true)
}

// countDependents tallies the active dependent rows under a client
func (r *GormClientRepository) countDependents(tx *gorm.DB, clientID uuid.UUID) (*crm.CascadeCounts, error) {
	counts := &crm.CascadeCounts{}

	if err := tx.Model(&models.ProjectModel{}).
		Where("client_id = ? AND is_active = ?", clientID, true).
		Count(&counts.Projects).Error; err != nil {
		return nil, err
	}

	if err := tx.Model(&models.CampaignModel{}).
		Where("project_id IN (?) AND is_active = ?", r.projectIDs(tx, clientID), true).
		Count(&counts.Campaigns).Error; err != nil {
		return nil, err
	}

	campaignScoped := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.ExpenseModel{}, &counts.Expenses},
		{&models.ReportModel{}, &counts.Reports},
		{&models.InvoiceModel{}, &counts.Invoices},
		{&models.PromoterActivityModel{}, &counts.PromoterActivities},
		{&models.DriverAssignmentModel{}, &counts.DriverAssignments},
	}
	for _, c := range campaignScoped {
		if err := tx.Model(c.model).
			Where("campaign_id IN (?) AND is_active = ?", r.campaignIDs(tx, clientID), true).
			Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	return counts, nil
}

// Ensure GormClientRepository implements ClientRepository
var _ crm.ClientRepository = (*GormClientRepository)(nil)
