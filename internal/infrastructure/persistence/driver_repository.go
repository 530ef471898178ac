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

// GormDriverRepository implements DriverRepository using GORM
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GormDriverRepository
func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// FindByID finds a driver by its ID
func (r *GormDriverRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.Driver, error) {
	var model models.DriverModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all drivers matching the filter
func (r *GormDriverRepository) FindAll(ctx context.Context, filter shared.Filter) ([]fleet.Driver, error) {
	var driverModels []models.DriverModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.DriverModel{}), filter,
		"name", "phone", "license_number")

	if err := query.Find(&driverModels).Error; err != nil {
		return nil, err
	}

	drivers := make([]fleet.Driver, len(driverModels))
	for i, model := range driverModels {
		drivers[i] = *model.ToDomain()
	}
	return drivers, nil
}

// FindByVendor finds all drivers supplied by a vendor
func (r *GormDriverRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]fleet.Driver, error) {
	var driverModels []models.DriverModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.DriverModel{}).Where("vendor_id = ?", vendorID),
		filter, "name", "phone", "license_number",
	)

	if err := query.Find(&driverModels).Error; err != nil {
		return nil, err
	}

	drivers := make([]fleet.Driver, len(driverModels))
	for i, model := range driverModels {
		drivers[i] = *model.ToDomain()
	}
	return drivers, nil
}

// FindProfile loads the onboarding profile for a driver
func (r *GormDriverRepository) FindProfile(ctx context.Context, driverID uuid.UUID) (*fleet.DriverProfile, error) {
	var model models.DriverProfileModel
	if err := r.db.WithContext(ctx).
		Where("driver_id = ?", driverID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// SaveProfile creates or updates a driver's onboarding profile
func (r *GormDriverRepository) SaveProfile(ctx context.Context, profile *fleet.DriverProfile) error {
	model := models.DriverProfileModelFromDomain(profile)
	return r.db.WithContext(ctx).Save(model).Error
}

// Save creates or updates a driver
func (r *GormDriverRepository) Save(ctx context.Context, driver *fleet.Driver) error {
	model := models.DriverModelFromDomain(driver)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft-deletes a driver
func (r *GormDriverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return softDelete(r.db.WithContext(ctx), &models.DriverModel{}, id)
}

// Count counts drivers matching the filter
func (r *GormDriverRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.DriverModel{}), filter, "name", "phone", "license_number")

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormDriverRepository implements DriverRepository
var _ fleet.DriverRepository = (*GormDriverRepository)(nil)
