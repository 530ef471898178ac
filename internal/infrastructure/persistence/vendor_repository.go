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

// GormVendorRepository implements VendorRepository using GORM
type GormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository creates a new GormVendorRepository
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// FindByID finds a vendor by its ID
func (r *GormVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.Vendor, error) {
	var model models.VendorModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all vendors matching the filter
func (r *GormVendorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]fleet.Vendor, error) {
	var vendorModels []models.VendorModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.VendorModel{}), filter,
		"name", "city", "category", "contact_person")

	if err := query.Find(&vendorModels).Error; err != nil {
		return nil, err
	}

	vendors := make([]fleet.Vendor, len(vendorModels))
	for i, model := range vendorModels {
		vendors[i] = *model.ToDomain()
	}
	return vendors, nil
}

// FindByStatus finds vendors in the given booking status
func (r *GormVendorRepository) FindByStatus(ctx context.Context, status fleet.VendorStatus, filter shared.Filter) ([]fleet.Vendor, error) {
	var vendorModels []models.VendorModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.VendorModel{}).Where("status = ?", status),
		filter, "name", "city", "category",
	)

	if err := query.Find(&vendorModels).Error; err != nil {
		return nil, err
	}

	vendors := make([]fleet.Vendor, len(vendorModels))
	for i, model := range vendorModels {
		vendors[i] = *model.ToDomain()
	}
	return vendors, nil
}

// Save creates or updates a vendor
func (r *GormVendorRepository) Save(ctx context.Context, vendor *fleet.Vendor) error {
	model := models.VendorModelFromDomain(vendor)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft-deletes a vendor
func (r *GormVendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return softDelete(r.db.WithContext(ctx), &models.VendorModel{}, id)
}

// Count counts vendors matching the filter
func (r *GormVendorRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.VendorModel{}), filter,
		"name", "city", "category", "contact_person")

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormVendorRepository implements VendorRepository
var _ fleet.VendorRepository = (*GormVendorRepository)(nil)
