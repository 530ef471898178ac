package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Pratul75/report360/internal/domain/fleet"
	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/Pratul75/report360/internal/infrastructure/persistence/models"
)

// GormVehicleRepository implements VehicleRepository using GORM
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GormVehicleRepository
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

func normalizeVehicleNumber(number string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(number), " ", ""))
}

// FindByID finds a vehicle by its ID
func (r *GormVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.Vehicle, error) {
	var model models.VehicleModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds a vehicle by its registration number
func (r *GormVehicleRepository) FindByNumber(ctx context.Context, vehicleNumber string) (*fleet.Vehicle, error) {
	var model models.VehicleModel
	if err := r.db.WithContext(ctx).
		Where("vehicle_number = ?", normalizeVehicleNumber(vehicleNumber)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByNumber checks if a vehicle with the given registration number exists
func (r *GormVehicleRepository) ExistsByNumber(ctx context.Context, vehicleNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.VehicleModel{}).
		Where("vehicle_number = ?", normalizeVehicleNumber(vehicleNumber)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds all vehicles matching the filter
func (r *GormVehicleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]fleet.Vehicle, error) {
	var vehicleModels []models.VehicleModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.VehicleModel{}), filter,
		"vehicle_number", "type")

	if err := query.Find(&vehicleModels).Error; err != nil {
		return nil, err
	}

	vehicles := make([]fleet.Vehicle, len(vehicleModels))
	for i, model := range vehicleModels {
		vehicles[i] = *model.ToDomain()
	}
	return vehicles, nil
}

// FindByVendor finds all vehicles supplied by a vendor
func (r *GormVehicleRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]fleet.Vehicle, error) {
	var vehicleModels []models.VehicleModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.VehicleModel{}).Where("vendor_id = ?", vendorID),
		filter, "vehicle_number", "type",
	)

	if err := query.Find(&vehicleModels).Error; err != nil {
		return nil, err
	}

	vehicles := make([]fleet.Vehicle, len(vehicleModels))
	for i, model := range vehicleModels {
		vehicles[i] = *model.ToDomain()
	}
	return vehicles, nil
}

// Save creates or updates a vehicle
func (r *GormVehicleRepository) Save(ctx context.Context, vehicle *fleet.Vehicle) error {
	model := models.VehicleModelFromDomain(vehicle)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft-deletes a vehicle
func (r *GormVehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return softDelete(r.db.WithContext(ctx), &models.VehicleModel{}, id)
}

// Count counts vehicles matching the filter
func (r *GormVehicleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.VehicleModel{}), filter, "vehicle_number", "type")

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormVehicleRepository implements VehicleRepository
var _ fleet.VehicleRepository = (*GormVehicleRepository)(nil)
