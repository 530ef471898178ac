package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Pratul75/report360/internal/domain/inventory"
	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/Pratul75/report360/internal/infrastructure/persistence/models"
)

// GormGodownRepository implements GodownRepository using GORM
type GormGodownRepository struct {
	db *gorm.DB
}

// NewGormGodownRepository creates a new GormGodownRepository
func NewGormGodownRepository(db *gorm.DB) *GormGodownRepository {
	return &GormGodownRepository{db: db}
}

// FindByID finds a godown by its ID
func (r *GormGodownRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Godown, error) {
	var model models.GodownModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all godowns matching the filter
func (r *GormGodownRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Godown, error) {
	var godownModels []models.GodownModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.GodownModel{}), filter,
		"name", "location", "manager")

	if err := query.Find(&godownModels).Error; err != nil {
		return nil, err
	}

	godowns := make([]inventory.Godown, len(godownModels))
	for i, model := range godownModels {
		godowns[i] = *model.ToDomain()
	}
	return godowns, nil
}

// Save creates or updates a godown
func (r *GormGodownRepository) Save(ctx context.Context, godown *inventory.Godown) error {
	model := models.GodownModelFromDomain(godown)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft-deletes a godown
func (r *GormGodownRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return softDelete(r.db.WithContext(ctx), &models.GodownModel{}, id)
}

// Count counts godowns matching the filter
func (r *GormGodownRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.GodownModel{}), filter, "name", "location", "manager")

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormGodownRepository implements GodownRepository
var _ inventory.GodownRepository = (*GormGodownRepository)(nil)

// GormItemRepository implements ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID finds a stock item by its ID
func (r *GormItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	var model models.ItemModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a stock item by its code
func (r *GormItemRepository) FindByCode(ctx context.Context, itemCode string) (*inventory.Item, error) {
	var model models.ItemModel
	if err := r.db.WithContext(ctx).
		Where("item_code = ?", strings.ToUpper(strings.TrimSpace(itemCode))).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByCode checks if a stock item with the given code exists
func (r *GormItemRepository) ExistsByCode(ctx context.Context, itemCode string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ItemModel{}).
		Where("item_code = ?", strings.ToUpper(strings.TrimSpace(itemCode))).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds all stock items matching the filter
func (r *GormItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Item, error) {
	var itemModels []models.ItemModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.ItemModel{}), filter,
		"item_name", "item_code", "category")

	if err := query.Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]inventory.Item, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// FindByGodown finds stock items held in a godown
func (r *GormItemRepository) FindByGodown(ctx context.Context, godownID uuid.UUID, filter shared.Filter) ([]inventory.Item, error) {
	var itemModels []models.ItemModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.ItemModel{}).Where("godown_id = ?", godownID),
		filter, "item_name", "item_code", "category",
	)

	if err := query.Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]inventory.Item, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// Save creates or updates a stock item
func (r *GormItemRepository) Save(ctx context.Context, item *inventory.Item) error {
	model := models.ItemModelFromDomain(item)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete soft-deletes a stock item
func (r *GormItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return softDelete(r.db.WithContext(ctx), &models.ItemModel{}, id)
}

// Count counts stock items matching the filter
func (r *GormItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.ItemModel{}), filter, "item_name", "item_code", "category")

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormItemRepository implements ItemRepository
var _ inventory.ItemRepository = (*GormItemRepository)(nil)
