package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/infrastructure/persistence/models"
)

// GormRoleGrantRepository implements RoleGrantRepository using GORM
type GormRoleGrantRepository struct {
	db *gorm.DB
}

// NewGormRoleGrantRepository creates a new GormRoleGrantRepository
func NewGormRoleGrantRepository(db *gorm.DB) *GormRoleGrantRepository {
	return &GormRoleGrantRepository{db: db}
}

// FindByRole lists the permission overrides stored for a role. An
// empty result means the role uses the built-in matrix.
func (r *GormRoleGrantRepository) FindByRole(ctx context.Context, role identity.Role) ([]identity.Permission, error) {
	var rows []models.RoleGrantModel
	if err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("permission ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	perms := make([]identity.Permission, len(rows))
	for i, row := range rows {
		perms[i] = identity.Permission(row.Permission)
	}
	return perms, nil
}

// ReplaceForRole swaps a role's stored grants for the given set in one
// transaction. An empty set removes the override entirely.
func (r *GormRoleGrantRepository) ReplaceForRole(ctx context.Context, role identity.Role, perms []identity.Permission) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role = ?", role).Delete(&models.RoleGrantModel{}).Error; err != nil {
			return err
		}
		if len(perms) == 0 {
			return nil
		}
		rows := make([]models.RoleGrantModel, len(perms))
		for i, perm := range perms {
			rows[i] = models.RoleGrantModel{
				ID:         uuid.New(),
				Role:       role,
				Permission: string(perm),
			}
		}
		return tx.Create(&rows).Error
	})
}

// Ensure GormRoleGrantRepository implements RoleGrantRepository
var _ identity.RoleGrantRepository = (*GormRoleGrantRepository)(nil)
