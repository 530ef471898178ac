package identity

import (
	"context"

	"github.com/Pratul75/report360/internal/domain/shared"
)

// UserRepository persists users
type UserRepository interface {
	shared.Repository[User]
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByRole(ctx context.Context, role Role, filter shared.Filter) ([]User, error)
}

// RoleGrantRepository reads the database-backed permission overrides.
// A role with no rows falls back to the built-in matrix.
type RoleGrantRepository interface {
	FindByRole(ctx context.Context, role Role) ([]Permission, error)
	ReplaceForRole(ctx context.Context, role Role, perms []Permission) error
}

// ResolvePermissions returns the effective permission set for a role:
// the DB grants when present, the built-in matrix otherwise.
func ResolvePermissions(ctx context.Context, grants RoleGrantRepository, role Role) ([]Permission, error) {
	if grants != nil {
		perms, err := grants.FindByRole(ctx, role)
		if err != nil {
			return nil, err
		}
		if len(perms) > 0 {
			return perms, nil
		}
	}
	return DefaultPermissions(role), nil
}
