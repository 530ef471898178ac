package identity

import (
	"context"

	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/domain/shared"
)

// RoleService manages the role_grants permission overrides
type RoleService struct {
	grantRepo identity.RoleGrantRepository
}

// NewRoleService creates a new RoleService
func NewRoleService(grantRepo identity.RoleGrantRepository) *RoleService {
	return &RoleService{grantRepo: grantRepo}
}

// GetGrants returns the effective permission set for a role and whether
// it comes from an override.
func (s *RoleService) GetGrants(ctx context.Context, role identity.Role) (*RoleGrantsResponse, error) {
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown role: "+string(role))
	}

	grants, err := s.grantRepo.FindByRole(ctx, role)
	if err != nil {
		return nil, err
	}

	overridden := len(grants) > 0
	if !overridden {
		grants = identity.DefaultPermissions(role)
	}

	return &RoleGrantsResponse{
		Role:        string(role),
		Permissions: identity.PermissionStrings(grants),
		Overridden:  overridden,
	}, nil
}

// ReplaceGrants installs a permission override for a role. An empty
// permission list removes the override, restoring the built-in matrix.
// Tokens issued before the change keep the old set until rotation.
func (s *RoleService) ReplaceGrants(ctx context.Context, role identity.Role, req ReplaceRoleGrantsRequest) (*RoleGrantsResponse, error) {
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown role: "+string(role))
	}

	perms := make([]identity.Permission, 0, len(req.Permissions))
	for _, p := range req.Permissions {
		perm := identity.Permission(p)
		if !perm.IsValid() {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid permission: "+p)
		}
		perms = append(perms, perm)
	}

	if err := s.grantRepo.ReplaceForRole(ctx, role, perms); err != nil {
		return nil, err
	}

	return s.GetGrants(ctx, role)
}
