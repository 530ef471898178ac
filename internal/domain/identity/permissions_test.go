package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionParts(t *testing.T) {
	p := NewPermission("expense", "approve")
	assert.Equal(t, Permission("expense:approve"), p)
	assert.Equal(t, "expense", p.Resource())
	assert.Equal(t, "approve", p.Action())
	assert.True(t, p.IsValid())

	assert.False(t, Permission("expense").IsValid())
	assert.False(t, Permission(":approve").IsValid())
}

func TestDefaultPermissions(t *testing.T) {
	t.Run("admin holds every permission", func(t *testing.T) {
		perms := DefaultPermissions(RoleAdmin)
		assert.Len(t, perms, len(AllPermissions))
	})

	t.Run("accounts can approve expenses, driver cannot", func(t *testing.T) {
		assert.Contains(t, DefaultPermissions(RoleAccounts), PermExpenseApprove)
		assert.NotContains(t, DefaultPermissions(RoleDriver), PermExpenseApprove)
	})

	t.Run("client role is read only", func(t *testing.T) {
		for _, p := range DefaultPermissions(RoleClient) {
			action := p.Action()
			assert.Contains(t, []string{"read", "view"}, action, "unexpected action %q", p)
		}
	})

	t.Run("unknown role has no permissions", func(t *testing.T) {
		assert.Empty(t, DefaultPermissions(Role("ghost")))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		perms := DefaultPermissions(RoleSales)
		perms[0] = Permission("tampered:tampered")
		assert.NotContains(t, DefaultPermissions(RoleSales), Permission("tampered:tampered"))
	})
}

type stubGrantRepo struct {
	grants map[Role][]Permission
	err    error
}

func (s *stubGrantRepo) FindByRole(_ context.Context, role Role) ([]Permission, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.grants[role], nil
}

func (s *stubGrantRepo) ReplaceForRole(_ context.Context, role Role, perms []Permission) error {
	s.grants[role] = perms
	return nil
}

func TestResolvePermissions(t *testing.T) {
	ctx := context.Background()

	t.Run("database grants override the matrix", func(t *testing.T) {
		repo := &stubGrantRepo{grants: map[Role][]Permission{
			RoleSales: {PermClientRead},
		}}
		perms, err := ResolvePermissions(ctx, repo, RoleSales)
		require.NoError(t, err)
		assert.Equal(t, []Permission{PermClientRead}, perms)
	})

	t.Run("empty grants fall back to the matrix", func(t *testing.T) {
		repo := &stubGrantRepo{grants: map[Role][]Permission{}}
		perms, err := ResolvePermissions(ctx, repo, RoleSales)
		require.NoError(t, err)
		assert.Equal(t, DefaultPermissions(RoleSales), perms)
	})

	t.Run("nil repository uses the matrix", func(t *testing.T) {
		perms, err := ResolvePermissions(ctx, nil, RoleAccounts)
		require.NoError(t, err)
		assert.Contains(t, perms, PermExpenseApprove)
	})
}

func TestMenuSections(t *testing.T) {
	assert.Contains(t, MenuSections(RoleVendor), "vendor-dashboard")
	assert.Contains(t, MenuSections(RoleGodownManager), "inventory")
	assert.Equal(t, []string{"dashboard"}, MenuSections(Role("ghost")))
}
