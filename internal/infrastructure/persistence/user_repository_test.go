package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/domain/shared"
)

func TestGormUserRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	t.Run("finds user by email case-insensitively", func(t *testing.T) {
		user, err := identity.NewUser("Ravi@Example.com", "Ravi Kumar", "hash", identity.RoleAdmin)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, user))

		found, err := repo.FindByEmail(ctx, "RAVI@example.COM ")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, "ravi@example.com", found.Email)
	})

	t.Run("FindByEmail rejects empty email", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "")
		assert.Error(t, err)
	})

	t.Run("ExistsByEmail", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "ravi@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("FindByRole returns only matching role", func(t *testing.T) {
		driver, err := identity.NewUser("driver@example.com", "Driver One", "hash", identity.RoleDriver)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, driver))

		found, err := repo.FindByRole(ctx, identity.RoleDriver, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, driver.ID, found[0].ID)
	})

	t.Run("soft delete hides user from email lookup", func(t *testing.T) {
		user, err := identity.NewUser("temp@example.com", "Temp User", "hash", identity.RoleOperator)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, user))

		require.NoError(t, repo.Delete(ctx, user.ID))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.False(t, found.IsActive)
	})

	t.Run("delete of unknown user returns ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), shared.ErrNotFound)
	})
}

func TestGormRoleGrantRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormRoleGrantRepository(db)
	ctx := context.Background()

	t.Run("empty role has no grants", func(t *testing.T) {
		perms, err := repo.FindByRole(ctx, identity.RoleSales)
		require.NoError(t, err)
		assert.Empty(t, perms)
	})

	t.Run("replace installs an override set", func(t *testing.T) {
		want := []identity.Permission{identity.PermClientRead, identity.PermProjectRead}
		require.NoError(t, repo.ReplaceForRole(ctx, identity.RoleSales, want))

		perms, err := repo.FindByRole(ctx, identity.RoleSales)
		require.NoError(t, err)
		assert.Equal(t, want, perms)
	})

	t.Run("replace overwrites previous set", func(t *testing.T) {
		require.NoError(t, repo.ReplaceForRole(ctx, identity.RoleSales, []identity.Permission{identity.PermClientRead}))

		perms, err := repo.FindByRole(ctx, identity.RoleSales)
		require.NoError(t, err)
		assert.Equal(t, []identity.Permission{identity.PermClientRead}, perms)
	})

	t.Run("replace with empty set removes the override", func(t *testing.T) {
		require.NoError(t, repo.ReplaceForRole(ctx, identity.RoleSales, nil))

		perms, err := repo.FindByRole(ctx, identity.RoleSales)
		require.NoError(t, err)
		assert.Empty(t, perms)
	})
}
