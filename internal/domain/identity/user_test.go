package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates active user with normalized email", func(t *testing.T) {
		user, err := NewUser("  Ops@Example.COM ", "Ravi Kumar", "hash", RoleOperationsManager)
		require.NoError(t, err)
		assert.Equal(t, "ops@example.com", user.Email)
		assert.Equal(t, RoleOperationsManager, user.Role)
		assert.True(t, user.IsActive)
		assert.NotEqual(t, uuid.Nil, user.ID)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewUser("not-an-email", "Name", "hash", RoleAdmin)
		assert.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewUser("a@b.com", "  ", "hash", RoleAdmin)
		assert.Error(t, err)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewUser("a@b.com", "Name", "hash", Role("superuser"))
		assert.Error(t, err)
	})
}

func TestUserChangePassword(t *testing.T) {
	user, err := NewUser("a@b.com", "Name", "hash1", RoleDriver)
	require.NoError(t, err)

	require.NoError(t, user.ChangePassword("hash2"))
	assert.Equal(t, "hash2", user.PasswordHash)

	assert.Error(t, user.ChangePassword(""))
}

func TestUserAssignRole(t *testing.T) {
	user, err := NewUser("a@b.com", "Name", "hash", RoleDriver)
	require.NoError(t, err)

	require.NoError(t, user.AssignRole(RoleAccounts))
	assert.Equal(t, RoleAccounts, user.Role)

	assert.Error(t, user.AssignRole(Role("nope")))
}

func TestUserLinkVendor(t *testing.T) {
	user, err := NewUser("v@b.com", "Vendor User", "hash", RoleVendor)
	require.NoError(t, err)

	vendorID := uuid.New()
	user.LinkVendor(vendorID)
	require.NotNil(t, user.VendorID)
	assert.Equal(t, vendorID, *user.VendorID)
}
