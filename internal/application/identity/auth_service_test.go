package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/Pratul75/report360/internal/infrastructure/auth"
	"github.com/Pratul75/report360/internal/infrastructure/config"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindByRole(ctx context.Context, role identity.Role, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, role, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockRoleGrantRepository is a mock implementation of RoleGrantRepository
type MockRoleGrantRepository struct {
	mock.Mock
}

func (m *MockRoleGrantRepository) FindByRole(ctx context.Context, role identity.Role) ([]identity.Permission, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.Permission), args.Error(1)
}

func (m *MockRoleGrantRepository) ReplaceForRole(ctx context.Context, role identity.Role, perms []identity.Permission) error {
	args := m.Called(ctx, role, perms)
	return args.Error(0)
}

// =============================================================================
// Helpers
// =============================================================================

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-that-is-long-enough",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "report360-test",
		MaxRefreshCount:        5,
	})
}

func testUser(t *testing.T, password string, role identity.Role) *identity.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user, err := identity.NewUser("ops@example.com", "Ops User", hash, role)
	require.NoError(t, err)
	return user
}

func newAuthService(userRepo *MockUserRepository, grantRepo *MockRoleGrantRepository) (*AuthService, *auth.InMemoryTokenBlacklist) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	return NewAuthService(userRepo, grantRepo, testJWTService(), blacklist), blacklist
}

// =============================================================================
// Tests
// =============================================================================

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("issues tokens with default permissions", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		grantRepo := new(MockRoleGrantRepository)
		svc, _ := newAuthService(userRepo, grantRepo)

		user := testUser(t, "secret-pass", identity.RoleAdmin)
		userRepo.On("FindByEmail", ctx, "ops@example.com").Return(user, nil)
		grantRepo.On("FindByRole", ctx, identity.RoleAdmin).Return([]identity.Permission{}, nil)

		resp, err := svc.Login(ctx, LoginRequest{Email: "ops@example.com", Password: "secret-pass"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "admin", resp.User.Role)

		claims, err := svc.ValidateAccess(ctx, resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.True(t, claims.HasPermission(string(identity.PermClientDelete)))
	})

	t.Run("role_grants override shrinks the permission set", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		grantRepo := new(MockRoleGrantRepository)
		svc, _ := newAuthService(userRepo, grantRepo)

		user := testUser(t, "secret-pass", identity.RoleSales)
		userRepo.On("FindByEmail", ctx, "ops@example.com").Return(user, nil)
		grantRepo.On("FindByRole", ctx, identity.RoleSales).
			Return([]identity.Permission{identity.PermClientRead}, nil)

		resp, err := svc.Login(ctx, LoginRequest{Email: "ops@example.com", Password: "secret-pass"})
		require.NoError(t, err)

		claims, err := svc.ValidateAccess(ctx, resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, []string{string(identity.PermClientRead)}, claims.Permissions)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		grantRepo := new(MockRoleGrantRepository)
		svc, _ := newAuthService(userRepo, grantRepo)

		user := testUser(t, "secret-pass", identity.RoleAdmin)
		userRepo.On("FindByEmail", ctx, "ops@example.com").Return(user, nil)

		_, err := svc.Login(ctx, LoginRequest{Email: "ops@example.com", Password: "wrong"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})

	t.Run("unknown email gets the same error as wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		grantRepo := new(MockRoleGrantRepository)
		svc, _ := newAuthService(userRepo, grantRepo)

		userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, shared.ErrNotFound)

		_, err := svc.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "whatever"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})

	t.Run("deactivated account cannot log in", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		grantRepo := new(MockRoleGrantRepository)
		svc, _ := newAuthService(userRepo, grantRepo)

		user := testUser(t, "secret-pass", identity.RoleAdmin)
		user.IsActive = false
		userRepo.On("FindByEmail", ctx, "ops@example.com").Return(user, nil)

		_, err := svc.Login(ctx, LoginRequest{Email: "ops@example.com", Password: "secret-pass"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("rotation picks up a role change", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		grantRepo := new(MockRoleGrantRepository)
		svc, _ := newAuthService(userRepo, grantRepo)

		user := testUser(t, "secret-pass", identity.RoleOperator)
		userRepo.On("FindByEmail", ctx, "ops@example.com").Return(user, nil)
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		grantRepo.On("FindByRole", ctx, identity.RoleOperator).Return([]identity.Permission{}, nil)
		grantRepo.On("FindByRole", ctx, identity.RoleAdmin).Return([]identity.Permission{}, nil)

		resp, err := svc.Login(ctx, LoginRequest{Email: "ops@example.com", Password: "secret-pass"})
		require.NoError(t, err)

		require.NoError(t, user.AssignRole(identity.RoleAdmin))

		rotated, err := svc.Refresh(ctx, RefreshRequest{RefreshToken: resp.RefreshToken})
		require.NoError(t, err)

		claims, err := svc.ValidateAccess(ctx, rotated.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		grantRepo := new(MockRoleGrantRepository)
		svc, _ := newAuthService(userRepo, grantRepo)

		_, err := svc.Refresh(ctx, RefreshRequest{RefreshToken: "not-a-token"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("revoked access token fails validation", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		grantRepo := new(MockRoleGrantRepository)
		svc, _ := newAuthService(userRepo, grantRepo)

		user := testUser(t, "secret-pass", identity.RoleAdmin)
		userRepo.On("FindByEmail", ctx, "ops@example.com").Return(user, nil)
		grantRepo.On("FindByRole", ctx, identity.RoleAdmin).Return([]identity.Permission{}, nil)

		resp, err := svc.Login(ctx, LoginRequest{Email: "ops@example.com", Password: "secret-pass"})
		require.NoError(t, err)

		_, err = svc.ValidateAccess(ctx, resp.AccessToken)
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, resp.AccessToken, resp.RefreshToken))

		_, err = svc.ValidateAccess(ctx, resp.AccessToken)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)

		_, err = svc.Refresh(ctx, RefreshRequest{RefreshToken: resp.RefreshToken})
		require.Error(t, err)
	})

	t.Run("expired token logout is a no-op", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		grantRepo := new(MockRoleGrantRepository)
		svc, _ := newAuthService(userRepo, grantRepo)

		assert.NoError(t, svc.Logout(ctx, "stale-token", ""))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong current password is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		grantRepo := new(MockRoleGrantRepository)
		svc, _ := newAuthService(userRepo, grantRepo)

		user := testUser(t, "secret-pass", identity.RoleAdmin)
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		err := svc.ChangePassword(ctx, user.ID, ChangePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "new-secret-pass",
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	})

	t.Run("successful change revokes earlier tokens", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		grantRepo := new(MockRoleGrantRepository)
		svc, _ := newAuthService(userRepo, grantRepo)

		user := testUser(t, "secret-pass", identity.RoleAdmin)
		userRepo.On("FindByEmail", ctx, "ops@example.com").Return(user, nil)
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		userRepo.On("Save", ctx, user).Return(nil)
		grantRepo.On("FindByRole", ctx, identity.RoleAdmin).Return([]identity.Permission{}, nil)

		resp, err := svc.Login(ctx, LoginRequest{Email: "ops@example.com", Password: "secret-pass"})
		require.NoError(t, err)

		// The blacklist compares issued-at timestamps at nanosecond
		// resolution in memory; keep the token strictly older.
		time.Sleep(5 * time.Millisecond)

		require.NoError(t, svc.ChangePassword(ctx, user.ID, ChangePasswordRequest{
			CurrentPassword: "secret-pass",
			NewPassword:     "new-secret-pass",
		}))

		_, err = svc.ValidateAccess(ctx, resp.AccessToken)
		require.Error(t, err)
	})
}
