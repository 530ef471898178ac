package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pratul75/report360/internal/infrastructure/config"
)

func testJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-that-is-long-enough!",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "report360-test",
		MaxRefreshCount:        3,
	})
}

func TestGenerateTokenPair(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID:      userID,
		Email:       "ops@example.com",
		Role:        "admin",
		Permissions: []string{"client:read", "client:create"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "ops@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.True(t, claims.HasPermission("client:read"))
	assert.False(t, claims.HasPermission("client:delete"))
}

func TestValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	svc := testJWTService()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID: uuid.New(),
		Email:  "ops@example.com",
		Role:   "client_servicing",
	})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestValidateAccessToken_RejectsGarbage(t *testing.T) {
	svc := testJWTService()

	_, err := svc.ValidateAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessToken_RejectsExpired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-that-is-long-enough!",
		AccessTokenExpiration:  -time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "report360-test",
		MaxRefreshCount:        3,
	})

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID: uuid.New(),
		Email:  "ops@example.com",
		Role:   "admin",
	})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestRefreshTokenPair(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID: userID,
		Email:  "ops@example.com",
		Role:   "accountant",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokenPair(pair.RefreshToken, "accountant", []string{"invoice:read"})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.True(t, claims.HasPermission("invoice:read"))

	refreshClaims, err := svc.ValidateRefreshToken(refreshed.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshClaims.RefreshCount)
}

func TestRefreshTokenPair_MaxCountExceeded(t *testing.T) {
	svc := testJWTService()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		UserID: uuid.New(),
		Email:  "ops@example.com",
		Role:   "admin",
	})
	require.NoError(t, err)

	token := pair.RefreshToken
	for i := 0; i < 3; i++ {
		refreshed, err := svc.RefreshTokenPair(token, "admin", nil)
		require.NoError(t, err)
		token = refreshed.RefreshToken
	}

	_, err = svc.RefreshTokenPair(token, "admin", nil)
	assert.ErrorIs(t, err, ErrMaxRefreshExceeded)
}

func TestClaims_GetVendorUUID(t *testing.T) {
	vendorID := uuid.New()

	c := &Claims{VendorID: vendorID.String()}
	got, err := c.GetVendorUUID()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, vendorID, *got)

	empty := &Claims{}
	got, err = empty.GetVendorUUID()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestClaims_HasAnyPermission(t *testing.T) {
	c := &Claims{Permissions: []string{"expense:read", "expense:create"}}
	assert.True(t, c.HasAnyPermission("expense:approve", "expense:read"))
	assert.False(t, c.HasAnyPermission("invoice:read", "payment:read"))
}
