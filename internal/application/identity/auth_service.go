package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/Pratul75/report360/internal/infrastructure/auth"
)

// AuthService handles login, token rotation and logout
type AuthService struct {
	userRepo   identity.UserRepository
	grantRepo  identity.RoleGrantRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo identity.UserRepository,
	grantRepo identity.RoleGrantRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		grantRepo:  grantRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
	}
}

// errInvalidCredentials is deliberately identical for unknown emails and
// wrong passwords so the endpoint cannot be used to probe accounts.
func errInvalidCredentials() error {
	return shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")
}

// Login verifies credentials and issues a token pair with the role's
// effective permissions embedded.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, errInvalidCredentials()
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, errInvalidCredentials()
	}
	if err := auth.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		return nil, errInvalidCredentials()
	}

	permissions, err := s.EffectivePermissions(ctx, user.Role)
	if err != nil {
		return nil, err
	}

	pair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:      user.ID,
		Email:       user.Email,
		Role:        string(user.Role),
		VendorID:    user.VendorID,
		Permissions: identity.PermissionStrings(permissions),
	})
	if err != nil {
		return nil, err
	}

	return toTokenResponse(pair, user), nil
}

// Refresh rotates a refresh token. Permissions are re-resolved from the
// database so role or grant changes take effect on the next rotation.
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*TokenResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
	}

	if err := s.checkRevocation(ctx, claims); err != nil {
		return nil, err
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Account no longer exists")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Account is deactivated")
	}

	permissions, err := s.EffectivePermissions(ctx, user.Role)
	if err != nil {
		return nil, err
	}

	pair, err := s.jwtService.RefreshTokenPair(req.RefreshToken, string(user.Role), identity.PermissionStrings(permissions))
	if err != nil {
		if errors.Is(err, auth.ErrMaxRefreshExceeded) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Session expired, please log in again")
		}
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid refresh token")
	}

	return toTokenResponse(pair, user), nil
}

// Logout revokes the access token and, when provided, the refresh
// token, for their remaining lifetimes.
func (s *AuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	claims, err := s.jwtService.ValidateAccessToken(accessToken)
	if err != nil {
		// Expired or malformed tokens have nothing left to revoke.
		return nil
	}
	if claims.ID != "" {
		if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
			return err
		}
	}

	if refreshToken != "" {
		refreshClaims, err := s.jwtService.ValidateRefreshToken(refreshToken)
		if err == nil && refreshClaims.ID != "" {
			if err := s.blacklist.AddToBlacklist(ctx, refreshClaims.ID, refreshClaims.GetRemainingTTL()); err != nil {
				return err
			}
		}
	}
	return nil
}

// Me returns the authenticated profile with resolved permissions and
// menu sections.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*MeResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	permissions, err := s.EffectivePermissions(ctx, user.Role)
	if err != nil {
		return nil, err
	}

	return &MeResponse{
		User:        ToUserResponse(user),
		Permissions: identity.PermissionStrings(permissions),
		Menus:       identity.MenuSections(user.Role),
	}, nil
}

// ChangePassword verifies the current password, stores the new hash and
// revokes every outstanding token for the user.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := auth.VerifyPassword(user.PasswordHash, req.CurrentPassword); err != nil {
		return shared.NewDomainError("UNAUTHORIZED", "Current password is incorrect")
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			return shared.NewDomainError("INVALID_INPUT", "Password must be at least 8 characters")
		}
		return err
	}
	if err := user.ChangePassword(hash); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	return s.blacklist.AddUserTokensToBlacklist(ctx, userID.String(), s.jwtService.GetRefreshTokenExpiration())
}

// ValidateAccess checks an access token against the blacklist in
// addition to signature and expiry. Used by the route middleware.
func (s *AuthService) ValidateAccess(ctx context.Context, tokenString string) (*auth.Claims, error) {
	claims, err := s.jwtService.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, err
	}
	if err := s.checkRevocation(ctx, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// EffectivePermissions resolves a role's permission set: the
// role_grants override when present, the built-in matrix otherwise.
func (s *AuthService) EffectivePermissions(ctx context.Context, role identity.Role) ([]identity.Permission, error) {
	grants, err := s.grantRepo.FindByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	if len(grants) > 0 {
		return grants, nil
	}
	return identity.DefaultPermissions(role), nil
}

func (s *AuthService) checkRevocation(ctx context.Context, claims *auth.Claims) error {
	if claims.ID != "" {
		revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			return err
		}
		if revoked {
			return shared.NewDomainError("UNAUTHORIZED", "Token has been revoked")
		}
	}

	invalidated, err := s.blacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.GetIssuedAtTime())
	if err != nil {
		return err
	}
	if invalidated {
		return shared.NewDomainError("UNAUTHORIZED", "Token has been revoked")
	}
	return nil
}

func toTokenResponse(pair *auth.TokenPair, user *identity.User) *TokenResponse {
	return &TokenResponse{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		TokenType:             pair.TokenType,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		User:                  ToUserResponse(user),
	}
}
