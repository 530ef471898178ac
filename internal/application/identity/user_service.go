package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/identity"
	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/Pratul75/report360/internal/infrastructure/auth"
)

// UserService handles user account administration
type UserService struct {
	userRepo   identity.UserRepository
	blacklist  auth.TokenBlacklist
	jwtService *auth.JWTService
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, blacklist auth.TokenBlacklist, jwtService *auth.JWTService) *UserService {
	return &UserService{
		userRepo:   userRepo,
		blacklist:  blacklist,
		jwtService: jwtService,
	}
}

// revokeTokens invalidates every token issued to the user before now.
// The marker only needs to outlive the longest-lived token.
func (s *UserService) revokeTokens(ctx context.Context, userID uuid.UUID) error {
	return s.blacklist.AddUserTokensToBlacklist(ctx, userID.String(), s.jwtService.GetRefreshTokenExpiration())
}

// Create creates a user account
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A user with this email already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			return nil, shared.NewDomainError("INVALID_INPUT", "Password must be at least 8 characters")
		}
		return nil, err
	}

	user, err := identity.NewUser(req.Email, req.Name, hash, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}
	if req.Phone != "" {
		if err := user.UpdateProfile(user.Name, req.Phone); err != nil {
			return nil, err
		}
	}
	if req.VendorID != nil {
		if user.Role != identity.RoleVendor {
			return nil, shared.NewDomainError("INVALID_INPUT", "Only vendor users can be linked to a vendor")
		}
		user.LinkVendor(*req.VendorID)
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	response := ToUserResponse(user)
	return &response, nil
}

// List retrieves users with filtering and pagination
func (s *UserService) List(ctx context.Context, filter UserListFilter) ([]UserResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search

	var (
		users []identity.User
		err   error
	)
	if filter.Role != "" {
		users, err = s.userRepo.FindByRole(ctx, identity.Role(filter.Role), domainFilter)
	} else {
		users, err = s.userRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	countFilter := domainFilter
	if filter.Role != "" {
		countFilter.Filters = map[string]interface{}{"role": filter.Role}
	}
	total, err := s.userRepo.Count(ctx, countFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToUserResponses(users), total, nil
}

// Update updates a user's profile, role and vendor link
func (s *UserService) Update(ctx context.Context, userID uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	name := user.Name
	phone := user.Phone
	if req.Name != nil {
		name = *req.Name
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Name != nil || req.Phone != nil {
		if err := user.UpdateProfile(name, phone); err != nil {
			return nil, err
		}
	}

	roleChanged := false
	if req.Role != nil && identity.Role(*req.Role) != user.Role {
		if err := user.AssignRole(identity.Role(*req.Role)); err != nil {
			return nil, err
		}
		roleChanged = true
	}
	if req.VendorID != nil {
		if user.Role != identity.RoleVendor {
			return nil, shared.NewDomainError("INVALID_INPUT", "Only vendor users can be linked to a vendor")
		}
		user.LinkVendor(*req.VendorID)
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	// A role change alters effective permissions; outstanding tokens
	// still carry the old set, so force re-authentication.
	if roleChanged {
		if err := s.revokeTokens(ctx, userID); err != nil {
			return nil, err
		}
	}

	response := ToUserResponse(user)
	return &response, nil
}

// SetPassword resets a user's password without the current one.
// Admin-gated at the route level.
func (s *UserService) SetPassword(ctx context.Context, userID uuid.UUID, req SetPasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
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

	return s.revokeTokens(ctx, userID)
}

// Delete soft-deletes a user and revokes their tokens
func (s *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	return s.revokeTokens(ctx, userID)
}
