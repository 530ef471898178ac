package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/identity"
)

// LoginRequest carries credentials for token issuance
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token for rotation
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse is returned from login and refresh
type TokenResponse struct {
	AccessToken           string       `json:"access_token"`
	RefreshToken          string       `json:"refresh_token"`
	TokenType             string       `json:"token_type"`
	AccessTokenExpiresAt  time.Time    `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time    `json:"refresh_token_expires_at"`
	User                  UserResponse `json:"user"`
}

// ChangePasswordRequest updates the caller's own password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// SetPasswordRequest lets an admin reset another user's password
type SetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// CreateUserRequest creates a user account
type CreateUserRequest struct {
	Email    string     `json:"email" binding:"required,email,max=200"`
	Name     string     `json:"name" binding:"required,min=1,max=200"`
	Phone    string     `json:"phone" binding:"max=50"`
	Password string     `json:"password" binding:"required,min=8"`
	Role     string     `json:"role" binding:"required,role"`
	VendorID *uuid.UUID `json:"vendor_id"`
}

// UpdateUserRequest updates a user account
type UpdateUserRequest struct {
	Name     *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Phone    *string    `json:"phone" binding:"omitempty,max=50"`
	Role     *string    `json:"role" binding:"omitempty,role"`
	VendorID *uuid.UUID `json:"vendor_id"`
}

// UserListFilter filters the user list
type UserListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	Role     string `form:"role"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Role      string     `json:"role"`
	VendorID  *uuid.UUID `json:"vendor_id,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// MeResponse is the authenticated profile with resolved permissions
// and the menu sections the frontend should render.
type MeResponse struct {
	User        UserResponse `json:"user"`
	Permissions []string     `json:"permissions"`
	Menus       []string     `json:"menus"`
}

// RoleGrantsResponse lists the effective permissions for a role
type RoleGrantsResponse struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	// Overridden reports whether the set comes from the role_grants
	// table rather than the built-in matrix.
	Overridden bool `json:"overridden"`
}

// ReplaceRoleGrantsRequest installs a permission override for a role.
// An empty list removes the override and restores the built-in set.
type ReplaceRoleGrantsRequest struct {
	Permissions []string `json:"permissions"`
}

// ToUserResponse converts a domain user to a response DTO
func ToUserResponse(user *identity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Phone:     user.Phone,
		Role:      string(user.Role),
		VendorID:  user.VendorID,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUserResponses converts a slice of domain users
func ToUserResponses(users []identity.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}
