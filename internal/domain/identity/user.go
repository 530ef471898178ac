package identity

import (
	"strings"

	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/google/uuid"
)

// Role is the business role assigned to a user. Exactly one role per user.
type Role string

const (
	RoleAdmin             Role = "admin"
	RoleSales             Role = "sales"
	RolePurchase          Role = "purchase"
	RoleClientServicing   Role = "client_servicing"
	RoleOperationsManager Role = "operations_manager"
	RoleOperator          Role = "operator"
	RoleDriver            Role = "driver"
	RolePromoter          Role = "promoter"
	RoleAnchor            Role = "anchor"
	RoleVendor            Role = "vendor"
	RoleVehicleManager    Role = "vehicle_manager"
	RoleGodownManager     Role = "godown_manager"
	RoleAccounts          Role = "accounts"
	RoleClient            Role = "client"
)

// AllRoles lists every recognized role
var AllRoles = []Role{
	RoleAdmin, RoleSales, RolePurchase, RoleClientServicing,
	RoleOperationsManager, RoleOperator, RoleDriver, RolePromoter,
	RoleAnchor, RoleVendor, RoleVehicleManager, RoleGodownManager,
	RoleAccounts, RoleClient,
}

// IsValid reports whether the role is one of the recognized roles
func (r Role) IsValid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User represents an authenticated actor in the system
type User struct {
	shared.BaseEntity
	Email        string
	Name         string
	Phone        string
	PasswordHash string
	PasswordHint string
	Role         Role
	VendorID     *uuid.UUID
}

// NewUser creates a new user after validating its fields.
// The password hash must already be computed by the caller.
func NewUser(email, name, passwordHash string, role Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_INPUT", "A valid email is required")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Name is required")
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Password hash is required")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown role: "+string(role))
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         role,
	}, nil
}

// UpdateProfile changes the user's display name and phone
func (u *User) UpdateProfile(name, phone string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Name is required")
	}
	u.Name = name
	u.Phone = strings.TrimSpace(phone)
	u.Touch()
	return nil
}

// ChangePassword replaces the stored password hash
func (u *User) ChangePassword(newHash string) error {
	if newHash == "" {
		return shared.NewDomainError("INVALID_INPUT", "Password hash is required")
	}
	u.PasswordHash = newHash
	u.Touch()
	return nil
}

// AssignRole changes the user's role
func (u *User) AssignRole(role Role) error {
	if !role.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Unknown role: "+string(role))
	}
	u.Role = role
	u.Touch()
	return nil
}

// LinkVendor attaches the user to a vendor organization.
// Only users with the vendor role carry a vendor link.
func (u *User) LinkVendor(vendorID uuid.UUID) {
	u.VendorID = &vendorID
	u.Touch()
}
