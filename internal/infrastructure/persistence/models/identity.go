package models

import (
	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	Email        string        `gorm:"type:varchar(200);not null;uniqueIndex"`
	Name         string        `gorm:"type:varchar(200);not null"`
	Phone        string        `gorm:"type:varchar(50)"`
	PasswordHash string        `gorm:"type:varchar(255);not null"`
	PasswordHint string        `gorm:"type:varchar(200)"`
	Role         identity.Role `gorm:"type:varchar(50);not null;index"`
	VendorID     *uuid.UUID    `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Email:        m.Email,
		Name:         m.Name,
		Phone:        m.Phone,
		PasswordHash: m.PasswordHash,
		PasswordHint: m.PasswordHint,
		Role:         m.Role,
		VendorID:     m.VendorID,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Email = u.Email
	m.Name = u.Name
	m.Phone = u.Phone
	m.PasswordHash = u.PasswordHash
	m.PasswordHint = u.PasswordHint
	m.Role = u.Role
	m.VendorID = u.VendorID
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}

// RoleGrantModel stores one database-backed permission grant for a
// role. A role with rows here overrides the built-in matrix entirely.
type RoleGrantModel struct {
	ID         uuid.UUID     `gorm:"type:uuid;primary_key"`
	Role       identity.Role `gorm:"type:varchar(50);not null;uniqueIndex:idx_role_grant,priority:1"`
	Permission string        `gorm:"type:varchar(100);not null;uniqueIndex:idx_role_grant,priority:2"`
}

// TableName returns the table name for GORM
func (RoleGrantModel) TableName() string {
	return "role_grants"
}
