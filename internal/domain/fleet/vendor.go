package fleet

import (
	"strings"

	"github.com/Pratul75/report360/internal/domain/shared"
)

// VendorStatus tracks whether a vendor is cleared for bookings
type VendorStatus string

const (
	VendorStatusActive      VendorStatus = "active"
	VendorStatusInactive    VendorStatus = "inactive"
	VendorStatusBlacklisted VendorStatus = "blacklisted"
)

// IsValid reports whether the status is recognized
func (s VendorStatus) IsValid() bool {
	switch s {
	case VendorStatusActive, VendorStatusInactive, VendorStatusBlacklisted:
		return true
	}
	return false
}

// Vendor supplies vehicles and drivers for campaigns and bills the
// agency through invoices.
type Vendor struct {
	shared.BaseEntity
	Name           string
	ContactPerson  string
	Phone          string
	Email          string
	City           string
	Category       string
	Specifications string
	Status         VendorStatus
	Remarks        string
}

// NewVendor creates an active vendor
func NewVendor(name, city, category string) (*Vendor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Vendor name is required")
	}
	return &Vendor{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		City:       strings.TrimSpace(city),
		Category:   strings.TrimSpace(category),
		Status:     VendorStatusActive,
	}, nil
}

// ChangeStatus updates the vendor's booking status
func (v *Vendor) ChangeStatus(status VendorStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Unknown vendor status: "+string(status))
	}
	v.Status = status
	v.Touch()
	return nil
}
