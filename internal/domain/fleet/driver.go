package fleet

import (
	"strings"
	"time"

	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/google/uuid"
)

// Driver is a vendor-supplied driver assignable to campaigns
type Driver struct {
	shared.BaseEntity
	VendorID        *uuid.UUID
	VehicleID       *uuid.UUID
	Name            string
	Phone           string
	Email           string
	LicenseNumber   string
	LicenseValidity *time.Time
	LicenseImage    string
	InactiveReason  string
}

// NewDriver creates a driver after validating the required fields
func NewDriver(name, phone string) (*Driver, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Driver name is required")
	}
	if phone == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Driver phone is required")
	}
	return &Driver{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Phone:      phone,
	}, nil
}

// AssignVehicle links the driver to their usual vehicle
func (d *Driver) AssignVehicle(vehicleID uuid.UUID) {
	d.VehicleID = &vehicleID
	d.Touch()
}

// DeactivateWithReason soft-deletes the driver and records why
func (d *Driver) DeactivateWithReason(reason string) {
	d.InactiveReason = strings.TrimSpace(reason)
	d.Deactivate()
}

// DriverProfile carries the extended onboarding details for a driver.
// One profile per driver.
type DriverProfile struct {
	shared.BaseEntity
	DriverID         uuid.UUID
	Address          string
	EmergencyContact string
	BloodGroup       string
	PhotoURL         string
	IDProofNumber    string
	IDProofImage     string
}

// NewDriverProfile creates a profile for a driver
func NewDriverProfile(driverID uuid.UUID) (*DriverProfile, error) {
	if driverID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Profile requires a driver")
	}
	return &DriverProfile{
		BaseEntity: shared.NewBaseEntity(),
		DriverID:   driverID,
	}, nil
}

// IsComplete reports whether all onboarding fields are filled in
func (p *DriverProfile) IsComplete() bool {
	return p.Address != "" && p.EmergencyContact != "" &&
		p.PhotoURL != "" && p.IDProofNumber != ""
}
