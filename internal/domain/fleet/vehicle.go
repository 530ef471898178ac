package fleet

import (
	"strings"
	"time"

	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/google/uuid"
)

// Vehicle is a vendor-supplied vehicle used on campaigns. Document
// validity dates drive the compliance warnings on the dashboards.
type Vehicle struct {
	shared.BaseEntity
	VendorID         uuid.UUID
	VehicleNumber    string
	Type             string
	Capacity         string
	RCValidity       *time.Time
	InsuranceValidity *time.Time
	PermitValidity   *time.Time
	RCImage          string
	InsuranceImage   string
	PermitImage      string
	Remarks          string
}

// NewVehicle creates a vehicle with a normalized registration number
func NewVehicle(vendorID uuid.UUID, vehicleNumber, vehicleType string) (*Vehicle, error) {
	vehicleNumber = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(vehicleNumber), " ", ""))
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Vehicle requires a vendor")
	}
	if vehicleNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Vehicle number is required")
	}
	return &Vehicle{
		BaseEntity:    shared.NewBaseEntity(),
		VendorID:      vendorID,
		VehicleNumber: vehicleNumber,
		Type:          strings.TrimSpace(vehicleType),
	}, nil
}

// DocumentsExpiringBy lists which documents lapse on or before the
// given date. Documents with no recorded validity are skipped.
func (v *Vehicle) DocumentsExpiringBy(date time.Time) []string {
	var expiring []string
	if v.RCValidity != nil && !v.RCValidity.After(date) {
		expiring = append(expiring, "rc")
	}
	if v.InsuranceValidity != nil && !v.InsuranceValidity.After(date) {
		expiring = append(expiring, "insurance")
	}
	if v.PermitValidity != nil && !v.PermitValidity.After(date) {
		expiring = append(expiring, "permit")
	}
	return expiring
}
