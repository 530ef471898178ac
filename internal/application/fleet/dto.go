package fleet

import (
	"time"

	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/fleet"
	"github.com/Pratul75/report360/internal/domain/shared"
)

// ListFilter is the query-string filter shared by the fleet lists
type ListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	Status   string `form:"status"`
}

func (f ListFilter) toDomainFilter() shared.Filter {
	filter := shared.DefaultFilter()
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	if f.OrderBy != "" {
		filter.OrderBy = f.OrderBy
	}
	if f.OrderDir != "" {
		filter.OrderDir = f.OrderDir
	}
	filter.Search = f.Search
	if f.Status != "" {
		filter.Filters = map[string]interface{}{"status": f.Status}
	}
	return filter
}

// =============================================================================
// Vendor DTOs
// =============================================================================

// CreateVendorRequest registers a vendor
type CreateVendorRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=200"`
	ContactPerson  string `json:"contact_person" binding:"max=200"`
	Phone          string `json:"phone" binding:"max=50"`
	Email          string `json:"email" binding:"omitempty,email,max=200"`
	City           string `json:"city" binding:"max=100"`
	Category       string `json:"category" binding:"max=100"`
	Specifications string `json:"specifications"`
	Remarks        string `json:"remarks"`
}

// UpdateVendorRequest updates a vendor
type UpdateVendorRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=1,max=200"`
	ContactPerson  *string `json:"contact_person" binding:"omitempty,max=200"`
	Phone          *string `json:"phone" binding:"omitempty,max=50"`
	Email          *string `json:"email" binding:"omitempty,email,max=200"`
	City           *string `json:"city" binding:"omitempty,max=100"`
	Category       *string `json:"category" binding:"omitempty,max=100"`
	Specifications *string `json:"specifications"`
	Status         *string `json:"status" binding:"omitempty,oneof=active inactive blacklisted"`
	Remarks        *string `json:"remarks"`
}

// VendorResponse represents a vendor in API responses
type VendorResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ContactPerson  string    `json:"contact_person"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	City           string    `json:"city"`
	Category       string    `json:"category"`
	Specifications string    `json:"specifications"`
	Status         string    `json:"status"`
	Remarks        string    `json:"remarks"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// =============================================================================
// Vehicle DTOs
// =============================================================================

// CreateVehicleRequest registers a vehicle under a vendor
type CreateVehicleRequest struct {
	VendorID          uuid.UUID  `json:"vendor_id" binding:"required"`
	VehicleNumber     string     `json:"vehicle_number" binding:"required,min=1,max=50"`
	Type              string     `json:"type" binding:"max=100"`
	Capacity          string     `json:"capacity" binding:"max=100"`
	RCValidity        *time.Time `json:"rc_validity"`
	InsuranceValidity *time.Time `json:"insurance_validity"`
	PermitValidity    *time.Time `json:"permit_validity"`
	RCImage           string     `json:"rc_image"`
	InsuranceImage    string     `json:"insurance_image"`
	PermitImage       string     `json:"permit_image"`
	Remarks           string     `json:"remarks"`
}

// UpdateVehicleRequest updates a vehicle
type UpdateVehicleRequest struct {
	Type              *string    `json:"type" binding:"omitempty,max=100"`
	Capacity          *string    `json:"capacity" binding:"omitempty,max=100"`
	RCValidity        *time.Time `json:"rc_validity"`
	InsuranceValidity *time.Time `json:"insurance_validity"`
	PermitValidity    *time.Time `json:"permit_validity"`
	RCImage           *string    `json:"rc_image"`
	InsuranceImage    *string    `json:"insurance_image"`
	PermitImage       *string    `json:"permit_image"`
	Remarks           *string    `json:"remarks"`
}

// VehicleResponse represents a vehicle in API responses
type VehicleResponse struct {
	ID                uuid.UUID  `json:"id"`
	VendorID          uuid.UUID  `json:"vendor_id"`
	VehicleNumber     string     `json:"vehicle_number"`
	Type              string     `json:"type"`
	Capacity          string     `json:"capacity"`
	RCValidity        *time.Time `json:"rc_validity,omitempty"`
	InsuranceValidity *time.Time `json:"insurance_validity,omitempty"`
	PermitValidity    *time.Time `json:"permit_validity,omitempty"`
	RCImage           string     `json:"rc_image"`
	InsuranceImage    string     `json:"insurance_image"`
	PermitImage       string     `json:"permit_image"`
	ExpiringDocuments []string   `json:"expiring_documents,omitempty"`
	Remarks           string     `json:"remarks"`
	IsActive          bool       `json:"is_active"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// =============================================================================
// Driver DTOs
// =============================================================================

// CreateDriverRequest registers a driver
type CreateDriverRequest struct {
	Name            string     `json:"name" binding:"required,min=1,max=200"`
	Phone           string     `json:"phone" binding:"required,max=50"`
	Email           string     `json:"email" binding:"omitempty,email,max=200"`
	VendorID        *uuid.UUID `json:"vendor_id"`
	VehicleID       *uuid.UUID `json:"vehicle_id"`
	LicenseNumber   string     `json:"license_number" binding:"max=100"`
	LicenseValidity *time.Time `json:"license_validity"`
	LicenseImage    string     `json:"license_image"`
}

// UpdateDriverRequest updates a driver
type UpdateDriverRequest struct {
	Name            *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Phone           *string    `json:"phone" binding:"omitempty,max=50"`
	Email           *string    `json:"email" binding:"omitempty,email,max=200"`
	VendorID        *uuid.UUID `json:"vendor_id"`
	VehicleID       *uuid.UUID `json:"vehicle_id"`
	LicenseNumber   *string    `json:"license_number" binding:"omitempty,max=100"`
	LicenseValidity *time.Time `json:"license_validity"`
	LicenseImage    *string    `json:"license_image"`
}

// DeactivateDriverRequest soft-deletes a driver with a reason
type DeactivateDriverRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// DriverResponse represents a driver in API responses
type DriverResponse struct {
	ID              uuid.UUID  `json:"id"`
	VendorID        *uuid.UUID `json:"vendor_id,omitempty"`
	VehicleID       *uuid.UUID `json:"vehicle_id,omitempty"`
	Name            string     `json:"name"`
	Phone           string     `json:"phone"`
	Email           string     `json:"email"`
	LicenseNumber   string     `json:"license_number"`
	LicenseValidity *time.Time `json:"license_validity,omitempty"`
	LicenseImage    string     `json:"license_image"`
	InactiveReason  string     `json:"inactive_reason,omitempty"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// UpsertDriverProfileRequest creates or updates a driver's profile
type UpsertDriverProfileRequest struct {
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergency_contact" binding:"omitempty,max=100"`
	BloodGroup       *string `json:"blood_group" binding:"omitempty,max=10"`
	PhotoURL         *string `json:"photo_url"`
	IDProofNumber    *string `json:"id_proof_number" binding:"omitempty,max=100"`
	IDProofImage     *string `json:"id_proof_image"`
}

// DriverProfileResponse represents a driver profile in API responses
type DriverProfileResponse struct {
	ID               uuid.UUID `json:"id"`
	DriverID         uuid.UUID `json:"driver_id"`
	Address          string    `json:"address"`
	EmergencyContact string    `json:"emergency_contact"`
	BloodGroup       string    `json:"blood_group"`
	PhotoURL         string    `json:"photo_url"`
	IDProofNumber    string    `json:"id_proof_number"`
	IDProofImage     string    `json:"id_proof_image"`
	Complete         bool      `json:"complete"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// =============================================================================
// Assignment DTOs
// =============================================================================

// CreateAssignmentRequest books a driver onto a campaign
type CreateAssignmentRequest struct {
	DriverID        uuid.UUID  `json:"driver_id" binding:"required"`
	CampaignID      uuid.UUID  `json:"campaign_id" binding:"required"`
	ProjectID       *uuid.UUID `json:"project_id"`
	VehicleID       *uuid.UUID `json:"vehicle_id"`
	AssignmentDate  time.Time  `json:"assignment_date" binding:"required"`
	ExpectedStart   *time.Time `json:"expected_start"`
	ExpectedEnd     *time.Time `json:"expected_end"`
	WorkTitle       string     `json:"work_title" binding:"required,max=200"`
	WorkDescription string     `json:"work_description"`
	Village         string     `json:"village" binding:"max=200"`
	Address         string     `json:"address" binding:"max=500"`
	AssignedBy      *uuid.UUID `json:"-"` // set from JWT context
}

// RejectAssignmentRequest declines an assignment with a reason
type RejectAssignmentRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// AssignmentResponse represents an assignment in API responses
type AssignmentResponse struct {
	ID              uuid.UUID  `json:"id"`
	DriverID        uuid.UUID  `json:"driver_id"`
	CampaignID      uuid.UUID  `json:"campaign_id"`
	ProjectID       *uuid.UUID `json:"project_id,omitempty"`
	VehicleID       *uuid.UUID `json:"vehicle_id,omitempty"`
	AssignedBy      *uuid.UUID `json:"assigned_by,omitempty"`
	AssignmentDate  time.Time  `json:"assignment_date"`
	ExpectedStart   *time.Time `json:"expected_start,omitempty"`
	ExpectedEnd     *time.Time `json:"expected_end,omitempty"`
	ActualStart     *time.Time `json:"actual_start,omitempty"`
	ActualEnd       *time.Time `json:"actual_end,omitempty"`
	WorkTitle       string     `json:"work_title"`
	WorkDescription string     `json:"work_description"`
	Village         string     `json:"village"`
	Address         string     `json:"address"`
	Status          string     `json:"status"`
	ApprovalStatus  string     `json:"approval_status"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// =============================================================================
// KM log DTOs
// =============================================================================

// StartJourneyRequest opens (or reuses) the day's KM log and records
// the GPS start point.
type StartJourneyRequest struct {
	DriverID      uuid.UUID  `json:"driver_id" binding:"required"`
	VehicleID     *uuid.UUID `json:"vehicle_id"`
	LogDate       *time.Time `json:"log_date"`
	Latitude      float64    `json:"latitude" binding:"required"`
	Longitude     float64    `json:"longitude" binding:"required"`
	StartPhotoURL string     `json:"start_photo_url"`
	StartOdometer *float64   `json:"start_odometer"`
}

// EndJourneyRequest closes the KM log with the GPS end point
type EndJourneyRequest struct {
	Latitude    float64  `json:"latitude" binding:"required"`
	Longitude   float64  `json:"longitude" binding:"required"`
	EndPhotoURL string   `json:"end_photo_url"`
	EndOdometer *float64 `json:"end_odometer"`
	Remarks     string   `json:"remarks"`
}

// KMLogResponse represents a daily KM log in API responses
type KMLogResponse struct {
	ID            uuid.UUID    `json:"id"`
	DriverID      uuid.UUID    `json:"driver_id"`
	VehicleID     *uuid.UUID   `json:"vehicle_id,omitempty"`
	LogDate       time.Time    `json:"log_date"`
	StartPoint    *fleet.Point `json:"start_point,omitempty"`
	EndPoint      *fleet.Point `json:"end_point,omitempty"`
	StartTime     *time.Time   `json:"start_time,omitempty"`
	EndTime       *time.Time   `json:"end_time,omitempty"`
	StartPhotoURL string       `json:"start_photo_url"`
	EndPhotoURL   string       `json:"end_photo_url"`
	StartOdometer *float64     `json:"start_odometer,omitempty"`
	EndOdometer   *float64     `json:"end_odometer,omitempty"`
	TotalKM       *float64     `json:"total_km,omitempty"`
	Status        string       `json:"status"`
	Remarks       string       `json:"remarks"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// =============================================================================
// Activity log DTOs
// =============================================================================

// CreateActivityLogRequest files a day's activity under an assignment
type CreateActivityLogRequest struct {
	AssignmentID uuid.UUID              `json:"assignment_id" binding:"required"`
	LogDate      time.Time              `json:"log_date" binding:"required"`
	Details      string                 `json:"details"`
	Villages     []string               `json:"villages"`
	ImageURLs    []string               `json:"image_urls"`
	Latitude     *float64               `json:"latitude"`
	Longitude    *float64               `json:"longitude"`
	Extra        map[string]interface{} `json:"extra"`
	CreatedBy    *uuid.UUID             `json:"-"` // set from JWT context
}

// ActivityLogResponse represents an activity log in API responses
type ActivityLogResponse struct {
	ID           uuid.UUID              `json:"id"`
	AssignmentID uuid.UUID              `json:"assignment_id"`
	CreatedBy    *uuid.UUID             `json:"created_by,omitempty"`
	LogDate      time.Time              `json:"log_date"`
	Details      string                 `json:"details"`
	Villages     []string               `json:"villages"`
	ImageURLs    []string               `json:"image_urls"`
	Location     *fleet.Point           `json:"location,omitempty"`
	Extra        map[string]interface{} `json:"extra,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// =============================================================================
// Converters
// =============================================================================

// ToVendorResponse converts a domain vendor
func ToVendorResponse(vendor *fleet.Vendor) VendorResponse {
	return VendorResponse{
		ID:             vendor.ID,
		Name:           vendor.Name,
		ContactPerson:  vendor.ContactPerson,
		Phone:          vendor.Phone,
		Email:          vendor.Email,
		City:           vendor.City,
		Category:       vendor.Category,
		Specifications: vendor.Specifications,
		Status:         string(vendor.Status),
		Remarks:        vendor.Remarks,
		IsActive:       vendor.IsActive,
		CreatedAt:      vendor.CreatedAt,
		UpdatedAt:      vendor.UpdatedAt,
	}
}

// ToVendorResponses converts a slice of domain vendors
func ToVendorResponses(vendors []fleet.Vendor) []VendorResponse {
	responses := make([]VendorResponse, len(vendors))
	for i := range vendors {
		responses[i] = ToVendorResponse(&vendors[i])
	}
	return responses
}

// ToVehicleResponse converts a domain vehicle. Compliance warnings
// cover documents lapsing within the next 30 days.
func ToVehicleResponse(vehicle *fleet.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:                vehicle.ID,
		VendorID:          vehicle.VendorID,
		VehicleNumber:     vehicle.VehicleNumber,
		Type:              vehicle.Type,
		Capacity:          vehicle.Capacity,
		RCValidity:        vehicle.RCValidity,
		InsuranceValidity: vehicle.InsuranceValidity,
		PermitValidity:    vehicle.PermitValidity,
		RCImage:           vehicle.RCImage,
		InsuranceImage:    vehicle.InsuranceImage,
		PermitImage:       vehicle.PermitImage,
		ExpiringDocuments: vehicle.DocumentsExpiringBy(time.Now().AddDate(0, 0, 30)),
		Remarks:           vehicle.Remarks,
		IsActive:          vehicle.IsActive,
		CreatedAt:         vehicle.CreatedAt,
		UpdatedAt:         vehicle.UpdatedAt,
	}
}

// ToVehicleResponses converts a slice of domain vehicles
func ToVehicleResponses(vehicles []fleet.Vehicle) []VehicleResponse {
	responses := make([]VehicleResponse, len(vehicles))
	for i := range vehicles {
		responses[i] = ToVehicleResponse(&vehicles[i])
	}
	return responses
}

// ToDriverResponse converts a domain driver
func ToDriverResponse(driver *fleet.Driver) DriverResponse {
	return DriverResponse{
		ID:              driver.ID,
		VendorID:        driver.VendorID,
		VehicleID:       driver.VehicleID,
		Name:            driver.Name,
		Phone:           driver.Phone,
		Email:           driver.Email,
		LicenseNumber:   driver.LicenseNumber,
		LicenseValidity: driver.LicenseValidity,
		LicenseImage:    driver.LicenseImage,
		InactiveReason:  driver.InactiveReason,
		IsActive:        driver.IsActive,
		CreatedAt:       driver.CreatedAt,
		UpdatedAt:       driver.UpdatedAt,
	}
}

// ToDriverResponses converts a slice of domain drivers
func ToDriverResponses(drivers []fleet.Driver) []DriverResponse {
	responses := make([]DriverResponse, len(drivers))
	for i := range drivers {
		responses[i] = ToDriverResponse(&drivers[i])
	}
	return responses
}

// ToDriverProfileResponse converts a domain driver profile
func ToDriverProfileResponse(profile *fleet.DriverProfile) DriverProfileResponse {
	return DriverProfileResponse{
		ID:               profile.ID,
		DriverID:         profile.DriverID,
		Address:          profile.Address,
		EmergencyContact: profile.EmergencyContact,
		BloodGroup:       profile.BloodGroup,
		PhotoURL:         profile.PhotoURL,
		IDProofNumber:    profile.IDProofNumber,
		IDProofImage:     profile.IDProofImage,
		Complete:         profile.IsComplete(),
		CreatedAt:        profile.CreatedAt,
		UpdatedAt:        profile.UpdatedAt,
	}
}

// ToAssignmentResponse converts a domain assignment
func ToAssignmentResponse(assignment *fleet.DriverAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:              assignment.ID,
		DriverID:        assignment.DriverID,
		CampaignID:      assignment.CampaignID,
		ProjectID:       assignment.ProjectID,
		VehicleID:       assignment.VehicleID,
		AssignedBy:      assignment.AssignedBy,
		AssignmentDate:  assignment.AssignmentDate,
		ExpectedStart:   assignment.ExpectedStart,
		ExpectedEnd:     assignment.ExpectedEnd,
		ActualStart:     assignment.ActualStart,
		ActualEnd:       assignment.ActualEnd,
		WorkTitle:       assignment.WorkTitle,
		WorkDescription: assignment.WorkDescription,
		Village:         assignment.Village,
		Address:         assignment.Address,
		Status:          string(assignment.Status),
		ApprovalStatus:  string(assignment.ApprovalStatus),
		ApprovedAt:      assignment.ApprovedAt,
		RejectedAt:      assignment.RejectedAt,
		RejectionReason: assignment.RejectionReason,
		IsActive:        assignment.IsActive,
		CreatedAt:       assignment.CreatedAt,
		UpdatedAt:       assignment.UpdatedAt,
	}
}

// ToAssignmentResponses converts a slice of domain assignments
func ToAssignmentResponses(assignments []fleet.DriverAssignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = ToAssignmentResponse(&assignments[i])
	}
	return responses
}

// ToKMLogResponse converts a domain KM log
func ToKMLogResponse(log *fleet.DailyKMLog) KMLogResponse {
	return KMLogResponse{
		ID:            log.ID,
		DriverID:      log.DriverID,
		VehicleID:     log.VehicleID,
		LogDate:       log.LogDate,
		StartPoint:    log.StartPoint,
		EndPoint:      log.EndPoint,
		StartTime:     log.StartTime,
		EndTime:       log.EndTime,
		StartPhotoURL: log.StartPhotoURL,
		EndPhotoURL:   log.EndPhotoURL,
		StartOdometer: log.StartOdometer,
		EndOdometer:   log.EndOdometer,
		TotalKM:       log.TotalKM,
		Status:        string(log.Status),
		Remarks:       log.Remarks,
		CreatedAt:     log.CreatedAt,
		UpdatedAt:     log.UpdatedAt,
	}
}

// ToKMLogResponses converts a slice of domain KM logs
func ToKMLogResponses(logs []fleet.DailyKMLog) []KMLogResponse {
	responses := make([]KMLogResponse, len(logs))
	for i := range logs {
		responses[i] = ToKMLogResponse(&logs[i])
	}
	return responses
}

// ToActivityLogResponse converts a domain activity log
func ToActivityLogResponse(log *fleet.DailyActivityLog) ActivityLogResponse {
	return ActivityLogResponse{
		ID:           log.ID,
		AssignmentID: log.AssignmentID,
		CreatedBy:    log.CreatedBy,
		LogDate:      log.LogDate,
		Details:      log.Details,
		Villages:     log.Villages,
		ImageURLs:    log.ImageURLs,
		Location:     log.Location,
		Extra:        log.Extra,
		CreatedAt:    log.CreatedAt,
		UpdatedAt:    log.UpdatedAt,
	}
}

// ToActivityLogResponses converts a slice of domain activity logs
func ToActivityLogResponses(logs []fleet.DailyActivityLog) []ActivityLogResponse {
	responses := make([]ActivityLogResponse, len(logs))
	for i := range logs {
		responses[i] = ToActivityLogResponse(&logs[i])
	}
	return responses
}
