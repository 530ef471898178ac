package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/fleet"
)

// VendorModel is the persistence model for the Vendor domain entity.
type VendorModel struct {
	BaseModel
	Name           string             `gorm:"type:varchar(200);not null;index"`
	ContactPerson  string             `gorm:"type:varchar(200)"`
	Phone          string             `gorm:"type:varchar(50)"`
	Email          string             `gorm:"type:varchar(200)"`
	City           string             `gorm:"type:varchar(100);index"`
	Category       string             `gorm:"type:varchar(100)"`
	Specifications string             `gorm:"type:text"`
	Status         fleet.VendorStatus `gorm:"type:varchar(20);not null;default:'active';index"`
	Remarks        string             `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (VendorModel) TableName() string {
	return "vendors"
}

// ToDomain converts the persistence model to a domain Vendor entity.
func (m *VendorModel) ToDomain() *fleet.Vendor {
	return &fleet.Vendor{
		BaseEntity:     m.BaseModel.ToDomain(),
		Name:           m.Name,
		ContactPerson:  m.ContactPerson,
		Phone:          m.Phone,
		Email:          m.Email,
		City:           m.City,
		Category:       m.Category,
		Specifications: m.Specifications,
		Status:         m.Status,
		Remarks:        m.Remarks,
	}
}

// FromDomain populates the persistence model from a domain Vendor entity.
func (m *VendorModel) FromDomain(v *fleet.Vendor) {
	m.FromDomainBaseEntity(v.BaseEntity)
	m.Name = v.Name
	m.ContactPerson = v.ContactPerson
	m.Phone = v.Phone
	m.Email = v.Email
	m.City = v.City
	m.Category = v.Category
	m.Specifications = v.Specifications
	m.Status = v.Status
	m.Remarks = v.Remarks
}

// VendorModelFromDomain creates a new persistence model from a domain Vendor entity.
func VendorModelFromDomain(v *fleet.Vendor) *VendorModel {
	m := &VendorModel{}
	m.FromDomain(v)
	return m
}

// VehicleModel is the persistence model for the Vehicle domain entity.
type VehicleModel struct {
	BaseModel
	VendorID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	VehicleNumber     string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	Type              string     `gorm:"type:varchar(100)"`
	Capacity          string     `gorm:"type:varchar(100)"`
	RCValidity        *time.Time `gorm:"type:date"`
	InsuranceValidity *time.Time `gorm:"type:date"`
	PermitValidity    *time.Time `gorm:"type:date"`
	RCImage           string     `gorm:"type:text"`
	InsuranceImage    string     `gorm:"type:text"`
	PermitImage       string     `gorm:"type:text"`
	Remarks           string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (VehicleModel) TableName() string {
	return "vehicles"
}

// ToDomain converts the persistence model to a domain Vehicle entity.
func (m *VehicleModel) ToDomain() *fleet.Vehicle {
	return &fleet.Vehicle{
		BaseEntity:        m.BaseModel.ToDomain(),
		VendorID:          m.VendorID,
		VehicleNumber:     m.VehicleNumber,
		Type:              m.Type,
		Capacity:          m.Capacity,
		RCValidity:        m.RCValidity,
		InsuranceValidity: m.InsuranceValidity,
		PermitValidity:    m.PermitValidity,
		RCImage:           m.RCImage,
		InsuranceImage:    m.InsuranceImage,
		PermitImage:       m.PermitImage,
		Remarks:           m.Remarks,
	}
}

// FromDomain populates the persistence model from a domain Vehicle entity.
func (m *VehicleModel) FromDomain(v *fleet.Vehicle) {
	m.FromDomainBaseEntity(v.BaseEntity)
	m.VendorID = v.VendorID
	m.VehicleNumber = v.VehicleNumber
	m.Type = v.Type
	m.Capacity = v.Capacity
	m.RCValidity = v.RCValidity
	m.InsuranceValidity = v.InsuranceValidity
	m.PermitValidity = v.PermitValidity
	m.RCImage = v.RCImage
	m.InsuranceImage = v.InsuranceImage
	m.PermitImage = v.PermitImage
	m.Remarks = v.Remarks
}

// VehicleModelFromDomain creates a new persistence model from a domain Vehicle entity.
func VehicleModelFromDomain(v *fleet.Vehicle) *VehicleModel {
	m := &VehicleModel{}
	m.FromDomain(v)
	return m
}

// DriverModel is the persistence model for the Driver domain entity.
type DriverModel struct {
	BaseModel
	VendorID        *uuid.UUID `gorm:"type:uuid;index"`
	VehicleID       *uuid.UUID `gorm:"type:uuid;index"`
	Name            string     `gorm:"type:varchar(200);not null"`
	Phone           string     `gorm:"type:varchar(50);not null"`
	Email           string     `gorm:"type:varchar(200)"`
	LicenseNumber   string     `gorm:"type:varchar(100)"`
	LicenseValidity *time.Time `gorm:"type:date"`
	LicenseImage    string     `gorm:"type:text"`
	InactiveReason  string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (DriverModel) TableName() string {
	return "drivers"
}

// ToDomain converts the persistence model to a domain Driver entity.
func (m *DriverModel) ToDomain() *fleet.Driver {
	return &fleet.Driver{
		BaseEntity:      m.BaseModel.ToDomain(),
		VendorID:        m.VendorID,
		VehicleID:       m.VehicleID,
		Name:            m.Name,
		Phone:           m.Phone,
		Email:           m.Email,
		LicenseNumber:   m.LicenseNumber,
		LicenseValidity: m.LicenseValidity,
		LicenseImage:    m.LicenseImage,
		InactiveReason:  m.InactiveReason,
	}
}

// FromDomain populates the persistence model from a domain Driver entity.
func (m *DriverModel) FromDomain(d *fleet.Driver) {
	m.FromDomainBaseEntity(d.BaseEntity)
	m.VendorID = d.VendorID
	m.VehicleID = d.VehicleID
	m.Name = d.Name
	m.Phone = d.Phone
	m.Email = d.Email
	m.LicenseNumber = d.LicenseNumber
	m.LicenseValidity = d.LicenseValidity
	m.LicenseImage = d.LicenseImage
	m.InactiveReason = d.InactiveReason
}

// DriverModelFromDomain creates a new persistence model from a domain Driver entity.
func DriverModelFromDomain(d *fleet.Driver) *DriverModel {
	m := &DriverModel{}
	m.FromDomain(d)
	return m
}

// DriverProfileModel is the persistence model for the DriverProfile domain entity.
type DriverProfileModel struct {
	BaseModel
	DriverID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Address          string    `gorm:"type:text"`
	EmergencyContact string    `gorm:"type:varchar(100)"`
	BloodGroup       string    `gorm:"type:varchar(10)"`
	PhotoURL         string    `gorm:"type:text"`
	IDProofNumber    string    `gorm:"type:varchar(100)"`
	IDProofImage     string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (DriverProfileModel) TableName() string {
	return "driver_profiles"
}

// ToDomain converts the persistence model to a domain DriverProfile entity.
func (m *DriverProfileModel) ToDomain() *fleet.DriverProfile {
	return &fleet.DriverProfile{
		BaseEntity:       m.BaseModel.ToDomain(),
		DriverID:         m.DriverID,
		Address:          m.Address,
		EmergencyContact: m.EmergencyContact,
		BloodGroup:       m.BloodGroup,
		PhotoURL:         m.PhotoURL,
		IDProofNumber:    m.IDProofNumber,
		IDProofImage:     m.IDProofImage,
	}
}

// FromDomain populates the persistence model from a domain DriverProfile entity.
func (m *DriverProfileModel) FromDomain(p *fleet.DriverProfile) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.DriverID = p.DriverID
	m.Address = p.Address
	m.EmergencyContact = p.EmergencyContact
	m.BloodGroup = p.BloodGroup
	m.PhotoURL = p.PhotoURL
	m.IDProofNumber = p.IDProofNumber
	m.IDProofImage = p.IDProofImage
}

// DriverProfileModelFromDomain creates a new persistence model from a domain DriverProfile entity.
func DriverProfileModelFromDomain(p *fleet.DriverProfile) *DriverProfileModel {
	m := &DriverProfileModel{}
	m.FromDomain(p)
	return m
}

// DriverAssignmentModel is the persistence model for the DriverAssignment domain entity.
type DriverAssignmentModel struct {
	BaseModel
	DriverID        uuid.UUID              `gorm:"type:uuid;not null;index"`
	CampaignID      uuid.UUID              `gorm:"type:uuid;not null;index"`
	ProjectID       *uuid.UUID             `gorm:"type:uuid;index"`
	VehicleID       *uuid.UUID             `gorm:"type:uuid"`
	AssignedBy      *uuid.UUID             `gorm:"type:uuid"`
	AssignmentDate  time.Time              `gorm:"type:date;not null;index"`
	ExpectedStart   *time.Time             ``
	ExpectedEnd     *time.Time             ``
	ActualStart     *time.Time             ``
	ActualEnd       *time.Time             ``
	WorkTitle       string                 `gorm:"type:varchar(200)"`
	WorkDescription string                 `gorm:"type:text"`
	Village         string                 `gorm:"type:varchar(200)"`
	Address         string                 `gorm:"type:text"`
	Status          fleet.AssignmentStatus `gorm:"type:varchar(20);not null;default:'ASSIGNED';index"`
	ApprovalStatus  fleet.ApprovalStatus   `gorm:"type:varchar(20);not null;default:'PENDING_APPROVAL';index"`
	ApprovedAt      *time.Time             ``
	RejectedAt      *time.Time             ``
	RejectionReason string                 `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (DriverAssignmentModel) TableName() string {
	return "driver_assignments"
}

// ToDomain converts the persistence model to a domain DriverAssignment entity.
func (m *DriverAssignmentModel) ToDomain() *fleet.DriverAssignment {
	return &fleet.DriverAssignment{
		BaseEntity:      m.BaseModel.ToDomain(),
		DriverID:        m.DriverID,
		CampaignID:      m.CampaignID,
		ProjectID:       m.ProjectID,
		VehicleID:       m.VehicleID,
		AssignedBy:      m.AssignedBy,
		AssignmentDate:  m.AssignmentDate,
		ExpectedStart:   m.ExpectedStart,
		ExpectedEnd:     m.ExpectedEnd,
		ActualStart:     m.ActualStart,
		ActualEnd:       m.ActualEnd,
		WorkTitle:       m.WorkTitle,
		WorkDescription: m.WorkDescription,
		Village:         m.Village,
		Address:         m.Address,
		Status:          m.Status,
		ApprovalStatus:  m.ApprovalStatus,
		ApprovedAt:      m.ApprovedAt,
		RejectedAt:      m.RejectedAt,
		RejectionReason: m.RejectionReason,
	}
}

// FromDomain populates the persistence model from a domain DriverAssignment entity.
func (m *DriverAssignmentModel) FromDomain(a *fleet.DriverAssignment) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.DriverID = a.DriverID
	m.CampaignID = a.CampaignID
	m.ProjectID = a.ProjectID
	m.VehicleID = a.VehicleID
	m.AssignedBy = a.AssignedBy
	m.AssignmentDate = a.AssignmentDate
	m.ExpectedStart = a.ExpectedStart
	m.ExpectedEnd = a.ExpectedEnd
	m.ActualStart = a.ActualStart
	m.ActualEnd = a.ActualEnd
	m.WorkTitle = a.WorkTitle
	m.WorkDescription = a.WorkDescription
	m.Village = a.Village
	m.Address = a.Address
	m.Status = a.Status
	m.ApprovalStatus = a.ApprovalStatus
	m.ApprovedAt = a.ApprovedAt
	m.RejectedAt = a.RejectedAt
	m.RejectionReason = a.RejectionReason
}

// DriverAssignmentModelFromDomain creates a new persistence model from a domain DriverAssignment entity.
func DriverAssignmentModelFromDomain(a *fleet.DriverAssignment) *DriverAssignmentModel {
	m := &DriverAssignmentModel{}
	m.FromDomain(a)
	return m
}

// DailyKMLogModel is the persistence model for the DailyKMLog domain
// entity. GPS points are flattened into latitude/longitude columns.
type DailyKMLogModel struct {
	BaseModel
	DriverID      uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_km_log_driver_date,priority:1"`
	VehicleID     *uuid.UUID        `gorm:"type:uuid"`
	LogDate       time.Time         `gorm:"type:date;not null;uniqueIndex:idx_km_log_driver_date,priority:2"`
	StartLat      *float64          ``
	StartLng      *float64          ``
	EndLat        *float64          ``
	EndLng        *float64          ``
	StartTime     *time.Time        ``
	EndTime       *time.Time        ``
	StartPhotoURL string            `gorm:"type:text"`
	EndPhotoURL   string            `gorm:"type:text"`
	StartOdometer *float64          ``
	EndOdometer   *float64          ``
	TotalKM       *float64          ``
	Status        fleet.KMLogStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Remarks       string            `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (DailyKMLogModel) TableName() string {
	return "daily_km_logs"
}

// ToDomain converts the persistence model to a domain DailyKMLog entity.
func (m *DailyKMLogModel) ToDomain() *fleet.DailyKMLog {
	log := &fleet.DailyKMLog{
		BaseEntity:    m.BaseModel.ToDomain(),
		DriverID:      m.DriverID,
		VehicleID:     m.VehicleID,
		LogDate:       m.LogDate,
		StartTime:     m.StartTime,
		EndTime:       m.EndTime,
		StartPhotoURL: m.StartPhotoURL,
		EndPhotoURL:   m.EndPhotoURL,
		StartOdometer: m.StartOdometer,
		EndOdometer:   m.EndOdometer,
		TotalKM:       m.TotalKM,
		Status:        m.Status,
		Remarks:       m.Remarks,
	}
	if m.StartLat != nil && m.StartLng != nil {
		log.StartPoint = &fleet.Point{Latitude: *m.StartLat, Longitude: *m.StartLng}
	}
	if m.EndLat != nil && m.EndLng != nil {
		log.EndPoint = &fleet.Point{Latitude: *m.EndLat, Longitude: *m.EndLng}
	}
	return log
}

// FromDomain populates the persistence model from a domain DailyKMLog entity.
func (m *DailyKMLogModel) FromDomain(l *fleet.DailyKMLog) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.DriverID = l.DriverID
	m.VehicleID = l.VehicleID
	m.LogDate = l.LogDate
	m.StartTime = l.StartTime
	m.EndTime = l.EndTime
	m.StartPhotoURL = l.StartPhotoURL
	m.EndPhotoURL = l.EndPhotoURL
	m.StartOdometer = l.StartOdometer
	m.EndOdometer = l.EndOdometer
	m.TotalKM = l.TotalKM
	m.Status = l.Status
	m.Remarks = l.Remarks
	m.StartLat, m.StartLng = nil, nil
	if l.StartPoint != nil {
		lat, lng := l.StartPoint.Latitude, l.StartPoint.Longitude
		m.StartLat, m.StartLng = &lat, &lng
	}
	m.EndLat, m.EndLng = nil, nil
	if l.EndPoint != nil {
		lat, lng := l.EndPoint.Latitude, l.EndPoint.Longitude
		m.EndLat, m.EndLng = &lat, &lng
	}
}

// DailyKMLogModelFromDomain creates a new persistence model from a domain DailyKMLog entity.
func DailyKMLogModelFromDomain(l *fleet.DailyKMLog) *DailyKMLogModel {
	m := &DailyKMLogModel{}
	m.FromDomain(l)
	return m
}

// DailyActivityLogModel is the persistence model for the
// DailyActivityLog domain entity. List and map fields are stored as
// JSON text.
type DailyActivityLogModel struct {
	BaseModel
	AssignmentID uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedBy    *uuid.UUID `gorm:"type:uuid"`
	LogDate      time.Time  `gorm:"type:date;not null;index"`
	Details      string     `gorm:"type:text"`
	Villages     string     `gorm:"type:jsonb"`
	ImageURLs    string     `gorm:"type:jsonb"`
	Lat          *float64   ``
	Lng          *float64   ``
	Extra        string     `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (DailyActivityLogModel) TableName() string {
	return "daily_activity_logs"
}

// ToDomain converts the persistence model to a domain DailyActivityLog entity.
func (m *DailyActivityLogModel) ToDomain() *fleet.DailyActivityLog {
	log := &fleet.DailyActivityLog{
		BaseEntity:   m.BaseModel.ToDomain(),
		AssignmentID: m.AssignmentID,
		CreatedBy:    m.CreatedBy,
		LogDate:      m.LogDate,
		Details:      m.Details,
	}
	if m.Villages != "" {
		_ = json.Unmarshal([]byte(m.Villages), &log.Villages)
	}
	if m.ImageURLs != "" {
		_ = json.Unmarshal([]byte(m.ImageURLs), &log.ImageURLs)
	}
	if m.Extra != "" {
		_ = json.Unmarshal([]byte(m.Extra), &log.Extra)
	}
	if m.Lat != nil && m.Lng != nil {
		log.Location = &fleet.Point{Latitude: *m.Lat, Longitude: *m.Lng}
	}
	return log
}

// FromDomain populates the persistence model from a domain DailyActivityLog entity.
func (m *DailyActivityLogModel) FromDomain(l *fleet.DailyActivityLog) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.AssignmentID = l.AssignmentID
	m.CreatedBy = l.CreatedBy
	m.LogDate = l.LogDate
	m.Details = l.Details
	m.Villages = marshalJSONString(l.Villages)
	m.ImageURLs = marshalJSONString(l.ImageURLs)
	m.Extra = ""
	if len(l.Extra) > 0 {
		if data, err := json.Marshal(l.Extra); err == nil {
			m.Extra = string(data)
		}
	}
	m.Lat, m.Lng = nil, nil
	if l.Location != nil {
		lat, lng := l.Location.Latitude, l.Location.Longitude
		m.Lat, m.Lng = &lat, &lng
	}
}

func marshalJSONString(values []string) string {
	if len(values) == 0 {
		return ""
	}
	data, err := json.Marshal(values)
	if err != nil {
		return ""
	}
	return string(data)
}

// DailyActivityLogModelFromDomain creates a new persistence model from a domain DailyActivityLog entity.
func DailyActivityLogModelFromDomain(l *fleet.DailyActivityLog) *DailyActivityLogModel {
	m := &DailyActivityLogModel{}
	m.FromDomain(l)
	return m
}
