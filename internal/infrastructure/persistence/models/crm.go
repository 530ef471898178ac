package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Pratul75/report360/internal/domain/crm"
)

// ClientModel is the persistence model for the Client domain entity.
type ClientModel struct {
	BaseModel
	Name          string `gorm:"type:varchar(200);not null;index"`
	Company       string `gorm:"type:varchar(200)"`
	Email         string `gorm:"type:varchar(200);index"`
	Phone         string `gorm:"type:varchar(50)"`
	Address       string `gorm:"type:text"`
	ContactPerson string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client entity.
func (m *ClientModel) ToDomain() *crm.Client {
	return &crm.Client{
		BaseEntity:    m.BaseModel.ToDomain(),
		Name:          m.Name,
		Company:       m.Company,
		Email:         m.Email,
		Phone:         m.Phone,
		Address:       m.Address,
		ContactPerson: m.ContactPerson,
	}
}

// FromDomain populates the persistence model from a domain Client entity.
func (m *ClientModel) FromDomain(c *crm.Client) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Company = c.Company
	m.Email = c.Email
	m.Phone = c.Phone
	m.Address = c.Address
	m.ContactPerson = c.ContactPerson
}

// ClientModelFromDomain creates a new persistence model from a domain Client entity.
func ClientModelFromDomain(c *crm.Client) *ClientModel {
	m := &ClientModel{}
	m.FromDomain(c)
	return m
}

// ProjectModel is the persistence model for the Project domain entity.
type ProjectModel struct {
	BaseModel
	ClientID    uuid.UUID         `gorm:"type:uuid;not null;index"`
	Name        string            `gorm:"type:varchar(200);not null"`
	Description string            `gorm:"type:text"`
	Budget      decimal.Decimal   `gorm:"type:decimal(18,2);not null;default:0"`
	StartDate   *time.Time        `gorm:"type:date"`
	EndDate     *time.Time        `gorm:"type:date"`
	Status      crm.ProjectStatus `gorm:"type:varchar(20);not null;default:'planning';index"`
	AssignedCS  *uuid.UUID        `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts the persistence model to a domain Project entity.
func (m *ProjectModel) ToDomain() *crm.Project {
	return &crm.Project{
		BaseEntity:  m.BaseModel.ToDomain(),
		ClientID:    m.ClientID,
		Name:        m.Name,
		Description: m.Description,
		Budget:      m.Budget,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Status:      m.Status,
		AssignedCS:  m.AssignedCS,
	}
}

// FromDomain populates the persistence model from a domain Project entity.
func (m *ProjectModel) FromDomain(p *crm.Project) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.ClientID = p.ClientID
	m.Name = p.Name
	m.Description = p.Description
	m.Budget = p.Budget
	m.StartDate = p.StartDate
	m.EndDate = p.EndDate
	m.Status = p.Status
	m.AssignedCS = p.AssignedCS
}

// ProjectModelFromDomain creates a new persistence model from a domain Project entity.
func ProjectModelFromDomain(p *crm.Project) *ProjectModel {
	m := &ProjectModel{}
	m.FromDomain(p)
	return m
}

// CampaignModel is the persistence model for the Campaign domain entity.
type CampaignModel struct {
	BaseModel
	ProjectID uuid.UUID          `gorm:"type:uuid;not null;index"`
	Name      string             `gorm:"type:varchar(200);not null"`
	Type      crm.CampaignType   `gorm:"type:varchar(20);not null;default:'other'"`
	Status    crm.CampaignStatus `gorm:"type:varchar(20);not null;default:'planning';index"`
	Budget    decimal.Decimal    `gorm:"type:decimal(18,2);not null;default:0"`
	StartDate *time.Time         `gorm:"type:date"`
	EndDate   *time.Time         `gorm:"type:date"`
	Locations string             `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CampaignModel) TableName() string {
	return "campaigns"
}

// ToDomain converts the persistence model to a domain Campaign entity.
func (m *CampaignModel) ToDomain() *crm.Campaign {
	return &crm.Campaign{
		BaseEntity: m.BaseModel.ToDomain(),
		ProjectID:  m.ProjectID,
		Name:       m.Name,
		Type:       m.Type,
		Status:     m.Status,
		Budget:     m.Budget,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		Locations:  m.Locations,
	}
}

// FromDomain populates the persistence model from a domain Campaign entity.
func (m *CampaignModel) FromDomain(c *crm.Campaign) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.ProjectID = c.ProjectID
	m.Name = c.Name
	m.Type = c.Type
	m.Status = c.Status
	m.Budget = c.Budget
	m.StartDate = c.StartDate
	m.EndDate = c.EndDate
	m.Locations = c.Locations
}

// CampaignModelFromDomain creates a new persistence model from a domain Campaign entity.
func CampaignModelFromDomain(c *crm.Campaign) *CampaignModel {
	m := &CampaignModel{}
	m.FromDomain(c)
	return m
}

// ReportModel is the persistence model for the Report domain entity.
type ReportModel struct {
	BaseModel
	CampaignID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ReportDate       time.Time `gorm:"type:date;not null;index"`
	LocationsCovered string    `gorm:"type:text"`
	KMTravelled      float64   `gorm:"not null;default:0"`
	PhotosURL        string    `gorm:"type:text"`
	GPSData          string    `gorm:"type:text"`
	Notes            string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ReportModel) TableName() string {
	return "reports"
}

// ToDomain converts the persistence model to a domain Report entity.
func (m *ReportModel) ToDomain() *crm.Report {
	return &crm.Report{
		BaseEntity:       m.BaseModel.ToDomain(),
		CampaignID:       m.CampaignID,
		ReportDate:       m.ReportDate,
		LocationsCovered: m.LocationsCovered,
		KMTravelled:      m.KMTravelled,
		PhotosURL:        m.PhotosURL,
		GPSData:          m.GPSData,
		Notes:            m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Report entity.
func (m *ReportModel) FromDomain(r *crm.Report) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.CampaignID = r.CampaignID
	m.ReportDate = r.ReportDate
	m.LocationsCovered = r.LocationsCovered
	m.KMTravelled = r.KMTravelled
	m.PhotosURL = r.PhotosURL
	m.GPSData = r.GPSData
	m.Notes = r.Notes
}

// ReportModelFromDomain creates a new persistence model from a domain Report entity.
func ReportModelFromDomain(r *crm.Report) *ReportModel {
	m := &ReportModel{}
	m.FromDomain(r)
	return m
}

// PromoterModel is the persistence model for the Promoter domain entity.
type PromoterModel struct {
	BaseModel
	Name      string `gorm:"type:varchar(200);not null"`
	Phone     string `gorm:"type:varchar(50)"`
	Email     string `gorm:"type:varchar(200)"`
	Specialty string `gorm:"type:varchar(200)"`
	Language  string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (PromoterModel) TableName() string {
	return "promoters"
}

// ToDomain converts the persistence model to a domain Promoter entity.
func (m *PromoterModel) ToDomain() *crm.Promoter {
	return &crm.Promoter{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Phone:      m.Phone,
		Email:      m.Email,
		Specialty:  m.Specialty,
		Language:   m.Language,
	}
}

// FromDomain populates the persistence model from a domain Promoter entity.
func (m *PromoterModel) FromDomain(p *crm.Promoter) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Phone = p.Phone
	m.Email = p.Email
	m.Specialty = p.Specialty
	m.Language = p.Language
}

// PromoterModelFromDomain creates a new persistence model from a domain Promoter entity.
func PromoterModelFromDomain(p *crm.Promoter) *PromoterModel {
	m := &PromoterModel{}
	m.FromDomain(p)
	return m
}

// PromoterActivityModel is the persistence model for the PromoterActivity domain entity.
type PromoterActivityModel struct {
	BaseModel
	PromoterID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	PromoterName   string     `gorm:"type:varchar(200)"`
	CampaignID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Village        string     `gorm:"type:varchar(200)"`
	ActivityDate   time.Time  `gorm:"type:date;not null;index"`
	PeopleAttended int        `gorm:"not null;default:0"`
	ActivityCount  int        `gorm:"not null;default:0"`
	BeforeImages   string     `gorm:"type:text"`
	DuringImages   string     `gorm:"type:text"`
	AfterImages    string     `gorm:"type:text"`
	Remarks        string     `gorm:"type:text"`
	CreatedBy      *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (PromoterActivityModel) TableName() string {
	return "promoter_activities"
}

// ToDomain converts the persistence model to a domain PromoterActivity entity.
func (m *PromoterActivityModel) ToDomain() *crm.PromoterActivity {
	return &crm.PromoterActivity{
		BaseEntity:     m.BaseModel.ToDomain(),
		PromoterID:     m.PromoterID,
		PromoterName:   m.PromoterName,
		CampaignID:     m.CampaignID,
		Village:        m.Village,
		ActivityDate:   m.ActivityDate,
		PeopleAttended: m.PeopleAttended,
		ActivityCount:  m.ActivityCount,
		BeforeImages:   m.BeforeImages,
		DuringImages:   m.DuringImages,
		AfterImages:    m.AfterImages,
		Remarks:        m.Remarks,
		CreatedBy:      m.CreatedBy,
	}
}

// FromDomain populates the persistence model from a domain PromoterActivity entity.
func (m *PromoterActivityModel) FromDomain(a *crm.PromoterActivity) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.PromoterID = a.PromoterID
	m.PromoterName = a.PromoterName
	m.CampaignID = a.CampaignID
	m.Village = a.Village
	m.ActivityDate = a.ActivityDate
	m.PeopleAttended = a.PeopleAttended
	m.ActivityCount = a.ActivityCount
	m.BeforeImages = a.BeforeImages
	m.DuringImages = a.DuringImages
	m.AfterImages = a.AfterImages
	m.Remarks = a.Remarks
	m.CreatedBy = a.CreatedBy
}

// PromoterActivityModelFromDomain creates a new persistence model from a domain PromoterActivity entity.
func PromoterActivityModelFromDomain(a *crm.PromoterActivity) *PromoterActivityModel {
	m := &PromoterActivityModel{}
	m.FromDomain(a)
	return m
}
