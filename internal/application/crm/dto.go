package crm

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Pratul75/report360/internal/domain/crm"
	"github.com/Pratul75/report360/internal/domain/shared"
)

// =============================================================================
// Client DTOs
// =============================================================================

// CreateClientRequest creates a client
type CreateClientRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=200"`
	Company       string `json:"company" binding:"max=200"`
	Email         string `json:"email" binding:"omitempty,email,max=200"`
	Phone         string `json:"phone" binding:"max=50"`
	Address       string `json:"address" binding:"max=500"`
	ContactPerson string `json:"contact_person" binding:"max=200"`
}

// UpdateClientRequest updates a client
type UpdateClientRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=200"`
	Company       *string `json:"company" binding:"omitempty,max=200"`
	Email         *string `json:"email" binding:"omitempty,email,max=200"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	Address       *string `json:"address" binding:"omitempty,max=500"`
	ContactPerson *string `json:"contact_person" binding:"omitempty,max=200"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Company       string    `json:"company"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	ContactPerson string    `json:"contact_person"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DeletionPreviewResponse reports what a client cascade would touch
type DeletionPreviewResponse struct {
	ClientID uuid.UUID         `json:"client_id"`
	Counts   crm.CascadeCounts `json:"counts"`
	Total    int64             `json:"total"`
}

// ListFilter is the query-string filter shared by the CRM lists
type ListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	Status   string `form:"status"`
}

// =============================================================================
// Project DTOs
// =============================================================================

// CreateProjectRequest creates a project under a client
type CreateProjectRequest struct {
	ClientID    uuid.UUID        `json:"client_id" binding:"required"`
	Name        string           `json:"name" binding:"required,min=1,max=200"`
	Description string           `json:"description"`
	Budget      *decimal.Decimal `json:"budget"`
	StartDate   *time.Time       `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
	AssignedCS  *uuid.UUID       `json:"assigned_cs"`
}

// UpdateProjectRequest updates a project
type UpdateProjectRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Budget      *decimal.Decimal `json:"budget"`
	StartDate   *time.Time       `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
	Status      *string          `json:"status"`
	AssignedCS  *uuid.UUID       `json:"assigned_cs"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID          uuid.UUID       `json:"id"`
	ClientID    uuid.UUID       `json:"client_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Budget      decimal.Decimal `json:"budget"`
	StartDate   *time.Time      `json:"start_date,omitempty"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	Status      string          `json:"status"`
	AssignedCS  *uuid.UUID      `json:"assigned_cs,omitempty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// =============================================================================
// Campaign DTOs
// =============================================================================

// CreateCampaignRequest creates a campaign under a project
type CreateCampaignRequest struct {
	ProjectID uuid.UUID        `json:"project_id" binding:"required"`
	Name      string           `json:"name" binding:"required,min=1,max=200"`
	Type      string           `json:"type" binding:"required"`
	Budget    *decimal.Decimal `json:"budget"`
	StartDate *time.Time       `json:"start_date"`
	EndDate   *time.Time       `json:"end_date"`
	Locations string           `json:"locations"`
}

// UpdateCampaignRequest updates a campaign
type UpdateCampaignRequest struct {
	Name      *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Budget    *decimal.Decimal `json:"budget"`
	StartDate *time.Time       `json:"start_date"`
	EndDate   *time.Time       `json:"end_date"`
	Locations *string          `json:"locations"`
}

// ChangeCampaignStatusRequest moves a campaign along its lifecycle
type ChangeCampaignStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CampaignResponse represents a campaign in API responses
type CampaignResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProjectID uuid.UUID       `json:"project_id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Status    string          `json:"status"`
	Budget    decimal.Decimal `json:"budget"`
	StartDate *time.Time      `json:"start_date,omitempty"`
	EndDate   *time.Time      `json:"end_date,omitempty"`
	Locations string          `json:"locations"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// =============================================================================
// Report DTOs
// =============================================================================

// CreateReportRequest files a daily field report
type CreateReportRequest struct {
	CampaignID       uuid.UUID `json:"campaign_id" binding:"required"`
	ReportDate       time.Time `json:"report_date" binding:"required"`
	LocationsCovered string    `json:"locations_covered"`
	KMTravelled      *float64  `json:"km_travelled"`
	PhotosURL        string    `json:"photos_url"`
	GPSData          string    `json:"gps_data"`
	Notes            string    `json:"notes"`
}

// UpdateReportRequest updates a field report
type UpdateReportRequest struct {
	LocationsCovered *string  `json:"locations_covered"`
	KMTravelled      *float64 `json:"km_travelled"`
	PhotosURL        *string  `json:"photos_url"`
	GPSData          *string  `json:"gps_data"`
	Notes            *string  `json:"notes"`
}

// ReportResponse represents a field report in API responses
type ReportResponse struct {
	ID               uuid.UUID `json:"id"`
	CampaignID       uuid.UUID `json:"campaign_id"`
	ReportDate       time.Time `json:"report_date"`
	LocationsCovered string    `json:"locations_covered"`
	KMTravelled      float64   `json:"km_travelled"`
	PhotosURL        string    `json:"photos_url"`
	GPSData          string    `json:"gps_data"`
	Notes            string    `json:"notes"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// =============================================================================
// Promoter DTOs
// =============================================================================

// CreatePromoterRequest registers a field promoter
type CreatePromoterRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=200"`
	Phone     string `json:"phone" binding:"max=50"`
	Email     string `json:"email" binding:"omitempty,email,max=200"`
	Specialty string `json:"specialty" binding:"max=200"`
	Language  string `json:"language" binding:"max=100"`
}

// UpdatePromoterRequest updates a promoter
type UpdatePromoterRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=200"`
	Phone     *string `json:"phone" binding:"omitempty,max=50"`
	Email     *string `json:"email" binding:"omitempty,email,max=200"`
	Specialty *string `json:"specialty" binding:"omitempty,max=200"`
	Language  *string `json:"language" binding:"omitempty,max=100"`
}

// PromoterResponse represents a promoter in API responses
type PromoterResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Specialty string    `json:"specialty"`
	Language  string    `json:"language"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePromoterActivityRequest records a day of promoter work
type CreatePromoterActivityRequest struct {
	PromoterID     uuid.UUID  `json:"promoter_id" binding:"required"`
	CampaignID     uuid.UUID  `json:"campaign_id" binding:"required"`
	Village        string     `json:"village" binding:"max=200"`
	ActivityDate   time.Time  `json:"activity_date" binding:"required"`
	PeopleAttended *int       `json:"people_attended"`
	ActivityCount  *int       `json:"activity_count"`
	BeforeImages   string     `json:"before_images"`
	DuringImages   string     `json:"during_images"`
	AfterImages    string     `json:"after_images"`
	Remarks        string     `json:"remarks"`
	CreatedBy      *uuid.UUID `json:"-"` // set from JWT context
}

// UpdatePromoterActivityRequest updates an activity entry
type UpdatePromoterActivityRequest struct {
	Village        *string `json:"village" binding:"omitempty,max=200"`
	PeopleAttended *int    `json:"people_attended"`
	ActivityCount  *int    `json:"activity_count"`
	BeforeImages   *string `json:"before_images"`
	DuringImages   *string `json:"during_images"`
	AfterImages    *string `json:"after_images"`
	Remarks        *string `json:"remarks"`
}

// PromoterActivityResponse represents an activity entry in API responses
type PromoterActivityResponse struct {
	ID             uuid.UUID  `json:"id"`
	PromoterID     uuid.UUID  `json:"promoter_id"`
	PromoterName   string     `json:"promoter_name"`
	CampaignID     uuid.UUID  `json:"campaign_id"`
	Village        string     `json:"village"`
	ActivityDate   time.Time  `json:"activity_date"`
	PeopleAttended int        `json:"people_attended"`
	ActivityCount  int        `json:"activity_count"`
	BeforeImages   string     `json:"before_images"`
	DuringImages   string     `json:"during_images"`
	AfterImages    string     `json:"after_images"`
	Remarks        string     `json:"remarks"`
	CreatedBy      *uuid.UUID `json:"created_by,omitempty"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// =============================================================================
// Converters
// =============================================================================

// ToClientResponse converts a domain client
func ToClientResponse(client *crm.Client) ClientResponse {
	return ClientResponse{
		ID:            client.ID,
		Name:          client.Name,
		Company:       client.Company,
		Email:         client.Email,
		Phone:         client.Phone,
		Address:       client.Address,
		ContactPerson: client.ContactPerson,
		IsActive:      client.IsActive,
		CreatedAt:     client.CreatedAt,
		UpdatedAt:     client.UpdatedAt,
	}
}

// ToClientResponses converts a slice of domain clients
func ToClientResponses(clients []crm.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses
}

// ToProjectResponse converts a domain project
func ToProjectResponse(project *crm.Project) ProjectResponse {
	return ProjectResponse{
		ID:          project.ID,
		ClientID:    project.ClientID,
		Name:        project.Name,
		Description: project.Description,
		Budget:      project.Budget,
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
		Status:      string(project.Status),
		AssignedCS:  project.AssignedCS,
		IsActive:    project.IsActive,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

// ToProjectResponses converts a slice of domain projects
func ToProjectResponses(projects []crm.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = ToProjectResponse(&projects[i])
	}
	return responses
}

// ToCampaignResponse converts a domain campaign
func ToCampaignResponse(campaign *crm.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:        campaign.ID,
		ProjectID: campaign.ProjectID,
		Name:      campaign.Name,
		Type:      string(campaign.Type),
		Status:    string(campaign.Status),
		Budget:    campaign.Budget,
		StartDate: campaign.StartDate,
		EndDate:   campaign.EndDate,
		Locations: campaign.Locations,
		IsActive:  campaign.IsActive,
		CreatedAt: campaign.CreatedAt,
		UpdatedAt: campaign.UpdatedAt,
	}
}

// ToCampaignResponses converts a slice of domain campaigns
func ToCampaignResponses(campaigns []crm.Campaign) []CampaignResponse {
	responses := make([]CampaignResponse, len(campaigns))
	for i := range campaigns {
		responses[i] = ToCampaignResponse(&campaigns[i])
	}
	return responses
}

// ToReportResponse converts a domain report
func ToReportResponse(report *crm.Report) ReportResponse {
	return ReportResponse{
		ID:               report.ID,
		CampaignID:       report.CampaignID,
		ReportDate:       report.ReportDate,
		LocationsCovered: report.LocationsCovered,
		KMTravelled:      report.KMTravelled,
		PhotosURL:        report.PhotosURL,
		GPSData:          report.GPSData,
		Notes:            report.Notes,
		IsActive:         report.IsActive,
		CreatedAt:        report.CreatedAt,
		UpdatedAt:        report.UpdatedAt,
	}
}

// ToReportResponses converts a slice of domain reports
func ToReportResponses(reports []crm.Report) []ReportResponse {
	responses := make([]ReportResponse, len(reports))
	for i := range reports {
		responses[i] = ToReportResponse(&reports[i])
	}
	return responses
}

// ToPromoterResponse converts a domain promoter
func ToPromoterResponse(promoter *crm.Promoter) PromoterResponse {
	return PromoterResponse{
		ID:        promoter.ID,
		Name:      promoter.Name,
		Phone:     promoter.Phone,
		Email:     promoter.Email,
		Specialty: promoter.Specialty,
		Language:  promoter.Language,
		IsActive:  promoter.IsActive,
		CreatedAt: promoter.CreatedAt,
		UpdatedAt: promoter.UpdatedAt,
	}
}

// ToPromoterResponses converts a slice of domain promoters
func ToPromoterResponses(promoters []crm.Promoter) []PromoterResponse {
	responses := make([]PromoterResponse, len(promoters))
	for i := range promoters {
		responses[i] = ToPromoterResponse(&promoters[i])
	}
	return responses
}

// ToPromoterActivityResponse converts a domain activity entry
func ToPromoterActivityResponse(activity *crm.PromoterActivity) PromoterActivityResponse {
	return PromoterActivityResponse{
		ID:             activity.ID,
		PromoterID:     activity.PromoterID,
		PromoterName:   activity.PromoterName,
		CampaignID:     activity.CampaignID,
		Village:        activity.Village,
		ActivityDate:   activity.ActivityDate,
		PeopleAttended: activity.PeopleAttended,
		ActivityCount:  activity.ActivityCount,
		BeforeImages:   activity.BeforeImages,
		DuringImages:   activity.DuringImages,
		AfterImages:    activity.AfterImages,
		Remarks:        activity.Remarks,
		CreatedBy:      activity.CreatedBy,
		IsActive:       activity.IsActive,
		CreatedAt:      activity.CreatedAt,
		UpdatedAt:      activity.UpdatedAt,
	}
}

// ToPromoterActivityResponses converts a slice of activity entries
func ToPromoterActivityResponses(activities []crm.PromoterActivity) []PromoterActivityResponse {
	responses := make([]PromoterActivityResponse, len(activities))
	for i := range activities {
		responses[i] = ToPromoterActivityResponse(&activities[i])
	}
	return responses
}

// toDomainFilter converts a ListFilter to the shared repository filter
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
