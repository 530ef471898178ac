package dashboard

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Pratul75/report360/internal/application/finance"
	"github.com/Pratul75/report360/internal/application/fleet"
	"github.com/Pratul75/report360/internal/domain/analytics"
)

// AdminDashboardResponse is the operations overview shown to admins
// and back-office roles.
type AdminDashboardResponse struct {
	Counts              analytics.EntityCounts        `json:"counts"`
	CampaignsByStatus   []analytics.StatusCount       `json:"campaigns_by_status"`
	ExpensesByStatus    []analytics.StatusCount       `json:"expenses_by_status"`
	InvoicesByStatus    []analytics.StatusCount       `json:"invoices_by_status"`
	AssignmentsByStatus []analytics.StatusCount       `json:"assignments_by_status"`
	TopCampaignSpend    []analytics.CampaignSpend     `json:"top_campaign_spend"`
	ExpenseTrend        []analytics.DailyExpensePoint `json:"expense_trend"`
	GeneratedAt         time.Time                     `json:"generated_at"`
}

// VendorDashboardSummary rolls up a vendor's relationship numbers
type VendorDashboardSummary struct {
	Vehicles        int64           `json:"vehicles"`
	Drivers         int64           `json:"drivers"`
	Invoices        int64           `json:"invoices"`
	PendingPayments int64           `json:"pending_payments"`
	PaidRevenue     decimal.Decimal `json:"paid_revenue"`
	PendingAmount   decimal.Decimal `json:"pending_amount"`
}

// VendorDashboardResponse is the self-service view for vendor users
type VendorDashboardResponse struct {
	VendorID uuid.UUID                 `json:"vendor_id"`
	Summary  VendorDashboardSummary    `json:"summary"`
	Vehicles []fleet.VehicleResponse   `json:"vehicles"`
	Drivers  []fleet.DriverResponse    `json:"drivers"`
	Invoices []finance.InvoiceResponse `json:"invoices"`
	Payments []finance.PaymentResponse `json:"payments"`
}

// ClientServicingQuery bounds the client-servicing dashboard
type ClientServicingQuery struct {
	ClientID  *uuid.UUID `form:"client_id"`
	StartDate *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"end_date" time_format:"2006-01-02"`
}

// ProjectProgress buckets the projects a servicing user tracks
type ProjectProgress struct {
	StartingToday int `json:"starting_today"`
	Completed     int `json:"completed"`
	Pending       int `json:"pending"`
	Upcoming      int `json:"upcoming"`
}

// ProjectSnapshot is one recent project row on the servicing dashboard
type ProjectSnapshot struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Status    string     `json:"status"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// ClientServicingDashboardResponse tracks project delivery and the
// day's spend for the servicing team.
type ClientServicingDashboardResponse struct {
	Progress       ProjectProgress               `json:"progress"`
	RecentProjects []ProjectSnapshot             `json:"recent_projects"`
	ExpenseTrend   []analytics.DailyExpensePoint `json:"expense_trend"`
}

// DriverDashboardSummary rolls up one driver's workload
type DriverDashboardSummary struct {
	Assignments     int64   `json:"assignments"`
	PendingApproval int64   `json:"pending_approval"`
	InProgress      int64   `json:"in_progress"`
	Completed       int64   `json:"completed"`
	TotalKM         float64 `json:"total_km"`
	DaysWithLogs    int64   `json:"days_with_logs"`
	ProfileComplete bool    `json:"profile_complete"`
}

// DriverDashboardResponse is the mobile home screen for driver users
type DriverDashboardResponse struct {
	Driver      fleet.DriverResponse         `json:"driver"`
	Profile     *fleet.DriverProfileResponse `json:"profile,omitempty"`
	TodayKMLog  *fleet.KMLogResponse         `json:"today_km_log,omitempty"`
	Assignments []fleet.AssignmentResponse   `json:"assignments"`
	Summary     DriverDashboardSummary       `json:"summary"`
}
