package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntityCounts is a read model of the active row counts the admin
// dashboard shows at the top.
type EntityCounts struct {
	Clients   int64 `json:"clients"`
	Projects  int64 `json:"projects"`
	Campaigns int64 `json:"campaigns"`
	Vendors   int64 `json:"vendors"`
	Vehicles  int64 `json:"vehicles"`
	Drivers   int64 `json:"drivers"`
	Promoters int64 `json:"promoters"`
	Users     int64 `json:"users"`
}

// StatusCount is one slice of a status breakdown
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// CampaignSpend aggregates expense spend against a campaign's budget
type CampaignSpend struct {
	CampaignID    uuid.UUID       `json:"campaign_id"`
	CampaignName  string          `json:"campaign_name"`
	Status        string          `json:"status"`
	Budget        decimal.Decimal `json:"budget"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	ExpenseCount  int64           `json:"expense_count"`
	EndDate       *time.Time      `json:"end_date,omitempty"`
}

// DailyExpensePoint is one day of expense spend for trend charts
type DailyExpensePoint struct {
	Date  time.Time       `json:"date"`
	Total decimal.Decimal `json:"total"`
	Count int64           `json:"count"`
}

// ExpenseSample is one expense row fed into anomaly detection
type ExpenseSample struct {
	ExpenseID   uuid.UUID       `json:"expense_id"`
	CampaignID  uuid.UUID       `json:"campaign_id"`
	ExpenseType string          `json:"expense_type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}

// CampaignActivity aggregates the field output recorded on a campaign
type CampaignActivity struct {
	CampaignID     uuid.UUID `json:"campaign_id"`
	Reports        int64     `json:"reports"`
	KMTravelled    float64   `json:"km_travelled"`
	Activities     int64     `json:"activities"`
	PeopleAttended int64     `json:"people_attended"`
	Assignments    int64     `json:"assignments"`
}

// DriverUtilization summarizes one driver's workload for the period
type DriverUtilization struct {
	DriverID     uuid.UUID `json:"driver_id"`
	DriverName   string    `json:"driver_name"`
	Assignments  int64     `json:"assignments"`
	Completed    int64     `json:"completed"`
	TotalKM      float64   `json:"total_km"`
	DaysWithLogs int64     `json:"days_with_logs"`
}

// VehicleUtilization summarizes one vehicle's bookings for the period
type VehicleUtilization struct {
	VehicleID     uuid.UUID `json:"vehicle_id"`
	VehicleNumber string    `json:"vehicle_number"`
	Assignments   int64     `json:"assignments"`
	Completed     int64     `json:"completed"`
}

// VendorPerformance summarizes a vendor's billing relationship
type VendorPerformance struct {
	VendorID      uuid.UUID       `json:"vendor_id"`
	VendorName    string          `json:"vendor_name"`
	Invoices      int64           `json:"invoices"`
	PaidInvoices  int64           `json:"paid_invoices"`
	InvoiceAmount decimal.Decimal `json:"invoice_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	Vehicles      int64           `json:"vehicles"`
	Drivers       int64           `json:"drivers"`
}

// Filter bounds an analytics query. Nil fields leave the dimension
// unconstrained.
type Filter struct {
	CampaignID *uuid.UUID `json:"campaign_id,omitempty"`
	VendorID   *uuid.UUID `json:"vendor_id,omitempty"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	TopN       int        `json:"top_n,omitempty"`
}

// Repository runs the aggregation queries behind the dashboards and
// the insights service. Implementations only see active rows.
type Repository interface {
	EntityCounts(ctx context.Context) (*EntityCounts, error)
	CampaignStatusCounts(ctx context.Context) ([]StatusCount, error)
	ExpenseStatusCounts(ctx context.Context) ([]StatusCount, error)
	InvoiceStatusCounts(ctx context.Context) ([]StatusCount, error)
	AssignmentStatusCounts(ctx context.Context) ([]StatusCount, error)
	CampaignSpend(ctx context.Context, filter Filter) ([]CampaignSpend, error)
	DailyExpenseSeries(ctx context.Context, filter Filter) ([]DailyExpensePoint, error)
	ExpenseSamples(ctx context.Context, filter Filter) ([]ExpenseSample, error)
	CampaignActivity(ctx context.Context, campaignID uuid.UUID) (*CampaignActivity, error)
	DriverUtilization(ctx context.Context, filter Filter) ([]DriverUtilization, error)
	VehicleUtilization(ctx context.Context, filter Filter) ([]VehicleUtilization, error)
	VendorPerformance(ctx context.Context, filter Filter) ([]VendorPerformance, error)
}
