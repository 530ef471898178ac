package insights

import (
	"time"

	"github.com/google/uuid"
)

// CampaignRow is one pre-aggregated campaign fed into the engine. The
// API server builds these from its spend aggregation; amounts arrive
// as plain floats since the engine only does statistics on them.
type CampaignRow struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Status        string     `json:"status"`
	Budget        float64    `json:"budget"`
	TotalExpenses float64    `json:"total_expenses"`
	EndDate       *time.Time `json:"end_date,omitempty"`
}

// ExpenseRow is one expense sample for anomaly detection
type ExpenseRow struct {
	ID          uuid.UUID `json:"id"`
	ExpenseType string    `json:"expense_type"`
	Amount      float64   `json:"amount"`
}

// UtilizationRow is one vehicle's or driver's assignment tally
type UtilizationRow struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	TotalAssignments  int64     `json:"total_assignments"`
	ActiveAssignments int64     `json:"active_assignments"`
}

// VendorRow is one vendor's booking and billing tally
type VendorRow struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	TotalBookings     int64     `json:"total_bookings"`
	CompletedBookings int64     `json:"completed_bookings"`
	CostEfficiency    float64   `json:"cost_efficiency"`
}

// ExpectedRange brackets the normal band for an expense type
type ExpectedRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// CampaignInsight scores one campaign and carries its advisories
type CampaignInsight struct {
	CampaignID        uuid.UUID `json:"campaign_id"`
	CampaignName      string    `json:"campaign_name"`
	PerformanceScore  float64   `json:"performance_score"`
	BudgetUtilization float64   `json:"budget_utilization"`
	ROIEstimate       float64   `json:"roi_estimate"`
	Trend             string    `json:"trend"`
	Alerts            []string  `json:"alerts"`
	Recommendations   []string  `json:"recommendations"`
}

// ExpenseAnomaly flags one expense that sits outside its type's band
type ExpenseAnomaly struct {
	ExpenseID     uuid.UUID     `json:"expense_id"`
	ExpenseType   string        `json:"expense_type"`
	Amount        float64       `json:"amount"`
	ExpectedRange ExpectedRange `json:"expected_range"`
	AnomalyScore  float64       `json:"anomaly_score"`
	Reason        string        `json:"reason"`
}

// UtilizationInsight rates one vehicle's or driver's workload
type UtilizationInsight struct {
	EntityType         string    `json:"entity_type"`
	EntityID           uuid.UUID `json:"entity_id"`
	EntityName         string    `json:"entity_name"`
	UtilizationRate    float64   `json:"utilization_rate"`
	IdleTimePercentage float64   `json:"idle_time_percentage"`
	Recommendations    []string  `json:"recommendations"`
}

// VendorInsight rates one vendor's reliability and pricing
type VendorInsight struct {
	VendorID         uuid.UUID `json:"vendor_id"`
	VendorName       string    `json:"vendor_name"`
	ReliabilityScore float64   `json:"reliability_score"`
	CostEfficiency   float64   `json:"cost_efficiency"`
	Recommendations  []string  `json:"recommendations"`
}

// DashboardSummary is the headline block of the composite report
type DashboardSummary struct {
	TotalCampaigns      int     `json:"total_campaigns"`
	ActiveCampaigns     int     `json:"active_campaigns"`
	AvgPerformanceScore float64 `json:"avg_performance_score"`
	HighPriorityAlerts  int     `json:"high_priority_alerts"`
	AnomalousExpenses   int     `json:"anomalous_expenses"`
}

// DashboardReport is the composite analysis over every row set
type DashboardReport struct {
	Summary            DashboardSummary     `json:"summary"`
	CampaignInsights   []CampaignInsight    `json:"campaign_insights"`
	ExpenseAnomalies   []ExpenseAnomaly     `json:"expense_anomalies"`
	VehicleUtilization []UtilizationInsight `json:"vehicle_utilization"`
	DriverUtilization  []UtilizationInsight `json:"driver_utilization"`
	VendorPerformance  []VendorInsight      `json:"vendor_performance"`
	TopRecommendations []string             `json:"top_recommendations"`
	CriticalAlerts     []string             `json:"critical_alerts"`
}
