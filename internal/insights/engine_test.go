package insights

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(NewRuleRecommender())
}

func TestAnalyzeCampaigns_ScoresBudgetDiscipline(t *testing.T) {
	engine := newTestEngine()

	campaigns := []CampaignRow{
		{ID: uuid.New(), Name: "Monsoon Roadshow", Status: "running", Budget: 100000, TotalExpenses: 80000},
		{ID: uuid.New(), Name: "Harvest Launch", Status: "completed", Budget: 100000, TotalExpenses: 98000},
		{ID: uuid.New(), Name: "Overrun", Status: "running", Budget: 50000, TotalExpenses: 60000},
	}

	insights := engine.AnalyzeCampaigns(context.Background(), campaigns)
	require.Len(t, insights, 3)

	// 50 base + 30 for the 70-95% band + 15 running
	assert.Equal(t, 95.0, insights[0].PerformanceScore)
	assert.Equal(t, 80.0, insights[0].BudgetUtilization)
	assert.Equal(t, 20.0, insights[0].ROIEstimate)
	assert.Equal(t, "improving", insights[0].Trend)
	assert.Empty(t, insights[0].Alerts)

	// 50 base + 15 for the 95-100% band + 20 completed
	assert.Equal(t, 85.0, insights[1].PerformanceScore)
	assert.Equal(t, "stable", insights[1].Trend)
	require.NotEmpty(t, insights[1].Alerts)
	assert.Contains(t, insights[1].Alerts[0], "WARNING")

	// over budget: 50 base + 5 + 15 running, and a critical alert
	assert.Equal(t, 70.0, insights[2].PerformanceScore)
	assert.Equal(t, 120.0, insights[2].BudgetUtilization)
	require.NotEmpty(t, insights[2].Alerts)
	assert.Contains(t, insights[2].Alerts[0], "CRITICAL")
}

func TestAnalyzeCampaigns_ZeroSpendHasNoROI(t *testing.T) {
	engine := newTestEngine()

	insights := engine.AnalyzeCampaigns(context.Background(), []CampaignRow{
		{ID: uuid.New(), Name: "Not Started", Status: "planning", Budget: 25000, TotalExpenses: 0},
	})

	require.Len(t, insights, 1)
	assert.Equal(t, 0.0, insights[0].ROIEstimate)
	assert.Equal(t, "declining", insights[0].Trend)
	// 50 base + 5 for the default band + 10 planning
	assert.Equal(t, 65.0, insights[0].PerformanceScore)
}

func TestAnalyzeCampaigns_EndDateAlerts(t *testing.T) {
	engine := newTestEngine()

	soon := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-48 * time.Hour)

	insights := engine.AnalyzeCampaigns(context.Background(), []CampaignRow{
		{ID: uuid.New(), Name: "Ending", Status: "running", Budget: 10000, TotalExpenses: 5000, EndDate: &soon},
		{ID: uuid.New(), Name: "Overdue", Status: "running", Budget: 10000, TotalExpenses: 5000, EndDate: &past},
	})

	require.Len(t, insights, 2)
	assert.Contains(t, insights[0].Alerts, "Campaign ending within 3 days")
	assert.Contains(t, insights[1].Alerts, "Campaign end date has passed")
}

func TestDetectExpenseAnomalies_FlagsOutlier(t *testing.T) {
	engine := newTestEngine()

	outlierID := uuid.New()
	expenses := []ExpenseRow{
		{ID: uuid.New(), ExpenseType: "fuel", Amount: 1000},
		{ID: uuid.New(), ExpenseType: "fuel", Amount: 1050},
		{ID: uuid.New(), ExpenseType: "fuel", Amount: 980},
		{ID: uuid.New(), ExpenseType: "fuel", Amount: 1020},
		{ID: uuid.New(), ExpenseType: "fuel", Amount: 1010},
		{ID: uuid.New(), ExpenseType: "fuel", Amount: 990},
		{ID: uuid.New(), ExpenseType: "fuel", Amount: 1030},
		{ID: outlierID, ExpenseType: "fuel", Amount: 9500},
	}

	anomalies := engine.DetectExpenseAnomalies(expenses)
	require.Len(t, anomalies, 1)
	assert.Equal(t, outlierID, anomalies[0].ExpenseID)
	assert.Equal(t, "fuel", anomalies[0].ExpenseType)
	assert.Greater(t, anomalies[0].AnomalyScore, 2.5)
	assert.Equal(t, "Significantly higher than average", anomalies[0].Reason)
	assert.Less(t, anomalies[0].ExpectedRange.Min, anomalies[0].ExpectedRange.Average)
	assert.Greater(t, anomalies[0].ExpectedRange.Max, anomalies[0].ExpectedRange.Average)
}

func TestDetectExpenseAnomalies_SkipsSmallGroups(t *testing.T) {
	engine := newTestEngine()

	anomalies := engine.DetectExpenseAnomalies([]ExpenseRow{
		{ID: uuid.New(), ExpenseType: "toll", Amount: 100},
		{ID: uuid.New(), ExpenseType: "toll", Amount: 90000},
	})
	assert.Empty(t, anomalies)
}

func TestDetectExpenseAnomalies_IgnoresNonPositiveAmounts(t *testing.T) {
	engine := newTestEngine()

	anomalies := engine.DetectExpenseAnomalies([]ExpenseRow{
		{ID: uuid.New(), ExpenseType: "fuel", Amount: 0},
		{ID: uuid.New(), ExpenseType: "fuel", Amount: -50},
		{ID: uuid.New(), ExpenseType: "fuel", Amount: 100},
	})
	assert.Empty(t, anomalies)
}

func TestAnalyzeUtilization_Bands(t *testing.T) {
	engine := newTestEngine()

	rows := []UtilizationRow{
		{ID: uuid.New(), Name: "MH12AB1234", TotalAssignments: 10, ActiveAssignments: 2},
		{ID: uuid.New(), Name: "MH12CD5678", TotalAssignments: 10, ActiveAssignments: 7},
		{ID: uuid.New(), Name: "MH12EF9012", TotalAssignments: 10, ActiveAssignments: 10},
	}

	insights := engine.AnalyzeUtilization(rows, "vehicle")
	require.Len(t, insights, 3)

	assert.Equal(t, 20.0, insights[0].UtilizationRate)
	assert.Equal(t, 80.0, insights[0].IdleTimePercentage)
	assert.Contains(t, insights[0].Recommendations[0], "Low utilization")
	// idle above 60 adds a second recommendation
	assert.Len(t, insights[0].Recommendations, 2)

	assert.Equal(t, 70.0, insights[1].UtilizationRate)
	assert.Contains(t, insights[1].Recommendations[0], "optimal range")

	assert.Equal(t, 100.0, insights[2].UtilizationRate)
	assert.Contains(t, insights[2].Recommendations[0], "High utilization")
	assert.Equal(t, "vehicle", insights[2].EntityType)
}

func TestAnalyzeVendors_SortsByReliability(t *testing.T) {
	engine := newTestEngine()

	insights := engine.AnalyzeVendors(context.Background(), []VendorRow{
		{ID: uuid.New(), Name: "Sharma Transports", TotalBookings: 10, CompletedBookings: 4},
		{ID: uuid.New(), Name: "Patel Logistics", TotalBookings: 10, CompletedBookings: 9, CostEfficiency: 88},
		{ID: uuid.New(), Name: "New Vendor", TotalBookings: 0, CompletedBookings: 0},
	})

	require.Len(t, insights, 3)
	assert.Equal(t, "Patel Logistics", insights[0].VendorName)
	assert.Equal(t, 90.0, insights[0].ReliabilityScore)
	assert.Equal(t, 88.0, insights[0].CostEfficiency)

	assert.Equal(t, "Sharma Transports", insights[1].VendorName)
	// zero cost efficiency falls back to the neutral default
	assert.Equal(t, 75.0, insights[1].CostEfficiency)

	assert.Equal(t, 0.0, insights[2].ReliabilityScore)
	assert.Contains(t, insights[2].Recommendations[0], "No booking history")
}

func TestDashboard_Composite(t *testing.T) {
	engine := newTestEngine()

	campaigns := []CampaignRow{
		{ID: uuid.New(), Name: "A", Status: "running", Budget: 100000, TotalExpenses: 80000},
		{ID: uuid.New(), Name: "B", Status: "running", Budget: 50000, TotalExpenses: 60000},
		{ID: uuid.New(), Name: "C", Status: "completed", Budget: 40000, TotalExpenses: 30000},
	}
	expenses := []ExpenseRow{
		{ID: uuid.New(), ExpenseType: "fuel", Amount: 1000},
		{ID: uuid.New(), ExpenseType: "fuel", Amount: 1020},
		{ID: uuid.New(), ExpenseType: "fuel", Amount: 990},
		{ID: uuid.New(), ExpenseType: "fuel", Amount: 1010},
		{ID: uuid.New(), ExpenseType: "fuel", Amount: 1005},
		{ID: uuid.New(), ExpenseType: "fuel", Amount: 995},
		{ID: uuid.New(), ExpenseType: "fuel", Amount: 1000},
		{ID: uuid.New(), ExpenseType: "fuel", Amount: 15000},
	}
	vehicles := []UtilizationRow{
		{ID: uuid.New(), Name: "MH12AB1234", TotalAssignments: 5, ActiveAssignments: 3},
	}
	drivers := []UtilizationRow{
		{ID: uuid.New(), Name: "Ramesh Kale", TotalAssignments: 8, ActiveAssignments: 1},
	}
	vendors := []VendorRow{
		{ID: uuid.New(), Name: "Patel Logistics", TotalBookings: 10, CompletedBookings: 9},
	}

	report := engine.Dashboard(context.Background(), campaigns, expenses, vehicles, drivers, vendors)
	require.NotNil(t, report)

	assert.Equal(t, 3, report.Summary.TotalCampaigns)
	assert.Equal(t, 2, report.Summary.ActiveCampaigns)
	assert.Equal(t, 1, report.Summary.AnomalousExpenses)
	assert.Equal(t, 1, report.Summary.HighPriorityAlerts)
	assert.Greater(t, report.Summary.AvgPerformanceScore, 0.0)

	assert.Len(t, report.CampaignInsights, 3)
	assert.Len(t, report.ExpenseAnomalies, 1)
	assert.Len(t, report.VehicleUtilization, 1)
	assert.Len(t, report.DriverUtilization, 1)
	assert.Len(t, report.VendorPerformance, 1)

	require.Len(t, report.CriticalAlerts, 1)
	assert.Contains(t, report.CriticalAlerts[0], "CRITICAL")

	require.NotEmpty(t, report.TopRecommendations)
	// the over-budget campaign's warning outranks routine advice
	assert.Contains(t, report.TopRecommendations[0], "Warning")
	assert.LessOrEqual(t, len(report.TopRecommendations), 5)
}

func TestDashboard_EmptyInputs(t *testing.T) {
	engine := newTestEngine()

	report := engine.Dashboard(context.Background(), nil, nil, nil, nil, nil)
	require.NotNil(t, report)
	assert.Equal(t, 0, report.Summary.TotalCampaigns)
	assert.Equal(t, 0.0, report.Summary.AvgPerformanceScore)
	assert.Empty(t, report.CampaignInsights)
	assert.Empty(t, report.CriticalAlerts)
}
