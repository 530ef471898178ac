package insights

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"
)

const (
	// anomalyThreshold is the z-score above which an expense is
	// flagged.
	anomalyThreshold = 2.5
	// minSamplesPerType is the minimum number of expenses of one type
	// before the band is statistically meaningful.
	minSamplesPerType = 3
	// maxAnomalies bounds the anomaly list
	maxAnomalies = 20
)

// Engine computes the analytics behind the insights endpoints. All
// inputs are pre-aggregated rows; the engine never touches a database.
type Engine struct {
	recommender Recommender
}

// NewEngine creates an Engine backed by the given recommender
func NewEngine(recommender Recommender) *Engine {
	return &Engine{recommender: recommender}
}

// AnalyzeCampaigns scores each campaign and attaches alerts,
// recommendations and a spend trend.
func (e *Engine) AnalyzeCampaigns(ctx context.Context, campaigns []CampaignRow) []CampaignInsight {
	insights := make([]CampaignInsight, 0, len(campaigns))
	for _, campaign := range campaigns {
		utilization := 0.0
		if campaign.Budget > 0 {
			utilization = campaign.TotalExpenses / campaign.Budget * 100
		}
		score := performanceScore(campaign)

		insights = append(insights, CampaignInsight{
			CampaignID:        campaign.ID,
			CampaignName:      campaign.Name,
			PerformanceScore:  round2(score),
			BudgetUtilization: round2(utilization),
			ROIEstimate:       round2(estimateROI(campaign)),
			Trend:             spendTrend(utilization),
			Alerts:            campaignAlerts(campaign, utilization),
			Recommendations:   e.recommender.Campaign(ctx, campaign, utilization, score),
		})
	}
	return insights
}

// performanceScore rates a campaign 0-100: base 50, up to 30 for
// budget discipline, up to 20 for lifecycle progress.
func performanceScore(campaign CampaignRow) float64 {
	score := 50.0

	if campaign.Budget > 0 {
		utilization := campaign.TotalExpenses / campaign.Budget * 100
		switch {
		case utilization >= 70 && utilization <= 95:
			score += 30
		case utilization >= 50 && utilization < 70:
			score += 20
		case utilization > 95 && utilization <= 100:
			score += 15
		default:
			score += 5
		}
	}

	switch strings.ToLower(campaign.Status) {
	case "completed":
		score += 20
	case "running", "active":
		score += 15
	case "planning":
		score += 10
	}

	return math.Min(score, 100)
}

// estimateROI reports how much of the budget remains as a percentage.
// A campaign with no spend yet scores zero.
func estimateROI(campaign CampaignRow) float64 {
	if campaign.TotalExpenses == 0 || campaign.Budget <= 0 {
		return 0
	}
	return (campaign.Budget - campaign.TotalExpenses) / campaign.Budget * 100
}

func spendTrend(utilization float64) string {
	switch {
	case utilization > 90:
		return "stable"
	case utilization > 60:
		return "improving"
	default:
		return "declining"
	}
}

func campaignAlerts(campaign CampaignRow, utilization float64) []string {
	alerts := []string{}

	if utilization > 100 {
		alerts = append(alerts, "CRITICAL: budget exceeded, immediate action required")
	} else if utilization > 95 {
		alerts = append(alerts, "WARNING: budget near limit (>95%)")
	}

	if campaign.EndDate != nil {
		daysRemaining := int(time.Until(*campaign.EndDate).Hours() / 24)
		if daysRemaining >= 0 && daysRemaining < 3 {
			alerts = append(alerts, "Campaign ending within 3 days")
		} else if daysRemaining < 0 {
			alerts = append(alerts, "Campaign end date has passed")
		}
	}

	return alerts
}

// DetectExpenseAnomalies flags expenses whose amount sits more than
// the threshold number of standard deviations from their type's mean.
// Types with fewer samples than the minimum are skipped.
func (e *Engine) DetectExpenseAnomalies(expenses []ExpenseRow) []ExpenseAnomaly {
	byType := make(map[string][]ExpenseRow)
	for _, expense := range expenses {
		if expense.Amount <= 0 {
			continue
		}
		expenseType := expense.ExpenseType
		if expenseType == "" {
			expenseType = "other"
		}
		byType[expenseType] = append(byType[expenseType], expense)
	}

	anomalies := []ExpenseAnomaly{}
	for expenseType, rows := range byType {
		if len(rows) < minSamplesPerType {
			continue
		}

		mean, std := meanStd(rows)
		if std == 0 {
			continue
		}

		for _, expense := range rows {
			zScore := math.Abs(expense.Amount-mean) / std
			if zScore <= anomalyThreshold {
				continue
			}

			reason := "Significantly higher than average"
			if expense.Amount < mean {
				reason = "Significantly lower than average"
			}
			anomalies = append(anomalies, ExpenseAnomaly{
				ExpenseID:   expense.ID,
				ExpenseType: expenseType,
				Amount:      expense.Amount,
				ExpectedRange: ExpectedRange{
					Min:     round2(mean - std),
					Max:     round2(mean + std),
					Average: round2(mean),
				},
				AnomalyScore: round2(zScore),
				Reason:       reason,
			})
		}
	}

	sort.Slice(anomalies, func(i, j int) bool {
		return anomalies[i].AnomalyScore > anomalies[j].AnomalyScore
	})
	if len(anomalies) > maxAnomalies {
		anomalies = anomalies[:maxAnomalies]
	}
	return anomalies
}

// meanStd computes the mean and population standard deviation of the
// row amounts.
func meanStd(rows []ExpenseRow) (float64, float64) {
	var sum float64
	for _, row := range rows {
		sum += row.Amount
	}
	mean := sum / float64(len(rows))

	var variance float64
	for _, row := range rows {
		delta := row.Amount - mean
		variance += delta * delta
	}
	variance /= float64(len(rows))

	return mean, math.Sqrt(variance)
}

// AnalyzeUtilization rates each vehicle or driver by the share of its
// bookings still active.
func (e *Engine) AnalyzeUtilization(entities []UtilizationRow, entityType string) []UtilizationInsight {
	insights := make([]UtilizationInsight, 0, len(entities))
	for _, entity := range entities {
		rate := 0.0
		if entity.TotalAssignments > 0 {
			rate = float64(entity.ActiveAssignments) / float64(entity.TotalAssignments) * 100
		}
		idle := 100 - rate

		recommendations := []string{}
		switch {
		case rate < 40:
			recommendations = append(recommendations, "Low utilization, consider reassigning or optimizing routes")
		case rate > 90:
			recommendations = append(recommendations, "High utilization, ensure adequate rest and maintenance time")
		default:
			recommendations = append(recommendations, "Utilization within the optimal range")
		}
		if idle > 60 {
			recommendations = append(recommendations, "High idle time, opportunity for cost optimization")
		}

		insights = append(insights, UtilizationInsight{
			EntityType:         entityType,
			EntityID:           entity.ID,
			EntityName:         entity.Name,
			UtilizationRate:    round2(rate),
			IdleTimePercentage: round2(idle),
			Recommendations:    recommendations,
		})
	}
	return insights
}

// AnalyzeVendors rates vendors by booking reliability, most reliable
// first.
func (e *Engine) AnalyzeVendors(ctx context.Context, vendors []VendorRow) []VendorInsight {
	insights := make([]VendorInsight, 0, len(vendors))
	for _, vendor := range vendors {
		reliability := 0.0
		if vendor.TotalBookings > 0 {
			reliability = float64(vendor.CompletedBookings) / float64(vendor.TotalBookings) * 100
		}
		costEfficiency := vendor.CostEfficiency
		if costEfficiency == 0 {
			costEfficiency = 75
		}

		insights = append(insights, VendorInsight{
			VendorID:         vendor.ID,
			VendorName:       vendor.Name,
			ReliabilityScore: round2(reliability),
			CostEfficiency:   round2(costEfficiency),
			Recommendations:  e.recommender.Vendor(ctx, vendor, reliability, costEfficiency),
		})
	}

	sort.Slice(insights, func(i, j int) bool {
		return insights[i].ReliabilityScore > insights[j].ReliabilityScore
	})
	return insights
}

// Dashboard runs every analysis and folds the results into one
// composite report.
func (e *Engine) Dashboard(ctx context.Context, campaigns []CampaignRow, expenses []ExpenseRow, vehicles, drivers []UtilizationRow, vendors []VendorRow) *DashboardReport {
	campaignInsights := e.AnalyzeCampaigns(ctx, campaigns)
	anomalies := e.DetectExpenseAnomalies(expenses)
	vehicleUtilization := e.AnalyzeUtilization(vehicles, "vehicle")
	driverUtilization := e.AnalyzeUtilization(drivers, "driver")
	vendorPerformance := e.AnalyzeVendors(ctx, vendors)

	activeCampaigns := 0
	for _, campaign := range campaigns {
		status := strings.ToLower(campaign.Status)
		if status == "running" || status == "active" {
			activeCampaigns++
		}
	}

	avgScore := 0.0
	if len(campaignInsights) > 0 {
		for _, insight := range campaignInsights {
			avgScore += insight.PerformanceScore
		}
		avgScore /= float64(len(campaignInsights))
	}

	criticalAlerts := []string{}
	for _, insight := range campaignInsights {
		for _, alert := range insight.Alerts {
			if strings.HasPrefix(alert, "CRITICAL") || strings.HasPrefix(alert, "WARNING") {
				criticalAlerts = append(criticalAlerts, alert)
			}
		}
	}

	report := &DashboardReport{
		Summary: DashboardSummary{
			TotalCampaigns:      len(campaigns),
			ActiveCampaigns:     activeCampaigns,
			AvgPerformanceScore: round2(avgScore),
			HighPriorityAlerts:  len(criticalAlerts),
			AnomalousExpenses:   len(anomalies),
		},
		CampaignInsights:   topN(campaignInsights, 10),
		ExpenseAnomalies:   topN(anomalies, 10),
		VehicleUtilization: topN(vehicleUtilization, 10),
		DriverUtilization:  topN(driverUtilization, 10),
		VendorPerformance:  topN(vendorPerformance, 10),
		TopRecommendations: topRecommendations(campaignInsights),
		CriticalAlerts:     topN(criticalAlerts, 5),
	}
	return report
}

// topRecommendations collects campaign recommendations, warnings
// first, capped at five.
func topRecommendations(insights []CampaignInsight) []string {
	all := []string{}
	warnings := []string{}
	for _, insight := range insights {
		for _, rec := range insight.Recommendations {
			all = append(all, rec)
			if strings.HasPrefix(rec, "Warning") {
				warnings = append(warnings, rec)
			}
		}
	}
	if len(warnings) > 0 {
		return topN(warnings, 5)
	}
	return topN(all, 5)
}

func topN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
