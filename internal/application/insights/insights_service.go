package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Pratul75/report360/internal/domain/analytics"
	"github.com/Pratul75/report360/internal/infrastructure/cache"
	"github.com/Pratul75/report360/internal/infrastructure/config"
	engine "github.com/Pratul75/report360/internal/insights"
)

// Cache keys under the analytics prefix
const (
	cacheKeyCampaigns  = cache.KeyPrefixAnalytics + "campaign-insights"
	cacheKeyAnomalies  = cache.KeyPrefixAnalytics + "expense-anomalies"
	cacheKeyVehicles   = cache.KeyPrefixAnalytics + "vehicle-utilization"
	cacheKeyDrivers    = cache.KeyPrefixAnalytics + "driver-utilization"
	cacheKeyVendors    = cache.KeyPrefixAnalytics + "vendor-performance"
	cacheKeyDashboard  = cache.KeyPrefixAnalytics + "dashboard"
	insightsSampleSize = 500
)

// Service aggregates read-model rows and forwards them to the insights
// sidecar. When the sidecar is disabled or unreachable the caller gets
// a degraded response rather than an error; the core API stays up
// without it.
type Service struct {
	analyticsRepo analytics.Repository
	reportCache   cache.ReportCache
	client        *http.Client
	baseURL       string
	enabled       bool
	cacheTTL      time.Duration
	logger        *zap.Logger
}

// DegradedResponse is returned when insights cannot be computed
type DegradedResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason"`
}

func NewService(
	analyticsRepo analytics.Repository,
	reportCache cache.ReportCache,
	cfg config.InsightsConfig,
	logger *zap.Logger,
) *Service {
	return &Service{
		analyticsRepo: analyticsRepo,
		reportCache:   reportCache,
		client:        &http.Client{Timeout: cfg.Timeout},
		baseURL:       cfg.BaseURL,
		enabled:       cfg.Enabled,
		cacheTTL:      cfg.CacheTTL,
		logger:        logger,
	}
}

// Available reports whether the sidecar is configured and answering
func (s *Service) Available(ctx context.Context) bool {
	if !s.enabled {
		return false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// CampaignInsights scores every active campaign
func (s *Service) CampaignInsights(ctx context.Context) ([]engine.CampaignInsight, *DegradedResponse, error) {
	var cached []engine.CampaignInsight
	if hit, err := s.reportCache.Get(ctx, cacheKeyCampaigns, &cached); err == nil && hit {
		return cached, nil, nil
	}

	rows, err := s.campaignRows(ctx)
	if err != nil {
		return nil, nil, err
	}

	var insights []engine.CampaignInsight
	if degraded := s.post(ctx, "/analytics/campaign-insights", map[string]any{"campaigns": rows}, &insights); degraded != nil {
		return nil, degraded, nil
	}

	_ = s.reportCache.Set(ctx, cacheKeyCampaigns, insights, s.cacheTTL)
	return insights, nil, nil
}

// ExpenseAnomalies flags statistically unusual expenses
func (s *Service) ExpenseAnomalies(ctx context.Context) ([]engine.ExpenseAnomaly, *DegradedResponse, error) {
	var cached []engine.ExpenseAnomaly
	if hit, err := s.reportCache.Get(ctx, cacheKeyAnomalies, &cached); err == nil && hit {
		return cached, nil, nil
	}

	rows, err := s.expenseRows(ctx)
	if err != nil {
		return nil, nil, err
	}

	var anomalies []engine.ExpenseAnomaly
	if degraded := s.post(ctx, "/analytics/expense-anomalies", map[string]any{"expenses": rows}, &anomalies); degraded != nil {
		return nil, degraded, nil
	}

	_ = s.reportCache.Set(ctx, cacheKeyAnomalies, anomalies, s.cacheTTL)
	return anomalies, nil, nil
}

// VehicleUtilization rates each vehicle's booking load
func (s *Service) VehicleUtilization(ctx context.Context) ([]engine.UtilizationInsight, *DegradedResponse, error) {
	var cached []engine.UtilizationInsight
	if hit, err := s.reportCache.Get(ctx, cacheKeyVehicles, &cached); err == nil && hit {
		return cached, nil, nil
	}

	rows, err := s.vehicleRows(ctx)
	if err != nil {
		return nil, nil, err
	}

	var insights []engine.UtilizationInsight
	if degraded := s.post(ctx, "/analytics/vehicle-utilization", map[string]any{"vehicles": rows}, &insights); degraded != nil {
		return nil, degraded, nil
	}

	_ = s.reportCache.Set(ctx, cacheKeyVehicles, insights, s.cacheTTL)
	return insights, nil, nil
}

// DriverUtilization rates each driver's workload
func (s *Service) DriverUtilization(ctx context.Context) ([]engine.UtilizationInsight, *DegradedResponse, error) {
	var cached []engine.UtilizationInsight
	if hit, err := s.reportCache.Get(ctx, cacheKeyDrivers, &cached); err == nil && hit {
		return cached, nil, nil
	}

	rows, err := s.driverRows(ctx)
	if err != nil {
		return nil, nil, err
	}

	var insights []engine.UtilizationInsight
	if degraded := s.post(ctx, "/analytics/driver-utilization", map[string]any{"drivers": rows}, &insights); degraded != nil {
		return nil, degraded, nil
	}

	_ = s.reportCache.Set(ctx, cacheKeyDrivers, insights, s.cacheTTL)
	return insights, nil, nil
}

// VendorPerformance rates each vendor's reliability
func (s *Service) VendorPerformance(ctx context.Context) ([]engine.VendorInsight, *DegradedResponse, error) {
	var cached []engine.VendorInsight
	if hit, err := s.reportCache.Get(ctx, cacheKeyVendors, &cached); err == nil && hit {
		return cached, nil, nil
	}

	rows, err := s.vendorRows(ctx)
	if err != nil {
		return nil, nil, err
	}

	var insights []engine.VendorInsight
	if degraded := s.post(ctx, "/analytics/vendor-performance", map[string]any{"vendors": rows}, &insights); degraded != nil {
		return nil, degraded, nil
	}

	_ = s.reportCache.Set(ctx, cacheKeyVendors, insights, s.cacheTTL)
	return insights, nil, nil
}

// Dashboard runs the full composite analysis
func (s *Service) Dashboard(ctx context.Context) (*engine.DashboardReport, *DegradedResponse, error) {
	var cached engine.DashboardReport
	if hit, err := s.reportCache.Get(ctx, cacheKeyDashboard, &cached); err == nil && hit {
		return &cached, nil, nil
	}

	campaigns, err := s.campaignRows(ctx)
	if err != nil {
		return nil, nil, err
	}
	expenses, err := s.expenseRows(ctx)
	if err != nil {
		return nil, nil, err
	}
	vehicles, err := s.vehicleRows(ctx)
	if err != nil {
		return nil, nil, err
	}
	drivers, err := s.driverRows(ctx)
	if err != nil {
		return nil, nil, err
	}
	vendors, err := s.vendorRows(ctx)
	if err != nil {
		return nil, nil, err
	}

	payload := map[string]any{
		"campaigns": campaigns,
		"expenses":  expenses,
		"vehicles":  vehicles,
		"drivers":   drivers,
		"vendors":   vendors,
	}

	var report engine.DashboardReport
	if degraded := s.post(ctx, "/analytics/dashboard", payload, &report); degraded != nil {
		return nil, degraded, nil
	}

	_ = s.reportCache.Set(ctx, cacheKeyDashboard, &report, s.cacheTTL)
	return &report, nil, nil
}

// ====================================================================
// Row aggregation
// ====================================================================

func (s *Service) campaignRows(ctx context.Context) ([]engine.CampaignRow, error) {
	spend, err := s.analyticsRepo.CampaignSpend(ctx, analytics.Filter{})
	if err != nil {
		return nil, err
	}
	rows := make([]engine.CampaignRow, len(spend))
	for i, sp := range spend {
		rows[i] = engine.CampaignRow{
			ID:            sp.CampaignID,
			Name:          sp.CampaignName,
			Status:        sp.Status,
			Budget:        sp.Budget.InexactFloat64(),
			TotalExpenses: sp.TotalExpenses.InexactFloat64(),
			EndDate:       sp.EndDate,
		}
	}
	return rows, nil
}

func (s *Service) expenseRows(ctx context.Context) ([]engine.ExpenseRow, error) {
	// Bound the sample window to the last 90 days to keep the payload
	// small and the statistics seasonal.
	start := time.Now().AddDate(0, -3, 0)
	samples, err := s.analyticsRepo.ExpenseSamples(ctx, analytics.Filter{StartDate: &start, TopN: insightsSampleSize})
	if err != nil {
		return nil, err
	}
	rows := make([]engine.ExpenseRow, len(samples))
	for i, sample := range samples {
		rows[i] = engine.ExpenseRow{
			ID:          sample.ExpenseID,
			ExpenseType: sample.ExpenseType,
			Amount:      sample.Amount.InexactFloat64(),
		}
	}
	return rows, nil
}

func (s *Service) vehicleRows(ctx context.Context) ([]engine.UtilizationRow, error) {
	utilization, err := s.analyticsRepo.VehicleUtilization(ctx, analytics.Filter{})
	if err != nil {
		return nil, err
	}
	rows := make([]engine.UtilizationRow, len(utilization))
	for i, u := range utilization {
		rows[i] = engine.UtilizationRow{
			ID:                u.VehicleID,
			Name:              u.VehicleNumber,
			TotalAssignments:  u.Assignments,
			ActiveAssignments: u.Assignments - u.Completed,
		}
	}
	return rows, nil
}

func (s *Service) driverRows(ctx context.Context) ([]engine.UtilizationRow, error) {
	utilization, err := s.analyticsRepo.DriverUtilization(ctx, analytics.Filter{})
	if err != nil {
		return nil, err
	}
	rows := make([]engine.UtilizationRow, len(utilization))
	for i, u := range utilization {
		rows[i] = engine.UtilizationRow{
			ID:                u.DriverID,
			Name:              u.DriverName,
			TotalAssignments:  u.Assignments,
			ActiveAssignments: u.Assignments - u.Completed,
		}
	}
	return rows, nil
}

func (s *Service) vendorRows(ctx context.Context) ([]engine.VendorRow, error) {
	performance, err := s.analyticsRepo.VendorPerformance(ctx, analytics.Filter{})
	if err != nil {
		return nil, err
	}
	rows := make([]engine.VendorRow, len(performance))
	for i, p := range performance {
		costEfficiency := 0.0
		if p.InvoiceAmount.IsPositive() {
			costEfficiency = p.PaidAmount.Div(p.InvoiceAmount).InexactFloat64() * 100
		}
		rows[i] = engine.VendorRow{
			ID:                p.VendorID,
			Name:              p.VendorName,
			TotalBookings:     p.Invoices,
			CompletedBookings: p.PaidInvoices,
			CostEfficiency:    costEfficiency,
		}
	}
	return rows, nil
}

// ====================================================================
// Sidecar transport
// ====================================================================

type sidecarEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// post sends the payload to the sidecar and unmarshals the data field
// into out. A non-nil DegradedResponse means the sidecar could not
// serve; the caller should surface it instead of failing.
func (s *Service) post(ctx context.Context, path string, payload, out any) *DegradedResponse {
	if !s.enabled {
		return &DegradedResponse{Available: false, Reason: "insights service is disabled"}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("failed to encode insights payload", zap.String("path", path), zap.Error(err))
		return &DegradedResponse{Available: false, Reason: "failed to encode analytics payload"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &DegradedResponse{Available: false, Reason: "failed to build insights request"}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("insights service unreachable", zap.String("path", path), zap.Error(err))
		return &DegradedResponse{Available: false, Reason: "insights service is unreachable"}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("insights service returned an error",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return &DegradedResponse{Available: false, Reason: fmt.Sprintf("insights service returned status %d", resp.StatusCode)}
	}

	var envelope sidecarEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || !envelope.Success {
		s.logger.Warn("unexpected insights response", zap.String("path", path), zap.Error(err))
		return &DegradedResponse{Available: false, Reason: "insights service returned an unexpected response"}
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		s.logger.Warn("failed to decode insights data", zap.String("path", path), zap.Error(err))
		return &DegradedResponse{Available: false, Reason: "insights service returned an unexpected response"}
	}
	return nil
}
