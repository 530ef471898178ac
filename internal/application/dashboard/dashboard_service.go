package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appfinance "github.com/Pratul75/report360/internal/application/finance"
	appfleet "github.com/Pratul75/report360/internal/application/fleet"
	"github.com/Pratul75/report360/internal/domain/analytics"
	"github.com/Pratul75/report360/internal/domain/crm"
	"github.com/Pratul75/report360/internal/domain/finance"
	"github.com/Pratul75/report360/internal/domain/fleet"
	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/Pratul75/report360/internal/infrastructure/cache"
)

const adminCacheKey = cache.KeyPrefixDashboard + "admin"

// dashboardPageSize bounds the row lists embedded in dashboard
// payloads.
const dashboardPageSize = 100

// Service builds the role dashboards from the analytics read model
// and the domain repositories. The admin dashboard is cached; the
// per-user dashboards are cheap enough to build on every request.
type Service struct {
	analyticsRepo  analytics.Repository
	projectRepo    crm.ProjectRepository
	vehicleRepo    fleet.VehicleRepository
	driverRepo     fleet.DriverRepository
	assignmentRepo fleet.AssignmentRepository
	kmLogRepo      fleet.KMLogRepository
	invoiceRepo    finance.InvoiceRepository
	paymentRepo    finance.PaymentRepository
	reportCache    cache.ReportCache
	cacheTTL       time.Duration
}

// NewService creates a dashboard Service
func NewService(
	analyticsRepo analytics.Repository,
	projectRepo crm.ProjectRepository,
	vehicleRepo fleet.VehicleRepository,
	driverRepo fleet.DriverRepository,
	assignmentRepo fleet.AssignmentRepository,
	kmLogRepo fleet.KMLogRepository,
	invoiceRepo finance.InvoiceRepository,
	paymentRepo finance.PaymentRepository,
	reportCache cache.ReportCache,
	cacheTTL time.Duration,
) *Service {
	return &Service{
		analyticsRepo:  analyticsRepo,
		projectRepo:    projectRepo,
		vehicleRepo:    vehicleRepo,
		driverRepo:     driverRepo,
		assignmentRepo: assignmentRepo,
		kmLogRepo:      kmLogRepo,
		invoiceRepo:    invoiceRepo,
		paymentRepo:    paymentRepo,
		reportCache:    reportCache,
		cacheTTL:       cacheTTL,
	}
}

// Admin builds the operations overview. The payload is served from
// cache when a fresh copy exists.
func (s *Service) Admin(ctx context.Context) (*AdminDashboardResponse, error) {
	var cached AdminDashboardResponse
	if hit, err := s.reportCache.Get(ctx, adminCacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	counts, err := s.analyticsRepo.EntityCounts(ctx)
	if err != nil {
		return nil, err
	}
	campaignStatuses, err := s.analyticsRepo.CampaignStatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	expenseStatuses, err := s.analyticsRepo.ExpenseStatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	invoiceStatuses, err := s.analyticsRepo.InvoiceStatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	assignmentStatuses, err := s.analyticsRepo.AssignmentStatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	spend, err := s.analyticsRepo.CampaignSpend(ctx, analytics.Filter{TopN: 10})
	if err != nil {
		return nil, err
	}

	monthAgo := time.Now().AddDate(0, 0, -30)
	trend, err := s.analyticsRepo.DailyExpenseSeries(ctx, analytics.Filter{StartDate: &monthAgo})
	if err != nil {
		return nil, err
	}

	response := &AdminDashboardResponse{
		Counts:              *counts,
		CampaignsByStatus:   campaignStatuses,
		ExpensesByStatus:    expenseStatuses,
		InvoicesByStatus:    invoiceStatuses,
		AssignmentsByStatus: assignmentStatuses,
		TopCampaignSpend:    spend,
		ExpenseTrend:        trend,
		GeneratedAt:         time.Now(),
	}

	// Cache write failures degrade to uncached serving.
	_ = s.reportCache.Set(ctx, adminCacheKey, response, s.cacheTTL)

	return response, nil
}

// Vendor builds the self-service view for one vendor
func (s *Service) Vendor(ctx context.Context, vendorID uuid.UUID) (*VendorDashboardResponse, error) {
	filter := dashboardFilter()

	vehicles, err := s.vehicleRepo.FindByVendor(ctx, vendorID, filter)
	if err != nil {
		return nil, err
	}
	drivers, err := s.driverRepo.FindByVendor(ctx, vendorID, filter)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.FindByVendor(ctx, vendorID, filter)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.FindByVendor(ctx, vendorID, filter)
	if err != nil {
		return nil, err
	}

	summary := VendorDashboardSummary{
		Vehicles:      int64(len(vehicles)),
		Drivers:       int64(len(drivers)),
		Invoices:      int64(len(invoices)),
		PaidRevenue:   decimal.Zero,
		PendingAmount: decimal.Zero,
	}
	for i := range invoices {
		switch invoices[i].Status {
		case finance.InvoiceStatusPaid:
			summary.PaidRevenue = summary.PaidRevenue.Add(invoices[i].Amount)
		case finance.InvoiceStatusApproved:
			summary.PendingAmount = summary.PendingAmount.Add(invoices[i].Amount)
		}
	}
	for i := range payments {
		if payments[i].Status == finance.PaymentStatusPending {
			summary.PendingPayments++
		}
	}

	return &VendorDashboardResponse{
		VendorID: vendorID,
		Summary:  summary,
		Vehicles: appfleet.ToVehicleResponses(vehicles),
		Drivers:  appfleet.ToDriverResponses(drivers),
		Invoices: appfinance.ToInvoiceResponses(invoices),
		Payments: appfinance.ToPaymentResponses(payments),
	}, nil
}

// ClientServicing buckets project delivery for the servicing team and
// charts the recent spend.
func (s *Service) ClientServicing(ctx context.Context, query ClientServicingQuery) (*ClientServicingDashboardResponse, error) {
	filter := dashboardFilter()
	if query.ClientID != nil {
		filter.Filters["client_id"] = *query.ClientID
	}

	projects, err := s.projectRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	today := truncateToDay(time.Now())
	var progress ProjectProgress
	snapshots := make([]ProjectSnapshot, 0, 10)
	for i := range projects {
		p := &projects[i]
		if !withinRange(p, query.StartDate, query.EndDate) {
			continue
		}
		if p.StartDate != nil && truncateToDay(*p.StartDate).Equal(today) {
			progress.StartingToday++
		}
		switch p.Status {
		case crm.ProjectStatusCompleted:
			progress.Completed++
		case crm.ProjectStatusActive:
			if p.StartDate != nil && p.StartDate.After(today) {
				progress.Upcoming++
			} else {
				progress.Pending++
			}
		}
		if len(snapshots) < 10 {
			snapshots = append(snapshots, ProjectSnapshot{
				ID:        p.ID,
				Name:      p.Name,
				Status:    string(p.Status),
				StartDate: p.StartDate,
				EndDate:   p.EndDate,
			})
		}
	}

	analyticsFilter := analytics.Filter{StartDate: query.StartDate, EndDate: query.EndDate}
	if analyticsFilter.StartDate == nil {
		monthAgo := time.Now().AddDate(0, 0, -30)
		analyticsFilter.StartDate = &monthAgo
	}
	trend, err := s.analyticsRepo.DailyExpenseSeries(ctx, analyticsFilter)
	if err != nil {
		return nil, err
	}

	return &ClientServicingDashboardResponse{
		Progress:       progress,
		RecentProjects: snapshots,
		ExpenseTrend:   trend,
	}, nil
}

// Driver builds the home screen for one driver: profile state, the
// day's journey log and the current assignment list.
func (s *Service) Driver(ctx context.Context, driverID uuid.UUID) (*DriverDashboardResponse, error) {
	driver, err := s.driverRepo.FindByID(ctx, driverID)
	if err != nil {
		return nil, err
	}

	response := &DriverDashboardResponse{
		Driver: appfleet.ToDriverResponse(driver),
	}

	profile, err := s.driverRepo.FindProfile(ctx, driverID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if profile != nil {
		profileResponse := appfleet.ToDriverProfileResponse(profile)
		response.Profile = &profileResponse
		response.Summary.ProfileComplete = profile.IsComplete()
	}

	todayLog, err := s.kmLogRepo.FindByDriverAndDate(ctx, driverID, time.Now())
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if todayLog != nil {
		logResponse := appfleet.ToKMLogResponse(todayLog)
		response.TodayKMLog = &logResponse
	}

	assignments, err := s.assignmentRepo.FindByDriver(ctx, driverID, dashboardFilter())
	if err != nil {
		return nil, err
	}
	response.Assignments = appfleet.ToAssignmentResponses(assignments)

	response.Summary.Assignments = int64(len(assignments))
	for i := range assignments {
		if assignments[i].ApprovalStatus == fleet.ApprovalStatusPending {
			response.Summary.PendingApproval++
		}
		switch assignments[i].Status {
		case fleet.AssignmentStatusInProgress:
			response.Summary.InProgress++
		case fleet.AssignmentStatusCompleted:
			response.Summary.Completed++
		}
	}

	logs, err := s.kmLogRepo.FindByDriver(ctx, driverID, dashboardFilter())
	if err != nil {
		return nil, err
	}
	for i := range logs {
		if logs[i].TotalKM != nil {
			response.Summary.TotalKM += *logs[i].TotalKM
		}
		if logs[i].Status == fleet.KMLogStatusCompleted {
			response.Summary.DaysWithLogs++
		}
	}

	return response, nil
}

func dashboardFilter() shared.Filter {
	filter := shared.DefaultFilter()
	filter.PageSize = dashboardPageSize
	return filter
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// withinRange keeps projects that overlap the requested window. An
// open window keeps everything.
func withinRange(p *crm.Project, start, end *time.Time) bool {
	if start == nil || end == nil {
		return true
	}
	if p.StartDate != nil && !p.StartDate.Before(*start) && !p.StartDate.After(*end) {
		return true
	}
	if p.EndDate != nil && !p.EndDate.Before(*start) && !p.EndDate.After(*end) {
		return true
	}
	if p.StartDate != nil && p.StartDate.Before(*start) {
		if p.EndDate == nil || p.EndDate.After(*end) {
			return true
		}
	}
	return false
}
