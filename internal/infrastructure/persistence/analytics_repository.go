package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Pratul75/report360/internal/domain/analytics"
	"github.com/Pratul75/report360/internal/infrastructure/persistence/models"
)

// GormAnalyticsRepository implements analytics.Repository using GORM.
// All queries are scoped to active rows.
type GormAnalyticsRepository struct {
	db *gorm.DB
}

// NewGormAnalyticsRepository creates a new GormAnalyticsRepository
func NewGormAnalyticsRepository(db *gorm.DB) *GormAnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

// EntityCounts returns the active row counts per entity type
func (r *GormAnalyticsRepository) EntityCounts(ctx context.Context) (*analytics.EntityCounts, error) {
	counts := &analytics.EntityCounts{}
	tables := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.ClientModel{}, &counts.Clients},
		{&models.ProjectModel{}, &counts.Projects},
		{&models.CampaignModel{}, &counts.Campaigns},
		{&models.VendorModel{}, &counts.Vendors},
		{&models.VehicleModel{}, &counts.Vehicles},
		{&models.DriverModel{}, &counts.Drivers},
		{&models.PromoterModel{}, &counts.Promoters},
		{&models.UserModel{}, &counts.Users},
	}
	for _, t := range tables {
		if err := r.db.WithContext(ctx).Model(t.model).
			Where("is_active = ?", true).
			Count(t.dest).Error; err != nil {
			return nil, err
		}
	}
	return counts, nil
}

func (r *GormAnalyticsRepository) statusCounts(ctx context.Context, model interface{}) ([]analytics.StatusCount, error) {
	var results []analytics.StatusCount
	err := r.db.WithContext(ctx).Model(model).
		Select("status, COUNT(*) as count").
		Where("is_active = ?", true).
		Group("status").
		Order("status ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// CampaignStatusCounts breaks active campaigns down by lifecycle status
func (r *GormAnalyticsRepository) CampaignStatusCounts(ctx context.Context) ([]analytics.StatusCount, error) {
	return r.statusCounts(ctx, &models.CampaignModel{})
}

// ExpenseStatusCounts breaks active expenses down by approval status
func (r *GormAnalyticsRepository) ExpenseStatusCounts(ctx context.Context) ([]analytics.StatusCount, error) {
	return r.statusCounts(ctx, &models.ExpenseModel{})
}

// InvoiceStatusCounts breaks active invoices down by approval status
func (r *GormAnalyticsRepository) InvoiceStatusCounts(ctx context.Context) ([]analytics.StatusCount, error) {
	return r.statusCounts(ctx, &models.InvoiceModel{})
}

// AssignmentStatusCounts breaks active assignments down by work status
func (r *GormAnalyticsRepository) AssignmentStatusCounts(ctx context.Context) ([]analytics.StatusCount, error) {
	return r.statusCounts(ctx, &models.DriverAssignmentModel{})
}

// CampaignSpend aggregates approved and pending expense spend per campaign
func (r *GormAnalyticsRepository) CampaignSpend(ctx context.Context, filter analytics.Filter) ([]analytics.CampaignSpend, error) {
	type spendResult struct {
		CampaignID    uuid.UUID
		CampaignName  string
		Status        string
		Budget        decimal.Decimal
		TotalExpenses decimal.Decimal
		ExpenseCount  int64
		EndDate       *time.Time
	}

	query := r.db.WithContext(ctx).Table("campaigns c").
		Select(`
			c.id as campaign_id,
			c.name as campaign_name,
			c.status as status,
			c.budget as budget,
			COALESCE(SUM(e.amount), 0) as total_expenses,
			COUNT(e.id) as expense_count,
			c.end_date as end_date
		`).
		Joins("LEFT JOIN expenses e ON e.campaign_id = c.id AND e.is_active = ? AND e.status != ?", true, "rejected").
		Where("c.is_active = ?", true).
		Group("c.id, c.name, c.status, c.budget, c.end_date")

	if filter.CampaignID != nil {
		query = query.Where("c.id = ?", *filter.CampaignID)
	}
	if filter.StartDate != nil {
		query = query.Where("e.submitted_date >= ? OR e.id IS NULL", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("e.submitted_date <= ? OR e.id IS NULL", *filter.EndDate)
	}
	if filter.TopN > 0 {
		query = query.Order("total_expenses DESC").Limit(filter.TopN)
	}

	var results []spendResult
	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}

	spend := make([]analytics.CampaignSpend, len(results))
	for i, res := range results {
		spend[i] = analytics.CampaignSpend{
			CampaignID:    res.CampaignID,
			CampaignName:  res.CampaignName,
			Status:        res.Status,
			Budget:        res.Budget,
			TotalExpenses: res.TotalExpenses,
			ExpenseCount:  res.ExpenseCount,
			EndDate:       res.EndDate,
		}
	}
	return spend, nil
}

// DailyExpenseSeries returns day-by-day expense totals for trend charts
func (r *GormAnalyticsRepository) DailyExpenseSeries(ctx context.Context, filter analytics.Filter) ([]analytics.DailyExpensePoint, error) {
	query := r.db.WithContext(ctx).Table("expenses").
		Select(`
			DATE(submitted_date) as date,
			COALESCE(SUM(amount), 0) as total,
			COUNT(*) as count
		`).
		Where("is_active = ? AND status != ?", true, "rejected").
		Group("DATE(submitted_date)").
		Order("date ASC")

	if filter.CampaignID != nil {
		query = query.Where("campaign_id = ?", *filter.CampaignID)
	}
	if filter.StartDate != nil {
		query = query.Where("submitted_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("submitted_date <= ?", *filter.EndDate)
	}

	var results []analytics.DailyExpensePoint
	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// ExpenseSamples returns the raw expense rows anomaly detection runs over
func (r *GormAnalyticsRepository) ExpenseSamples(ctx context.Context, filter analytics.Filter) ([]analytics.ExpenseSample, error) {
	type sampleResult struct {
		ExpenseID   uuid.UUID
		CampaignID  uuid.UUID
		ExpenseType string
		Amount      decimal.Decimal
		Date        time.Time
	}

	query := r.db.WithContext(ctx).Table("expenses").
		Select("id as expense_id, campaign_id, expense_type, amount, submitted_date as date").
		Where("is_active = ? AND status != ?", true, "rejected").
		Order("submitted_date ASC")

	if filter.CampaignID != nil {
		query = query.Where("campaign_id = ?", *filter.CampaignID)
	}
	if filter.StartDate != nil {
		query = query.Where("submitted_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("submitted_date <= ?", *filter.EndDate)
	}
	if filter.TopN > 0 {
		query = query.Limit(filter.TopN)
	}

	var results []sampleResult
	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}

	samples := make([]analytics.ExpenseSample, len(results))
	for i, res := range results {
		samples[i] = analytics.ExpenseSample{
			ExpenseID:   res.ExpenseID,
			CampaignID:  res.CampaignID,
			ExpenseType: res.ExpenseType,
			Amount:      res.Amount,
			Date:        res.Date,
		}
	}
	return samples, nil
}

// CampaignActivity aggregates the field output recorded on one campaign
func (r *GormAnalyticsRepository) CampaignActivity(ctx context.Context, campaignID uuid.UUID) (*analytics.CampaignActivity, error) {
	activity := &analytics.CampaignActivity{CampaignID: campaignID}

	type reportAgg struct {
		Reports     int64
		KMTravelled float64
	}
	var rep reportAgg
	if err := r.db.WithContext(ctx).Table("reports").
		Select("COUNT(*) as reports, COALESCE(SUM(km_travelled), 0) as km_travelled").
		Where("campaign_id = ? AND is_active = ?", campaignID, true).
		Scan(&rep).Error; err != nil {
		return nil, err
	}
	activity.Reports = rep.Reports
	activity.KMTravelled = rep.KMTravelled

	type footfallAgg struct {
		Activities     int64
		PeopleAttended int64
	}
	var foot footfallAgg
	if err := r.db.WithContext(ctx).Table("promoter_activities").
		Select("COALESCE(SUM(activity_count), 0) as activities, COALESCE(SUM(people_attended), 0) as people_attended").
		Where("campaign_id = ? AND is_active = ?", campaignID, true).
		Scan(&foot).Error; err != nil {
		return nil, err
	}
	activity.Activities = foot.Activities
	activity.PeopleAttended = foot.PeopleAttended

	if err := r.db.WithContext(ctx).Model(&models.DriverAssignmentModel{}).
		Where("campaign_id = ? AND is_active = ?", campaignID, true).
		Count(&activity.Assignments).Error; err != nil {
		return nil, err
	}

	return activity, nil
}

// DriverUtilization summarizes per-driver workload over the period
func (r *GormAnalyticsRepository) DriverUtilization(ctx context.Context, filter analytics.Filter) ([]analytics.DriverUtilization, error) {
	query := r.db.WithContext(ctx).Table("drivers d").
		Select(`
			d.id as driver_id,
			d.name as driver_name,
			COUNT(DISTINCT a.id) as assignments,
			COUNT(DISTINCT CASE WHEN a.status = 'COMPLETED' THEN a.id END) as completed,
			COALESCE(SUM(DISTINCT k.total_km), 0) as total_km,
			COUNT(DISTINCT k.id) as days_with_logs
		`).
		Joins("LEFT JOIN driver_assignments a ON a.driver_id = d.id AND a.is_active = ?", true).
		Joins("LEFT JOIN daily_km_logs k ON k.driver_id = d.id AND k.is_active = ? AND k.status = ?", true, "COMPLETED").
		Where("d.is_active = ?", true).
		Group("d.id, d.name").
		Order("assignments DESC")

	if filter.StartDate != nil {
		query = query.Where("a.assignment_date >= ? OR a.id IS NULL", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("a.assignment_date <= ? OR a.id IS NULL", *filter.EndDate)
	}
	if filter.TopN > 0 {
		query = query.Limit(filter.TopN)
	}

	var results []analytics.DriverUtilization
	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// VehicleUtilization summarizes per-vehicle bookings over the period
func (r *GormAnalyticsRepository) VehicleUtilization(ctx context.Context, filter analytics.Filter) ([]analytics.VehicleUtilization, error) {
	query := r.db.WithContext(ctx).Table("vehicles v").
		Select(`
			v.id as vehicle_id,
			v.vehicle_number as vehicle_number,
			COUNT(a.id) as assignments,
			COUNT(CASE WHEN a.status = 'COMPLETED' THEN a.id END) as completed
		`).
		Joins("LEFT JOIN driver_assignments a ON a.vehicle_id = v.id AND a.is_active = ?", true).
		Where("v.is_active = ?", true).
		Group("v.id, v.vehicle_number").
		Order("assignments DESC")

	if filter.VendorID != nil {
		query = query.Where("v.vendor_id = ?", *filter.VendorID)
	}
	if filter.TopN > 0 {
		query = query.Limit(filter.TopN)
	}

	var results []analytics.VehicleUtilization
	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// VendorPerformance summarizes each vendor's billing and fleet supply
func (r *GormAnalyticsRepository) VendorPerformance(ctx context.Context, filter analytics.Filter) ([]analytics.VendorPerformance, error) {
	type perfResult struct {
		VendorID      uuid.UUID
		VendorName    string
		Invoices      int64
		PaidInvoices  int64
		InvoiceAmount decimal.Decimal
		PaidAmount    decimal.Decimal
	}

	query := r.db.WithContext(ctx).Table("vendors v").
		Select(`
			v.id as vendor_id,
			v.name as vendor_name,
			COUNT(i.id) as invoices,
			COALESCE(SUM(CASE WHEN i.status = 'paid' THEN 1 ELSE 0 END), 0) as paid_invoices,
			COALESCE(SUM(i.amount), 0) as invoice_amount,
			COALESCE(SUM(CASE WHEN i.status = 'paid' THEN i.amount ELSE 0 END), 0) as paid_amount
		`).
		Joins("LEFT JOIN invoices i ON i.vendor_id = v.id AND i.is_active = ?", true).
		Where("v.is_active = ?", true).
		Group("v.id, v.name").
		Order("invoice_amount DESC")

	if filter.VendorID != nil {
		query = query.Where("v.id = ?", *filter.VendorID)
	}
	if filter.TopN > 0 {
		query = query.Limit(filter.TopN)
	}

	var results []perfResult
	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}

	perf := make([]analytics.VendorPerformance, len(results))
	for i, res := range results {
		perf[i] = analytics.VendorPerformance{
			VendorID:      res.VendorID,
			VendorName:    res.VendorName,
			Invoices:      res.Invoices,
			PaidInvoices:  res.PaidInvoices,
			InvoiceAmount: res.InvoiceAmount,
			PaidAmount:    res.PaidAmount,
			PendingAmount: res.InvoiceAmount.Sub(res.PaidAmount),
		}

		var vehicles, drivers int64
		if err := r.db.WithContext(ctx).Model(&models.VehicleModel{}).
			Where("vendor_id = ? AND is_active = ?", res.VendorID, true).
			Count(&vehicles).Error; err != nil {
			return nil, err
		}
		if err := r.db.WithContext(ctx).Model(&models.DriverModel{}).
			Where("vendor_id = ? AND is_active = ?", res.VendorID, true).
			Count(&drivers).Error; err != nil {
			return nil, err
		}
		perf[i].Vehicles = vehicles
		perf[i].Drivers = drivers
	}
	return perf, nil
}

// Ensure GormAnalyticsRepository implements analytics.Repository
var _ analytics.Repository = (*GormAnalyticsRepository)(nil)
