package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Pratul75/report360/internal/domain/crm"
	"github.com/Pratul75/report360/internal/domain/finance"
	"github.com/Pratul75/report360/internal/domain/fleet"
	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/Pratul75/report360/internal/infrastructure/persistence/models"
)

// clientTree holds the IDs of a seeded client hierarchy
type clientTree struct {
	ClientID    uuid.UUID
	ProjectIDs  []uuid.UUID
	CampaignIDs []uuid.UUID
}

// seedClientTree creates a client with two projects, three campaigns
// and one dependent row of each campaign-scoped type.
func seedClientTree(t *testing.T, db *gorm.DB, name string) clientTree {
	t.Helper()
	ctx := context.Background()

	client, err := crm.NewClient(name, name+" Pvt Ltd", "", "")
	require.NoError(t, err)
	require.NoError(t, NewGormClientRepository(db).Save(ctx, client))

	projects := NewGormProjectRepository(db)
	campaigns := NewGormCampaignRepository(db)

	tree := clientTree{ClientID: client.ID}
	for i := 0; i < 2; i++ {
		project, err := crm.NewProject(client.ID, name+" project", decimal.NewFromInt(100000))
		require.NoError(t, err)
		require.NoError(t, projects.Save(ctx, project))
		tree.ProjectIDs = append(tree.ProjectIDs, project.ID)
	}

	campaignCounts := []int{2, 1}
	for i, projectID := range tree.ProjectIDs {
		for j := 0; j < campaignCounts[i]; j++ {
			campaign, err := crm.NewCampaign(projectID, name+" campaign", crm.CampaignTypeOther, decimal.NewFromInt(20000))
			require.NoError(t, err)
			require.NoError(t, campaigns.Save(ctx, campaign))
			tree.CampaignIDs = append(tree.CampaignIDs, campaign.ID)
		}
	}

	campaignID := tree.CampaignIDs[0]

	expense, err := finance.NewExpense(campaignID, "fuel", decimal.NewFromInt(1500))
	require.NoError(t, err)
	require.NoError(t, NewGormExpenseRepository(db).Save(ctx, expense))

	report, err := crm.NewReport(campaignID, time.Now())
	require.NoError(t, err)
	require.NoError(t, NewGormReportRepository(db).Save(ctx, report))

	vendor, err := fleet.NewVendor(name+" fleet", "Pune", "transport")
	require.NoError(t, err)
	require.NoError(t, NewGormVendorRepository(db).Save(ctx, vendor))

	invoice, err := finance.NewInvoice(vendor.ID, "INV-"+name, decimal.NewFromInt(5000), time.Now())
	require.NoError(t, err)
	invoice.CampaignID = &campaignID
	require.NoError(t, NewGormInvoiceRepository(db).Save(ctx, invoice))

	promoter, err := crm.NewPromoter(name+" promoter", "9000000001")
	require.NoError(t, err)
	promoters := NewGormPromoterRepository(db)
	require.NoError(t, promoters.Save(ctx, promoter))

	activity, err := crm.NewPromoterActivity(promoter.ID, campaignID, promoter.Name, "Wagholi", time.Now())
	require.NoError(t, err)
	require.NoError(t, NewGormPromoterActivityRepository(db).Save(ctx, activity))

	driver, err := fleet.NewDriver(name+" driver", "9000000002")
	require.NoError(t, err)
	require.NoError(t, NewGormDriverRepository(db).Save(ctx, driver))

	assignment, err := fleet.NewDriverAssignment(driver.ID, campaignID, time.Now(), "Village rounds")
	require.NoError(t, err)
	require.NoError(t, NewGormAssignmentRepository(db).Save(ctx, assignment))

	return tree
}

// activeCount counts active rows of the given model
func activeCount(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Where("is_active = ?", true).Count(&count).Error)
	return count
}

func TestGormClientRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormClientRepository(db)
	ctx := context.Background()

	t.Run("saves and finds client", func(t *testing.T) {
		client, err := crm.NewClient("Acme Agro", "Acme Agro Pvt Ltd", "ops@acme.in", "020-1234")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, client))

		found, err := repo.FindByID(ctx, client.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Agro", found.Name)
		assert.Equal(t, "ops@acme.in", found.Email)
		assert.True(t, found.IsActive)
	})

	t.Run("returns ErrNotFound for unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("search matches case-insensitively", func(t *testing.T) {
		client, err := crm.NewClient("Bharat Beverages", "", "", "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, client))

		filter := shared.DefaultFilter()
		filter.Search = "bharat"
		found, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, client.ID, found[0].ID)
	})

	t.Run("list excludes soft-deleted clients", func(t *testing.T) {
		client, err := crm.NewClient("Short Lived", "", "", "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, client))
		require.NoError(t, repo.Delete(ctx, client.ID))

		filter := shared.DefaultFilter()
		filter.Search = "short lived"
		found, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Empty(t, found)

		filter.IncludeInactive = true
		found, err = repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})

	t.Run("delete of missing client returns ErrNotFound", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), shared.ErrNotFound)
	})
}

func TestGormClientRepository_DeletionPreview(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormClientRepository(db)
	ctx := context.Background()

	tree := seedClientTree(t, db, "Preview")

	counts, err := repo.DeletionPreview(ctx, tree.ClientID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), counts.Projects)
	assert.Equal(t, int64(3), counts.Campaigns)
	assert.Equal(t, int64(1), counts.Expenses)
	assert.Equal(t, int64(1), counts.Reports)
	assert.Equal(t, int64(1), counts.Invoices)
	assert.Equal(t, int64(1), counts.PromoterActivities)
	assert.Equal(t, int64(1), counts.DriverAssignments)
	assert.Equal(t, int64(10), counts.Total())

	// Preview must not mutate anything.
	found, err := repo.FindByID(ctx, tree.ClientID)
	require.NoError(t, err)
	assert.True(t, found.IsActive)
	assert.Equal(t, int64(2), activeCount(t, db, &models.ProjectModel{}))
	assert.Equal(t, int64(3), activeCount(t, db, &models.CampaignModel{}))
}

func TestGormClientRepository_CascadeDeactivate(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormClientRepository(db)
	ctx := context.Background()

	target := seedClientTree(t, db, "Target")
	other := seedClientTree(t, db, "Bystander")

	t.Run("deactivates the whole tree", func(t *testing.T) {
		counts, err := repo.CascadeDeactivate(ctx, target.ClientID)
		require.NoError(t, err)

		assert.Equal(t, int64(2), counts.Projects)
		assert.Equal(t, int64(3), counts.Campaigns)
		assert.Equal(t, int64(1), counts.Expenses)
		assert.Equal(t, int64(1), counts.Reports)
		assert.Equal(t, int64(1), counts.Invoices)
		assert.Equal(t, int64(1), counts.PromoterActivities)
		assert.Equal(t, int64(1), counts.DriverAssignments)

		found, err := repo.FindByID(ctx, target.ClientID)
		require.NoError(t, err)
		assert.False(t, found.IsActive)

		for _, projectID := range target.ProjectIDs {
			var model models.ProjectModel
			require.NoError(t, db.First(&model, "id = ?", projectID).Error)
			assert.False(t, model.IsActive)
		}
		for _, campaignID := range target.CampaignIDs {
			var model models.CampaignModel
			require.NoError(t, db.First(&model, "id = ?", campaignID).Error)
			assert.False(t, model.IsActive)
		}

		var expense models.ExpenseModel
		require.NoError(t, db.First(&expense, "campaign_id = ?", target.CampaignIDs[0]).Error)
		assert.False(t, expense.IsActive)
	})

	t.Run("leaves other clients untouched", func(t *testing.T) {
		found, err := repo.FindByID(ctx, other.ClientID)
		require.NoError(t, err)
		assert.True(t, found.IsActive)

		// One full tree survives: 2 projects, 3 campaigns, 1 of each leaf.
		assert.Equal(t, int64(2), activeCount(t, db, &models.ProjectModel{}))
		assert.Equal(t, int64(3), activeCount(t, db, &models.CampaignModel{}))
		assert.Equal(t, int64(1), activeCount(t, db, &models.ExpenseModel{}))
		assert.Equal(t, int64(1), activeCount(t, db, &models.ReportModel{}))
		assert.Equal(t, int64(1), activeCount(t, db, &models.InvoiceModel{}))
		assert.Equal(t, int64(1), activeCount(t, db, &models.PromoterActivityModel{}))
		assert.Equal(t, int64(1), activeCount(t, db, &models.DriverAssignmentModel{}))
	})

	t.Run("second cascade on same client returns ErrNotFound", func(t *testing.T) {
		_, err := repo.CascadeDeactivate(ctx, target.ClientID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("unknown client returns ErrNotFound", func(t *testing.T) {
		_, err := repo.CascadeDeactivate(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
