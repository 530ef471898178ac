package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Pratul75/report360/internal/infrastructure/persistence/models"
)

// newTestDB opens an in-memory SQLite database with the full schema
// migrated. Each call returns an isolated database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.RoleGrantModel{},
		&models.ClientModel{},
		&models.ProjectModel{},
		&models.CampaignModel{},
		&models.ReportModel{},
		&models.PromoterModel{},
		&models.PromoterActivityModel{},
		&models.VendorModel{},
		&models.VehicleModel{},
		&models.DriverModel{},
		&models.DriverProfileModel{},
		&models.DriverAssignmentModel{},
		&models.DailyKMLogModel{},
		&models.DailyActivityLogModel{},
		&models.ExpenseModel{},
		&models.InvoiceModel{},
		&models.PaymentModel{},
		&models.GodownModel{},
		&models.ItemModel{},
	)
	require.NoError(t, err)

	return db
}
