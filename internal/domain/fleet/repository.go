package fleet

import (
	"context"
	"time"

	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/google/uuid"
)

// VendorRepository persists vendors
type VendorRepository interface {
	shared.Repository[Vendor]
	FindByStatus(ctx context.Context, status VendorStatus, filter shared.Filter) ([]Vendor, error)
}

// VehicleRepository persists vehicles
type VehicleRepository interface {
	shared.Repository[Vehicle]
	FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Vehicle, error)
	FindByNumber(ctx context.Context, vehicleNumber string) (*Vehicle, error)
	ExistsByNumber(ctx context.Context, vehicleNumber string) (bool, error)
}

// DriverRepository persists drivers and their profiles
type DriverRepository interface {
	shared.Repository[Driver]
	FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Driver, error)
	FindProfile(ctx context.Context, driverID uuid.UUID) (*DriverProfile, error)
	SaveProfile(ctx context.Context, profile *DriverProfile) error
}

// AssignmentRepository persists driver assignments
type AssignmentRepository interface {
	shared.Repository[DriverAssignment]
	FindByDriver(ctx context.Context, driverID uuid.UUID, filter shared.Filter) ([]DriverAssignment, error)
	FindByCampaign(ctx context.Context, campaignID uuid.UUID, filter shared.Filter) ([]DriverAssignment, error)
	CountByStatus(ctx context.Context, status AssignmentStatus) (int64, error)
}

// KMLogRepository persists daily KM logs
type KMLogRepository interface {
	shared.Repository[DailyKMLog]
	FindByDriverAndDate(ctx context.Context, driverID uuid.UUID, date time.Time) (*DailyKMLog, error)
	FindByDriver(ctx context.Context, driverID uuid.UUID, filter shared.Filter) ([]DailyKMLog, error)
}

// ActivityLogRepository persists daily activity logs
type ActivityLogRepository interface {
	shared.Repository[DailyActivityLog]
	FindByAssignment(ctx context.Context, assignmentID uuid.UUID, filter shared.Filter) ([]DailyActivityLog, error)
}
