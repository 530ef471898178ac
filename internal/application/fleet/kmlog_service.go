package fleet

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/fleet"
	"github.com/Pratul75/report360/internal/domain/shared"
)

// KMLogService handles daily GPS journey logs. One log per driver per
// day; distance comes from the haversine of the start and end points.
type KMLogService struct {
	kmLogRepo  fleet.KMLogRepository
	driverRepo fleet.DriverRepository
}

// NewKMLogService creates a new KMLogService
func NewKMLogService(kmLogRepo fleet.KMLogRepository, driverRepo fleet.DriverRepository) *KMLogService {
	return &KMLogService{
		kmLogRepo:  kmLogRepo,
		driverRepo: driverRepo,
	}
}

// StartJourney opens the driver's log for the day and records the GPS
// start point. A pending log left from an earlier attempt is reused;
// a log already in progress or completed cannot be restarted.
func (s *KMLogService) StartJourney(ctx context.Context, req StartJourneyRequest) (*KMLogResponse, error) {
	driver, err := s.driverRepo.FindByID(ctx, req.DriverID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Driver not found")
		}
		return nil, err
	}
	if !driver.IsActive {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot start a journey for a deactivated driver")
	}

	now := time.Now()
	logDate := now
	if req.LogDate != nil {
		logDate = *req.LogDate
	}

	log, err := s.kmLogRepo.FindByDriverAndDate(ctx, req.DriverID, logDate)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		log, err = fleet.NewDailyKMLog(req.DriverID, logDate)
		if err != nil {
			return nil, err
		}
	}
	if log.Status != fleet.KMLogStatusPending {
		return nil, shared.NewDomainError("INVALID_STATE", "Journey for this day has already been started")
	}

	if req.VehicleID != nil {
		log.VehicleID = req.VehicleID
	} else if driver.VehicleID != nil {
		log.VehicleID = driver.VehicleID
	}
	log.StartPhotoURL = req.StartPhotoURL
	log.StartOdometer = req.StartOdometer

	if err := log.StartJourney(fleet.Point{Latitude: req.Latitude, Longitude: req.Longitude}, now); err != nil {
		return nil, err
	}
	if err := s.kmLogRepo.Save(ctx, log); err != nil {
		return nil, err
	}

	response := ToKMLogResponse(log)
	return &response, nil
}

// EndJourney closes a log with the GPS end point and computes the
// day's distance.
func (s *KMLogService) EndJourney(ctx context.Context, logID uuid.UUID, req EndJourneyRequest) (*KMLogResponse, error) {
	log, err := s.kmLogRepo.FindByID(ctx, logID)
	if err != nil {
		return nil, err
	}

	log.EndPhotoURL = req.EndPhotoURL
	if req.EndOdometer != nil {
		log.EndOdometer = req.EndOdometer
	}
	if req.Remarks != "" {
		log.Remarks = req.Remarks
	}

	if err := log.EndJourney(fleet.Point{Latitude: req.Latitude, Longitude: req.Longitude}, time.Now()); err != nil {
		return nil, err
	}
	if err := s.kmLogRepo.Save(ctx, log); err != nil {
		return nil, err
	}

	response := ToKMLogResponse(log)
	return &response, nil
}

// GetByID retrieves a KM log by ID
func (s *KMLogService) GetByID(ctx context.Context, logID uuid.UUID) (*KMLogResponse, error) {
	log, err := s.kmLogRepo.FindByID(ctx, logID)
	if err != nil {
		return nil, err
	}
	response := ToKMLogResponse(log)
	return &response, nil
}

// GetByDriverAndDate retrieves a driver's log for a day
func (s *KMLogService) GetByDriverAndDate(ctx context.Context, driverID uuid.UUID, date time.Time) (*KMLogResponse, error) {
	log, err := s.kmLogRepo.FindByDriverAndDate(ctx, driverID, date)
	if err != nil {
		return nil, err
	}
	response := ToKMLogResponse(log)
	return &response, nil
}

// List retrieves KM logs with filtering and pagination
func (s *KMLogService) List(ctx context.Context, filter ListFilter) ([]KMLogResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	logs, err := s.kmLogRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.kmLogRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToKMLogResponses(logs), total, nil
}

// ListByDriver retrieves a driver's KM logs
func (s *KMLogService) ListByDriver(ctx context.Context, driverID uuid.UUID, filter ListFilter) ([]KMLogResponse, error) {
	logs, err := s.kmLogRepo.FindByDriver(ctx, driverID, filter.toDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToKMLogResponses(logs), nil
}
