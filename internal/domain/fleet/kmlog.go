package fleet

import (
	"time"

	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/google/uuid"
)

// KMLogStatus tracks a day's journey recording
type KMLogStatus string

const (
	KMLogStatusPending    KMLogStatus = "PENDING"
	KMLogStatusInProgress KMLogStatus = "IN_PROGRESS"
	KMLogStatusCompleted  KMLogStatus = "COMPLETED"
)

// DailyKMLog records one driver's journey for a day. Distance comes
// from the GPS start/end points via haversine; the manual odometer
// fields remain as a fallback for rows captured before GPS logging.
type DailyKMLog struct {
	shared.BaseEntity
	DriverID       uuid.UUID
	VehicleID      *uuid.UUID
	LogDate        time.Time
	StartPoint     *Point
	EndPoint       *Point
	StartTime      *time.Time
	EndTime        *time.Time
	StartPhotoURL  string
	EndPhotoURL    string
	StartOdometer  *float64
	EndOdometer    *float64
	TotalKM        *float64
	Status         KMLogStatus
	Remarks        string
}

// NewDailyKMLog opens a pending KM log for a driver and date
func NewDailyKMLog(driverID uuid.UUID, logDate time.Time) (*DailyKMLog, error) {
	if driverID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "KM log requires a driver")
	}
	if logDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "KM log date is required")
	}
	return &DailyKMLog{
		BaseEntity: shared.NewBaseEntity(),
		DriverID:   driverID,
		LogDate:    logDate,
		Status:     KMLogStatusPending,
	}, nil
}

// StartJourney records the GPS start point and moves the log to
// IN_PROGRESS.
func (l *DailyKMLog) StartJourney(at Point, when time.Time) error {
	if l.Status != KMLogStatusPending {
		return shared.ErrInvalidState
	}
	if err := at.Validate(); err != nil {
		return err
	}
	l.StartPoint = &at
	l.StartTime = &when
	l.Status = KMLogStatusInProgress
	l.Touch()
	return nil
}

// EndJourney records the GPS end point, computes the haversine
// distance and completes the log. When GPS points are missing the
// manual odometer delta is used instead.
func (l *DailyKMLog) EndJourney(at Point, when time.Time) error {
	if l.Status != KMLogStatusInProgress {
		return shared.ErrInvalidState
	}
	if err := at.Validate(); err != nil {
		return err
	}
	l.EndPoint = &at
	l.EndTime = &when

	if l.StartPoint != nil {
		km, err := HaversineKM(*l.StartPoint, at)
		if err != nil {
			return err
		}
		l.TotalKM = &km
	} else if l.StartOdometer != nil && l.EndOdometer != nil {
		km := *l.EndOdometer - *l.StartOdometer
		if km < 0 {
			return shared.NewDomainError("INVALID_INPUT", "End odometer cannot be lower than start odometer")
		}
		l.TotalKM = &km
	}

	l.Status = KMLogStatusCompleted
	l.Touch()
	return nil
}
