package fleet

import (
	"time"

	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/google/uuid"
)

// DailyActivityLog is a driver's free-form log of a day's field work
// under an assignment: villages covered, photos, a GPS fix and any
// extra structured details.
type DailyActivityLog struct {
	shared.BaseEntity
	AssignmentID uuid.UUID
	CreatedBy    *uuid.UUID
	LogDate      time.Time
	Details      string
	Villages     []string
	ImageURLs    []string
	Location     *Point
	Extra        map[string]interface{}
}

// NewDailyActivityLog creates an activity log entry for an assignment
func NewDailyActivityLog(assignmentID uuid.UUID, logDate time.Time, details string) (*DailyActivityLog, error) {
	if assignmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Activity log requires an assignment")
	}
	if logDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Activity log date is required")
	}
	return &DailyActivityLog{
		BaseEntity:   shared.NewBaseEntity(),
		AssignmentID: assignmentID,
		LogDate:      logDate,
		Details:      details,
	}, nil
}

// PinLocation records the GPS fix for the log entry
func (l *DailyActivityLog) PinLocation(p Point) error {
	if err := p.Validate(); err != nil {
		return err
	}
	l.Location = &p
	l.Touch()
	return nil
}
