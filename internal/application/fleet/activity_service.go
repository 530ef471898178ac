package fleet

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/fleet"
	"github.com/Pratul75/report360/internal/domain/shared"
)

// ActivityLogService handles a driver's free-form daily activity logs
type ActivityLogService struct {
	activityRepo   fleet.ActivityLogRepository
	assignmentRepo fleet.AssignmentRepository
}

// NewActivityLogService creates a new ActivityLogService
func NewActivityLogService(activityRepo fleet.ActivityLogRepository, assignmentRepo fleet.AssignmentRepository) *ActivityLogService {
	return &ActivityLogService{
		activityRepo:   activityRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Create files a day's activity under an assignment
func (s *ActivityLogService) Create(ctx context.Context, req CreateActivityLogRequest) (*ActivityLogResponse, error) {
	if _, err := s.assignmentRepo.FindByID(ctx, req.AssignmentID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Assignment not found")
		}
		return nil, err
	}

	log, err := fleet.NewDailyActivityLog(req.AssignmentID, req.LogDate, req.Details)
	if err != nil {
		return nil, err
	}
	log.Villages = req.Villages
	log.ImageURLs = req.ImageURLs
	log.Extra = req.Extra
	log.CreatedBy = req.CreatedBy
	if req.Latitude != nil && req.Longitude != nil {
		if err := log.PinLocation(fleet.Point{Latitude: *req.Latitude, Longitude: *req.Longitude}); err != nil {
			return nil, err
		}
	}

	if err := s.activityRepo.Save(ctx, log); err != nil {
		return nil, err
	}

	response := ToActivityLogResponse(log)
	return &response, nil
}

// GetByID retrieves an activity log by ID
func (s *ActivityLogService) GetByID(ctx context.Context, logID uuid.UUID) (*ActivityLogResponse, error) {
	log, err := s.activityRepo.FindByID(ctx, logID)
	if err != nil {
		return nil, err
	}
	response := ToActivityLogResponse(log)
	return &response, nil
}

// List retrieves activity logs with filtering and pagination
func (s *ActivityLogService) List(ctx context.Context, filter ListFilter) ([]ActivityLogResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	logs, err := s.activityRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.activityRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToActivityLogResponses(logs), total, nil
}

// ListByAssignment retrieves an assignment's activity logs
func (s *ActivityLogService) ListByAssignment(ctx context.Context, assignmentID uuid.UUID, filter ListFilter) ([]ActivityLogResponse, error) {
	logs, err := s.activityRepo.FindByAssignment(ctx, assignmentID, filter.toDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToActivityLogResponses(logs), nil
}

// Delete soft-deletes an activity log
func (s *ActivityLogService) Delete(ctx context.Context, logID uuid.UUID) error {
	return s.activityRepo.Delete(ctx, logID)
}
