package fleet

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/crm"
	"github.com/Pratul75/report360/internal/domain/fleet"
	"github.com/Pratul75/report360/internal/domain/shared"
)

// AssignmentService handles driver assignments and their approval and
// work lifecycle.
type AssignmentService struct {
	assignmentRepo fleet.AssignmentRepository
	driverRepo     fleet.DriverRepository
	campaignRepo   crm.CampaignRepository
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(
	assignmentRepo fleet.AssignmentRepository,
	driverRepo fleet.DriverRepository,
	campaignRepo crm.CampaignRepository,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		driverRepo:     driverRepo,
		campaignRepo:   campaignRepo,
	}
}

// Create books a driver onto a campaign, pending the driver's approval
func (s *AssignmentService) Create(ctx context.Context, req CreateAssignmentRequest) (*AssignmentResponse, error) {
	driver, err := s.driverRepo.FindByID(ctx, req.DriverID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Driver not found")
		}
		return nil, err
	}
	if !driver.IsActive {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot assign a deactivated driver")
	}
	campaign, err := s.campaignRepo.FindByID(ctx, req.CampaignID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Campaign not found")
		}
		return nil, err
	}
	if !campaign.IsActive {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot assign a driver to a deactivated campaign")
	}

	assignment, err := fleet.NewDriverAssignment(req.DriverID, req.CampaignID, req.AssignmentDate, req.WorkTitle)
	if err != nil {
		return nil, err
	}
	assignment.ProjectID = req.ProjectID
	assignment.VehicleID = req.VehicleID
	assignment.ExpectedStart = req.ExpectedStart
	assignment.ExpectedEnd = req.ExpectedEnd
	assignment.WorkDescription = req.WorkDescription
	assignment.Village = req.Village
	assignment.Address = req.Address
	assignment.AssignedBy = req.AssignedBy

	if err := s.assignmentRepo.Save(ctx, assignment); err != nil {
		return nil, err
	}

	response := ToAssignmentResponse(assignment)
	return &response, nil
}

// GetByID retrieves an assignment by ID
func (s *AssignmentService) GetByID(ctx context.Context, assignmentID uuid.UUID) (*AssignmentResponse, error) {
	assignment, err := s.assignmentRepo.FindByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	response := ToAssignmentResponse(assignment)
	return &response, nil
}

// List retrieves assignments with filtering and pagination
func (s *AssignmentService) List(ctx context.Context, filter ListFilter) ([]AssignmentResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	assignments, err := s.assignmentRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.assignmentRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToAssignmentResponses(assignments), total, nil
}

// ListByDriver retrieves a driver's assignments
func (s *AssignmentService) ListByDriver(ctx context.Context, driverID uuid.UUID, filter ListFilter) ([]AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.FindByDriver(ctx, driverID, filter.toDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToAssignmentResponses(assignments), nil
}

// ListByCampaign retrieves a campaign's assignments
func (s *AssignmentService) ListByCampaign(ctx context.Context, campaignID uuid.UUID, filter ListFilter) ([]AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.FindByCampaign(ctx, campaignID, filter.toDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToAssignmentResponses(assignments), nil
}

// Approve records the driver accepting the assignment
func (s *AssignmentService) Approve(ctx context.Context, assignmentID uuid.UUID) (*AssignmentResponse, error) {
	return s.transition(ctx, assignmentID, func(a *fleet.DriverAssignment) error {
		return a.Approve()
	})
}

// Reject records the driver declining the assignment
func (s *AssignmentService) Reject(ctx context.Context, assignmentID uuid.UUID, req RejectAssignmentRequest) (*AssignmentResponse, error) {
	return s.transition(ctx, assignmentID, func(a *fleet.DriverAssignment) error {
		return a.Reject(req.Reason)
	})
}

// Start marks the assignment's work as begun
func (s *AssignmentService) Start(ctx context.Context, assignmentID uuid.UUID) (*AssignmentResponse, error) {
	return s.transition(ctx, assignmentID, func(a *fleet.DriverAssignment) error {
		return a.Start()
	})
}

// Complete marks the assignment's work as finished
func (s *AssignmentService) Complete(ctx context.Context, assignmentID uuid.UUID) (*AssignmentResponse, error) {
	return s.transition(ctx, assignmentID, func(a *fleet.DriverAssignment) error {
		return a.Complete()
	})
}

// Cancel aborts the assignment
func (s *AssignmentService) Cancel(ctx context.Context, assignmentID uuid.UUID) (*AssignmentResponse, error) {
	return s.transition(ctx, assignmentID, func(a *fleet.DriverAssignment) error {
		return a.Cancel()
	})
}

// Delete soft-deletes an assignment
func (s *AssignmentService) Delete(ctx context.Context, assignmentID uuid.UUID) error {
	return s.assignmentRepo.Delete(ctx, assignmentID)
}

func (s *AssignmentService) transition(ctx context.Context, assignmentID uuid.UUID, apply func(*fleet.DriverAssignment) error) (*AssignmentResponse, error) {
	assignment, err := s.assignmentRepo.FindByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if err := apply(assignment); err != nil {
		return nil, err
	}
	if err := s.assignmentRepo.Save(ctx, assignment); err != nil {
		return nil, err
	}
	response := ToAssignmentResponse(assignment)
	return &response, nil
}
