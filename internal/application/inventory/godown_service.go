package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/inventory"
)

// GodownService handles warehouse CRUD
type GodownService struct {
	godownRepo inventory.GodownRepository
}

// NewGodownService creates a new GodownService
func NewGodownService(godownRepo inventory.GodownRepository) *GodownService {
	return &GodownService{godownRepo: godownRepo}
}

// Create registers a godown
func (s *GodownService) Create(ctx context.Context, req CreateGodownRequest) (*GodownResponse, error) {
	godown, err := inventory.NewGodown(req.Name, req.Location)
	if err != nil {
		return nil, err
	}
	godown.Manager = req.Manager
	godown.Contact = req.Contact
	godown.Remarks = req.Remarks

	if err := s.godownRepo.Save(ctx, godown); err != nil {
		return nil, err
	}

	response := ToGodownResponse(godown)
	return &response, nil
}

// GetByID retrieves a godown by ID
func (s *GodownService) GetByID(ctx context.Context, godownID uuid.UUID) (*GodownResponse, error) {
	godown, err := s.godownRepo.FindByID(ctx, godownID)
	if err != nil {
		return nil, err
	}
	response := ToGodownResponse(godown)
	return &response, nil
}

// List retrieves godowns with filtering and pagination
func (s *GodownService) List(ctx context.Context, filter ListFilter) ([]GodownResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	godowns, err := s.godownRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.godownRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToGodownResponses(godowns), total, nil
}

// Update updates a godown
func (s *GodownService) Update(ctx context.Context, godownID uuid.UUID, req UpdateGodownRequest) (*GodownResponse, error) {
	godown, err := s.godownRepo.FindByID(ctx, godownID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		godown.Name = *req.Name
	}
	if req.Location != nil {
		godown.Location = *req.Location
	}
	if req.Manager != nil {
		godown.Manager = *req.Manager
	}
	if req.Contact != nil {
		godown.Contact = *req.Contact
	}
	if req.Remarks != nil {
		godown.Remarks = *req.Remarks
	}
	godown.Touch()

	if err := s.godownRepo.Save(ctx, godown); err != nil {
		return nil, err
	}

	response := ToGodownResponse(godown)
	return &response, nil
}

// Delete soft-deletes a godown
func (s *GodownService) Delete(ctx context.Context, godownID uuid.UUID) error {
	return s.godownRepo.Delete(ctx, godownID)
}
