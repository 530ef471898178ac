package crm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Pratul75/report360/internal/domain/crm"
	"github.com/Pratul75/report360/internal/domain/shared"
)

// ProjectService handles project CRUD
type ProjectService struct {
	projectRepo crm.ProjectRepository
	clientRepo  crm.ClientRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo crm.ProjectRepository, clientRepo crm.ClientRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		clientRepo:  clientRepo,
	}
}

// Create creates a project under an active client
func (s *ProjectService) Create(ctx context.Context, req CreateProjectRequest) (*ProjectResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Client not found")
		}
		return nil, err
	}
	if !client.IsActive {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot create a project under a deactivated client")
	}

	budget := decimal.Zero
	if req.Budget != nil {
		budget = *req.Budget
	}
	project, err := crm.NewProject(req.ClientID, req.Name, budget)
	if err != nil {
		return nil, err
	}
	project.Description = req.Description
	if req.StartDate != nil || req.EndDate != nil {
		if err := project.SetSchedule(req.StartDate, req.EndDate); err != nil {
			return nil, err
		}
	}
	if req.AssignedCS != nil {
		project.AssignServicing(*req.AssignedCS)
	}

	if err := s.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}

	response := ToProjectResponse(project)
	return &response, nil
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(ctx context.Context, projectID uuid.UUID) (*ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	response := ToProjectResponse(project)
	return &response, nil
}

// List retrieves projects with filtering and pagination
func (s *ProjectService) List(ctx context.Context, filter ListFilter) ([]ProjectResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	projects, err := s.projectRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.projectRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProjectResponses(projects), total, nil
}

// ListByClient retrieves a client's projects
func (s *ProjectService) ListByClient(ctx context.Context, clientID uuid.UUID, filter ListFilter) ([]ProjectResponse, error) {
	projects, err := s.projectRepo.FindByClient(ctx, clientID, filter.toDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToProjectResponses(projects), nil
}

// Update updates a project
func (s *ProjectService) Update(ctx context.Context, projectID uuid.UUID, req UpdateProjectRequest) (*ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Budget != nil {
		if req.Budget.IsNegative() {
			return nil, shared.NewDomainError("INVALID_INPUT", "Project budget cannot be negative")
		}
		project.Budget = *req.Budget
	}
	if req.StartDate != nil || req.EndDate != nil {
		start := project.StartDate
		end := project.EndDate
		if req.StartDate != nil {
			start = req.StartDate
		}
		if req.EndDate != nil {
			end = req.EndDate
		}
		if err := project.SetSchedule(start, end); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := project.ChangeStatus(crm.ProjectStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.AssignedCS != nil {
		project.AssignServicing(*req.AssignedCS)
	}
	project.Touch()

	if err := s.projectRepo.Save(ctx, project); err != nil {
		return nil, err
	}

	response := ToProjectResponse(project)
	return &response, nil
}

// Delete soft-deletes a project
func (s *ProjectService) Delete(ctx context.Context, projectID uuid.UUID) error {
	return s.projectRepo.Delete(ctx, projectID)
}
