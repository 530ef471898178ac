package crm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Pratul75/report360/internal/domain/crm"
	"github.com/Pratul75/report360/internal/domain/shared"
)

// CampaignService handles campaign CRUD and lifecycle transitions
type CampaignService struct {
	campaignRepo crm.CampaignRepository
	projectRepo  crm.ProjectRepository
}

// NewCampaignService creates a new CampaignService
func NewCampaignService(campaignRepo crm.CampaignRepository, projectRepo crm.ProjectRepository) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		projectRepo:  projectRepo,
	}
}

// Create creates a campaign under an active project
func (s *CampaignService) Create(ctx context.Context, req CreateCampaignRequest) (*CampaignResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Project not found")
		}
		return nil, err
	}
	if !project.IsActive {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot create a campaign under a deactivated project")
	}

	budget := decimal.Zero
	if req.Budget != nil {
		budget = *req.Budget
	}
	campaign, err := crm.NewCampaign(req.ProjectID, req.Name, crm.CampaignType(req.Type), budget)
	if err != nil {
		return nil, err
	}
	campaign.Locations = req.Locations
	if req.StartDate != nil || req.EndDate != nil {
		if err := campaign.SetSchedule(req.StartDate, req.EndDate); err != nil {
			return nil, err
		}
	}

	if err := s.campaignRepo.Save(ctx, campaign); err != nil {
		return nil, err
	}

	response := ToCampaignResponse(campaign)
	return &response, nil
}

// GetByID retrieves a campaign by ID
func (s *CampaignService) GetByID(ctx context.Context, campaignID uuid.UUID) (*CampaignResponse, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	response := ToCampaignResponse(campaign)
	return &response, nil
}

// List retrieves campaigns with filtering and pagination
func (s *CampaignService) List(ctx context.Context, filter ListFilter) ([]CampaignResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	campaigns, err := s.campaignRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.campaignRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToCampaignResponses(campaigns), total, nil
}

// ListByProject retrieves a project's campaigns
func (s *CampaignService) ListByProject(ctx context.Context, projectID uuid.UUID, filter ListFilter) ([]CampaignResponse, error) {
	campaigns, err := s.campaignRepo.FindByProject(ctx, projectID, filter.toDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToCampaignResponses(campaigns), nil
}

// Update updates a campaign's editable fields. Status moves through
// ChangeStatus, not here.
func (s *CampaignService) Update(ctx context.Context, campaignID uuid.UUID, req UpdateCampaignRequest) (*CampaignResponse, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		campaign.Name = *req.Name
	}
	if req.Budget != nil {
		if req.Budget.IsNegative() {
			return nil, shared.NewDomainError("INVALID_INPUT", "Campaign budget cannot be negative")
		}
		campaign.Budget = *req.Budget
	}
	if req.Locations != nil {
		campaign.Locations = *req.Locations
	}
	if req.StartDate != nil || req.EndDate != nil {
		start := campaign.StartDate
		end := campaign.EndDate
		if req.StartDate != nil {
			start = req.StartDate
		}
		if req.EndDate != nil {
			end = req.EndDate
		}
		if err := campaign.SetSchedule(start, end); err != nil {
			return nil, err
		}
	}
	campaign.Touch()

	if err := s.campaignRepo.Save(ctx, campaign); err != nil {
		return nil, err
	}

	response := ToCampaignResponse(campaign)
	return &response, nil
}

// ChangeStatus moves a campaign along its lifecycle
func (s *CampaignService) ChangeStatus(ctx context.Context, campaignID uuid.UUID, req ChangeCampaignStatusRequest) (*CampaignResponse, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	if err := campaign.ChangeStatus(crm.CampaignStatus(req.Status)); err != nil {
		return nil, err
	}
	if err := s.campaignRepo.Save(ctx, campaign); err != nil {
		return nil, err
	}

	response := ToCampaignResponse(campaign)
	return &response, nil
}

// Delete soft-deletes a campaign
func (s *CampaignService) Delete(ctx context.Context, campaignID uuid.UUID) error {
	return s.campaignRepo.Delete(ctx, campaignID)
}
