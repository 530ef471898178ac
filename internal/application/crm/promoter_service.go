package crm

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/crm"
	"github.com/Pratul75/report360/internal/domain/shared"
)

// PromoterService handles promoters and their daily activity entries
type PromoterService struct {
	promoterRepo crm.PromoterRepository
	activityRepo crm.PromoterActivityRepository
	campaignRepo crm.CampaignRepository
}

// NewPromoterService creates a new PromoterService
func NewPromoterService(
	promoterRepo crm.PromoterRepository,
	activityRepo crm.PromoterActivityRepository,
	campaignRepo crm.CampaignRepository,
) *PromoterService {
	return &PromoterService{
		promoterRepo: promoterRepo,
		activityRepo: activityRepo,
		campaignRepo: campaignRepo,
	}
}

// Create registers a promoter
func (s *PromoterService) Create(ctx context.Context, req CreatePromoterRequest) (*PromoterResponse, error) {
	promoter, err := crm.NewPromoter(req.Name, req.Phone)
	if err != nil {
		return nil, err
	}
	promoter.Email = req.Email
	promoter.Specialty = req.Specialty
	promoter.Language = req.Language

	if err := s.promoterRepo.Save(ctx, promoter); err != nil {
		return nil, err
	}

	response := ToPromoterResponse(promoter)
	return &response, nil
}

// GetByID retrieves a promoter by ID
func (s *PromoterService) GetByID(ctx context.Context, promoterID uuid.UUID) (*PromoterResponse, error) {
	promoter, err := s.promoterRepo.FindByID(ctx, promoterID)
	if err != nil {
		return nil, err
	}
	response := ToPromoterResponse(promoter)
	return &response, nil
}

// List retrieves promoters with filtering and pagination
func (s *PromoterService) List(ctx context.Context, filter ListFilter) ([]PromoterResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	promoters, err := s.promoterRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.promoterRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPromoterResponses(promoters), total, nil
}

// Update updates a promoter
func (s *PromoterService) Update(ctx context.Context, promoterID uuid.UUID, req UpdatePromoterRequest) (*PromoterResponse, error) {
	promoter, err := s.promoterRepo.FindByID(ctx, promoterID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		promoter.Name = *req.Name
	}
	if req.Phone != nil {
		promoter.Phone = *req.Phone
	}
	if req.Email != nil {
		promoter.Email = *req.Email
	}
	if req.Specialty != nil {
		promoter.Specialty = *req.Specialty
	}
	if req.Language != nil {
		promoter.Language = *req.Language
	}
	promoter.Touch()

	if err := s.promoterRepo.Save(ctx, promoter); err != nil {
		return nil, err
	}

	response := ToPromoterResponse(promoter)
	return &response, nil
}

// Delete soft-deletes a promoter
func (s *PromoterService) Delete(ctx context.Context, promoterID uuid.UUID) error {
	return s.promoterRepo.Delete(ctx, promoterID)
}

// RecordActivity files a day of promoter work on a campaign. The
// promoter's name is denormalized into the entry.
func (s *PromoterService) RecordActivity(ctx context.Context, req CreatePromoterActivityRequest) (*PromoterActivityResponse, error) {
	promoter, err := s.promoterRepo.FindByID(ctx, req.PromoterID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Promoter not found")
		}
		return nil, err
	}
	campaign, err := s.campaignRepo.FindByID(ctx, req.CampaignID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Campaign not found")
		}
		return nil, err
	}
	if !campaign.IsActive {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot record activity against a deactivated campaign")
	}

	activity, err := crm.NewPromoterActivity(req.PromoterID, req.CampaignID, promoter.Name, req.Village, req.ActivityDate)
	if err != nil {
		return nil, err
	}
	activity.BeforeImages = req.BeforeImages
	activity.DuringImages = req.DuringImages
	activity.AfterImages = req.AfterImages
	activity.Remarks = req.Remarks
	activity.CreatedBy = req.CreatedBy
	if req.PeopleAttended != nil || req.ActivityCount != nil {
		people := 0
		count := 0
		if req.PeopleAttended != nil {
			people = *req.PeopleAttended
		}
		if req.ActivityCount != nil {
			count = *req.ActivityCount
		}
		if err := activity.RecordFootfall(people, count); err != nil {
			return nil, err
		}
	}

	if err := s.activityRepo.Save(ctx, activity); err != nil {
		return nil, err
	}

	response := ToPromoterActivityResponse(activity)
	return &response, nil
}

// GetActivity retrieves an activity entry by ID
func (s *PromoterService) GetActivity(ctx context.Context, activityID uuid.UUID) (*PromoterActivityResponse, error) {
	activity, err := s.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	response := ToPromoterActivityResponse(activity)
	return &response, nil
}

// ListActivities retrieves activity entries with filtering
func (s *PromoterService) ListActivities(ctx context.Context, filter ListFilter) ([]PromoterActivityResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	activities, err := s.activityRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.activityRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPromoterActivityResponses(activities), total, nil
}

// ListActivitiesByCampaign retrieves a campaign's activity entries
func (s *PromoterService) ListActivitiesByCampaign(ctx context.Context, campaignID uuid.UUID, filter ListFilter) ([]PromoterActivityResponse, error) {
	activities, err := s.activityRepo.FindByCampaign(ctx, campaignID, filter.toDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToPromoterActivityResponses(activities), nil
}

// ListActivitiesByPromoter retrieves a promoter's activity entries
func (s *PromoterService) ListActivitiesByPromoter(ctx context.Context, promoterID uuid.UUID, filter ListFilter) ([]PromoterActivityResponse, error) {
	activities, err := s.activityRepo.FindByPromoter(ctx, promoterID, filter.toDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToPromoterActivityResponses(activities), nil
}

// UpdateActivity updates an activity entry
func (s *PromoterService) UpdateActivity(ctx context.Context, activityID uuid.UUID, req UpdatePromoterActivityRequest) (*PromoterActivityResponse, error) {
	activity, err := s.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	if req.Village != nil {
		activity.Village = *req.Village
	}
	if req.PeopleAttended != nil || req.ActivityCount != nil {
		people := activity.PeopleAttended
		count := activity.ActivityCount
		if req.PeopleAttended != nil {
			people = *req.PeopleAttended
		}
		if req.ActivityCount != nil {
			count = *req.ActivityCount
		}
		if err := activity.RecordFootfall(people, count); err != nil {
			return nil, err
		}
	}
	if req.BeforeImages != nil {
		activity.BeforeImages = *req.BeforeImages
	}
	if req.DuringImages != nil {
		activity.DuringImages = *req.DuringImages
	}
	if req.AfterImages != nil {
		activity.AfterImages = *req.AfterImages
	}
	if req.Remarks != nil {
		activity.Remarks = *req.Remarks
	}
	activity.Touch()

	if err := s.activityRepo.Save(ctx, activity); err != nil {
		return nil, err
	}

	response := ToPromoterActivityResponse(activity)
	return &response, nil
}

// DeleteActivity soft-deletes an activity entry
func (s *PromoterService) DeleteActivity(ctx context.Context, activityID uuid.UUID) error {
	return s.activityRepo.Delete(ctx, activityID)
}
