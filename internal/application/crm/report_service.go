package crm

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/crm"
	"github.com/Pratul75/report360/internal/domain/shared"
)

// ReportService handles daily field reports
type ReportService struct {
	reportRepo   crm.ReportRepository
	campaignRepo crm.CampaignRepository
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo crm.ReportRepository, campaignRepo crm.CampaignRepository) *ReportService {
	return &ReportService{
		reportRepo:   reportRepo,
		campaignRepo: campaignRepo,
	}
}

// Create files a field report against an active campaign
func (s *ReportService) Create(ctx context.Context, req CreateReportRequest) (*ReportResponse, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, req.CampaignID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Campaign not found")
		}
		return nil, err
	}
	if !campaign.IsActive {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot file a report against a deactivated campaign")
	}

	report, err := crm.NewReport(req.CampaignID, req.ReportDate)
	if err != nil {
		return nil, err
	}
	report.LocationsCovered = req.LocationsCovered
	report.PhotosURL = req.PhotosURL
	report.GPSData = req.GPSData
	report.Notes = req.Notes
	if req.KMTravelled != nil {
		if err := report.RecordTravel(*req.KMTravelled); err != nil {
			return nil, err
		}
	}

	if err := s.reportRepo.Save(ctx, report); err != nil {
		return nil, err
	}

	response := ToReportResponse(report)
	return &response, nil
}

// GetByID retrieves a report by ID
func (s *ReportService) GetByID(ctx context.Context, reportID uuid.UUID) (*ReportResponse, error) {
	report, err := s.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	response := ToReportResponse(report)
	return &response, nil
}

// List retrieves reports with filtering and pagination
func (s *ReportService) List(ctx context.Context, filter ListFilter) ([]ReportResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	reports, err := s.reportRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.reportRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToReportResponses(reports), total, nil
}

// ListByCampaign retrieves a campaign's reports
func (s *ReportService) ListByCampaign(ctx context.Context, campaignID uuid.UUID, filter ListFilter) ([]ReportResponse, error) {
	reports, err := s.reportRepo.FindByCampaign(ctx, campaignID, filter.toDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToReportResponses(reports), nil
}

// Update updates a field report
func (s *ReportService) Update(ctx context.Context, reportID uuid.UUID, req UpdateReportRequest) (*ReportResponse, error) {
	report, err := s.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if req.LocationsCovered != nil {
		report.LocationsCovered = *req.LocationsCovered
	}
	if req.KMTravelled != nil {
		if err := report.RecordTravel(*req.KMTravelled); err != nil {
			return nil, err
		}
	}
	if req.PhotosURL != nil {
		report.PhotosURL = *req.PhotosURL
	}
	if req.GPSData != nil {
		report.GPSData = *req.GPSData
	}
	if req.Notes != nil {
		report.Notes = *req.Notes
	}
	report.Touch()

	if err := s.reportRepo.Save(ctx, report); err != nil {
		return nil, err
	}

	response := ToReportResponse(report)
	return &response, nil
}

// Delete soft-deletes a field report
func (s *ReportService) Delete(ctx context.Context, reportID uuid.UUID) error {
	return s.reportRepo.Delete(ctx, reportID)
}
