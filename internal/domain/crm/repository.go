package crm

import (
	"context"

	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientRepository persists clients and runs the cascade deactivation.
type ClientRepository interface {
	shared.Repository[Client]
	// DeletionPreview counts the dependent rows a cascade would
	// deactivate without mutating anything.
	DeletionPreview(ctx context.Context, clientID uuid.UUID) (*CascadeCounts, error)
	// CascadeDeactivate soft-deletes the client and every active
	// project, campaign, expense, report, invoice, promoter activity
	// and driver assignment underneath it, in one transaction.
	CascadeDeactivate(ctx context.Context, clientID uuid.UUID) (*CascadeCounts, error)
}

// ProjectRepository persists projects
type ProjectRepository interface {
	shared.Repository[Project]
	FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]Project, error)
}

// CampaignRepository persists campaigns
type CampaignRepository interface {
	shared.Repository[Campaign]
	FindByProject(ctx context.Context, projectID uuid.UUID, filter shared.Filter) ([]Campaign, error)
	FindByStatus(ctx context.Context, status CampaignStatus, filter shared.Filter) ([]Campaign, error)
}

// ReportRepository persists campaign field reports
type ReportRepository interface {
	shared.Repository[Report]
	FindByCampaign(ctx context.Context, campaignID uuid.UUID, filter shared.Filter) ([]Report, error)
}

// PromoterRepository persists promoters
type PromoterRepository interface {
	shared.Repository[Promoter]
}

// PromoterActivityRepository persists promoter activity entries
type PromoterActivityRepository interface {
	shared.Repository[PromoterActivity]
	FindByCampaign(ctx context.Context, campaignID uuid.UUID, filter shared.Filter) ([]PromoterActivity, error)
	FindByPromoter(ctx context.Context, promoterID uuid.UUID, filter shared.Filter) ([]PromoterActivity, error)
}
