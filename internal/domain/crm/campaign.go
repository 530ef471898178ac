package crm

import (
	"strings"
	"time"

	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignType classifies the field activation format
type CampaignType string

const (
	CampaignTypeLShape   CampaignType = "l_shape"
	CampaignTypeBTL      CampaignType = "btl"
	CampaignTypeRoadshow CampaignType = "roadshow"
	CampaignTypeSampling CampaignType = "sampling"
	CampaignTypeOther    CampaignType = "other"
)

// IsValid reports whether the type is recognized
func (t CampaignType) IsValid() bool {
	switch t {
	case CampaignTypeLShape, CampaignTypeBTL, CampaignTypeRoadshow,
		CampaignTypeSampling, CampaignTypeOther:
		return true
	}
	return false
}

// CampaignStatus tracks a campaign's lifecycle
type CampaignStatus string

const (
	CampaignStatusPlanning  CampaignStatus = "planning"
	CampaignStatusUpcoming  CampaignStatus = "upcoming"
	CampaignStatusRunning   CampaignStatus = "running"
	CampaignStatusHold      CampaignStatus = "hold"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

// IsValid reports whether the status is recognized
func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusPlanning, CampaignStatusUpcoming, CampaignStatusRunning,
		CampaignStatusHold, CampaignStatusCompleted, CampaignStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status allows no further transitions
func (s CampaignStatus) IsTerminal() bool {
	return s == CampaignStatusCompleted || s == CampaignStatusCancelled
}

// campaignTransitions lists the allowed status moves
var campaignTransitions = map[CampaignStatus][]CampaignStatus{
	CampaignStatusPlanning: {CampaignStatusUpcoming, CampaignStatusRunning, CampaignStatusCancelled},
	CampaignStatusUpcoming: {CampaignStatusRunning, CampaignStatusHold, CampaignStatusCancelled},
	CampaignStatusRunning:  {CampaignStatusHold, CampaignStatusCompleted, CampaignStatusCancelled},
	CampaignStatusHold:     {CampaignStatusRunning, CampaignStatusCancelled},
}

// Campaign is a single field activation under a project
type Campaign struct {
	shared.BaseEntity
	ProjectID uuid.UUID
	Name      string
	Type      CampaignType
	Status    CampaignStatus
	Budget    decimal.Decimal
	StartDate *time.Time
	EndDate   *time.Time
	Locations string
}

// NewCampaign creates a campaign in planning state
func NewCampaign(projectID uuid.UUID, name string, campaignType CampaignType, budget decimal.Decimal) (*Campaign, error) {
	name = strings.TrimSpace(name)
	if projectID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Campaign requires a project")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Campaign name is required")
	}
	if !campaignType.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown campaign type: "+string(campaignType))
	}
	if budget.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Campaign budget cannot be negative")
	}

	return &Campaign{
		BaseEntity: shared.NewBaseEntity(),
		ProjectID:  projectID,
		Name:       name,
		Type:       campaignType,
		Status:     CampaignStatusPlanning,
		Budget:     budget,
	}, nil
}

// ChangeStatus moves the campaign along its lifecycle, rejecting
// transitions not listed in campaignTransitions.
func (c *Campaign) ChangeStatus(next CampaignStatus) error {
	if !next.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Unknown campaign status: "+string(next))
	}
	if c.Status.IsTerminal() {
		return shared.ErrInvalidState
	}
	for _, allowed := range campaignTransitions[c.Status] {
		if next == allowed {
			c.Status = next
			c.Touch()
			return nil
		}
	}
	return shared.NewDomainError("INVALID_STATE",
		"Cannot move campaign from "+string(c.Status)+" to "+string(next))
}

// SetSchedule sets the campaign dates, requiring start before end
func (c *Campaign) SetSchedule(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return shared.NewDomainError("INVALID_INPUT", "Campaign end date cannot precede start date")
	}
	c.StartDate = start
	c.EndDate = end
	c.Touch()
	return nil
}
