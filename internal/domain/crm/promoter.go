package crm

import (
	"strings"
	"time"

	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/google/uuid"
)

// Promoter is a field promoter available for campaign activations
type Promoter struct {
	shared.BaseEntity
	Name      string
	Phone     string
	Email     string
	Specialty string
	Language  string
}

// NewPromoter creates a promoter after validating the required fields
func NewPromoter(name, phone string) (*Promoter, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Promoter name is required")
	}
	return &Promoter{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Phone:      strings.TrimSpace(phone),
	}, nil
}

// PromoterActivity records one day of promoter work on a campaign.
// PromoterName is denormalized so activity rows survive promoter edits.
type PromoterActivity struct {
	shared.BaseEntity
	PromoterID     uuid.UUID
	PromoterName   string
	CampaignID     uuid.UUID
	Village        string
	ActivityDate   time.Time
	PeopleAttended int
	ActivityCount  int
	BeforeImages   string
	DuringImages   string
	AfterImages    string
	Remarks        string
	CreatedBy      *uuid.UUID
}

// NewPromoterActivity records an activity entry
func NewPromoterActivity(promoterID, campaignID uuid.UUID, promoterName, village string, activityDate time.Time) (*PromoterActivity, error) {
	if promoterID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Activity requires a promoter")
	}
	if campaignID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Activity requires a campaign")
	}
	if activityDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Activity date is required")
	}
	return &PromoterActivity{
		BaseEntity:   shared.NewBaseEntity(),
		PromoterID:   promoterID,
		PromoterName: strings.TrimSpace(promoterName),
		CampaignID:   campaignID,
		Village:      strings.TrimSpace(village),
		ActivityDate: activityDate,
	}, nil
}

// RecordFootfall sets the attendance figures for the day
func (a *PromoterActivity) RecordFootfall(peopleAttended, activityCount int) error {
	if peopleAttended < 0 || activityCount < 0 {
		return shared.NewDomainError("INVALID_INPUT", "Footfall figures cannot be negative")
	}
	a.PeopleAttended = peopleAttended
	a.ActivityCount = activityCount
	a.Touch()
	return nil
}
