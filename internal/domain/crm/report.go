package crm

import (
	"time"

	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/google/uuid"
)

// Report is a daily field report filed against a campaign
type Report struct {
	shared.BaseEntity
	CampaignID       uuid.UUID
	ReportDate       time.Time
	LocationsCovered string
	KMTravelled      float64
	PhotosURL        string
	GPSData          string
	Notes            string
}

// NewReport creates a field report
func NewReport(campaignID uuid.UUID, reportDate time.Time) (*Report, error) {
	if campaignID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Report requires a campaign")
	}
	if reportDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Report date is required")
	}
	return &Report{
		BaseEntity: shared.NewBaseEntity(),
		CampaignID: campaignID,
		ReportDate: reportDate,
	}, nil
}

// RecordTravel sets the distance covered for the day
func (r *Report) RecordTravel(km float64) error {
	if km < 0 {
		return shared.NewDomainError("INVALID_INPUT", "Kilometres travelled cannot be negative")
	}
	r.KMTravelled = km
	r.Touch()
	return nil
}
