package fleet

import (
	"strings"
	"time"

	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/google/uuid"
)

// AssignmentStatus tracks the work lifecycle of a driver assignment
type AssignmentStatus string

const (
	AssignmentStatusAssigned   AssignmentStatus = "ASSIGNED"
	AssignmentStatusInProgress AssignmentStatus = "IN_PROGRESS"
	AssignmentStatusCompleted  AssignmentStatus = "COMPLETED"
	AssignmentStatusCancelled  AssignmentStatus = "CANCELLED"
)

// ApprovalStatus tracks the driver's acceptance of an assignment
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "PENDING_APPROVAL"
	ApprovalStatusApproved ApprovalStatus = "APPROVED"
	ApprovalStatusRejected ApprovalStatus = "REJECTED"
)

// DriverAssignment books a driver (and optionally a vehicle) onto a
// campaign for a day of work. The driver must approve before starting.
type DriverAssignment struct {
	shared.BaseEntity
	DriverID        uuid.UUID
	CampaignID      uuid.UUID
	ProjectID       *uuid.UUID
	VehicleID       *uuid.UUID
	AssignedBy      *uuid.UUID
	AssignmentDate  time.Time
	ExpectedStart   *time.Time
	ExpectedEnd     *time.Time
	ActualStart     *time.Time
	ActualEnd       *time.Time
	WorkTitle       string
	WorkDescription string
	Village         string
	Address         string
	Status          AssignmentStatus
	ApprovalStatus  ApprovalStatus
	ApprovedAt      *time.Time
	RejectedAt      *time.Time
	RejectionReason string
}

// NewDriverAssignment books a driver onto a campaign, pending the
// driver's approval.
func NewDriverAssignment(driverID, campaignID uuid.UUID, assignmentDate time.Time, workTitle string) (*DriverAssignment, error) {
	if driverID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Assignment requires a driver")
	}
	if campaignID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Assignment requires a campaign")
	}
	if assignmentDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Assignment date is required")
	}
	return &DriverAssignment{
		BaseEntity:     shared.NewBaseEntity(),
		DriverID:       driverID,
		CampaignID:     campaignID,
		AssignmentDate: assignmentDate,
		WorkTitle:      strings.TrimSpace(workTitle),
		Status:         AssignmentStatusAssigned,
		ApprovalStatus: ApprovalStatusPending,
	}, nil
}

// Approve records the driver accepting the assignment
func (a *DriverAssignment) Approve() error {
	if a.ApprovalStatus != ApprovalStatusPending {
		return shared.ErrInvalidState
	}
	now := time.Now()
	a.ApprovalStatus = ApprovalStatusApproved
	a.ApprovedAt = &now
	a.Touch()
	return nil
}

// Reject records the driver declining the assignment. A reason is
// required so the operator knows why to rebook.
func (a *DriverAssignment) Reject(reason string) error {
	if a.ApprovalStatus != ApprovalStatusPending {
		return shared.ErrInvalidState
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return shared.NewDomainError("INVALID_INPUT", "Rejection reason is required")
	}
	now := time.Now()
	a.ApprovalStatus = ApprovalStatusRejected
	a.RejectedAt = &now
	a.RejectionReason = reason
	a.Status = AssignmentStatusCancelled
	a.Touch()
	return nil
}

// Start marks the work as begun. Only approved assignments can start.
func (a *DriverAssignment) Start() error {
	if a.ApprovalStatus != ApprovalStatusApproved {
		return shared.NewDomainError("INVALID_STATE", "Assignment has not been approved by the driver")
	}
	if a.Status != AssignmentStatusAssigned {
		return shared.ErrInvalidState
	}
	now := time.Now()
	a.Status = AssignmentStatusInProgress
	a.ActualStart = &now
	a.Touch()
	return nil
}

// Complete marks the work as finished
func (a *DriverAssignment) Complete() error {
	if a.Status != AssignmentStatusInProgress {
		return shared.ErrInvalidState
	}
	now := time.Now()
	a.Status = AssignmentStatusCompleted
	a.ActualEnd = &now
	a.Touch()
	return nil
}

// Cancel aborts the assignment from any non-terminal state
func (a *DriverAssignment) Cancel() error {
	if a.Status == AssignmentStatusCompleted || a.Status == AssignmentStatusCancelled {
		return shared.ErrInvalidState
	}
	a.Status = AssignmentStatusCancelled
	a.Touch()
	return nil
}
