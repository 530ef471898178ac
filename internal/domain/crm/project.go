package crm

import (
	"strings"
	"time"

	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProjectStatus tracks a project's lifecycle
type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

// IsValid reports whether the status is recognized
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusActive, ProjectStatusOnHold,
		ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// Project groups the campaigns the agency runs for one client
type Project struct {
	shared.BaseEntity
	ClientID    uuid.UUID
	Name        string
	Description string
	Budget      decimal.Decimal
	StartDate   *time.Time
	EndDate     *time.Time
	Status      ProjectStatus
	AssignedCS  *uuid.UUID // client servicing user responsible for the project
}

// NewProject creates a project in planning state
func NewProject(clientID uuid.UUID, name string, budget decimal.Decimal) (*Project, error) {
	name = strings.TrimSpace(name)
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Project requires a client")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Project name is required")
	}
	if budget.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Project budget cannot be negative")
	}

	return &Project{
		BaseEntity: shared.NewBaseEntity(),
		ClientID:   clientID,
		Name:       name,
		Budget:     budget,
		Status:     ProjectStatusPlanning,
	}, nil
}

// SetSchedule sets the project dates, requiring start before end
func (p *Project) SetSchedule(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return shared.NewDomainError("INVALID_INPUT", "Project end date cannot precede start date")
	}
	p.StartDate = start
	p.EndDate = end
	p.Touch()
	return nil
}

// ChangeStatus moves the project to a new status
func (p *Project) ChangeStatus(status ProjectStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Unknown project status: "+string(status))
	}
	if p.Status == ProjectStatusCompleted || p.Status == ProjectStatusCancelled {
		return shared.ErrInvalidState
	}
	p.Status = status
	p.Touch()
	return nil
}

// AssignServicing sets the client servicing owner
func (p *Project) AssignServicing(userID uuid.UUID) {
	p.AssignedCS = &userID
	p.Touch()
}
