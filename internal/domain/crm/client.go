package crm

import (
	"strings"

	"github.com/Pratul75/report360/internal/domain/shared"
)

// Client is an advertiser the agency runs projects for. Deactivating a
// client cascades to every project, campaign and campaign dependent
// underneath it.
type Client struct {
	shared.BaseEntity
	Name          string
	Company       string
	Email         string
	Phone         string
	Address       string
	ContactPerson string
}

// NewClient creates a client after validating the required fields
func NewClient(name, company, email, phone string) (*Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Client name is required")
	}
	if email != "" && !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_INPUT", "Client email is invalid")
	}

	return &Client{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Company:    strings.TrimSpace(company),
		Email:      strings.ToLower(strings.TrimSpace(email)),
		Phone:      strings.TrimSpace(phone),
	}, nil
}

// Update replaces the client's editable fields
func (c *Client) Update(name, company, email, phone, address, contactPerson string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Client name is required")
	}
	if email != "" && !strings.Contains(email, "@") {
		return shared.NewDomainError("INVALID_INPUT", "Client email is invalid")
	}
	c.Name = name
	c.Company = strings.TrimSpace(company)
	c.Email = strings.ToLower(strings.TrimSpace(email))
	c.Phone = strings.TrimSpace(phone)
	c.Address = address
	c.ContactPerson = contactPerson
	c.Touch()
	return nil
}

// CascadeCounts reports how many rows of each dependent type a client
// deactivation touches. The same shape serves the deletion preview.
type CascadeCounts struct {
	Projects           int64 `json:"projects"`
	Campaigns          int64 `json:"campaigns"`
	Expenses           int64 `json:"expenses"`
	Reports            int64 `json:"reports"`
	Invoices           int64 `json:"invoices"`
	PromoterActivities int64 `json:"promoter_activities"`
	DriverAssignments  int64 `json:"driver_assignments"`
}

// Total sums all dependent rows, excluding the client itself
func (c CascadeCounts) Total() int64 {
	return c.Projects + c.Campaigns + c.Expenses + c.Reports +
		c.Invoices + c.PromoterActivities + c.DriverAssignments
}
