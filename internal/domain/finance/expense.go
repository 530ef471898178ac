package finance

import (
	"strings"
	"time"

	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseStatus tracks the approval state of a field expense
type ExpenseStatus string

const (
	ExpenseStatusPending  ExpenseStatus = "pending"
	ExpenseStatusApproved ExpenseStatus = "approved"
	ExpenseStatusRejected ExpenseStatus = "rejected"
)

// Expense is a field expense submitted against a campaign, usually by
// a driver or promoter, and approved by accounts.
type Expense struct {
	shared.BaseEntity
	CampaignID    uuid.UUID
	DriverID      *uuid.UUID
	SubmittedBy   *uuid.UUID
	ExpenseType   string
	Amount        decimal.Decimal
	Description   string
	BillImageURL  string
	Status        ExpenseStatus
	SubmittedDate time.Time
	ApprovedDate  *time.Time
}

// NewExpense submits an expense in pending state
func NewExpense(campaignID uuid.UUID, expenseType string, amount decimal.Decimal) (*Expense, error) {
	expenseType = strings.TrimSpace(expenseType)
	if campaignID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Expense requires a campaign")
	}
	if expenseType == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Expense type is required")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Expense amount must be positive")
	}
	return &Expense{
		BaseEntity:    shared.NewBaseEntity(),
		CampaignID:    campaignID,
		ExpenseType:   expenseType,
		Amount:        amount,
		Status:        ExpenseStatusPending,
		SubmittedDate: time.Now(),
	}, nil
}

// Approve moves a pending expense to approved. Approved and rejected
// are terminal.
func (e *Expense) Approve() error {
	if e.Status != ExpenseStatusPending {
		return shared.ErrInvalidState
	}
	now := time.Now()
	e.Status = ExpenseStatusApproved
	e.ApprovedDate = &now
	e.Touch()
	return nil
}

// Reject moves a pending expense to rejected
func (e *Expense) Reject() error {
	if e.Status != ExpenseStatusPending {
		return shared.ErrInvalidState
	}
	e.Status = ExpenseStatusRejected
	e.Touch()
	return nil
}
