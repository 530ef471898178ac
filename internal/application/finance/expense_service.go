package finance

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/crm"
	"github.com/Pratul75/report360/internal/domain/finance"
	"github.com/Pratul75/report360/internal/domain/shared"
)

// ExpenseService handles field expenses and their approval flow
type ExpenseService struct {
	expenseRepo  finance.ExpenseRepository
	campaignRepo crm.CampaignRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo finance.ExpenseRepository, campaignRepo crm.CampaignRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo:  expenseRepo,
		campaignRepo: campaignRepo,
	}
}

// Create submits an expense against an active campaign
func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, req.CampaignID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Campaign not found")
		}
		return nil, err
	}
	if !campaign.IsActive {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot submit an expense against a deactivated campaign")
	}

	expense, err := finance.NewExpense(req.CampaignID, req.ExpenseType, req.Amount)
	if err != nil {
		return nil, err
	}
	expense.DriverID = req.DriverID
	expense.SubmittedBy = req.SubmittedBy
	expense.Description = req.Description
	expense.BillImageURL = req.BillImageURL

	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// GetByID retrieves an expense by ID
func (s *ExpenseService) GetByID(ctx context.Context, expenseID uuid.UUID) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	response := ToExpenseResponse(expense)
	return &response, nil
}

// List retrieves expenses with filtering and pagination
func (s *ExpenseService) List(ctx context.Context, filter ListFilter) ([]ExpenseResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	expenses, err := s.expenseRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.expenseRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToExpenseResponses(expenses), total, nil
}

// ListByCampaign retrieves a campaign's expenses
func (s *ExpenseService) ListByCampaign(ctx context.Context, campaignID uuid.UUID, filter ListFilter) ([]ExpenseResponse, error) {
	expenses, err := s.expenseRepo.FindByCampaign(ctx, campaignID, filter.toDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToExpenseResponses(expenses), nil
}

// ListBySubmitter retrieves the expenses a user submitted
func (s *ExpenseService) ListBySubmitter(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]ExpenseResponse, error) {
	expenses, err := s.expenseRepo.FindBySubmitter(ctx, userID, filter.toDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToExpenseResponses(expenses), nil
}

// Update edits an expense. Only pending expenses can be edited.
func (s *ExpenseService) Update(ctx context.Context, expenseID uuid.UUID, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.Status != finance.ExpenseStatusPending {
		return nil, shared.NewDomainError("INVALID_STATE", "Only pending expenses can be edited")
	}

	if req.ExpenseType != nil {
		expense.ExpenseType = *req.ExpenseType
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, shared.NewDomainError("INVALID_INPUT", "Expense amount must be positive")
		}
		expense.Amount = *req.Amount
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.BillImageURL != nil {
		expense.BillImageURL = *req.BillImageURL
	}
	expense.Touch()

	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// Approve accepts a pending expense
func (s *ExpenseService) Approve(ctx context.Context, expenseID uuid.UUID) (*ExpenseResponse, error) {
	return s.transition(ctx, expenseID, func(e *finance.Expense) error {
		return e.Approve()
	})
}

// Reject declines a pending expense
func (s *ExpenseService) Reject(ctx context.Context, expenseID uuid.UUID) (*ExpenseResponse, error) {
	return s.transition(ctx, expenseID, func(e *finance.Expense) error {
		return e.Reject()
	})
}

// Delete soft-deletes an expense
func (s *ExpenseService) Delete(ctx context.Context, expenseID uuid.UUID) error {
	return s.expenseRepo.Delete(ctx, expenseID)
}

func (s *ExpenseService) transition(ctx context.Context, expenseID uuid.UUID, apply func(*finance.Expense) error) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if err := apply(expense); err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}
	response := ToExpenseResponse(expense)
	return &response, nil
}
