package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Pratul75/report360/internal/domain/finance"
	"github.com/Pratul75/report360/internal/domain/shared"
)

// ListFilter is the query-string filter shared by the finance lists
type ListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	Status   string `form:"status"`
}

func (f ListFilter) toDomainFilter() shared.Filter {
	filter := shared.DefaultFilter()
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 {
		filter.PageSize = f.PageSize
	}
	if f.OrderBy != "" {
		filter.OrderBy = f.OrderBy
	}
	if f.OrderDir != "" {
		filter.OrderDir = f.OrderDir
	}
	filter.Search = f.Search
	if f.Status != "" {
		filter.Filters = map[string]interface{}{"status": f.Status}
	}
	return filter
}

// =============================================================================
// Expense DTOs
// =============================================================================

// CreateExpenseRequest submits a field expense against a campaign
type CreateExpenseRequest struct {
	CampaignID   uuid.UUID       `json:"campaign_id" binding:"required"`
	DriverID     *uuid.UUID      `json:"driver_id"`
	ExpenseType  string          `json:"expense_type" binding:"required,max=100"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Description  string          `json:"description"`
	BillImageURL string          `json:"bill_image_url"`
	SubmittedBy  *uuid.UUID      `json:"-"` // set from JWT context
}

// UpdateExpenseRequest edits a pending expense
type UpdateExpenseRequest struct {
	ExpenseType  *string          `json:"expense_type" binding:"omitempty,max=100"`
	Amount       *decimal.Decimal `json:"amount"`
	Description  *string          `json:"description"`
	BillImageURL *string          `json:"bill_image_url"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID            uuid.UUID       `json:"id"`
	CampaignID    uuid.UUID       `json:"campaign_id"`
	DriverID      *uuid.UUID      `json:"driver_id,omitempty"`
	SubmittedBy   *uuid.UUID      `json:"submitted_by,omitempty"`
	ExpenseType   string          `json:"expense_type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	BillImageURL  string          `json:"bill_image_url"`
	Status        string          `json:"status"`
	SubmittedDate time.Time       `json:"submitted_date"`
	ApprovedDate  *time.Time      `json:"approved_date,omitempty"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// =============================================================================
// Invoice DTOs
// =============================================================================

// CreateInvoiceRequest files a vendor invoice
type CreateInvoiceRequest struct {
	VendorID      uuid.UUID       `json:"vendor_id" binding:"required"`
	CampaignID    *uuid.UUID      `json:"campaign_id"`
	InvoiceNumber string          `json:"invoice_number" binding:"required,max=100"`
	FileURL       string          `json:"file_url"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	InvoiceDate   time.Time       `json:"invoice_date" binding:"required"`
}

// UpdateInvoiceRequest edits an invoice before approval
type UpdateInvoiceRequest struct {
	CampaignID  *uuid.UUID       `json:"campaign_id"`
	FileURL     *string          `json:"file_url"`
	Amount      *decimal.Decimal `json:"amount"`
	InvoiceDate *time.Time       `json:"invoice_date"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID            uuid.UUID       `json:"id"`
	VendorID      uuid.UUID       `json:"vendor_id"`
	CampaignID    *uuid.UUID      `json:"campaign_id,omitempty"`
	InvoiceNumber string          `json:"invoice_number"`
	FileURL       string          `json:"file_url"`
	Amount        decimal.Decimal `json:"amount"`
	InvoiceDate   time.Time       `json:"invoice_date"`
	Status        string          `json:"status"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// =============================================================================
// Payment DTOs
// =============================================================================

// ProcessPaymentRequest puts a pending payment in flight
type ProcessPaymentRequest struct {
	Method               string `json:"method" binding:"required,oneof=bank_transfer cheque upi cash other"`
	TransactionReference string `json:"transaction_reference" binding:"max=200"`
}

// CompletePaymentRequest settles a payment
type CompletePaymentRequest struct {
	PaymentDate *time.Time `json:"payment_date"`
}

// FailPaymentRequest records a failed settlement
type FailPaymentRequest struct {
	Remarks string `json:"remarks" binding:"max=500"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID                   uuid.UUID       `json:"id"`
	InvoiceID            uuid.UUID       `json:"invoice_id"`
	VendorID             uuid.UUID       `json:"vendor_id"`
	Amount               decimal.Decimal `json:"amount"`
	PaymentDate          *time.Time      `json:"payment_date,omitempty"`
	Status               string          `json:"status"`
	Method               string          `json:"method"`
	TransactionReference string          `json:"transaction_reference"`
	Remarks              string          `json:"remarks"`
	IsActive             bool            `json:"is_active"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// =============================================================================
// Converters
// =============================================================================

// ToExpenseResponse converts a domain expense
func ToExpenseResponse(expense *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            expense.ID,
		CampaignID:    expense.CampaignID,
		DriverID:      expense.DriverID,
		SubmittedBy:   expense.SubmittedBy,
		ExpenseType:   expense.ExpenseType,
		Amount:        expense.Amount,
		Description:   expense.Description,
		BillImageURL:  expense.BillImageURL,
		Status:        string(expense.Status),
		SubmittedDate: expense.SubmittedDate,
		ApprovedDate:  expense.ApprovedDate,
		IsActive:      expense.IsActive,
		CreatedAt:     expense.CreatedAt,
		UpdatedAt:     expense.UpdatedAt,
	}
}

// ToExpenseResponses converts a slice of domain expenses
func ToExpenseResponses(expenses []finance.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}

// ToInvoiceResponse converts a domain invoice
func ToInvoiceResponse(invoice *finance.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            invoice.ID,
		VendorID:      invoice.VendorID,
		CampaignID:    invoice.CampaignID,
		InvoiceNumber: invoice.InvoiceNumber,
		FileURL:       invoice.FileURL,
		Amount:        invoice.Amount,
		InvoiceDate:   invoice.InvoiceDate,
		Status:        string(invoice.Status),
		IsActive:      invoice.IsActive,
		CreatedAt:     invoice.CreatedAt,
		UpdatedAt:     invoice.UpdatedAt,
	}
}

// ToInvoiceResponses converts a slice of domain invoices
func ToInvoiceResponses(invoices []finance.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses
}

// ToPaymentResponse converts a domain payment
func ToPaymentResponse(payment *finance.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                   payment.ID,
		InvoiceID:            payment.InvoiceID,
		VendorID:             payment.VendorID,
		Amount:               payment.Amount,
		PaymentDate:          payment.PaymentDate,
		Status:               string(payment.Status),
		Method:               string(payment.Method),
		TransactionReference: payment.TransactionReference,
		Remarks:              payment.Remarks,
		IsActive:             payment.IsActive,
		CreatedAt:            payment.CreatedAt,
		UpdatedAt:            payment.UpdatedAt,
	}
}

// ToPaymentResponses converts a slice of domain payments
func ToPaymentResponses(payments []finance.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses
}
