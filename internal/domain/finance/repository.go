package finance

import (
	"context"

	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/google/uuid"
)

// ExpenseRepository persists expenses
type ExpenseRepository interface {
	shared.Repository[Expense]
	FindByCampaign(ctx context.Context, campaignID uuid.UUID, filter shared.Filter) ([]Expense, error)
	FindByStatus(ctx context.Context, status ExpenseStatus, filter shared.Filter) ([]Expense, error)
	FindBySubmitter(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Expense, error)
}

// InvoiceRepository persists invoices
type InvoiceRepository interface {
	shared.Repository[Invoice]
	FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Invoice, error)
	FindByNumber(ctx context.Context, invoiceNumber string) (*Invoice, error)
	ExistsByNumber(ctx context.Context, invoiceNumber string) (bool, error)
}

// PaymentRepository persists payments
type PaymentRepository interface {
	shared.Repository[Payment]
	FindByInvoice(ctx context.Context, invoiceID uuid.UUID) (*Payment, error)
	FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Payment, error)
}
