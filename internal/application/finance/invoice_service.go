package finance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/finance"
	"github.com/Pratul75/report360/internal/domain/fleet"
	"github.com/Pratul75/report360/internal/domain/shared"
)

// InvoiceService handles vendor invoices. Approval opens the matching
// pending payment in the same transaction.
type InvoiceService struct {
	invoiceRepo finance.InvoiceRepository
	paymentRepo finance.PaymentRepository
	vendorRepo  fleet.VendorRepository
	txScope     TransactionScope
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo finance.InvoiceRepository,
	paymentRepo finance.PaymentRepository,
	vendorRepo fleet.VendorRepository,
	txScope TransactionScope,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		vendorRepo:  vendorRepo,
		txScope:     txScope,
	}
}

// Create files a vendor invoice. Invoice numbers are unique.
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, req.VendorID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Vendor not found")
		}
		return nil, err
	}
	if !vendor.IsActive {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot file an invoice for a deactivated vendor")
	}

	invoice, err := finance.NewInvoice(req.VendorID, req.InvoiceNumber, req.Amount, req.InvoiceDate)
	if err != nil {
		return nil, err
	}

	exists, err := s.invoiceRepo.ExistsByNumber(ctx, invoice.InvoiceNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An invoice with this number already exists")
	}

	invoice.CampaignID = req.CampaignID
	invoice.FileURL = req.FileURL

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// GetByID retrieves an invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// List retrieves invoices with filtering and pagination
func (s *InvoiceService) List(ctx context.Context, filter ListFilter) ([]InvoiceResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	invoices, err := s.invoiceRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.invoiceRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToInvoiceResponses(invoices), total, nil
}

// ListByVendor retrieves a vendor's invoices
func (s *InvoiceService) ListByVendor(ctx context.Context, vendorID uuid.UUID, filter ListFilter) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindByVendor(ctx, vendorID, filter.toDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponses(invoices), nil
}

// Update edits an invoice. Approved and paid invoices are immutable.
func (s *InvoiceService) Update(ctx context.Context, invoiceID uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status == finance.InvoiceStatusApproved || invoice.Status == finance.InvoiceStatusPaid {
		return nil, shared.NewDomainError("INVALID_STATE", "Approved invoices cannot be edited")
	}

	if req.CampaignID != nil {
		invoice.CampaignID = req.CampaignID
	}
	if req.FileURL != nil {
		invoice.FileURL = *req.FileURL
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invoice amount must be positive")
		}
		invoice.Amount = *req.Amount
	}
	if req.InvoiceDate != nil {
		invoice.InvoiceDate = *req.InvoiceDate
	}
	invoice.Touch()

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Submit moves a pending invoice into review
func (s *InvoiceService) Submit(ctx context.Context, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	return s.transition(ctx, invoiceID, func(i *finance.Invoice) error {
		return i.Submit()
	})
}

// Approve accepts a submitted invoice and opens its pending payment.
// The invoice update and the payment insert commit atomically.
func (s *InvoiceService) Approve(ctx context.Context, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	var approved *finance.Invoice
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		invoice, err := repos.InvoiceRepo().FindByID(ctx, invoiceID)
		if err != nil {
			return err
		}
		if err := invoice.Approve(); err != nil {
			return err
		}
		if err := repos.InvoiceRepo().Save(ctx, invoice); err != nil {
			return err
		}

		payment, err := finance.NewPaymentForInvoice(invoice)
		if err != nil {
			return err
		}
		if err := repos.PaymentRepo().Save(ctx, payment); err != nil {
			return err
		}

		approved = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(approved)
	return &response, nil
}

// Reject declines an invoice that is pending or under review
func (s *InvoiceService) Reject(ctx context.Context, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	return s.transition(ctx, invoiceID, func(i *finance.Invoice) error {
		return i.Reject()
	})
}

// MarkPaid closes an approved invoice and settles its payment
func (s *InvoiceService) MarkPaid(ctx context.Context, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	var paid *finance.Invoice
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		invoice, err := repos.InvoiceRepo().FindByID(ctx, invoiceID)
		if err != nil {
			return err
		}
		if err := invoice.MarkPaid(); err != nil {
			return err
		}
		if err := repos.InvoiceRepo().Save(ctx, invoice); err != nil {
			return err
		}

		payment, err := repos.PaymentRepo().FindByInvoice(ctx, invoiceID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				// Rows migrated from before the payment flow have no
				// payment to settle.
				paid = invoice
				return nil
			}
			return err
		}
		if payment.Status != finance.PaymentStatusCompleted {
			if err := payment.Complete(time.Now()); err != nil {
				return err
			}
			if err := repos.PaymentRepo().Save(ctx, payment); err != nil {
				return err
			}
		}

		paid = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(paid)
	return &response, nil
}

// Delete soft-deletes an invoice
func (s *InvoiceService) Delete(ctx context.Context, invoiceID uuid.UUID) error {
	return s.invoiceRepo.Delete(ctx, invoiceID)
}

func (s *InvoiceService) transition(ctx context.Context, invoiceID uuid.UUID, apply func(*finance.Invoice) error) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if err := apply(invoice); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}
	response := ToInvoiceResponse(invoice)
	return &response, nil
}
