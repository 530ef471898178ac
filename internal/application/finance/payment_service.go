package finance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Pratul75/report360/internal/domain/finance"
)

// PaymentService handles the settlement of vendor payments
type PaymentService struct {
	paymentRepo finance.PaymentRepository
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(paymentRepo finance.PaymentRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo}
}

// GetByID retrieves a payment by ID
func (s *PaymentService) GetByID(ctx context.Context, paymentID uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	response := ToPaymentResponse(payment)
	return &response, nil
}

// GetByInvoice retrieves the payment settling an invoice
func (s *PaymentService) GetByInvoice(ctx context.Context, invoiceID uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	response := ToPaymentResponse(payment)
	return &response, nil
}

// List retrieves payments with filtering and pagination
func (s *PaymentService) List(ctx context.Context, filter ListFilter) ([]PaymentResponse, int64, error) {
	domainFilter := filter.toDomainFilter()

	payments, err := s.paymentRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.paymentRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPaymentResponses(payments), total, nil
}

// ListByVendor retrieves a vendor's payments
func (s *PaymentService) ListByVendor(ctx context.Context, vendorID uuid.UUID, filter ListFilter) ([]PaymentResponse, error) {
	payments, err := s.paymentRepo.FindByVendor(ctx, vendorID, filter.toDomainFilter())
	if err != nil {
		return nil, err
	}
	return ToPaymentResponses(payments), nil
}

// Process puts a pending payment in flight with its settlement channel
func (s *PaymentService) Process(ctx context.Context, paymentID uuid.UUID, req ProcessPaymentRequest) (*PaymentResponse, error) {
	return s.transition(ctx, paymentID, func(p *finance.Payment) error {
		return p.BeginProcessing(finance.PaymentMethod(req.Method), req.TransactionReference)
	})
}

// Complete records a settled payment
func (s *PaymentService) Complete(ctx context.Context, paymentID uuid.UUID, req CompletePaymentRequest) (*PaymentResponse, error) {
	when := time.Now()
	if req.PaymentDate != nil {
		when = *req.PaymentDate
	}
	return s.transition(ctx, paymentID, func(p *finance.Payment) error {
		return p.Complete(when)
	})
}

// Fail records a failed settlement
func (s *PaymentService) Fail(ctx context.Context, paymentID uuid.UUID, req FailPaymentRequest) (*PaymentResponse, error) {
	return s.transition(ctx, paymentID, func(p *finance.Payment) error {
		return p.Fail(req.Remarks)
	})
}

func (s *PaymentService) transition(ctx context.Context, paymentID uuid.UUID, apply func(*finance.Payment) error) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if err := apply(payment); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}
	response := ToPaymentResponse(payment)
	return &response, nil
}
