package finance

import (
	"strings"
	"time"

	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus tracks an outgoing vendor payment
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
)

// PaymentMethod is the settlement channel
type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCheque       PaymentMethod = "cheque"
	PaymentMethodUPI          PaymentMethod = "upi"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodOther        PaymentMethod = "other"
)

// IsValid reports whether the method is recognized
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodBankTransfer, PaymentMethodCheque, PaymentMethodUPI,
		PaymentMethodCash, PaymentMethodOther:
		return true
	}
	return false
}

// Payment settles one invoice. Each invoice has at most one payment.
type Payment struct {
	shared.BaseEntity
	InvoiceID            uuid.UUID
	VendorID             uuid.UUID
	Amount               decimal.Decimal
	PaymentDate          *time.Time
	Status               PaymentStatus
	Method               PaymentMethod
	TransactionReference string
	Remarks              string
}

// NewPaymentForInvoice opens a pending payment matching an approved
// invoice's amount.
func NewPaymentForInvoice(invoice *Invoice) (*Payment, error) {
	if invoice == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Payment requires an invoice")
	}
	return &Payment{
		BaseEntity: shared.NewBaseEntity(),
		InvoiceID:  invoice.ID,
		VendorID:   invoice.VendorID,
		Amount:     invoice.Amount,
		Status:     PaymentStatusPending,
		Method:     PaymentMethodBankTransfer,
	}, nil
}

// BeginProcessing marks the payment as in flight with its method and
// transaction reference.
func (p *Payment) BeginProcessing(method PaymentMethod, reference string) error {
	if p.Status != PaymentStatusPending {
		return shared.ErrInvalidState
	}
	if !method.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Unknown payment method: "+string(method))
	}
	p.Method = method
	p.TransactionReference = strings.TrimSpace(reference)
	p.Status = PaymentStatusProcessing
	p.Touch()
	return nil
}

// Complete records a settled payment
func (p *Payment) Complete(when time.Time) error {
	if p.Status != PaymentStatusPending && p.Status != PaymentStatusProcessing {
		return shared.ErrInvalidState
	}
	p.Status = PaymentStatusCompleted
	p.PaymentDate = &when
	p.Touch()
	return nil
}

// Fail records a failed settlement; the payment can be retried by
// moving it back through BeginProcessing.
func (p *Payment) Fail(remarks string) error {
	if p.Status != PaymentStatusProcessing {
		return shared.ErrInvalidState
	}
	p.Status = PaymentStatusFailed
	p.Remarks = remarks
	p.Touch()
	return nil
}
