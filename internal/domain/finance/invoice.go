package finance

import (
	"strings"
	"time"

	"github.com/Pratul75/report360/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus tracks a vendor invoice through its approval flow
type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusSubmitted InvoiceStatus = "submitted"
	InvoiceStatusApproved  InvoiceStatus = "approved"
	InvoiceStatusRejected  InvoiceStatus = "rejected"
	InvoiceStatusPaid      InvoiceStatus = "paid"
)

// Invoice is a vendor's bill for campaign work. Approving an invoice
// creates exactly one pending payment for the vendor; marking it paid
// closes the loop.
type Invoice struct {
	shared.BaseEntity
	VendorID      uuid.UUID
	CampaignID    *uuid.UUID
	InvoiceNumber string
	FileURL       string
	Amount        decimal.Decimal
	InvoiceDate   time.Time
	Status        InvoiceStatus
}

// NewInvoice creates a pending invoice
func NewInvoice(vendorID uuid.UUID, invoiceNumber string, amount decimal.Decimal, invoiceDate time.Time) (*Invoice, error) {
	invoiceNumber = strings.TrimSpace(invoiceNumber)
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invoice requires a vendor")
	}
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invoice number is required")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invoice amount must be positive")
	}
	if invoiceDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invoice date is required")
	}
	return &Invoice{
		BaseEntity:    shared.NewBaseEntity(),
		VendorID:      vendorID,
		InvoiceNumber: invoiceNumber,
		Amount:        amount,
		InvoiceDate:   invoiceDate,
		Status:        InvoiceStatusPending,
	}, nil
}

// Submit moves a pending invoice into review
func (i *Invoice) Submit() error {
	if i.Status != InvoiceStatusPending {
		return shared.ErrInvalidState
	}
	i.Status = InvoiceStatusSubmitted
	i.Touch()
	return nil
}

// Approve accepts a submitted invoice. The caller is responsible for
// creating the matching pending payment in the same transaction.
func (i *Invoice) Approve() error {
	if i.Status != InvoiceStatusSubmitted {
		return shared.ErrInvalidState
	}
	i.Status = InvoiceStatusApproved
	i.Touch()
	return nil
}

// Reject declines an invoice that is pending or under review
func (i *Invoice) Reject() error {
	if i.Status != InvoiceStatusPending && i.Status != InvoiceStatusSubmitted {
		return shared.ErrInvalidState
	}
	i.Status = InvoiceStatusRejected
	i.Touch()
	return nil
}

// MarkPaid closes an approved invoice
func (i *Invoice) MarkPaid() error {
	if i.Status != InvoiceStatusApproved {
		return shared.ErrInvalidState
	}
	i.Status = InvoiceStatusPaid
	i.Touch()
	return nil
}
