package finance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Pratul75/report360/internal/domain/finance"
	"github.com/Pratul75/report360/internal/domain/fleet"
	"github.com/Pratul75/report360/internal/domain/shared"
)

// MockInvoiceRepository is a mock implementation of InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Invoice, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *finance.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]finance.Invoice, error) {
	args := m.Called(ctx, vendorID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByNumber(ctx context.Context, invoiceNumber string) (*finance.Invoice, error) {
	args := m.Called(ctx, invoiceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ExistsByNumber(ctx context.Context, invoiceNumber string) (bool, error) {
	args := m.Called(ctx, invoiceNumber)
	return args.Bool(0), args.Error(1)
}

// MockPaymentRepository is a mock implementation of PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Payment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, payment *finance.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) (*finance.Payment, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]finance.Payment, error) {
	args := m.Called(ctx, vendorID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Payment), args.Error(1)
}

// MockVendorRepository is a mock implementation of fleet.VendorRepository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]fleet.Vendor, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fleet.Vendor), args.Error(1)
}

func (m *MockVendorRepository) Save(ctx context.Context, vendor *fleet.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVendorRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVendorRepository) FindByStatus(ctx context.Context, status fleet.VendorStatus, filter shared.Filter) ([]fleet.Vendor, error) {
	args := m.Called(ctx, status, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fleet.Vendor), args.Error(1)
}

func testInvoice(t *testing.T) *finance.Invoice {
	t.Helper()
	invoice, err := finance.NewInvoice(uuid.New(), "INV-2026-0042", decimal.NewFromInt(18500), time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return invoice
}

func newInvoiceService() (*InvoiceService, *MockInvoiceRepository, *MockPaymentRepository, *MockVendorRepository) {
	invoiceRepo := new(MockInvoiceRepository)
	paymentRepo := new(MockPaymentRepository)
	vendorRepo := new(MockVendorRepository)
	scope := NewNoOpTransactionScope(invoiceRepo, paymentRepo)
	return NewInvoiceService(invoiceRepo, paymentRepo, vendorRepo, scope), invoiceRepo, paymentRepo, vendorRepo
}

func TestInvoiceService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects duplicate invoice number", func(t *testing.T) {
		svc, invoiceRepo, _, vendorRepo := newInvoiceService()

		vendor, err := fleet.NewVendor("Shree Transport", "Pune", "vehicles")
		require.NoError(t, err)
		vendorRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
		invoiceRepo.On("ExistsByNumber", ctx, "INV-2026-0042").Return(true, nil)

		_, err = svc.Create(ctx, CreateInvoiceRequest{
			VendorID:      vendor.ID,
			InvoiceNumber: "INV-2026-0042",
			Amount:        decimal.NewFromInt(18500),
			InvoiceDate:   time.Now(),
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		invoiceRepo.AssertNotCalled(t, "Save")
	})

	t.Run("unknown vendor is NOT_FOUND", func(t *testing.T) {
		svc, _, _, vendorRepo := newInvoiceService()

		vendorID := uuid.New()
		vendorRepo.On("FindByID", ctx, vendorID).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(ctx, CreateInvoiceRequest{
			VendorID:      vendorID,
			InvoiceNumber: "INV-1",
			Amount:        decimal.NewFromInt(100),
			InvoiceDate:   time.Now(),
		})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}

func TestInvoiceService_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("opens a pending payment for the invoice amount", func(t *testing.T) {
		svc, invoiceRepo, paymentRepo, _ := newInvoiceService()

		invoice := testInvoice(t)
		require.NoError(t, invoice.Submit())

		invoiceRepo.On("FindByID", ctx, invoice.ID).Return(invoice, nil)
		invoiceRepo.On("Save", ctx, invoice).Return(nil)

		var created *finance.Payment
		paymentRepo.On("Save", ctx, mock.AnythingOfType("*finance.Payment")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*finance.Payment)
			}).
			Return(nil)

		resp, err := svc.Approve(ctx, invoice.ID)
		require.NoError(t, err)
		assert.Equal(t, string(finance.InvoiceStatusApproved), resp.Status)

		require.NotNil(t, created)
		assert.Equal(t, invoice.ID, created.InvoiceID)
		assert.Equal(t, invoice.VendorID, created.VendorID)
		assert.True(t, created.Amount.Equal(invoice.Amount))
		assert.Equal(t, finance.PaymentStatusPending, created.Status)
	})

	t.Run("cannot approve before submission", func(t *testing.T) {
		svc, invoiceRepo, paymentRepo, _ := newInvoiceService()

		invoice := testInvoice(t)
		invoiceRepo.On("FindByID", ctx, invoice.ID).Return(invoice, nil)

		_, err := svc.Approve(ctx, invoice.ID)
		assert.ErrorIs(t, err, shared.ErrInvalidState)
		paymentRepo.AssertNotCalled(t, "Save")
	})
}

func TestInvoiceService_MarkPaid(t *testing.T) {
	ctx := context.Background()

	t.Run("settles the payment with the invoice", func(t *testing.T) {
		svc, invoiceRepo, paymentRepo, _ := newInvoiceService()

		invoice := testInvoice(t)
		require.NoError(t, invoice.Submit())
		require.NoError(t, invoice.Approve())
		payment, err := finance.NewPaymentForInvoice(invoice)
		require.NoError(t, err)

		invoiceRepo.On("FindByID", ctx, invoice.ID).Return(invoice, nil)
		invoiceRepo.On("Save", ctx, invoice).Return(nil)
		paymentRepo.On("FindByInvoice", ctx, invoice.ID).Return(payment, nil)
		paymentRepo.On("Save", ctx, payment).Return(nil)

		resp, err := svc.MarkPaid(ctx, invoice.ID)
		require.NoError(t, err)
		assert.Equal(t, string(finance.InvoiceStatusPaid), resp.Status)
		assert.Equal(t, finance.PaymentStatusCompleted, payment.Status)
		assert.NotNil(t, payment.PaymentDate)
	})

	t.Run("tolerates a missing payment row", func(t *testing.T) {
		svc, invoiceRepo, paymentRepo, _ := newInvoiceService()

		invoice := testInvoice(t)
		require.NoError(t, invoice.Submit())
		require.NoError(t, invoice.Approve())

		invoiceRepo.On("FindByID", ctx, invoice.ID).Return(invoice, nil)
		invoiceRepo.On("Save", ctx, invoice).Return(nil)
		paymentRepo.On("FindByInvoice", ctx, invoice.ID).Return(nil, shared.ErrNotFound)

		resp, err := svc.MarkPaid(ctx, invoice.ID)
		require.NoError(t, err)
		assert.Equal(t, string(finance.InvoiceStatusPaid), resp.Status)
		paymentRepo.AssertNotCalled(t, "Save")
	})
}
