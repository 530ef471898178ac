package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInvoice(t *testing.T) *Invoice {
	t.Helper()
	inv, err := NewInvoice(uuid.New(), "INV-2025-0042", decimal.NewFromInt(45000), time.Now())
	require.NoError(t, err)
	return inv
}

func TestNewInvoice(t *testing.T) {
	inv := newTestInvoice(t)
	assert.Equal(t, InvoiceStatusPending, inv.Status)

	_, err := NewInvoice(uuid.Nil, "INV-1", decimal.NewFromInt(1), time.Now())
	assert.Error(t, err)

	_, err = NewInvoice(uuid.New(), "", decimal.NewFromInt(1), time.Now())
	assert.Error(t, err)

	_, err = NewInvoice(uuid.New(), "INV-1", decimal.Zero, time.Now())
	assert.Error(t, err)
}

func TestInvoiceLifecycle(t *testing.T) {
	t.Run("pending to submitted to approved to paid", func(t *testing.T) {
		inv := newTestInvoice(t)
		require.NoError(t, inv.Submit())
		require.NoError(t, inv.Approve())
		require.NoError(t, inv.MarkPaid())
		assert.Equal(t, InvoiceStatusPaid, inv.Status)
	})

	t.Run("cannot approve without submitting", func(t *testing.T) {
		inv := newTestInvoice(t)
		assert.Error(t, inv.Approve())
	})

	t.Run("cannot pay before approval", func(t *testing.T) {
		inv := newTestInvoice(t)
		require.NoError(t, inv.Submit())
		assert.Error(t, inv.MarkPaid())
	})

	t.Run("reject allowed from pending and submitted only", func(t *testing.T) {
		inv := newTestInvoice(t)
		require.NoError(t, inv.Reject())

		inv2 := newTestInvoice(t)
		require.NoError(t, inv2.Submit())
		require.NoError(t, inv2.Reject())

		inv3 := newTestInvoice(t)
		require.NoError(t, inv3.Submit())
		require.NoError(t, inv3.Approve())
		assert.Error(t, inv3.Reject())
	})
}

func TestNewPaymentForInvoice(t *testing.T) {
	inv := newTestInvoice(t)
	require.NoError(t, inv.Submit())
	require.NoError(t, inv.Approve())

	payment, err := NewPaymentForInvoice(inv)
	require.NoError(t, err)
	assert.Equal(t, inv.ID, payment.InvoiceID)
	assert.Equal(t, inv.VendorID, payment.VendorID)
	assert.True(t, payment.Amount.Equal(inv.Amount))
	assert.Equal(t, PaymentStatusPending, payment.Status)

	_, err = NewPaymentForInvoice(nil)
	assert.Error(t, err)
}

func TestPaymentLifecycle(t *testing.T) {
	inv := newTestInvoice(t)
	payment, err := NewPaymentForInvoice(inv)
	require.NoError(t, err)

	t.Run("processing to completed", func(t *testing.T) {
		require.NoError(t, payment.BeginProcessing(PaymentMethodUPI, "TXN123"))
		require.NoError(t, payment.Complete(time.Now()))
		assert.Equal(t, PaymentStatusCompleted, payment.Status)
		assert.NotNil(t, payment.PaymentDate)
	})

	t.Run("completed payment is terminal", func(t *testing.T) {
		assert.Error(t, payment.BeginProcessing(PaymentMethodCash, "X"))
		assert.Error(t, payment.Fail("no"))
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		p2, err := NewPaymentForInvoice(inv)
		require.NoError(t, err)
		assert.Error(t, p2.BeginProcessing(PaymentMethod("crypto"), "X"))
	})
}
