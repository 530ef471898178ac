package finance

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpense(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		e, err := NewExpense(uuid.New(), "fuel", decimal.NewFromInt(1500))
		require.NoError(t, err)
		assert.Equal(t, ExpenseStatusPending, e.Status)
		assert.False(t, e.SubmittedDate.IsZero())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		_, err := NewExpense(uuid.New(), "fuel", decimal.Zero)
		assert.Error(t, err)
		_, err = NewExpense(uuid.New(), "fuel", decimal.NewFromInt(-10))
		assert.Error(t, err)
	})

	t.Run("rejects missing type", func(t *testing.T) {
		_, err := NewExpense(uuid.New(), " ", decimal.NewFromInt(10))
		assert.Error(t, err)
	})
}

func TestExpenseApprovalFlow(t *testing.T) {
	t.Run("approve records date", func(t *testing.T) {
		e, err := NewExpense(uuid.New(), "toll", decimal.NewFromInt(200))
		require.NoError(t, err)
		require.NoError(t, e.Approve())
		assert.Equal(t, ExpenseStatusApproved, e.Status)
		assert.NotNil(t, e.ApprovedDate)
	})

	t.Run("approved and rejected are terminal", func(t *testing.T) {
		e, err := NewExpense(uuid.New(), "food", decimal.NewFromInt(300))
		require.NoError(t, err)
		require.NoError(t, e.Reject())
		assert.Error(t, e.Approve())
		assert.Error(t, e.Reject())
	})
}
