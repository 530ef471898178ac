package crm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("creates active client", func(t *testing.T) {
		c, err := NewClient("Acme FMCG", "Acme Ltd", "Contact@Acme.com", "9876543210")
		require.NoError(t, err)
		assert.Equal(t, "contact@acme.com", c.Email)
		assert.True(t, c.IsActive)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := NewClient("  ", "", "", "")
		assert.Error(t, err)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := NewClient("Acme", "", "not-an-email", "")
		assert.Error(t, err)
	})
}

func TestClientDeactivate(t *testing.T) {
	c, err := NewClient("Acme", "", "", "")
	require.NoError(t, err)

	c.Deactivate()
	assert.False(t, c.IsActive)

	c.Activate()
	assert.True(t, c.IsActive)
}

func TestCascadeCountsTotal(t *testing.T) {
	counts := CascadeCounts{
		Projects:           2,
		Campaigns:          5,
		Expenses:           10,
		Reports:            3,
		Invoices:           4,
		PromoterActivities: 6,
		DriverAssignments:  7,
	}
	assert.Equal(t, int64(37), counts.Total())
	assert.Equal(t, int64(0), CascadeCounts{}.Total())
}
