package crm

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCampaign(t *testing.T) {
	projectID := uuid.New()

	t.Run("starts in planning", func(t *testing.T) {
		c, err := NewCampaign(projectID, "Summer Roadshow", CampaignTypeRoadshow, decimal.NewFromInt(500000))
		require.NoError(t, err)
		assert.Equal(t, CampaignStatusPlanning, c.Status)
		assert.True(t, c.IsActive)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewCampaign(projectID, "X", CampaignType("parade"), decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects negative budget", func(t *testing.T) {
		_, err := NewCampaign(projectID, "X", CampaignTypeBTL, decimal.NewFromInt(-1))
		assert.Error(t, err)
	})

	t.Run("rejects missing project", func(t *testing.T) {
		_, err := NewCampaign(uuid.Nil, "X", CampaignTypeBTL, decimal.Zero)
		assert.Error(t, err)
	})
}

func TestCampaignStatusTransitions(t *testing.T) {
	newCampaign := func(t *testing.T) *Campaign {
		c, err := NewCampaign(uuid.New(), "Test", CampaignTypeSampling, decimal.NewFromInt(1000))
		require.NoError(t, err)
		return c
	}

	t.Run("planning to running to completed", func(t *testing.T) {
		c := newCampaign(t)
		require.NoError(t, c.ChangeStatus(CampaignStatusRunning))
		require.NoError(t, c.ChangeStatus(CampaignStatusCompleted))
		assert.True(t, c.Status.IsTerminal())
	})

	t.Run("hold resumes to running", func(t *testing.T) {
		c := newCampaign(t)
		require.NoError(t, c.ChangeStatus(CampaignStatusUpcoming))
		require.NoError(t, c.ChangeStatus(CampaignStatusHold))
		require.NoError(t, c.ChangeStatus(CampaignStatusRunning))
	})

	t.Run("planning cannot complete directly", func(t *testing.T) {
		c := newCampaign(t)
		assert.Error(t, c.ChangeStatus(CampaignStatusCompleted))
	})

	t.Run("terminal states reject changes", func(t *testing.T) {
		c := newCampaign(t)
		require.NoError(t, c.ChangeStatus(CampaignStatusCancelled))
		assert.Error(t, c.ChangeStatus(CampaignStatusRunning))
	})
}

func TestCampaignSetSchedule(t *testing.T) {
	c, err := NewCampaign(uuid.New(), "Test", CampaignTypeOther, decimal.Zero)
	require.NoError(t, err)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	require.NoError(t, c.SetSchedule(&start, &end))

	assert.Error(t, c.SetSchedule(&end, &start))
}
