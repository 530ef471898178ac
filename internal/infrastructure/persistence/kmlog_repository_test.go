package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pratul75/report360/internal/domain/fleet"
	"github.com/Pratul75/report360/internal/domain/shared"
)

func TestGormKMLogRepository_FindByDriverAndDate(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormKMLogRepository(db)
	ctx := context.Background()

	driverID := uuid.New()
	day1 := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	log1, err := fleet.NewDailyKMLog(driverID, day1)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, log1))

	log2, err := fleet.NewDailyKMLog(driverID, day2)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, log2))

	t.Run("any time within the day matches", func(t *testing.T) {
		found, err := repo.FindByDriverAndDate(ctx, driverID, day1.Add(14*time.Hour+30*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, log1.ID, found.ID)

		found, err = repo.FindByDriverAndDate(ctx, driverID, day2)
		require.NoError(t, err)
		assert.Equal(t, log2.ID, found.ID)
	})

	t.Run("day without a log returns ErrNotFound", func(t *testing.T) {
		_, err := repo.FindByDriverAndDate(ctx, driverID, day1.AddDate(0, 0, -1))
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("other driver has no log", func(t *testing.T) {
		_, err := repo.FindByDriverAndDate(ctx, uuid.New(), day1)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormKMLogRepository_JourneyRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormKMLogRepository(db)
	ctx := context.Background()

	driverID := uuid.New()
	day := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	log, err := fleet.NewDailyKMLog(driverID, day)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, log))

	start := fleet.Point{Latitude: 18.5204, Longitude: 73.8567}
	end := fleet.Point{Latitude: 18.5310, Longitude: 73.8446}

	require.NoError(t, log.StartJourney(start, day.Add(9*time.Hour)))
	require.NoError(t, repo.Save(ctx, log))

	require.NoError(t, log.EndJourney(end, day.Add(18*time.Hour)))
	require.NoError(t, repo.Save(ctx, log))

	found, err := repo.FindByID(ctx, log.ID)
	require.NoError(t, err)

	assert.Equal(t, fleet.KMLogStatusCompleted, found.Status)
	require.NotNil(t, found.StartPoint)
	require.NotNil(t, found.EndPoint)
	assert.InDelta(t, start.Latitude, found.StartPoint.Latitude, 1e-9)
	assert.InDelta(t, end.Longitude, found.EndPoint.Longitude, 1e-9)
	require.NotNil(t, found.TotalKM)
	// Roughly 1.7 km between the two points.
	assert.InDelta(t, 1.7, *found.TotalKM, 0.3)
}
