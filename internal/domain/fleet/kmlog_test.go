package fleet

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyKMLogJourney(t *testing.T) {
	start := Point{Latitude: 19.0760, Longitude: 72.8777}
	end := Point{Latitude: 18.5204, Longitude: 73.8567}

	t.Run("full GPS journey computes distance", func(t *testing.T) {
		log, err := NewDailyKMLog(uuid.New(), time.Now())
		require.NoError(t, err)
		assert.Equal(t, KMLogStatusPending, log.Status)

		require.NoError(t, log.StartJourney(start, time.Now()))
		assert.Equal(t, KMLogStatusInProgress, log.Status)

		require.NoError(t, log.EndJourney(end, time.Now()))
		assert.Equal(t, KMLogStatusCompleted, log.Status)
		require.NotNil(t, log.TotalKM)
		assert.InDelta(t, 120, *log.TotalKM, 5)
	})

	t.Run("cannot end before starting", func(t *testing.T) {
		log, err := NewDailyKMLog(uuid.New(), time.Now())
		require.NoError(t, err)
		assert.Error(t, log.EndJourney(end, time.Now()))
	})

	t.Run("cannot start twice", func(t *testing.T) {
		log, err := NewDailyKMLog(uuid.New(), time.Now())
		require.NoError(t, err)
		require.NoError(t, log.StartJourney(start, time.Now()))
		assert.Error(t, log.StartJourney(start, time.Now()))
	})

	t.Run("invalid coordinates rejected", func(t *testing.T) {
		log, err := NewDailyKMLog(uuid.New(), time.Now())
		require.NoError(t, err)
		assert.Error(t, log.StartJourney(Point{Latitude: 95}, time.Now()))
	})

	t.Run("odometer fallback when GPS start missing", func(t *testing.T) {
		log, err := NewDailyKMLog(uuid.New(), time.Now())
		require.NoError(t, err)

		// Legacy flow: status moved forward manually with odometer readings.
		startKM := 12000.0
		endKM := 12085.5
		log.StartOdometer = &startKM
		log.EndOdometer = &endKM
		log.Status = KMLogStatusInProgress

		require.NoError(t, log.EndJourney(end, time.Now()))
		require.NotNil(t, log.TotalKM)
		assert.InDelta(t, 85.5, *log.TotalKM, 0.001)
	})
}
