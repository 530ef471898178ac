package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineKM(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		p := Point{Latitude: 19.076, Longitude: 72.8777}
		km, err := HaversineKM(p, p)
		require.NoError(t, err)
		assert.Equal(t, 0.0, km)
	})

	t.Run("mumbai to pune", func(t *testing.T) {
		mumbai := Point{Latitude: 19.0760, Longitude: 72.8777}
		pune := Point{Latitude: 18.5204, Longitude: 73.8567}
		km, err := HaversineKM(mumbai, pune)
		require.NoError(t, err)
		// Great-circle distance is roughly 120 km.
		assert.InDelta(t, 120, km, 5)
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		km, err := HaversineKM(Point{Latitude: 0}, Point{Latitude: 1})
		require.NoError(t, err)
		assert.InDelta(t, 111.19, km, 0.5)
	})

	t.Run("result is rounded to two decimals", func(t *testing.T) {
		km, err := HaversineKM(
			Point{Latitude: 28.6139, Longitude: 77.2090},
			Point{Latitude: 28.7041, Longitude: 77.1025},
		)
		require.NoError(t, err)
		assert.Equal(t, km, float64(int(km*100))/100)
	})

	t.Run("rejects out of range latitude", func(t *testing.T) {
		_, err := HaversineKM(Point{Latitude: 91}, Point{})
		assert.Error(t, err)
	})

	t.Run("rejects out of range longitude", func(t *testing.T) {
		_, err := HaversineKM(Point{}, Point{Longitude: -181})
		assert.Error(t, err)
	})
}
