package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedDashboard struct {
	Role      string `json:"role"`
	Campaigns int64  `json:"campaigns"`
}

func TestInMemoryReportCache(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips a struct", func(t *testing.T) {
		c := NewInMemoryReportCache()

		in := cachedDashboard{Role: "admin", Campaigns: 7}
		require.NoError(t, c.Set(ctx, "dashboard:admin", in, time.Minute))

		var out cachedDashboard
		hit, err := c.Get(ctx, "dashboard:admin", &out)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, in, out)
	})

	t.Run("miss on unknown key", func(t *testing.T) {
		c := NewInMemoryReportCache()

		var out cachedDashboard
		hit, err := c.Get(ctx, "dashboard:missing", &out)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("entry expires after TTL", func(t *testing.T) {
		c := NewInMemoryReportCache()

		require.NoError(t, c.Set(ctx, "dashboard:admin", cachedDashboard{}, time.Millisecond))
		time.Sleep(5 * time.Millisecond)

		var out cachedDashboard
		hit, err := c.Get(ctx, "dashboard:admin", &out)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("invalidate removes only named keys", func(t *testing.T) {
		c := NewInMemoryReportCache()

		require.NoError(t, c.Set(ctx, "dashboard:admin", cachedDashboard{}, time.Minute))
		require.NoError(t, c.Set(ctx, "dashboard:sales", cachedDashboard{}, time.Minute))

		require.NoError(t, c.Invalidate(ctx, "dashboard:admin"))

		var out cachedDashboard
		hit, err := c.Get(ctx, "dashboard:admin", &out)
		require.NoError(t, err)
		assert.False(t, hit)

		hit, err = c.Get(ctx, "dashboard:sales", &out)
		require.NoError(t, err)
		assert.True(t, hit)
	})

	t.Run("invalidate prefix clears the family", func(t *testing.T) {
		c := NewInMemoryReportCache()

		require.NoError(t, c.Set(ctx, "dashboard:admin", cachedDashboard{}, time.Minute))
		require.NoError(t, c.Set(ctx, "dashboard:vendor:123", cachedDashboard{}, time.Minute))
		require.NoError(t, c.Set(ctx, "analytics:spend", cachedDashboard{}, time.Minute))

		require.NoError(t, c.InvalidatePrefix(ctx, KeyPrefixDashboard))

		var out cachedDashboard
		hit, err := c.Get(ctx, "dashboard:admin", &out)
		require.NoError(t, err)
		assert.False(t, hit)

		hit, err = c.Get(ctx, "dashboard:vendor:123", &out)
		require.NoError(t, err)
		assert.False(t, hit)

		hit, err = c.Get(ctx, "analytics:spend", &out)
		require.NoError(t, err)
		assert.True(t, hit)
	})
}
