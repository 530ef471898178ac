package cache

import (
	"context"
	"time"
)

// ReportCache stores rendered dashboard and analytics payloads so that
// repeated reads within the TTL skip the aggregation queries. Values
// are stored as JSON.
type ReportCache interface {
	// Get unmarshals the cached value into dest. The bool reports
	// whether the key was present and not expired.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores the value under key for the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Invalidate removes the given keys. Missing keys are ignored.
	Invalidate(ctx context.Context, keys ...string) error

	// InvalidatePrefix removes every key sharing the prefix. Used when
	// a write makes a whole dashboard family stale.
	InvalidatePrefix(ctx context.Context, prefix string) error

	// Close releases the underlying connection, if any.
	Close() error
}

// Well-known key prefixes. Writers invalidate by prefix so readers can
// compose keys freely underneath them.
const (
	KeyPrefixDashboard = "dashboard:"
	KeyPrefixAnalytics = "analytics:"
)
