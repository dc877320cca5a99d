// File: utils/constants.go
package utils

import "time"

// ScheduleCachePrefix is the prefix for cached schedule-rule snapshots.
const ScheduleCachePrefix = "schedule:"

// ScheduleCacheTTL bounds how stale a cached rule snapshot may be.
const ScheduleCacheTTL = 5 * time.Minute

// QuoteSessionTTL is the lifetime of a quote-wizard session in Redis.
const QuoteSessionTTL = 30 * time.Minute
