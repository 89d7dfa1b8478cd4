// File: utils/constants.go
package utils

import "time"

// SessionPrefix is the prefix used for Redis operator session keys.
const SessionPrefix = "session:"

// VenueCachePrefix is the prefix used for cached venue detail entries.
const VenueCachePrefix = "venue:"

// VenueCacheTTL is the time-to-live for cached venue details.
const VenueCacheTTL = 30 * time.Minute
