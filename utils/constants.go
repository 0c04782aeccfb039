// File: utils/constants.go
package utils

import "time"

// KitchenCachePrefix is the prefix used for Redis kitchen-config cache keys.
const KitchenCachePrefix = "kitchen:"

// KitchenCacheTTL is the time-to-live for cached kitchen documents. Slot
// configuration changes rarely; a short TTL bounds staleness after an admin
// edit that bypassed invalidation.
const KitchenCacheTTL = 5 * time.Minute
