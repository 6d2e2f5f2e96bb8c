package character

import "time"

// Cache defaults
const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 5 * time.Minute

	// CacheSchemaVersion is bumped when the cached structure changes to auto-invalidate old entries
	CacheSchemaVersion = "1.0"
)

// Log messages
const (
	LogMsgCharacterUpserted = "Character upserted"
	LogMsgCacheInvalidated  = "Character cache entry invalidated"
)
