package catalog

import "time"

// Index cache defaults
const (
	DefaultIndexCacheSize = 4
	DefaultIndexCacheTTL  = 24 * time.Hour
)

// Log messages
const (
	LogMsgIndexCacheHit    = "Catalog index cache hit"
	LogMsgIndexBuilt       = "Catalog index built"
	LogMsgRefreshStarted   = "Catalog refresh started"
	LogMsgRefreshCompleted = "Catalog refresh completed"
	LogMsgRefreshFailed    = "Catalog refresh failed"
	LogMsgDuplicateItemID  = "Duplicate item id in catalog, last record wins"
)

// Error messages
const (
	ErrMsgFetchCatalogFailed = "failed to fetch catalog: %w"
	ErrMsgFingerprintFailed  = "failed to fingerprint catalog: %w"
)
