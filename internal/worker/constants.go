package worker

import "time"

// ============================================================================
// Log Messages - Catalog Refresh Worker
// ============================================================================

// Log messages for catalog refresh worker operations
const (
	LogMsgCatalogRefreshScheduled     = "Catalog refresh scheduled"
	LogMsgCatalogRefreshStarting      = "Scheduled catalog refresh starting"
	LogMsgCatalogRefreshCompleted     = "Scheduled catalog refresh completed"
	LogMsgCatalogRefreshFailed        = "Scheduled catalog refresh failed"
	LogMsgCatalogRefreshManualTrigger = "Catalog refresh manually triggered"
	LogMsgCatalogRefreshDisabled      = "Catalog refresh worker disabled"
)

// ============================================================================
// Worker Configuration
// ============================================================================

const (
	// RefreshTimeoutFraction bounds one refresh to a share of the interval
	RefreshTimeoutFraction = 2

	// MinRefreshTimeout is the floor for a single refresh attempt
	MinRefreshTimeout = 5 * time.Second
)
