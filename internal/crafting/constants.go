package crafting

// ==================== Tree Limits ====================

// DefaultMaxDepth bounds how many composition levels a tree may expand below its root
const DefaultMaxDepth = 64

// MaxDemandQuantity caps one demanded quantity at the request surfaces; keep
// in sync with the max tag on Demand.Quantity
const MaxDemandQuantity = 100000

// Truncation reasons reported on nodes cut short by the builder
const (
	TruncatedCycle = "cycle"
	TruncatedDepth = "depth"
)

// ==================== Log Messages ====================

const (
	LogMsgPlanStarted      = "Plan called"
	LogMsgPlanCompleted    = "Plan computed"
	LogMsgBuildTreeStarted = "BuildTree called"
	LogMsgUnresolvedRoot   = "Demand references unknown item, using placeholder"
	LogMsgTreeTruncated    = "Crafting tree truncated"
	LogMsgPlanSaturated    = "Requirement exceeds the integer range, reporting a lower bound"
)

// ==================== Error Messages ====================

const (
	ErrMsgLoadCatalogFailed = "failed to load catalog: %w"
	ErrMsgQuantityFmt       = "%w: quantity must be positive, got %d for %s"
	ErrMsgItemNotFoundFmt   = "%w: %s"
)
