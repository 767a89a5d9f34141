package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Catalog metric names
const (
	MetricNameCatalogItems        = "catalog_items"
	MetricNameCatalogRefreshes    = "catalog_refreshes_total"
	MetricNameCatalogFallbacks    = "catalog_fallbacks_total"
	MetricNameCatalogFetchedFiles = "catalog_fetched_files_total"
)

// Planner metric names
const (
	MetricNamePlansComputed   = "plans_computed_total"
	MetricNameTreeNodesBuilt  = "tree_nodes_built_total"
	MetricNameTreeTruncations = "tree_truncations_total"
	MetricNameUnresolvedRefs  = "unresolved_references_total"
	MetricNamePlanDuration    = "plan_duration_seconds"
	MetricNameLoadoutsActive  = "loadouts_active"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Catalog metric help text
const (
	HelpTextCatalogItems        = "Number of item records in the loaded catalog"
	HelpTextCatalogRefreshes    = "Total number of catalog refresh attempts"
	HelpTextCatalogFallbacks    = "Total number of times the static fallback catalog was served"
	HelpTextCatalogFetchedFiles = "Total number of remote item files fetched"
)

// Planner metric help text
const (
	HelpTextPlansComputed   = "Total number of crafting plans computed"
	HelpTextTreeNodesBuilt  = "Total number of crafting tree nodes built"
	HelpTextTreeTruncations = "Total number of crafting subtrees cut to a leaf"
	HelpTextUnresolvedRefs  = "Total number of component references missing from the catalog"
	HelpTextPlanDuration    = "Crafting plan computation latency in seconds"
	HelpTextLoadoutsActive  = "Number of loadouts held in memory"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelResult = "result"
	LabelReason = "reason"
	LabelKind   = "kind"
)

// Label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"

	ReasonCycle = "cycle"
	ReasonDepth = "depth"

	KindComponent   = "component"
	KindPredecessor = "predecessor"
	KindRoot        = "root"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// PlanLatencyBuckets covers in-memory plan computation, 10µs to 100ms
var PlanLatencyBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1}
