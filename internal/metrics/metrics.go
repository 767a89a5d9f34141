package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Catalog Metrics
var (
	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogItems,
			Help: HelpTextCatalogItems,
		},
	)

	CatalogRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogRefreshes,
			Help: HelpTextCatalogRefreshes,
		},
		[]string{LabelResult},
	)

	CatalogFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogFallbacks,
			Help: HelpTextCatalogFallbacks,
		},
	)

	CatalogFetchedFiles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogFetchedFiles,
			Help: HelpTextCatalogFetchedFiles,
		},
		[]string{LabelResult},
	)
)

// Planner Metrics
var (
	PlansComputed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlansComputed,
			Help: HelpTextPlansComputed,
		},
	)

	TreeNodesBuilt = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTreeNodesBuilt,
			Help: HelpTextTreeNodesBuilt,
		},
	)

	TreeTruncations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTreeTruncations,
			Help: HelpTextTreeTruncations,
		},
		[]string{LabelReason},
	)

	UnresolvedRefs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUnresolvedRefs,
			Help: HelpTextUnresolvedRefs,
		},
		[]string{LabelKind},
	)

	PlanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePlanDuration,
			Help:    HelpTextPlanDuration,
			Buckets: PlanLatencyBuckets,
		},
	)

	LoadoutsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameLoadoutsActive,
			Help: HelpTextLoadoutsActive,
		},
	)
)
