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

// Food Directory Metrics
var (
	FoodSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFoodSearches,
			Help: HelpTextFoodSearches,
		},
		[]string{LabelResult},
	)

	FoodCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFoodCacheHits,
			Help: HelpTextFoodCacheHits,
		},
	)

	FoodsImported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFoodsImported,
			Help: HelpTextFoodsImported,
		},
	)

	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProviderRequests,
			Help: HelpTextProviderRequests,
		},
		[]string{LabelResult},
	)

	RecipesWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecipesWritten,
			Help: HelpTextRecipesWritten,
		},
		[]string{LabelOperation},
	)
)

// Diary Metrics
var (
	DiaryEntries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDiaryEntries,
			Help: HelpTextDiaryEntries,
		},
		[]string{LabelOperation},
	)

	StatDeltasApplied = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStatDeltasApplied,
			Help: HelpTextStatDeltasApplied,
		},
	)
)
