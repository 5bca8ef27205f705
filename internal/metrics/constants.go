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

// Food directory metric names
const (
	MetricNameFoodSearches      = "food_searches_total"
	MetricNameFoodCacheHits     = "food_cache_hits_total"
	MetricNameFoodsImported     = "foods_imported_total"
	MetricNameProviderRequests  = "nutrition_provider_requests_total"
	MetricNameRecipesWritten    = "recipes_written_total"
	MetricNameDiaryEntries      = "diary_entries_total"
	MetricNameStatDeltasApplied = "diary_stat_deltas_total"
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

// Domain metric help text
const (
	HelpTextFoodSearches      = "Total number of food searches by outcome"
	HelpTextFoodCacheHits     = "Total number of food searches served from cache"
	HelpTextFoodsImported     = "Total number of foods imported from the nutrition provider"
	HelpTextProviderRequests  = "Total number of nutrition provider lookups by outcome"
	HelpTextRecipesWritten    = "Total number of recipe writes by operation"
	HelpTextDiaryEntries      = "Total number of diary entry changes by operation"
	HelpTextStatDeltasApplied = "Total number of manual statistic deltas applied"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelResult    = "result"
	LabelOperation = "operation"
)

// Label values
const (
	ResultLocal    = "local"
	ResultImported = "imported"
	ResultNotFound = "not_found"
	ResultSuccess  = "success"
	ResultFailure  = "failure"

	OperationCreate  = "create"
	OperationReplace = "replace"
	OperationRecord  = "record"
	OperationDelete  = "delete"
)

// UnmatchedRoute labels requests that no route pattern matched.
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
