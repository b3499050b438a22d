package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"

	MetricNameBadgeFetches        = "badge_fetches_total"
	MetricNameBadgeFetchErrors    = "badge_fetch_errors_total"
	MetricNameBadgesEnqueued      = "badge_notifications_enqueued_total"
	MetricNameFastPollingTriggers = "fast_polling_activations_total"
	MetricNameVendorEventsSent    = "vendor_events_sent_total"
	MetricNameVendorEventErrors   = "vendor_event_errors_total"
	MetricNameOrdersCompleted     = "orders_completed_total"
	MetricNameActiveSessions      = "badge_sessions_active"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests processed"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextBadgeFetches        = "Total badge list fetches against the Badger API"
	HelpTextBadgeFetchErrors    = "Total failed badge list fetches"
	HelpTextBadgesEnqueued      = "Total badges enqueued for notification display"
	HelpTextFastPollingTriggers = "Total purchase-triggered fast polling activations"
	HelpTextVendorEventsSent    = "Total events delivered to the Badger API"
	HelpTextVendorEventErrors   = "Total event deliveries to the Badger API that failed"
	HelpTextOrdersCompleted     = "Total demo orders completed at checkout"
	HelpTextActiveSessions      = "Number of badge sessions currently polling"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelEvent  = "event"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = prometheus.DefBuckets
