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

// Badge polling metrics
var (
	BadgeFetches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBadgeFetches,
			Help: HelpTextBadgeFetches,
		},
	)

	BadgeFetchErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBadgeFetchErrors,
			Help: HelpTextBadgeFetchErrors,
		},
	)

	BadgesEnqueued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBadgesEnqueued,
			Help: HelpTextBadgesEnqueued,
		},
	)

	FastPollingTriggers = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFastPollingTriggers,
			Help: HelpTextFastPollingTriggers,
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)
)

// Storefront metrics
var (
	VendorEventsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVendorEventsSent,
			Help: HelpTextVendorEventsSent,
		},
		[]string{LabelEvent},
	)

	VendorEventErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVendorEventErrors,
			Help: HelpTextVendorEventErrors,
		},
		[]string{LabelEvent},
	)

	OrdersCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOrdersCompleted,
			Help: HelpTextOrdersCompleted,
		},
	)
)
