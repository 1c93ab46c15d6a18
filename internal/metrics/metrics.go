package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	StrategiesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strategy_bundles_generated_total",
			Help: "Total number of strategy bundles generated",
		},
		[]string{"language"},
	)

	StrategiesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strategy_requests_rejected_total",
			Help: "Total number of generate requests that did not produce a bundle",
		},
		[]string{"reason"},
	)
)

// 拒绝原因
const (
	RejectMissingNiche = "missing_niche"
	RejectBadBody      = "bad_body"
	RejectInternal     = "internal"
	RejectRateLimited  = "rate_limited"
	RejectPanic        = "panic"
)
