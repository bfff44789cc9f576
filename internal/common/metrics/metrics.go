// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "evaluations_total",
			Help: "Total number of answer evaluations by scoring path",
		},
		[]string{"path"}, // "remote" or "fallback"
	)

	EvaluationFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "evaluation_fallbacks_total",
			Help: "Total number of evaluations that degraded to the local scorer",
		},
		[]string{"reason"},
	)

	EvaluationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "evaluation_duration_seconds",
			Help: "Duration of answer evaluation in seconds",
		},
		[]string{"path"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"route", "status"},
	)
)
