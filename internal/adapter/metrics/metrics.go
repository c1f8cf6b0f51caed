package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// APIMetrics holds all Prometheus metrics for the lead API.
type APIMetrics struct {
	RequestsTotal     *prometheus.CounterVec
	LeadsCreatedTotal *prometheus.CounterVec
	EmailsTotal       *prometheus.CounterVec
	LoginsTotal       *prometheus.CounterVec
	RateLimitedTotal  prometheus.Counter
}

// NewAPIMetrics initializes and registers the Prometheus metrics.
func NewAPIMetrics() *APIMetrics {
	return &APIMetrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadhub",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method and status.",
		}, []string{"method", "status"}),
		LeadsCreatedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadhub",
			Subsystem: "leads",
			Name:      "created_total",
			Help:      "Total number of leads created, by source.",
		}, []string{"source"}),
		EmailsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadhub",
			Subsystem: "email",
			Name:      "processed_total",
			Help:      "Total number of inbound emails by extraction outcome.",
		}, []string{"outcome"}), // outcome: extracted, rejected, error
		LoginsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadhub",
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Total number of login attempts by result.",
		}, []string{"result"}), // result: success, failure
		RateLimitedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "leadhub",
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Total number of requests rejected by the rate limiter.",
		}),
	}
}
