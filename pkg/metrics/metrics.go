// Package metrics provides Prometheus metrics for the insight scoring
// service. A single package-level manager owns a custom registry so tests
// and the /healthz endpoint see the same collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "insight"

// Manager owns every collector for the service.
type Manager struct {
	registry *prometheus.Registry

	// Business metrics.
	evaluations   *prometheus.CounterVec // by tool and tier
	scoreObserved *prometheus.HistogramVec

	// AI dependency health.
	aiRequests  *prometheus.CounterVec // by stage
	aiFallbacks *prometheus.CounterVec // by stage

	// Catalog acquisition.
	catalogPages       prometheus.Counter
	catalogItems       prometheus.Counter
	catalogTruncations prometheus.Counter

	// HTTP performance.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

func newManager() *Manager {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Manager{
		registry: reg,
		evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Completed tool evaluations by tool and resulting tier.",
		}, []string{"tool", "tier"}),
		scoreObserved: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "score",
			Help:      "Distribution of total scores by tool.",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}, []string{"tool"}),
		aiRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ai_requests_total",
			Help:      "Attempted AI calls by pipeline stage.",
		}, []string{"stage"}),
		aiFallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ai_fallbacks_total",
			Help:      "AI calls that fell back to the deterministic path, by stage.",
		}, []string{"stage"}),
		catalogPages: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_pages_total",
			Help:      "Catalog pages fetched.",
		}),
		catalogItems: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_items_total",
			Help:      "Content items collected from the catalog.",
		}),
		catalogTruncations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_truncations_total",
			Help:      "Acquisitions cut short by an upstream failure.",
		}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint, method, and status code.",
		}, []string{"endpoint", "method", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request duration in milliseconds.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"endpoint", "method", "status"}),
	}
}

var defaultManager = newManager()

// GetRegistry exposes the custom registry for the metrics endpoint.
func GetRegistry() *prometheus.Registry {
	return defaultManager.registry
}

// RecordEvaluation counts a completed evaluation and observes its score.
func RecordEvaluation(toolName, tierName string, score int) {
	defaultManager.evaluations.WithLabelValues(toolName, tierName).Inc()
	defaultManager.scoreObserved.WithLabelValues(toolName).Observe(float64(score))
}

// RecordAIRequest counts an attempted AI call for a pipeline stage.
func RecordAIRequest(stage string) {
	defaultManager.aiRequests.WithLabelValues(stage).Inc()
}

// RecordAIFallback counts a fall-through to the deterministic path.
func RecordAIFallback(stage string) {
	defaultManager.aiFallbacks.WithLabelValues(stage).Inc()
}

// RecordCatalogPage counts one fetched catalog page and its items.
func RecordCatalogPage(items int) {
	defaultManager.catalogPages.Inc()
	defaultManager.catalogItems.Add(float64(items))
}

// RecordCatalogTruncation counts an acquisition cut short by a failure.
func RecordCatalogTruncation() {
	defaultManager.catalogTruncations.Inc()
}

// RecordHTTPRequest counts one handled HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	defaultManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration observes one request's duration in ms.
func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	defaultManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
}
