// Package metrics provides Prometheus metrics for the search service.
// Scrape these at /metrics for Grafana dashboards and alerting.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "search_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Translation Metrics
	TranslationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_translations_total",
			Help: "Natural language queries translated, by language and intent",
		},
		[]string{"language", "intent"},
	)

	TranslationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_translation_duration_seconds",
			Help:    "Time taken to translate a query to Scryfall syntax",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		},
	)

	TranslationErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_translation_errors_total",
			Help: "Translation errors by type",
		},
		[]string{"type"}, // "validation", "latest_set", "internal"
	)

	// Scryfall API Metrics
	ScryfallRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_scryfall_requests_total",
			Help: "Total Scryfall API requests by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)

	ScryfallRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "search_scryfall_request_duration_seconds",
			Help:    "Scryfall API call latency",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	ScryfallRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_scryfall_retries_total",
			Help: "Retried Scryfall API requests",
		},
	)

	CircuitBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "search_scryfall_circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 half-open, 2 open",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_cache_hits_total",
			Help: "Cache hits by namespace",
		},
		[]string{"namespace"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_cache_misses_total",
			Help: "Cache misses by namespace",
		},
		[]string{"namespace"},
	)

	// Search History Metrics
	SearchesRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_history_records_total",
			Help: "Search history rows written",
		},
	)

	SetCatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "search_set_catalog_size",
			Help: "Number of sets in the local set catalog",
		},
	)
)
