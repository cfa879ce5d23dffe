// Package observability holds the Prometheus metric set for the dashboard
// widget backend.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for bulletin fetching
// and widget rendering.
type Metrics struct {
	FetchRequests *prometheus.CounterVec // labels: outcome={success,error}
	CacheLookups  *prometheus.CounterVec // labels: result={hit,miss}
	FetchDuration prometheus.Histogram
	WidgetRenders prometheus.Counter
}

// NewMetrics creates and registers all widget metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "marinedash",
			Name:      "discussion_fetch_requests_total",
			Help:      "Bulletin fetch attempts by outcome.",
		}, []string{"outcome"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "marinedash",
			Name:      "discussion_cache_lookups_total",
			Help:      "Bulletin cache lookups by result.",
		}, []string{"result"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "marinedash",
			Name:      "discussion_fetch_duration_seconds",
			Help:      "Upstream bulletin request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		WidgetRenders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "marinedash",
			Name:      "discussion_widget_renders_total",
			Help:      "Widget fragments rendered for HTTP clients.",
		}),
	}

	prometheus.MustRegister(
		m.FetchRequests,
		m.CacheLookups,
		m.FetchDuration,
		m.WidgetRenders,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "marinedash", Name: "discussion_fetch_requests_total"}, []string{"outcome"}),
		CacheLookups:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "marinedash", Name: "discussion_cache_lookups_total"}, []string{"result"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "marinedash", Name: "discussion_fetch_duration_seconds"}),
		WidgetRenders: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "marinedash", Name: "discussion_widget_renders_total"}),
	}
}
