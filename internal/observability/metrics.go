package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// weather retrieval service.
type Metrics struct {
	RetrievalsTotal   *prometheus.CounterVec // labels: outcome={success,error}
	RetrievalDuration prometheus.Histogram
	ObservationsBuilt prometheus.Counter

	// Per-year data file acquisition.
	YearFetches   *prometheus.CounterVec // labels: source={bundled,local,http}, outcome={hit,miss,error}
	FetchDuration prometheus.Histogram
	CacheWrites   prometheus.Counter

	// HTTP API metrics.
	HTTPRequestsTotal   *prometheus.CounterVec   // labels: route, status
	HTTPRequestDuration *prometheus.HistogramVec // labels: route

	// Sink metrics.
	SinkBatchSize prometheus.Histogram
	SinkLoads     *prometheus.CounterVec // labels: sink={kafka,postgres}, outcome={success,error}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RetrievalsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weathervault",
			Name:      "retrievals_total",
			Help:      "Weather data retrievals by outcome.",
		}, []string{"outcome"}),
		RetrievalDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weathervault",
			Name:      "retrieval_duration_seconds",
			Help:      "Duration of a complete fetch-decode-assemble cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
		ObservationsBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weathervault",
			Name:      "observations_built_total",
			Help:      "Total observation rows assembled from decoded records.",
		}),
		YearFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weathervault",
			Name:      "year_fetches_total",
			Help:      "Per-year data file lookups by source and outcome.",
		}, []string{"source", "outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weathervault",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of a single year file download.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 15, 60},
		}),
		CacheWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weathervault",
			Name:      "cache_writes_total",
			Help:      "Year files written through to the local cache directory.",
		}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weathervault",
			Name:      "http_requests_total",
			Help:      "HTTP API requests by route and status code.",
		}, []string{"route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "weathervault",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP API request duration in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}, []string{"route"}),
		SinkBatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weathervault",
			Name:      "sink_batch_size",
			Help:      "Number of observations per sink load batch.",
			Buckets:   []float64{1, 10, 50, 100, 500, 1000, 5000, 10000},
		}),
		SinkLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weathervault",
			Name:      "sink_loads_total",
			Help:      "Sink load batches by destination and outcome.",
		}, []string{"sink", "outcome"}),
	}

	prometheus.MustRegister(
		m.RetrievalsTotal,
		m.RetrievalDuration,
		m.ObservationsBuilt,
		m.YearFetches,
		m.FetchDuration,
		m.CacheWrites,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SinkBatchSize,
		m.SinkLoads,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RetrievalsTotal:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weathervault", Name: "retrievals_total"}, []string{"outcome"}),
		RetrievalDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weathervault", Name: "retrieval_duration_seconds"}),
		ObservationsBuilt:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weathervault", Name: "observations_built_total"}),
		YearFetches:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weathervault", Name: "year_fetches_total"}, []string{"source", "outcome"}),
		FetchDuration:       prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weathervault", Name: "fetch_duration_seconds"}),
		CacheWrites:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weathervault", Name: "cache_writes_total"}),
		HTTPRequestsTotal:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weathervault", Name: "http_requests_total"}, []string{"route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "weathervault", Name: "http_request_duration_seconds"}, []string{"route"}),
		SinkBatchSize:       prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weathervault", Name: "sink_batch_size"}),
		SinkLoads:           prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weathervault", Name: "sink_loads_total"}, []string{"sink", "outcome"}),
	}
}
