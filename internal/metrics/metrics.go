package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "autoaudit"
)

var (
	renderDurationBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

	// Dashboard Metrics
	RenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "render_duration_seconds",
		Help:      "Time taken to render a dashboard page or partial.",
		Buckets:   renderDurationBuckets,
	}, []string{"page"})

	RendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "renders_total",
		Help:      "Count of page and partial renders.",
	}, []string{"page", "status"})

	// Result Source Metrics
	DocumentLoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "document_loads_total",
		Help:      "Count of result document loads through a source.",
	}, []string{"benchmark", "status"})

	RowsVisible = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "rows_visible",
		Help:      "Rows shown by the most recent table render, per filter.",
	}, []string{"benchmark", "filter"})

	// Export Metrics
	ExportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Count of report exports.",
	}, []string{"format", "status"})

	// Run Log Metrics
	RunsRecordedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "runs_recorded_total",
		Help:      "Count of scan runs recorded in the in-memory log.",
	}, []string{"outcome"})
)
