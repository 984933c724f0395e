package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	ledgerLoads      *prometheus.CounterVec
	ledgerLoadTime   prometheus.Histogram
	ledgerRows       prometheus.Histogram
	analyses         *prometheus.CounterVec
	analysisDuration prometheus.Histogram
	sessionEvents    *prometheus.CounterVec
	eventsPublished  *prometheus.CounterVec
}

// NewPrometheusMetrics registers the analyzer metrics with reg. A nil reg
// uses the default registry.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		ledgerLoads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_loads_total",
				Help: "Total number of statement files loaded",
			},
			[]string{"status", "reason"},
		),
		ledgerLoadTime: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_load_duration_milliseconds",
				Help:    "Statement parsing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		ledgerRows: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_rows",
				Help:    "Number of transactions per loaded statement",
				Buckets: prometheus.ExponentialBuckets(10, 4, 8),
			},
		),
		analyses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analysis_runs_total",
				Help: "Total number of analysis passes",
			},
			[]string{"status"},
		),
		analysisDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analysis_duration_milliseconds",
				Help:    "Analysis pass duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		sessionEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_session_events_total",
				Help: "Total number of ledger session lifecycle events",
			},
			[]string{"event"},
		),
		eventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_events_published_total",
				Help: "Total number of ledger ingestion events published",
			},
			[]string{"status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	reason := tags["reason"]

	switch name {
	case "ledger.load.success":
		m.ledgerLoads.WithLabelValues("success", "").Inc()
	case "ledger.load.failed":
		m.ledgerLoads.WithLabelValues("failed", reason).Inc()
	case "analysis.success":
		m.analyses.WithLabelValues("success").Inc()
	case "analysis.failed":
		m.analyses.WithLabelValues("failed").Inc()
	case "session.created", "session.replaced", "session.deleted", "session.expired":
		m.sessionEvents.WithLabelValues(name[len("session."):]).Inc()
	case "event.published":
		m.eventsPublished.WithLabelValues("success").Inc()
	case "event.failed":
		m.eventsPublished.WithLabelValues("failed").Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "ledger.load":
		m.ledgerLoadTime.Observe(float64(duration.Milliseconds()))
	case "analysis":
		m.analysisDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "ledger.rows":
		m.ledgerRows.Observe(value)
	}
}
