package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) (*PrometheusMetrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	metrics, ok := NewPrometheusMetrics(reg).(*PrometheusMetrics)
	require.True(t, ok)
	return metrics, reg
}

func TestPrometheusMetrics_Counters(t *testing.T) {
	metrics, _ := newTestMetrics(t)

	metrics.IncrementCounter("ledger.load.success", nil)
	metrics.IncrementCounter("ledger.load.success", nil)
	metrics.IncrementCounter("ledger.load.failed", map[string]string{"reason": "schema"})
	metrics.IncrementCounter("analysis.success", nil)
	metrics.IncrementCounter("analysis.failed", nil)
	metrics.IncrementCounter("session.created", nil)
	metrics.IncrementCounter("session.expired", nil)
	metrics.IncrementCounter("event.published", nil)
	metrics.IncrementCounter("event.failed", nil)
	metrics.IncrementCounter("unknown.metric", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.ledgerLoads.WithLabelValues("success", "")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ledgerLoads.WithLabelValues("failed", "schema")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.analyses.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.analyses.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.sessionEvents.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.sessionEvents.WithLabelValues("expired")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.sessionEvents.WithLabelValues("deleted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.eventsPublished.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.eventsPublished.WithLabelValues("failed")))
}

func TestPrometheusMetrics_Histograms(t *testing.T) {
	metrics, reg := newTestMetrics(t)

	metrics.RecordProcessingTime("ledger.load", 12*time.Millisecond)
	metrics.RecordProcessingTime("analysis", 3*time.Millisecond)
	metrics.RecordProcessingTime("analysis", 5*time.Millisecond)
	metrics.RecordGauge("ledger.rows", 600, nil)

	count, err := testutil.GatherAndCount(reg,
		"ledger_load_duration_milliseconds",
		"analysis_duration_milliseconds",
		"ledger_rows",
	)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	families, err := reg.Gather()
	require.NoError(t, err)
	samples := make(map[string]uint64)
	for _, mf := range families {
		if h := mf.GetMetric()[0].GetHistogram(); h != nil {
			samples[mf.GetName()] = h.GetSampleCount()
		}
	}
	assert.Equal(t, uint64(1), samples["ledger_load_duration_milliseconds"])
	assert.Equal(t, uint64(2), samples["analysis_duration_milliseconds"])
	assert.Equal(t, uint64(1), samples["ledger_rows"])
}

func TestPrometheusMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheusMetrics(reg)

	assert.Panics(t, func() { NewPrometheusMetrics(reg) })
}
