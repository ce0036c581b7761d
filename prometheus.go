package simdex

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Compile-time interface check.
var _ MetricsCollector = (*PrometheusCollector)(nil)

// PrometheusCollector exposes index operation metrics to a Prometheus
// registry: per-operation counters, error counters, and latency
// histograms. Register it on your own registry (or
// prometheus.DefaultRegisterer) and wire it in with
// WithMetricsCollector.
type PrometheusCollector struct {
	opsTotal    *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	resultsSum  *prometheus.CounterVec
	latency     *prometheus.HistogramVec
}

// NewPrometheusCollector creates a PrometheusCollector and registers
// its metrics with reg. If reg is nil, prometheus.DefaultRegisterer is
// used. namespace prefixes every metric name; pass "" for the default
// "simdex".
func NewPrometheusCollector(reg prometheus.Registerer, namespace string) (*PrometheusCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "simdex"
	}

	c := &PrometheusCollector{
		opsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Total index operations by type.",
		}, []string{"op"}),
		errorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_errors_total",
			Help:      "Total failed index operations by type.",
		}, []string{"op"}),
		resultsSum: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_results_total",
			Help:      "Total items returned or inserted by operation type.",
		}, []string{"op"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Index operation latency by type.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"op"}),
	}

	for _, col := range []prometheus.Collector{c.opsTotal, c.errorsTotal, c.resultsSum, c.latency} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *PrometheusCollector) record(op string, items int, duration time.Duration, err error) {
	c.opsTotal.WithLabelValues(op).Inc()
	c.latency.WithLabelValues(op).Observe(duration.Seconds())
	if err != nil {
		c.errorsTotal.WithLabelValues(op).Inc()
		return
	}
	c.resultsSum.WithLabelValues(op).Add(float64(items))
}

// RecordInsert implements MetricsCollector.
func (c *PrometheusCollector) RecordInsert(duration time.Duration, err error) {
	c.record("insert", 1, duration, err)
}

// RecordBatchInsert implements MetricsCollector.
func (c *PrometheusCollector) RecordBatchInsert(count int, duration time.Duration, err error) {
	c.record("batch_insert", count, duration, err)
}

// RecordQuery implements MetricsCollector.
func (c *PrometheusCollector) RecordQuery(results int, duration time.Duration, err error) {
	c.record("query", results, duration, err)
}

// RecordCandidates implements MetricsCollector.
func (c *PrometheusCollector) RecordCandidates(candidates int, duration time.Duration, err error) {
	c.record("candidates", candidates, duration, err)
}
