package simdex

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; a
// ready-made Prometheus implementation is provided by NewPrometheusCollector.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// duration is the total time taken, err is nil if successful.
	RecordInsert(duration time.Duration, err error)

	// RecordBatchInsert is called after each batch insert operation.
	// count is the number of signatures attempted, duration is the total
	// time taken.
	RecordBatchInsert(count int, duration time.Duration, err error)

	// RecordQuery is called after each verified query operation.
	// results is the number of verified matches returned, duration is
	// the time taken, err is nil if successful.
	RecordQuery(results int, duration time.Duration, err error)

	// RecordCandidates is called after each candidate retrieval.
	RecordCandidates(candidates int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error)           {}
func (NoopMetricsCollector) RecordBatchInsert(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordQuery(int, time.Duration, error)       {}
func (NoopMetricsCollector) RecordCandidates(int, time.Duration, error)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount          atomic.Int64
	InsertErrors         atomic.Int64
	InsertTotalNanos     atomic.Int64
	BatchInsertCount     atomic.Int64
	BatchInsertSigs      atomic.Int64
	BatchInsertErrors    atomic.Int64
	QueryCount           atomic.Int64
	QueryErrors          atomic.Int64
	QueryResults         atomic.Int64
	QueryTotalNanos      atomic.Int64
	CandidatesCount      atomic.Int64
	CandidatesErrors     atomic.Int64
	CandidatesRetrieved  atomic.Int64
	CandidatesTotalNanos atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordBatchInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchInsert(count int, duration time.Duration, err error) {
	b.BatchInsertCount.Add(1)
	b.BatchInsertSigs.Add(int64(count))
	if err != nil {
		b.BatchInsertErrors.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(results int, duration time.Duration, err error) {
	b.QueryCount.Add(1)
	b.QueryResults.Add(int64(results))
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.QueryErrors.Add(1)
	}
}

// RecordCandidates implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCandidates(candidates int, duration time.Duration, err error) {
	b.CandidatesCount.Add(1)
	b.CandidatesRetrieved.Add(int64(candidates))
	b.CandidatesTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.CandidatesErrors.Add(1)
	}
}
