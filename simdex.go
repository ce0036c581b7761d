package simdex

import (
	"context"
	"time"

	"github.com/hupe1980/simdex/distance"
	"github.com/hupe1980/simdex/lsh"
)

// SimilarPair is one result of FindSimilarPairs: the indices of two
// signatures and their exact Hamming distance.
type SimilarPair = distance.SimilarPair

// SearchResult represents a verified query result.
type SearchResult = lsh.SearchResult

// Stats summarizes index occupancy.
type Stats = lsh.Stats

// Hamming returns the number of differing bits between a and b over the
// overlapping prefix min(len(a), len(b)); extra bytes of the longer
// input are ignored.
func Hamming(a, b []byte) int {
	return distance.Hamming(a, b)
}

// BatchHamming returns the Hamming distance between target and every
// signature in sigs, in input order.
func BatchHamming(target []byte, sigs [][]byte) []int {
	return distance.BatchHamming(target, sigs)
}

// FindSimilarPairs enumerates signature pairs (i, j), i < j, in
// lexicographic order and returns those within threshold, stopping
// after maxPairs results (maxPairs <= 0 means unlimited).
func FindSimilarPairs(sigs [][]byte, threshold, maxPairs int) []SimilarPair {
	return distance.FindSimilarPairs(sigs, threshold, maxPairs)
}

// Accelerated reports whether the accelerated backend is active.
func Accelerated() bool {
	return distance.Accelerated()
}

// AccelError returns nil when the accelerated backend is active, or a
// descriptive error wrapping ErrAccelUnavailable.
func AccelError() error {
	return distance.AccelError()
}

// ThreadCount returns the worker count used by the accelerated backend
// for batch operations, or 1 when the portable backend is active.
func ThreadCount() int {
	return distance.ThreadCount()
}

// SetThreadCount sets the worker count for subsequent accelerated batch
// operations. It is a no-op when the portable backend is active.
func SetThreadCount(n int) {
	distance.SetThreadCount(n)
}

// Index is an LSH signature index with structured logging and metrics
// layered over the core lsh.Index.
type Index struct {
	idx     *lsh.Index
	logger  *Logger
	metrics MetricsCollector
}

// New creates a new signature index.
//
// Example:
//
//	idx, err := simdex.New(
//	    simdex.WithBands(16),
//	    simdex.WithBitsPerBand(8),
//	    simdex.WithLogLevel(slog.LevelDebug),
//	)
func New(optFns ...Option) (*Index, error) {
	o := applyOptions(optFns)

	idx, err := lsh.New(o.lshOptions...)
	if err != nil {
		return nil, translateError(err)
	}

	return &Index{
		idx:     idx,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}, nil
}

// Accelerated reports whether batch operations against this index use
// the accelerated backend.
func (x *Index) Accelerated() bool {
	return distance.Accelerated()
}

// Options returns the LSH configuration the index was created with.
func (x *Index) Options() lsh.Options {
	return x.idx.Options()
}

// Add stores a copy of sig and returns its assigned identifier.
func (x *Index) Add(sig []byte) (uint32, error) {
	start := time.Now()
	id, err := x.idx.Add(sig)
	err = translateError(err)

	x.metrics.RecordInsert(time.Since(start), err)
	x.logger.LogInsert(context.Background(), id, len(sig), err)
	return id, err
}

// AddBatch stores a copy of every signature and returns identifiers in
// input order.
func (x *Index) AddBatch(sigs [][]byte) ([]uint32, error) {
	start := time.Now()
	ids, err := x.idx.AddBatch(sigs)
	err = translateError(err)

	x.metrics.RecordBatchInsert(len(sigs), time.Since(start), err)
	if err != nil {
		x.logger.Error("batch insert failed", "count", len(sigs), "error", err)
	} else {
		x.logger.Debug("batch insert", "count", len(sigs))
	}
	return ids, err
}

// Candidates returns the deduplicated pre-verification candidate set
// for sig.
func (x *Index) Candidates(sig []byte) ([]uint32, error) {
	start := time.Now()
	ids, err := x.idx.Candidates(sig)
	err = translateError(err)

	x.metrics.RecordCandidates(len(ids), time.Since(start), err)
	return ids, err
}

// Query returns stored signatures within threshold of sig, sorted
// ascending by exact Hamming distance.
func (x *Index) Query(sig []byte, threshold int) ([]SearchResult, error) {
	start := time.Now()
	results, err := x.idx.Query(sig, threshold)
	err = translateError(err)

	x.metrics.RecordQuery(len(results), time.Since(start), err)
	x.logger.LogQuery(context.Background(), threshold, len(results), err)
	return results, err
}

// Stats returns occupancy statistics for the index.
func (x *Index) Stats() (Stats, error) {
	stats, err := x.idx.Stats()
	return stats, translateError(err)
}

// Close releases internal storage. It is idempotent; every other
// operation after the first Close fails with ErrIndexClosed.
func (x *Index) Close() error {
	return translateError(x.idx.Close())
}
