package lsh

import (
	"errors"
	"fmt"
	"runtime"
	"slices"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/simdex/distance"
)

// ErrClosed is returned by any operation invoked after Close.
var ErrClosed = errors.New("lsh: index closed")

// ErrInvalidBands is a named error type for an invalid band count.
type ErrInvalidBands struct {
	Bands int
}

func (e *ErrInvalidBands) Error() string {
	return fmt.Sprintf("invalid band count: %d (must be >= 1)", e.Bands)
}

// ErrInvalidBandWidth is a named error type for an invalid band width.
// Bucket keys are uint64, so widths above 64 bits cannot be represented.
type ErrInvalidBandWidth struct {
	BitsPerBand int
}

func (e *ErrInvalidBandWidth) Error() string {
	return fmt.Sprintf("invalid bits per band: %d (must be 1..64)", e.BitsPerBand)
}

// Options contains configuration options for the LSH index.
type Options struct {
	// Bands is the number of contiguous bit windows each signature is
	// subdivided into. More bands raise recall and candidate volume.
	Bands int

	// BitsPerBand is the width of each band in bits (1..64).
	// Wider bands lower collision probability and candidate volume.
	BitsPerBand int
}

// DefaultOptions contains the default configuration options for the
// LSH index, sized for 512-bit signatures.
var DefaultOptions = Options{
	Bands:       32,
	BitsPerBand: 16,
}

// SearchResult represents a verified query result.
type SearchResult struct {
	// ID is the identifier assigned to the stored signature at insert time.
	ID uint32

	// Distance is the exact Hamming distance to the query signature.
	Distance int
}

// Index is an incremental LSH banding index over binary signatures.
//
// A single writer is assumed: Add and AddBatch serialize behind a write
// lock, and Candidates, Query, and Stats may run concurrently with each
// other. The index stores a defensive copy of every inserted signature,
// so later mutation of the caller's buffer cannot corrupt index state.
//
// Bands times BitsPerBand is deliberately not validated against the
// signature bit-length: mixed-length signatures are accepted and band
// extraction truncates silently (see bandKey).
type Index struct {
	mu     sync.RWMutex
	opts   Options
	sigs   [][]byte
	tables []map[uint64][]uint32
	closed bool
}

// New creates a new LSH index.
//
// Example:
//
//	idx, err := lsh.New(func(o *lsh.Options) {
//	    o.Bands = 16
//	    o.BitsPerBand = 8
//	})
func New(optFns ...func(o *Options)) (*Index, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	if opts.Bands < 1 {
		return nil, &ErrInvalidBands{Bands: opts.Bands}
	}
	if opts.BitsPerBand < 1 || opts.BitsPerBand > 64 {
		return nil, &ErrInvalidBandWidth{BitsPerBand: opts.BitsPerBand}
	}

	tables := make([]map[uint64][]uint32, opts.Bands)
	for k := range tables {
		tables[k] = make(map[uint64][]uint32)
	}

	return &Index{
		opts:   opts,
		tables: tables,
	}, nil
}

// Options returns the configuration the index was created with.
func (idx *Index) Options() Options {
	return idx.opts
}

// Add stores a copy of sig and returns its assigned identifier.
// Identifiers are zero-based and strictly sequential.
func (idx *Index) Add(sig []byte) (uint32, error) {
	keys := bandKeys(sig, idx.opts.Bands, idx.opts.BitsPerBand)

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.closed {
		return 0, ErrClosed
	}
	return idx.insertLocked(slices.Clone(sig), keys), nil
}

// AddBatch stores a copy of every signature and returns identifiers in
// input order. Band keys are precomputed in parallel; inserts themselves
// stay sequential so identifier assignment matches input order.
func (idx *Index) AddBatch(sigs [][]byte) ([]uint32, error) {
	copies := make([][]byte, len(sigs))
	keys := make([][]uint64, len(sigs))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, sig := range sigs {
		i, sig := i, sig
		g.Go(func() error {
			copies[i] = slices.Clone(sig)
			keys[i] = bandKeys(sig, idx.opts.Bands, idx.opts.BitsPerBand)
			return nil
		})
	}
	_ = g.Wait()

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.closed {
		return nil, ErrClosed
	}

	ids := make([]uint32, len(sigs))
	for i := range copies {
		ids[i] = idx.insertLocked(copies[i], keys[i])
	}
	return ids, nil
}

// insertLocked appends sig and registers it in every band table.
// Caller must hold the write lock.
func (idx *Index) insertLocked(sig []byte, keys []uint64) uint32 {
	id := uint32(len(idx.sigs))
	idx.sigs = append(idx.sigs, sig)

	for k, key := range keys {
		idx.tables[k][key] = append(idx.tables[k][key], id)
	}
	return id
}

// Candidates returns the deduplicated union of all bucket contents the
// query signature hashes into, one bucket per band, in ascending id
// order. The result is a pre-verification candidate set: it may contain
// ids whose true distance exceeds any intended threshold, and it may
// miss true matches that collide in no band.
func (idx *Index) Candidates(sig []byte) ([]uint32, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.closed {
		return nil, ErrClosed
	}
	return idx.candidatesLocked(sig).ToArray(), nil
}

// candidatesLocked unions matching buckets into a roaring bitmap.
// Caller must hold at least the read lock.
func (idx *Index) candidatesLocked(sig []byte) *roaring.Bitmap {
	bm := roaring.New()
	for k, table := range idx.tables {
		key := bandKey(sig, k, idx.opts.BitsPerBand)
		if bucket, ok := table[key]; ok {
			bm.AddMany(bucket)
		}
	}
	return bm
}

// Query retrieves candidates for sig, verifies each with an exact
// Hamming check against the stored signature, and returns those within
// threshold, sorted ascending by distance (ties keep candidate order).
// Every returned distance is exact; Query never reports a false
// positive.
func (idx *Index) Query(sig []byte, threshold int) ([]SearchResult, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.closed {
		return nil, ErrClosed
	}

	var results []SearchResult

	it := idx.candidatesLocked(sig).Iterator()
	for it.HasNext() {
		id := it.Next()
		dist := distance.Hamming(sig, idx.sigs[id])
		if dist <= threshold {
			results = append(results, SearchResult{ID: id, Distance: dist})
		}
	}

	slices.SortStableFunc(results, func(a, b SearchResult) int {
		return a.Distance - b.Distance
	})
	return results, nil
}

// Close releases the signature list and band tables. It is idempotent:
// the first call transitions the index to the closed state and every
// later operation except Close itself fails with ErrClosed.
func (idx *Index) Close() error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.closed {
		return nil
	}
	idx.closed = true
	idx.sigs = nil
	idx.tables = nil
	return nil
}
