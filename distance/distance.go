package distance

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/hupe1980/simdex/internal/simd"
)

// ErrAccelUnavailable indicates that no accelerated backend could be
// selected for this CPU. The portable backend is used instead; the
// error is informational and exposed via AccelError.
var ErrAccelUnavailable = errors.New("distance: accelerated backend unavailable")

// SimilarPair is one result of FindSimilarPairs: the indices of two
// signatures and their exact Hamming distance.
type SimilarPair struct {
	I    uint32
	J    uint32
	Dist int
}

// backend is the common contract both execution backends implement.
// Call sites never branch on the concrete backend type.
type backend interface {
	hamming(a, b []byte) int
	batchHamming(target []byte, sigs [][]byte, out []int)
	threadCount() int
	setThreadCount(n int)
	name() string
}

// Selected once at init. Immutable afterwards except for the thread
// count, which the accelerated backend manages internally.
var (
	active   backend
	accelErr error
)

func init() {
	if simd.ActiveISA() != simd.Generic {
		active = newAcceleratedBackend()
		return
	}
	accelErr = fmt.Errorf("%w: no supported SIMD ISA on %s/%s",
		ErrAccelUnavailable, runtime.GOOS, runtime.GOARCH)
	active = portableBackend{}
}

// Hamming returns the number of differing bits between a and b over the
// overlapping prefix min(len(a), len(b)). Bytes beyond the shorter
// slice are ignored, so mixed-length inputs are not distance-penalized
// for the extra bytes. Zero-length input yields 0.
func Hamming(a, b []byte) int {
	return active.hamming(a, b)
}

// BatchHamming returns the Hamming distance between target and every
// signature in sigs, in input order. It is value-equivalent to mapping
// Hamming over sigs; the accelerated backend may parallelize the work
// without changing output values or ordering.
func BatchHamming(target []byte, sigs [][]byte) []int {
	out := make([]int, len(sigs))
	active.batchHamming(target, sigs, out)
	return out
}

// FindSimilarPairs enumerates unordered pairs (i, j) with i < j in
// lexicographic order and returns those whose Hamming distance is at
// most threshold. Iteration stops once maxPairs results have been
// collected (maxPairs <= 0 means unlimited), so a truncated result
// holds the first matches in iteration order, not the closest ones.
//
// This is O(N²); callers needing sub-quadratic search over large sets
// should use the lsh package instead.
func FindSimilarPairs(sigs [][]byte, threshold, maxPairs int) []SimilarPair {
	var pairs []SimilarPair

	for i := 0; i < len(sigs); i++ {
		for j := i + 1; j < len(sigs); j++ {
			dist := active.hamming(sigs[i], sigs[j])
			if dist > threshold {
				continue
			}

			pairs = append(pairs, SimilarPair{I: uint32(i), J: uint32(j), Dist: dist})
			if maxPairs > 0 && len(pairs) >= maxPairs {
				return pairs
			}
		}
	}

	return pairs
}

// Accelerated reports whether the accelerated backend is active.
func Accelerated() bool {
	return accelErr == nil
}

// AccelError returns nil when the accelerated backend is active, or a
// descriptive error (wrapping ErrAccelUnavailable) explaining why the
// portable backend was selected.
func AccelError() error {
	return accelErr
}

// BackendName returns the name of the active backend, including the
// selected ISA for the accelerated backend.
func BackendName() string {
	return active.name()
}

// ThreadCount returns the number of worker threads the accelerated
// backend uses for batch operations. It returns 1 when the portable
// backend is active.
func ThreadCount() int {
	return active.threadCount()
}

// SetThreadCount sets the worker count for subsequent accelerated batch
// operations. It is a no-op when the portable backend is active.
// n <= 0 resets to runtime.GOMAXPROCS(0).
func SetThreadCount(n int) {
	active.setThreadCount(n)
}
