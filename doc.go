// Package simdex locates near-duplicate binary fingerprints
// ("signatures") at scale. It answers two questions cheaply: the exact
// bit-distance between two signatures, and which previously-seen
// signatures lie within a distance threshold of a new one — the latter
// in sub-quadratic time via Locality-Sensitive Hashing banding.
//
// One-off and batch comparisons go through the package-level functions
// (Hamming, BatchHamming, FindSimilarPairs). For large incremental
// workloads, construct an Index, feed it signatures, and query it;
// every query re-verifies candidates with an exact Hamming check, so
// query results contain no false positives.
//
// A capability probe at init selects an accelerated popcount backend
// when the CPU supports it and a portable fallback otherwise; both
// produce identical results.
package simdex
