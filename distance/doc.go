// Package distance provides the public API for signature distance
// calculations: exact Hamming distance for single pairs, batches, and
// thresholded all-pairs scans.
//
// Two backends implement the same contract. The accelerated backend is
// selected at init when the CPU supports hardware popcount kernels and
// fans batch work out across a worker pool; the portable backend runs
// byte-at-a-time on the calling goroutine. Results are identical either
// way; only throughput differs.
package distance
