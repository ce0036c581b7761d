// Package simd selects the Hamming-distance kernels used by the public
// distance package. CPU features are probed once at init; the wide
// (hardware-popcount) kernels are installed when the platform supports
// them, otherwise the portable scalar kernels remain active.
//
// The selection can be overridden with the SIMDEX_SIMD environment
// variable (generic, neon, sve2, avx2, avx512).
package simd
