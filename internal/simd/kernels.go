package simd

import (
	"encoding/binary"
	"math/bits"
)

// Kernel function pointers - set once at init, zero runtime overhead.
// Scalar implementations are the default; installKernels swaps in the
// wide (hardware-popcount) versions when the active ISA supports them.
var (
	kernelHamming      = hammingScalar
	kernelHammingBatch = hammingBatchScalar
)

// installKernels is called from initCapabilities after ISA selection.
func installKernels() {
	if activeISA == Generic {
		kernelHamming = hammingScalar
		kernelHammingBatch = hammingBatchScalar
		return
	}
	kernelHamming = hammingWide
	kernelHammingBatch = hammingBatchWide
}

// Hamming computes the Hamming distance between two byte slices over
// the overlapping prefix min(len(a), len(b)). Bytes beyond the shorter
// slice are ignored.
func Hamming(a, b []byte) int {
	return kernelHamming(a, b)
}

// HammingBatch computes Hamming distances between target and every
// signature, writing results into out. out must have len(sigs) entries.
func HammingBatch(target []byte, sigs [][]byte, out []int) {
	kernelHammingBatch(target, sigs, out)
}

// hammingWide processes eight bytes per iteration using the hardware
// popcount instruction behind bits.OnesCount64.
func hammingWide(a, b []byte) int {
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]

	total := 0
	i := 0
	for ; i+8 <= n; i += 8 {
		v1 := binary.LittleEndian.Uint64(a[i:])
		v2 := binary.LittleEndian.Uint64(b[i:])
		total += bits.OnesCount64(v1 ^ v2)
	}
	for ; i < n; i++ {
		total += bits.OnesCount8(a[i] ^ b[i])
	}
	return total
}

func hammingBatchWide(target []byte, sigs [][]byte, out []int) {
	for i, sig := range sigs {
		out[i] = hammingWide(target, sig)
	}
}

// hammingScalar is the portable byte-at-a-time implementation.
func hammingScalar(a, b []byte) int {
	n := min(len(a), len(b))

	total := 0
	for i := 0; i < n; i++ {
		total += bits.OnesCount8(a[i] ^ b[i])
	}
	return total
}

func hammingBatchScalar(target []byte, sigs [][]byte, out []int) {
	for i, sig := range sigs {
		out[i] = hammingScalar(target, sig)
	}
}
