package simd

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHamming(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []byte
		expected int
	}{
		{"Simple", []byte{0xFF, 0x00}, []byte{0x00, 0xFF}, 16},
		{"Identical", []byte{0xAA, 0x55}, []byte{0xAA, 0x55}, 0},
		{"Partial", []byte{0b11110000}, []byte{0b11111111}, 4},
		{"TwoBits", []byte{0b00000000}, []byte{0b00000011}, 2},
		{"Empty", []byte{}, []byte{}, 0},
		{"ShorterFirst", []byte{0x00}, []byte{0x00, 0xFF}, 0},
		{"ShorterSecond", []byte{0xFF, 0xFF, 0x0F}, []byte{0xFF}, 0},
		{"NilBoth", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Hamming(tt.a, tt.b))
		})
	}
}

// TestHammingKernelParity verifies the wide and scalar kernels agree on
// random inputs, including lengths that are not multiples of eight.
func TestHammingKernelParity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, n := range []int{0, 1, 7, 8, 9, 15, 16, 31, 64, 100, 1024} {
		a := make([]byte, n)
		b := make([]byte, n)
		_, err := rng.Read(a)
		require.NoError(t, err)
		_, err = rng.Read(b)
		require.NoError(t, err)

		assert.Equal(t, hammingScalar(a, b), hammingWide(a, b), "length %d", n)
	}
}

func TestHammingKernelParityMixedLength(t *testing.T) {
	a := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0, 0x11}
	b := []byte{0x21, 0x43, 0x65}

	assert.Equal(t, hammingScalar(a, b), hammingWide(a, b))
	assert.Equal(t, hammingScalar(b, a), hammingWide(a, b))
}

func TestHammingBatch(t *testing.T) {
	target := []byte{0x00}
	sigs := [][]byte{{0x00}, {0x01}, {0x03}}

	out := make([]int, len(sigs))
	HammingBatch(target, sigs, out)
	assert.Equal(t, []int{0, 1, 2}, out)
}

func BenchmarkHamming(b *testing.B) {
	sig1 := make([]byte, 64)
	sig2 := make([]byte, 64)
	for i := range sig1 {
		sig1[i] = byte(i)
		sig2[i] = byte(i * 7)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Hamming(sig1, sig2)
	}
}
