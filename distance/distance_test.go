package distance

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomSignature(rng *rand.Rand, n int) []byte {
	sig := make([]byte, n)
	rng.Read(sig)
	return sig
}

func TestHamming(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []byte
		expected int
	}{
		{"TwoBits", []byte{0b00000000}, []byte{0b00000011}, 2},
		{"Identical", []byte{0xAA, 0x55}, []byte{0xAA, 0x55}, 0},
		{"AllBits", []byte{0x00, 0x00}, []byte{0xFF, 0xFF}, 16},
		{"Empty", []byte{}, []byte{}, 0},
		{"MixedLengthPrefix", []byte{0x0F}, []byte{0x0F, 0xFF, 0xFF}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Hamming(tt.a, tt.b))
		})
	}
}

func TestHammingProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		a := randomSignature(rng, 32)
		b := randomSignature(rng, 32)
		c := randomSignature(rng, 32)

		assert.Zero(t, Hamming(a, a), "identity")
		assert.Equal(t, Hamming(a, b), Hamming(b, a), "symmetry")
		assert.LessOrEqual(t, Hamming(a, c), Hamming(a, b)+Hamming(b, c), "triangle inequality")
	}
}

func TestBatchHamming(t *testing.T) {
	t.Run("Simple", func(t *testing.T) {
		got := BatchHamming([]byte{0x00}, [][]byte{{0x00}, {0x01}, {0x03}})
		assert.Equal(t, []int{0, 1, 2}, got)
	})

	t.Run("Empty", func(t *testing.T) {
		got := BatchHamming([]byte{0x00}, nil)
		assert.Empty(t, got)
	})

	t.Run("MatchesScalar", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		target := randomSignature(rng, 16)

		sigs := make([][]byte, 500)
		for i := range sigs {
			sigs[i] = randomSignature(rng, 16)
		}

		got := BatchHamming(target, sigs)
		require.Len(t, got, len(sigs))
		for i, sig := range sigs {
			assert.Equal(t, Hamming(target, sig), got[i], "index %d", i)
		}
	})
}

func TestFindSimilarPairs(t *testing.T) {
	t.Run("ThresholdOne", func(t *testing.T) {
		sigs := [][]byte{{0x00}, {0x01}, {0xFF}}
		// 0x00-0xFF is 8 bits apart, 0x01-0xFF is 7; both excluded.
		got := FindSimilarPairs(sigs, 1, 0)
		assert.Equal(t, []SimilarPair{{I: 0, J: 1, Dist: 1}}, got)
	})

	t.Run("ThresholdZeroFindsIdentical", func(t *testing.T) {
		sigs := [][]byte{{0xAB}, {0xCD}, {0xAB}, {0xAB}}
		got := FindSimilarPairs(sigs, 0, 0)
		assert.Equal(t, []SimilarPair{
			{I: 0, J: 2, Dist: 0},
			{I: 0, J: 3, Dist: 0},
			{I: 2, J: 3, Dist: 0},
		}, got)
	})

	t.Run("MaxPairsTruncatesInOrder", func(t *testing.T) {
		sigs := [][]byte{{0x00}, {0x00}, {0x00}, {0x00}}
		got := FindSimilarPairs(sigs, 0, 2)
		assert.Equal(t, []SimilarPair{
			{I: 0, J: 1, Dist: 0},
			{I: 0, J: 2, Dist: 0},
		}, got)
	})

	t.Run("NoSignatures", func(t *testing.T) {
		assert.Empty(t, FindSimilarPairs(nil, 10, 0))
	})
}

func TestBackendSelection(t *testing.T) {
	if Accelerated() {
		assert.NoError(t, AccelError())
		assert.Contains(t, BackendName(), "accelerated")
	} else {
		assert.ErrorIs(t, AccelError(), ErrAccelUnavailable)
		assert.Equal(t, "portable", BackendName())
		assert.Equal(t, 1, ThreadCount())
	}
}

func TestThreadCount(t *testing.T) {
	orig := ThreadCount()
	defer SetThreadCount(orig)

	SetThreadCount(2)
	if Accelerated() {
		assert.Equal(t, 2, ThreadCount())
	} else {
		// Portable backend is always single-threaded.
		assert.Equal(t, 1, ThreadCount())
	}

	// Batch results are unchanged by the thread count.
	rng := rand.New(rand.NewSource(3))
	target := randomSignature(rng, 8)
	sigs := make([][]byte, 1000)
	for i := range sigs {
		sigs[i] = randomSignature(rng, 8)
	}

	parallel := BatchHamming(target, sigs)

	SetThreadCount(1)
	serial := BatchHamming(target, sigs)

	assert.Equal(t, serial, parallel)
}

func BenchmarkBatchHamming(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	target := randomSignature(rng, 64)
	sigs := make([][]byte, 10000)
	for i := range sigs {
		sigs[i] = randomSignature(rng, 64)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BatchHamming(target, sigs)
	}
}
