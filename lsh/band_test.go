package lsh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandKey(t *testing.T) {
	sig := []byte{0xAB, 0xCD}

	tests := []struct {
		name        string
		sig         []byte
		band        int
		bitsPerBand int
		expected    uint64
	}{
		{"ByteAlignedFirst", sig, 0, 8, 0xAB},
		{"ByteAlignedSecond", sig, 1, 8, 0xCD},
		{"LittleEndianCompose", sig, 0, 16, 0xCDAB},
		{"MaskedToWidth", sig, 0, 12, 0xDAB},
		{"NibbleFirst", sig, 0, 4, 0x0B},
		// Band 1 starts at bit offset 4, but extraction reads from the
		// containing byte boundary, so it sees the same byte as band 0.
		{"NibbleSubByteOffset", sig, 1, 4, 0x0B},
		{"NibbleSecondByte", sig, 2, 4, 0x0D},
		{"BeyondSignature", sig, 4, 8, 0},
		{"TruncatedRead", sig, 0, 32, 0xCDAB},
		{"EmptySignature", []byte{}, 0, 8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, bandKey(tt.sig, tt.band, tt.bitsPerBand))
		})
	}
}

func TestBandKeyFullWidth(t *testing.T) {
	sig := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0xFF, 0xFF}

	// 64-bit band reads exactly eight bytes, unmasked.
	assert.Equal(t, uint64(0x0807060504030201), bandKey(sig, 0, 64))
}

func TestBandKeys(t *testing.T) {
	keys := bandKeys([]byte{0xAB, 0xCD}, 2, 8)
	assert.Equal(t, []uint64{0xAB, 0xCD}, keys)
}
