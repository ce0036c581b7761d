package lsh

// maxKeyBytes bounds a band key to what fits in a uint64.
const maxKeyBytes = 8

// bandKey extracts the bucket key for one band: up to maxKeyBytes
// consecutive bytes starting at the band's byte offset, composed
// little-endian and masked to the low bitsPerBand bits.
//
// Extraction reads whatever bytes are available: a signature shorter
// than bands*bitsPerBand bits truncates silently, and a band that
// starts beyond the signature yields key 0. Bucket keys are uint64, so
// the full 1..64 bit range is exact.
func bandKey(sig []byte, band, bitsPerBand int) uint64 {
	byteOffset := band * bitsPerBand / 8
	if byteOffset >= len(sig) {
		return 0
	}

	numBytes := (bitsPerBand + 7) / 8
	if numBytes > maxKeyBytes {
		numBytes = maxKeyBytes
	}
	if rem := len(sig) - byteOffset; numBytes > rem {
		numBytes = rem
	}

	var key uint64
	for i := 0; i < numBytes; i++ {
		key |= uint64(sig[byteOffset+i]) << (8 * i)
	}

	if bitsPerBand < 64 {
		key &= (1 << bitsPerBand) - 1
	}
	return key
}

// bandKeys computes the bucket key for every band of sig.
func bandKeys(sig []byte, bands, bitsPerBand int) []uint64 {
	keys := make([]uint64, bands)
	for k := range keys {
		keys[k] = bandKey(sig, k, bitsPerBand)
	}
	return keys
}
