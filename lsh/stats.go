package lsh

import "fmt"

// Stats summarizes index occupancy.
type Stats struct {
	// NumSignatures is the count of stored signatures.
	NumSignatures int

	// NumBands and BitsPerBand echo the index configuration.
	NumBands    int
	BitsPerBand int

	// TotalBuckets is the number of distinct non-empty buckets summed
	// across all bands.
	TotalBuckets int

	// AvgBucketSize is the mean bucket occupancy across all bands,
	// 0 when no buckets exist.
	AvgBucketSize float64

	// MaxBucketSize is the largest single bucket across all bands.
	MaxBucketSize int
}

func (s Stats) String() string {
	return fmt.Sprintf("signatures=%d bands=%d bitsPerBand=%d buckets=%d avgBucket=%.2f maxBucket=%d",
		s.NumSignatures, s.NumBands, s.BitsPerBand, s.TotalBuckets, s.AvgBucketSize, s.MaxBucketSize)
}

// Stats returns occupancy statistics for the index.
func (idx *Index) Stats() (Stats, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if idx.closed {
		return Stats{}, ErrClosed
	}

	stats := Stats{
		NumSignatures: len(idx.sigs),
		NumBands:      idx.opts.Bands,
		BitsPerBand:   idx.opts.BitsPerBand,
	}

	totalEntries := 0
	for _, table := range idx.tables {
		stats.TotalBuckets += len(table)
		for _, bucket := range table {
			totalEntries += len(bucket)
			if len(bucket) > stats.MaxBucketSize {
				stats.MaxBucketSize = len(bucket)
			}
		}
	}

	if stats.TotalBuckets > 0 {
		stats.AvgBucketSize = float64(totalEntries) / float64(stats.TotalBuckets)
	}
	return stats, nil
}
