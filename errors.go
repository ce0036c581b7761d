package simdex

import (
	"errors"
	"fmt"

	"github.com/hupe1980/simdex/distance"
	"github.com/hupe1980/simdex/lsh"
)

var (
	// ErrIndexClosed is returned by any Index method invoked after Close.
	ErrIndexClosed = errors.New("index closed")

	// ErrAccelUnavailable indicates the accelerated backend could not be
	// selected for this CPU. The portable backend is substituted
	// automatically; this sentinel only surfaces through AccelError.
	ErrAccelUnavailable = distance.ErrAccelUnavailable
)

// ErrInvalidBands indicates an invalid band count.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidBands struct {
	Bands int
	cause error
}

func (e *ErrInvalidBands) Error() string {
	return fmt.Sprintf("invalid band count: %d", e.Bands)
}

func (e *ErrInvalidBands) Unwrap() error { return e.cause }

// ErrInvalidBandWidth indicates an invalid band width in bits.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidBandWidth struct {
	BitsPerBand int
	cause       error
}

func (e *ErrInvalidBandWidth) Error() string {
	return fmt.Sprintf("invalid bits per band: %d", e.BitsPerBand)
}

func (e *ErrInvalidBandWidth) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, lsh.ErrClosed) {
		return fmt.Errorf("%w: %w", ErrIndexClosed, err)
	}

	var ib *lsh.ErrInvalidBands
	if errors.As(err, &ib) {
		return &ErrInvalidBands{Bands: ib.Bands, cause: err}
	}
	var bw *lsh.ErrInvalidBandWidth
	if errors.As(err, &bw) {
		return &ErrInvalidBandWidth{BitsPerBand: bw.BitsPerBand, cause: err}
	}

	return err
}
