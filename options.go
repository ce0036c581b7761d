package simdex

import (
	"log/slog"

	"github.com/hupe1980/simdex/lsh"
)

type options struct {
	lshOptions       []func(*lsh.Options)
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Index constructor behavior.
type Option func(*options)

// WithBands configures the number of LSH bands (default 32).
// More bands raise recall at the cost of larger candidate sets.
func WithBands(bands int) Option {
	return func(o *options) {
		o.lshOptions = append(o.lshOptions, func(lo *lsh.Options) {
			lo.Bands = bands
		})
	}
}

// WithBitsPerBand configures the band width in bits (default 16,
// valid range 1..64). Wider bands lower collision probability.
func WithBitsPerBand(bits int) Option {
	return func(o *options) {
		o.lshOptions = append(o.lshOptions, func(lo *lsh.Options) {
			lo.BitsPerBand = bits
		})
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &simdex.BasicMetricsCollector{}
//	idx, _ := simdex.New(simdex.WithMetricsCollector(metrics))
//	// ... use idx ...
//	fmt.Printf("Inserts: %d\n", metrics.InsertCount.Load())
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
