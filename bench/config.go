package bench

import (
	"fmt"

	"github.com/hyperfold/ternbench/compress"
	"github.com/hyperfold/ternbench/errs"
	"github.com/hyperfold/ternbench/format"
	"github.com/hyperfold/ternbench/internal/options"
)

// Default harness parameters, matching the original micro-benchmark.
const (
	DefaultIterations = 100
	DefaultWarmup     = 10
)

type config struct {
	iterations int
	warmup     int
	counters   bool
	probe      format.CompressionType
}

// Option configures a Measure call.
type Option = options.Option[*config]

func defaultConfig() config {
	return config{
		iterations: DefaultIterations,
		warmup:     DefaultWarmup,
		counters:   false,
		probe:      format.CompressionNone,
	}
}

func (c *config) validate() error {
	if c.iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", errs.ErrInvalidConfig, c.iterations)
	}
	if c.warmup < 0 {
		return fmt.Errorf("%w: warmup must be non-negative, got %d", errs.ErrInvalidConfig, c.warmup)
	}

	return nil
}

// WithIterations sets the number of timed kernel invocations.
func WithIterations(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: iterations must be positive, got %d", errs.ErrInvalidConfig, n)
		}
		c.iterations = n

		return nil
	}
}

// WithWarmup sets the number of untimed kernel invocations run before the
// measured window, flushing first-touch page faults and cold caches out of
// the measurement.
func WithWarmup(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: warmup must be non-negative, got %d", errs.ErrInvalidConfig, n)
		}
		c.warmup = n

		return nil
	}
}

// WithCounters requests hardware counter sampling around the timed loop.
// If the platform cannot provide counters the measurement silently degrades
// to time-only.
func WithCounters(enabled bool) Option {
	return options.NoError(func(c *config) {
		c.counters = enabled
	})
}

// WithFootprintProbe additionally reports the workload payload's compressed
// size under the given codec. format.CompressionNone disables the probe.
func WithFootprintProbe(typ format.CompressionType) Option {
	return func(c *config) error {
		if _, err := compress.CreateCodec(typ); err != nil {
			return fmt.Errorf("%w: %v", errs.ErrInvalidConfig, err)
		}
		c.probe = typ

		return nil
	}
}
