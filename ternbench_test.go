package ternbench

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperfold/ternbench/errs"
	"github.com/hyperfold/ternbench/format"
)

func smallConfig() Config {
	return Config{
		Rows:       32,
		Cols:       65, // not a multiple of 4, exercises row padding
		Sparsity:   0.5,
		Seed:       42,
		Iterations: 3,
		Warmup:     1,
	}
}

func TestRun_TimeOnly(t *testing.T) {
	comparison, err := Run(smallConfig())
	require.NoError(t, err)

	require.Equal(t, format.EncodingDense, comparison.Dense.Encoding)
	require.Equal(t, format.EncodingPacked, comparison.Packed.Encoding)

	require.Equal(t, 32*65, comparison.Dense.MemoryBytes)
	require.Equal(t, 32*17, comparison.Packed.MemoryBytes)
	require.InDelta(t, 4.0, comparison.MemoryRatio(), 0.25)

	require.Positive(t, comparison.Dense.Elapsed)
	require.Positive(t, comparison.Packed.Elapsed)
	require.Positive(t, comparison.Speedup())
	require.NotZero(t, comparison.MatrixFingerprint)
}

func TestRun_Deterministic(t *testing.T) {
	first, err := Run(smallConfig())
	require.NoError(t, err)
	second, err := Run(smallConfig())
	require.NoError(t, err)

	require.Equal(t, first.MatrixFingerprint, second.MatrixFingerprint)
	require.Equal(t, first.Dense.Fingerprint, second.Dense.Fingerprint)
	require.Equal(t, first.Packed.Fingerprint, second.Packed.Fingerprint)

	other := smallConfig()
	other.Seed = 43
	third, err := Run(other)
	require.NoError(t, err)
	require.NotEqual(t, first.MatrixFingerprint, third.MatrixFingerprint)
}

func TestRun_WithFootprintProbe(t *testing.T) {
	cfg := smallConfig()
	cfg.Rows = 128
	cfg.Cols = 512
	cfg.Probe = format.CompressionS2

	comparison, err := Run(cfg)
	require.NoError(t, err)

	// The dense buffer compresses well; the packed buffer is already close
	// to its information density.
	require.Positive(t, comparison.Dense.CompressedBytes)
	require.Positive(t, comparison.Packed.CompressedBytes)
	require.Less(t, comparison.Dense.CompressedBytes, comparison.Dense.MemoryBytes)
}

func TestRun_WithCounters(t *testing.T) {
	cfg := smallConfig()
	cfg.Counters = true

	comparison, err := Run(cfg)
	require.NoError(t, err)

	// Counter support depends on the host; either way the run succeeds and
	// the derived metrics are well-defined.
	if !comparison.Dense.HasCounters {
		require.Equal(t, 0.0, comparison.Dense.CacheMissRate)
		require.Equal(t, 0.0, comparison.Dense.IPC)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }, errs.ErrInvalidDimensions},
		{"negative cols", func(c *Config) { c.Cols = -1 }, errs.ErrInvalidDimensions},
		{"sparsity below range", func(c *Config) { c.Sparsity = -0.5 }, errs.ErrInvalidSparsity},
		{"sparsity above range", func(c *Config) { c.Sparsity = 1.5 }, errs.ErrInvalidSparsity},
		{"zero iterations", func(c *Config) { c.Iterations = 0 }, errs.ErrInvalidConfig},
		{"negative warmup", func(c *Config) { c.Warmup = -2 }, errs.ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := smallConfig()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), tt.wantErr)

			_, err := Run(cfg)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
