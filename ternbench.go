// Package ternbench benchmarks the memory-bandwidth cost of two encodings for
// ternary ({-1, 0, +1}) weight matrices in matrix-vector multiplication.
//
// The dense encoding spends one byte per weight; the packed encoding stores
// four weights per byte as 2-bit fields. Both feed numerically equivalent
// scalar kernels, so any measured difference comes from the bytes each
// encoding pulls through the cache hierarchy, not from the arithmetic.
//
// # Basic Usage
//
//	cfg := ternbench.Config{
//	    Rows:       11008,
//	    Cols:       4096,
//	    Sparsity:   0.5,
//	    Seed:       42,
//	    Iterations: 100,
//	    Warmup:     10,
//	    Counters:   true,
//	}
//	comparison, err := ternbench.Run(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("speedup %.2fx, memory ratio %.2fx\n",
//	    comparison.Speedup(), comparison.MemoryRatio())
//
// Run generates one matrix, packs it, and measures both kernels over the same
// logical data; the two Result records carry elapsed time, footprints and,
// when the platform supports it, hardware counter samples with derived
// cache-miss rate and IPC.
//
// # Package Structure
//
// This package is a convenience wrapper. The pieces are usable on their own:
// encoding (2-bit codec and packing), matrix (types and seeded generation),
// kernel (the two matvec kernels), perf (counter sessions), compress (the
// footprint probe) and bench (the measurement harness).
package ternbench

import (
	"fmt"

	"github.com/hyperfold/ternbench/bench"
	"github.com/hyperfold/ternbench/errs"
	"github.com/hyperfold/ternbench/format"
	"github.com/hyperfold/ternbench/kernel"
	"github.com/hyperfold/ternbench/matrix"
)

// Config describes one end-to-end comparison run. It is validated once at
// this boundary; the inner packages can then assume well-formed parameters.
type Config struct {
	Rows     int
	Cols     int
	Sparsity float64
	Seed     int64

	Iterations int
	Warmup     int

	// Counters requests hardware counter sampling. Leaving it on where the
	// platform lacks support is harmless: measurement degrades to time-only.
	Counters bool

	// Probe optionally adds a compressed-footprint measurement of each
	// encoding's buffer. The zero value disables it.
	Probe format.CompressionType
}

// Validate checks the configuration without running anything.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", errs.ErrInvalidDimensions, c.Rows, c.Cols)
	}
	if c.Sparsity < 0 || c.Sparsity > 1 {
		return fmt.Errorf("%w: %v not in [0, 1]", errs.ErrInvalidSparsity, c.Sparsity)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", errs.ErrInvalidConfig, c.Iterations)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("%w: warmup must be non-negative, got %d", errs.ErrInvalidConfig, c.Warmup)
	}

	return nil
}

// Comparison holds the two Benchmark Results of one run, dense first.
type Comparison struct {
	Dense  bench.Result
	Packed bench.Result

	// MatrixFingerprint is the xxHash64 of the generated dense matrix both
	// workloads were derived from.
	MatrixFingerprint uint64
}

// Speedup returns dense elapsed time over packed elapsed time.
func (c Comparison) Speedup() float64 {
	if c.Packed.Elapsed == 0 {
		return 0.0
	}

	return float64(c.Dense.Elapsed) / float64(c.Packed.Elapsed)
}

// MemoryRatio returns the dense footprint over the packed footprint. It
// approaches 4 as the column count grows relative to the per-row rounding.
func (c Comparison) MemoryRatio() float64 {
	if c.Packed.MemoryBytes == 0 {
		return 0.0
	}

	return float64(c.Dense.MemoryBytes) / float64(c.Packed.MemoryBytes)
}

// Run executes one full comparison: generate a ternary matrix and input
// vector from the seed, pack the matrix, then measure the dense and packed
// kernels in turn with identical harness settings.
//
// Buffers are allocated once up front and are read-only for the rest of the
// run; each workload owns its output vector, overwritten on every invocation.
func Run(cfg Config) (Comparison, error) {
	if err := cfg.Validate(); err != nil {
		return Comparison{}, err
	}

	gen := matrix.NewGenerator(cfg.Seed)
	dense, err := gen.Dense(cfg.Rows, cfg.Cols, cfg.Sparsity)
	if err != nil {
		return Comparison{}, err
	}
	packed, err := matrix.Pack(dense)
	if err != nil {
		return Comparison{}, err
	}
	in, err := gen.Vector(cfg.Cols)
	if err != nil {
		return Comparison{}, err
	}

	denseOut := make([]float32, cfg.Rows)
	packedOut := make([]float32, cfg.Rows)

	opts := []bench.Option{
		bench.WithIterations(cfg.Iterations),
		bench.WithWarmup(cfg.Warmup),
		bench.WithCounters(cfg.Counters),
	}
	if cfg.Probe != 0 {
		opts = append(opts, bench.WithFootprintProbe(cfg.Probe))
	}

	denseResult, err := bench.Measure(bench.Workload{
		Encoding: format.EncodingDense,
		Payload:  dense.Bytes(),
		Run:      func() { _ = kernel.MatVecDense(denseOut, dense, in) },
	}, opts...)
	if err != nil {
		return Comparison{}, fmt.Errorf("measuring dense kernel: %w", err)
	}

	packedResult, err := bench.Measure(bench.Workload{
		Encoding: format.EncodingPacked,
		Payload:  packed.Bytes(),
		Run:      func() { _ = kernel.MatVecPacked(packedOut, packed, in) },
	}, opts...)
	if err != nil {
		return Comparison{}, fmt.Errorf("measuring packed kernel: %w", err)
	}

	return Comparison{
		Dense:             denseResult,
		Packed:            packedResult,
		MatrixFingerprint: dense.Fingerprint(),
	}, nil
}
