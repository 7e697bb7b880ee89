package bench

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperfold/ternbench/errs"
	"github.com/hyperfold/ternbench/format"
	"github.com/hyperfold/ternbench/kernel"
	"github.com/hyperfold/ternbench/matrix"
)

func denseWorkload(t *testing.T, rows, cols int, calls *int) Workload {
	t.Helper()
	g := matrix.NewGenerator(42)
	m, err := g.Dense(rows, cols, 0.5)
	require.NoError(t, err)
	in, err := g.Vector(cols)
	require.NoError(t, err)
	out := make([]float32, rows)

	return Workload{
		Encoding: format.EncodingDense,
		Payload:  m.Bytes(),
		Run: func() {
			*calls++
			_ = kernel.MatVecDense(out, m, in)
		},
	}
}

func TestMeasure_TimeOnly(t *testing.T) {
	calls := 0
	w := denseWorkload(t, 16, 64, &calls)

	result, err := Measure(w, WithIterations(5), WithWarmup(2))
	require.NoError(t, err)

	require.Equal(t, 7, calls, "2 warmup + 5 timed invocations")
	require.Equal(t, format.EncodingDense, result.Encoding)
	require.Equal(t, 5, result.Iterations)
	require.Equal(t, 16*64, result.MemoryBytes)
	require.Positive(t, result.Elapsed)
	require.Positive(t, result.TimePerIteration())
	require.Zero(t, result.CompressedBytes)

	// Counters were not requested: the sample stays zero and the derived
	// metrics are defined 0.0, never NaN or Inf.
	require.False(t, result.HasCounters)
	require.Zero(t, result.Counters)
	require.Equal(t, 0.0, result.CacheMissRate)
	require.Equal(t, 0.0, result.IPC)
	require.False(t, math.IsNaN(result.CacheMissRate))
	require.False(t, math.IsNaN(result.IPC))
}

func TestMeasure_ZeroWarmup(t *testing.T) {
	calls := 0
	w := denseWorkload(t, 4, 4, &calls)

	_, err := Measure(w, WithIterations(3), WithWarmup(0))
	require.NoError(t, err)
	require.Equal(t, 3, calls)
}

func TestMeasure_CountersRequested_DegradesGracefully(t *testing.T) {
	calls := 0
	w := denseWorkload(t, 8, 32, &calls)

	// Whether or not this host can open perf events, the measurement itself
	// must succeed.
	result, err := Measure(w, WithIterations(2), WithWarmup(0), WithCounters(true))
	require.NoError(t, err)
	require.Equal(t, 2, result.Iterations)

	if result.HasCounters {
		require.NotZero(t, result.Counters.Instructions)
	} else {
		require.Zero(t, result.Counters)
		require.Equal(t, 0.0, result.CacheMissRate)
		require.Equal(t, 0.0, result.IPC)
	}
}

func TestMeasure_FootprintProbe(t *testing.T) {
	calls := 0
	w := denseWorkload(t, 64, 256, &calls)

	result, err := Measure(w,
		WithIterations(1),
		WithWarmup(0),
		WithFootprintProbe(format.CompressionS2),
	)
	require.NoError(t, err)
	require.Positive(t, result.CompressedBytes)
	require.Less(t, result.CompressedBytes, result.MemoryBytes)
}

func TestMeasure_Fingerprint_StableAcrossRuns(t *testing.T) {
	calls := 0
	first, err := Measure(denseWorkload(t, 8, 8, &calls), WithIterations(1), WithWarmup(0))
	require.NoError(t, err)
	second, err := Measure(denseWorkload(t, 8, 8, &calls), WithIterations(1), WithWarmup(0))
	require.NoError(t, err)

	require.Equal(t, first.Fingerprint, second.Fingerprint)
}

func TestMeasure_InvalidConfig(t *testing.T) {
	calls := 0
	w := denseWorkload(t, 4, 4, &calls)

	_, err := Measure(w, WithIterations(0))
	require.ErrorIs(t, err, errs.ErrInvalidConfig)

	_, err = Measure(w, WithWarmup(-1))
	require.ErrorIs(t, err, errs.ErrInvalidConfig)

	_, err = Measure(w, WithFootprintProbe(format.CompressionType(0x7F)))
	require.ErrorIs(t, err, errs.ErrInvalidConfig)

	_, err = Measure(Workload{Encoding: format.EncodingDense})
	require.ErrorIs(t, err, errs.ErrInvalidConfig)

	require.Zero(t, calls, "no kernel invocation on config errors")
}
