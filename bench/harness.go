package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/hyperfold/ternbench/compress"
	"github.com/hyperfold/ternbench/errs"
	"github.com/hyperfold/ternbench/format"
	"github.com/hyperfold/ternbench/internal/hash"
	"github.com/hyperfold/ternbench/internal/options"
	"github.com/hyperfold/ternbench/perf"
)

// Workload is one kernel bound to its fixed inputs.
//
// Run performs a single kernel invocation over pre-allocated, read-only
// inputs; the harness calls it back to back without any state reset, each
// call overwriting the same output vector. Payload is the backing buffer of
// the encoding being exercised and is used for footprint accounting and
// fingerprinting only, never modified.
type Workload struct {
	Encoding format.EncodingType
	Payload  []byte
	Run      func()
}

// Measure times cfg.iterations back-to-back invocations of the workload's
// kernel and returns one Result.
//
// Procedure: apply and validate options; run the warmup passes untimed; if
// counters were requested, open and start a session; take a monotonic start
// timestamp; run the timed loop; take the end timestamp; stop and release the
// session. A session that fails to open, start or stop degrades the result to
// time-only (HasCounters=false) — the session is still released on every such
// path. Only configuration errors are returned to the caller.
func Measure(w Workload, opts ...Option) (Result, error) {
	if w.Run == nil {
		return Result{}, fmt.Errorf("%w: workload has no kernel", errs.ErrInvalidConfig)
	}

	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Result{}, err
	}
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}

	for i := 0; i < cfg.warmup; i++ {
		w.Run()
	}

	var session perf.Session
	if cfg.counters {
		s, err := perf.Open()
		switch {
		case err == nil:
			session = s
		case errors.Is(err, errs.ErrCountersUnsupported):
			// Fall back to time-only measurement.
		default:
			return Result{}, err
		}
	}
	defer func() {
		if session != nil {
			_ = session.Release()
		}
	}()

	if session != nil {
		if err := session.Start(); err != nil {
			_ = session.Release()
			session = nil
		}
	}

	start := time.Now()
	for i := 0; i < cfg.iterations; i++ {
		w.Run()
	}
	elapsed := time.Since(start)

	var sample perf.Sample
	hasCounters := false
	if session != nil {
		s, err := session.Stop()
		if err == nil {
			sample = s
			hasCounters = true
		}
		_ = session.Release()
		session = nil
	}

	result := Result{
		Encoding:      w.Encoding,
		Elapsed:       elapsed,
		Iterations:    cfg.iterations,
		MemoryBytes:   len(w.Payload),
		Fingerprint:   hash.Fingerprint(w.Payload),
		HasCounters:   hasCounters,
		Counters:      sample,
		CacheMissRate: sample.CacheMissRate(),
		IPC:           sample.IPC(),
	}

	if cfg.probe != format.CompressionNone {
		size, err := compress.CompressedSize(cfg.probe, w.Payload)
		if err != nil {
			return Result{}, fmt.Errorf("footprint probe: %w", err)
		}
		result.CompressedBytes = size
	}

	return result, nil
}
