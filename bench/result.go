package bench

import (
	"time"

	"github.com/hyperfold/ternbench/format"
	"github.com/hyperfold/ternbench/perf"
)

// Result is the record one measured window produces.
//
// MemoryBytes is the footprint of the encoding the kernel walked, not of all
// process memory. CompressedBytes is zero unless a footprint probe was
// configured. When HasCounters is false the Counters sample and both derived
// metrics hold their zero values; deriving them never divides by zero.
type Result struct {
	Encoding    format.EncodingType
	Elapsed     time.Duration
	Iterations  int
	MemoryBytes int

	// Fingerprint identifies the payload content (xxHash64); equal seeds and
	// shapes yield equal fingerprints across runs.
	Fingerprint uint64

	// CompressedBytes is the payload's size under the configured footprint
	// probe codec, or 0 when the probe is disabled.
	CompressedBytes int

	// HasCounters reports whether Counters holds a real sample.
	HasCounters bool
	Counters    perf.Sample

	// CacheMissRate is Counters.CacheMisses / Counters.CacheRefs * 100,
	// or 0.0 without counters or references.
	CacheMissRate float64

	// IPC is Counters.Instructions / Counters.Cycles, or 0.0 without
	// counters or cycles.
	IPC float64
}

// TimePerIteration returns the mean wall time of one kernel invocation.
func (r Result) TimePerIteration() time.Duration {
	if r.Iterations == 0 {
		return 0
	}

	return r.Elapsed / time.Duration(r.Iterations)
}
