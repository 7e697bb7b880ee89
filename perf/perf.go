// Package perf wraps hardware performance counters behind a small session
// capability.
//
// A Session brackets exactly one measurement window and walks a fixed state
// machine: Open (Armed) -> Start (Running) -> Stop (Stopped) -> Release
// (Released). Start resets and enables all counters, Stop disables and reads
// them, and Release closes every acquired handle. Release is idempotent and
// legal in any state, so callers can defer it and still call it early on
// error paths without leaking descriptors.
//
// The fixed event set is cycles, instructions, cache references, cache misses,
// L1D read misses and LLC read misses. On Linux the events are acquired
// through perf_event_open for the calling process, excluding kernel and
// hypervisor time. On other platforms, or when the process lacks permission
// (e.g. a restrictive perf_event_paranoid setting), Open fails with
// errs.ErrCountersUnsupported; the caller is expected to fall back to
// time-only measurement rather than treat this as fatal.
package perf

// Sample is an immutable snapshot of the six raw counter values read at the
// end of a single measurement window. A zero Sample represents "no counters
// were available".
type Sample struct {
	Cycles        uint64
	Instructions  uint64
	CacheRefs     uint64
	CacheMisses   uint64
	L1DReadMisses uint64
	LLCReadMisses uint64
}

// CacheMissRate returns cache misses as a percentage of cache references,
// or 0.0 when no references were counted.
func (s Sample) CacheMissRate() float64 {
	if s.CacheRefs == 0 {
		return 0.0
	}

	return float64(s.CacheMisses) / float64(s.CacheRefs) * 100.0
}

// IPC returns instructions retired per cycle, or 0.0 when no cycles were
// counted.
func (s Sample) IPC() float64 {
	if s.Cycles == 0 {
		return 0.0
	}

	return float64(s.Instructions) / float64(s.Cycles)
}

// Session is a scoped wrapper around one window's worth of hardware counters.
//
// Methods must be called in Start, Stop, Release order; out-of-order calls
// fail with errs.ErrSessionState. Release may be called at any point and any
// number of times.
type Session interface {
	// Start resets and enables all counters (Armed -> Running).
	Start() error

	// Stop disables all counters and reads their raw values
	// (Running -> Stopped).
	Stop() (Sample, error)

	// Release closes all acquired handles (any state -> Released).
	Release() error
}

// Open acquires counter handles for the fixed event set and returns a session
// in the Armed state.
//
// When the platform or process cannot provide hardware counters, Open returns
// an error wrapping errs.ErrCountersUnsupported and no resources remain
// acquired.
func Open() (Session, error) {
	return openSession()
}
