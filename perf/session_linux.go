//go:build linux

package perf

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/hyperfold/ternbench/endian"
	"github.com/hyperfold/ternbench/errs"
)

type sessionState uint8

const (
	stateArmed sessionState = iota
	stateRunning
	stateStopped
	stateReleased
)

func (s sessionState) String() string {
	switch s {
	case stateArmed:
		return "Armed"
	case stateRunning:
		return "Running"
	case stateStopped:
		return "Stopped"
	case stateReleased:
		return "Released"
	default:
		return "Unknown"
	}
}

const numEvents = 6

// Cache event configs follow the perf_event_open encoding:
// cache id | op << 8 | result << 16.
const (
	l1dReadMissConfig = unix.PERF_COUNT_HW_CACHE_L1D |
		unix.PERF_COUNT_HW_CACHE_OP_READ<<8 |
		unix.PERF_COUNT_HW_CACHE_RESULT_MISS<<16
	llcReadMissConfig = unix.PERF_COUNT_HW_CACHE_LL |
		unix.PERF_COUNT_HW_CACHE_OP_READ<<8 |
		unix.PERF_COUNT_HW_CACHE_RESULT_MISS<<16
)

type eventSpec struct {
	name   string
	typ    uint32
	config uint64
}

// eventSpecs fixes both the event set and the order counters are read back in.
var eventSpecs = [numEvents]eventSpec{
	{"cycles", unix.PERF_TYPE_HARDWARE, unix.PERF_COUNT_HW_CPU_CYCLES},
	{"instructions", unix.PERF_TYPE_HARDWARE, unix.PERF_COUNT_HW_INSTRUCTIONS},
	{"cache-references", unix.PERF_TYPE_HARDWARE, unix.PERF_COUNT_HW_CACHE_REFERENCES},
	{"cache-misses", unix.PERF_TYPE_HARDWARE, unix.PERF_COUNT_HW_CACHE_MISSES},
	{"l1d-read-misses", unix.PERF_TYPE_HW_CACHE, l1dReadMissConfig},
	{"llc-read-misses", unix.PERF_TYPE_HW_CACHE, llcReadMissConfig},
}

// linuxSession holds one perf_event_open file descriptor per event.
type linuxSession struct {
	fds    [numEvents]int
	engine endian.EndianEngine
	state  sessionState
}

var _ Session = (*linuxSession)(nil)

// openSession acquires all six event descriptors for the calling process.
// A failure on any event closes whichever descriptors did open before
// returning, so a failed open never leaks handles.
func openSession() (Session, error) {
	s := &linuxSession{
		engine: endian.GetNativeEngine(),
		state:  stateArmed,
	}
	for i := range s.fds {
		s.fds[i] = -1
	}

	for i, spec := range eventSpecs {
		attr := unix.PerfEventAttr{
			Type:   spec.typ,
			Config: spec.config,
			Bits:   unix.PerfBitDisabled | unix.PerfBitExcludeKernel | unix.PerfBitExcludeHv,
		}
		attr.Size = uint32(unsafe.Sizeof(attr))

		fd, err := unix.PerfEventOpen(&attr, 0, -1, -1, unix.PERF_FLAG_FD_CLOEXEC)
		if err != nil {
			_ = s.Release()
			return nil, fmt.Errorf("%w: opening %s: %v", errs.ErrCountersUnsupported, spec.name, err)
		}
		s.fds[i] = fd
	}

	return s, nil
}

// Start resets and enables all counters, transitioning Armed -> Running.
func (s *linuxSession) Start() error {
	if s.state != stateArmed {
		return fmt.Errorf("%w: Start called in state %s", errs.ErrSessionState, s.state)
	}

	for i, fd := range s.fds {
		if err := unix.IoctlSetInt(fd, unix.PERF_EVENT_IOC_RESET, 0); err != nil {
			return fmt.Errorf("%w: resetting %s: %v", errs.ErrCountersUnsupported, eventSpecs[i].name, err)
		}
	}
	for i, fd := range s.fds {
		if err := unix.IoctlSetInt(fd, unix.PERF_EVENT_IOC_ENABLE, 0); err != nil {
			return fmt.Errorf("%w: enabling %s: %v", errs.ErrCountersUnsupported, eventSpecs[i].name, err)
		}
	}
	s.state = stateRunning

	return nil
}

// Stop disables all counters and reads their raw values, transitioning
// Running -> Stopped. Counters are disabled before any value is read so the
// six values describe the same closed window.
func (s *linuxSession) Stop() (Sample, error) {
	if s.state != stateRunning {
		return Sample{}, fmt.Errorf("%w: Stop called in state %s", errs.ErrSessionState, s.state)
	}

	for i, fd := range s.fds {
		if err := unix.IoctlSetInt(fd, unix.PERF_EVENT_IOC_DISABLE, 0); err != nil {
			return Sample{}, fmt.Errorf("%w: disabling %s: %v", errs.ErrCountersUnsupported, eventSpecs[i].name, err)
		}
	}

	var values [numEvents]uint64
	var buf [8]byte
	for i, fd := range s.fds {
		n, err := unix.Read(fd, buf[:])
		if err != nil || n != len(buf) {
			return Sample{}, fmt.Errorf("%w: reading %s: %v", errs.ErrCountersUnsupported, eventSpecs[i].name, err)
		}
		values[i] = s.engine.Uint64(buf[:])
	}
	s.state = stateStopped

	return Sample{
		Cycles:        values[0],
		Instructions:  values[1],
		CacheRefs:     values[2],
		CacheMisses:   values[3],
		L1DReadMisses: values[4],
		LLCReadMisses: values[5],
	}, nil
}

// Release closes every acquired descriptor. It is legal in any state,
// idempotent, and always leaves the session Released.
func (s *linuxSession) Release() error {
	var firstErr error
	for i, fd := range s.fds {
		if fd < 0 {
			continue
		}
		if err := unix.Close(fd); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing %s: %w", eventSpecs[i].name, err)
		}
		s.fds[i] = -1
	}
	s.state = stateReleased

	return firstErr
}
