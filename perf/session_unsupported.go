//go:build !linux

package perf

import (
	"fmt"

	"github.com/hyperfold/ternbench/errs"
)

// openSession on non-Linux platforms always reports counters as unavailable;
// the harness degrades to time-only measurement.
func openSession() (Session, error) {
	return nil, fmt.Errorf("%w: perf_event counters require Linux", errs.ErrCountersUnsupported)
}
