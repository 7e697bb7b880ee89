// Package errs defines the sentinel errors shared across ternbench packages.
//
// Callers are expected to match these with errors.Is; packages wrap them with
// fmt.Errorf("%w: ...") to attach context.
package errs

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive row or column count.
	ErrInvalidDimensions = errors.New("invalid matrix dimensions")

	// ErrInvalidSparsity indicates a sparsity fraction outside [0, 1].
	ErrInvalidSparsity = errors.New("invalid sparsity fraction")

	// ErrDimensionMismatch indicates a vector or output buffer whose length does
	// not match the matrix shape it is used with.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrInvalidConfig indicates an invalid harness or run configuration, such as
	// a non-positive iteration count or a negative warmup count.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCountersUnsupported indicates that hardware performance counters are not
	// available on this platform or to this process. It is always recoverable:
	// the harness falls back to time-only measurement.
	ErrCountersUnsupported = errors.New("hardware counters unsupported")

	// ErrSessionState indicates a counter session method invoked outside the
	// Armed -> Running -> Stopped -> Released order.
	ErrSessionState = errors.New("invalid counter session state")
)
