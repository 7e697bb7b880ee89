// Package bench implements the measurement harness.
//
// A Workload bundles a kernel closure with the encoding it exercises; Measure
// runs the configured warmup passes untimed, optionally opens a hardware
// counter session around the timed loop, invokes the kernel a fixed number of
// times back to back, and produces one Result. Counter acquisition failures
// degrade the measurement to time-only; they are never fatal.
//
// Measurement windows never overlap: Measure is synchronous, drives one
// workload at a time, and releases its counter session on every exit path.
package bench
