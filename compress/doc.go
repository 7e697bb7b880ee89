// Package compress implements the optional footprint probe: general-purpose
// codecs used to measure how compressible each matrix encoding's backing
// buffer is.
//
// The probe is an entropy cross-check on the benchmark's narrative. A dense
// ternary buffer spends eight bits on a value that carries at most ~1.6 bits
// of information, so a general-purpose compressor shrinks it substantially;
// the packed buffer is already near its information density and barely
// compresses. Reporting both compressed sizes alongside the raw footprints
// makes that visible without trusting the packer's arithmetic.
//
// Codecs are selected through format.CompressionType via CreateCodec. The
// Zstd codec uses the cgo-backed valyala/gozstd when cgo is available and
// falls back to the pure-Go klauspost/compress implementation otherwise.
package compress
