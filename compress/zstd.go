package compress

// ZstdCodec probes with Zstandard, the strongest of the probe codecs.
//
// The implementation is selected at build time: with cgo available the
// valyala/gozstd bindings are used, otherwise the pure-Go
// klauspost/compress/zstd implementation. Compressed sizes differ slightly
// between the two, which is irrelevant for the probe's purpose.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}
