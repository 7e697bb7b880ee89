package compress

// NoOpCodec bypasses compression, returning buffers as-is.
//
// Both methods return the input slice without copying, so the returned slice
// shares memory with the input. That is safe here: probe inputs are the
// read-only matrix buffers.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// Compress returns data unchanged.
func (NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
