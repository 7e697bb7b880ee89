package compress

import "github.com/klauspost/compress/s2"

// S2Codec probes with S2 block compression, the fastest of the probe codecs.
type S2Codec struct{}

var _ Codec = S2Codec{}

// Compress compresses the buffer using S2.
func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses an S2 block.
func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
