//go:build cgo

package compress

import "github.com/valyala/gozstd"

const zstdLevel = 3

// Compress compresses the buffer using the cgo-backed Zstandard bindings.
func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decompresses a Zstandard frame.
func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
