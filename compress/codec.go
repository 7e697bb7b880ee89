package compress

import (
	"fmt"

	"github.com/hyperfold/ternbench/format"
)

// Codec compresses and decompresses a single matrix buffer.
//
// Compress returns a newly allocated slice (except for the no-op codec, which
// aliases its input) and never modifies the input. Decompress is the inverse
// and exists so tests can verify the probe is lossless; the benchmark itself
// only needs compressed sizes.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// CreateCodec returns the codec for the given compression type.
//
// format.CompressionNone yields the no-op codec, whose Compress returns its
// input unchanged, so "probe disabled" and "probe with the no-op codec" report
// the same size.
func CreateCodec(typ format.CompressionType) (Codec, error) {
	switch typ {
	case format.CompressionNone:
		return NoOpCodec{}, nil
	case format.CompressionZstd:
		return ZstdCodec{}, nil
	case format.CompressionS2:
		return S2Codec{}, nil
	case format.CompressionLZ4:
		return LZ4Codec{}, nil
	default:
		return nil, fmt.Errorf("unknown compression type: %v", typ)
	}
}

// CompressedSize compresses data with the codec for typ and returns the
// resulting byte count. Convenience wrapper used by the harness.
func CompressedSize(typ format.CompressionType, data []byte) (int, error) {
	codec, err := CreateCodec(typ)
	if err != nil {
		return 0, err
	}

	out, err := codec.Compress(data)
	if err != nil {
		return 0, err
	}

	return len(out), nil
}
