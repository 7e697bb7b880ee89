package format

type (
	EncodingType    uint8
	CompressionType uint8
)

const (
	// EncodingDense represents the one-weight-per-byte ternary encoding.
	EncodingDense EncodingType = 0x1
	// EncodingPacked represents the four-weights-per-byte 2-bit ternary encoding.
	EncodingPacked EncodingType = 0x2

	CompressionNone CompressionType = 0x1 // CompressionNone disables the footprint probe.
	CompressionZstd CompressionType = 0x2 // CompressionZstd probes with Zstandard.
	CompressionS2   CompressionType = 0x3 // CompressionS2 probes with S2.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 probes with LZ4 block compression.
)

func (e EncodingType) String() string {
	switch e {
	case EncodingDense:
		return "Dense"
	case EncodingPacked:
		return "Packed"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
