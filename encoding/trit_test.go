package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeTrit_Mapping(t *testing.T) {
	require.Equal(t, byte(0x0), EncodeTrit(0))
	require.Equal(t, byte(0x1), EncodeTrit(1))
	require.Equal(t, byte(0x2), EncodeTrit(-1))
}

func TestDecodeTrit_RoundTrip(t *testing.T) {
	for _, v := range []int8{-1, 0, 1} {
		require.Equal(t, v, DecodeTrit(EncodeTrit(v)), "decode(encode(%d))", v)
	}
}

func TestDecodeTrit_UnreachableField(t *testing.T) {
	// The encoder never emits 11; the decoder maps it to -1, mirroring 10.
	require.Equal(t, int8(-1), DecodeTrit(0x3))
}

func TestDecodeTrit_IgnoresHighBits(t *testing.T) {
	// Only the low two bits carry a field.
	require.Equal(t, int8(1), DecodeTrit(0xF5))
	require.Equal(t, int8(0), DecodeTrit(0xFC))
	require.Equal(t, int8(-1), DecodeTrit(0xFE))
}

func TestPackedStride(t *testing.T) {
	tests := []struct {
		cols   int
		stride int
	}{
		{1, 1},
		{3, 1},
		{4, 1},
		{5, 2},
		{8, 2},
		{4095, 1024},
		{4096, 1024},
	}
	for _, tt := range tests {
		require.Equal(t, tt.stride, PackedStride(tt.cols), "cols=%d", tt.cols)
	}
}
