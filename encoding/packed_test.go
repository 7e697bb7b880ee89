package encoding

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperfold/ternbench/errs"
)

func randomTernary(rng *rand.Rand, n int) []int8 {
	out := make([]int8, n)
	for i := range out {
		out[i] = int8(rng.Intn(3) - 1)
	}

	return out
}

func TestPackTernary_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	shapes := []struct {
		rows, cols int
	}{
		{1, 1},
		{2, 3},
		{3, 4},
		{2, 5},
		{7, 13},
		{4, 4095},
		{4, 4096},
	}
	for _, shape := range shapes {
		dense := randomTernary(rng, shape.rows*shape.cols)
		packed := make([]byte, shape.rows*PackedStride(shape.cols))
		require.NoError(t, PackTernary(packed, dense, shape.rows, shape.cols))

		restored := make([]int8, shape.rows*shape.cols)
		require.NoError(t, UnpackTernary(restored, packed, shape.rows, shape.cols))
		require.Equal(t, dense, restored, "shape %dx%d", shape.rows, shape.cols)
	}
}

func TestPackTernary_PaddingFieldsStayZero(t *testing.T) {
	// 2x5: each row uses one full byte plus a single field of a second byte.
	dense := []int8{
		1, -1, 1, -1, 1,
		-1, 1, -1, 1, -1,
	}
	packed := make([]byte, 2*PackedStride(5))
	require.NoError(t, PackTernary(packed, dense, 2, 5))

	// Row 0: fields +1,-1,+1,-1 -> 10 01 10 01 = 0x99; fifth weight +1 alone -> 0x01.
	require.Equal(t, []byte{0x99, 0x01, 0x66, 0x02}, packed)

	// The three padding fields of each row's last byte must be zero.
	require.Zero(t, packed[1]>>2)
	require.Zero(t, packed[3]>>2)

	restored := make([]int8, 10)
	require.NoError(t, UnpackTernary(restored, packed, 2, 5))
	require.Equal(t, dense, restored)
}

func TestPackTernary_ZeroFillsDirtyBuffer(t *testing.T) {
	dense := []int8{0, 0, 0, 0}
	packed := []byte{0xFF}
	require.NoError(t, PackTernary(packed, dense, 1, 4))
	require.Equal(t, byte(0x00), packed[0])
}

func TestPackTernary_InvalidInput(t *testing.T) {
	dense := make([]int8, 8)
	packed := make([]byte, 2)

	require.ErrorIs(t, PackTernary(packed, dense, 0, 4), errs.ErrInvalidDimensions)
	require.ErrorIs(t, PackTernary(packed, dense, 2, -1), errs.ErrInvalidDimensions)
	require.ErrorIs(t, PackTernary(packed, dense[:3], 2, 4), errs.ErrDimensionMismatch)
	require.ErrorIs(t, PackTernary(packed[:1], dense, 2, 4), errs.ErrDimensionMismatch)
}

func TestUnpackTernary_InvalidInput(t *testing.T) {
	dense := make([]int8, 8)
	packed := make([]byte, 2)

	require.ErrorIs(t, UnpackTernary(dense, packed, -2, 4), errs.ErrInvalidDimensions)
	require.ErrorIs(t, UnpackTernary(dense, packed[:1], 2, 4), errs.ErrDimensionMismatch)
	require.ErrorIs(t, UnpackTernary(dense[:7], packed, 2, 4), errs.ErrDimensionMismatch)
}

func BenchmarkPackTernary(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	const rows, cols = 256, 1024
	dense := randomTernary(rng, rows*cols)
	packed := make([]byte, rows*PackedStride(cols))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = PackTernary(packed, dense, rows, cols)
	}
}
