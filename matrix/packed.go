package matrix

import (
	"github.com/hyperfold/ternbench/encoding"
	"github.com/hyperfold/ternbench/internal/hash"
)

// Packed is a row-major ternary matrix with four weights per byte.
//
// Data holds Rows*Stride bytes, where Stride = ceil(Cols/4). Fields beyond
// Cols in the last byte of each row are zero padding. Like Dense, a Packed
// matrix is read-only once built.
type Packed struct {
	Rows   int
	Cols   int
	Stride int
	Data   []byte
}

// Pack converts a dense ternary matrix into its packed form.
//
// The returned matrix owns a freshly allocated buffer; the dense matrix is not
// modified and both representations stay valid side by side, which is exactly
// what the benchmark needs to drive both kernels over the same logical matrix.
func Pack(m *Dense) (*Packed, error) {
	stride := encoding.PackedStride(m.Cols)
	buf := make([]byte, m.Rows*stride)
	if err := encoding.PackTernary(buf, m.Data, m.Rows, m.Cols); err != nil {
		return nil, err
	}

	return &Packed{
		Rows:   m.Rows,
		Cols:   m.Cols,
		Stride: stride,
		Data:   buf,
	}, nil
}

// Unpack expands the packed matrix back into a dense one. It is the exact
// inverse of Pack for every shape, including Cols not a multiple of 4.
func (m *Packed) Unpack() (*Dense, error) {
	buf := make([]int8, m.Rows*m.Cols)
	if err := encoding.UnpackTernary(buf, m.Data, m.Rows, m.Cols); err != nil {
		return nil, err
	}

	return &Dense{Rows: m.Rows, Cols: m.Cols, Data: buf}, nil
}

// SizeBytes returns the memory footprint of the packed encoding:
// Rows * ceil(Cols/4) bytes.
func (m *Packed) SizeBytes() int {
	return m.Rows * m.Stride
}

// Bytes returns the packed storage. It aliases the matrix buffer.
func (m *Packed) Bytes() []byte {
	return m.Data
}

// Fingerprint returns the xxHash64 of the packed buffer.
func (m *Packed) Fingerprint() uint64 {
	return hash.Fingerprint(m.Data)
}
