package matrix

import (
	"unsafe"

	"github.com/hyperfold/ternbench/internal/hash"
)

// Dense is a row-major ternary matrix with one weight per byte.
//
// Data holds Rows*Cols int8 weights, each one of {-1, 0, +1}. The struct is
// treated as read-only once generated.
type Dense struct {
	Rows int
	Cols int
	Data []int8
}

// At returns the weight at (row, col). No bounds checking beyond the slice's own.
func (m *Dense) At(row, col int) int8 {
	return m.Data[row*m.Cols+col]
}

// SizeBytes returns the memory footprint of the dense encoding: one byte per weight.
func (m *Dense) SizeBytes() int {
	return m.Rows * m.Cols
}

// Bytes returns the matrix storage viewed as a byte slice, without copying.
// int8 and byte share size and alignment, so the view is exact.
func (m *Dense) Bytes() []byte {
	if len(m.Data) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(&m.Data[0])), len(m.Data))
}

// Fingerprint returns the xxHash64 of the matrix contents. Two dense matrices
// with identical weights have identical fingerprints.
func (m *Dense) Fingerprint() uint64 {
	return hash.Fingerprint(m.Bytes())
}
