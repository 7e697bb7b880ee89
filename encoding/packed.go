package encoding

import (
	"fmt"

	"github.com/hyperfold/ternbench/errs"
)

// PackTernary packs a row-major dense ternary matrix into dst, four weights
// per byte.
//
// dst must have capacity for rows*PackedStride(cols) bytes. It is zero-filled
// before any field is written, which is what guarantees that padding fields in
// the last byte of each row decode to 0. Each field is then ORed into place,
// so every byte is written exactly once per distinct field.
//
// Parameters:
//   - dst: output buffer, len(dst) >= rows*PackedStride(cols)
//   - src: dense matrix in row-major order, len(src) >= rows*cols
//   - rows, cols: matrix dimensions, both positive
//
// Returns:
//   - error: errs.ErrInvalidDimensions or errs.ErrDimensionMismatch on contract
//     violations, nil otherwise
func PackTernary(dst []byte, src []int8, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: %dx%d", errs.ErrInvalidDimensions, rows, cols)
	}

	stride := PackedStride(cols)
	if len(src) < rows*cols {
		return fmt.Errorf("%w: dense buffer holds %d of %d weights", errs.ErrDimensionMismatch, len(src), rows*cols)
	}
	if len(dst) < rows*stride {
		return fmt.Errorf("%w: packed buffer holds %d of %d bytes", errs.ErrDimensionMismatch, len(dst), rows*stride)
	}

	clear(dst[:rows*stride])

	for r := 0; r < rows; r++ {
		rowBase := r * cols
		packedBase := r * stride
		for c := 0; c < cols; c++ {
			field := EncodeTrit(src[rowBase+c])
			dst[packedBase+c/TritsPerByte] |= field << (2 * (c % TritsPerByte))
		}
	}

	return nil
}

// UnpackTernary expands a packed ternary matrix back into its dense row-major
// form, the exact inverse of PackTernary for every shape, including column
// counts that are not a multiple of four.
//
// Parameters:
//   - dst: output dense buffer, len(dst) >= rows*cols
//   - src: packed matrix, len(src) >= rows*PackedStride(cols)
//   - rows, cols: matrix dimensions, both positive
//
// Returns:
//   - error: errs.ErrInvalidDimensions or errs.ErrDimensionMismatch on contract
//     violations, nil otherwise
func UnpackTernary(dst []int8, src []byte, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: %dx%d", errs.ErrInvalidDimensions, rows, cols)
	}

	stride := PackedStride(cols)
	if len(src) < rows*stride {
		return fmt.Errorf("%w: packed buffer holds %d of %d bytes", errs.ErrDimensionMismatch, len(src), rows*stride)
	}
	if len(dst) < rows*cols {
		return fmt.Errorf("%w: dense buffer holds %d of %d weights", errs.ErrDimensionMismatch, len(dst), rows*cols)
	}

	for r := 0; r < rows; r++ {
		rowBase := r * cols
		packedBase := r * stride
		for c := 0; c < cols; c++ {
			b := src[packedBase+c/TritsPerByte]
			dst[rowBase+c] = DecodeTrit(b >> (2 * (c % TritsPerByte)))
		}
	}

	return nil
}
