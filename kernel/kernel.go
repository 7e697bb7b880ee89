// Package kernel implements the two matrix-vector multiply kernels under
// comparison: one over the dense encoding and one over the packed encoding.
//
// Both kernels compute the same mathematical function, out = M * in, with
// float32 accumulation and an identical optimization: zero weights are skipped
// since they cannot change the row sum. Their numerical equivalence is the
// correctness contract the whole benchmark rests on; the only thing that
// differs between them is how many bytes they pull through the cache
// hierarchy per weight.
//
// The kernels are deliberately scalar and single-threaded. Vectorizing them
// would shift the comparison from memory bandwidth to ALU throughput, which is
// not what this benchmark measures.
package kernel

import (
	"fmt"

	"github.com/hyperfold/ternbench/encoding"
	"github.com/hyperfold/ternbench/errs"
	"github.com/hyperfold/ternbench/matrix"
)

// MatVecDense computes out = m * in over the dense one-byte-per-weight encoding.
//
// Each row accumulates a dot product over its columns, skipping zero weights.
// out is fully overwritten on every call; there is no accumulation across
// calls and no side effect beyond out.
//
// Parameters:
//   - out: output vector, len(out) >= m.Rows
//   - m: dense ternary matrix
//   - in: input vector, len(in) >= m.Cols
//
// Returns:
//   - error: errs.ErrDimensionMismatch if a buffer is shorter than the shape
//     requires, nil otherwise
func MatVecDense(out []float32, m *matrix.Dense, in []float32) error {
	if err := checkShapes(len(out), len(in), m.Rows, m.Cols); err != nil {
		return err
	}

	for r := 0; r < m.Rows; r++ {
		var sum float32
		row := m.Data[r*m.Cols : (r+1)*m.Cols]
		for c, w := range row {
			if w != 0 {
				sum += float32(w) * in[c]
			}
		}
		out[r] = sum
	}

	return nil
}

// MatVecPacked computes out = m * in over the packed four-weights-per-byte
// encoding, decoding 2-bit fields inline.
//
// Each row walks its packed bytes left to right and decodes the four fields of
// each byte in order. Fields whose absolute column (byteIndex*4 + fieldIndex)
// is not below m.Cols are padding in the last byte of the row and are never
// read into the sum. Zero weights are skipped exactly as in MatVecDense, and
// the result is numerically equivalent to the dense kernel for the same
// logical matrix and input.
//
// Parameters:
//   - out: output vector, len(out) >= m.Rows
//   - m: packed ternary matrix
//   - in: input vector, len(in) >= m.Cols
//
// Returns:
//   - error: errs.ErrDimensionMismatch if a buffer is shorter than the shape
//     requires, nil otherwise
func MatVecPacked(out []float32, m *matrix.Packed, in []float32) error {
	if err := checkShapes(len(out), len(in), m.Rows, m.Cols); err != nil {
		return err
	}

	for r := 0; r < m.Rows; r++ {
		var sum float32
		row := m.Data[r*m.Stride : (r+1)*m.Stride]
		for i, b := range row {
			base := i * encoding.TritsPerByte
			for f := 0; f < encoding.TritsPerByte; f++ {
				c := base + f
				if c >= m.Cols {
					break
				}
				w := encoding.DecodeTrit(b >> (2 * f))
				if w != 0 {
					sum += float32(w) * in[c]
				}
			}
		}
		out[r] = sum
	}

	return nil
}

func checkShapes(outLen, inLen, rows, cols int) error {
	if outLen < rows {
		return fmt.Errorf("%w: output holds %d of %d rows", errs.ErrDimensionMismatch, outLen, rows)
	}
	if inLen < cols {
		return fmt.Errorf("%w: input holds %d of %d columns", errs.ErrDimensionMismatch, inLen, cols)
	}

	return nil
}
