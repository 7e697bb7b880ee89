package matrix

import (
	"fmt"
	"math/rand"

	"github.com/hyperfold/ternbench/errs"
)

// Generator produces random ternary matrices and input vectors from a seeded
// source. Identical seeds and parameters reproduce identical output.
//
// A Generator is stateful: each call advances the underlying source, so the
// call order matters for reproducibility. It is not safe for concurrent use,
// which is fine for this system's strictly sequential run model.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded with the given value.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Dense generates a rows x cols ternary matrix with the given sparsity.
//
// For each cell a uniform u in [0,1) is drawn: u < sparsity yields 0, and the
// remaining probability mass is split evenly between +1 and -1. sparsity=0
// therefore yields a matrix with no structural zeros, sparsity=1 an all-zero
// matrix.
//
// Parameters:
//   - rows, cols: matrix dimensions, both positive
//   - sparsity: fraction of zero weights, in [0, 1]
//
// Returns:
//   - *Dense: the generated matrix
//   - error: errs.ErrInvalidDimensions or errs.ErrInvalidSparsity on contract
//     violations
func (g *Generator) Dense(rows, cols int, sparsity float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", errs.ErrInvalidDimensions, rows, cols)
	}
	if sparsity < 0 || sparsity > 1 {
		return nil, fmt.Errorf("%w: %v not in [0, 1]", errs.ErrInvalidSparsity, sparsity)
	}

	data := make([]int8, rows*cols)
	posThreshold := sparsity + (1.0-sparsity)/2.0
	for i := range data {
		u := g.rng.Float64()
		switch {
		case u < sparsity:
			data[i] = 0
		case u < posThreshold:
			data[i] = 1
		default:
			data[i] = -1
		}
	}

	return &Dense{Rows: rows, Cols: cols, Data: data}, nil
}

// Vector generates an input vector of n float32 values uniform in [-1, 1).
func (g *Generator) Vector(n int) ([]float32, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: vector length %d", errs.ErrInvalidDimensions, n)
	}

	vec := make([]float32, n)
	for i := range vec {
		vec[i] = float32(g.rng.Float64()*2.0 - 1.0)
	}

	return vec, nil
}
