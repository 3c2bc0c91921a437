// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// intDenseErrorf mirrors denseErrorf for IntDense methods.
func intDenseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("IntDense.%s(%d,%d): %w", method, row, col, err)
}

// IntDense is a row-major matrix of int cells.
// The placement DP stores one chosen gap length per (connector, column) here.
type IntDense struct {
	r, c int
	data []int
}

// NewIntDense creates an r×c zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity: O(r*c).
func NewIntDense(rows, cols int) (*IntDense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &IntDense{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// Rows returns the row count.
func (m *IntDense) Rows() int { return m.r }

// Cols returns the column count.
func (m *IntDense) Cols() int { return m.c }

// At returns the value at (row, col) or ErrOutOfRange.
func (m *IntDense) At(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, intDenseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *IntDense) Set(row, col int, v int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return intDenseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Row returns row i as a slice sharing the matrix storage.
func (m *IntDense) Row(i int) ([]int, error) {
	if i < 0 || i >= m.r {
		return nil, intDenseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c], nil
}
