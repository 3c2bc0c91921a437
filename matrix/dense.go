// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewDenseFrom: O(r*c) validation, no copy;
//     At/Set/Row: O(1); Clone: O(r*c); ArgMaxRow: O(c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxFrom   = "From"
	ctxArgMax = "ArgMaxRow"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps a sentinel with a uniform Dense context and callsite indices.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is the read/write surface shared by float tables.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set assigns v at position (i, j) or returns ErrOutOfRange / ErrNaNInf.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Dense is a concrete row-major float64 matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c (offset = i*c + j).
//   - validateNaNInf / allowNegInf carry the numeric policy.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
	allowNegInf    bool
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve numeric policy from opts.
//   - Stage 3: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
		allowNegInf:    o.allowNegInf,
	}, nil
}

// NewDenseFrom wraps an existing flat row-major buffer without copying it.
//
// Implementation:
//   - Stage 1: validate shape and len(data) == rows*cols.
//   - Stage 2: apply the numeric policy to every cell.
//   - Stage 3: return the view; mutations through Set reach data.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf (wrapped with the
//     first offending coordinates).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("Dense.%s: len %d != %d×%d: %w", ctxFrom, len(data), rows, cols, ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	m := &Dense{r: rows, c: cols, data: data, validateNaNInf: o.validateNaNInf, allowNegInf: o.allowNegInf}

	if m.validateNaNInf {
		var i int
		for i = range data {
			if m.rejects(data[i]) {
				return nil, denseErrorf(ctxFrom, i/cols, i%cols, ErrNaNInf)
			}
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// rejects reports whether v violates the numeric policy.
func (m *Dense) rejects(v float64) bool {
	if math.IsNaN(v) {
		return true
	}
	if math.IsInf(v, -1) {
		return !m.allowNegInf
	}

	return math.IsInf(v, 1)
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && m.rejects(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns row i as a slice sharing the matrix storage.
//
// Behavior highlights:
//   - One bounds check, then the caller may index 0..Cols()-1 freely.
//   - Writes through the slice bypass the numeric policy; hot loops that
//     use it are responsible for the values they store.
//
// Complexity: O(1).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c], nil
}

// ArgMaxRow returns the first column holding the maximum of row i and that
// maximum. Ties resolve to the smallest column; NaN cells never win.
//
// Complexity: O(c).
func (m *Dense) ArgMaxRow(i int) (col int, best float64, err error) {
	row, err := m.Row(i)
	if err != nil {
		return 0, 0, denseErrorf(ctxArgMax, i, 0, ErrOutOfRange)
	}
	col = ArgMax(row)

	return col, row[col], nil
}

// ArgMax returns the first index of the maximum of xs (0 for an empty slice).
// Only a strictly greater value replaces the running best.
//
// Complexity: O(len(xs)).
func ArgMax(xs []float64) int {
	var best, j int
	for j = 1; j < len(xs); j++ {
		if xs[j] > xs[best] {
			best = j
		}
	}

	return best
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
		allowNegInf:    m.allowNegInf,
	}
}

// String renders rows as lines of comma-separated values for diagnostics.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var (
		b          strings.Builder
		i, j, base int
	)
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
