package combinatorics

import (
	"fmt"
	"math"
	"sync"
)

// DefaultTableSize is the largest n covered by the shared table returned by
// Default. The placement DP is quadratic in the effective length, so
// sequences long enough to exceed it are out of practical reach anyway.
const DefaultTableSize = 100_000

// Log2FactorialTable is an immutable cumulative table F(n) = log2(n!)
// for n = 0..Size().
//
// The table lets callers evaluate log2 C(n,k) = F(n) − F(k) − F(n−k)
// in O(1) and without the overflow limits of Binomial. Once constructed it
// is never mutated, so one instance may be shared by any number of
// concurrent placements.
type Log2FactorialTable struct {
	f []float64 // f[n] = log2(n!), len == size+1
}

var (
	defaultOnce  sync.Once
	defaultTable *Log2FactorialTable
)

// NewLog2FactorialTable builds a table covering n = 0..maxN.
//
// Implementation:
//   - Stage 1: validate maxN ≥ 0.
//   - Stage 2: accumulate f[n] = f[n−1] + log2(n) left to right.
//
// Errors:
//   - ErrBadSize when maxN < 0.
//
// Complexity: O(maxN) time and memory.
func NewLog2FactorialTable(maxN int) (*Log2FactorialTable, error) {
	if maxN < 0 {
		return nil, ErrBadSize
	}
	f := make([]float64, maxN+1)
	var n int
	for n = 2; n <= maxN; n++ {
		f[n] = f[n-1] + math.Log2(float64(n))
	}

	return &Log2FactorialTable{f: f}, nil
}

// Default returns the process-wide table of DefaultTableSize entries.
// It is built on first use and is read-only for the life of the process.
func Default() *Log2FactorialTable {
	defaultOnce.Do(func() {
		// DefaultTableSize is a positive constant; construction cannot fail.
		defaultTable, _ = NewLog2FactorialTable(DefaultTableSize)
	})

	return defaultTable
}

// Size returns the largest n covered by the table.
func (t *Log2FactorialTable) Size() int { return len(t.f) - 1 }

// Log2Factorial returns log2(n!).
func (t *Log2FactorialTable) Log2Factorial(n int) (float64, error) {
	if n < 0 || n >= len(t.f) {
		return 0, fmt.Errorf("Log2Factorial(%d): %w", n, ErrOutOfRange)
	}

	return t.f[n], nil
}

// Log2Binomial returns log2 C(n, k) = F(n) − F(k) − F(n−k).
//
// Errors:
//   - ErrDomain when k < 0 or k > n.
//   - ErrOutOfRange when n > Size().
func (t *Log2FactorialTable) Log2Binomial(n, k int) (float64, error) {
	if k < 0 || k > n {
		return 0, fmt.Errorf("Log2Binomial(%d,%d): %w", n, k, ErrDomain)
	}
	if n >= len(t.f) {
		return 0, fmt.Errorf("Log2Binomial(%d,%d): %w", n, k, ErrOutOfRange)
	}

	return t.f[n] - t.f[k] - t.f[n-k], nil
}
