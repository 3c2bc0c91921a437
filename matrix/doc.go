// Package matrix provides the typed, bounds-checked tables used by the
// placement engine.
//
// The engine works on a handful of rectangular tables: recognizer PSSMs
// (cols × 4), tabulated connector scores ((N−1) × maxLength), the score
// matrix and the cumulative DP table (N × A), and the backpointer table
// ((N−1) × A). Instead of hand-computed strides over flat buffers, each of
// them is a row-major view with explicit shape metadata:
//
//   - Dense    - float64 cells, optional finite-only numeric policy.
//   - IntDense - int cells (gap lengths chosen by the DP).
//
// Public accessors (At/Set) never panic on bad indices; they return
// ErrOutOfRange wrapped with the method name and coordinates. Hot loops may
// borrow a whole row with Row and index it directly after one check.
//
// Complexity:
//
//   - NewDense / NewIntDense: O(r*c) zero-init
//   - At / Set / Row:          O(1)
//   - Clone / ArgMaxRow:       O(r*c) / O(c)
package matrix
