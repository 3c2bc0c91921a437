package scanner

import (
	"fmt"

	"github.com/katalvlaran/multiplace/matrix"
)

// Widths returns the column count of every recognizer.
func Widths(recs []Recognizer) []int {
	cols := make([]int, len(recs))
	var i int
	for i = range recs {
		cols[i] = recs[i].Cols()
	}

	return cols
}

// ForwardOffset returns the first legal start of recognizer i: the total
// width of the recognizers before it.
func ForwardOffset(i int, cols []int) int {
	var off, k int
	for k = 0; k < i; k++ {
		off += cols[k]
	}

	return off
}

// ReverseOffset returns the width that must remain to the right of the
// last legal start of recognizer i: the width of recognizers i..N−1, minus
// one so that recognizer i itself may end at the last base.
func ReverseOffset(i int, cols []int) int {
	var off, k int
	for k = len(cols) - 1; k >= i; k-- {
		off += cols[k]
	}

	return off - 1
}

// AlignmentColumns returns A = seqLen − ForwardOffset(0) − ReverseOffset(0),
// the number of admissible start columns shared by every recognizer.
//
// Errors:
//   - ErrNoRecognizers for an empty chain.
//   - ErrInfeasible when A ≤ 0.
func AlignmentColumns(seqLen int, cols []int) (int, error) {
	if len(cols) == 0 {
		return 0, ErrNoRecognizers
	}
	a := seqLen - ForwardOffset(0, cols) - ReverseOffset(0, cols)
	if a <= 0 {
		return 0, fmt.Errorf("%w: length %d, chain width %d", ErrInfeasible, seqLen, ForwardOffset(len(cols), cols))
	}

	return a, nil
}

// ScoreMatrix scores every recognizer at every admissible start.
//
// Algorithm:
//  1. A = AlignmentColumns(len(seq), widths).
//  2. For recognizer i and start j in [ForwardOffset(i), len(seq) − ReverseOffset(i)):
//     S[i][j − ForwardOffset(i)] = Σ_k PSSM_i[k][base(seq[j+k])].
//
// Returns an N × A matrix; column c of row i is the start ForwardOffset(i)+c.
//
// Errors:
//   - ErrNoRecognizers, ErrInfeasible, ErrBadPSSM.
//
// Complexity: O(N·A·cols) time, O(N·A) memory.
func ScoreMatrix(seq []byte, recs []Recognizer) (*matrix.Dense, error) {
	var i int
	for i = range recs {
		if recs[i].PSSM == nil || recs[i].PSSM.Cols() != NumBases {
			return nil, fmt.Errorf("recognizer %d: %w", i, ErrBadPSSM)
		}
	}
	cols := Widths(recs)
	a, err := AlignmentColumns(len(seq), cols)
	if err != nil {
		return nil, err
	}

	scores, err := matrix.NewDense(len(recs), a)
	if err != nil {
		return nil, err
	}

	var (
		fwd, rev, j int
		row         []float64
	)
	for i = range recs {
		fwd = ForwardOffset(i, cols)
		rev = ReverseOffset(i, cols)
		if row, err = scores.Row(i); err != nil {
			return nil, err
		}
		for j = fwd; j < len(seq)-rev; j++ {
			row[j-fwd] = recs[i].Score(seq, j)
		}
	}

	return scores, nil
}
