package placement

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/multiplace/gapmodel"
	"github.com/katalvlaran/multiplace/matrix"
)

// Table is the output of the DP sweep.
//
//   - Backpointers - (N−1)×A; cell (i, j) is the gap chosen before
//     recognizer i+1 when it sits at column j.
//   - Final        - best cumulative score of the whole chain ending at each column.
//   - Cumulative   - N×A cumulative table (FullTable mode only, nil otherwise).
type Table struct {
	Backpointers *matrix.IntDense
	Final        []float64
	Cumulative   *matrix.Dense
}

// Fill runs the placement DP over an N×A score matrix.
//
// Algorithm:
//  1. prev = scores[0] (the first recognizer has no connector).
//  2. For i = 1..N−1:
//     gap[g] = model.Score(i−1, g) for g = 0..A−1
//     For j = 0..A−1:
//     best = prev[0] + gap[j] + scores[i][j]          (k = 0 seeds)
//     For k = 1..j:
//     cand = prev[k] + gap[j−k] + scores[i][j]
//     if cand > best: best, choice = cand, j−k
//     cur[j] = best; Backpointers[i−1][j] = choice
//     swap(prev, cur)
//  3. Final = prev.
//
// Each connector row is evaluated once per recognizer row: the score of a
// gap depends only on (connector, gap), so the inner loop reads it from a
// slice.
//
// Errors:
//   - matrix.ErrNilMatrix for nil scores; ErrNilModel for a nil model.
//   - ErrSingleRecognizer when N < 2; ErrShapeMismatch when N != geo.Recognizers.
//   - ErrBadOptions; model validation errors from gapmodel.
//
// Complexity: O(N·A²) time, O(N·A) memory.
func Fill(scores *matrix.Dense, model gapmodel.ConnectorModel, geo gapmodel.Geometry, opts Options) (*Table, error) {
	if err := matrix.ValidateNotNil(scores); err != nil {
		return nil, err
	}
	if model == nil {
		return nil, ErrNilModel
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	n, a := scores.Shape()
	if n < 2 {
		return nil, ErrSingleRecognizer
	}
	if n != geo.Recognizers {
		return nil, fmt.Errorf("%w: %d rows, geometry has %d recognizers", ErrShapeMismatch, n, geo.Recognizers)
	}
	if err := model.Validate(geo); err != nil {
		return nil, err
	}

	bp, err := matrix.NewIntDense(n-1, a)
	if err != nil {
		return nil, err
	}
	var cum *matrix.Dense
	if opts.MemoryMode == FullTable {
		if cum, err = matrix.NewDense(n, a, matrix.WithAllowNegInf()); err != nil {
			return nil, err
		}
	}

	var (
		prev   = make([]float64, a)
		cur    = make([]float64, a)
		srow   []float64
		bprow  []int
		gaps   []float64
		i      int
		j, k   int
		best   float64
		cand   float64
		choice int
	)
	// Row 0: the unconnected first recognizer is its own cumulative best.
	if srow, err = scores.Row(0); err != nil {
		return nil, err
	}
	copy(prev, srow)
	if err = storeRow(cum, 0, prev); err != nil {
		return nil, err
	}

	for i = 1; i < n; i++ {
		if gaps, err = gapmodel.ConnectorRow(model, i-1, a, geo); err != nil {
			return nil, err
		}
		if srow, err = scores.Row(i); err != nil {
			return nil, err
		}
		if bprow, err = bp.Row(i - 1); err != nil {
			return nil, err
		}

		for j = 0; j < a; j++ {
			best = prev[0] + gaps[j] + srow[j]
			choice = j
			for k = 1; k <= j; k++ {
				cand = prev[k] + gaps[j-k] + srow[j]
				if cand > best {
					best = cand
					choice = j - k
				}
			}
			cur[j] = best
			bprow[j] = choice
		}

		if err = storeRow(cum, i, cur); err != nil {
			return nil, err
		}
		prev, cur = cur, prev
		if opts.Verbose {
			logRow(opts.Log, i, n, prev)
		}
	}

	return &Table{Backpointers: bp, Final: prev, Cumulative: cum}, nil
}

// storeRow copies row into cum[i] when a full table is kept.
func storeRow(cum *matrix.Dense, i int, row []float64) error {
	if cum == nil {
		return nil
	}
	dst, err := cum.Row(i)
	if err != nil {
		return err
	}
	copy(dst, row)

	return nil
}

// logRow prints the running best of row i; Verbose output only.
func logRow(w io.Writer, i, n int, row []float64) {
	if w == nil {
		w = os.Stderr
	}
	j := matrix.ArgMax(row)
	_, _ = fmt.Fprintf(w, "placement: row %d/%d best=%.6g at column %d\n", i, n-1, row[j], j)
}
