package placement

import (
	"fmt"

	"github.com/katalvlaran/multiplace/gapmodel"
	"github.com/katalvlaran/multiplace/matrix"
)

// Traceback reconstructs the optimal placement from a filled Table.
//
// Steps:
//  1. col = first argmax of t.Final; Total = t.Final[col].
//  2. For i = N−2 down to 0: Gaps[i] = Backpointers[i][col]; col −= Gaps[i].
//  3. Start = col (the column of recognizer 0).
//  4. ConnectorScores[i] = model.Score(i, Gaps[i]);
//     RecognizerScores[i] = scores[i][Start + ΣGaps[<i]].
//
// Errors:
//   - ErrNilTable for a nil table or score matrix; ErrNilModel for a nil model.
//   - ErrShapeMismatch when the table and score matrix disagree.
func Traceback(t *Table, scores *matrix.Dense, model gapmodel.ConnectorModel, geo gapmodel.Geometry) (Result, error) {
	if t == nil || t.Backpointers == nil || scores == nil {
		return Result{}, ErrNilTable
	}
	if model == nil {
		return Result{}, ErrNilModel
	}
	n, a := scores.Shape()
	if t.Backpointers.Rows() != n-1 || t.Backpointers.Cols() != a {
		return Result{}, fmt.Errorf("%w: table %dx%d, scores %dx%d",
			ErrShapeMismatch, t.Backpointers.Rows()+1, t.Backpointers.Cols(), n, a)
	}
	if err := matrix.ValidateVecLen(t.Final, a); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrShapeMismatch, err)
	}

	var (
		col   = matrix.ArgMax(t.Final)
		total = t.Final[col]
		gaps  = make([]int, n-1)
		i     int
		err   error
	)
	for i = n - 2; i >= 0; i-- {
		if gaps[i], err = t.Backpointers.At(i, col); err != nil {
			return Result{}, err
		}
		col -= gaps[i]
	}

	res := Result{
		Start:            col,
		Gaps:             gaps,
		RecognizerScores: make([]float64, n),
		ConnectorScores:  make([]float64, n-1),
		Total:            total,
	}
	for i = range gaps {
		if res.ConnectorScores[i], err = model.Score(i, gaps[i], geo); err != nil {
			return Result{}, err
		}
	}
	for i = 0; i < n; i++ {
		if i > 0 {
			col += gaps[i-1]
		}
		if res.RecognizerScores[i], err = scores.At(i, col); err != nil {
			return Result{}, err
		}
	}

	return res, nil
}
