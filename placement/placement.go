package placement

import (
	"github.com/katalvlaran/multiplace/gapmodel"
	"github.com/katalvlaran/multiplace/matrix"
	"github.com/katalvlaran/multiplace/scanner"
)

// Place finds the optimal placement of recs on seq under model.
//
// Steps:
//  1. Score every recognizer at every admissible column (scanner.ScoreMatrix).
//  2. N == 1: the answer is the first argmax of the single row; model is
//     not consulted and may be nil.
//  3. N ≥ 2: validate model against the geometry, Fill, Traceback.
//
// Errors:
//   - scanner.ErrNoRecognizers, scanner.ErrInfeasible, scanner.ErrBadPSSM.
//   - ErrNilModel, ErrBadOptions and gapmodel validation errors.
func Place(seq []byte, recs []scanner.Recognizer, model gapmodel.ConnectorModel, opts Options) (Result, error) {
	if len(recs) == 0 {
		return Result{}, scanner.ErrNoRecognizers
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	scores, err := scanner.ScoreMatrix(seq, recs)
	if err != nil {
		return Result{}, err
	}
	if len(recs) == 1 {
		return placeSingle(scores)
	}

	geo := GeometryOf(len(seq), scanner.Widths(recs))

	return PlaceScores(scores, model, geo, opts)
}

// PlaceScores runs Fill and Traceback over a precomputed N×A score matrix.
// N == 1 is answered by argmax without a model.
func PlaceScores(scores *matrix.Dense, model gapmodel.ConnectorModel, geo gapmodel.Geometry, opts Options) (Result, error) {
	if scores == nil {
		return Result{}, matrix.ErrNilMatrix
	}
	if scores.Rows() == 1 {
		return placeSingle(scores)
	}
	if model == nil {
		return Result{}, ErrNilModel
	}
	t, err := Fill(scores, model, geo, opts)
	if err != nil {
		return Result{}, err
	}

	return Traceback(t, scores, model, geo)
}

// GeometryOf returns the sequence geometry of a chain with the given widths.
func GeometryOf(seqLen int, cols []int) gapmodel.Geometry {
	var sum, c int
	for _, c = range cols {
		sum += c
	}

	return gapmodel.Geometry{SeqLen: seqLen, EffectiveLen: seqLen - sum, Recognizers: len(cols)}
}

// placeSingle answers a one-recognizer chain: best column of row 0.
func placeSingle(scores *matrix.Dense) (Result, error) {
	col, best, err := scores.ArgMaxRow(0)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Start:            col,
		Gaps:             []int{},
		RecognizerScores: []float64{best},
		ConnectorScores:  []float64{},
		Total:            best,
	}, nil
}
