package placement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multiplace/gapmodel"
	"github.com/katalvlaran/multiplace/matrix"
	"github.com/katalvlaran/multiplace/placement"
)

func TestTraceback_Errors(t *testing.T) {
	geo := gapmodel.Geometry{SeqLen: 5, EffectiveLen: 3, Recognizers: 2}
	scores := dense(t, 2, 4, 0, 0, 0, 0, 0, 0, 0, 0)
	tab, err := placement.Fill(scores, constModel{n: 1}, geo, placement.DefaultOptions())
	require.NoError(t, err)

	_, err = placement.Traceback(nil, scores, constModel{n: 1}, geo)
	assert.ErrorIs(t, err, placement.ErrNilTable)
	_, err = placement.Traceback(tab, nil, constModel{n: 1}, geo)
	assert.ErrorIs(t, err, placement.ErrNilTable)
	_, err = placement.Traceback(tab, scores, nil, geo)
	assert.ErrorIs(t, err, placement.ErrNilModel)
	_, err = placement.Traceback(tab, dense(t, 3, 4, make([]float64, 12)...), constModel{n: 1}, geo)
	assert.ErrorIs(t, err, placement.ErrShapeMismatch)
	_, err = placement.Traceback(&placement.Table{Backpointers: tab.Backpointers, Final: []float64{1}}, scores, constModel{n: 1}, geo)
	assert.ErrorIs(t, err, placement.ErrShapeMismatch)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestTraceback_HandBuilt follows the backpointers of a hand-made table.
func TestTraceback_HandBuilt(t *testing.T) {
	bp, err := matrix.NewIntDense(2, 5)
	require.NoError(t, err)
	// Final best at column 4; row 1 says gap 3, row 0 at column 1 says gap 1.
	require.NoError(t, bp.Set(1, 4, 3))
	require.NoError(t, bp.Set(0, 1, 1))
	tab := &placement.Table{Backpointers: bp, Final: []float64{0, 1, 2, 3, 9}}

	scores := dense(t, 3, 5,
		10, 11, 12, 13, 14,
		20, 21, 22, 23, 24,
		30, 31, 32, 33, 34,
	)
	geo := gapmodel.Geometry{SeqLen: 9, EffectiveLen: 4, Recognizers: 3}
	res, err := placement.Traceback(tab, scores, constModel{n: 2, v: 0.5}, geo)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Start)
	assert.Equal(t, []int{1, 3}, res.Gaps)
	assert.Equal(t, []float64{10, 21, 34}, res.RecognizerScores)
	assert.Equal(t, []float64{0.5, 0.5}, res.ConnectorScores)
	assert.Equal(t, 9.0, res.Total)
}

func TestResult_Positions(t *testing.T) {
	res := placement.Result{Start: 2, Gaps: []int{1, 0}}
	cols := []int{3, 2, 4}
	assert.Equal(t, []int{2, 6, 8}, res.Positions(cols))
	assert.Equal(t, 3, res.TrailingOffset(15, cols))
	assert.Empty(t, res.Positions(nil))
	assert.Equal(t, 15, res.TrailingOffset(15, nil))
}
