package placement_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multiplace/gapmodel"
	"github.com/katalvlaran/multiplace/matrix"
	"github.com/katalvlaran/multiplace/placement"
	"github.com/katalvlaran/multiplace/scanner"
)

// consensus builds a recognizer scoring match for the motif base and
// mismatch for every other base.
func consensus(t testing.TB, name, motif string, match, mismatch float64) scanner.Recognizer {
	t.Helper()
	pssm, err := matrix.NewDense(len(motif), scanner.NumBases)
	require.NoError(t, err)
	var k, b int
	for k = 0; k < len(motif); k++ {
		for b = 0; b < scanner.NumBases; b++ {
			v := mismatch
			if b == scanner.BaseIndex(motif[k]) {
				v = match
			}
			require.NoError(t, pssm.Set(k, b, v))
		}
	}
	rec, err := scanner.NewRecognizer(name, pssm)
	require.NoError(t, err)

	return rec
}

// constModel scores every gap of every connector with v.
type constModel struct {
	n int
	v float64
}

func (c constModel) Connectors() int { return c.n }

func (c constModel) Score(_, _ int, _ gapmodel.Geometry) (float64, error) { return c.v, nil }

func (c constModel) Validate(g gapmodel.Geometry) error {
	if c.n != g.Recognizers-1 {
		return gapmodel.ErrConnectorCount
	}

	return nil
}

// randomChain draws a random feasible problem: sequence, recognizers and
// an analytic model with σ > 0.
func randomChain(t testing.TB, rng *rand.Rand) ([]byte, []scanner.Recognizer, *gapmodel.Analytic) {
	t.Helper()
	const bases = "AGCT"
	n := 2 + rng.Intn(3)
	recs := make([]scanner.Recognizer, n)
	params := make([]gapmodel.Gaussian, n-1)
	var (
		width int
		i, k  int
		b     int
	)
	for i = 0; i < n; i++ {
		cols := 1 + rng.Intn(3)
		width += cols
		pssm, err := matrix.NewDense(cols, scanner.NumBases)
		require.NoError(t, err)
		for k = 0; k < cols; k++ {
			for b = 0; b < scanner.NumBases; b++ {
				require.NoError(t, pssm.Set(k, b, math.Round((rng.Float64()*4-2)*100)/100))
			}
		}
		recs[i] = scanner.Recognizer{Name: "r", PSSM: pssm}
	}
	for i = range params {
		params[i] = gapmodel.Gaussian{Mu: rng.Float64() * 6, Sigma: 0.5 + rng.Float64()*2.5}
	}
	seq := make([]byte, width+rng.Intn(10))
	for k = range seq {
		seq[k] = bases[rng.Intn(len(bases))]
	}
	model, err := gapmodel.NewAnalytic(params)
	require.NoError(t, err)

	return seq, recs, model
}

// bruteForce enumerates every placement of an N×A score matrix and returns
// the best total.
func bruteForce(t testing.TB, scores *matrix.Dense, model gapmodel.ConnectorModel, geo gapmodel.Geometry) float64 {
	t.Helper()
	n, a := scores.Shape()
	best := math.Inf(-1)

	// walk places recognizer i at column col with acc accumulated so far.
	var walk func(i, col int, acc float64)
	walk = func(i, col int, acc float64) {
		s, err := scores.At(i, col)
		require.NoError(t, err)
		acc += s
		if i == n-1 {
			if acc > best {
				best = acc
			}
			return
		}
		var g int
		for g = 0; col+g < a; g++ {
			c, err := model.Score(i, g, geo)
			require.NoError(t, err)
			walk(i+1, col+g, acc+c)
		}
	}
	var start int
	for start = 0; start < a; start++ {
		walk(0, start, 0)
	}

	return best
}

// sumParts adds up the per-recognizer and per-connector scores of res.
func sumParts(res placement.Result) float64 {
	var sum float64
	for _, v := range res.RecognizerScores {
		sum += v
	}
	for _, v := range res.ConnectorScores {
		sum += v
	}

	return sum
}
