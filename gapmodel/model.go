package gapmodel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/multiplace/combinatorics"
	"github.com/katalvlaran/multiplace/matrix"
)

// Geometry carries the per-sequence constants every connector score needs.
//
//   - SeqLen       - L, the sequence length.
//   - EffectiveLen - L − Σcols, positions not consumed by any recognizer.
//   - Recognizers  - N, the chain length.
type Geometry struct {
	SeqLen       int
	EffectiveLen int
	Recognizers  int
}

// Validate checks the internal consistency of g.
func (g Geometry) Validate() error {
	if g.Recognizers < 1 || g.SeqLen < 0 || g.EffectiveLen < 0 || g.EffectiveLen > g.SeqLen {
		return fmt.Errorf("%w: %+v", ErrBadGeometry, g)
	}

	return nil
}

// ConnectorModel scores every connector of a chain at any gap length.
// Implementations are immutable and safe for concurrent use.
type ConnectorModel interface {
	// Connectors returns the number of connectors the model describes (N−1).
	Connectors() int

	// Score returns the log2-odds score of connector conn at gap length gap.
	// Errors only on a bad connector index; numeric edge cases fall back to floors.
	Score(conn, gap int, g Geometry) (float64, error)

	// Validate reports whether the model can score a chain of geometry g.
	Validate(g Geometry) error
}

// Compile-time conformance.
var (
	_ ConnectorModel = (*Analytic)(nil)
	_ ConnectorModel = (*Tabulated)(nil)
)

// Gaussian is the analytic description of one connector.
type Gaussian struct {
	Mu    float64 `json:"mu"`
	Sigma float64 `json:"sigma"`
}

// Analytic scores connectors with discretized Gaussians.
type Analytic struct {
	params []Gaussian
}

// NewAnalytic validates and copies params (one entry per connector).
//
// Errors:
//   - ErrBadGaussian if any μ or σ is NaN or ±Inf.
func NewAnalytic(params []Gaussian) (*Analytic, error) {
	var i int
	for i = range params {
		if isNonFinite(params[i].Mu) || isNonFinite(params[i].Sigma) {
			return nil, fmt.Errorf("connector %d: %w", i, ErrBadGaussian)
		}
	}
	cp := make([]Gaussian, len(params))
	copy(cp, params)

	return &Analytic{params: cp}, nil
}

// NewAnalyticFromFlat reads (μ, σ) pairs from a flat buffer of length 2·(N−1).
func NewAnalyticFromFlat(flat []float64) (*Analytic, error) {
	if len(flat)%2 != 0 {
		return nil, fmt.Errorf("%w: odd flat length %d", ErrConnectorCount, len(flat))
	}
	params := make([]Gaussian, len(flat)/2)
	var i int
	for i = range params {
		params[i] = Gaussian{Mu: flat[2*i], Sigma: flat[2*i+1]}
	}

	return NewAnalytic(params)
}

// Connectors returns the number of connectors.
func (a *Analytic) Connectors() int { return len(a.params) }

// Params returns a copy of the Gaussian parameters.
func (a *Analytic) Params() []Gaussian {
	cp := make([]Gaussian, len(a.params))
	copy(cp, a.params)

	return cp
}

// Validate checks that the model has exactly N−1 connectors.
func (a *Analytic) Validate(g Geometry) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if len(a.params) != g.Recognizers-1 {
		return fmt.Errorf("%w: have %d, chain needs %d", ErrConnectorCount, len(a.params), g.Recognizers-1)
	}

	return nil
}

// Score returns log2(Numerator / Denominator) for connector conn.
// The numerator is renormalized over the effective length; the null model
// uses the 1-indexed gap d = gap+1.
func (a *Analytic) Score(conn, gap int, g Geometry) (float64, error) {
	if conn < 0 || conn >= len(a.params) {
		return 0, fmt.Errorf("Analytic.Score(%d): %w", conn, ErrConnectorIndex)
	}
	p := a.params[conn]

	return math.Log2(Numerator(g.EffectiveLen, gap, p.Mu, p.Sigma) / Denominator(gap+1, g.Recognizers, g.EffectiveLen)), nil
}

// Tabulated scores connectors from precomputed gap probabilities.
//
// scores has one row per connector and MaxLength() columns; cell (i, gap)
// is the probability connector i assigns to that gap. The null model is
// re-based onto the current effective length and chain size through the
// injected log2-factorial table, so no binomial is recomputed per call.
type Tabulated struct {
	scores *matrix.Dense
	table  *combinatorics.Log2FactorialTable
}

// NewTabulated validates scores, copies them and binds the log2-factorial
// table. A nil table selects combinatorics.Default(). Later writes to
// scores do not reach the model.
//
// Errors:
//   - ErrNilScores for a nil score matrix.
//   - ErrBadProbability for a negative or non-finite cell.
func NewTabulated(scores *matrix.Dense, table *combinatorics.Log2FactorialTable) (*Tabulated, error) {
	if scores == nil {
		return nil, ErrNilScores
	}
	var (
		i   int
		row []float64
		err error
		v   float64
		j   int
	)
	for i = 0; i < scores.Rows(); i++ {
		if row, err = scores.Row(i); err != nil {
			return nil, err
		}
		for j, v = range row {
			if isNonFinite(v) || v < 0 {
				return nil, fmt.Errorf("connector %d gap %d: %w", i, j, ErrBadProbability)
			}
		}
	}
	if table == nil {
		table = combinatorics.Default()
	}

	return &Tabulated{scores: scores.Clone().(*matrix.Dense), table: table}, nil
}

// Connectors returns the number of connector rows.
func (t *Tabulated) Connectors() int { return t.scores.Rows() }

// MaxLength returns the number of tabulated gap lengths (0..MaxLength()−1).
func (t *Tabulated) MaxLength() int { return t.scores.Cols() }

// Validate checks the connector count and that the factorial table covers
// the effective length.
func (t *Tabulated) Validate(g Geometry) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if t.scores.Rows() != g.Recognizers-1 {
		return fmt.Errorf("%w: have %d, chain needs %d", ErrConnectorCount, t.scores.Rows(), g.Recognizers-1)
	}
	if g.EffectiveLen > t.table.Size() {
		return fmt.Errorf("%w: table %d < effective length %d", ErrTableTooSmall, t.table.Size(), g.EffectiveLen)
	}

	return nil
}

// Score returns log2(p) − log2(null), where p is the tabulated probability
// of gap and null is C(L−d, N−1)/C(L, N) in log space.
//
// Behavior highlights:
//   - gap outside [0, MaxLength()) is never looked up; p = NumeratorFloor.
//   - d outside [1, L−N+1] (or beyond the factorial table) uses DenominatorFloor.
//   - p == 0 yields −Inf: the table forbids that gap outright.
func (t *Tabulated) Score(conn, gap int, g Geometry) (float64, error) {
	if conn < 0 || conn >= t.scores.Rows() {
		return 0, fmt.Errorf("Tabulated.Score(%d): %w", conn, ErrConnectorIndex)
	}

	p := NumeratorFloor
	if gap >= 0 && gap < t.scores.Cols() {
		// In range by the checks above.
		p, _ = t.scores.At(conn, gap)
	}

	return math.Log2(p) - t.logNull(gap+1, g), nil
}

// logNull returns log2 of the null-model probability of the 1-indexed gap d.
func (t *Tabulated) logNull(d int, g Geometry) float64 {
	var (
		l, n     = g.EffectiveLen, g.Recognizers
		num, den float64
		err      error
	)
	if n < 1 || d < 1 || d > l-n+1 {
		return math.Log2(DenominatorFloor)
	}
	if num, err = t.table.Log2Binomial(l-d, n-1); err != nil {
		return math.Log2(DenominatorFloor)
	}
	if den, err = t.table.Log2Binomial(l, n); err != nil {
		return math.Log2(DenominatorFloor)
	}

	return num - den
}

// ConnectorRow evaluates connector conn at every gap 0..columns−1.
// A connector score depends only on (conn, gap), so the row can be reused
// for every cell of a DP row.
//
// Complexity: O(columns) model calls.
func ConnectorRow(m ConnectorModel, conn, columns int, g Geometry) ([]float64, error) {
	row := make([]float64, columns)
	var (
		gap int
		err error
	)
	for gap = range row {
		if row[gap], err = m.Score(conn, gap, g); err != nil {
			return nil, err
		}
	}

	return row, nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
