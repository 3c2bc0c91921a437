package placement

import (
	"errors"
	"io"
)

var (
	// ErrNilModel indicates a chain of two or more recognizers without a connector model.
	ErrNilModel = errors.New("placement: connector model is nil")

	// ErrNilTable indicates a nil Table or score matrix passed to Traceback.
	ErrNilTable = errors.New("placement: table is nil")

	// ErrSingleRecognizer indicates Fill called on a chain without connectors.
	ErrSingleRecognizer = errors.New("placement: DP sweep needs at least two recognizers")

	// ErrShapeMismatch indicates that score matrix, geometry and table disagree on N or A.
	ErrShapeMismatch = errors.New("placement: score matrix shape does not match geometry")

	// ErrBadOptions indicates an unknown MemoryMode.
	ErrBadOptions = errors.New("placement: invalid options")
)

// MemoryMode controls how Fill stores cumulative scores.
//
//   - TwoRows   - keep only the previous and current row (default).
//   - FullTable - keep the entire N×A cumulative table in Table.Cumulative.
//
// The backpointer table is always complete; both modes trace back to the
// same placement.
type MemoryMode int

const (
	// TwoRows keeps two cumulative rows, swapped after each recognizer.
	TwoRows MemoryMode = iota

	// FullTable keeps every cumulative row.
	FullTable
)

// Options configures a placement run.
//
// Fields:
//   - MemoryMode - TwoRows or FullTable.
//   - Verbose    - if true, Fill writes one progress line per DP row.
//   - Log        - destination for Verbose output (os.Stderr when nil).
type Options struct {
	MemoryMode MemoryMode
	Verbose    bool
	Log        io.Writer
}

// DefaultOptions returns Options{MemoryMode: TwoRows}.
func DefaultOptions() Options {
	return Options{MemoryMode: TwoRows}
}

// validate rejects unknown memory modes.
func (o Options) validate() error {
	if o.MemoryMode != TwoRows && o.MemoryMode != FullTable {
		return ErrBadOptions
	}

	return nil
}

// Result is the optimal placement and its score decomposition.
//
//   - Start            - column (= absolute position) of the first recognizer.
//   - Gaps[i]          - unscored bases between recognizer i and i+1.
//   - RecognizerScores - log-odds of each recognizer at its position.
//   - ConnectorScores  - log-odds of each connector at its gap.
//   - Total            - best cumulative DP score of the whole chain.
type Result struct {
	Start            int       `json:"start"`
	Gaps             []int     `json:"gaps"`
	RecognizerScores []float64 `json:"recognizer_scores"`
	ConnectorScores  []float64 `json:"connector_scores"`
	Total            float64   `json:"total"`
}

// Positions returns the absolute start of every recognizer given their widths.
func (r Result) Positions(cols []int) []int {
	pos := make([]int, len(cols))
	if len(cols) == 0 {
		return pos
	}
	pos[0] = r.Start
	var i int
	for i = 1; i < len(cols); i++ {
		pos[i] = pos[i-1] + cols[i-1] + r.Gaps[i-1]
	}

	return pos
}

// TrailingOffset returns the number of bases after the last recognizer.
// Start + Σcols + ΣGaps + TrailingOffset == seqLen.
func (r Result) TrailingOffset(seqLen int, cols []int) int {
	if len(cols) == 0 {
		return seqLen
	}
	pos := r.Positions(cols)

	return seqLen - pos[len(pos)-1] - cols[len(cols)-1]
}
