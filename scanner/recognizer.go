package scanner

import (
	"fmt"

	"github.com/katalvlaran/multiplace/matrix"
)

// NumBases is the width of every PSSM row.
const NumBases = 4

// Base indices in PSSM rows.
const (
	BaseA = iota
	BaseG
	BaseC
	BaseT
)

// BaseIndex maps a sequence byte to its PSSM column, or −1 for symbols
// outside {A,G,C,T} in either case.
func BaseIndex(b byte) int {
	switch b {
	case 'A', 'a':
		return BaseA
	case 'G', 'g':
		return BaseG
	case 'C', 'c':
		return BaseC
	case 'T', 't':
		return BaseT
	}

	return -1
}

// Recognizer is one motif of the chain.
type Recognizer struct {
	// Name is informational (reports, CLI output).
	Name string

	// PSSM holds cols × NumBases log-odds scores.
	PSSM *matrix.Dense
}

// NewRecognizer validates pssm and binds it to name.
//
// Errors:
//   - ErrBadPSSM when pssm is nil or not cols×4.
func NewRecognizer(name string, pssm *matrix.Dense) (Recognizer, error) {
	if pssm == nil || pssm.Cols() != NumBases {
		return Recognizer{}, fmt.Errorf("recognizer %q: %w", name, ErrBadPSSM)
	}

	return Recognizer{Name: name, PSSM: pssm}, nil
}

// Cols returns the motif width.
func (r Recognizer) Cols() int { return r.PSSM.Rows() }

// Score sums the log-odds of r over seq[start : start+Cols()].
// The caller guarantees the window lies inside seq.
func (r Recognizer) Score(seq []byte, start int) float64 {
	var (
		score float64
		k, b  int
		row   []float64
	)
	for k = 0; k < r.Cols(); k++ {
		if b = BaseIndex(seq[start+k]); b < 0 {
			continue
		}
		// k < Rows() by the loop bound.
		row, _ = r.PSSM.Row(k)
		score += row[b]
	}

	return score
}

// RecognizersFromFlat slices a flat Σcols×4 buffer into recognizers, one
// per entry of lengths, columns concatenated in chain order.
//
// The returned PSSMs are views over flat (no copy).
//
// Errors:
//   - ErrNoRecognizers for an empty lengths slice.
//   - ErrBadLengths when a length is < 1 or Σlengths×4 != len(flat).
//   - matrix.ErrNaNInf for non-finite log-odds values.
func RecognizersFromFlat(flat []float64, lengths []int) ([]Recognizer, error) {
	if len(lengths) == 0 {
		return nil, ErrNoRecognizers
	}
	var total, i, cols int
	for i, cols = range lengths {
		if cols < 1 {
			return nil, fmt.Errorf("recognizer %d has %d columns: %w", i, cols, ErrBadLengths)
		}
		total += cols
	}
	if total*NumBases != len(flat) {
		return nil, fmt.Errorf("%d columns need %d values, have %d: %w", total, total*NumBases, len(flat), ErrBadLengths)
	}

	recs := make([]Recognizer, len(lengths))
	var (
		off  int
		pssm *matrix.Dense
		err  error
	)
	for i, cols = range lengths {
		end := off + cols*NumBases
		if pssm, err = matrix.NewDenseFrom(cols, NumBases, flat[off:end:end]); err != nil {
			return nil, fmt.Errorf("recognizer %d: %w", i, err)
		}
		recs[i] = Recognizer{Name: fmt.Sprintf("r%d", i), PSSM: pssm}
		off = end
	}

	return recs, nil
}
