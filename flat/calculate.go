package flat

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/multiplace/combinatorics"
	"github.com/katalvlaran/multiplace/gapmodel"
	"github.com/katalvlaran/multiplace/matrix"
	"github.com/katalvlaran/multiplace/placement"
	"github.com/katalvlaran/multiplace/scanner"
)

// Input is one placement problem in flat form.
type Input struct {
	// Sequence is the DNA to scan.
	Sequence []byte

	// RecognizerMatrices holds Σcols×4 log-odds values, recognizers
	// concatenated in chain order, bases in {A,G,C,T} order.
	RecognizerMatrices []float64

	// RecognizerLengths holds the column count of each recognizer.
	RecognizerLengths []int

	// ConnectorMatrices holds 2·(N−1) Gaussian parameters (μ0, σ0, μ1, ...)
	// or (N−1)·MaxLength gap probabilities.
	ConnectorMatrices []float64

	// MaxLength is the row width of tabulated connector probabilities.
	MaxLength int

	// Table is the log2-factorial table for tabulated mode
	// (combinatorics.Default() when nil).
	Table *combinatorics.Log2FactorialTable

	// Options tunes the DP sweep.
	Options placement.Options
}

// Output receives the placement. Buffers are caller-owned and must be
// sized up front.
type Output struct {
	// RecognizerScores needs N+1 slots; slot N receives the chain total.
	RecognizerScores []float64

	// ConnectorScores needs N−1 slots.
	ConnectorScores []float64

	// ConnectorLengths needs N−1 slots: the gap before recognizers 1..N−1.
	ConnectorLengths []int

	// Positions is optional; when non-nil it needs N slots and receives
	// the absolute start of every recognizer.
	Positions []int
}

// Calculate validates in and out, runs the placement and fills out.
// Output buffers are left untouched on error.
//
// A single recognizer has no connectors, so ConnectorMatrices must be empty;
// a non-empty buffer is rejected with ErrShapeMismatch rather than ignored.
// The start column of the first recognizer is reported only through
// out.Positions; callers that leave it nil cannot recover Start.
//
// Errors:
//   - ErrNoRecognizers, ErrShapeMismatch, ErrOutputSize, ErrBadMaxLength.
//   - scanner.ErrInfeasible when the chain does not fit the sequence.
//   - gapmodel and matrix validation errors for malformed parameters.
func Calculate(in Input, out Output) error {
	n := len(in.RecognizerLengths)
	if n == 0 {
		return ErrNoRecognizers
	}
	if err := checkOutput(out, n); err != nil {
		return err
	}
	recs, err := scanner.RecognizersFromFlat(in.RecognizerMatrices, in.RecognizerLengths)
	if errors.Is(err, scanner.ErrBadLengths) {
		return fmt.Errorf("%w: %w", ErrShapeMismatch, err)
	}
	if err != nil {
		return err
	}
	model, err := InferModel(in.ConnectorMatrices, n, in.MaxLength, in.Table)
	if err != nil {
		return err
	}

	res, err := placement.Place(in.Sequence, recs, model, in.Options)
	if err != nil {
		return err
	}

	copy(out.RecognizerScores, res.RecognizerScores)
	out.RecognizerScores[n] = res.Total
	copy(out.ConnectorScores, res.ConnectorScores)
	copy(out.ConnectorLengths, res.Gaps)
	if out.Positions != nil {
		copy(out.Positions, res.Positions(in.RecognizerLengths))
	}

	return nil
}

// InferModel builds the connector model of an n-recognizer chain from a
// flat buffer. A single recognizer needs an empty buffer and yields nil;
// any connector values for n == 1 are an ErrShapeMismatch.
//
// Errors:
//   - ErrShapeMismatch when the buffer fits neither layout.
//   - ErrBadMaxLength when the tabulated layout is implied and maxLength < 1.
func InferModel(conn []float64, n, maxLength int, table *combinatorics.Log2FactorialTable) (gapmodel.ConnectorModel, error) {
	connectors := n - 1
	if connectors == 0 {
		if len(conn) != 0 {
			return nil, fmt.Errorf("%w: single recognizer with %d connector values", ErrShapeMismatch, len(conn))
		}
		return nil, nil
	}
	if len(conn) == 2*connectors {
		analytic, err := gapmodel.NewAnalyticFromFlat(conn)
		if err != nil {
			return nil, err
		}
		return analytic, nil
	}
	if maxLength < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMaxLength, maxLength)
	}
	if len(conn) != connectors*maxLength {
		return nil, fmt.Errorf("%w: %d connector values, want %d (analytic) or %d (tabulated)",
			ErrShapeMismatch, len(conn), 2*connectors, connectors*maxLength)
	}
	probs, err := matrix.NewDenseFrom(connectors, maxLength, conn)
	if err != nil {
		return nil, err
	}

	tab, err := gapmodel.NewTabulated(probs, table)
	if err != nil {
		return nil, err
	}

	return tab, nil
}

// checkOutput verifies that every output buffer can hold an n-chain.
func checkOutput(out Output, n int) error {
	if len(out.RecognizerScores) < n+1 {
		return fmt.Errorf("%w: RecognizerScores has %d slots, need %d", ErrOutputSize, len(out.RecognizerScores), n+1)
	}
	if len(out.ConnectorScores) < n-1 {
		return fmt.Errorf("%w: ConnectorScores has %d slots, need %d", ErrOutputSize, len(out.ConnectorScores), n-1)
	}
	if len(out.ConnectorLengths) < n-1 {
		return fmt.Errorf("%w: ConnectorLengths has %d slots, need %d", ErrOutputSize, len(out.ConnectorLengths), n-1)
	}
	if out.Positions != nil && len(out.Positions) < n {
		return fmt.Errorf("%w: Positions has %d slots, need %d", ErrOutputSize, len(out.Positions), n)
	}

	return nil
}
