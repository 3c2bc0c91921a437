package gapmodel

import "errors"

var (
	// ErrConnectorIndex indicates a connector index outside [0, Connectors()).
	ErrConnectorIndex = errors.New("gapmodel: connector index out of range")

	// ErrConnectorCount indicates that a model does not describe exactly N−1 connectors.
	ErrConnectorCount = errors.New("gapmodel: connector count does not match recognizer chain")

	// ErrBadGaussian indicates a non-finite mean or standard deviation.
	ErrBadGaussian = errors.New("gapmodel: gaussian parameters must be finite")

	// ErrBadProbability indicates a negative or non-finite tabulated probability.
	ErrBadProbability = errors.New("gapmodel: tabulated probabilities must be finite and non-negative")

	// ErrNilScores indicates a Tabulated model built without a score table.
	ErrNilScores = errors.New("gapmodel: tabulated score table is nil")

	// ErrTableTooSmall indicates that the injected log2-factorial table does
	// not cover the effective length of the sequence.
	ErrTableTooSmall = errors.New("gapmodel: log2-factorial table smaller than effective length")

	// ErrBadGeometry indicates an inconsistent Geometry (negative lengths, no recognizers).
	ErrBadGeometry = errors.New("gapmodel: invalid geometry")
)
