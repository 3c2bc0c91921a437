package scanner

import "errors"

var (
	// ErrInfeasible indicates that the sequence is too short to place every
	// recognizer (no admissible alignment column).
	ErrInfeasible = errors.New("scanner: infeasible placement, sequence shorter than recognizer chain")

	// ErrNoRecognizers indicates an empty recognizer chain.
	ErrNoRecognizers = errors.New("scanner: at least one recognizer is required")

	// ErrBadPSSM indicates a PSSM that is nil or does not have exactly four base columns.
	ErrBadPSSM = errors.New("scanner: PSSM must be a non-empty cols×4 matrix")

	// ErrBadLengths indicates recognizer lengths that do not partition the flat PSSM buffer.
	ErrBadLengths = errors.New("scanner: recognizer lengths do not match PSSM buffer")
)
