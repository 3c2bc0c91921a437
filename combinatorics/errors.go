package combinatorics

import "errors"

var (
	// ErrOutOfRange indicates that n lies beyond the rows of a Log2FactorialTable.
	ErrOutOfRange = errors.New("combinatorics: n outside table range")

	// ErrDomain indicates an undefined coefficient request (k < 0, n < 0 or k > n).
	ErrDomain = errors.New("combinatorics: binomial arguments outside domain")

	// ErrBadSize indicates a negative table size.
	ErrBadSize = errors.New("combinatorics: table size must be non-negative")
)
