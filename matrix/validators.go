// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for shape and nil checks shared by
//     the scanner, the DP sweep and the traceback.
//   - Return sentinel errors wrapped with the validator tag so call sites
//     can match them with errors.Is.
//
// All checks are O(1) and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps err with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is neither a nil interface nor a typed nil *Dense.
//
// Errors: ErrNilMatrix.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures m is non-nil with exactly rows × cols cells.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateShape(m Matrix, rows, cols int) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateShape", err)
	}
	if m.Rows() != rows || m.Cols() != cols {
		return validatorErrorf(fmt.Sprintf("ValidateShape: have %dx%d, want %dx%d", m.Rows(), m.Cols(), rows, cols), ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures x has exactly n elements.
//
// Errors: ErrNilMatrix for a nil slice, ErrDimensionMismatch otherwise.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
