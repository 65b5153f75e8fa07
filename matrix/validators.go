// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/shape checks here.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and O(1).
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).
//   - Shape violations in binary kernels surface as *DimensionError so the
//     caller sees both operand shapes.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// A typed nil (*Dense)(nil) stored in the interface is rejected as well.
// Returns ErrNilMatrix on violation.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Assumes a and b are not nil (caller must ensure).
// Return: nil or *DimensionError (matches ErrDimensionMismatch).
// Complexity: O(1).
func ValidateSameShape(op string, a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return newDimensionError(op, reasonSameDim, a, b.Rows(), b.Cols())
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, *DimensionError.
// Complexity: O(1).
func ValidateBinarySameShape(op string, a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return ValidateSameShape(op, a, b)
}

// ValidateMulCompatible checks NotNil(a) → NotNil(b) → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, *DimensionError.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return newDimensionError(opMul, reasonMul, a, b.Rows(), b.Cols())
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the column count of m.
// Time: O(1). Space: O(1).
func ValidateVecLen(m Matrix, x []float64) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != m.Cols() {
		return newDimensionError(opMatVec, reasonVecLen, m, len(x), 1)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}
