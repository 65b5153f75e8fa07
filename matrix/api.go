// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import (
	"fmt"
	"math"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2).
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Numeric compare ----------

// Equal reports whether a and b have the same shape and every pair of
// elements satisfies |a-b| ≤ tol.
//
// Policy:
//   - tol is treated as |tol|; tol = 0 means exact equality.
//   - NaN is never equal to anything; +Inf equals +Inf, -Inf equals -Inf.
//   - Shape mismatch is not an error: it returns (false, nil).
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//
// Complexity: Time O(r*c), Space O(1).
func Equal(a, b Matrix, tol float64) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf("Equal", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf("Equal", err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}
	tol = math.Abs(tol)

	// Dense left operand: visit its flat buffer once.
	if da, ok := a.(*Dense); ok {
		equal := true
		var readErr error
		da.Do(func(i, j int, av float64) bool {
			bv, err := b.At(i, j)
			if err != nil {
				readErr = err
				return false
			}
			equal = closeTo(av, bv, tol)
			return equal
		})
		if readErr != nil {
			return false, matrixErrorf("Equal", readErr)
		}

		return equal, nil
	}

	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("Equal", fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("Equal", fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if !closeTo(av, bv, tol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeTo compares two scalars under an absolute tolerance.
func closeTo(a, b, tol float64) bool {
	if a == b { // covers equal infinities
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	return math.Abs(a-b) <= tol
}
