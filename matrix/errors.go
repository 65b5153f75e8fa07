// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines the package-level sentinel errors used across the matrix
// package plus the single structured error (DimensionError) carried by the
// binary kernels. Tests MUST check sentinels via errors.Is. No kernel panics
// on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with an operation tag through
// matrixErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape/index -> dimension mismatch -> parse.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// (or, for NewDenseFrom/ParseDense, that the rows are empty or ragged).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrParse indicates that a textual matrix dump could not be read back.
	ErrParse = errors.New("matrix: cannot parse text")
)

// Human-readable reasons attached to DimensionError, one per binary kernel family.
const (
	reasonMul     = "matrices cannot be multiplied because of their dimensions"
	reasonSameDim = "matrices must have the same dimensions"
	reasonVecLen  = "vector length must match the number of columns"
)

// DimensionError reports the shapes of two operands that cannot be combined.
// It matches ErrDimensionMismatch via errors.Is, so callers that only care
// about the failure class never need errors.As.
//
// Fields:
//   - Op: kernel tag (Add, Sub, Mul, MatVec).
//   - ARows, ACols: shape of the left operand.
//   - BRows, BCols: shape of the right operand (BCols is 1 for vectors).
type DimensionError struct {
	Op           string
	ARows, ACols int
	BRows, BCols int
	reason       string
}

// newDimensionError captures both shapes at the detection site.
func newDimensionError(op, reason string, a Matrix, bRows, bCols int) *DimensionError {
	return &DimensionError{
		Op:     op,
		ARows:  a.Rows(),
		ACols:  a.Cols(),
		BRows:  bRows,
		BCols:  bCols,
		reason: reason,
	}
}

// Error renders "matrix: <reason> (<op>: RxC vs RxC)".
func (e *DimensionError) Error() string {
	return fmt.Sprintf("matrix: %s (%s: %dx%d vs %dx%d)",
		e.reason, e.Op, e.ARows, e.ACols, e.BRows, e.BCols)
}

// Reason returns the bare explanation without shapes.
func (e *DimensionError) Reason() string { return e.reason }

// Unwrap exposes ErrDimensionMismatch to errors.Is.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }
