// SPDX-License-Identifier: MIT

// Package matrix provides a dense, row-major float64 matrix and the core
// linear-algebra kernels used by the kinematics builders.
//
// What:
//
//   - Dense: fixed-shape matrix, zero-filled at construction, bounds-checked
//     At/Set, deep Clone.
//   - Kernels: Add, Sub, Mul, Transpose, Scale/ScalarMul, Negate, MatVec.
//     Every kernel allocates a fresh *Dense; operands are never mutated and
//     results never share storage with their inputs.
//   - Facades: NewZeros, NewIdentity, NewDenseFrom, Equal.
//   - Text: Dense.String renders each element as %6.3f, space separated, one
//     row per "\r\n"-terminated line; ParseDense reads that dump back.
//
// Errors:
//
//   - Shape mismatches return *DimensionError, which matches
//     ErrDimensionMismatch through errors.Is.
//   - Invalid shapes return ErrInvalidDimensions; bad indices ErrOutOfRange.
//
// Determinism:
//
//   - Fixed loop orders. Mul accumulates each output cell over k in
//     ascending order, so results are bit-for-bit reproducible.
//   - NaN and ±Inf propagate through arithmetic unchanged.
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
//	i2, _ := matrix.NewIdentity(2)
//	p, _ := matrix.Mul(a, i2) // p equals a
package matrix
