// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels wrapped with an operation tag
// (see matrixErrorf) and tests MUST check them via errors.Is. No operation
// panics on a user-triggered shape or length violation.
// Panics are reserved for programmer errors in option constructors and for
// native integer division by zero (DivScalar / IDivScalar with s == 0).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Facades wrap with matrixErrorf(tag, ErrX), so
// the rendered form is "<Op>: <context>: matrix: ...".
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape -> dimension mismatch -> backend failure.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// rows or cols) or a flat buffer does not hold exactly rows*cols values.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes, MulVec with len(v) != cols, or Mul
	// where the effective inner dimensions differ.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was
	// passed to an error-returning operation. Methods without an error result
	// (scalar ops, Clone, Transpose, elementwise lifts) require a non-nil
	// receiver.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf tolerance passed to AllClose.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
