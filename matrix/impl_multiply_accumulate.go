// SPDX-License-Identifier: MIT
// Package matrix - scaled multiply-accumulate engine.
//
// Purpose:
//   - Gemv: y' = alpha·op(M)·x + beta·y, the general contract every
//     matrix-vector product in this package reduces to.
//   - MulVec / TranspMulVec: alpha=1, beta=0 specializations.
//   - MulVecMinusVec: alpha=1, beta=-1 (M·x - y).
//   - MulScalarVec: beta=0 against an implicit zero accumulator.
//
// Dimension contract (checked before the primitive is reached):
//   - trans == false: len(x) == cols and len(y) == rows.
//   - trans == true:  len(x) == rows and len(y) == cols.
//
// Notes:
//   - The row-major → kernel layout translation lives in package backend;
//     this engine always hands over the row-major buffer as is.

package matrix

import (
	"github.com/katalvlaran/densela/backend"
	"github.com/katalvlaran/densela/num"
)

// opDims returns the (input, output) lengths of op(m)·x.
func opDims[T num.Number](m *Dense[T], trans bool) (in, out int) {
	if trans {
		return m.r, m.c
	}

	return m.c, m.r
}

// gemvInto runs the primitive on y in place after the length checks.
func gemvInto[T num.Float](tag string, m *Dense[T], trans bool, alpha T, x []T, beta T, y []T, opts []Option) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(tag, err)
	}
	in, out := opDims(m, trans)
	if err := ValidateVecLen("x", len(x), in); err != nil {
		return matrixErrorf(tag, err)
	}
	if err := ValidateVecLen("y", len(y), out); err != nil {
		return matrixErrorf(tag, err)
	}

	o := gatherOptions(opts...)
	if err := backend.Gemv(o.backend, trans, m.r, m.c, alpha, m.data, m.ld(), x, beta, y); err != nil {
		return matrixErrorf(tag, err)
	}

	return nil
}

// Gemv computes alpha·op(m)·x + beta·y and returns it as a new vector.
// op is the identity, or the transpose when trans is set. y is not modified.
//
// Implementation:
//   - Stage 1: Validate m non-nil and the lengths of x and y against op(m).
//   - Stage 2: Copy y into the result, then backend.Gemv in place on it.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, backend errors.
//
// Complexity:
//   - Time O(r*c), Space O(len(y)).
//
// Example:
//
//	m = [[1,2,3],[4,2,5]], Gemv(m, false, 2, [2,6,3], -3, [7,2]) = [25,64]
func Gemv[T num.Float](m *Dense[T], trans bool, alpha T, x []T, beta T, y []T, opts ...Option) ([]T, error) {
	out := make([]T, len(y))
	copy(out, y)
	if err := gemvInto(opGemv, m, trans, alpha, x, beta, out, opts); err != nil {
		return nil, err
	}

	return out, nil
}

// MulVec computes m·v. Requires len(v) == cols; the result has rows elements.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, backend errors.
func MulVec[T num.Float](m *Dense[T], v []T, opts ...Option) ([]T, error) {
	if m == nil {
		return nil, matrixErrorf(opMulVec, ValidateNotNil(m))
	}
	out := make([]T, m.r)
	if err := gemvInto(opMulVec, m, false, 1, v, 0, out, opts); err != nil {
		return nil, err
	}

	return out, nil
}

// TranspMulVec computes mᵀ·v. Requires len(v) == rows; the result has cols
// elements.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, backend errors.
func TranspMulVec[T num.Float](m *Dense[T], v []T, opts ...Option) ([]T, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspMulVec, ValidateNotNil(m))
	}
	out := make([]T, m.c)
	if err := gemvInto(opTranspMulVec, m, true, 1, v, 0, out, opts); err != nil {
		return nil, err
	}

	return out, nil
}

// MulVecMinusVec computes m·x - y. Same contract as Gemv without transpose.
func MulVecMinusVec[T num.Float](m *Dense[T], x, y []T, opts ...Option) ([]T, error) {
	out := make([]T, len(y))
	copy(out, y)
	if err := gemvInto(opMulVecMinusVec, m, false, 1, x, -1, out, opts); err != nil {
		return nil, err
	}

	return out, nil
}

// MulScalarVec computes alpha·op(m)·x into a fresh zero vector of rows
// elements (cols when trans is set).
func MulScalarVec[T num.Float](m *Dense[T], trans bool, alpha T, x []T, opts ...Option) ([]T, error) {
	if m == nil {
		return nil, matrixErrorf(opMulScalarVec, ValidateNotNil(m))
	}
	_, n := opDims(m, trans)
	out := make([]T, n)
	if err := gemvInto(opMulScalarVec, m, trans, alpha, x, 0, out, opts); err != nil {
		return nil, err
	}

	return out, nil
}
