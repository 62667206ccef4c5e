// SPDX-License-Identifier: MIT
// Package matrix - matrix-matrix engine.
//
// Purpose:
//   - Elementwise Add/Sub/Hadamard over identical shapes, implemented as
//     clone + in-place kernel over the flat buffer (both operands share the
//     same row-major layout, so the buffer is one flat vector).
//   - General product Mul with independent transpose flags on both operands,
//     delegated to the GEMM primitive of the selected backend.
//   - Outer product ColMulRow, delegated to GER for float kinds.
//   - Transpose.
//
// Notes:
//   - All validation happens here, before any primitive is reached.
//   - Facades wrap failures via matrixErrorf with the op* tags below.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/densela/backend"
	"github.com/katalvlaran/densela/num"
	"github.com/katalvlaran/densela/vec"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd            = "Add"
	opSub            = "Sub"
	opIAdd           = "IAdd"
	opISub           = "ISub"
	opIMul           = "IMul"
	opHadamard       = "Hadamard"
	opMul            = "Mul"
	opColMulRow      = "ColMulRow"
	opAddRow         = "AddRow"
	opSubRow         = "SubRow"
	opIAddRow        = "IAddRow"
	opISubRow        = "ISubRow"
	opMulVec         = "MulVec"
	opTranspMulVec   = "TranspMulVec"
	opGemv           = "Gemv"
	opMulVecMinusVec = "MulVecMinusVec"
	opMulScalarVec   = "MulScalarVec"
	opAllClose       = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ld returns the row stride handed to the primitives. Empty rows still
// report a stride of 1, which is what BLAS argument checks demand.
func (m *Dense[T]) ld() int { return max(1, m.c) }

// Add returns m + rhs elementwise as a new matrix; m and rhs are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(m, rhs).
//   - Stage 2: Clone m, then IAdd over the flat buffer.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Add(rhs *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(m, rhs); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := m.Clone()
	vec.IAdd(out.data, rhs.data)

	return out, nil
}

// Sub returns m - rhs elementwise as a new matrix; m and rhs are not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Sub(rhs *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(m, rhs); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	out := m.Clone()
	vec.ISub(out.data, rhs.data)

	return out, nil
}

// Hadamard returns the elementwise product m ⊙ rhs as a new matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
func (m *Dense[T]) Hadamard(rhs *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(m, rhs); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	out := m.Clone()
	vec.IMul(out.data, rhs.data)

	return out, nil
}

// IAdd adds rhs into m in place. On error m is left untouched.
func (m *Dense[T]) IAdd(rhs *Dense[T]) error {
	if err := ValidateBinarySameShape(m, rhs); err != nil {
		return matrixErrorf(opIAdd, err)
	}
	vec.IAdd(m.data, rhs.data)

	return nil
}

// ISub subtracts rhs from m in place. On error m is left untouched.
func (m *Dense[T]) ISub(rhs *Dense[T]) error {
	if err := ValidateBinarySameShape(m, rhs); err != nil {
		return matrixErrorf(opISub, err)
	}
	vec.ISub(m.data, rhs.data)

	return nil
}

// IMul multiplies m by rhs elementwise in place (Hadamard, not a matrix
// product). On error m is left untouched.
func (m *Dense[T]) IMul(rhs *Dense[T]) error {
	if err := ValidateBinarySameShape(m, rhs); err != nil {
		return matrixErrorf(opIMul, err)
	}
	vec.IMul(m.data, rhs.data)

	return nil
}

// Transpose returns mᵀ as a new c×r matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Transpose() *Dense[T] {
	out := newLike[T](m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// Mul computes op(lhs)·op(rhs) where op is the identity or the transpose as
// selected by lhsT and rhsT.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible resolves m×k · k×n or fails.
//   - Stage 2: Allocate a zero-filled m×n result.
//   - Stage 3: backend.Gemm with alpha=1, beta=0 on the row-major buffers.
//
// Behavior highlights:
//   - Result shape is (lhsT ? lhs.cols : lhs.rows) × (rhsT ? rhs.rows : rhs.cols).
//   - An empty inner dimension yields the zero matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner dimensions differ),
//     backend errors (e.g. backend.ErrUnsupportedKind for named float types).
//
// Complexity:
//   - Time O(m*n*k) in the primitive, Space O(m*n).
func Mul[T num.Float](lhs, rhs *Dense[T], lhsT, rhsT bool, opts ...Option) (*Dense[T], error) {
	m, n, k, err := ValidateMulCompatible(lhs, rhs, lhsT, rhsT)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	o := gatherOptions(opts...)
	out := newLike[T](m, n)
	err = backend.Gemm(o.backend, lhsT, rhsT, m, n, k,
		1, lhs.data, lhs.ld(),
		rhs.data, rhs.ld(),
		0, out.data, out.ld())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return out, nil
}

// ColMulRow computes the outer product col·rowᵀ: a len(col)×len(row) matrix
// whose (i, j) entry is col[i]*row[j].
//
// float32 and float64 run a rank-one update (GER) on a zero matrix; every
// other kind uses a direct loop.
//
// Errors:
//   - backend errors from the GER primitive (float kinds only).
func ColMulRow[T num.Number](col, row []T, opts ...Option) (*Dense[T], error) {
	out := newLike[T](len(col), len(row))

	var err error
	switch c := any(col).(type) {
	case []float64:
		o := gatherOptions(opts...)
		err = backend.Ger(o.backend, out.r, out.c, 1, c, any(row).([]float64), any(out.data).([]float64), out.ld())
	case []float32:
		o := gatherOptions(opts...)
		err = backend.Ger(o.backend, out.r, out.c, 1, c, any(row).([]float32), any(out.data).([]float32), out.ld())
	default:
		for i, ci := range col {
			r := out.row(i)
			copy(r, row)
			vec.IMulScalar(r, ci)
		}
	}
	if err != nil {
		return nil, matrixErrorf(opColMulRow, err)
	}

	return out, nil
}
