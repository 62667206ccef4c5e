// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Validation is performed in the engines; facades only compose or forward.

package matrix

import "github.com/katalvlaran/densela/num"

// ---------- Constructors (O(1) alloc + O(rc) zeroing by runtime) ----------

// Zeros returns a new zero-initialized rows×cols matrix.
// It is a thin alias of New with an intention-revealing name.
func Zeros[T num.Number](rows, cols int) (*Dense[T], error) { return New[T](rows, cols) }

// Ones returns a new rows×cols matrix of ones.
func Ones[T num.Number](rows, cols int) (*Dense[T], error) { return Fill(num.One[T](), rows, cols) }

// Identity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity[T num.Number](n int) (*Dense[T], error) {
	I, err := New[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = num.One[T]()
	}

	return I, nil
}

// ---------- Products (facades map 1:1 to engines) ----------

// Product is Mul without transposes: a × b.
// Complexity: O(r*n*c).
func Product[T num.Float](a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	return Mul(a, b, false, false, opts...)
}

// Gram returns mᵀ·m (cols×cols), computed in one GEMM call on m's buffer.
func Gram[T num.Float](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return Mul(m, m, true, false, opts...)
}

// Outer is an alias for ColMulRow: x·yᵀ.
func Outer[T num.Number](x, y []T, opts ...Option) (*Dense[T], error) {
	return ColMulRow(x, y, opts...)
}

// MatVec is an alias for MulVec: y = m·x.
//
// AI-Hints: For repeated products against the same y, call Gemv with beta.
func MatVec[T num.Float](m *Dense[T], x []T, opts ...Option) ([]T, error) {
	return MulVec(m, x, opts...)
}
