// SPDX-License-Identifier: MIT

package backend

import (
	"gonum.org/v1/gonum/blas"

	"github.com/katalvlaran/densela/num"
)

// Gemv computes y = alpha*op(A)*x + beta*y in place on y.
//
// A is row-major m×n with row stride lda; op(A) is A, or Aᵀ when trans is
// set. Without trans len(x) must be n and len(y) must be m; with trans
// len(x) must be m and len(y) must be n. A nil b uses Default().
//
// When the inner dimension is zero the product term vanishes and y is only
// scaled by beta.
func Gemv[T num.Float](b *Backend, trans bool, m, n int, alpha T, a []T, lda int, x []T, beta T, y []T) (err error) {
	if err = checkMatrix("A", m, n, lda, len(a)); err != nil {
		return backendErrorf(opGemv, err)
	}
	xl, yl := n, m
	if trans {
		xl, yl = m, n
	}
	if err = checkVector("x", len(x), xl); err != nil {
		return backendErrorf(opGemv, err)
	}
	if err = checkVector("y", len(y), yl); err != nil {
		return backendErrorf(opGemv, err)
	}

	b = b.or()
	b.log.Trace().Str("op", opGemv).Bool("trans", trans).Int("m", m).Int("n", n).
		Stringer("layout", b.layout).Msg("dispatch")

	defer guard(opGemv, &err)

	var zero T
	switch any(zero).(type) {
	case float64:
		y64 := any(y).([]float64)
		if xl == 0 {
			scale(y64, any(beta).(float64))
			return nil
		}
		b.dgemv(transpose(trans), m, n, any(alpha).(float64), any(a).([]float64), lda,
			any(x).([]float64), any(beta).(float64), y64)
	case float32:
		y32 := any(y).([]float32)
		if xl == 0 {
			scale(y32, any(beta).(float32))
			return nil
		}
		b.sgemv(transpose(trans), m, n, any(alpha).(float32), any(a).([]float32), lda,
			any(x).([]float32), any(beta).(float32), y32)
	default:
		return backendErrorf(opGemv, ErrUnsupportedKind)
	}
	return nil
}

// dgemv feeds the row-major operand to the kernel in its native layout.
// A column-major kernel sees the buffer as the n×m matrix Aᵀ, so the
// dimensions swap and the transpose flag flips.
func (b *Backend) dgemv(tA blas.Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, beta float64, y []float64) {
	if b.layout == ColMajor {
		b.f64.Dgemv(flip(tA), n, m, alpha, a, lda, x, 1, beta, y, 1)
		return
	}
	b.f64.Dgemv(tA, m, n, alpha, a, lda, x, 1, beta, y, 1)
}

func (b *Backend) sgemv(tA blas.Transpose, m, n int, alpha float32, a []float32, lda int, x []float32, beta float32, y []float32) {
	if b.layout == ColMajor {
		b.f32.Sgemv(flip(tA), n, m, alpha, a, lda, x, 1, beta, y, 1)
		return
	}
	b.f32.Sgemv(tA, m, n, alpha, a, lda, x, 1, beta, y, 1)
}
