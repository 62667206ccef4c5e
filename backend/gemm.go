// SPDX-License-Identifier: MIT

package backend

import (
	"gonum.org/v1/gonum/blas"

	"github.com/katalvlaran/densela/num"
)

// Gemm computes C = alpha*op(A)*op(B) + beta*C in place on C.
//
// op(A) is m×k and op(B) is k×n. A is stored row-major as m×k (k×m when
// transA) with row stride lda, B as k×n (n×k when transB) with stride ldb,
// and C as m×n with stride ldc. A nil b uses Default().
//
// When k is zero the product term vanishes and C is only scaled by beta.
func Gemm[T num.Float](b *Backend, transA, transB bool, m, n, k int, alpha T, a []T, lda int, bm []T, ldb int, beta T, c []T, ldc int) (err error) {
	if m < 0 || n < 0 || k < 0 {
		return backendErrorf(opGemm, ErrBadShape)
	}
	ar, ac := m, k
	if transA {
		ar, ac = k, m
	}
	br, bc := k, n
	if transB {
		br, bc = n, k
	}
	if err = checkMatrix("A", ar, ac, lda, len(a)); err != nil {
		return backendErrorf(opGemm, err)
	}
	if err = checkMatrix("B", br, bc, ldb, len(bm)); err != nil {
		return backendErrorf(opGemm, err)
	}
	if err = checkMatrix("C", m, n, ldc, len(c)); err != nil {
		return backendErrorf(opGemm, err)
	}

	b = b.or()
	b.log.Trace().Str("op", opGemm).Bool("transA", transA).Bool("transB", transB).
		Int("m", m).Int("n", n).Int("k", k).Stringer("layout", b.layout).Msg("dispatch")

	if m == 0 || n == 0 {
		return nil
	}

	defer guard(opGemm, &err)

	var zero T
	switch any(zero).(type) {
	case float64:
		c64 := any(c).([]float64)
		if k == 0 {
			scaleRows(c64, m, n, ldc, any(beta).(float64))
			return nil
		}
		b.dgemm(transpose(transA), transpose(transB), m, n, k, any(alpha).(float64),
			any(a).([]float64), lda, any(bm).([]float64), ldb, any(beta).(float64), c64, ldc)
	case float32:
		c32 := any(c).([]float32)
		if k == 0 {
			scaleRows(c32, m, n, ldc, any(beta).(float32))
			return nil
		}
		b.sgemm(transpose(transA), transpose(transB), m, n, k, any(alpha).(float32),
			any(a).([]float32), lda, any(bm).([]float32), ldb, any(beta).(float32), c32, ldc)
	default:
		return backendErrorf(opGemm, ErrUnsupportedKind)
	}
	return nil
}

// dgemm feeds row-major operands to the kernel in its native layout.
// A column-major kernel sees every row-major buffer as its transpose, so it
// is asked for Cᵀ = op(B)ᵀ·op(A)ᵀ: operands and m/n swap, flags stay.
func (b *Backend) dgemm(tA, tB blas.Transpose, m, n, k int, alpha float64, a []float64, lda int, bm []float64, ldb int, beta float64, c []float64, ldc int) {
	if b.layout == ColMajor {
		b.f64.Dgemm(tB, tA, n, m, k, alpha, bm, ldb, a, lda, beta, c, ldc)
		return
	}
	b.f64.Dgemm(tA, tB, m, n, k, alpha, a, lda, bm, ldb, beta, c, ldc)
}

func (b *Backend) sgemm(tA, tB blas.Transpose, m, n, k int, alpha float32, a []float32, lda int, bm []float32, ldb int, beta float32, c []float32, ldc int) {
	if b.layout == ColMajor {
		b.f32.Sgemm(tB, tA, n, m, k, alpha, bm, ldb, a, lda, beta, c, ldc)
		return
	}
	b.f32.Sgemm(tA, tB, m, n, k, alpha, a, lda, bm, ldb, beta, c, ldc)
}
