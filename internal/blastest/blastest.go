// SPDX-License-Identifier: MIT

// Package blastest holds a naive Fortran-order (column-major) BLAS subset.
// Tests install it as a backend kernel set to check that products do not
// depend on the kernel layout. It favours obviousness over speed.
package blastest

import "gonum.org/v1/gonum/blas"

// ColMajor implements Dgemv, Dgemm, Dger and their float32 twins over
// column-major storage: element (i, j) of an operand with leading
// dimension ld lives at a[i+j*ld]. Increments must be 1.
type ColMajor struct{}

func (ColMajor) Dgemv(tA blas.Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, _ int, beta float64, y []float64, _ int) {
	gemv(tA, m, n, alpha, a, lda, x, beta, y)
}

func (ColMajor) Sgemv(tA blas.Transpose, m, n int, alpha float32, a []float32, lda int, x []float32, _ int, beta float32, y []float32, _ int) {
	gemv(tA, m, n, alpha, a, lda, x, beta, y)
}

func (ColMajor) Dgemm(tA, tB blas.Transpose, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	gemm(tA, tB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (ColMajor) Sgemm(tA, tB blas.Transpose, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int) {
	gemm(tA, tB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
}

func (ColMajor) Dger(m, n int, alpha float64, x []float64, _ int, y []float64, _ int, a []float64, lda int) {
	ger(m, n, alpha, x, y, a, lda)
}

func (ColMajor) Sger(m, n int, alpha float32, x []float32, _ int, y []float32, _ int, a []float32, lda int) {
	ger(m, n, alpha, x, y, a, lda)
}

// gemv: y = alpha*op(A)*x + beta*y with A m×n.
func gemv[T float32 | float64](tA blas.Transpose, m, n int, alpha T, a []T, lda int, x []T, beta T, y []T) {
	at := func(i, j int) T { return a[i+j*lda] }
	if tA == blas.NoTrans {
		for i := 0; i < m; i++ {
			var s T
			for j := 0; j < n; j++ {
				s += at(i, j) * x[j]
			}
			y[i] = alpha*s + beta*y[i]
		}
		return
	}
	for j := 0; j < n; j++ {
		var s T
		for i := 0; i < m; i++ {
			s += at(i, j) * x[i]
		}
		y[j] = alpha*s + beta*y[j]
	}
}

// gemm: C = alpha*op(A)*op(B) + beta*C with C m×n and inner dimension k.
func gemm[T float32 | float64](tA, tB blas.Transpose, m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
	opA := func(i, l int) T {
		if tA == blas.NoTrans {
			return a[i+l*lda]
		}
		return a[l+i*lda]
	}
	opB := func(l, j int) T {
		if tB == blas.NoTrans {
			return b[l+j*ldb]
		}
		return b[j+l*ldb]
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var s T
			for l := 0; l < k; l++ {
				s += opA(i, l) * opB(l, j)
			}
			c[i+j*ldc] = alpha*s + beta*c[i+j*ldc]
		}
	}
}

// ger: A += alpha*x*yᵀ with A m×n.
func ger[T float32 | float64](m, n int, alpha T, x, y []T, a []T, lda int) {
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			a[i+j*lda] += alpha * x[i] * y[j]
		}
	}
}
