// SPDX-License-Identifier: MIT

package backend

import "gonum.org/v1/gonum/blas"

// Float64Kernels is the subset of blas.Float64 the adapter calls.
// gonum's Implementation and blas64.Implementation() satisfy it.
type Float64Kernels interface {
	Dgemv(tA blas.Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int)
	Dgemm(tA, tB blas.Transpose, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int)
	Dger(m, n int, alpha float64, x []float64, incX int, y []float64, incY int, a []float64, lda int)
}

// Float32Kernels is the subset of blas.Float32 the adapter calls.
type Float32Kernels interface {
	Sgemv(tA blas.Transpose, m, n int, alpha float32, a []float32, lda int, x []float32, incX int, beta float32, y []float32, incY int)
	Sgemm(tA, tB blas.Transpose, m, n, k int, alpha float32, a []float32, lda int, b []float32, ldb int, beta float32, c []float32, ldc int)
	Sger(m, n int, alpha float32, x []float32, incX int, y []float32, incY int, a []float32, lda int)
}

// Layout is the storage order a kernel implementation expects.
type Layout int

const (
	// RowMajor kernels (gonum) read element (i, j) at a[i*lda+j].
	RowMajor Layout = iota
	// ColMajor kernels (reference BLAS, Fortran order) read element (i, j)
	// at a[i+j*lda].
	ColMajor
)

// String returns "row-major" or "col-major".
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return "invalid"
	}
}

func (l Layout) valid() bool { return l == RowMajor || l == ColMajor }

func transpose(t bool) blas.Transpose {
	if t {
		return blas.Trans
	}
	return blas.NoTrans
}

func flip(t blas.Transpose) blas.Transpose {
	if t == blas.NoTrans {
		return blas.Trans
	}
	return blas.NoTrans
}
