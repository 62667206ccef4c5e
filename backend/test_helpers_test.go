// SPDX-License-Identifier: MIT

package backend_test

import (
	"gonum.org/v1/gonum/blas"

	"github.com/katalvlaran/densela/internal/blastest"
)

// naiveGemm is the row-major reference product op(A)·op(B) for dense,
// unpadded operands.
func naiveGemm(transA, transB bool, m, n, k int, a, b []float64) []float64 {
	opA := func(i, l int) float64 {
		if transA {
			return a[l*m+i]
		}
		return a[i*k+l]
	}
	opB := func(l, j int) float64 {
		if transB {
			return b[j*k+l]
		}
		return b[l*n+j]
	}
	c := make([]float64, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var s float64
			for l := 0; l < k; l++ {
				s += opA(i, l) * opB(l, j)
			}
			c[i*n+j] = s
		}
	}
	return c
}

// panicKernels panics on every call; used to check panic conversion.
type panicKernels struct{ blastest.ColMajor }

func (panicKernels) Dgemv(blas.Transpose, int, int, float64, []float64, int, []float64, int, float64, []float64, int) {
	panic("boom")
}

func (panicKernels) Dgemm(blas.Transpose, blas.Transpose, int, int, int, float64, []float64, int, []float64, int, float64, []float64, int) {
	panic("boom")
}

func (panicKernels) Dger(int, int, float64, []float64, int, []float64, int, []float64, int) {
	panic("boom")
}

// seq returns [start, start+1, ...] scaled by step, a deterministic fixture.
func seq(n int, start, step float64) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = start + float64(i)*step
	}
	return v
}
