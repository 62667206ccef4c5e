// SPDX-License-Identifier: MIT

package backend_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/backend"
)

func TestGemm_Values(t *testing.T) {
	t.Parallel()

	a := []float64{
		1, 2, 3,
		4, 2, 5,
	}
	bm := []float64{
		3, 1,
		2, 3,
		1, 2,
	}
	for name, b := range layouts() {
		t.Run(name, func(t *testing.T) {
			c := make([]float64, 4)
			require.NoError(t, backend.Gemm(b, false, false, 2, 2, 3, 1.0, a, 3, bm, 2, 0.0, c, 2))
			require.Equal(t, []float64{10, 13, 21, 20}, c)

			// alpha/beta accumulate into the existing C.
			c = []float64{1, 1, 1, 1}
			require.NoError(t, backend.Gemm(b, false, false, 2, 2, 3, 2.0, a, 3, bm, 2, -1.0, c, 2))
			require.Equal(t, []float64{19, 25, 41, 39}, c)
		})
	}
}

func TestGemm_TransposeCombinations(t *testing.T) {
	t.Parallel()

	const m, n, k = 3, 4, 5
	for _, transA := range []bool{false, true} {
		for _, transB := range []bool{false, true} {
			a := seq(m*k, -2, 0.5)
			bm := seq(k*n, 1, -0.25)
			want := naiveGemm(transA, transB, m, n, k, a, bm)

			lda, ldb := k, n
			if transA {
				lda = m
			}
			if transB {
				ldb = k
			}
			for name, b := range layouts() {
				t.Run(fmt.Sprintf("%s/tA=%v/tB=%v", name, transA, transB), func(t *testing.T) {
					c := make([]float64, m*n)
					require.NoError(t, backend.Gemm(b, transA, transB, m, n, k, 1.0, a, lda, bm, ldb, 0.0, c, n))
					require.InDeltaSlice(t, want, c, 1e-12)
				})
			}
		}
	}
}

func TestGemm_RowAndColumnLayoutsAgree(t *testing.T) {
	t.Parallel()

	const m, n, k = 7, 5, 6
	a := seq(m*k, 0.1, 0.3)
	bm := seq(k*n, -1, 0.2)
	row, col := layouts()["gonum/row-major"], layouts()["reference/col-major"]

	c1 := seq(m*n, 1, 1)
	c2 := seq(m*n, 1, 1)
	require.NoError(t, backend.Gemm(row, false, false, m, n, k, 0.5, a, k, bm, n, 2.0, c1, n))
	require.NoError(t, backend.Gemm(col, false, false, m, n, k, 0.5, a, k, bm, n, 2.0, c2, n))
	require.InDeltaSlice(t, c1, c2, 1e-12)
}

func TestGemm_Float32(t *testing.T) {
	t.Parallel()

	a := []float32{1, 2, 3, 4, 2, 5}
	bm := []float32{3, 1, 2, 3, 1, 2}
	for name, b := range layouts() {
		t.Run(name, func(t *testing.T) {
			c := make([]float32, 4)
			require.NoError(t, backend.Gemm(b, false, false, 2, 2, 3, float32(1), a, 3, bm, 2, float32(0), c, 2))
			require.Equal(t, []float32{10, 13, 21, 20}, c)

			// Aᵀ·A is 3×3.
			c = make([]float32, 9)
			require.NoError(t, backend.Gemm(b, true, false, 3, 3, 2, float32(1), a, 3, a, 3, float32(0), c, 3))
			require.Equal(t, []float32{17, 10, 23, 10, 8, 16, 23, 16, 34}, c)
		})
	}
}

func TestGemm_EmptyInnerDimensionScalesC(t *testing.T) {
	t.Parallel()

	for name, b := range layouts() {
		t.Run(name, func(t *testing.T) {
			c := []float64{1, 2, 3, 4}
			require.NoError(t, backend.Gemm(b, false, false, 2, 2, 0, 1.0, nil, 1, nil, 2, 0.5, c, 2))
			require.Equal(t, []float64{0.5, 1, 1.5, 2}, c)

			require.NoError(t, backend.Gemm(b, false, false, 0, 2, 3, 1.0, nil, 3, make([]float64, 6), 2, 0.0, nil, 2))
		})
	}
}

func TestGemm_Errors(t *testing.T) {
	t.Parallel()

	a := make([]float64, 6)  // 2×3
	bm := make([]float64, 6) // 3×2
	c := make([]float64, 4)  // 2×2

	cases := []struct {
		name string
		run  func() error
	}{
		{"negative k", func() error {
			return backend.Gemm(nil, false, false, 2, 2, -1, 1.0, a, 3, bm, 2, 0.0, c, 2)
		}},
		{"inner dimension too large for B", func() error {
			return backend.Gemm(nil, false, false, 2, 2, 4, 1.0, a, 4, bm, 2, 0.0, c, 2)
		}},
		{"lda too small", func() error {
			return backend.Gemm(nil, false, false, 2, 2, 3, 1.0, a, 2, bm, 2, 0.0, c, 2)
		}},
		{"transposed A has wrong stride", func() error {
			return backend.Gemm(nil, true, false, 2, 2, 3, 1.0, a, 1, bm, 2, 0.0, c, 2)
		}},
		{"C too small", func() error {
			return backend.Gemm(nil, false, false, 2, 2, 3, 1.0, a, 3, bm, 2, 0.0, c[:3], 2)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			require.ErrorIs(t, err, backend.ErrBadShape)
			require.Contains(t, err.Error(), "Gemm")
		})
	}
}
