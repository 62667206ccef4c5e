// SPDX-License-Identifier: MIT

package blastest_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas"

	"github.com/katalvlaran/densela/internal/blastest"
)

// a is [[1,2,3],[4,2,5]] stored column by column.
var a = []float64{1, 4, 2, 2, 3, 5}

func TestColMajor_Gemv(t *testing.T) {
	t.Parallel()

	y := []float64{7, 2}
	blastest.ColMajor{}.Dgemv(blas.NoTrans, 2, 3, 2, a, 2, []float64{2, 6, 3}, 1, -3, y, 1)
	require.Equal(t, []float64{25, 64}, y)

	yt := []float64{1, -4, 9}
	blastest.ColMajor{}.Dgemv(blas.Trans, 2, 3, 2, a, 2, []float64{8, 3}, 1, -3, yt, 1)
	require.Equal(t, []float64{37, 56, 51}, yt)
}

func TestColMajor_Gemm(t *testing.T) {
	t.Parallel()

	// [[3,1],[2,3],[1,2]] column by column
	b := []float64{3, 2, 1, 1, 3, 2}
	c := make([]float32, 4)
	blastest.ColMajor{}.Sgemm(blas.NoTrans, blas.NoTrans, 2, 2, 3, 1,
		toF32(a), 2, toF32(b), 3, 0, c, 2)
	require.Equal(t, []float32{10, 21, 13, 20}, c)
}

func TestColMajor_Ger(t *testing.T) {
	t.Parallel()

	m := make([]float64, 6)
	blastest.ColMajor{}.Dger(3, 2, 1, []float64{2, 3, 4}, 1, []float64{5, 8}, 1, m, 3)
	require.Equal(t, []float64{10, 15, 20, 16, 24, 32}, m)
}

func toF32(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return out
}
