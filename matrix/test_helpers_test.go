// SPDX-License-Identifier: MIT
// Package matrix_test - shared helpers for matrix tests.
//
// Purpose:
//   - Cut boilerplate: build fixtures from literals, read cells, compare with tolerance.
//   - Provide the column-major reference backend used to check that products
//     do not depend on the kernel layout.
//
// Determinism:
//   - No randomness except RandomFill, which is seeded.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas/gonum"

	"github.com/katalvlaran/densela/backend"
	"github.com/katalvlaran/densela/internal/blastest"
	"github.com/katalvlaran/densela/matrix"
	"github.com/katalvlaran/densela/num"
)

// testTol is the absolute tolerance for float comparisons in this package.
const testTol = 1e-9

// MustRows builds a matrix from a [][]T literal or fails the test.
func MustRows[T num.Number](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// MustDense allocates a zero r×c float64 matrix or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense[float64] {
	tb.Helper()
	m, err := matrix.New[float64](r, c)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt[T num.Number](tb testing.TB, m *matrix.Dense[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// RequireRows asserts m equals the literal want exactly (shape and values).
func RequireRows[T num.Number](tb testing.TB, want [][]T, m *matrix.Dense[T]) {
	tb.Helper()
	require.NotNil(tb, m)
	require.Equal(tb, len(want), m.Rows(), "rows")
	for i, row := range want {
		require.Equal(tb, len(row), m.Cols(), "cols")
		got, err := m.Row(i)
		require.NoError(tb, err)
		require.Equal(tb, row, got, "row %d", i)
	}
}

// RequireClose asserts m matches the literal want within testTol.
func RequireClose(tb testing.TB, want [][]float64, m *matrix.Dense[float64]) {
	tb.Helper()
	ok, err := m.AllClose(MustRows(tb, want), 0, testTol)
	require.NoError(tb, err)
	require.True(tb, ok, "got\n%vwant %v", m, want)
}

// errOf drops the value of a (value, error) pair.
func errOf(_ any, err error) error { return err }

// RandomFill fills m with deterministic U(-1,1) values by seed.
func RandomFill(m *matrix.Dense[float64], seed uint64) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	buf := m.Buf()
	for i := range buf {
		buf[i] = rng.Float64()*2 - 1
	}
}

// RandomDense returns an r×c matrix filled by RandomFill.
func RandomDense(tb testing.TB, r, c int, seed uint64) *matrix.Dense[float64] {
	tb.Helper()
	m := MustDense(tb, r, c)
	RandomFill(m, seed)

	return m
}

// backends returns the row-major gonum backend and a column-major reference
// backend. Products must agree across both.
func backends() map[string]*backend.Backend {
	return map[string]*backend.Backend{
		"gonum/row-major": backend.New(
			backend.WithFloat64Kernels(gonum.Implementation{}),
			backend.WithFloat32Kernels(gonum.Implementation{}),
		),
		"reference/col-major": backend.New(
			backend.WithFloat64Kernels(blastest.ColMajor{}),
			backend.WithFloat32Kernels(blastest.ColMajor{}),
			backend.WithLayout(backend.ColMajor),
		),
	}
}
