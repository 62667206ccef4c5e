// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densela/matrix"
)

// rowFixture is the 4×2 matrix used by the row-broadcast cases.
var rowFixture = [][]float64{{1, 2}, {3, 4}, {5, 6}, {7, 8}}

func TestAddRow(t *testing.T) {
	t.Parallel()

	m := MustRows(t, rowFixture)
	got, err := m.AddRow([]float64{2.5, 4})
	require.NoError(t, err)
	require.Equal(t, []float64{3.5, 6, 5.5, 8, 7.5, 10, 9.5, 12}, got.Buf())
	RequireRows(t, rowFixture, m) // receiver untouched
}

func TestSubRow(t *testing.T) {
	t.Parallel()

	m := MustRows(t, rowFixture)
	got, err := m.SubRow([]float64{4, 5})
	require.NoError(t, err)
	require.Equal(t, []float64{-3, -3, -1, -1, 1, 1, 3, 3}, got.Buf())
}

func TestRowBroadcast_LengthMismatch(t *testing.T) {
	t.Parallel()

	m := MustRows(t, rowFixture)
	for name, run := range map[string]func() error{
		"AddRow":  func() error { return errOf(m.AddRow([]float64{1, 2, 3})) },
		"SubRow":  func() error { return errOf(m.SubRow([]float64{1})) },
		"IAddRow": func() error { return m.IAddRow(nil) },
		"ISubRow": func() error { return m.ISubRow([]float64{1, 2, 3}) },
	} {
		err := run()
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch, name)
		require.Contains(t, err.Error(), name+":", name)
	}
	RequireRows(t, rowFixture, m)
}

func TestRowBroadcast_NilReceiver(t *testing.T) {
	t.Parallel()

	var m *matrix.Dense[float64]
	for name, run := range map[string]func() error{
		"AddRow":  func() error { return errOf(m.AddRow([]float64{1})) },
		"SubRow":  func() error { return errOf(m.SubRow([]float64{1})) },
		"IAddRow": func() error { return m.IAddRow([]float64{1}) },
		"ISubRow": func() error { return m.ISubRow(nil) },
	} {
		var err error
		require.NotPanics(t, func() { err = run() }, name)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, name)
		require.ErrorContains(t, err, name+":", name)
	}
}

func TestRowBroadcast_InPlace(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, m.IAddRow([]int{10, 20}))
	RequireRows(t, [][]int{{11, 22}, {13, 24}}, m)
	require.NoError(t, m.ISubRow([]int{1, 2}))
	RequireRows(t, [][]int{{10, 20}, {12, 22}}, m)
}

func TestScalarOps(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	RequireRows(t, [][]float64{{3, 4}, {5, 6}}, m.AddScalar(2))
	RequireRows(t, [][]float64{{-1, 0}, {1, 2}}, m.SubScalar(2))
	RequireRows(t, [][]float64{{2, 4}, {6, 8}}, m.MulScalar(2))
	RequireRows(t, [][]float64{{0.5, 1}, {1.5, 2}}, m.DivScalar(2))
	RequireRows(t, [][]float64{{1, 2}, {3, 4}}, m)
}

// TestScalarOps_RoundTrip: (M+s)-s == M and (M·s)/s == M for s != 0.
func TestScalarOps_RoundTrip(t *testing.T) {
	t.Parallel()

	m := RandomDense(t, 5, 7, 42)
	for _, s := range []float64{-3.25, 0.5, 1, 17} {
		ok, err := m.AddScalar(s).SubScalar(s).AllClose(m, 0, testTol)
		require.NoError(t, err)
		require.True(t, ok, "add/sub s=%v", s)

		ok, err = m.MulScalar(s).DivScalar(s).AllClose(m, 0, testTol)
		require.NoError(t, err)
		require.True(t, ok, "mul/div s=%v", s)
	}

	mi := MustRows(t, [][]int64{{-4, 9}, {0, 12}})
	require.True(t, mi.AddScalar(5).SubScalar(5).Equal(mi))
	require.True(t, mi.MulScalar(3).DivScalar(3).Equal(mi))
}

// TestScalarOps_AllocEqualsInPlace checks every allocating scalar method
// against Clone + the in-place method.
func TestScalarOps_AllocEqualsInPlace(t *testing.T) {
	t.Parallel()

	m := RandomDense(t, 3, 4, 7)
	cases := []struct {
		name    string
		alloc   func() *matrix.Dense[float64]
		inPlace func(*matrix.Dense[float64])
	}{
		{"AddScalar", func() *matrix.Dense[float64] { return m.AddScalar(1.5) }, func(d *matrix.Dense[float64]) { d.IAddScalar(1.5) }},
		{"SubScalar", func() *matrix.Dense[float64] { return m.SubScalar(1.5) }, func(d *matrix.Dense[float64]) { d.ISubScalar(1.5) }},
		{"MulScalar", func() *matrix.Dense[float64] { return m.MulScalar(1.5) }, func(d *matrix.Dense[float64]) { d.IMulScalar(1.5) }},
		{"DivScalar", func() *matrix.Dense[float64] { return m.DivScalar(1.5) }, func(d *matrix.Dense[float64]) { d.IDivScalar(1.5) }},
		{"Mutate", func() *matrix.Dense[float64] { return m.Mutate(func(x float64) float64 { return x * x }) }, func(d *matrix.Dense[float64]) { d.IMutate(func(x float64) float64 { return x * x }) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want := m.Clone()
			tc.inPlace(want)
			require.True(t, tc.alloc().Equal(want))
		})
	}
}

func TestIntegerDivScalarByZeroPanics(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]int{{1}})
	require.Panics(t, func() { m.DivScalar(0) })
}
