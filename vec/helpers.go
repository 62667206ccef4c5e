// SPDX-License-Identifier: MIT

package vec

import (
	"math/rand/v2"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/katalvlaran/densela/num"
)

// Zero returns a vector of n zeros.
func Zero[T num.Number](n int) []T {
	return make([]T, n)
}

// Ones returns a vector of n ones.
func Ones[T num.Number](n int) []T {
	return Fill(num.One[T](), n)
}

// Fill returns a vector of n copies of v.
func Fill[T num.Number](v T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Random returns n values drawn uniformly from [0, 1).
// A nil r uses the process-wide generator.
func Random[T num.Float](n int, r *rand.Rand) []T {
	out := make([]T, n)
	for i := range out {
		if r != nil {
			out[i] = T(r.Float64())
		} else {
			out[i] = T(rand.Float64())
		}
	}
	return out
}

// Copy copies min(len(dst), len(src), n) leading elements from src to dst and
// returns that count. A negative n copies nothing.
func Copy[T any](dst, src []T, n int) int {
	c := max(min(len(dst), len(src), n), 0)
	return copy(dst[:c], src[:c])
}

// Run is a value and the number of times it repeats consecutively.
type Run[T comparable] struct {
	Value T
	Count int
}

// Group collapses consecutive equal elements into runs.
// Group([1 1 2 7 7]) = [{1 2} {2 1} {7 2}]. An empty input yields nil.
func Group[T comparable](v []T) []Run[T] {
	var runs []Run[T]
	for _, x := range v {
		if n := len(runs); n > 0 && runs[n-1].Value == x {
			runs[n-1].Count++
			continue
		}
		runs = append(runs, Run[T]{Value: x, Count: 1})
	}
	return runs
}

// Sum returns the sum of all elements (0 for an empty vector).
// Integer kinds wrap on overflow. Plain float64 slices may be summed by the
// vectorized kernel, so the float64 result can differ from a sequential sum
// in the last bits.
func Sum[T num.Number](v []T) T {
	if f, ok := any(v).([]float64); ok && vectorized() {
		return any(vecmath.Sum(f)).(T)
	}
	var s T
	for _, x := range v {
		s += x
	}
	return s
}

// Similar reports whether a and b have the same length and every pair
// differs by at most eps. NaN is never similar to anything.
func Similar[T num.Float](a, b []T, eps T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		d := a[i] - b[i]
		if !(d <= eps && -d <= eps) {
			return false
		}
	}
	return true
}
