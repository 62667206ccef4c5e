// SPDX-License-Identifier: MIT

package vec

import (
	"slices"

	"github.com/katalvlaran/densela/num"
)

// head returns an independent copy of the first n elements of v.
func head[T any](v []T, n int) []T {
	return slices.Clone(v[:n])
}

// Add returns a[i]+b[i] for i < min(len(a), len(b)).
// Complexity: O(n) time and space.
func Add[T num.Number](a, b []T) []T {
	x := head(a, min(len(a), len(b)))
	IAdd(x, b)
	return x
}

// Sub returns a[i]-b[i] for i < min(len(a), len(b)).
// Complexity: O(n) time and space.
func Sub[T num.Number](a, b []T) []T {
	x := head(a, min(len(a), len(b)))
	ISub(x, b)
	return x
}

// Mul returns the elementwise product a[i]*b[i] (not a dot product) for
// i < min(len(a), len(b)).
// Complexity: O(n) time and space.
func Mul[T num.Number](a, b []T) []T {
	x := head(a, min(len(a), len(b)))
	IMul(x, b)
	return x
}

// Div returns a[i]/b[i] for i < min(len(a), len(b)).
// Complexity: O(n) time and space.
func Div[T num.Number](a, b []T) []T {
	x := head(a, min(len(a), len(b)))
	IDiv(x, b)
	return x
}

// AddScalar returns v[i]+s. The result has the length of v.
func AddScalar[T num.Number](v []T, s T) []T {
	x := slices.Clone(v)
	IAddScalar(x, s)
	return x
}

// SubScalar returns v[i]-s. The result has the length of v.
func SubScalar[T num.Number](v []T, s T) []T {
	x := slices.Clone(v)
	ISubScalar(x, s)
	return x
}

// MulScalar returns v[i]*s. The result has the length of v.
func MulScalar[T num.Number](v []T, s T) []T {
	x := slices.Clone(v)
	IMulScalar(x, s)
	return x
}

// DivScalar returns v[i]/s. The result has the length of v.
func DivScalar[T num.Number](v []T, s T) []T {
	x := slices.Clone(v)
	IDivScalar(x, s)
	return x
}

// Mutate returns f(v[i]) for every index.
func Mutate[T num.Number](v []T, f func(T) T) []T {
	x := slices.Clone(v)
	IMutate(x, f)
	return x
}

// Map converts every element of v with f, possibly to another kind.
func Map[T num.Number, U any](v []T, f func(T) U) []U {
	out := make([]U, len(v))
	for i, x := range v {
		out[i] = f(x)
	}
	return out
}

// Sigmoid returns 1/(1+exp(-v[i])) for every index.
func Sigmoid[T num.Float](v []T) []T {
	x := slices.Clone(v)
	ISigmoid(x)
	return x
}

// SigmoidDerivative returns s*(1-s), s = Sigmoid(v[i]), for every index.
func SigmoidDerivative[T num.Float](v []T) []T {
	x := slices.Clone(v)
	ISigmoidDerivative(x)
	return x
}

// Recip returns 1/v[i] for every index.
func Recip[T num.Float](v []T) []T {
	x := slices.Clone(v)
	IRecip(x)
	return x
}

// Abs returns |v[i]| for every index. Unsigned kinds have no Abs.
func Abs[T num.SignedNumber](v []T) []T {
	x := slices.Clone(v)
	IAbs(x)
	return x
}
