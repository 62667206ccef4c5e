// SPDX-License-Identifier: MIT
// Package matrix - elementwise function lifting and tolerance comparison.
//
// Purpose:
//   - Lift the scalar functions of package num (Sigmoid, SigmoidDerivative,
//     Recip, Abs) to whole matrices, allocating and in place.
//   - Convert element kinds with Map.
//   - Compare matrices within a tolerance (AllClose) via the private
//     ewAllClose kernel.
//
// Contract:
//   - Allocating form ≡ Clone + in-place form, for every function here.
//   - Recip(0) follows IEEE division (±Inf, NaN for NaN) and never panics.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/densela/num"
	"github.com/katalvlaran/densela/vec"
)

// Sigmoid returns a new matrix with 1/(1+e^(-x)) applied to every element.
func Sigmoid[T num.Float](m *Dense[T]) *Dense[T] {
	out := m.Clone()
	ISigmoid(out)

	return out
}

// ISigmoid applies the logistic function to every element in place.
func ISigmoid[T num.Float](m *Dense[T]) { vec.ISigmoid(m.data) }

// SigmoidDerivative returns a new matrix with s(x)·(1-s(x)) applied to every
// element, s being the logistic function.
func SigmoidDerivative[T num.Float](m *Dense[T]) *Dense[T] {
	out := m.Clone()
	ISigmoidDerivative(out)

	return out
}

// ISigmoidDerivative applies the logistic derivative to every element in place.
func ISigmoidDerivative[T num.Float](m *Dense[T]) { vec.ISigmoidDerivative(m.data) }

// Recip returns a new matrix holding 1/x for every element x.
func Recip[T num.Float](m *Dense[T]) *Dense[T] {
	out := m.Clone()
	IRecip(out)

	return out
}

// IRecip replaces every element x with 1/x in place.
func IRecip[T num.Float](m *Dense[T]) { vec.IRecip(m.data) }

// Abs returns a new matrix holding |x| for every element x.
// Unsigned kinds do not satisfy num.SignedNumber and have no Abs.
func Abs[T num.SignedNumber](m *Dense[T]) *Dense[T] {
	out := m.Clone()
	IAbs(out)

	return out
}

// IAbs replaces every element x with |x| in place.
func IAbs[T num.SignedNumber](m *Dense[T]) { vec.IAbs(m.data) }

// Map converts m element by element into a new matrix of kind U.
func Map[T, U num.Number](m *Dense[T], f func(T) U) *Dense[U] {
	return &Dense[U]{r: m.r, c: m.c, data: vec.Map(m.data, f)}
}

// AllClose reports whether m and other have the same shape and
// |m_ij - other_ij| ≤ atol + rtol·|other_ij| holds for every element.
// Negative tolerances are used by magnitude.
//
// Errors:
//   - ErrNaNInf for a NaN or ±Inf tolerance.
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) AllClose(other *Dense[T], rtol, atol float64) (bool, error) {
	return ewAllClose(m, other, rtol, atol)
}

// ewAllClose is the kernel behind AllClose. Elements are compared in
// float64 so unsigned kinds do not wrap on subtraction.
func ewAllClose[T num.Number](a, b *Dense[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose,
			fmt.Errorf("rtol=%g atol=%g: %w", rtol, atol, ErrNaNInf))
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var diff, bound float64
	for i, av := range a.data {
		bv := float64(b.data[i])
		diff = math.Abs(float64(av) - bv)
		bound = atol + rtol*math.Abs(bv)
		if !(diff <= bound) { // NaN fails the comparison
			return false, nil
		}
	}

	return true, nil
}
