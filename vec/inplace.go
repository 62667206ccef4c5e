// SPDX-License-Identifier: MIT

package vec

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/katalvlaran/densela/internal/cpu"
	"github.com/katalvlaran/densela/num"
)

// IAdd sets dst[i] += src[i] for i < min(len(dst), len(src)).
// Plain float64 slices go through the vectorized block kernel when the host
// supports it.
// Complexity: O(n).
func IAdd[T num.Number](dst, src []T) {
	n := min(len(dst), len(src))
	if d, ok := any(dst).([]float64); ok && vectorized() {
		vecmath.AddBlockInPlace(d[:n], any(src).([]float64)[:n])
		return
	}
	for i := 0; i < n; i++ {
		dst[i] += src[i]
	}
}

// ISub sets dst[i] -= src[i] for i < min(len(dst), len(src)).
// Complexity: O(n).
func ISub[T num.Number](dst, src []T) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] -= src[i]
	}
}

// IMul sets dst[i] *= src[i] for i < min(len(dst), len(src)).
// Plain float64 slices go through the vectorized block kernel when the host
// supports it.
// Complexity: O(n).
func IMul[T num.Number](dst, src []T) {
	n := min(len(dst), len(src))
	if d, ok := any(dst).([]float64); ok && vectorized() {
		vecmath.MulBlockInPlace(d[:n], any(src).([]float64)[:n])
		return
	}
	for i := 0; i < n; i++ {
		dst[i] *= src[i]
	}
}

// IDiv sets dst[i] /= src[i] for i < min(len(dst), len(src)).
// Integer kinds panic on a zero divisor, as native Go division does.
// Complexity: O(n).
func IDiv[T num.Number](dst, src []T) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] /= src[i]
	}
}

// IAddScalar adds s to every element of dst.
func IAddScalar[T num.Number](dst []T, s T) {
	for i := range dst {
		dst[i] += s
	}
}

// ISubScalar subtracts s from every element of dst.
func ISubScalar[T num.Number](dst []T, s T) {
	for i := range dst {
		dst[i] -= s
	}
}

// IMulScalar multiplies every element of dst by s.
func IMulScalar[T num.Number](dst []T, s T) {
	if d, ok := any(dst).([]float64); ok && vectorized() {
		vecmath.ScaleBlockInPlace(d, any(s).(float64))
		return
	}
	for i := range dst {
		dst[i] *= s
	}
}

// IDivScalar divides every element of dst by s.
// Integer kinds panic when s == 0 and dst is not empty.
func IDivScalar[T num.Number](dst []T, s T) {
	for i := range dst {
		dst[i] /= s
	}
}

// IMutate replaces every element x of dst with f(x).
// f must be total and must not depend on other elements.
func IMutate[T num.Number](dst []T, f func(T) T) {
	for i, x := range dst {
		dst[i] = f(x)
	}
}

// ISigmoid applies num.Sigmoid to every element of dst.
func ISigmoid[T num.Float](dst []T) {
	for i, x := range dst {
		dst[i] = num.Sigmoid(x)
	}
}

// ISigmoidDerivative applies num.SigmoidDerivative to every element of dst.
func ISigmoidDerivative[T num.Float](dst []T) {
	for i, x := range dst {
		dst[i] = num.SigmoidDerivative(x)
	}
}

// IRecip replaces every element x of dst with 1/x (IEEE-754 semantics for 0).
func IRecip[T num.Float](dst []T) {
	for i, x := range dst {
		dst[i] = num.Recip(x)
	}
}

// IAbs replaces every element of dst with its absolute value.
func IAbs[T num.SignedNumber](dst []T) {
	for i, x := range dst {
		dst[i] = num.Abs(x)
	}
}

// vectorized reports whether the SIMD block kernels may be used.
func vectorized() bool {
	return cpu.DetectFeatures().Vectorized()
}
