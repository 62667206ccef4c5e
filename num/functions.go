// SPDX-License-Identifier: MIT

package num

import "math"

// Sigmoid returns 1/(1+exp(-x)).
// The exponential is evaluated in float64 and rounded back to T.
func Sigmoid[T Float](x T) T {
	return T(1.0 / (1.0 + math.Exp(-float64(x))))
}

// SigmoidDerivative returns s*(1-s) where s = Sigmoid(x).
func SigmoidDerivative[T Float](x T) T {
	s := Sigmoid(x)
	return s * (1 - s)
}

// Recip returns 1/x using native floating-point division.
// Recip(±0) is ±Inf and Recip(NaN) is NaN; nothing is trapped.
func Recip[T Float](x T) T {
	return 1 / x
}

// Abs returns |x|. It does not exist for unsigned kinds.
// For the most negative value of a signed integer kind the result wraps,
// exactly like -x does in Go.
func Abs[T SignedNumber](x T) T {
	if x < 0 {
		return -x
	}
	// -0.0 compares equal to 0 but must still come back positive.
	if x == 0 {
		return 0
	}
	return x
}
