// SPDX-License-Identifier: MIT

// Package num defines the numeric element kinds understood by densela and the
// scalar functions that the vector and matrix engines lift pointwise.
//
// The package provides:
//
//   - Type constraints (Signed, Unsigned, Integer, Float, Number, SignedNumber)
//     used as the single capability set for every generic engine.
//   - Scalar functions: Sigmoid, SigmoidDerivative, Recip (floating kinds) and
//     Abs (signed kinds only, unsigned kinds simply have no Abs).
//   - Kind, a runtime descriptor of the element type for logging and errors.
//
// Every engine requires both operands to share one type parameter T, so mixing
// element kinds is rejected by the compiler; there is no implicit widening.
package num
