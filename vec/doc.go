// SPDX-License-Identifier: MIT

// Package vec implements elementwise arithmetic over plain Go slices.
//
// The package provides:
//
//   - In-place kernels (IAdd, ISub, IMul, IDiv, I*Scalar, IMutate, ISigmoid,
//     ISigmoidDerivative, IRecip) that mutate the receiver slice and allocate
//     nothing.
//   - Allocating counterparts (Add, Sub, Mul, Div, *Scalar, Mutate, Sigmoid,
//     SigmoidDerivative, Recip, Abs) built as clone → in-place kernel → return.
//     They never write to their operands.
//   - Small helpers used by the matrix engine and by callers: Zero, Ones, Fill,
//     Random, Copy, Group, Sum, Similar, Map.
//
// Length policy:
//
//	Binary vector-vector kernels pair elements index by index and stop at the
//	shorter operand. Allocating results have length min(len(a), len(b)); the
//	in-place kernels touch only the first min(len(dst), len(src)) elements of
//	dst. Callers that need a hard length check must compare lengths first;
//	the matrix engine does so and reports ErrDimensionMismatch.
//
// Concurrency:
//
//	Nothing here locks. Distinct slices may be processed concurrently; the
//	same destination slice must not be mutated from two goroutines at once.
package vec
