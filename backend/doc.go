// SPDX-License-Identifier: MIT

// Package backend is the single adapter between densela's row-major buffers
// and the BLAS kernels that do the heavy numeric work.
//
// Three primitives are exposed, each generic over float32 and float64:
//
//	Gemm: C = alpha*op(A)*op(B) + beta*C
//	Gemv: y = alpha*op(A)*x + beta*y
//	Ger:  A = alpha*x*yᵀ + A
//
// Every operand is described in row-major order (row stride = leading
// dimension). The adapter owns all layout translation: when the registered
// kernels are column-major (Fortran order) it swaps operands, dimensions and
// transpose flags so that the row-major buffers are fed to the kernel
// unchanged and the mathematically correct product comes back. No other
// package in densela passes strides or transpose flags to a kernel.
//
// Shapes, leading dimensions and buffer lengths are validated before any
// kernel call; a bad shape is reported as ErrBadShape or ErrDimensionMismatch
// and never reaches the kernel.
//
// Kernels:
//
//	By default the backend uses blas64.Implementation() and
//	blas32.Implementation() from gonum, which resolve to the pure-Go
//	gonum kernels unless the process registered another implementation
//	(for example a cgo netlib build via blas64.Use). Any value with the
//	Dgemm/Dgemv/Dger (or Sgemm/Sgemv/Sger) methods can be plugged in with
//	WithFloat64Kernels / WithFloat32Kernels.
//
// Concurrency:
//
//	A *Backend is immutable after New and safe for concurrent use. The
//	process default (Default/SetDefault) is published atomically.
package backend
