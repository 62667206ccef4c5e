// Package densela is a dense linear-algebra operations layer: elementwise
// vector and matrix arithmetic plus BLAS-backed products, written once over
// a generic numeric-kind constraint instead of once per element type.
//
// 🚀 What is densela?
//
//	A small, allocation-explicit library that brings together:
//		• num/    : the numeric-kind constraint family (Number, Float, SignedNumber,
//		             ...) and scalar functions (Sigmoid, Recip, Abs)
//		• vec/    : elementwise vector engines over plain slices, allocating and
//		             in place (Add, IMul, Sigmoid, ...)
//		• matrix/ : the row-major Dense[T] container, matrix-scalar, row-broadcast
//		             and matrix-matrix arithmetic, Mul (GEMM), Gemv/MulVec (GEMV)
//		             and ColMulRow (GER)
//		• backend/: the adapter that feeds row-major buffers to gonum (row-major)
//		             or Fortran-order (column-major) BLAS kernels
//
// ✨ Guarantees
//
//   - Every allocating operation is "clone, apply the in-place operation, return".
//   - Shape and length violations are wrapped sentinel errors, reported before
//     any BLAS kernel is reached.
//   - Synchronous and single-threaded: no goroutines, no locks on values. The
//     only shared state is the process-wide default backend, swapped atomically.
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]float64{{1, 2, 3}, {4, 2, 5}})
//	y, _ := matrix.MulVec(m, []float64{2, 6, 3}) // [23 35]
//
// See examples/logreg and examples/poweriter for complete programs.
package densela
