// Package matrix provides a generic row-major dense matrix and the engines
// that operate on it.
//
// The matrix package provides:
//
//   - Dense[T], a row-major container over any num.Number kind with safe
//     accessors (At, Set, Row) and no-copy views (Row, Buf).
//   - Matrix-scalar and row-broadcast arithmetic (AddScalar, AddRow, ...),
//     each with an in-place I* counterpart.
//   - Matrix-matrix arithmetic (Add, Sub, Hadamard) over identical shapes.
//   - BLAS-backed products for float kinds: Mul (GEMM with independent
//     transpose flags), Gemv / MulVec / TranspMulVec / MulVecMinusVec /
//     MulScalarVec (GEMV) and ColMulRow (GER).
//   - Function lifting for float kinds (Sigmoid, SigmoidDerivative, Recip)
//     and Abs for signed kinds.
//
// Every allocating operation is defined as Clone followed by the matching
// in-place operation. Shape and length violations are reported as wrapped
// sentinel errors (ErrDimensionMismatch, ErrBadShape, ...) before any
// backend primitive is reached.
//
// Products run on backend.Default() unless WithBackend selects another
// backend for the call.
package matrix
