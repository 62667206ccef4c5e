// SPDX-License-Identifier: MIT
// Package matrix - matrix-scalar and row-broadcast methods on Dense.
//
// Every allocating method is "clone the receiver, apply the matching in-place
// method, return the clone". The in-place methods run the vec kernels on the
// flat buffer (scalar ops) or on each row view (row broadcast).
//
// Integer kinds follow Go's native arithmetic: DivScalar(0) panics with the
// runtime's integer divide error and overflow wraps.

package matrix

import "github.com/katalvlaran/densela/vec"

// AddScalar returns a new matrix with s added to every element.
func (m *Dense[T]) AddScalar(s T) *Dense[T] {
	out := m.Clone()
	out.IAddScalar(s)

	return out
}

// SubScalar returns a new matrix with s subtracted from every element.
func (m *Dense[T]) SubScalar(s T) *Dense[T] {
	out := m.Clone()
	out.ISubScalar(s)

	return out
}

// MulScalar returns a new matrix with every element multiplied by s.
func (m *Dense[T]) MulScalar(s T) *Dense[T] {
	out := m.Clone()
	out.IMulScalar(s)

	return out
}

// DivScalar returns a new matrix with every element divided by s.
func (m *Dense[T]) DivScalar(s T) *Dense[T] {
	out := m.Clone()
	out.IDivScalar(s)

	return out
}

// IAddScalar adds s to every element in place.
func (m *Dense[T]) IAddScalar(s T) { vec.IAddScalar(m.data, s) }

// ISubScalar subtracts s from every element in place.
func (m *Dense[T]) ISubScalar(s T) { vec.ISubScalar(m.data, s) }

// IMulScalar multiplies every element by s in place.
func (m *Dense[T]) IMulScalar(s T) { vec.IMulScalar(m.data, s) }

// IDivScalar divides every element by s in place.
func (m *Dense[T]) IDivScalar(s T) { vec.IDivScalar(m.data, s) }

// Mutate returns a new matrix with f applied to every element.
// f must be total and must not depend on visiting order.
func (m *Dense[T]) Mutate(f func(T) T) *Dense[T] {
	out := m.Clone()
	out.IMutate(f)

	return out
}

// IMutate applies f to every element in place.
func (m *Dense[T]) IMutate(f func(T) T) { vec.IMutate(m.data, f) }

// AddRow returns a new matrix with v added to every row.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateVecLen(len(v), cols).
//   - Stage 2: Clone, then vec.IAdd on each row view.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrDimensionMismatch when len(v) != cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Example:
//
//	[[1,2],[3,4]].AddRow([10,20]) = [[11,22],[13,24]]
func (m *Dense[T]) AddRow(v []T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAddRow, err)
	}
	out := m.Clone()
	if err := out.broadcastRows(v, vec.IAdd[T]); err != nil {
		return nil, matrixErrorf(opAddRow, err)
	}

	return out, nil
}

// SubRow returns a new matrix with v subtracted from every row.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrDimensionMismatch when len(v) != cols.
func (m *Dense[T]) SubRow(v []T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubRow, err)
	}
	out := m.Clone()
	if err := out.broadcastRows(v, vec.ISub[T]); err != nil {
		return nil, matrixErrorf(opSubRow, err)
	}

	return out, nil
}

// IAddRow adds v to every row in place. On error m is left untouched.
func (m *Dense[T]) IAddRow(v []T) error {
	if err := m.broadcastRows(v, vec.IAdd[T]); err != nil {
		return matrixErrorf(opIAddRow, err)
	}

	return nil
}

// ISubRow subtracts v from every row in place. On error m is left untouched.
func (m *Dense[T]) ISubRow(v []T) error {
	if err := m.broadcastRows(v, vec.ISub[T]); err != nil {
		return matrixErrorf(opISubRow, err)
	}

	return nil
}

// broadcastRows applies kernel(row, v) to every row view after checking
// m != nil and len(v) == cols.
func (m *Dense[T]) broadcastRows(v []T, kernel func(dst, src []T)) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateVecLen("v", len(v), m.c); err != nil {
		return err
	}
	for i := 0; i < m.r; i++ {
		kernel(m.row(i), v)
	}

	return nil
}
