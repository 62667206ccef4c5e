// SPDX-License-Identifier: MIT
// Package matrix - Dense constructors.
//
// Purpose:
//   - Build row-major Dense[T] values from a shape, a flat buffer, a fill
//     value or a literal [][]T.
//   - Every constructor copies its input: the returned matrix owns its buffer.
//
// Complexity quicksheet:
//   - New/Fill: O(r*c); FromSlice: O(r*c) copy; FromRows: O(r*c) copy.

package matrix

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/densela/num"
)

// Constructor tags used in error wrappers.
const (
	ctxNew       = "New"
	ctxFromSlice = "FromSlice"
	ctxFill      = "Fill"
	ctxFromRows  = "FromRows"
)

// New creates a rows×cols Dense matrix initialized to zeros.
// Zero-area shapes (rows == 0 or cols == 0) are legal and hold no elements.
//
// Errors:
//   - ErrBadShape when rows < 0 or cols < 0.
//
// Complexity:
//   - Time O(r*c) zeroing by runtime, Space O(r*c).
func New[T num.Number](rows, cols int) (*Dense[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromSlice creates a rows×cols Dense matrix from a row-major flat buffer.
// The buffer is copied; later writes to flat do not reach the matrix.
//
// Errors:
//   - ErrBadShape when rows < 0, cols < 0 or len(flat) != rows*cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromSlice[T num.Number](flat []T, rows, cols int) (*Dense[T], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxFromSlice, err)
	}
	if len(flat) != rows*cols {
		return nil, matrixErrorf(ctxFromSlice,
			fmt.Errorf("%d values for %dx%d: %w", len(flat), rows, cols, ErrBadShape))
	}

	data := make([]T, len(flat))
	copy(data, flat)

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// Fill creates a rows×cols Dense matrix with every element set to v.
//
// Errors:
//   - ErrBadShape when rows < 0 or cols < 0.
func Fill[T num.Number](v T, rows, cols int) (*Dense[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(ctxFill, err)
	}
	for i := range m.data {
		m.data[i] = v
	}

	return m, nil
}

// FromRows builds a matrix from a literal slice of rows, e.g.
//
//	m, _ := matrix.FromRows([][]float64{{1, 2, 3}, {4, 2, 5}})
//
// All rows must have the same length. An empty input yields a 0×0 matrix.
//
// Errors:
//   - ErrBadShape when the rows are ragged.
func FromRows[T num.Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return &Dense[T]{}, nil
	}

	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf(ctxFromRows,
				fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), cols, ErrBadShape))
		}
		data = append(data, row...)
	}

	return &Dense[T]{r: len(rows), c: cols, data: slices.Clip(data)}, nil
}

// newLike allocates a zero matrix with the shape of m. Shape is known valid.
func newLike[T num.Number](rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}
