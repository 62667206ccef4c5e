// SPDX-License-Identifier: MIT
// Package matrix - shared small types.

package matrix

import "fmt"

// Shape is the (rows, cols) pair of a matrix.
type Shape struct {
	Rows int // number of rows (≥ 0)
	Cols int // number of columns (≥ 0)
}

// Len returns Rows*Cols, the number of stored elements.
func (s Shape) Len() int { return s.Rows * s.Cols }

// T returns the shape of the transposed matrix.
func (s Shape) T() Shape { return Shape{Rows: s.Cols, Cols: s.Rows} }

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }
