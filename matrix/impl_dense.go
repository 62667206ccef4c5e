// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Expose no-copy views (Row, Buf) so engines can run vec kernels on rows or
//     on the whole buffer treated as one flat vector.
//
// Ownership:
//   - Every Dense owns its buffer exclusively; Clone allocates a fresh one.
//   - Views returned by Row/Buf alias the matrix. Row views have their
//     capacity clipped so an append cannot spill into the next row.
//
// Complexity quicksheet:
//   - At/Set/Row/Buf: O(1); Clone/Equal: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/densela/num"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order:
// element (i, j) lives at data[i*c+j].
//
// The zero value is a valid 0×0 matrix.
type Dense[T num.Number] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, len == r*c
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns the (rows, cols) pair.
func (m *Dense[T]) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
//
// Errors:
//   - ErrOutOfRange if row ∉ [0,r) or col ∉ [0,c).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
//
// Errors:
//   - ErrOutOfRange if row ∉ [0,r) or col ∉ [0,c).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a view over exactly the cols contiguous elements of row i.
// Writes through the view mutate the matrix.
//
// Errors:
//   - ErrOutOfRange if i ∉ [0,r).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.row(i), nil
}

// row is the unchecked form of Row for engines that iterate 0..r-1.
func (m *Dense[T]) row(i int) []T {
	lo, hi := i*m.c, (i+1)*m.c
	return m.data[lo:hi:hi]
}

// Buf returns the full row-major backing storage (len == rows*cols).
// Writes through the view mutate the matrix.
func (m *Dense[T]) Buf() []T { return m.data }

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: data}
}

// Equal reports whether other has the same shape and identical elements.
// NaN never equals NaN. A nil other is never equal.
func (m *Dense[T]) Equal(other *Dense[T]) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
//
// Returns:
//   - string: one "[a, b, ...]" line per row.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
