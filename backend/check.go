// SPDX-License-Identifier: MIT

package backend

import "fmt"

// checkMatrix validates a row-major r×c operand with row stride ld held in a
// buffer of length n. The kernels require ld >= max(1, c) even when the
// operand is empty, so the same rule is enforced here.
func checkMatrix(name string, r, c, ld, n int) error {
	if r < 0 || c < 0 {
		return fmt.Errorf("%s is %d×%d: %w", name, r, c, ErrBadShape)
	}
	if ld < max(1, c) {
		return fmt.Errorf("%s leading dimension %d < %d: %w", name, ld, max(1, c), ErrBadShape)
	}
	if r > 0 && c > 0 && n < ld*(r-1)+c {
		return fmt.Errorf("%s buffer holds %d elements, need %d: %w", name, n, ld*(r-1)+c, ErrBadShape)
	}
	return nil
}

// checkVector validates that a vector operand has exactly want elements.
func checkVector(name string, got, want int) error {
	if got != want {
		return fmt.Errorf("%s has length %d, want %d: %w", name, got, want, ErrDimensionMismatch)
	}
	return nil
}

// scale sets v = beta*v, writing exact zeros when beta == 0 so that NaN or
// Inf already in v do not survive (BLAS convention).
func scale[T float32 | float64](v []T, beta T) {
	switch beta {
	case 1:
	case 0:
		clear(v)
	default:
		for i := range v {
			v[i] *= beta
		}
	}
}

// scaleRows applies scale to every row of a row-major r×c operand.
func scaleRows[T float32 | float64](c []T, r, cols, ld int, beta T) {
	for i := 0; i < r; i++ {
		scale(c[i*ld:i*ld+cols], beta)
	}
}

// guard converts a kernel panic into ErrKernelPanic.
func guard(tag string, err *error) {
	if r := recover(); r != nil {
		*err = backendErrorf(tag, fmt.Errorf("%v: %w", r, ErrKernelPanic))
	}
}
