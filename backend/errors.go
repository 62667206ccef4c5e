// SPDX-License-Identifier: MIT

package backend

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "backend: ..."; callers match with errors.Is.
var (
	// ErrBadShape is returned for negative dimensions, leading dimensions
	// smaller than the row length, or matrix buffers too short for the shape.
	ErrBadShape = errors.New("backend: invalid shape")

	// ErrDimensionMismatch is returned when a vector length does not match
	// the dimension the primitive reads or writes.
	ErrDimensionMismatch = errors.New("backend: dimension mismatch")

	// ErrUnsupportedKind is returned for element types other than the
	// predeclared float32 and float64 (e.g. named float types).
	ErrUnsupportedKind = errors.New("backend: unsupported element kind")

	// ErrKernelPanic wraps a panic raised inside a registered kernel.
	ErrKernelPanic = errors.New("backend: kernel panicked")
)

// Operation tags used in wrapped errors and log fields.
const (
	opGemm = "Gemm"
	opGemv = "Gemv"
	opGer  = "Ger"
)

// backendErrorf wraps err as "<tag>: <err>" keeping errors.Is/As working.
func backendErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
