// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep engines minimal by delegating shape/nil/length checks here.
//  - Every check runs before any kernel or backend primitive is reached, so a
//    bad shape can never make a primitive read out of bounds.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/densela/num"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateShape rejects negative dimensions. Zero-area shapes are legal.
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("validateShape",
			fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape))
	}

	return nil
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T num.Number](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[T num.Number](a, b *Dense[T]) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows",
			fmt.Errorf("%d vs %d: %w", a.r, b.r, ErrDimensionMismatch))
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns",
			fmt.Errorf("%d vs %d: %w", a.c, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateBinarySameShape – NotNil(a), NotNil(b), then SameShape(a, b).
func ValidateBinarySameShape[T num.Number](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateVecLen – Ensures a vector named name has exactly want elements.
//
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecLen(name string, got, want int) error {
	if got != want {
		return validatorErrorf("ValidateVecLen",
			fmt.Errorf("len(%s) = %d, want %d: %w", name, got, want, ErrDimensionMismatch))
	}

	return nil
}

// ValidateMulCompatible – NotNil(lhs), NotNil(rhs), then checks that the
// effective inner dimensions of op(lhs)·op(rhs) agree.
//
// Returns the product shape m×n and the inner dimension k on success.
// Complexity: O(1).
func ValidateMulCompatible[T num.Number](lhs, rhs *Dense[T], lhsT, rhsT bool) (m, n, k int, err error) {
	if err = ValidateNotNil(lhs); err != nil {
		return 0, 0, 0, err
	}
	if err = ValidateNotNil(rhs); err != nil {
		return 0, 0, 0, err
	}

	m, k = lhs.r, lhs.c
	if lhsT {
		m, k = k, m
	}
	rk, n := rhs.r, rhs.c
	if rhsT {
		rk, n = n, rk
	}
	if k != rk {
		return 0, 0, 0, validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("inner %d vs %d: %w", k, rk, ErrDimensionMismatch))
	}

	return m, n, k, nil
}
