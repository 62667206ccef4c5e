// SPDX-License-Identifier: MIT

package backend

import "github.com/katalvlaran/densela/num"

// Ger performs the rank-one update A += alpha*x*yᵀ in place on A.
//
// A is row-major m×n with row stride lda, len(x) must be m and len(y) must
// be n. A nil b uses Default().
func Ger[T num.Float](b *Backend, m, n int, alpha T, x, y []T, a []T, lda int) (err error) {
	if err = checkMatrix("A", m, n, lda, len(a)); err != nil {
		return backendErrorf(opGer, err)
	}
	if err = checkVector("x", len(x), m); err != nil {
		return backendErrorf(opGer, err)
	}
	if err = checkVector("y", len(y), n); err != nil {
		return backendErrorf(opGer, err)
	}

	b = b.or()
	b.log.Trace().Str("op", opGer).Int("m", m).Int("n", n).
		Stringer("layout", b.layout).Msg("dispatch")

	if m == 0 || n == 0 {
		return nil
	}

	defer guard(opGer, &err)

	var zero T
	switch any(zero).(type) {
	case float64:
		x64, y64, a64 := any(x).([]float64), any(y).([]float64), any(a).([]float64)
		// Column-major kernels see Aᵀ and receive the transposed update y*xᵀ.
		if b.layout == ColMajor {
			b.f64.Dger(n, m, any(alpha).(float64), y64, 1, x64, 1, a64, lda)
		} else {
			b.f64.Dger(m, n, any(alpha).(float64), x64, 1, y64, 1, a64, lda)
		}
	case float32:
		x32, y32, a32 := any(x).([]float32), any(y).([]float32), any(a).([]float32)
		if b.layout == ColMajor {
			b.f32.Sger(n, m, any(alpha).(float32), y32, 1, x32, 1, a32, lda)
		} else {
			b.f32.Sger(m, n, any(alpha).(float32), x32, 1, y32, 1, a32, lda)
		}
	default:
		return backendErrorf(opGer, ErrUnsupportedKind)
	}
	return nil
}
