// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the BLAS-backed engines.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Engines that reach a GEMM/GEMV/GER primitive (MulVec, TranspMulVec,
//     Gemv, MulVecMinusVec, MulScalarVec, Mul, ColMulRow) accept ...Option.
//   - Without WithBackend they use backend.Default(), which can be swapped
//     process-wide with backend.SetDefault.
package matrix

import "github.com/katalvlaran/densela/backend"

// Panic messages (kept as constants so tests can match them exactly).
const (
	panicNilBackend = "matrix: WithBackend(nil) is not allowed"
)

// Options holds the resolved configuration of a single engine call.
type Options struct {
	backend *backend.Backend // primitive provider; nil means backend.Default()
}

// Option mutates Options.
type Option func(*Options)

// WithBackend routes the call's primitives to b instead of the process
// default. Panics if b is nil; omit the option to use the default.
func WithBackend(b *backend.Backend) Option {
	if b == nil {
		panic(panicNilBackend)
	}

	return func(o *Options) { o.backend = b }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.backend == nil {
		o.backend = backend.Default()
	}

	return o
}
