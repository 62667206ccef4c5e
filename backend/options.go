// SPDX-License-Identifier: MIT

package backend

import (
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
)

// DefaultLayout is the storage order of gonum kernels.
const DefaultLayout = RowMajor

// Panic messages for nonsensical option values (programmer errors).
const (
	panicNilFloat64Kernels = "backend: WithFloat64Kernels: kernels must not be nil"
	panicNilFloat32Kernels = "backend: WithFloat32Kernels: kernels must not be nil"
	panicInvalidLayout     = "backend: WithLayout: unknown layout"
)

// Options is the resolved configuration of a Backend.
type Options struct {
	f64    Float64Kernels
	f32    Float32Kernels
	layout Layout
	logger zerolog.Logger
}

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// WithFloat64Kernels selects the float64 kernels.
func WithFloat64Kernels(k Float64Kernels) Option {
	if k == nil {
		panic(panicNilFloat64Kernels)
	}
	return func(o *Options) { o.f64 = k }
}

// WithFloat32Kernels selects the float32 kernels.
func WithFloat32Kernels(k Float32Kernels) Option {
	if k == nil {
		panic(panicNilFloat32Kernels)
	}
	return func(o *Options) { o.f32 = k }
}

// WithLayout declares the storage order the selected kernels expect.
// It applies to both float64 and float32 kernels.
func WithLayout(l Layout) Option {
	if !l.valid() {
		panic(panicInvalidLayout)
	}
	return func(o *Options) { o.layout = l }
}

// WithLogger sets the logger used for setup (Debug) and dispatch (Trace) events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts over the defaults. The gonum registries are
// read here, so a blas64.Use/blas32.Use made earlier is honored.
func gatherOptions(opts ...Option) Options {
	o := Options{
		f64:    blas64.Implementation(),
		f32:    blas32.Implementation(),
		layout: DefaultLayout,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
