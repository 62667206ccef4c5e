// SPDX-License-Identifier: MIT

package backend

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/densela/internal/cpu"
)

// Backend binds a pair of kernel implementations to the layout they expect.
type Backend struct {
	f64    Float64Kernels
	f32    Float32Kernels
	layout Layout
	log    zerolog.Logger
}

// Info describes a Backend for logs and diagnostics.
type Info struct {
	Float64 string // dynamic type of the float64 kernels
	Float32 string // dynamic type of the float32 kernels
	Layout  Layout
	SIMD    cpu.Level
	Arch    string
}

// New builds a Backend. Without options it uses the gonum registries in
// row-major order and a no-op logger.
func New(opts ...Option) *Backend {
	o := gatherOptions(opts...)
	b := &Backend{f64: o.f64, f32: o.f32, layout: o.layout, log: o.logger}

	info := b.Info()
	b.log.Debug().
		Str("float64", info.Float64).
		Str("float32", info.Float32).
		Stringer("layout", info.Layout).
		Stringer("simd", info.SIMD).
		Str("arch", info.Arch).
		Msg("backend ready")

	return b
}

// Info reports the kernels, layout and host SIMD level of b.
func (b *Backend) Info() Info {
	f := cpu.DetectFeatures()
	return Info{
		Float64: fmt.Sprintf("%T", b.f64),
		Float32: fmt.Sprintf("%T", b.f32),
		Layout:  b.layout,
		SIMD:    f.Level(),
		Arch:    f.Architecture,
	}
}

// Layout returns the storage order of b's kernels.
func (b *Backend) Layout() Layout { return b.layout }

// Logger returns the logger b was built with.
func (b *Backend) Logger() zerolog.Logger { return b.log }

var current atomic.Pointer[Backend]

// Default returns the process-wide backend, building it on first use.
func Default() *Backend {
	if b := current.Load(); b != nil {
		return b
	}
	current.CompareAndSwap(nil, New())
	return current.Load()
}

// SetDefault installs b as the process-wide backend and returns the previous
// one. A nil b installs a fresh New().
func SetDefault(b *Backend) *Backend {
	if b == nil {
		b = New()
	}
	prev := current.Swap(b)
	info := b.Info()
	b.log.Info().
		Str("float64", info.Float64).
		Str("float32", info.Float32).
		Stringer("layout", info.Layout).
		Msg("default backend replaced")
	return prev
}

// or returns b, or the process default when b is nil.
func (b *Backend) or() *Backend {
	if b != nil {
		return b
	}
	return Default()
}
