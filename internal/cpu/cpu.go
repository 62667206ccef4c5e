// SPDX-License-Identifier: MIT

// Package cpu reports the SIMD capabilities of the host processor.
//
// densela uses the report for two things: the elementwise engines decide
// whether to hand float64 blocks to the vectorized kernels, and the BLAS
// backend includes the detected level in its description and debug logs.
//
// Detection runs once, lazily, and is cached. Tests may pin a feature set
// with SetForcedFeatures and restore the hardware view with ResetDetection.
package cpu

import (
	"sync"
	"sync/atomic"
)

// Level is the best SIMD extension family available to vectorized kernels.
type Level int

const (
	LevelNone Level = iota
	LevelSSE2
	LevelAVX
	LevelAVX2
	LevelAVX512
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelSSE2:
		return "sse2"
	case LevelAVX:
		return "avx"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Features describes the processor capabilities relevant to kernel selection.
type Features struct {
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasFMA    bool
	HasAVX512 bool
	HasNEON   bool

	// ForceGeneric disables every vectorized path (tests, debugging).
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

// Level returns the best SIMD level usable under f.
func (f Features) Level() Level {
	switch {
	case f.ForceGeneric:
		return LevelNone
	case f.HasAVX512:
		return LevelAVX512
	case f.HasAVX2:
		return LevelAVX2
	case f.HasAVX:
		return LevelAVX
	case f.HasSSE2:
		return LevelSSE2
	case f.HasNEON:
		return LevelNEON
	default:
		return LevelNone
	}
}

// Vectorized reports whether vectorized kernels may be used under f.
func (f Features) Vectorized() bool {
	return f.Level() != LevelNone
}

var (
	detected = sync.OnceValue(detectFeatures)
	forced   atomic.Pointer[Features]
)

// DetectFeatures returns the cached host features, or the forced set when
// SetForcedFeatures is active. Safe for concurrent use.
func DetectFeatures() Features {
	if f := forced.Load(); f != nil {
		return *f
	}
	return detected()
}

// SetForcedFeatures overrides detection until ResetDetection is called.
func SetForcedFeatures(f Features) {
	forced.Store(&f)
}

// ResetDetection drops any forced feature set.
func ResetDetection() {
	forced.Store(nil)
}
