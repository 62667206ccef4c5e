// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for private kernels and resolved options.
// Compiled only with the package's tests, invisible in production builds.

import "github.com/katalvlaran/densela/backend"

// Panic message exports to avoid "magic strings" in tests.
const PanicNilBackend_TestOnly = panicNilBackend

// ResolvedBackend_TestOnly returns the backend gatherOptions settles on.
func ResolvedBackend_TestOnly(opts ...Option) *backend.Backend {
	return gatherOptions(opts...).backend
}

// EwAllClose_TestOnly forwards to the private ewAllClose kernel.
func EwAllClose_TestOnly(a, b *Dense[float64], rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
