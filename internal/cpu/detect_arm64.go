// SPDX-License-Identifier: MIT

//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// ASIMD (NEON) is mandatory on ARMv8, FMA is part of it.
func detectFeatures() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD,
		HasFMA:       cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
