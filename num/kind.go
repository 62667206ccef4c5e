// SPDX-License-Identifier: MIT

package num

import "math/bits"

// Kind is the runtime descriptor of an element type.
type Kind int

// Supported element kinds.
const (
	Invalid Kind = iota
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

// KindOf reports the Kind of the type parameter T.
// Named types are reported by their underlying kind only when they are the
// predeclared type itself; other named types report Invalid.
func KindOf[T Number]() Kind {
	var zero T
	switch any(zero).(type) {
	case int:
		return Int
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint:
		return Uint
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		return Invalid
	}
}

// Bits returns the storage width of the kind in bits (0 for Invalid).
// Int and Uint report the platform word size.
func (k Kind) Bits() int {
	switch k {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32, Float32:
		return 32
	case Int64, Uint64, Float64:
		return 64
	case Int, Uint:
		return bits.UintSize
	default:
		return 0
	}
}

// IsFloat reports whether the kind is a floating-point kind.
func (k Kind) IsFloat() bool { return k == Float32 || k == Float64 }

// IsSigned reports whether the kind has a sign (and therefore Abs).
func (k Kind) IsSigned() bool {
	switch k {
	case Int, Int8, Int16, Int32, Int64, Float32, Float64:
		return true
	default:
		return false
	}
}

// String returns the Go spelling of the kind.
func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint:
		return "uint"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "invalid"
	}
}
