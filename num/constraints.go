// SPDX-License-Identifier: MIT

package num

// Signed is the set of signed integer kinds.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer kinds.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is the union of Signed and Unsigned.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating-point kinds. Only these kinds reach BLAS.
type Float interface {
	~float32 | ~float64
}

// Number is every element kind supported by the vector and matrix engines.
type Number interface {
	Integer | Float
}

// SignedNumber is the set of kinds that carry a sign and therefore have Abs.
type SignedNumber interface {
	Signed | Float
}

// Zero returns the additive identity of T.
func Zero[T Number]() T { return 0 }

// One returns the multiplicative identity of T.
func One[T Number]() T { return 1 }
