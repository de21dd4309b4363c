// Package xmath provides the exact integer helpers behind scheduler-side sizing
// decisions: work-group padding, grid sizing and allocation alignment.
//
// All functions are pure value computations. They never guard their documented
// preconditions: a zero divisor to CeilDiv or NextMultipleOf is the caller's bug, and
// overflow behavior is exactly that of the underlying unsigned arithmetic.
package xmath

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// NextPowerOf2 returns the smallest power of two strictly greater than a.
//
// At the top of the domain it saturates: NextPowerOf2(math.MaxUint64) == 0. That is the
// documented convention, not an error.
func NextPowerOf2(a uint64) uint64 {
	// A shift by 64 yields 0, which gives the saturation at MaxUint64 for free.
	return 1 << bits.Len64(a)
}

// PowerOf2Ceil returns the smallest power of two greater than or equal to a, a ceiling
// across the domain of powers of two. By convention PowerOf2Ceil(0) == 0.
func PowerOf2Ceil(a uint64) uint64 {
	if a == 0 {
		return 0
	}
	return NextPowerOf2(a - 1)
}

// CeilDiv returns the ceiling of a/b. b must be non-zero.
func CeilDiv[T constraints.Unsigned](a, b T) T {
	return (a + b - 1) / b
}

// NextMultipleOf returns the smallest multiple of b that is greater than or equal to a.
// b must be non-zero.
func NextMultipleOf[T constraints.Unsigned](a, b T) T {
	return CeilDiv(a, b) * b
}
