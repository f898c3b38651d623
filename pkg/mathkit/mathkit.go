// Package mathkit contains generic integer arithmetic helpers.
package mathkit

import (
	"unsafe"

	"go.llib.dev/fizzbuzz/internal/constraints"
)

type (
	Int    constraints.Int
	UInt   constraints.UInt
	Float  constraints.Float
	Number constraints.Number
)

// DivisibleBy returns a predicate that reports whether a candidate integer is evenly divisible by the divisor.
//
// The divisor is captured by the returned closure, so a predicate made once can test any number of candidates.
// The divisor is expected to be a positive non-zero integer;
// with a zero divisor the returned predicate panics on its first call, as integer division by zero does.
func DivisibleBy[T Int](divisor T) func(T) bool {
	return func(candidate T) bool {
		return candidate%divisor == 0
	}
}

func MaxInt[T Int]() T {
	var zero T
	// Get the size in bits by multiplying byte size by 8
	typeSizeInBits := 8 * unsafe.Sizeof(zero)
	// Maximum value is 2^(n-1) - 1 where n is the number of bits
	return T((1 << (typeSizeInBits - 1)) - 1)
}

func MinInt[T Int]() T {
	var zero T
	typeSizeInBits := 8 * unsafe.Sizeof(zero)
	// Minimum value is -2^(n-1) for signed integers
	return T(-1 << (typeSizeInBits - 1))
}
