// Package linalg provides the small fixed-size linear algebra the rotation
// types are built on: 3- and 4-component vectors and 3x3/4x4 matrices,
// generic over the floating-point scalar type. Everything is an immutable
// value; operations return new values and never share state.
//
// Transcendental functions are evaluated in double precision and the result
// converted back to the scalar type, so float32 instantiations trade no
// accuracy inside a single operation.
package linalg

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float matches the two scalar precisions supported by this module.
type Float interface {
	constraints.Float
}

// Eps returns the machine epsilon of T, the gap between 1 and the next
// representable value: 2^-52 in double precision, 2^-23 in single.
func Eps[T Float]() T {
	// 2^-30 sits between the two epsilons, so adding it to 1 survives
	// rounding only in double precision. This keeps defined types with a
	// float32 underlying type on the single-precision path.
	if T(1)+T(0x1p-30) > T(1) {
		return T(0x1p-52)
	}
	return T(0x1p-23)
}

// DegToRad converts degrees to radians.
func DegToRad[T Float](degrees T) T {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg[T Float](radians T) T {
	return radians * 180 / math.Pi
}

// AlmostEqual reports whether a and b are within tol of each other.
func AlmostEqual[T Float](a, b, tol T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
