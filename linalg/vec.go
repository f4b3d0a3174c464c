package linalg

import (
	"math"

	"github.com/golang/geo/r3"
)

// Vec3 is a 3-component vector.
type Vec3[T Float] struct {
	X T `json:"x"`
	Y T `json:"y"`
	Z T `json:"z"`
}

// Add returns the componentwise sum v + w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns the componentwise difference v - w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Mul returns the vector scaled by c.
func (v Vec3[T]) Mul(c T) Vec3[T] {
	return Vec3[T]{c * v.X, c * v.Y, c * v.Z}
}

// Dot returns the dot product of v and w.
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of v and w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Norm2 returns the squared euclidean norm of v.
func (v Vec3[T]) Norm2() T {
	return v.Dot(v)
}

// Norm returns the euclidean norm of v.
func (v Vec3[T]) Norm() T {
	return T(math.Sqrt(float64(v.Norm2())))
}

// Normalize returns a unit vector in the same direction as v. The zero
// vector is returned unchanged.
func (v Vec3[T]) Normalize() Vec3[T] {
	n2 := v.Norm2()
	if n2 == 0 {
		return Vec3[T]{}
	}
	return v.Mul(T(1 / math.Sqrt(float64(n2))))
}

// R3 converts v to an r3.Vector.
func (v Vec3[T]) R3() r3.Vector {
	return r3.Vector{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// V3FromR3 converts an r3.Vector to a Vec3.
func V3FromR3[T Float](v r3.Vector) Vec3[T] {
	return Vec3[T]{T(v.X), T(v.Y), T(v.Z)}
}

// Vec4 is a 4-component vector.
type Vec4[T Float] struct {
	X T `json:"x"`
	Y T `json:"y"`
	Z T `json:"z"`
	W T `json:"w"`
}
