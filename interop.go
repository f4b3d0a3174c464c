package rotation

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/rotation/linalg"
)

// GonumQuat converts q to a gonum quat.Number, which stores the real part
// first.
func (q Quaternion[T]) GonumQuat() quat.Number {
	return quat.Number{
		Real: float64(q.R),
		Imag: float64(q.X),
		Jmag: float64(q.Y),
		Kmag: float64(q.Z),
	}
}

// NewFromGonumQuat converts a gonum quat.Number to a Quaternion.
func NewFromGonumQuat[T linalg.Float](n quat.Number) Quaternion[T] {
	return Quaternion[T]{X: T(n.Imag), Y: T(n.Jmag), Z: T(n.Kmag), R: T(n.Real)}
}

// Mgl64 converts q to an mgl64 quaternion.
func (q Quaternion[T]) Mgl64() mgl64.Quat {
	return mgl64.Quat{
		W: float64(q.R),
		V: mgl64.Vec3{float64(q.X), float64(q.Y), float64(q.Z)},
	}
}

// NewFromMgl64 converts an mgl64 quaternion to a Quaternion.
func NewFromMgl64[T linalg.Float](g mgl64.Quat) Quaternion[T] {
	return Quaternion[T]{X: T(g.X()), Y: T(g.Y()), Z: T(g.Z()), R: T(g.W)}
}

// Mgl32 converts q to an mgl32 quaternion.
func (q Quaternion[T]) Mgl32() mgl32.Quat {
	return mgl32.Quat{
		W: float32(q.R),
		V: mgl32.Vec3{float32(q.X), float32(q.Y), float32(q.Z)},
	}
}

// NewFromMgl32 converts an mgl32 quaternion to a Quaternion.
func NewFromMgl32[T linalg.Float](g mgl32.Quat) Quaternion[T] {
	return Quaternion[T]{X: T(g.X()), Y: T(g.Y()), Z: T(g.Z()), R: T(g.W)}
}
