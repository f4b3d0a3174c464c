// Package rotation implements rotations of three-dimensional Euclidean
// space as unit quaternions, with lossless conversions to and from rotation
// matrices, axis-angle pairs, and Euler angles.
//
// A quaternion q = x*i + y*j + z*k + r is stored with the imaginary
// components first and the real component last. Multiplication follows the
// Hamilton convention (i*j = k), so composing rotations reads right to
// left: q2.Mul(q1) rotates by q1 first, then q2. Rotations are active
// rotations of vectors in a fixed right-handed frame.
//
// Matrix conversions work with two layouts of the same rotation. The
// standard matrix R rotates column vectors, v' = R * v. Its transpose
// M = Rᵀ rotates row vectors, v' = v * M, and is what
// RotationMatrixTranspose returns; NewFromRotationMatrix consumes the
// standard layout. Both directions are explicit in the names so no caller
// has to guess which convention a matrix is in.
//
// The scalar type is generic over float32 and float64. Transcendental
// functions always run in double precision internally.
package rotation

import (
	"fmt"
	"math"

	"go.viam.com/rotation/linalg"
)

// Quaternion is a rotation of 3D space. The x, y, z components are the
// imaginary (vector) part and r is the real part. Conversion constructors
// return unit quaternions; direct construction does not normalize, and the
// conversion methods assume unit norm.
type Quaternion[T linalg.Float] struct {
	X T `json:"x"`
	Y T `json:"y"`
	Z T `json:"z"`
	R T `json:"r"`
}

// NewQuaternion returns the quaternion x*i + y*j + z*k + r.
func NewQuaternion[T linalg.Float](x, y, z, r T) Quaternion[T] {
	return Quaternion[T]{X: x, Y: y, Z: z, R: r}
}

// NewZeroRotation returns the identity quaternion, which rotates nothing.
func NewZeroRotation[T linalg.Float]() Quaternion[T] {
	return Quaternion[T]{R: 1}
}

// NewFromVec3 returns the pure quaternion with imaginary part v and zero
// real part.
func NewFromVec3[T linalg.Float](v linalg.Vec3[T]) Quaternion[T] {
	return Quaternion[T]{X: v.X, Y: v.Y, Z: v.Z}
}

// NewFromVec4 reinterprets the components of v as a quaternion, with v.W
// becoming the real part.
func NewFromVec4[T linalg.Float](v linalg.Vec4[T]) Quaternion[T] {
	return Quaternion[T]{X: v.X, Y: v.Y, Z: v.Z, R: v.W}
}

// Imaginary returns the vector part of q.
func (q Quaternion[T]) Imaginary() linalg.Vec3[T] {
	return linalg.Vec3[T]{X: q.X, Y: q.Y, Z: q.Z}
}

// Real returns the real part of q.
func (q Quaternion[T]) Real() T {
	return q.R
}

// At returns component i of q, in the order x, y, z, r. It panics if i is
// outside [0, 3].
func (q Quaternion[T]) At(i int) T {
	switch i {
	case 0:
		return q.X
	case 1:
		return q.Y
	case 2:
		return q.Z
	case 3:
		return q.R
	default:
		panic(fmt.Sprintf("quaternion component index %d out of range", i))
	}
}

// Vec4 returns the components of q as a vector, with the real part in W.
func (q Quaternion[T]) Vec4() linalg.Vec4[T] {
	return linalg.Vec4[T]{X: q.X, Y: q.Y, Z: q.Z, W: q.R}
}

// Norm2 returns the squared norm of q.
func (q Quaternion[T]) Norm2() T {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.R*q.R
}

// Norm returns the norm of q. Unit quaternions have norm 1.
func (q Quaternion[T]) Norm() T {
	return T(math.Sqrt(float64(q.Norm2())))
}

// Normalize returns q scaled to unit norm. The zero quaternion is returned
// unchanged.
func (q Quaternion[T]) Normalize() Quaternion[T] {
	n2 := q.Norm2()
	if n2 == 0 {
		return q
	}
	return q.Scale(T(1 / math.Sqrt(float64(n2))))
}

// Scale returns q with every component multiplied by c.
func (q Quaternion[T]) Scale(c T) Quaternion[T] {
	return Quaternion[T]{X: c * q.X, Y: c * q.Y, Z: c * q.Z, R: c * q.R}
}

// Conjugate returns q with the imaginary part negated. For unit
// quaternions the conjugate is the inverse rotation.
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{X: -q.X, Y: -q.Y, Z: -q.Z, R: q.R}
}

// Flip returns -q, which represents the same rotation as q.
func (q Quaternion[T]) Flip() Quaternion[T] {
	return Quaternion[T]{X: -q.X, Y: -q.Y, Z: -q.Z, R: -q.R}
}

// Inverse returns the multiplicative inverse of q, the conjugate divided
// by the squared norm. The inverse of the zero quaternion is undefined and
// comes back as NaNs; callers holding arbitrary values can check Norm2
// first.
func (q Quaternion[T]) Inverse() Quaternion[T] {
	return q.Conjugate().Scale(1 / q.Norm2())
}

// Mul returns the Hamilton product q * p. As a rotation the product
// applies p first and q second.
func (q Quaternion[T]) Mul(p Quaternion[T]) Quaternion[T] {
	qi := q.Imaginary()
	pi := p.Imaginary()
	img := qi.Cross(pi).Add(pi.Mul(q.R)).Add(qi.Mul(p.R))
	return Quaternion[T]{X: img.X, Y: img.Y, Z: img.Z, R: q.R*p.R - qi.Dot(pi)}
}

// Rotate applies q to the vector v and returns the rotated vector. q must
// be a unit quaternion. The result equals R * v for the standard matrix R
// of q.
func (q Quaternion[T]) Rotate(v linalg.Vec3[T]) linalg.Vec3[T] {
	i := q.Imaginary()
	ixv := i.Cross(v)
	return v.Add(ixv.Mul(2 * q.R)).Add(i.Cross(ixv).Mul(2))
}

// AlmostEqual reports whether every component of q is within tol of the
// corresponding component of p. Note q and q.Flip() are the same rotation
// but are not almost equal.
func (q Quaternion[T]) AlmostEqual(p Quaternion[T], tol T) bool {
	return linalg.AlmostEqual(q.X, p.X, tol) &&
		linalg.AlmostEqual(q.Y, p.Y, tol) &&
		linalg.AlmostEqual(q.Z, p.Z, tol) &&
		linalg.AlmostEqual(q.R, p.R, tol)
}

func (q Quaternion[T]) String() string {
	return fmt.Sprintf("(x=%g y=%g z=%g r=%g)", q.X, q.Y, q.Z, q.R)
}
