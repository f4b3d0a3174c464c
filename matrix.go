package rotation

import (
	"math"

	"go.viam.com/rotation/linalg"
)

// NewFromRotationMatrix converts a rotation matrix to the unit quaternion
// representing the same rotation. m must be the standard column-vector
// matrix R with v' = R * v, the transpose of what RotationMatrixTranspose
// returns, and must be orthonormal with determinant +1; this is not
// checked. The result recovers the source quaternion up to sign.
func NewFromRotationMatrix[T linalg.Float](m linalg.Mat3[T]) Quaternion[T] {
	d0 := float64(m.At(0, 0))
	d1 := float64(m.At(1, 1))
	d2 := float64(m.At(2, 2))

	// 4x², 4y², 4z², 4r² from the trace; the largest picks the division
	// that stays numerically stable.
	xx := 1.0 + d0 - d1 - d2
	yy := 1.0 - d0 + d1 - d2
	zz := 1.0 - d0 - d1 + d2
	rr := 1.0 + d0 + d1 + d2

	largest := rr
	if xx > largest {
		largest = xx
	}
	if yy > largest {
		largest = yy
	}
	if zz > largest {
		largest = zz
	}

	var x, y, z, r float64
	switch largest {
	case rr:
		r4 := math.Sqrt(rr * 4)
		x = float64(m.At(2, 1)-m.At(1, 2)) / r4
		y = float64(m.At(0, 2)-m.At(2, 0)) / r4
		z = float64(m.At(1, 0)-m.At(0, 1)) / r4
		r = r4 / 4
	case xx:
		x4 := math.Sqrt(xx * 4)
		x = x4 / 4
		y = float64(m.At(0, 1)+m.At(1, 0)) / x4
		z = float64(m.At(0, 2)+m.At(2, 0)) / x4
		r = float64(m.At(2, 1)-m.At(1, 2)) / x4
	case yy:
		y4 := math.Sqrt(yy * 4)
		x = float64(m.At(0, 1)+m.At(1, 0)) / y4
		y = y4 / 4
		z = float64(m.At(1, 2)+m.At(2, 1)) / y4
		r = float64(m.At(0, 2)-m.At(2, 0)) / y4
	default:
		z4 := math.Sqrt(zz * 4)
		x = float64(m.At(0, 2)+m.At(2, 0)) / z4
		y = float64(m.At(1, 2)+m.At(2, 1)) / z4
		z = z4 / 4
		r = float64(m.At(1, 0)-m.At(0, 1)) / z4
	}
	return Quaternion[T]{X: T(x), Y: T(y), Z: T(z), R: T(r)}
}

// RotationMatrixTranspose returns the transposed rotation matrix of q,
// which rotates row vectors: v' = v * M. The standard column-vector matrix
// is its transpose. q must be a unit quaternion.
func (q Quaternion[T]) RotationMatrixTranspose() linalg.Mat3[T] {
	x2, y2, z2, r2 := q.X*q.X, q.Y*q.Y, q.Z*q.Z, q.R*q.R
	xy, yz, zx := q.X*q.Y, q.Y*q.Z, q.Z*q.X
	rx, ry, rz := q.R*q.X, q.R*q.Y, q.R*q.Z

	return linalg.Mat3[T]{
		r2 + x2 - y2 - z2, 2 * (xy + rz), 2 * (zx - ry),
		2 * (xy - rz), r2 - x2 + y2 - z2, 2 * (yz + rx),
		2 * (zx + ry), 2 * (yz - rx), r2 - x2 - y2 + z2,
	}
}

// RotationMatrixTranspose4 returns the transposed rotation matrix of q
// embedded in the upper-left block of an otherwise identity 4x4 matrix,
// for use with homogeneous coordinates. q must be a unit quaternion.
func (q Quaternion[T]) RotationMatrixTranspose4() linalg.Mat4[T] {
	return linalg.Mat4FromMat3(q.RotationMatrixTranspose())
}
