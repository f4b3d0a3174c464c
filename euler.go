package rotation

import (
	"math"

	"go.viam.com/rotation/linalg"
)

// EulerAngles are three rotation angles about the fixed reference axes,
// applied in the order x, then y, then z. All angles are radians.
type EulerAngles[T linalg.Float] struct {
	RX T `json:"rx"`
	RY T `json:"ry"`
	RZ T `json:"rz"`
}

// NewFromEulerAngles returns the unit quaternion rotating by rx radians
// about the x axis, then ry about the y axis, then rz about the z axis.
// All three axes are the fixed reference axes, not the rotated ones.
func NewFromEulerAngles[T linalg.Float](rx, ry, rz T) Quaternion[T] {
	qx := NewFromAxisAngle(linalg.Vec3[T]{X: 1}, rx)
	qy := NewFromAxisAngle(linalg.Vec3[T]{Y: 1}, ry)
	qz := NewFromAxisAngle(linalg.Vec3[T]{Z: 1}, rz)
	// x is applied first, so it sits rightmost in the product
	return qz.Mul(qy).Mul(qx)
}

// EulerAngles returns the fixed-frame x, y, z rotation angles of q, with
// the middle angle in [-pi/2, pi/2]. Within a few machine epsilons of the
// gimbal lock orientations ry = ±pi/2, the x and z rotations act about the
// same axis; the combined angle is then reported as RX and RZ comes back
// zero. q must be a unit quaternion.
func (q Quaternion[T]) EulerAngles() EulerAngles[T] {
	m := q.RotationMatrixTranspose4()
	m00 := float64(m.At(0, 0))
	m01 := float64(m.At(0, 1))
	xy := T(math.Sqrt(m00*m00 + m01*m01))

	if xy > 8*linalg.Eps[T]() {
		return EulerAngles[T]{
			RX: T(math.Atan2(float64(m.At(1, 2)), float64(m.At(2, 2)))),
			RY: T(math.Atan2(float64(-m.At(0, 2)), float64(xy))),
			RZ: T(math.Atan2(m01, m00)),
		}
	}
	return EulerAngles[T]{
		RX: T(math.Atan2(float64(-m.At(2, 1)), float64(m.At(1, 1)))),
		RY: T(math.Atan2(float64(-m.At(0, 2)), float64(xy))),
		RZ: 0,
	}
}

// Quaternion returns the unit quaternion rotating by ea.
func (ea EulerAngles[T]) Quaternion() Quaternion[T] {
	return NewFromEulerAngles(ea.RX, ea.RY, ea.RZ)
}
