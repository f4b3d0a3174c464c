package rotation

import (
	"math"

	"github.com/pkg/errors"

	"go.viam.com/rotation/linalg"
)

// ErrUndefinedAxis is returned by Axis when the rotation angle is zero and
// every direction is equally valid as the axis.
var ErrUndefinedAxis = errors.New("rotation axis undefined for quaternion with zero imaginary part")

// AxisAngle represents a rotation by Theta radians about the axis
// (RX, RY, RZ), which should be a unit vector.
type AxisAngle[T linalg.Float] struct {
	Theta T `json:"th"`
	RX    T `json:"x"`
	RY    T `json:"y"`
	RZ    T `json:"z"`
}

// NewFromAxisAngle returns the unit quaternion rotating by angle radians
// about axis. axis must be a unit vector and is not renormalized; pass an
// arbitrary vector through AxisAngle.Normalized first.
func NewFromAxisAngle[T linalg.Float](axis linalg.Vec3[T], angle T) Quaternion[T] {
	a := float64(angle) / 2
	sinA := math.Sin(a)
	return Quaternion[T]{
		X: axis.X * T(sinA),
		Y: axis.Y * T(sinA),
		Z: axis.Z * T(sinA),
		R: T(math.Cos(a)),
	}
}

// Angle returns the rotation angle of q in radians, in [0, 2*pi].
func (q Quaternion[T]) Angle() T {
	return T(2 * math.Atan2(float64(q.Imaginary().Norm()), float64(q.R)))
}

// Axis returns the unit rotation axis of q. A quaternion whose imaginary
// part has zero norm has no defined axis; the +z axis is returned along
// with ErrUndefinedAxis so the caller decides whether the fallback is
// acceptable.
func (q Quaternion[T]) Axis() (linalg.Vec3[T], error) {
	i := q.Imaginary()
	// the squared norm underflows to zero before the components do, and a
	// zero squared norm makes Normalize return the zero vector
	if i.Norm2() == 0 {
		return linalg.Vec3[T]{Z: 1}, ErrUndefinedAxis
	}
	return i.Normalize(), nil
}

// AxisAngle returns the rotation of q as an angle about a unit axis. When
// the angle is zero the axis is reported as +z.
func (q Quaternion[T]) AxisAngle() AxisAngle[T] {
	axis, _ := q.Axis()
	return AxisAngle[T]{Theta: q.Angle(), RX: axis.X, RY: axis.Y, RZ: axis.Z}
}

// Axis returns the axis components of aa as a vector.
func (aa AxisAngle[T]) Axis() linalg.Vec3[T] {
	return linalg.Vec3[T]{X: aa.RX, Y: aa.RY, Z: aa.RZ}
}

// Normalized returns aa with its axis scaled to the unit sphere. An axis
// angle with a zero axis cannot be normalized.
func (aa AxisAngle[T]) Normalized() (AxisAngle[T], error) {
	axis := aa.Axis()
	if axis.Norm2() == 0 {
		return AxisAngle[T]{}, errors.New("cannot normalize an axis angle with a zero axis")
	}
	u := axis.Normalize()
	return AxisAngle[T]{Theta: aa.Theta, RX: u.X, RY: u.Y, RZ: u.Z}, nil
}

// Canonical returns aa with a non-negative angle, flipping the axis if the
// angle was negative. The returned value is the same rotation.
func (aa AxisAngle[T]) Canonical() AxisAngle[T] {
	if aa.Theta < 0 {
		return AxisAngle[T]{Theta: -aa.Theta, RX: -aa.RX, RY: -aa.RY, RZ: -aa.RZ}
	}
	return aa
}

// Quaternion returns the unit quaternion rotating by aa. The axis must be
// a unit vector.
func (aa AxisAngle[T]) Quaternion() Quaternion[T] {
	return NewFromAxisAngle(aa.Axis(), aa.Theta)
}
