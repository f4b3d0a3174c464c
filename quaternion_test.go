package rotation

import (
	"math"
	"testing"

	"go.viam.com/test"

	"go.viam.com/rotation/linalg"
)

// shared fixtures: a 45 degree rotation about x, a 90 degree rotation about
// z, and a 120 degree rotation about the (1,1,1) diagonal
var (
	q45x    = NewFromAxisAngle(linalg.Vec3[float64]{X: 1}, math.Pi/4)
	q90z    = NewFromAxisAngle(linalg.Vec3[float64]{Z: 1}, math.Pi/2)
	q120xyz = NewQuaternion(0.5, 0.5, 0.5, 0.5)
)

func TestNewQuaternion(t *testing.T) {
	q := NewQuaternion(1.0, 2, 3, 4)
	test.That(t, q.X, test.ShouldEqual, 1)
	test.That(t, q.Y, test.ShouldEqual, 2)
	test.That(t, q.Z, test.ShouldEqual, 3)
	test.That(t, q.R, test.ShouldEqual, 4)
	test.That(t, q.Imaginary(), test.ShouldResemble, linalg.Vec3[float64]{X: 1, Y: 2, Z: 3})
	test.That(t, q.Real(), test.ShouldEqual, 4)
	test.That(t, q.Vec4(), test.ShouldResemble, linalg.Vec4[float64]{X: 1, Y: 2, Z: 3, W: 4})
	test.That(t, q.String(), test.ShouldEqual, "(x=1 y=2 z=3 r=4)")

	for i, want := range []float64{1, 2, 3, 4} {
		test.That(t, q.At(i), test.ShouldEqual, want)
	}
	test.That(t, func() { q.At(4) }, test.ShouldPanic)
	test.That(t, func() { q.At(-1) }, test.ShouldPanic)

	test.That(t, NewFromVec3(linalg.Vec3[float64]{X: 1, Y: 2, Z: 3}), test.ShouldResemble, NewQuaternion(1.0, 2, 3, 0))
	test.That(t, NewFromVec4(linalg.Vec4[float64]{X: 1, Y: 2, Z: 3, W: 4}), test.ShouldResemble, q)
}

func TestZeroRotation(t *testing.T) {
	zero := NewZeroRotation[float64]()
	test.That(t, zero, test.ShouldResemble, NewQuaternion(0.0, 0, 0, 1))
	test.That(t, zero.Angle(), test.ShouldEqual, 0)
	test.That(t, zero.RotationMatrixTranspose(), test.ShouldResemble, linalg.Ident3[float64]())
	test.That(t, zero.RotationMatrixTranspose4(), test.ShouldResemble, linalg.Ident4[float64]())

	v := linalg.Vec3[float64]{X: 1, Y: -2, Z: 3}
	test.That(t, zero.Rotate(v), test.ShouldResemble, v)
}

func TestNorm(t *testing.T) {
	test.That(t, q45x.Norm(), test.ShouldAlmostEqual, 1)
	test.That(t, q45x.Norm2(), test.ShouldAlmostEqual, 1)
	test.That(t, NewQuaternion(1.0, 2, 3, 4).Norm2(), test.ShouldEqual, 30)

	big := q45x.Scale(3)
	test.That(t, big.Norm(), test.ShouldAlmostEqual, 3)
	test.That(t, big.Norm2(), test.ShouldAlmostEqual, 9)
	test.That(t, big.Normalize().AlmostEqual(q45x, 1e-15), test.ShouldBeTrue)

	test.That(t, Quaternion[float64]{}.Normalize(), test.ShouldResemble, Quaternion[float64]{})
}

func TestMul(t *testing.T) {
	i := NewQuaternion(1.0, 0, 0, 0)
	j := NewQuaternion(0.0, 1, 0, 0)
	k := NewQuaternion(0.0, 0, 1, 0)
	one := NewZeroRotation[float64]()

	// Hamilton table: i*j = k, j*k = i, k*i = j, and i*i = -1
	test.That(t, i.Mul(j), test.ShouldResemble, k)
	test.That(t, j.Mul(k), test.ShouldResemble, i)
	test.That(t, k.Mul(i), test.ShouldResemble, j)
	test.That(t, j.Mul(i), test.ShouldResemble, k.Flip())
	test.That(t, i.Mul(i), test.ShouldResemble, one.Flip())

	test.That(t, q45x.Mul(one), test.ShouldResemble, q45x)
	test.That(t, one.Mul(q45x), test.ShouldResemble, q45x)
}

func TestCompositionOrder(t *testing.T) {
	// rotating by q1 first and q2 second is the single rotation q2 * q1
	qs := []Quaternion[float64]{q45x, q90z, q120xyz}
	vs := []linalg.Vec3[float64]{{X: 1}, {X: 0.5, Y: -2, Z: 11}, {Z: 1}}
	for _, q1 := range qs {
		for _, q2 := range qs {
			combined := q2.Mul(q1)
			for _, v := range vs {
				stepwise := q2.Rotate(q1.Rotate(v))
				atOnce := combined.Rotate(v)
				test.That(t, stepwise.X, test.ShouldAlmostEqual, atOnce.X)
				test.That(t, stepwise.Y, test.ShouldAlmostEqual, atOnce.Y)
				test.That(t, stepwise.Z, test.ShouldAlmostEqual, atOnce.Z)
			}
		}
	}
}

func TestRotate(t *testing.T) {
	// 90 degrees about z takes +x to +y
	got := q90z.Rotate(linalg.Vec3[float64]{X: 1})
	test.That(t, got.X, test.ShouldAlmostEqual, 0)
	test.That(t, got.Y, test.ShouldAlmostEqual, 1)
	test.That(t, got.Z, test.ShouldAlmostEqual, 0)

	qs := []Quaternion[float64]{q45x, q90z, q120xyz, q90z.Mul(q45x)}
	vs := []linalg.Vec3[float64]{{X: 1}, {Y: 1}, {Z: 1}, {X: 1.5, Y: -2.5, Z: 3.5}}
	for _, q := range qs {
		r := q.RotationMatrixTranspose().Transpose()
		for _, v := range vs {
			direct := q.Rotate(v)
			byMatrix := r.MulVec(v)
			// the sandwich product q * v * q^-1 with v embedded as a pure
			// quaternion, which Rotate is a shortcut for
			bySandwich := q.Mul(NewFromVec3(v)).Mul(q.Inverse()).Imaginary()

			test.That(t, direct.X, test.ShouldAlmostEqual, byMatrix.X)
			test.That(t, direct.Y, test.ShouldAlmostEqual, byMatrix.Y)
			test.That(t, direct.Z, test.ShouldAlmostEqual, byMatrix.Z)
			test.That(t, direct.X, test.ShouldAlmostEqual, bySandwich.X)
			test.That(t, direct.Y, test.ShouldAlmostEqual, bySandwich.Y)
			test.That(t, direct.Z, test.ShouldAlmostEqual, bySandwich.Z)
		}
	}
}

func TestInverse(t *testing.T) {
	one := NewZeroRotation[float64]()
	for _, q := range []Quaternion[float64]{q45x, q90z, q120xyz} {
		test.That(t, q.Mul(q.Inverse()).AlmostEqual(one, 1e-14), test.ShouldBeTrue)
		test.That(t, q.Inverse().Mul(q).AlmostEqual(one, 1e-14), test.ShouldBeTrue)
		// for unit quaternions the conjugate is the inverse
		test.That(t, q.Conjugate().AlmostEqual(q.Inverse(), 1e-14), test.ShouldBeTrue)
	}

	// non-unit quaternions still invert, but the conjugate no longer matches
	q := q45x.Scale(2)
	test.That(t, q.Mul(q.Inverse()).AlmostEqual(one, 1e-14), test.ShouldBeTrue)
	test.That(t, q.Conjugate().AlmostEqual(q.Inverse(), 1e-2), test.ShouldBeFalse)
}

func TestConjugate(t *testing.T) {
	test.That(t, NewQuaternion(1.0, 2, 3, 4).Conjugate(), test.ShouldResemble, NewQuaternion(-1.0, -2, -3, 4))

	// conjugating undoes the rotation
	v := linalg.Vec3[float64]{X: 1.5, Y: -2.5, Z: 3.5}
	back := q120xyz.Conjugate().Rotate(q120xyz.Rotate(v))
	test.That(t, back.X, test.ShouldAlmostEqual, v.X)
	test.That(t, back.Y, test.ShouldAlmostEqual, v.Y)
	test.That(t, back.Z, test.ShouldAlmostEqual, v.Z)
}

func TestFlip(t *testing.T) {
	f := q45x.Flip()
	test.That(t, f.AlmostEqual(q45x, 1e-9), test.ShouldBeFalse)

	// -q is the same rotation as q
	v := linalg.Vec3[float64]{X: 1, Y: 2, Z: 3}
	got := f.Rotate(v)
	want := q45x.Rotate(v)
	test.That(t, got.X, test.ShouldAlmostEqual, want.X)
	test.That(t, got.Y, test.ShouldAlmostEqual, want.Y)
	test.That(t, got.Z, test.ShouldAlmostEqual, want.Z)
}

func TestAlmostEqual(t *testing.T) {
	test.That(t, q45x.AlmostEqual(q45x, 0), test.ShouldBeTrue)
	nudged := NewQuaternion(q45x.X+1e-7, q45x.Y, q45x.Z, q45x.R)
	test.That(t, q45x.AlmostEqual(nudged, 1e-6), test.ShouldBeTrue)
	test.That(t, q45x.AlmostEqual(nudged, 1e-8), test.ShouldBeFalse)
}

func TestFloat32(t *testing.T) {
	q1 := NewFromAxisAngle(linalg.Vec3[float32]{X: 1}, float32(math.Pi/4))
	q2 := NewFromAxisAngle(linalg.Vec3[float32]{Z: 1}, float32(math.Pi/2))
	one := NewZeroRotation[float32]()

	test.That(t, float64(q1.Norm()), test.ShouldAlmostEqual, 1, 1e-6)
	test.That(t, q1.Mul(q1.Inverse()).AlmostEqual(one, 1e-6), test.ShouldBeTrue)
	test.That(t, q1.Conjugate().AlmostEqual(q1.Inverse(), 1e-6), test.ShouldBeTrue)

	// 90 degrees about z takes +y to -x
	got := q2.Rotate(linalg.Vec3[float32]{Y: 1})
	test.That(t, float64(got.X), test.ShouldAlmostEqual, -1, 1e-6)
	test.That(t, float64(got.Y), test.ShouldAlmostEqual, 0, 1e-6)
	test.That(t, float64(got.Z), test.ShouldAlmostEqual, 0, 1e-6)
}
