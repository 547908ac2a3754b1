package spatialrot

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

func vectorAlmostEqual(t *testing.T, v, expected r3.Vector) {
	t.Helper()
	test.That(t, v.X, test.ShouldAlmostEqual, expected.X, 1e-6)
	test.That(t, v.Y, test.ShouldAlmostEqual, expected.Y, 1e-6)
	test.That(t, v.Z, test.ShouldAlmostEqual, expected.Z, 1e-6)
}

func TestIdentityLaws(t *testing.T) {
	identity := NewQuaternion().Quaternion()
	test.That(t, quat.Mul(q45x, identity), test.ShouldResemble, q45x)
	test.That(t, quat.Mul(identity, q45x), test.ShouldResemble, q45x)
	test.That(t, quat.Inv(identity), test.ShouldResemble, identity)

	v := r3.Vector{X: 1, Y: 0, Z: 0}
	test.That(t, RotateVector(identity, v), test.ShouldResemble, v)
	v = r3.Vector{X: -2, Y: 0.5, Z: 7}
	vectorAlmostEqual(t, RotateVector(identity, v), v)
}

func TestHamiltonProduct(t *testing.T) {
	qz90 := (&R4AA{math.Pi / 2, 0, 0, 1}).ToQuat()
	qx90 := (&R4AA{math.Pi / 2, 1, 0, 0}).ToQuat()

	// two quarter turns about z make a half turn
	qz180 := quat.Mul(qz90, qz90)
	test.That(t, QuaternionAlmostEqual(qz180, quat.Number{Kmag: 1}, 1e-6), test.ShouldBeTrue)

	// composition about different axes does not commute
	test.That(t, QuaternionAlmostEqual(quat.Mul(qx90, qz90), quat.Mul(qz90, qx90), 1e-6), test.ShouldBeFalse)

	// q2 * q1 applies q1 first: z takes x to y, then x takes y to z
	composed := quat.Mul(qx90, qz90)
	vectorAlmostEqual(t, RotateVector(composed, r3.Vector{X: 1}), r3.Vector{Z: 1})

	// associativity
	q1, q2, q3 := q45x, qz90, (&EulerAngles{Roll: 0.2, Pitch: 0.3, Yaw: 0.4}).Quaternion()
	left := quat.Mul(quat.Mul(q1, q2), q3)
	right := quat.Mul(q1, quat.Mul(q2, q3))
	test.That(t, QuaternionAlmostEqual(left, right, 1e-10), test.ShouldBeTrue)
}

func TestRotateVector(t *testing.T) {
	// identity conjugation returns the input unchanged
	vectorAlmostEqual(t, RotateVector(quat.Number{Real: 1}, r3.Vector{X: 1}), r3.Vector{X: 1})

	// a 90 degree rotation about z takes x to y
	qz90 := (&R4AA{math.Pi / 2, 0, 0, 1}).ToQuat()
	test.That(t, qz90.Real, test.ShouldAlmostEqual, math.Cos(math.Pi/4), 1e-6)
	test.That(t, qz90.Kmag, test.ShouldAlmostEqual, math.Sin(math.Pi/4), 1e-6)
	test.That(t, qz90.Imag, test.ShouldAlmostEqual, 0)
	test.That(t, qz90.Jmag, test.ShouldAlmostEqual, 0)
	vectorAlmostEqual(t, RotateVector(qz90, r3.Vector{X: 1}), r3.Vector{Y: 1})

	// rotation preserves length
	v := r3.Vector{X: 1, Y: -2, Z: 0.5}
	test.That(t, RotateVector(q45x, v).Norm(), test.ShouldAlmostEqual, v.Norm(), 1e-10)

	// a non-unit quaternion still represents the same rotation
	vectorAlmostEqual(t, RotateVector(quat.Scale(3, q45x), v), RotateVector(q45x, v))
}

func TestRotateVectorInverse(t *testing.T) {
	q := (&EulerAngles{Roll: 0.2, Pitch: 0.3, Yaw: 0.4}).Quaternion()
	v := r3.Vector{X: 1, Y: 2, Z: 3}

	// the inverse rotation undoes the rotation
	vectorAlmostEqual(t, RotateVectorInverse(q, RotateVector(q, v)), v)
	vectorAlmostEqual(t, RotateVector(q, RotateVectorInverse(q, v)), v)

	// rotating by the inverted quaternion is the inverse rotation
	vectorAlmostEqual(t, RotateVector(quat.Inv(q), v), RotateVectorInverse(q, v))
}

func TestZeroQuaternionUndefined(t *testing.T) {
	// inverting the zero quaternion is undefined; the division artifact
	// propagates instead of being guarded
	res := RotateVector(quat.Number{}, r3.Vector{X: 1})
	test.That(t, math.IsNaN(res.X), test.ShouldBeTrue)
}

func TestDerivatives(t *testing.T) {
	zeroRate := r3.Vector{}
	test.That(t, DerivativeBody(q45x, zeroRate), test.ShouldResemble, quat.Number{})
	test.That(t, DerivativeReference(q45x, zeroRate), test.ShouldResemble, quat.Number{})

	w := r3.Vector{X: 0.1, Y: -0.2, Z: 0.3}

	// for the identity orientation the two frames coincide
	identity := quat.Number{Real: 1}
	expected := quat.Number{Imag: 0.5 * w.X, Jmag: 0.5 * w.Y, Kmag: 0.5 * w.Z}
	test.That(t, DerivativeBody(identity, w), test.ShouldResemble, expected)
	test.That(t, DerivativeReference(identity, w), test.ShouldResemble, expected)

	// a body rate and the same rate rotated into the reference frame
	// describe the same derivative through the two variants
	q := (&R4AA{math.Pi / 3, 0, 0, 1}).ToQuat()
	fromBody := DerivativeBody(q, w)
	fromReference := DerivativeReference(q, RotateVector(q, w))
	test.That(t, QuaternionAlmostEqual(fromBody, fromReference, 1e-10), test.ShouldBeTrue)

	// mixing up the frame of w gives a different, wrong derivative
	test.That(t, QuaternionAlmostEqual(DerivativeBody(q, w), DerivativeReference(q, w), 1e-6), test.ShouldBeFalse)

	// the derivative magnitude is half the rate magnitude for unit q
	d := DerivativeBody(q, w)
	test.That(t, quat.Abs(d), test.ShouldAlmostEqual, 0.5*w.Norm(), 1e-10)
}

func TestQuaternionFromColumn(t *testing.T) {
	col := mat.NewVecDense(4, []float64{q45x.Real, q45x.Imag, q45x.Jmag, q45x.Kmag})
	q, err := QuaternionFromColumn(col)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, q.Quaternion(), test.ShouldResemble, q45x)

	_, err = QuaternionFromColumn(mat.NewVecDense(3, []float64{1, 0, 0}))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestNormalize(t *testing.T) {
	scaled := quat.Scale(3, q45x)
	normed := Normalize(scaled)
	test.That(t, QuaternionAlmostEqual(normed, q45x, 1e-10), test.ShouldBeTrue)
	test.That(t, quat.Abs(normed), test.ShouldAlmostEqual, 1, 1e-10)

	// already-unit values pass through untouched
	test.That(t, Normalize(q45x), test.ShouldResemble, q45x)

	// the zero quaternion normalizes to the identity
	test.That(t, Normalize(quat.Number{}), test.ShouldResemble, quat.Number{Real: 1})
}

func TestFlip(t *testing.T) {
	flipped := Flip(q45x)
	test.That(t, flipped.Real, test.ShouldAlmostEqual, -q45x.Real)
	test.That(t, QuaternionAlmostEqual(q45x, flipped, 1e-10), test.ShouldBeTrue)
	test.That(t, quatAlmostEqual(q45x, flipped, 1e-10), test.ShouldBeFalse)

	// flipping does not change the rotation a quaternion performs
	v := r3.Vector{X: 1, Y: 2, Z: 3}
	vectorAlmostEqual(t, RotateVector(flipped, v), RotateVector(q45x, v))
}
