// Package spatialrot implements the algebra of rotations in 3D Euclidean
// space: unit quaternions, rotation matrices (DCMs), 3-2-1 Euler angles, and
// axis angles, with conversions between all of them.
//
// All rotations follow the right-hand rule and the Hamilton quaternion
// product convention. For a rotation q from frame b to frame n,
// v_n = q * (0, v_b) * q^-1, exactly as v_n = R * v_b for the equivalent
// rotation matrix. The product q2 * q1 is the intrinsic composition which
// applies q1 first, followed by q2.
//
// The quaternion is the canonical hub: every other representation converts
// through it. Values are plain data with no shared state; callers may copy
// them freely across goroutines.
package spatialrot

import (
	"gonum.org/v1/gonum/num/quat"
)

// Orientation is an interface used to express the different parameterizations
// of a rotation between two coordinate frames in 3D Euclidean space.
type Orientation interface {
	Quaternion() quat.Number
	AxisAngles() *R4AA
	EulerAngles() *EulerAngles
	RotationMatrix() *RotationMatrix
}

// NewZeroOrientation returns an orientation which signifies no rotation.
func NewZeroOrientation() Orientation {
	return &Quaternion{1, 0, 0, 0}
}

// OrientationAlmostEqual will return a bool describing whether 2 orientations
// represent approximately the same rotation.
func OrientationAlmostEqual(o1, o2 Orientation) bool {
	return QuaternionAlmostEqual(o1.Quaternion(), o2.Quaternion(), 1e-5)
}

// OrientationBetween returns the orientation representing the difference
// between the two given orientations: composed after o1, it yields o2.
// Inputs are assumed to be unit rotations.
func OrientationBetween(o1, o2 Orientation) Orientation {
	q := Quaternion(quat.Mul(o2.Quaternion(), quat.Conj(o1.Quaternion())))
	return &q
}

// OrientationInverse returns the orientation representing the opposite
// rotation. The input is assumed to be a unit rotation.
func OrientationInverse(o Orientation) Orientation {
	q := Quaternion(quat.Conj(o.Quaternion()))
	return &q
}
