package spatialrot

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// AngularVelocity contains angular velocity in rad/s across x/y/z axes. The
// functions below differentiate an orientation *change* over a time
// difference; integrating rates back into an attitude belongs to an external
// estimator, not here.
type AngularVelocity r3.Vector

// R3ToAngVel converts an r3 vector to an angular velocity.
func R3ToAngVel(vec r3.Vector) *AngularVelocity {
	return &AngularVelocity{X: vec.X, Y: vec.Y, Z: vec.Z}
}

// OrientationToAngularVel calculates an angular velocity based on an
// orientation change over a time difference.
func OrientationToAngularVel(diff Orientation, dt float64) *AngularVelocity {
	axA := diff.AxisAngles()
	return &AngularVelocity{
		X: axA.RX * axA.Theta / dt,
		Y: axA.RY * axA.Theta / dt,
		Z: axA.RZ * axA.Theta / dt,
	}
}

// QuatToAngVel calculates an angular velocity based on an orientation change
// expressed as a quaternion over a time difference. The change is assumed to
// stay within a half turn, where the packed axis angle form is exact.
func QuatToAngVel(diffQ quat.Number, dt float64) *AngularVelocity {
	aa := QuatToR3AA(diffQ)
	return R3ToAngVel(aa.Mul(1 / dt))
}

// EulerToAngVel calculates an angular velocity based on an orientation change
// expressed as Euler angles over a time difference, via the 3-2-1 kinematic
// mapping from Euler rates to body rates.
func EulerToAngVel(diffEu EulerAngles, dt float64) *AngularVelocity {
	return &AngularVelocity{
		X: diffEu.Roll/dt - math.Sin(diffEu.Pitch)*diffEu.Yaw/dt,
		Y: math.Cos(diffEu.Roll)*diffEu.Pitch/dt + math.Cos(diffEu.Pitch)*math.Sin(diffEu.Roll)*diffEu.Yaw/dt,
		Z: -math.Sin(diffEu.Roll)*diffEu.Pitch/dt + math.Cos(diffEu.Pitch)*math.Cos(diffEu.Roll)*diffEu.Yaw/dt,
	}
}

// RotMatToAngVel calculates an angular velocity based on an orientation
// change expressed as a rotation matrix over a time difference.
func RotMatToAngVel(diffRm RotationMatrix, dt float64) *AngularVelocity {
	return OrientationToAngularVel(&diffRm, dt)
}
