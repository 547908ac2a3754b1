package spatialrot

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// EulerAngles are the Tait-Bryan angles of a 3-2-1 intrinsic rotation
// sequence: yaw about Z, then pitch about the rotated Y, then roll about the
// twice-rotated X. All angles are in radians. At pitch = ±pi/2 the sequence
// is gimbal locked and roll and yaw are no longer individually recoverable
// from the rotation they describe.
type EulerAngles struct {
	Roll  float64 `json:"roll"`  // phi, about the X axis
	Pitch float64 `json:"pitch"` // theta, about the Y axis
	Yaw   float64 `json:"yaw"`   // psi, about the Z axis
}

// NewEulerAngles creates an empty EulerAngles struct.
func NewEulerAngles() *EulerAngles {
	return &EulerAngles{Roll: 0, Pitch: 0, Yaw: 0}
}

// EulerAngles returns orientation in Euler angle representation.
func (ea *EulerAngles) EulerAngles() *EulerAngles {
	return ea
}

// Quaternion returns orientation in quaternion representation, combining the
// half-angle sines and cosines of the three angles.
func (ea *EulerAngles) Quaternion() quat.Number {
	cosRoll2 := math.Cos(ea.Roll / 2)
	cosPitch2 := math.Cos(ea.Pitch / 2)
	cosYaw2 := math.Cos(ea.Yaw / 2)
	sinRoll2 := math.Sin(ea.Roll / 2)
	sinPitch2 := math.Sin(ea.Pitch / 2)
	sinYaw2 := math.Sin(ea.Yaw / 2)

	return quat.Number{
		Real: cosRoll2*cosPitch2*cosYaw2 + sinRoll2*sinPitch2*sinYaw2,
		Imag: sinRoll2*cosPitch2*cosYaw2 - cosRoll2*sinPitch2*sinYaw2,
		Jmag: cosRoll2*sinPitch2*cosYaw2 + sinRoll2*cosPitch2*sinYaw2,
		Kmag: cosRoll2*cosPitch2*sinYaw2 - sinRoll2*sinPitch2*cosYaw2,
	}
}

// AxisAngles returns the orientation in axis angle representation.
func (ea *EulerAngles) AxisAngles() *R4AA {
	return QuatToR4AA(ea.Quaternion())
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (ea *EulerAngles) RotationMatrix() *RotationMatrix {
	return QuatToRotationMatrix(ea.Quaternion())
}
