package spatialrot

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// An orientation can be expressed by first specifying an axis, i.e. a line
// from the origin to a point on the unit sphere (rx, ry, rz), and a rotation
// theta about that axis. These four numbers can be used as-is (R4), or packed
// into R3 by scaling the axis by theta, giving a single vector whose norm is
// the angle and whose direction is the axis. The packed form folds the
// undefined-axis case at theta = 0 into the zero vector.

// R4AA represents an R4 axis angle.
type R4AA struct {
	Theta float64 `json:"th"`
	RX    float64 `json:"x"`
	RY    float64 `json:"y"`
	RZ    float64 `json:"z"`
}

// NewR4AA creates an empty R4AA struct, the identity rotation about the
// conventional +Z axis.
func NewR4AA() *R4AA {
	return &R4AA{Theta: 0, RX: 0, RY: 0, RZ: 1}
}

// AxisAngles returns the orientation in axis angle representation.
func (r4 *R4AA) AxisAngles() *R4AA {
	return r4
}

// Quaternion returns orientation in quaternion representation.
func (r4 *R4AA) Quaternion() quat.Number {
	return r4.ToQuat()
}

// EulerAngles returns orientation in Euler angle representation.
func (r4 *R4AA) EulerAngles() *EulerAngles {
	return QuatToEulerAngles(r4.Quaternion())
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (r4 *R4AA) RotationMatrix() *RotationMatrix {
	return QuatToRotationMatrix(r4.Quaternion())
}

// ToR3 converts an R4 axis angle to its packed R3 form.
func (r4 *R4AA) ToR3() r3.Vector {
	return r3.Vector{X: r4.RX * r4.Theta, Y: r4.RY * r4.Theta, Z: r4.RZ * r4.Theta}
}

// ToQuat converts an R4 axis angle to a unit quaternion. Angles below the
// epsilon threshold return the exact identity instead of normalizing an axis
// of numerical noise.
func (r4 *R4AA) ToQuat() quat.Number {
	if math.Abs(r4.Theta) < defaultAngleEpsilon {
		return quat.Number{Real: 1}
	}
	// Work on a copy so the axis of the receiver is left as given.
	unit := *r4
	unit.Normalize()
	sinA := math.Sin(unit.Theta / 2)
	return quat.Number{
		Real: math.Cos(unit.Theta / 2),
		Imag: unit.RX * sinA,
		Jmag: unit.RY * sinA,
		Kmag: unit.RZ * sinA,
	}
}

// Normalize scales the x, y, and z components of an R4 axis angle to be on
// the unit sphere.
func (r4 *R4AA) Normalize() {
	norm := math.Sqrt(r4.RX*r4.RX + r4.RY*r4.RY + r4.RZ*r4.RZ)
	if norm == 0.0 { // prevent division by 0
		panic("cannot normalize R4AA, divide by zero")
	}
	r4.RX /= norm
	r4.RY /= norm
	r4.RZ /= norm
}

// R3ToR4 converts a packed R3 axis angle to R4. Anything below the epsilon
// threshold maps to the identity.
func R3ToR4(aa r3.Vector) *R4AA {
	theta := aa.Norm()
	if theta < defaultAngleEpsilon {
		return NewR4AA()
	}
	return &R4AA{theta, aa.X / theta, aa.Y / theta, aa.Z / theta}
}
