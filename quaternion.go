package spatialrot

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/rotorlabs/spatialrot/utils"
)

// Rotation angles below this magnitude, in radians, collapse to the identity
// rather than dividing by a vanishing axis norm. A numerical-stability
// threshold, not a physical one.
const defaultAngleEpsilon = 1e-10

// Quaternion is an orientation in quaternion representation. The real part
// comes first, so the identity rotation is (1,0,0,0). Nothing here
// auto-normalizes: after long chains of multiplications or integration steps
// the caller should renormalize with Normalize to keep drift bounded.
type Quaternion quat.Number

// NewQuaternion returns a quaternion representing the identity rotation.
func NewQuaternion() *Quaternion {
	return &Quaternion{Real: 1}
}

// QuaternionFromColumn builds a quaternion from a 4x1 column vector laid out
// as (w, x, y, z). Any other length is an error.
func QuaternionFromColumn(v mat.Vector) (*Quaternion, error) {
	if v.Len() != 4 {
		return nil, errors.Errorf("quaternion column must have exactly 4 elements, got %d", v.Len())
	}
	return &Quaternion{v.AtVec(0), v.AtVec(1), v.AtVec(2), v.AtVec(3)}, nil
}

// Quaternion returns orientation in quaternion representation.
func (q *Quaternion) Quaternion() quat.Number {
	return quat.Number(*q)
}

// AxisAngles returns the orientation in axis angle representation.
func (q *Quaternion) AxisAngles() *R4AA {
	return QuatToR4AA(q.Quaternion())
}

// EulerAngles returns orientation in Euler angle representation.
func (q *Quaternion) EulerAngles() *EulerAngles {
	return QuatToEulerAngles(q.Quaternion())
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (q *Quaternion) RotationMatrix() *RotationMatrix {
	return QuatToRotationMatrix(q.Quaternion())
}

// Normalize returns the versor of q, the unit quaternion pointing the same
// way. The zero quaternion normalizes to the identity.
func Normalize(q quat.Number) quat.Number {
	length := math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
	if math.Abs(length-1.0) < 1e-10 {
		return q
	}
	if length == 0 {
		return quat.Number{Real: 1}
	}
	if length == math.Inf(1) {
		length = math.MaxFloat64
	}
	return quat.Number{Real: q.Real / length, Imag: q.Imag / length, Jmag: q.Jmag / length, Kmag: q.Kmag / length}
}

// Flip returns the antipodal quaternion. q and Flip(q) represent the same
// rotation; the double cover matters only when comparing raw components.
func Flip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}

// QuaternionAlmostEqual reports whether two quaternions represent
// approximately the same rotation, tolerating the double-cover sign
// ambiguity.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	return quatAlmostEqual(a, b, tol) || quatAlmostEqual(a, Flip(b), tol)
}

func quatAlmostEqual(a, b quat.Number, tol float64) bool {
	return math.Abs(a.Real-b.Real) < tol &&
		math.Abs(a.Imag-b.Imag) < tol &&
		math.Abs(a.Jmag-b.Jmag) < tol &&
		math.Abs(a.Kmag-b.Kmag) < tol
}

// RotateVector rotates v, expressed in the source frame of q, into the
// destination frame: the imaginary part of q * (0,v) * q^-1. quat.Inv divides
// the conjugate by the squared norm, so non-unit quaternions still rotate
// correctly; the zero quaternion propagates NaNs.
func RotateVector(q quat.Number, v r3.Vector) r3.Vector {
	res := quat.Mul(quat.Mul(q, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Inv(q))
	return r3.Vector{X: res.Imag, Y: res.Jmag, Z: res.Kmag}
}

// RotateVectorInverse applies the opposite rotation, taking v from the
// destination frame back to the source frame: q^-1 * (0,v) * q.
func RotateVectorInverse(q quat.Number, v r3.Vector) r3.Vector {
	res := quat.Mul(quat.Mul(quat.Inv(q), quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), q)
	return r3.Vector{X: res.Imag, Y: res.Jmag, Z: res.Kmag}
}

// DerivativeBody computes dq/dt of a rotation q for angular velocity w
// expressed in the rotated (body) frame: 0.5 * q * (0,w). The result is a
// rate of change, not a unit quaternion.
func DerivativeBody(q quat.Number, w r3.Vector) quat.Number {
	return quat.Scale(0.5, quat.Mul(q, quat.Number{Imag: w.X, Jmag: w.Y, Kmag: w.Z}))
}

// DerivativeReference computes dq/dt of a rotation q for angular velocity w
// expressed in the reference frame: 0.5 * (0,w) * q. The frame w is measured
// in picks the multiplication order; using the wrong variant yields a
// wrong-frame derivative with no other warning sign.
func DerivativeReference(q quat.Number, w r3.Vector) quat.Number {
	return quat.Scale(0.5, quat.Mul(quat.Number{Imag: w.X, Jmag: w.Y, Kmag: w.Z}, q))
}

// QuatToR4AA converts a quaternion to an R4 axis angle. Near the identity the
// axis is undefined; below the epsilon threshold the conventional +Z axis
// with a zero angle is returned.
func QuatToR4AA(q quat.Number) *R4AA {
	packed := QuatToR3AA(q)
	theta := packed.Norm()
	if theta < defaultAngleEpsilon {
		return NewR4AA()
	}
	return &R4AA{theta, packed.X / theta, packed.Y / theta, packed.Z / theta}
}

// QuatToR3AA converts a quaternion to the packed R3 axis angle form: a vector
// whose direction is the rotation axis and whose norm is the angle, wrapped
// into (-pi, pi]. The zero vector encodes the identity rotation.
func QuatToR3AA(q quat.Number) r3.Vector {
	axisMagnitude := math.Sqrt(q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
	if axisMagnitude < defaultAngleEpsilon {
		return r3.Vector{}
	}
	theta := utils.WrapToPi(2 * math.Atan2(axisMagnitude, q.Real))
	return r3.Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}.Mul(theta / axisMagnitude)
}

// QuatToEulerAngles converts a quaternion to the 3-2-1 intrinsic Tait-Bryan
// angles. At gimbal lock (pitch = ±pi/2) roll and yaw describe the same
// degree of freedom; the extraction stays defined but only their combination
// is meaningful there.
func QuatToEulerAngles(q quat.Number) *EulerAngles {
	sinRollCosPitch := 2 * (q.Real*q.Imag + q.Jmag*q.Kmag)
	cosRollCosPitch := 1 - 2*(q.Imag*q.Imag+q.Jmag*q.Jmag)

	sinPitch := 2 * (q.Real*q.Jmag - q.Kmag*q.Imag)
	var pitch float64
	if math.Abs(sinPitch) >= 1 {
		// gimbal lock; clamp instead of letting Asin go NaN
		pitch = math.Copysign(math.Pi/2, sinPitch)
	} else {
		pitch = math.Asin(sinPitch)
	}

	sinYawCosPitch := 2 * (q.Real*q.Kmag + q.Imag*q.Jmag)
	cosYawCosPitch := 1 - 2*(q.Jmag*q.Jmag+q.Kmag*q.Kmag)

	return &EulerAngles{
		Roll:  math.Atan2(sinRollCosPitch, cosRollCosPitch),
		Pitch: pitch,
		Yaw:   math.Atan2(sinYawCosPitch, cosYawCosPitch),
	}
}

// QuatToRotationMatrix converts a quaternion to a rotation matrix through the
// standard bilinear expansion. The input is assumed to be a unit rotation.
func QuatToRotationMatrix(q quat.Number) *RotationMatrix {
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	m := [9]float64{
		1 - 2*y*y - 2*z*z, 2*x*y - 2*z*w, 2*x*z + 2*y*w,
		2*x*y + 2*z*w, 1 - 2*x*x - 2*z*z, 2*y*z - 2*x*w,
		2*x*z - 2*y*w, 2*y*z + 2*x*w, 1 - 2*x*x - 2*y*y,
	}
	return &RotationMatrix{m}
}
