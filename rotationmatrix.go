package spatialrot

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"
)

// RotationMatrix is a 3x3 direction cosine matrix stored row major. For a
// rotation from frame b to frame n, v_n = R * v_b. Values produced by
// conversion from another representation are orthonormal with determinant 1;
// nothing enforces that for caller-supplied components.
type RotationMatrix struct {
	mat [9]float64
}

// NewRotationMatrix creates a rotation matrix from a row major slice of
// floats, which must have exactly 9 elements.
func NewRotationMatrix(m []float64) (*RotationMatrix, error) {
	if len(m) != 9 {
		return nil, errors.Errorf("input slice has %d elements, need exactly 9", len(m))
	}
	mat := [9]float64{m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8]}
	return &RotationMatrix{mat}, nil
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (rm *RotationMatrix) RotationMatrix() *RotationMatrix {
	return rm
}

// AxisAngles returns the orientation in axis angle representation.
func (rm *RotationMatrix) AxisAngles() *R4AA {
	return QuatToR4AA(rm.Quaternion())
}

// EulerAngles returns orientation in Euler angle representation.
func (rm *RotationMatrix) EulerAngles() *EulerAngles {
	return QuatToEulerAngles(rm.Quaternion())
}

// Quaternion returns orientation in quaternion representation. The extraction
// branches on the trace and then the largest diagonal element: near 180
// degree rotations the trace-only formula divides by a vanishing w, so each
// of the four branches roots the square root at whichever component is
// largest. The branch order is part of the contract; reordering the
// comparisons changes which sign of the quaternion comes back for degenerate
// inputs.
func (rm *RotationMatrix) Quaternion() quat.Number {
	var q quat.Number
	m := rm.mat

	// To avoid numerical instability, the branch with the largest associated
	// value (out of the trace and the three diagonal elements) is selected.
	switch tr := m[0] + m[4] + m[8]; {
	case tr > 0:
		s := math.Sqrt(1 + tr)
		q.Real = 0.5 * s
		s = 0.5 / s
		q.Imag = (m[7] - m[5]) * s
		q.Jmag = (m[2] - m[6]) * s
		q.Kmag = (m[3] - m[1]) * s
	case m[0] > m[4] && m[0] > m[8]:
		s := math.Sqrt(1 + m[0] - m[4] - m[8])
		q.Imag = 0.5 * s
		s = 0.5 / s
		q.Real = (m[7] - m[5]) * s
		q.Jmag = (m[3] + m[1]) * s
		q.Kmag = (m[2] + m[6]) * s
	case m[4] > m[8]:
		s := math.Sqrt(1 - m[0] + m[4] - m[8])
		q.Jmag = 0.5 * s
		s = 0.5 / s
		q.Real = (m[2] - m[6]) * s
		q.Imag = (m[3] + m[1]) * s
		q.Kmag = (m[7] + m[5]) * s
	default:
		s := math.Sqrt(1 - m[0] - m[4] + m[8])
		q.Kmag = 0.5 * s
		s = 0.5 / s
		q.Real = (m[3] - m[1]) * s
		q.Imag = (m[2] + m[6]) * s
		q.Jmag = (m[7] + m[5]) * s
	}
	return q
}

// At returns the value at the given row and column.
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat[3*row+col]
}

// Trace returns the sum of the diagonal elements.
func (rm *RotationMatrix) Trace() float64 {
	return rm.mat[0] + rm.mat[4] + rm.mat[8]
}

// Row returns a matrix row as a vector.
func (rm *RotationMatrix) Row(row int) r3.Vector {
	return r3.Vector{X: rm.mat[3*row], Y: rm.mat[3*row+1], Z: rm.mat[3*row+2]}
}

// Col returns a matrix column as a vector.
func (rm *RotationMatrix) Col(col int) r3.Vector {
	return r3.Vector{X: rm.mat[col], Y: rm.mat[3+col], Z: rm.mat[6+col]}
}

// Mul rotates a vector: v_n = R * v_b.
func (rm *RotationMatrix) Mul(v r3.Vector) r3.Vector {
	return r3.Vector{
		X: rm.mat[0]*v.X + rm.mat[1]*v.Y + rm.mat[2]*v.Z,
		Y: rm.mat[3]*v.X + rm.mat[4]*v.Y + rm.mat[5]*v.Z,
		Z: rm.mat[6]*v.X + rm.mat[7]*v.Y + rm.mat[8]*v.Z,
	}
}

// Transpose returns the transposed matrix. For an orthonormal rotation matrix
// this is the inverse rotation.
func (rm *RotationMatrix) Transpose() *RotationMatrix {
	m := rm.mat
	return &RotationMatrix{[9]float64{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}}
}

// MatMul returns the matrix product a*b, the rotation b followed by the
// rotation a.
func MatMul(a, b RotationMatrix) *RotationMatrix {
	var mat [9]float64
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			mat[3*row+col] = a.mat[3*row]*b.mat[col] +
				a.mat[3*row+1]*b.mat[3+col] +
				a.mat[3*row+2]*b.mat[6+col]
		}
	}
	return &RotationMatrix{mat}
}
