package mathf

import "errors"

// Mat3 is a row-major 3x3 matrix, used to transform vertex normals.
type Mat3 [3][3]float32

// ErrSingularMatrix is returned by Inverse/InverseTranspose when the
// matrix has (near) zero determinant.
var ErrSingularMatrix = errors.New("mathf: matrix is singular")

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Determinant returns the matrix determinant.
func (m Mat3) Determinant() float32 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Transpose returns the transpose of m.
func (m Mat3) Transpose() Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[j][i] = m[i][j]
		}
	}
	return r
}

// Inverse returns the inverse of m, or ErrSingularMatrix if det is
// too close to zero to invert reliably.
func (m Mat3) Inverse() (Mat3, error) {
	det := m.Determinant()
	if det > -1e-8 && det < 1e-8 {
		return Mat3{}, ErrSingularMatrix
	}
	invDet := 1 / det

	var r Mat3
	r[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	r[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet
	r[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	r[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet
	r[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet
	r[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	r[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet
	r[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet
	r[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet
	return r, nil
}

// InverseTranspose returns the inverse-transpose of m, the correct
// transform for vertex normals under non-uniform scaling. Returns
// ErrSingularMatrix if m cannot be inverted.
func (m Mat3) InverseTranspose() (Mat3, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Mat3{}, err
	}
	return inv.Transpose(), nil
}

// MulVec3 returns m * v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}
