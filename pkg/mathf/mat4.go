package mathf

import (
	"errors"
	"math"
)

// Mat4 is a row-major 4x4 matrix: Mat4[row][col]. Vectors are column
// vectors and matrices act on the left: p' = M * p.
type Mat4 [4][4]float32

// ErrDegenerateProjection is returned by Perspective when near == far,
// which makes the projection matrix undefined (division by zero).
var ErrDegenerateProjection = errors.New("mathf: near and far planes are equal")

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math.Pi / 180
}

// Perspective builds the right-handed, looking-down-negative-Z projection
// matrix described in the design: f = 1/tan(fovDeg/2), with fovDeg the
// full vertical field of view in degrees.
func Perspective(fovDeg, aspect, near, far float32) (Mat4, error) {
	if near == far {
		return Mat4{}, ErrDegenerateProjection
	}
	f := 1 / float32(math.Tan(float64(DegToRad(fovDeg))/2))
	m := Mat4{}
	m[0][0] = f / aspect
	m[1][1] = f
	m[2][2] = (far + near) / (near - far)
	m[2][3] = 2 * far * near / (near - far)
	m[3][2] = -1
	m[3][3] = 0
	return m, nil
}

// Translate returns a translation matrix for v.
func Translate(v Vec3) Mat4 {
	m := Identity4()
	m[0][3] = v.X
	m[1][3] = v.Y
	m[2][3] = v.Z
	return m
}

// ScaleXYZ returns a non-uniform scale matrix.
func ScaleXYZ(v Vec3) Mat4 {
	m := Identity4()
	m[0][0] = v.X
	m[1][1] = v.Y
	m[2][2] = v.Z
	return m
}

// RotateX returns a rotation matrix around the X axis, built with the
// negated angle (the design's clockwise-from-+X convention): callers pass
// the raw angle they were given and the sign flip happens here.
func RotateX(theta float32) Mat4 {
	c := float32(math.Cos(float64(-theta)))
	s := float32(math.Sin(float64(-theta)))
	m := Identity4()
	m[1][1], m[1][2] = c, -s
	m[2][1], m[2][2] = s, c
	return m
}

// RotateY returns a rotation matrix around the Y axis, negated-angle
// convention (see RotateX).
func RotateY(theta float32) Mat4 {
	c := float32(math.Cos(float64(-theta)))
	s := float32(math.Sin(float64(-theta)))
	m := Identity4()
	m[0][0], m[0][2] = c, s
	m[2][0], m[2][2] = -s, c
	return m
}

// RotateZ returns a rotation matrix around the Z axis, negated-angle
// convention (see RotateX).
func RotateZ(theta float32) Mat4 {
	c := float32(math.Cos(float64(-theta)))
	s := float32(math.Sin(float64(-theta)))
	m := Identity4()
	m[0][0], m[0][1] = c, -s
	m[1][0], m[1][1] = s, c
	return m
}

// Mul returns m * other.
func (m Mat4) Mul(other Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[i][k] * other[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// MulVec4 returns m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	arr := [4]float32{v.X, v.Y, v.Z, v.W}
	var out [4]float32
	for i := 0; i < 4; i++ {
		var sum float32
		for j := 0; j < 4; j++ {
			sum += m[i][j] * arr[j]
		}
		out[i] = sum
	}
	return Vec4{out[0], out[1], out[2], out[3]}
}

// TransformPoint transforms a point (implicit w=1) and returns xyz/w.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	v := m.MulVec4(Vec4{p.X, p.Y, p.Z, 1})
	if v.W != 0 && v.W != 1 {
		return Vec3{v.X / v.W, v.Y / v.W, v.Z / v.W}
	}
	return Vec3{v.X, v.Y, v.Z}
}

// Upper3 extracts the upper-left 3x3 submatrix.
func (m Mat4) Upper3() Mat3 {
	return Mat3{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// CameraRotation builds the camera's orthonormal rotation matrix
// matrot = Rx(pitch) * Ry(yaw), per the fixed composition order the input
// layer relies on: yaw is applied first, then pitch.
func CameraRotation(yaw, pitch float32) Mat4 {
	return RotateX(pitch).Mul(RotateY(yaw))
}
