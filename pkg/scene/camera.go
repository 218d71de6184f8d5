package scene

import "github.com/Faultbox/asciiray/pkg/mathf"

// Camera is a perspective camera. Rotation is rebuilt from Yaw/Pitch
// after every input event via Rebuild -- roll is not represented.
type Camera struct {
	Position mathf.Vec3
	Rotation mathf.Mat4 // orthonormal; matrot = Rx(pitch) * Ry(yaw)

	FOV    float32 // degrees
	Aspect float32
	Near   float32
	Far    float32

	Yaw   float32
	Pitch float32

	MoveSpeed float32
}

// NewCamera creates a camera at the origin looking down -Z with the given
// projection parameters. Near must be > 0 and Far must be > Near; callers
// that violate this will get a degenerate projection at draw time (see
// mathf.Perspective).
func NewCamera(fovDeg, aspect, near, far float32) *Camera {
	c := &Camera{
		FOV:       fovDeg,
		Aspect:    aspect,
		Near:      near,
		Far:       far,
		MoveSpeed: 1.0,
	}
	c.Rebuild()
	return c
}

// Rebuild recomputes Rotation from Yaw and Pitch. Callers must invoke this
// after mutating Yaw/Pitch directly; SetYawPitch does it for you.
func (c *Camera) Rebuild() {
	c.Rotation = mathf.CameraRotation(c.Yaw, c.Pitch)
}

// SetYawPitch sets Yaw and Pitch and rebuilds Rotation.
func (c *Camera) SetYawPitch(yaw, pitch float32) {
	c.Yaw = yaw
	c.Pitch = pitch
	c.Rebuild()
}

// ViewMatrix returns V = matrot * translate(-position).
func (c *Camera) ViewMatrix() mathf.Mat4 {
	return c.Rotation.Mul(mathf.Translate(mathf.Vec3{X: -c.Position.X, Y: -c.Position.Y, Z: -c.Position.Z}))
}

// ProjectionMatrix returns P = projection(near, far, fov, aspect).
func (c *Camera) ProjectionMatrix() (mathf.Mat4, error) {
	return mathf.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// ViewProjectionMatrix returns VP = P * V.
func (c *Camera) ViewProjectionMatrix() (mathf.Mat4, error) {
	p, err := c.ProjectionMatrix()
	if err != nil {
		return mathf.Mat4{}, err
	}
	return p.Mul(c.ViewMatrix()), nil
}
