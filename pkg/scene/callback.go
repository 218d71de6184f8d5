package scene

import "github.com/Faultbox/asciiray/pkg/mathf"

// CallbackKind tags when a Command fires.
type CallbackKind int

const (
	// Startup callbacks fire only on the first frame (FrameCount == 0).
	Startup CallbackKind = iota
	// Continuous callbacks fire on every frame.
	Continuous
)

// Command is a per-frame scene mutation, replacing the raw function-
// pointer-plus-argv callbacks of the reference design with an exhaustive,
// typed set of operations a small interpreter can dispatch on.
type Command interface {
	// Apply mutates the target mesh in place. meshIndex must be a valid
	// index into d.Meshes; out-of-range indices are ignored.
	Apply(d *Display, meshIndex int)
}

// Rotate applies a rotation of AngleRad radians about the mesh's own center
// (center-of-rotation semantics, see Mesh.ApplyRelative). An Axis along X, Y
// or Z rotates around that axis; any other Axis is not used as a rotation
// axis, and RotateX, RotateY and RotateZ by AngleRad are applied together.
type Rotate struct {
	Axis     mathf.Vec3
	AngleRad float32
}

// Apply implements Command.
func (r Rotate) Apply(d *Display, meshIndex int) {
	if meshIndex < 0 || meshIndex >= len(d.Meshes) {
		return
	}
	var rot mathf.Mat4
	switch {
	case r.Axis.X != 0 && r.Axis.Y == 0 && r.Axis.Z == 0:
		rot = mathf.RotateX(r.AngleRad)
	case r.Axis.Y != 0 && r.Axis.X == 0 && r.Axis.Z == 0:
		rot = mathf.RotateY(r.AngleRad)
	case r.Axis.Z != 0 && r.Axis.X == 0 && r.Axis.Y == 0:
		rot = mathf.RotateZ(r.AngleRad)
	default:
		rot = mathf.RotateX(r.AngleRad).Mul(mathf.RotateY(r.AngleRad)).Mul(mathf.RotateZ(r.AngleRad))
	}
	_ = d.Meshes[meshIndex].ApplyRelative(rot)
}

// Translate moves a mesh by Delta in world space.
type Translate struct {
	Delta mathf.Vec3
}

// Apply implements Command.
func (t Translate) Apply(d *Display, meshIndex int) {
	if meshIndex < 0 || meshIndex >= len(d.Meshes) {
		return
	}
	_ = d.Meshes[meshIndex].ApplyAbsolute(mathf.Translate(t.Delta))
}

// MoveToward steps a mesh's center towards Dest by at most Step units per
// call, stopping (not overshooting) once within Step of the target.
type MoveToward struct {
	Dest mathf.Vec3
	Step float32
}

// Apply implements Command.
func (m MoveToward) Apply(d *Display, meshIndex int) {
	if meshIndex < 0 || meshIndex >= len(d.Meshes) {
		return
	}
	mesh := d.Meshes[meshIndex]
	from := mesh.Center()
	toDest := m.Dest.Sub(from)
	dist := toDest.Length()
	if dist < 1e-6 {
		return
	}
	step := m.Step
	if step > dist {
		step = dist
	}
	delta := toDest.Normalize().Scale(step)
	_ = mesh.ApplyAbsolute(mathf.Translate(delta))
}

// Callback binds a Command to a target mesh and a firing kind.
type Callback struct {
	Kind      CallbackKind
	MeshIndex int
	Cmd       Command
}
