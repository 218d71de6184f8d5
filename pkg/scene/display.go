package scene

import "github.com/Faultbox/asciiray/pkg/mathf"

// Display is the top-level scene aggregate: an ordered list of meshes and
// lights, a camera, and the render target dimensions. Meshes and lights
// added to a Display are owned by it; Reset releases them.
type Display struct {
	Meshes []*Mesh
	Lights []Light
	Camera *Camera

	Background mathf.Vec3

	Width, Height int

	FrameCount int
	Running    bool

	callbacks []Callback
}

// NewDisplay creates a Display of the given cell dimensions. Width and
// Height must both be >= 1.
func NewDisplay(width, height int, cam *Camera) *Display {
	return &Display{
		Camera:  cam,
		Width:   width,
		Height:  height,
		Running: true,
	}
}

// AddMesh transfers ownership of mesh to the Display, in insertion order.
func (d *Display) AddMesh(mesh *Mesh) {
	d.Meshes = append(d.Meshes, mesh)
}

// AddLight appends a light, in insertion order.
func (d *Display) AddLight(l Light) {
	d.Lights = append(d.Lights, l)
}

// AddCallback registers a per-frame command targeting the mesh at
// meshIndex, to run on every tick that Kind selects.
func (d *Display) AddCallback(kind CallbackKind, meshIndex int, cmd Command) {
	d.callbacks = append(d.callbacks, Callback{Kind: kind, MeshIndex: meshIndex, Cmd: cmd})
}

// RunCallbacks executes every registered callback whose Kind fires this
// frame: Startup callbacks fire only when FrameCount == 0.
func (d *Display) RunCallbacks() {
	for _, cb := range d.callbacks {
		if cb.Kind == Startup && d.FrameCount != 0 {
			continue
		}
		cb.Cmd.Apply(d, cb.MeshIndex)
	}
}

// Reset releases all owned meshes and lights and resets the frame
// counter. Textures and materials are released with their owning mesh,
// since they carry no external references.
func (d *Display) Reset() {
	d.Meshes = nil
	d.Lights = nil
	d.callbacks = nil
	d.FrameCount = 0
}
