package render

import (
	"fmt"

	"github.com/Faultbox/asciiray/pkg/scene"
)

// Backend transports a finished Frame to a terminal (or any other sink).
// internal/backend/ansi.Backend is the default, 24-bit-color implementation.
type Backend interface {
	Emit(f *Frame) error
}

// Driver orchestrates one call to Update per tick: run callbacks, allocate
// (or reuse) the frame's scratch buffers, transform-and-clip plus
// rasterize-and-shade every triangle, then hand the frame to a Backend.
// The frame and its depth buffer are pooled across calls -- Driver owns
// them, not the caller.
type Driver struct {
	Options Options

	frame *Frame
}

// NewDriver creates a Driver with the given transform-and-clip options.
func NewDriver(opts Options) *Driver {
	return &Driver{Options: opts}
}

// Update runs one full frame: callbacks, transform-and-clip,
// rasterize-and-shade, then Emit through backend. A scratch-buffer
// allocation failure is recovered and reported as ErrBufferAllocFailed
// rather than crashing the process.
func (d *Driver) Update(display *scene.Display, backend Backend) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrBufferAllocFailed, r)
		}
	}()

	display.RunCallbacks()

	if d.frame == nil || d.frame.Width != display.Width || d.frame.Height != display.Height {
		d.frame = newFrame(display.Width, display.Height)
	}
	d.frame.reset(display.Background)

	for _, mesh := range display.Meshes {
		if mesh.Material == nil {
			continue
		}
		projected, err := TransformAndClip(mesh, display.Camera, d.Options)
		if err != nil {
			continue // DegenerateGeometry: drop the mesh's contribution this frame
		}
		for _, tri := range projected {
			Rasterize(tri, mesh.Material, display.Lights, display.Camera.Position, display.Background, d.frame)
		}
	}

	display.FrameCount++

	if backend != nil {
		if err := backend.Emit(d.frame); err != nil {
			return fmt.Errorf("render: emitting frame: %w", err)
		}
	}
	return nil
}
