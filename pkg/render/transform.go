package render

import (
	"github.com/Faultbox/asciiray/pkg/mathf"
	"github.com/Faultbox/asciiray/pkg/scene"
)

// Options controls transform-and-clip behavior beyond what the mesh and
// camera state already imply.
type Options struct {
	// BackfaceCull discards triangles whose world-space winding faces away
	// from the camera. Off by default, matching the reference renderer.
	BackfaceCull bool
}

// ProjectedVertex is a triangle corner after the perspective divide: NDC
// position plus the original clip-space W (needed for perspective-correct
// interpolation during rasterization) and the world-space attributes.
type ProjectedVertex struct {
	NDC    mathf.Vec3
	W      float32
	World  mathf.Vec3
	Normal mathf.Vec3
	UV     mathf.Vec2
}

// ProjectedTriangle is a triangle ready for rasterization: every corner's
// W is guaranteed > 0.
type ProjectedTriangle struct {
	V [3]ProjectedVertex
}

// TransformAndClip runs steps 1-7 of the transform-and-clip stage over
// every triangle of mesh: build the view-projection matrix, clip against
// the near plane, optionally cull backfaces, project to NDC, and reject
// triangles fully outside the NDC cube.
func TransformAndClip(mesh *scene.Mesh, cam *scene.Camera, opts Options) ([]ProjectedTriangle, error) {
	vp, err := cam.ViewProjectionMatrix()
	if err != nil {
		return nil, err
	}

	var result []ProjectedTriangle
	for _, tri := range mesh.Triangles {
		var clipTri ClipTriangle
		for i, v := range tri.V {
			clip := vp.MulVec4(mathf.Vec4{X: v.Pos.X, Y: v.Pos.Y, Z: v.Pos.Z, W: 1})
			clipTri.V[i] = ClipVertex{Clip: clip, World: v.Pos, Normal: v.Normal, UV: v.UV}
		}

		for _, clipped := range Clip(clipTri) {
			if opts.BackfaceCull && isBackface(clipped, cam.Position) {
				continue
			}
			pt := projectClipTriangle(clipped)
			if ndcFullyOutside(pt) {
				continue
			}
			result = append(result, pt)
		}
	}
	return result, nil
}

// isBackface culls when ((vy-vx) x (vz-vx)) . (vx - camPos) >= 0, in world
// space.
func isBackface(tri ClipTriangle, camPos mathf.Vec3) bool {
	vx, vy, vz := tri.V[0].World, tri.V[1].World, tri.V[2].World
	n := vy.Sub(vx).Cross(vz.Sub(vx))
	return n.Dot(vx.Sub(camPos)) >= 0
}

func projectClipTriangle(tri ClipTriangle) ProjectedTriangle {
	var pt ProjectedTriangle
	for i, v := range tri.V {
		w := v.Clip.W
		ndc := mathf.Vec3{X: v.Clip.X, Y: v.Clip.Y, Z: v.Clip.Z}
		if w != 0 {
			ndc = mathf.Vec3{X: v.Clip.X / w, Y: v.Clip.Y / w, Z: v.Clip.Z / w}
		}
		pt.V[i] = ProjectedVertex{NDC: ndc, W: w, World: v.World, Normal: v.Normal, UV: v.UV}
	}
	return pt
}

// ndcFullyOutside rejects a triangle if all three corners fall strictly
// outside the same one of the six NDC bounds.
func ndcFullyOutside(tri ProjectedTriangle) bool {
	bounds := []func(mathf.Vec3) bool{
		func(v mathf.Vec3) bool { return v.X < -1 },
		func(v mathf.Vec3) bool { return v.X > 1 },
		func(v mathf.Vec3) bool { return v.Y < -1 },
		func(v mathf.Vec3) bool { return v.Y > 1 },
		func(v mathf.Vec3) bool { return v.Z < -1 },
		func(v mathf.Vec3) bool { return v.Z > 1 },
	}
	for _, outside := range bounds {
		if outside(tri.V[0].NDC) && outside(tri.V[1].NDC) && outside(tri.V[2].NDC) {
			return true
		}
	}
	return false
}
