package render

import (
	"testing"

	"github.com/Faultbox/asciiray/pkg/mathf"
	"github.com/Faultbox/asciiray/pkg/scene"
)

func triangleMesh(v0, v1, v2 mathf.Vec3) *scene.Mesh {
	mat := scene.DefaultMaterial()
	m := scene.NewMesh("t", &mat)
	m.Triangles = []scene.Triangle{{V: [3]scene.Vertex{{Pos: v0}, {Pos: v1}, {Pos: v2}}}}
	return m
}

func TestTransformAndClipProjectsInFrustumTriangle(t *testing.T) {
	cam := scene.NewCamera(90, 1, 0.1, 100)
	mesh := triangleMesh(
		mathf.Vec3{X: -1, Y: -1, Z: -5},
		mathf.Vec3{X: 1, Y: -1, Z: -5},
		mathf.Vec3{X: 0, Y: 1, Z: -5},
	)
	got, err := TransformAndClip(mesh, cam, Options{})
	if err != nil {
		t.Fatalf("TransformAndClip() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d triangles, want 1", len(got))
	}
	for _, v := range got[0].V {
		if v.W <= 0 {
			t.Errorf("corner W = %v, want > 0", v.W)
		}
		for _, c := range []float32{v.NDC.X, v.NDC.Y, v.NDC.Z} {
			if c <= -1 || c >= 1 {
				t.Errorf("NDC component %v out of (-1,1)", c)
			}
		}
	}
}

func TestTransformAndClipDropsTriangleBehindNearPlane(t *testing.T) {
	cam := scene.NewCamera(90, 1, 0.1, 100)
	mesh := triangleMesh(
		mathf.Vec3{X: -1, Y: -1, Z: 5},
		mathf.Vec3{X: 1, Y: -1, Z: 5},
		mathf.Vec3{X: 0, Y: 1, Z: 5},
	)
	got, err := TransformAndClip(mesh, cam, Options{})
	if err != nil {
		t.Fatalf("TransformAndClip() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d triangles, want 0 (fully behind camera)", len(got))
	}
}

func TestBackfaceCullingSymmetry(t *testing.T) {
	cam := scene.NewCamera(90, 1, 0.1, 100)
	cam.Position = mathf.Vec3{X: 0, Y: 0, Z: 0}

	front := triangleMesh(
		mathf.Vec3{X: -1, Y: -1, Z: -5},
		mathf.Vec3{X: 1, Y: -1, Z: -5},
		mathf.Vec3{X: 0, Y: 1, Z: -5},
	)
	back := triangleMesh(
		mathf.Vec3{X: -1, Y: -1, Z: -5},
		mathf.Vec3{X: 0, Y: 1, Z: -5},
		mathf.Vec3{X: 1, Y: -1, Z: -5},
	)

	frontSurvives, err := TransformAndClip(front, cam, Options{BackfaceCull: true})
	if err != nil {
		t.Fatalf("TransformAndClip(front) error = %v", err)
	}
	backSurvives, err := TransformAndClip(back, cam, Options{BackfaceCull: true})
	if err != nil {
		t.Fatalf("TransformAndClip(back) error = %v", err)
	}

	frontKept := len(frontSurvives) == 1
	backKept := len(backSurvives) == 1
	if frontKept == backKept {
		t.Errorf("expected exactly one winding to survive culling: front=%v back=%v", frontKept, backKept)
	}
}
