package render

import (
	"testing"

	"github.com/Faultbox/asciiray/pkg/mathf"
	"github.com/Faultbox/asciiray/pkg/scene"
)

func projectedTriangle(v0, v1, v2 mathf.Vec3) ProjectedTriangle {
	return ProjectedTriangle{V: [3]ProjectedVertex{
		{NDC: v0, W: 1, World: v0},
		{NDC: v1, W: 1, World: v1},
		{NDC: v2, W: 1, World: v2},
	}}
}

func TestRasterizeFillsTriangleFootprint(t *testing.T) {
	mat := scene.DefaultMaterial()
	frame := newFrame(100, 100)
	frame.reset(mathf.Vec3{})
	tri := projectedTriangle(
		mathf.Vec3{X: -0.6, Y: -0.6, Z: 0},
		mathf.Vec3{X: 0.6, Y: -0.6, Z: 0},
		mathf.Vec3{X: 0, Y: 0.6, Z: 0},
	)
	Rasterize(tri, &mat, nil, mathf.Vec3{}, mathf.Vec3{}, frame)

	covered := 0
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			if frame.Glyph[y][x] == pxChar {
				covered++
			}
		}
	}
	ratio := float64(covered) / float64(frame.Width*frame.Height)
	if ratio < 0.15 || ratio > 0.5 {
		t.Errorf("covered ratio = %v, want roughly 0.15-0.5", ratio)
	}
}

func TestRasterizeDepthTestKeepsNearer(t *testing.T) {
	mat := scene.DefaultMaterial()
	mat.Ambient = mathf.Vec3{X: 1}
	mat.Diffuse = mathf.Vec3{}

	frame := newFrame(20, 20)
	frame.reset(mathf.Vec3{})

	far := ProjectedTriangle{V: [3]ProjectedVertex{
		{NDC: mathf.Vec3{X: -0.8, Y: -0.8, Z: 0.9}, W: 1},
		{NDC: mathf.Vec3{X: 0.8, Y: -0.8, Z: 0.9}, W: 1},
		{NDC: mathf.Vec3{X: 0, Y: 0.8, Z: 0.9}, W: 1},
	}}
	near := ProjectedTriangle{V: [3]ProjectedVertex{
		{NDC: mathf.Vec3{X: -0.8, Y: -0.8, Z: 0.1}, W: 1},
		{NDC: mathf.Vec3{X: 0.8, Y: -0.8, Z: 0.1}, W: 1},
		{NDC: mathf.Vec3{X: 0, Y: 0.8, Z: 0.1}, W: 1},
	}}

	farMat := scene.DefaultMaterial()
	farMat.Ambient = mathf.Vec3{Z: 1}
	farMat.Diffuse = mathf.Vec3{}

	Rasterize(far, &farMat, nil, mathf.Vec3{}, mathf.Vec3{}, frame)
	Rasterize(near, &mat, nil, mathf.Vec3{}, mathf.Vec3{}, frame)

	c := frame.Color[10][10]
	if c[0] == 0 {
		t.Errorf("expected the nearer (red-ish) triangle to win at (10,10), got %v", c)
	}
}

func TestRasterizeDegenerateAreaSkipped(t *testing.T) {
	mat := scene.DefaultMaterial()
	frame := newFrame(10, 10)
	frame.reset(mathf.Vec3{})
	// Three collinear points: zero area.
	tri := projectedTriangle(
		mathf.Vec3{X: -0.5, Y: 0, Z: 0},
		mathf.Vec3{X: 0, Y: 0, Z: 0},
		mathf.Vec3{X: 0.5, Y: 0, Z: 0},
	)
	Rasterize(tri, &mat, nil, mathf.Vec3{}, mathf.Vec3{}, frame)
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			if frame.Glyph[y][x] == pxChar {
				t.Fatalf("degenerate triangle should not rasterize any pixel, found one at (%d,%d)", x, y)
			}
		}
	}
}
