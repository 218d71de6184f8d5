package scene

import (
	"github.com/Faultbox/asciiray/pkg/mathf"
	"github.com/google/uuid"
)

// Vertex is one corner of a Triangle: a world-space position, a texture
// coordinate, and a vertex normal. Triangle records are independent of
// clip space; the transform stage builds its own clip-space copies.
type Vertex struct {
	Pos    mathf.Vec3
	UV     mathf.Vec2
	Normal mathf.Vec3
}

// Triangle is always a flat record of three vertices. Winding is
// whatever order the source face gave; nothing here reorders it.
type Triangle struct {
	V [3]Vertex
}

// FaceNormal returns the unnormalized face normal (vy-vx) x (vz-vx).
func (t Triangle) FaceNormal() mathf.Vec3 {
	e1 := t.V[1].Pos.Sub(t.V[0].Pos)
	e2 := t.V[2].Pos.Sub(t.V[0].Pos)
	return e1.Cross(e2)
}

// Mesh is an ordered sequence of triangles sharing exactly one material.
// Every triangle in a Mesh is shaded with that Mesh's material -- there is
// no per-face material override.
type Mesh struct {
	ID uuid.UUID

	Name      string
	Triangles []Triangle
	Material  *Material
}

// NewMesh creates an empty, named mesh bound to the given material.
func NewMesh(name string, mat *Material) *Mesh {
	return &Mesh{
		ID:       uuid.New(),
		Name:     name,
		Material: mat,
	}
}

// ApplyAbsolute applies transform t to every triangle's positions, and the
// inverse-transpose of t's upper-left 3x3 to every vertex normal
// (renormalized), the correct treatment under non-uniform scaling.
func (m *Mesh) ApplyAbsolute(t mathf.Mat4) error {
	normalMat, err := t.Upper3().InverseTranspose()
	if err != nil {
		return err
	}
	for i := range m.Triangles {
		tri := &m.Triangles[i]
		for j := 0; j < 3; j++ {
			tri.V[j].Pos = t.TransformPoint(tri.V[j].Pos)
			tri.V[j].Normal = normalMat.MulVec3(tri.V[j].Normal).Normalize()
		}
	}
	return nil
}

// ApplyRelative applies t about the mesh's own centroid: translate(-C) *
// t * translate(+C), computed by calling ApplyAbsolute three times in
// sequence so the same normal handling applies at every step.
func (m *Mesh) ApplyRelative(t mathf.Mat4) error {
	c := m.Center()
	if err := m.ApplyAbsolute(mathf.Translate(mathf.Vec3{X: -c.X, Y: -c.Y, Z: -c.Z})); err != nil {
		return err
	}
	if err := m.ApplyAbsolute(t); err != nil {
		return err
	}
	return m.ApplyAbsolute(mathf.Translate(c))
}

// Center returns the arithmetic mean of every triangle corner. This
// weights corners, not unique vertices -- a shared vertex referenced by
// more triangles pulls the center towards it. That quirk is deliberate:
// it matches how the reference renderer computes it.
func (m *Mesh) Center() mathf.Vec3 {
	if len(m.Triangles) == 0 {
		return mathf.Vec3{}
	}
	var sum mathf.Vec3
	count := 0
	for _, tri := range m.Triangles {
		for _, v := range tri.V {
			sum = sum.Add(v.Pos)
			count++
		}
	}
	return sum.Scale(1 / float32(count))
}
