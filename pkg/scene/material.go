package scene

import (
	"github.com/Faultbox/asciiray/pkg/mathf"
	"github.com/google/uuid"
)

// Material describes how a mesh's triangles are shaded. A Material's
// textures are owned exclusively by that material; textures are never
// de-duplicated across meshes.
type Material struct {
	ID uuid.UUID

	Name string

	Ambient   mathf.Vec3
	Diffuse   mathf.Vec3
	Specular  mathf.Vec3
	Shininess float32

	// Transparency is the "d" mix factor: 1.0 is fully opaque.
	Transparency float32

	// Illum is the OBJ/MTL illumination-model tag; carried through for
	// asset fidelity but the shading model in pkg/render is fixed to
	// Blinn-Phong regardless of its value.
	Illum int

	DiffuseTex  *Texture
	SpecularTex *Texture
	NormalTex   *Texture
}

// DefaultMaterial returns a material with sensible fallback shading
// values for a mesh whose MTL file defines no material.
func DefaultMaterial() Material {
	return Material{
		ID:           uuid.New(),
		Ambient:      mathf.Vec3{X: 0.2, Y: 0.2, Z: 0.2},
		Diffuse:      mathf.Vec3{X: 0.8, Y: 0.8, Z: 0.8},
		Specular:     mathf.Vec3{X: 1, Y: 1, Z: 1},
		Shininess:    32,
		Transparency: 1.0,
		Illum:        2,
	}
}
