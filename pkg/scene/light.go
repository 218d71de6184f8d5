package scene

import "github.com/Faultbox/asciiray/pkg/mathf"

// Light is a point light source. Lights outside Radius of a shaded point
// contribute nothing to that point.
type Light struct {
	Position   mathf.Vec3
	Color      mathf.Vec3
	Brightness float32
	Radius     float32
}

// NewLight creates a point light with the given color normalized to [0,1]
// per channel (colors are commonly authored in a wider range and clamped
// here, matching how RSW/scene light sources are sanitized on import).
func NewLight(pos, color mathf.Vec3, brightness, radius float32) Light {
	return Light{
		Position:   pos,
		Color:      color.Clamp01(),
		Brightness: brightness,
		Radius:     radius,
	}
}
