package scene

import "github.com/Faultbox/asciiray/pkg/mathf"

// Texture is a decoded RGB raster. Channels is always 3; Pixels holds
// W*H samples in [0,1], row-major from the top of the image.
type Texture struct {
	Width, Height int
	Channels      int
	Pixels        []mathf.Vec3
}

// NewTexture allocates a texture of the given size, filled with black.
func NewTexture(w, h int) *Texture {
	return &Texture{
		Width:    w,
		Height:   h,
		Channels: 3,
		Pixels:   make([]mathf.Vec3, w*h),
	}
}

// Sample looks up the texture at UV coordinate (u, v), clamped to the
// texture edges. A nil texture samples as opaque white, matching the
// "absent reference" rule for materials without a bound texture.
func (t *Texture) Sample(u, v float32) mathf.Vec3 {
	if t == nil || len(t.Pixels) == 0 {
		return mathf.Vec3{X: 1, Y: 1, Z: 1}
	}
	u = mathf.Clamp(u, 0, 1)
	v = mathf.Clamp(v, 0, 1)

	x := int(u * float32(t.Width-1))
	y := int((1 - v) * float32(t.Height-1))
	x = mathf.Clamp(x, 0, t.Width-1)
	y = mathf.Clamp(y, 0, t.Height-1)

	return t.Pixels[y*t.Width+x].Clamp01()
}
