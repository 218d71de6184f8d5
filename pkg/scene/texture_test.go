package scene

import (
	"testing"

	"github.com/Faultbox/asciiray/pkg/mathf"
)

func TestNilTextureSamplesOpaqueWhite(t *testing.T) {
	var tex *Texture
	got := tex.Sample(0.5, 0.5)
	want := mathf.Vec3{X: 1, Y: 1, Z: 1}
	if got != want {
		t.Errorf("nil Texture.Sample() = %v, want %v", got, want)
	}
}

func TestTextureSampleClampsUV(t *testing.T) {
	tex := NewTexture(2, 2)
	tex.Pixels[0] = mathf.Vec3{X: 1} // (0,0) top-left
	got := tex.Sample(-5, 5)         // clamps to (0,0) -> v=5 clamps to 1 -> row 0 (1-v)=0
	if got.X != 1 {
		t.Errorf("Sample(-5, 5) = %v, want X=1", got)
	}
}
