// Package imagedecode provides the default asset.Decoder, translating PNG,
// JPEG, BMP and TGA files on disk into scene.Texture pixel buffers.
package imagedecode

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/asciiray/pkg/mathf"
	"github.com/Faultbox/asciiray/pkg/scene"
	"golang.org/x/image/bmp"
)

// Decoder is the default asset.Decoder implementation. It has no state and
// is safe for concurrent use.
type Decoder struct{}

// New returns a ready-to-use Decoder.
func New() *Decoder {
	return &Decoder{}
}

// Decode reads and decodes the image file at path, dispatching on its
// extension.
func (Decoder) Decode(path string) (*scene.Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("imagedecode: %w", err)
	}

	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img, err = png.Decode(bytes.NewReader(data))
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(bytes.NewReader(data))
	case ".bmp":
		img, err = bmp.Decode(bytes.NewReader(data))
	case ".tga":
		img, err = decodeTGA(data)
	default:
		return nil, fmt.Errorf("imagedecode: unsupported extension %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("imagedecode: decoding %s: %w", path, err)
	}
	return toTexture(img), nil
}

func toTexture(img image.Image) *scene.Texture {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	tex := scene.NewTexture(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			tex.Pixels[y*w+x] = mathf.Vec3{
				X: float32(r) / 65535,
				Y: float32(g) / 65535,
				Z: float32(b) / 65535,
			}
		}
	}
	return tex
}
