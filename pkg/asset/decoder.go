package asset

import "github.com/Faultbox/asciiray/pkg/scene"

// Decoder decodes an image file on disk into a scene.Texture. It is the
// loader's only dependency on a concrete image format; internal/imagedecode
// supplies the default implementation.
type Decoder interface {
	Decode(path string) (*scene.Texture, error)
}
