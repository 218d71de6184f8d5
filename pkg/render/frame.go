package render

import (
	"math"

	"github.com/Faultbox/asciiray/pkg/mathf"
)

// pxChar is the full-block glyph written for every covered cell.
const pxChar = '█'

var infinity = float32(math.Inf(1))

// Frame is the composer's output: a glyph grid and matching 24-bit color
// grid, plus the background color a Backend paints cells that never got
// covered. Frame buffers are scratch, owned and recycled by a Driver
// across calls -- callers must not retain a Frame past the next Update.
type Frame struct {
	Width, Height int
	Glyph         [][]rune
	Color         [][][3]uint8
	Background    mathf.Vec3

	depth []float32
}

// newFrame allocates a frame of the given cell dimensions, glyph blank and
// color black.
func newFrame(width, height int) *Frame {
	f := &Frame{Width: width, Height: height}
	f.Glyph = make([][]rune, height)
	f.Color = make([][][3]uint8, height)
	for y := 0; y < height; y++ {
		f.Glyph[y] = make([]rune, width)
		f.Color[y] = make([][3]uint8, width)
		for x := 0; x < width; x++ {
			f.Glyph[y][x] = ' '
		}
	}
	f.depth = make([]float32, width*height)
	return f
}

// reset clears a frame for reuse: glyph to space, color to black, depth to
// +infinity.
func (f *Frame) reset(background mathf.Vec3) {
	f.Background = background
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			f.Glyph[y][x] = ' '
			f.Color[y][x] = [3]uint8{}
		}
	}
	for i := range f.depth {
		f.depth[i] = infinity
	}
}
