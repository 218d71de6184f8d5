// Package ansi implements the default frame backend: it serializes a
// render.Frame as 24-bit ANSI color escapes and writes it to an io.Writer,
// normally the process's stdout.
package ansi

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/asciiray/pkg/render"
)

// Backend writes frames as 24-bit ANSI escape sequences. It is safe to
// reuse across frames; its internal bufio.Writer keeps a fixed-size buffer
// that is flushed whenever it fills and once at the end of every frame.
type Backend struct {
	w   *bufio.Writer
	out io.Writer
}

// New wraps out (typically os.Stdout) in a Backend.
func New(out io.Writer) *Backend {
	return &Backend{w: bufio.NewWriter(out), out: out}
}

// Emit implements render.Backend. It writes a background-set escape, homes
// the cursor, walks the frame row by row emitting a foreground-color
// escape only when the color changes from the previously emitted cell,
// and finishes with a reset.
func (b *Backend) Emit(f *render.Frame) error {
	fmt.Fprintf(b.w, "\x1b[48;2;%d;%d;%dm", uint8(f.Background.X*255), uint8(f.Background.Y*255), uint8(f.Background.Z*255))
	b.w.WriteString("\x1b[H")

	var last [3]uint8
	haveLast := false

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.Color[y][x]
			if !haveLast || c != last {
				fmt.Fprintf(b.w, "\x1b[38;2;%d;%d;%dm", c[0], c[1], c[2])
				last = c
				haveLast = true
			}
			b.w.WriteRune(f.Glyph[y][x])
		}
		b.w.WriteByte('\n')
	}

	b.w.WriteString("\x1b[0m")

	if err := b.w.Flush(); err != nil {
		return fmt.Errorf("ansi: flushing frame: %w", err)
	}
	return nil
}
