// Package imageio writes rendered framebuffers as plain PPM ("P3")
// images, applying the exposure tone map specified in spec §4.6.
package imageio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/photonray/photonray/core"
	"github.com/photonray/photonray/internal/color"
)

// Framebuffer is the renderer's output: per-pixel accumulated radiance,
// already divided by sample count, in row-major order with row 0 at the
// top of the image.
type Framebuffer struct {
	Width, Height int
	Pixels        []core.Color // len == Width*Height
}

// NewFramebuffer allocates a zeroed framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{Width: width, Height: height, Pixels: make([]core.Color, width*height)}
}

// At returns the averaged radiance at pixel (x,y).
func (f *Framebuffer) At(x, y int) core.Color { return f.Pixels[y*f.Width+x] }

// Set stores the averaged radiance at pixel (x,y).
func (f *Framebuffer) Set(x, y int, c core.Color) { f.Pixels[y*f.Width+x] = c }

// WritePPM emits f as a "P3" PPM: header "P3\n<w> <h>\n255\n" followed by
// w*h lines of three space-separated 0-255 integers, top row first, each
// channel passed through color.ToneMapExposure.
func WritePPM(w io.Writer, f *Framebuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", f.Width, f.Height); err != nil {
		return err
	}
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			r := color.ToneMapExposure(c.X)
			g := color.ToneMapExposure(c.Y)
			b := color.ToneMapExposure(c.Z)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
