package imageio

import "github.com/df07/go-pinhole-raytracer/pkg/core"

// Framebuffer is a width x height grid of linear colors.
// Row y=0 is the bottom of the image, matching the camera's v axis;
// writers emit the top row (y=Height-1) first.
type Framebuffer struct {
	width, height int
	pixels        []core.Color
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the number of columns
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the number of rows
func (fb *Framebuffer) Height() int { return fb.height }

// Set stores c at (x, y); out-of-range coordinates are ignored
func (fb *Framebuffer) Set(x, y int, c core.Color) {
	if !fb.inBounds(x, y) {
		return
	}
	fb.pixels[y*fb.width+x] = c
}

// At returns the color at (x, y), black when out of range
func (fb *Framebuffer) At(x, y int) core.Color {
	if !fb.inBounds(x, y) {
		return core.Color{}
	}
	return fb.pixels[y*fb.width+x]
}

func (fb *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.width && y >= 0 && y < fb.height
}
