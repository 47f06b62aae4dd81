package renderer

import (
	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// Camera is a fixed pinhole camera at the origin looking down -Z
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a pinhole camera with a viewport two units high.
// An aspect ratio of 2 gives the classic (-2,-1,-1) lower-left corner.
func NewCamera(aspectRatio float64) *Camera {
	viewportHeight := 2.0
	viewportWidth := aspectRatio * viewportHeight
	focalLength := 1.0

	origin := core.NewVec3(0, 0, 0)
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, viewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, focalLength))

	return NewCameraFromViewport(origin, lowerLeftCorner, horizontal, vertical)
}

// NewCameraFromViewport creates a camera from explicit viewport vectors
func NewCameraFromViewport(origin, lowerLeftCorner, horizontal, vertical core.Vec3) *Camera {
	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}
}

// Origin returns the pinhole position
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

// GetRay generates a ray for image-plane coordinates (u, v) where 0 <= u,v <= 1.
// v grows upward from the bottom of the image.
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
