package integrator

import (
	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance carried back along ray with depth bounces left
	RayColor(ray core.Ray, world core.Shape, sampler core.Sampler, depth int) core.Color
}

// Background is the sky seen by rays that leave the scene
type Background struct {
	Bottom core.Color // Color looking straight down
	Top    core.Color // Color looking straight up
}

// DefaultBackground returns the white to sky-blue gradient
func DefaultBackground() Background {
	return Background{
		Bottom: core.NewColor(1.0, 1.0, 1.0),
		Top:    core.NewColor(0.5, 0.7, 1.0),
	}
}

// At returns the gradient color based on ray direction
func (b Background) At(r core.Ray) core.Color {
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}

// MaxChannel returns the largest channel value the gradient can produce
func (b Background) MaxChannel() float64 {
	return max(b.Bottom.X, b.Bottom.Y, b.Bottom.Z, b.Top.X, b.Top.Y, b.Top.Z)
}
