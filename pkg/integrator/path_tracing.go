package integrator

import (
	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// PathTracingIntegrator implements fixed-depth unidirectional path tracing
type PathTracingIntegrator struct {
	background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(background Background) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		background: background,
	}
}

// RayColor computes the color for a single ray.
// For a fixed sampler sequence the result is deterministic.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world core.Shape, sampler core.Sampler, depth int) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Color{}
	}

	hit, isHit := world.Hit(ray, 0, core.Infinity)
	if !isHit {
		return pt.background.At(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		// Material absorbed the ray
		return core.Color{}
	}

	return scatter.Attenuation.MultiplyVec(pt.RayColor(scatter.Scattered, world, sampler, depth-1))
}
