package material

import (
	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// Metal represents a perfect mirror
type Metal struct {
	Albedo core.Color // Metal color
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Color) *Metal {
	return &Metal{Albedo: albedo}
}

// Scatter implements the Material interface for metal scattering.
// A ray with a zero direction cannot be reflected and is absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit core.Intersection, sampler core.Sampler) (core.ScatterResult, bool) {
	incoming, err := rayIn.Direction.Unit()
	if err != nil {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Attenuation: m.Albedo, // No π factor for specular
		Scattered:   core.NewRay(hit.Point, core.Reflect(incoming, hit.Normal)),
	}, true
}
