package material

import (
	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Color // Base color/reflectance
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// The direction is the normal offset by a uniform unit-sphere sample, which
// approximates a cosine-weighted hemisphere. A direction that cancels to near
// zero is replaced by the normal.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.Intersection, sampler core.Sampler) (core.ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(sampler))
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return core.ScatterResult{
		Attenuation: l.Albedo,
		Scattered:   core.NewRay(hit.Point, scatterDirection),
	}, true
}
