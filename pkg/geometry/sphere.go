package geometry

import (
	"math"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere.
// Roots must lie inside the Precision-padded interval, see core.IsInside.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (core.Intersection, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2*halfB*t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return core.Intersection{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !core.IsInside(root, tMin, tMax) {
		root = (-halfB + sqrtD) / a
		if !core.IsInside(root, tMin, tMax) {
			return core.Intersection{}, false
		}
	}

	point := ray.At(root)
	return core.Intersection{
		T:        root,
		Point:    point,
		Normal:   point.Subtract(s.Center).Divide(s.Radius),
		Material: s.Material,
	}, true
}
