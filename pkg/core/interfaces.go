package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Intersection describes the nearest ray-surface hit found by a query
type Intersection struct {
	T        float64  // Parameter t along the ray
	Point    Vec3     // Point of intersection
	Normal   Vec3     // Outward surface normal at the point
	Material Material // Material of the hit object, shared with the scene
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Attenuation Color // Color multiplier applied to the light carried back
	Scattered   Ray   // Outgoing ray
}

// Shape interface for objects that can be hit by rays.
// A miss is reported through the bool, not an error.
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (Intersection, bool)
}

// Material interface for surfaces that can scatter rays.
// Returning false means the ray was absorbed.
type Material interface {
	Scatter(rayIn Ray, hit Intersection, sampler Sampler) (ScatterResult, bool)
}
