package geometry

import "github.com/df07/go-pinhole-raytracer/pkg/core"

// ShapeList is a composite shape reporting the nearest hit among its members
type ShapeList struct {
	shapes []core.Shape
}

// NewShapeList creates a list holding the given shapes
func NewShapeList(shapes ...core.Shape) *ShapeList {
	return &ShapeList{shapes: shapes}
}

// Add appends a shape to the list
func (l *ShapeList) Add(shape core.Shape) {
	l.shapes = append(l.shapes, shape)
}

// Clear removes all shapes
func (l *ShapeList) Clear() {
	l.shapes = nil
}

// Len returns the number of member shapes
func (l *ShapeList) Len() int {
	return len(l.shapes)
}

// Shapes returns the member shapes in insertion order
func (l *ShapeList) Shapes() []core.Shape {
	return l.shapes
}

// Hit returns the closest intersection among all member shapes.
// Each member is queried with tMax narrowed to the closest t found so far.
func (l *ShapeList) Hit(ray core.Ray, tMin, tMax float64) (core.Intersection, bool) {
	var closest core.Intersection
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range l.shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}
