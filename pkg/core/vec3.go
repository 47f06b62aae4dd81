package core

import (
	"errors"
	"math"
)

// ErrZeroLength is returned when a zero vector is asked for its direction
var ErrZeroLength = errors.New("core: zero-length vector has no direction")

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// Color is an RGB triple stored in a Vec3 (X=R, Y=G, Z=B)
type Color = Vec3

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Vec3{X: r, Y: g, Z: b}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Unit returns v / |v|, or ErrZeroLength when v has no length
func (v Vec3) Unit() (Vec3, error) {
	length := v.Length()
	if length == 0 {
		return Vec3{}, ErrZeroLength
	}
	return v.Divide(length), nil
}

// Normalize is the unchecked form of Unit used on hot paths.
// A zero vector normalizes to the zero vector.
func (v Vec3) Normalize() Vec3 {
	u, err := v.Unit()
	if err != nil {
		return Vec3{}
	}
	return u
}

// NearZero reports whether every component is within Precision of zero
func (v Vec3) NearZero() bool {
	return math.Abs(v.X) < Precision && math.Abs(v.Y) < Precision && math.Abs(v.Z) < Precision
}

// Clamp returns a vector with components clamped to [min, max]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: Clamp(v.X, minVal, maxVal),
		Y: Clamp(v.Y, minVal, maxVal),
		Z: Clamp(v.Z, minVal, maxVal),
	}
}

// Map applies fn to each component
func (v Vec3) Map(fn func(float64) float64) Vec3 {
	return Vec3{fn(v.X), fn(v.Y), fn(v.Z)}
}

// Equals reports exact component equality
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
