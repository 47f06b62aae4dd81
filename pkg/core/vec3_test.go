package core

import (
	"errors"
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Clamp", NewVec3(-1, 0.5, 2).Clamp(0, 1), NewVec3(0, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.result.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}

	if dot := a.Dot(b); dot != 12 {
		t.Errorf("Expected dot product 12, got %f", dot)
	}
}

func TestVec3_Length(t *testing.T) {
	v := NewVec3(2, 3, 6)
	if v.LengthSquared() != 49 {
		t.Errorf("Expected squared length 49, got %f", v.LengthSquared())
	}
	if v.Length() != 7 {
		t.Errorf("Expected length 7, got %f", v.Length())
	}
	if NewVec3(0, 0, 0).Length() != 0 {
		t.Error("Zero vector should have zero length")
	}
}

func TestVec3_Unit(t *testing.T) {
	u, err := NewVec3(0, 3, 4).Unit()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(u.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", u.Length())
	}
	if math.Abs(u.Y-0.6) > 1e-12 || math.Abs(u.Z-0.8) > 1e-12 {
		t.Errorf("Expected (0, 0.6, 0.8), got %v", u)
	}

	_, err = Vec3{}.Unit()
	if !errors.Is(err, ErrZeroLength) {
		t.Errorf("Expected ErrZeroLength for zero vector, got %v", err)
	}

	if n := (Vec3{}).Normalize(); !n.Equals(Vec3{}) {
		t.Errorf("Normalize of zero vector should stay zero, got %v", n)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(0, 0, 1e-3).NearZero() {
		t.Error("Expected vector with 1e-3 component not to be near zero")
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 1, 1), NewVec3(0, 0, -2))
	if p := ray.At(1.5); !p.Equals(NewVec3(1, 1, -2)) {
		t.Errorf("Expected (1, 1, -2), got %v", p)
	}
	if p := ray.At(0); !p.Equals(ray.Origin) {
		t.Errorf("Expected origin at t=0, got %v", p)
	}
}

func TestIsInside(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		expected bool
	}{
		{"interior", 2, true},
		{"exactly at min", 1, false},
		{"exactly at max", 3, false},
		{"two precisions below max", 3 - 2*Precision, true},
		{"two precisions above min", 1 + 2*Precision, true},
		{"outside", 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInside(tt.v, 1, 3); got != tt.expected {
				t.Errorf("IsInside(%v, 1, 3) = %t, expected %t", tt.v, got, tt.expected)
			}
		})
	}
}
