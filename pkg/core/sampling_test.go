package core

import (
	"math"
	"testing"
)

func TestRandomSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(42)
	b := NewSeededSampler(42)

	for i := 0; i < 100; i++ {
		va, vb := a.Get1D(), b.Get1D()
		if va != vb {
			t.Fatalf("Sample %d differs for the same seed: %f vs %f", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("Sample %d out of [0,1): %f", i, va)
		}
	}
}

func TestRadicalInverse2(t *testing.T) {
	tests := []struct {
		n        uint64
		expected float64
	}{
		{0, 0},
		{1, 0.5},
		{2, 0.25},
		{3, 0.75},
		{4, 0.125},
		{5, 0.625},
	}

	for _, tt := range tests {
		if got := RadicalInverse2(tt.n); got != tt.expected {
			t.Errorf("RadicalInverse2(%d) = %f, expected %f", tt.n, got, tt.expected)
		}
	}

	if v := RadicalInverse2(math.MaxUint64); v >= 1 {
		t.Errorf("RadicalInverse2 must stay below 1, got %f", v)
	}
}

func TestVanDerCorputSampler_Sequence(t *testing.T) {
	s := NewVanDerCorputSampler(1)
	expected := []float64{0.5, 0.25, 0.75, 0.125}
	for i, want := range expected {
		if got := s.Get1D(); got != want {
			t.Errorf("Sample %d: got %f, expected %f", i, got, want)
		}
	}
}

func TestRandomRange(t *testing.T) {
	s := NewSeededSampler(7)
	for i := 0; i < 1000; i++ {
		v := RandomRange(s, -2, 3)
		if v < -2 || v >= 3 {
			t.Fatalf("RandomRange out of [-2,3): %f", v)
		}
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	s := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(s)
		if p.LengthSquared() >= 1 {
			t.Fatalf("Point outside unit sphere: %v (len² %f)", p, p.LengthSquared())
		}
	}
}

func TestRandomUnitVector(t *testing.T) {
	s := NewSeededSampler(42)
	var sum Vec3
	const n = 20000
	for i := 0; i < n; i++ {
		v := RandomUnitVector(s)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit length, got %f for %v", v.Length(), v)
		}
		sum = sum.Add(v)
	}

	// A uniform distribution on the sphere has zero mean
	mean := sum.Divide(n)
	if mean.Length() > 0.05 {
		t.Errorf("Mean of unit vectors too far from origin: %v", mean)
	}
}

func TestRandomInHemisphere(t *testing.T) {
	s := NewSeededSampler(42)
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(0, 0, -1),
		NewVec3(1, 1, 1).Normalize(),
	}

	for _, normal := range normals {
		for i := 0; i < 500; i++ {
			p := RandomInHemisphere(s, normal)
			if p.Dot(normal) < -Precision {
				t.Fatalf("Sample %v is not in hemisphere of %v", p, normal)
			}
			if p.LengthSquared() >= 1 {
				t.Fatalf("Sample %v outside unit ball", p)
			}
		}
	}
}

func TestReflect(t *testing.T) {
	normal := NewVec3(0, 0, 1)

	tests := []struct {
		name     string
		incoming Vec3
		expected Vec3
	}{
		{"head-on", NewVec3(0, 0, -1), NewVec3(0, 0, 1)},
		{"45 degrees", NewVec3(1, 0, -1).Normalize(), NewVec3(1, 0, 1).Normalize()},
		{"tangent", NewVec3(1, 0, 0), NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Reflect(tt.incoming, normal)
			if r.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, r)
			}

			// Normal component flips sign, tangential component unchanged
			if math.Abs(r.Dot(normal)+tt.incoming.Dot(normal)) > 1e-12 {
				t.Errorf("Normal component did not flip: in %f, out %f", tt.incoming.Dot(normal), r.Dot(normal))
			}
			tIn := tt.incoming.Subtract(normal.Multiply(tt.incoming.Dot(normal)))
			tOut := r.Subtract(normal.Multiply(r.Dot(normal)))
			if tIn.Subtract(tOut).Length() > 1e-12 {
				t.Errorf("Tangential component changed: %v -> %v", tIn, tOut)
			}
		})
	}
}
