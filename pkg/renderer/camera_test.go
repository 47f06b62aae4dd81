package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

func vecNear(a, b core.Vec3) bool {
	const tolerance = 1e-9
	return math.Abs(a.X-b.X) < tolerance && math.Abs(a.Y-b.Y) < tolerance && math.Abs(a.Z-b.Z) < tolerance
}

func TestNewCamera_ClassicViewport(t *testing.T) {
	camera := NewCamera(2.0)

	if camera.Origin() != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected origin at zero, got %v", camera.Origin())
	}

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{"lower left", 0, 0, core.NewVec3(-2, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(2, 1, -1)},
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"bottom middle", 0.5, 0, core.NewVec3(0, -1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.u, tt.v)
			if ray.Origin != camera.Origin() {
				t.Errorf("Ray should start at camera origin, got %v", ray.Origin)
			}
			if !vecNear(ray.Direction, tt.expected) {
				t.Errorf("GetRay(%v, %v) direction = %v, want %v", tt.u, tt.v, ray.Direction, tt.expected)
			}
		})
	}
}

func TestNewCameraFromViewport(t *testing.T) {
	origin := core.NewVec3(1, 2, 3)
	camera := NewCameraFromViewport(origin, core.NewVec3(0, 0, 2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0))

	ray := camera.GetRay(0.5, 0.5)
	if ray.Origin != origin {
		t.Errorf("Expected origin %v, got %v", origin, ray.Origin)
	}
	// Direction is measured from the origin
	expected := core.NewVec3(0, -1, -1)
	if !vecNear(ray.Direction, expected) {
		t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
	}
}
