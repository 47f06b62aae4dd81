package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/geometry"
	"github.com/df07/go-pinhole-raytracer/pkg/integrator"
	"github.com/df07/go-pinhole-raytracer/pkg/renderer"
)

// ErrUnknownScene is returned by New for unregistered scene names
var ErrUnknownScene = errors.New("unknown scene")

// Scene contains all the elements needed for rendering.
// It is built once and only read while rendering.
type Scene struct {
	Name       string
	World      *geometry.ShapeList
	Camera     *renderer.Camera
	Background integrator.Background
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera { return s.Camera }

// GetWorld returns the root shape queried by the integrator
func (s *Scene) GetWorld() core.Shape { return s.World }

// GetBackground returns the sky gradient
func (s *Scene) GetBackground() integrator.Background { return s.Background }

// Validate checks that every sphere has a material and a positive radius
func (s *Scene) Validate() error {
	if s.World == nil || s.Camera == nil {
		return fmt.Errorf("scene %q: world and camera are required", s.Name)
	}
	for i, shape := range s.World.Shapes() {
		sphere, ok := shape.(*geometry.Sphere)
		if !ok {
			continue
		}
		if sphere.Material == nil {
			return fmt.Errorf("scene %q: sphere %d has no material", s.Name, i)
		}
		if sphere.Radius <= 0 {
			return fmt.Errorf("scene %q: sphere %d has non-positive radius %v", s.Name, i, sphere.Radius)
		}
	}
	return nil
}

// builder constructs a scene for a camera aspect ratio
type builder func(aspectRatio float64) *Scene

var builtins = map[string]builder{
	"default": NewDefaultScene,
	"single": func(aspectRatio float64) *Scene {
		return NewSingleSphereScene(aspectRatio, core.NewColor(1, 1, 1), integrator.DefaultBackground())
	},
}

// Names returns the registered scene names, sorted
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates the named built-in scene
func New(name string, aspectRatio float64) (*Scene, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}
	s := build(aspectRatio)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
