package scene

import (
	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/geometry"
	"github.com/df07/go-pinhole-raytracer/pkg/integrator"
	"github.com/df07/go-pinhole-raytracer/pkg/material"
	"github.com/df07/go-pinhole-raytracer/pkg/renderer"
)

// NewDefaultScene creates a diffuse sphere between two mirrors above a large ground sphere
func NewDefaultScene(aspectRatio float64) *Scene {
	lambertianRed := material.NewLambertian(core.NewColor(0.7, 0.3, 0.3))
	lambertianGround := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	metalGold := material.NewMetal(core.NewColor(0.8, 0.6, 0.2))
	metalSilver := material.NewMetal(core.NewColor(0.8, 0.8, 0.8))

	world := geometry.NewShapeList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianRed),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalGold),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, metalSilver),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGround),
	)

	return &Scene{
		Name:       "default",
		World:      world,
		Camera:     renderer.NewCamera(aspectRatio),
		Background: integrator.DefaultBackground(),
	}
}

// NewSingleSphereScene creates one diffuse sphere of the given albedo at (0,0,-1)
func NewSingleSphereScene(aspectRatio float64, albedo core.Color, background integrator.Background) *Scene {
	return &Scene{
		Name:       "single",
		World:      geometry.NewShapeList(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(albedo))),
		Camera:     renderer.NewCamera(aspectRatio),
		Background: background,
	}
}
