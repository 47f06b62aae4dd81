package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
	"github.com/df07/go-pinhole-raytracer/pkg/imageio"
	"github.com/df07/go-pinhole-raytracer/pkg/integrator"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() core.Shape
	GetBackground() integrator.Background
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      Scene
	config     SamplingConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer using the path tracing integrator
func NewRaytracer(scene Scene, config SamplingConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Raytracer{
		scene:      scene,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(scene.GetBackground()),
		logger:     logger,
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// Config returns the sampling configuration
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// Render traces the whole image into a new framebuffer.
// Cancelling ctx stops the render between scanlines or tiles.
func (rt *Raytracer) Render(ctx context.Context) (*imageio.Framebuffer, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	fb := imageio.NewFramebuffer(rt.config.Width, rt.config.Height)
	start := time.Now()

	var stats RenderStats
	var err error
	if rt.config.Workers == 1 {
		stats, err = rt.renderScanlines(ctx, fb)
	} else {
		stats, err = rt.renderTiles(ctx, fb)
	}
	if err != nil {
		return nil, RenderStats{}, err
	}

	stats.TotalPixels = rt.config.Width * rt.config.Height
	stats.Elapsed = time.Since(start)
	rt.logger.Printf("Render completed in %v (%.0f samples/s)\n", stats.Elapsed, stats.SamplesPerSecond())
	return fb, stats, nil
}

// renderScanlines is the single-threaded loop sharing one sampler across all pixels
func (rt *Raytracer) renderScanlines(ctx context.Context, fb *imageio.Framebuffer) (RenderStats, error) {
	sampler := core.NewSeededSampler(rt.config.Seed)
	height := rt.config.Height
	reportEvery := max(1, height/10)

	rt.logger.Printf("Rendering %dx%d, %d samples per pixel, depth %d\n",
		rt.config.Width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth)

	total := 0
	for j := height - 1; j >= 0; j-- {
		if err := ctx.Err(); err != nil {
			return RenderStats{}, fmt.Errorf("render cancelled with %d scanlines remaining: %w", j+1, err)
		}

		total += rt.RenderBounds(image.Rect(0, j, rt.config.Width, j+1), fb, sampler)

		if j%reportEvery == 0 {
			rt.logger.Printf("Scanlines remaining: %d\n", j)
		}
	}

	return RenderStats{TotalSamples: total, Workers: 1}, nil
}

// RenderBounds renders the pixels of bounds into fb and returns the samples taken.
// Rows are visited from the top of the image down.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, fb *imageio.Framebuffer, sampler core.Sampler) int {
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()
	samples := 0

	for j := bounds.Max.Y - 1; j >= bounds.Min.Y; j-- {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			fb.Set(i, j, rt.samplePixel(camera, world, i, j, sampler))
			samples += rt.config.SamplesPerPixel
		}
	}

	return samples
}

// samplePixel averages jittered primary rays through pixel (i, j)
func (rt *Raytracer) samplePixel(camera *Camera, world core.Shape, i, j int, sampler core.Sampler) core.Color {
	scale := 1.0 / float64(rt.config.SamplesPerPixel)
	width := float64(rt.config.Width)
	height := float64(rt.config.Height)

	var colorAccum core.Color
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		// Convert pixel coordinates to normalized coordinates with jitter
		u := (float64(i) + sampler.Get1D()) / width
		v := (float64(j) + sampler.Get1D()) / height

		ray := camera.GetRay(u, v)
		colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, world, sampler, rt.config.MaxDepth).Multiply(scale))
	}

	return colorAccum
}
