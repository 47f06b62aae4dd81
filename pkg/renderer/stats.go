package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of camera samples taken
	Workers      int           // Goroutines that rendered, 1 for the scanline loop
	Tiles        int           // Tiles rendered, 0 for the scanline loop
	Elapsed      time.Duration // Wall time of the render
}

// AverageSamples returns samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// SamplesPerSecond returns camera samples traced per second of wall time
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}
