package renderer

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every SamplingConfig validation failure
var ErrInvalidConfig = errors.New("invalid sampling config")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Seed of the random source
	Workers         int   // 1 = single-threaded scan, 0 = one worker per CPU, >1 = tile workers
	TileSize        int   // Edge length of a tile in tile mode
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          200,
		SamplesPerPixel: 100,
		MaxDepth:        500,
		Seed:            42,
		Workers:         1,
		TileSize:        32,
	}
}

// AspectRatio returns width / height
func (c SamplingConfig) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Validate reports the first unusable setting
func (c SamplingConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d must be positive", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: max depth %d must be positive", ErrInvalidConfig, c.MaxDepth)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d must not be negative", ErrInvalidConfig, c.Workers)
	case c.Workers != 1 && c.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d must be positive", ErrInvalidConfig, c.TileSize)
	}
	return nil
}
