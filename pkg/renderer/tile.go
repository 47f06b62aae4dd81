package renderer

import (
	"image"

	"github.com/df07/go-pinhole-raytracer/pkg/core"
)

// Tile is a rectangular block of pixels rendered by one worker
type Tile struct {
	ID      int             // Unique tile identifier
	Bounds  image.Rectangle // Pixel bounds in framebuffer coordinates
	Sampler core.Sampler    // Tile-specific sampler for deterministic results
}

// NewTile creates a new tile whose sampler is derived from seed and id
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:      id,
		Bounds:  bounds,
		Sampler: core.NewSeededSampler(tileSeed(seed, id)),
	}
}

// tileSeed spreads tile ids so neighbouring tiles get unrelated streams
func tileSeed(seed int64, id int) int64 {
	return int64(uint64(seed) ^ (uint64(id)+1)*0x9E3779B97F4A7C15)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}

	return tiles
}
