package renderer

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/df07/go-pinhole-raytracer/pkg/imageio"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile        *Tile
	Framebuffer *imageio.Framebuffer // Shared output, tiles write disjoint cells
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TileID  int
	Samples int
	Error   error
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	ctx         context.Context
	raytracer   *Raytracer
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a pool able to buffer maxTasks tasks and results.
// numWorkers <= 0 selects one worker per CPU.
func NewWorkerPool(ctx context.Context, raytracer *Raytracer, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		ctx:         ctx,
		raytracer:   raytracer,
		taskQueue:   make(chan TileTask, maxTasks),
		resultQueue: make(chan TileResult, maxTasks),
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		if err := wp.ctx.Err(); err != nil {
			wp.resultQueue <- TileResult{TileID: task.Tile.ID, Error: err}
			continue
		}

		samples := wp.raytracer.RenderBounds(task.Tile.Bounds, task.Framebuffer, task.Tile.Sampler)
		wp.resultQueue <- TileResult{TileID: task.Tile.ID, Samples: samples}
	}
}

// renderTiles splits the image into tiles and renders them on a WorkerPool.
// The output depends only on the seed and tile size, not on the worker count.
func (rt *Raytracer) renderTiles(ctx context.Context, fb *imageio.Framebuffer) (RenderStats, error) {
	tiles := NewTileGrid(rt.config.Width, rt.config.Height, rt.config.TileSize, rt.config.Seed)

	pool := NewWorkerPool(ctx, rt, rt.config.Workers, len(tiles))
	rt.logger.Printf("Rendering %dx%d in %d tiles using %d workers, %d samples per pixel, depth %d\n",
		rt.config.Width, rt.config.Height, len(tiles), pool.GetNumWorkers(), rt.config.SamplesPerPixel, rt.config.MaxDepth)

	pool.Start()
	for _, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, Framebuffer: fb})
	}

	// Results are buffered for every tile, so draining never blocks a worker
	var firstErr error
	total := 0
	reportEvery := max(1, len(tiles)/10)
	for done := 1; done <= len(tiles); done++ {
		result, ok := pool.GetResult()
		if !ok {
			firstErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("tile %d: %w", result.TileID, result.Error)
			}
			continue
		}
		total += result.Samples
		if done%reportEvery == 0 || done == len(tiles) {
			rt.logger.Printf("Tiles completed: %d/%d\n", done, len(tiles))
		}
	}
	pool.Stop()

	if firstErr != nil {
		return RenderStats{}, firstErr
	}
	return RenderStats{TotalSamples: total, Workers: pool.GetNumWorkers(), Tiles: len(tiles)}, nil
}
