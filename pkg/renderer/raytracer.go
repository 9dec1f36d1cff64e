package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig controls how the image is split up and scheduled
type RenderConfig struct {
	TileSize   int // Edge length of each square tile (64 recommended)
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Raytracer renders a scene with the Whitted integrator on a pool of tile workers
type Raytracer struct {
	scene      *scene.Scene
	config     RenderConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a raytracer for s. A nil logger discards output.
func NewRaytracer(s *scene.Scene, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	return &Raytracer{
		scene:      s,
		config:     config,
		integrator: integrator.NewWhittedIntegrator(s.TraceConfig),
		logger:     logger,
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// Render traces every pixel of the scene's camera image.
// Cancelling ctx stops the render between tiles and returns ctx.Err().
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	cfg := rt.scene.CameraConfig
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid image size %dx%d", cfg.Width, cfg.Height)
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	tiles := NewTileGrid(cfg.Width, cfg.Height, rt.config.TileSize)

	tileRenderer := NewTileRenderer(rt.scene, NewCamera(cfg), rt.integrator)
	pool := NewWorkerPool(tileRenderer, len(tiles), rt.config.NumWorkers)

	rt.logger.Printf("Rendering %dx%d (%d primitives, %d lights) in %d tiles on %d workers...\n",
		cfg.Width, cfg.Height, rt.scene.GetPrimitiveCount(), len(rt.scene.Lights), len(tiles), pool.GetNumWorkers())

	pool.Start(ctx)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Image: img})
	}

	var stats RenderStats
	var firstErr error
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			firstErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		stats.Add(result.Stats)
	}
	pool.Stop()

	if firstErr != nil {
		rt.logger.Printf("Render stopped after %d of %d tiles: %v\n", stats.Tiles, len(tiles), firstErr)
		return nil, stats, firstErr
	}

	stats.Duration = time.Since(start)
	rt.logger.Printf("Render completed in %v (%d rays, %.2f shading evaluations per ray)\n",
		stats.Duration, stats.PrimaryRays, stats.AverageBounces())
	return img, stats, nil
}

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	// Ceiling division
	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}
