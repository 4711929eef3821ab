package renderer

import (
	"context"
	"image"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// RenderConfig controls how a render pass is split across goroutines
type RenderConfig struct {
	TileSize   int // Edge length of the square tiles handed to workers
	NumWorkers int // Number of tiles rendered concurrently (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   32,
		NumWorkers: 0,
	}
}

// Renderer drives an integrator over every pixel of a framebuffer
type Renderer struct {
	config     RenderConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRenderer creates a renderer using the Whitted integrator.
// A nil logger discards log output.
func NewRenderer(config RenderConfig, logger core.Logger) *Renderer {
	if logger == nil {
		logger = discardLogger{}
	}
	return &Renderer{
		config:     config,
		integrator: integrator.NewWhittedIntegrator(),
		logger:     logger,
	}
}

// Render traces every pixel of fb in place with the default configuration
func Render(ctx context.Context, fb *Framebuffer, camera *Camera, scene integrator.Scene, maxDepth int) error {
	_, err := NewRenderer(DefaultRenderConfig(), nil).Render(ctx, fb, camera, scene, maxDepth)
	return err
}

// Render traces one ray per pixel and writes the clamped colors into fb.
//
// Camera and scene are shared read-only by all workers and must not be
// modified until Render returns. Tiles cover disjoint pixels, so workers
// write to fb without locking; Render returns only after every tile is done.
// The context is checked before each tile starts.
func (r *Renderer) Render(ctx context.Context, fb *Framebuffer, camera *Camera, scene integrator.Scene, maxDepth int) (RenderStats, error) {
	start := time.Now()

	numWorkers := r.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	tiles := NewTiles(fb.Width(), fb.Height(), r.config.TileSize)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)
	for _, tile := range tiles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r.renderTile(tile, fb, camera, scene, maxDepth)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return RenderStats{}, err
	}

	stats := RenderStats{
		Width:    fb.Width(),
		Height:   fb.Height(),
		Pixels:   fb.Width() * fb.Height(),
		Tiles:    len(tiles),
		Workers:  numWorkers,
		MaxDepth: maxDepth,
		Duration: time.Since(start),
	}
	r.logger.Printf("Rendered %dx%d at depth %d in %v (%d tiles, %d workers)\n",
		stats.Width, stats.Height, stats.MaxDepth, stats.Duration, stats.Tiles, stats.Workers)
	return stats, nil
}

// renderTile fills the pixels inside bounds
func (r *Renderer) renderTile(bounds image.Rectangle, fb *Framebuffer, camera *Camera, scene integrator.Scene, maxDepth int) {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := camera.PixelRay(x, y, fb.Width(), fb.Height())
			fb.SetPixel(x, y, r.integrator.RayColor(ray, scene, maxDepth))
		}
	}
}

// normalizedCoordinate maps pixel index i in [0, n) to [0, 1] so the first
// and last pixels land on the image plane edges. A single pixel maps to 0.
func normalizedCoordinate(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
