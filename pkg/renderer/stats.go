package renderer

import "time"

// RenderStats contains statistics about one render pass
type RenderStats struct {
	Width    int           // Framebuffer width
	Height   int           // Framebuffer height
	Pixels   int           // Total number of pixels rendered
	Tiles    int           // Number of tiles the frame was split into
	Workers  int           // Maximum number of tiles rendered concurrently
	MaxDepth int           // Recursion depth used
	Duration time.Duration // Wall-clock time of the pass
}

// PixelsPerSecond returns the throughput of the pass
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Pixels) / s.Duration.Seconds()
}
